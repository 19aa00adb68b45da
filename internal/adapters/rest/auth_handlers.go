package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/potenlab/the-potential-backend/internal/contextkeys"
	"github.com/potenlab/the-potential-backend/internal/core/domain"
	"github.com/potenlab/the-potential-backend/internal/core/port"
	"github.com/potenlab/the-potential-backend/internal/core/port/usecases_port"
)

// AuthHandler serves account registration and login.
type AuthHandler struct {
	registerUC usecases_port.RegisterUserUseCasePort
	loginUC    usecases_port.LoginUserUseCasePort
}

func NewAuthHandler(registerUC usecases_port.RegisterUserUseCasePort,
	loginUC usecases_port.LoginUserUseCasePort) *AuthHandler {
	return &AuthHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
	}
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "Register"})

	var reqDTO RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		logger.Warn("Failed to decode registration body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	reqDTO.Email = strings.TrimSpace(strings.ToLower(reqDTO.Email))
	if reqDTO.Email == "" || !strings.Contains(reqDTO.Email, "@") {
		WriteJSONError(w, http.StatusBadRequest, "A valid email is required")
		return
	}
	if len(reqDTO.Password) < 8 {
		WriteJSONError(w, http.StatusBadRequest, "Password must be at least 8 characters")
		return
	}
	if strings.TrimSpace(reqDTO.DisplayName) == "" {
		WriteJSONError(w, http.StatusBadRequest, "display_name is required")
		return
	}

	user, err := h.registerUC.Execute(r.Context(), reqDTO.Email, reqDTO.Password, reqDTO.DisplayName)
	if err != nil {
		if errors.Is(err, domain.ErrEmailInUse) {
			WriteJSONError(w, http.StatusConflict, "Email already in use")
			return
		}
		logger.Error("Register user use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	RespondWithJSON(w, http.StatusCreated, UserResponse{
		ID:          user.ID.String(),
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Role:        user.Role,
	})
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "Login"})

	var reqDTO LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		logger.Warn("Failed to decode login body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	reqDTO.Email = strings.TrimSpace(strings.ToLower(reqDTO.Email))

	user, token, err := h.loginUC.Execute(r.Context(), reqDTO.Email, reqDTO.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			// Same answer for a missing account and a wrong password.
			WriteJSONError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		logger.Error("Login user use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	RespondWithJSON(w, http.StatusOK, AuthResponse{
		Token: token,
		User: UserResponse{
			ID:          user.ID.String(),
			Email:       user.Email,
			DisplayName: user.DisplayName,
			Role:        user.Role,
		},
	})
}
