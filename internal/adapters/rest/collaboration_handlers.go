package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/potenlab/the-potential-backend/internal/constants"
	"github.com/potenlab/the-potential-backend/internal/contextkeys"
	"github.com/potenlab/the-potential-backend/internal/contracts"
	"github.com/potenlab/the-potential-backend/internal/core/domain"
	"github.com/potenlab/the-potential-backend/internal/core/port"
	"github.com/potenlab/the-potential-backend/internal/core/port/usecases_port"
)

// CollaborationHandler serves the collaboration-request endpoints.
// Every endpoint requires an authenticated user.
type CollaborationHandler struct {
	createUC       usecases_port.CreateCollaborationRequestUseCasePort
	respondUC      usecases_port.RespondCollaborationRequestUseCasePort
	cancelUC       usecases_port.CancelCollaborationRequestUseCasePort
	listSentUC     usecases_port.ListSentRequestsUseCasePort
	listReceivedUC usecases_port.ListReceivedRequestsUseCasePort
}

func NewCollaborationHandler(createUC usecases_port.CreateCollaborationRequestUseCasePort,
	respondUC usecases_port.RespondCollaborationRequestUseCasePort,
	cancelUC usecases_port.CancelCollaborationRequestUseCasePort,
	listSentUC usecases_port.ListSentRequestsUseCasePort,
	listReceivedUC usecases_port.ListReceivedRequestsUseCasePort) *CollaborationHandler {
	return &CollaborationHandler{
		createUC:       createUC,
		respondUC:      respondUC,
		cancelUC:       cancelUC,
		listSentUC:     listSentUC,
		listReceivedUC: listReceivedUC,
	}
}

// CreateRequest handles POST /api/v1/collaboration-requests
func (h *CollaborationHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateRequest"})

	senderID, ok := userIDFromContext(r.Context())
	if !ok {
		logger.Error("Invalid or missing user ID in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid user ID in context")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Warn("Failed to read request body for create request", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// The payload contract is enforced before any decoding into the DTO.
	if err := contracts.ValidateRequest(constants.RequestCollaborationCreate, constants.RequestCollaborationCreateVersion, body); err != nil {
		logger.Warn("Create request payload failed contract validation", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Request body does not match the contract")
		return
	}

	var reqDTO CreateRequestBody
	if err := json.Unmarshal(body, &reqDTO); err != nil {
		logger.Warn("Failed to decode request body for create request", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	expertProfileID, err := uuid.Parse(reqDTO.ExpertProfileID)
	if err != nil {
		logger.Warn("Invalid expert_profile_id format in request", port.Fields{"provided_id": reqDTO.ExpertProfileID})
		WriteJSONError(w, http.StatusBadRequest, "Invalid expert_profile_id format")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"sender_id":         senderID,
		"expert_profile_id": expertProfileID,
	})
	handlerLogger.Info("Processing request to create collaboration request", nil)

	request, err := h.createUC.Execute(r.Context(), senderID, usecases_port.CreateCollaborationRequestInput{
		ExpertProfileID: expertProfileID,
		Type:            domain.RequestType(reqDTO.Type),
		Subject:         reqDTO.Subject,
		Message:         reqDTO.Message,
		ContactInfo:     reqDTO.ContactInfo,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRequestType):
			WriteJSONError(w, http.StatusBadRequest, "Unknown request type")
		case errors.Is(err, domain.ErrExpertNotFound):
			WriteJSONError(w, http.StatusNotFound, "Expert not found")
		case errors.Is(err, domain.ErrSelfRequest):
			WriteJSONError(w, http.StatusConflict, "Cannot send a request to yourself")
		default:
			handlerLogger.Error("Create collaboration request use case failed", err, nil)
			WriteJSONError(w, http.StatusInternalServerError, "Failed to create collaboration request")
		}
		return
	}

	handlerLogger.Info("Successfully created collaboration request", port.Fields{"request_id": request.ID})
	RespondWithJSON(w, http.StatusCreated, toCollaborationRequestResponse(request))
}

// RespondToRequest handles PATCH /api/v1/collaboration-requests/{requestID}
func (h *CollaborationHandler) RespondToRequest(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "RespondToRequest"})

	recipientID, ok := userIDFromContext(r.Context())
	if !ok {
		logger.Error("Invalid or missing user ID in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid user ID in context")
		return
	}

	requestIDStr := chi.URLParam(r, "requestID")
	requestID, err := uuid.Parse(requestIDStr)
	if err != nil {
		logger.Warn("Invalid requestID in URL", port.Fields{"provided_id": requestIDStr})
		WriteJSONError(w, http.StatusBadRequest, "Invalid requestID in URL")
		return
	}

	var reqDTO RespondRequestBody
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		logger.Warn("Failed to decode request body for respond", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"recipient_id": recipientID,
		"request_id":   requestID,
		"action":       reqDTO.Action,
	})
	handlerLogger.Info("Processing request to respond to collaboration request", nil)

	request, err := h.respondUC.Execute(r.Context(), requestID, recipientID, domain.ResponseAction(reqDTO.Action))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidResponseAction):
			WriteJSONError(w, http.StatusBadRequest, "Unknown action")
		case errors.Is(err, domain.ErrRequestNotFound):
			// Covers a missing request, a foreign request and an already
			// resolved one alike.
			WriteJSONError(w, http.StatusNotFound, "Request not found or already resolved")
		default:
			handlerLogger.Error("Respond to collaboration request use case failed", err, nil)
			WriteJSONError(w, http.StatusInternalServerError, "Failed to respond to collaboration request")
		}
		return
	}

	handlerLogger.Info("Successfully responded to collaboration request", port.Fields{"new_status": request.Status})
	RespondWithJSON(w, http.StatusOK, toCollaborationRequestResponse(request))
}

// CancelRequest handles DELETE /api/v1/collaboration-requests/{requestID}
func (h *CollaborationHandler) CancelRequest(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CancelRequest"})

	senderID, ok := userIDFromContext(r.Context())
	if !ok {
		logger.Error("Invalid or missing user ID in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid user ID in context")
		return
	}

	requestIDStr := chi.URLParam(r, "requestID")
	requestID, err := uuid.Parse(requestIDStr)
	if err != nil {
		logger.Warn("Invalid requestID in URL", port.Fields{"provided_id": requestIDStr})
		WriteJSONError(w, http.StatusBadRequest, "Invalid requestID in URL")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"sender_id":  senderID,
		"request_id": requestID,
	})
	handlerLogger.Info("Processing request to cancel collaboration request", nil)

	if _, err := h.cancelUC.Execute(r.Context(), requestID, senderID); err != nil {
		if errors.Is(err, domain.ErrRequestNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Request not found or already resolved")
			return
		}
		handlerLogger.Error("Cancel collaboration request use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to cancel collaboration request")
		return
	}

	handlerLogger.Info("Successfully cancelled collaboration request", nil)
	w.WriteHeader(http.StatusNoContent)
}

// ListSent handles GET /api/v1/collaboration-requests/sent
func (h *CollaborationHandler) ListSent(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListSent"})

	senderID, ok := userIDFromContext(r.Context())
	if !ok {
		logger.Error("Invalid or missing user ID in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid user ID in context")
		return
	}

	requests, err := h.listSentUC.Execute(r.Context(), senderID)
	if err != nil {
		logger.Error("List sent requests use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve sent requests")
		return
	}

	response := make([]CollaborationRequestResponse, len(requests))
	for i := range requests {
		response[i] = toCollaborationRequestResponse(&requests[i])
	}
	RespondWithJSON(w, http.StatusOK, response)
}

// ListReceived handles GET /api/v1/collaboration-requests/received
func (h *CollaborationHandler) ListReceived(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListReceived"})

	recipientID, ok := userIDFromContext(r.Context())
	if !ok {
		logger.Error("Invalid or missing user ID in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid user ID in context")
		return
	}

	requests, err := h.listReceivedUC.Execute(r.Context(), recipientID)
	if err != nil {
		logger.Error("List received requests use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve received requests")
		return
	}

	response := make([]CollaborationRequestResponse, len(requests))
	for i := range requests {
		response[i] = toCollaborationRequestResponse(&requests[i])
	}
	RespondWithJSON(w, http.StatusOK, response)
}
