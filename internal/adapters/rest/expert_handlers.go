package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/potenlab/the-potential-backend/internal/constants"
	"github.com/potenlab/the-potential-backend/internal/contextkeys"
	"github.com/potenlab/the-potential-backend/internal/contracts"
	"github.com/potenlab/the-potential-backend/internal/core/domain"
	"github.com/potenlab/the-potential-backend/internal/core/port"
	"github.com/potenlab/the-potential-backend/internal/core/port/usecases_port"
)

// ExpertHandler serves the public expert directory and profile management.
type ExpertHandler struct {
	findUC   usecases_port.FindExpertsUseCasePort
	getUC    usecases_port.GetExpertDetailsUseCasePort
	upsertUC usecases_port.UpsertExpertProfileUseCasePort
}

func NewExpertHandler(findUC usecases_port.FindExpertsUseCasePort,
	getUC usecases_port.GetExpertDetailsUseCasePort,
	upsertUC usecases_port.UpsertExpertProfileUseCasePort) *ExpertHandler {
	return &ExpertHandler{
		findUC:   findUC,
		getUC:    getUC,
		upsertUC: upsertUC,
	}
}

// parseExpertSearchParams builds search params from the query string.
// Unknown sort values and out-of-range pagination are fixed up later by
// the domain normalization, so only outright malformed numbers fail here.
func parseExpertSearchParams(r *http.Request) (domain.ExpertSearchParams, error) {
	q := r.URL.Query()
	var params domain.ExpertSearchParams

	if v := q.Get("category"); v != "" {
		if !domain.ValidExpertCategory(v) {
			return params, errors.New("unknown category")
		}
		category := domain.ExpertCategory(v)
		params.Filters.Category = &category
	}
	if v := q.Get("keyword"); v != "" {
		params.Filters.Keyword = &v
	}
	if v := q.Get("min_price"); v != "" {
		minPrice, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return params, errors.New("invalid min_price")
		}
		params.Filters.MinPrice = &minPrice
	}
	if v := q.Get("max_price"); v != "" {
		maxPrice, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return params, errors.New("invalid max_price")
		}
		params.Filters.MaxPrice = &maxPrice
	}
	if v := q.Get("regions"); v != "" {
		params.Filters.Regions = strings.Split(v, ",")
	}
	if v := q.Get("is_available"); v != "" {
		available, err := strconv.ParseBool(v)
		if err != nil {
			return params, errors.New("invalid is_available")
		}
		params.Filters.IsAvailable = &available
	}
	if v := q.Get("is_featured"); v != "" {
		featured, err := strconv.ParseBool(v)
		if err != nil {
			return params, errors.New("invalid is_featured")
		}
		params.Filters.IsFeatured = &featured
	}

	params.SortBy = q.Get("sort_by")
	params.SortOrder = q.Get("sort_order")

	limit, err := GetLimitOrDefault(r)
	if err != nil {
		return params, errors.New("invalid limit")
	}
	offset, err := GetOffsetOrDefault(r)
	if err != nil {
		return params, errors.New("invalid offset")
	}
	params.Limit = limit
	params.Offset = offset

	return params, nil
}

// FindExperts handles GET /api/v1/experts
func (h *ExpertHandler) FindExperts(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "FindExperts"})

	params, err := parseExpertSearchParams(r)
	if err != nil {
		logger.Warn("Invalid directory query parameters", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.findUC.Execute(r.Context(), params)
	if err != nil {
		logger.Error("Find experts use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve experts")
		return
	}

	response := PaginatedExpertsResponse{
		Data:    make([]ExpertCardResponse, len(result.Experts)),
		Total:   result.TotalCount,
		HasMore: result.HasMore,
	}
	for i, e := range result.Experts {
		response.Data[i] = toExpertCardResponse(e)
	}

	logger.Info("Successfully retrieved experts", port.Fields{
		"total_found":   result.TotalCount,
		"items_on_page": len(result.Experts),
	})
	RespondWithJSON(w, http.StatusOK, response)
}

// GetExpert handles GET /api/v1/experts/{expertID}
func (h *ExpertHandler) GetExpert(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetExpert"})

	expertIDStr := chi.URLParam(r, "expertID")
	expertID, err := uuid.Parse(expertIDStr)
	if err != nil {
		logger.Warn("Invalid expertID in URL", port.Fields{"provided_id": expertIDStr})
		WriteJSONError(w, http.StatusBadRequest, "Invalid expertID in URL")
		return
	}

	expert, err := h.getUC.Execute(r.Context(), expertID)
	if err != nil {
		if errors.Is(err, domain.ErrExpertNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Expert not found")
			return
		}
		logger.Error("Get expert details use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve expert")
		return
	}

	RespondWithJSON(w, http.StatusOK, toExpertCardResponse(*expert))
}

// UpsertProfile handles PUT /api/v1/experts/me
func (h *ExpertHandler) UpsertProfile(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpsertProfile"})

	userID, ok := userIDFromContext(r.Context())
	if !ok {
		logger.Error("Invalid or missing user ID in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid user ID in context")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Warn("Failed to read request body for profile upsert", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := contracts.ValidateRequest(constants.RequestExpertProfileUpsert, constants.RequestExpertProfileUpsertVersion, body); err != nil {
		logger.Warn("Profile upsert payload failed contract validation", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Request body does not match the contract")
		return
	}

	var reqDTO UpsertExpertProfileRequest
	if err := json.Unmarshal(body, &reqDTO); err != nil {
		logger.Warn("Failed to decode request body for profile upsert", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// The schema enforces the enum too; this guards direct callers of the
	// handler and keeps the error message specific.
	if !domain.ValidExpertCategory(reqDTO.Category) {
		WriteJSONError(w, http.StatusBadRequest, "Unknown category")
		return
	}
	if strings.TrimSpace(reqDTO.BusinessName) == "" {
		WriteJSONError(w, http.StatusBadRequest, "business_name is required")
		return
	}

	draft := domain.ExpertProfileDraft{
		Category:     domain.ExpertCategory(reqDTO.Category),
		BusinessName: reqDTO.BusinessName,
		Description:  reqDTO.Description,
		Specialties:  reqDTO.Specialties,
		Regions:      reqDTO.Regions,
		HourlyRate:   reqDTO.HourlyRate,
		IsAvailable:  reqDTO.IsAvailable,
	}

	handlerLogger := logger.WithFields(port.Fields{"user_id": userID})
	handlerLogger.Info("Processing request to upsert expert profile", nil)

	profile, err := h.upsertUC.Execute(r.Context(), userID, draft)
	if err != nil {
		handlerLogger.Error("Upsert expert profile use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to save expert profile")
		return
	}

	RespondWithJSON(w, http.StatusOK, ExpertProfileResponse{
		ID:           profile.ID.String(),
		Category:     string(profile.Category),
		BusinessName: profile.BusinessName,
		Description:  profile.Description,
		Specialties:  profile.Specialties,
		Regions:      profile.Regions,
		HourlyRate:   profile.HourlyRate,
		IsAvailable:  profile.IsAvailable,
		Status:       string(profile.Status),
	})
}
