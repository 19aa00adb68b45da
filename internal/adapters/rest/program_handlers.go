package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/potenlab/the-potential-backend/internal/contextkeys"
	"github.com/potenlab/the-potential-backend/internal/core/domain"
	"github.com/potenlab/the-potential-backend/internal/core/port"
	"github.com/potenlab/the-potential-backend/internal/core/port/usecases_port"
)

// ProgramHandler serves the public support-program listing.
type ProgramHandler struct {
	findUC usecases_port.FindSupportProgramsUseCasePort
}

func NewProgramHandler(findUC usecases_port.FindSupportProgramsUseCasePort) *ProgramHandler {
	return &ProgramHandler{findUC: findUC}
}

// FindPrograms handles GET /api/v1/support-programs
func (h *ProgramHandler) FindPrograms(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "FindPrograms"})

	q := r.URL.Query()
	var filters domain.ProgramFilters
	if v := q.Get("category"); v != "" {
		filters.Category = &v
	}
	if v := q.Get("region"); v != "" {
		filters.Region = &v
	}
	if v := q.Get("keyword"); v != "" {
		filters.Keyword = &v
	}
	if v := q.Get("include_closed"); v != "" {
		includeClosed, err := strconv.ParseBool(v)
		if err != nil {
			WriteJSONError(w, http.StatusBadRequest, "Invalid include_closed")
			return
		}
		filters.IncludeClosed = includeClosed
	}

	limit, err := GetLimitOrDefault(r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid limit")
		return
	}
	offset, err := GetOffsetOrDefault(r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid offset")
		return
	}

	page, err := h.findUC.Execute(r.Context(), filters, limit, offset)
	if err != nil {
		logger.Error("Find support programs use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve support programs")
		return
	}

	response := PaginatedProgramsResponse{
		Data:    make([]ProgramResponse, len(page.Programs)),
		Total:   page.TotalCount,
		HasMore: page.HasMore,
	}
	for i, p := range page.Programs {
		item := ProgramResponse{
			ID:            p.ID.String(),
			Title:         p.Title,
			Organization:  p.Organization,
			Category:      p.Category,
			Region:        p.Region,
			SupportAmount: p.SupportAmount,
			Link:          p.Link,
			Description:   p.Description,
		}
		if p.StartsAt != nil {
			startsAt := p.StartsAt.Format(time.RFC3339)
			item.StartsAt = &startsAt
		}
		if p.DeadlineAt != nil {
			deadlineAt := p.DeadlineAt.Format(time.RFC3339)
			item.DeadlineAt = &deadlineAt
		}
		response.Data[i] = item
	}

	RespondWithJSON(w, http.StatusOK, response)
}
