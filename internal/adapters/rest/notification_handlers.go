package rest

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/potenlab/the-potential-backend/internal/contextkeys"
	"github.com/potenlab/the-potential-backend/internal/core/domain"
	"github.com/potenlab/the-potential-backend/internal/core/port"
	"github.com/potenlab/the-potential-backend/internal/core/port/usecases_port"
)

// NotificationHandler serves the per-user notification inbox.
type NotificationHandler struct {
	listUC        usecases_port.ListNotificationsUseCasePort
	markReadUC    usecases_port.MarkNotificationReadUseCasePort
	markAllUC     usecases_port.MarkAllNotificationsReadUseCasePort
	unreadCountUC usecases_port.GetUnreadCountUseCasePort
}

func NewNotificationHandler(listUC usecases_port.ListNotificationsUseCasePort,
	markReadUC usecases_port.MarkNotificationReadUseCasePort,
	markAllUC usecases_port.MarkAllNotificationsReadUseCasePort,
	unreadCountUC usecases_port.GetUnreadCountUseCasePort) *NotificationHandler {
	return &NotificationHandler{
		listUC:        listUC,
		markReadUC:    markReadUC,
		markAllUC:     markAllUC,
		unreadCountUC: unreadCountUC,
	}
}

// ListNotifications handles GET /api/v1/notifications
func (h *NotificationHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListNotifications"})

	userID, ok := userIDFromContext(r.Context())
	if !ok {
		logger.Error("Invalid or missing user ID in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid user ID in context")
		return
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

	page, err := h.listUC.Execute(r.Context(), userID, limit, offset)
	if err != nil {
		logger.Error("List notifications use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve notifications")
		return
	}

	response := PaginatedNotificationsResponse{
		Data:    make([]NotificationResponse, len(page.Notifications)),
		Total:   page.TotalCount,
		HasMore: page.HasMore,
	}
	for i, n := range page.Notifications {
		item := NotificationResponse{
			ID:        n.ID.String(),
			Type:      string(n.Type),
			Title:     n.Title,
			Body:      n.Body,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt.Format(time.RFC3339),
		}
		if n.ReferenceID != nil {
			refID := n.ReferenceID.String()
			item.ReferenceID = &refID
		}
		response.Data[i] = item
	}

	RespondWithJSON(w, http.StatusOK, response)
}

// MarkRead handles POST /api/v1/notifications/{notificationID}/read
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "MarkRead"})

	userID, ok := userIDFromContext(r.Context())
	if !ok {
		logger.Error("Invalid or missing user ID in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid user ID in context")
		return
	}

	notificationIDStr := chi.URLParam(r, "notificationID")
	notificationID, err := uuid.Parse(notificationIDStr)
	if err != nil {
		logger.Warn("Invalid notificationID in URL", port.Fields{"provided_id": notificationIDStr})
		WriteJSONError(w, http.StatusBadRequest, "Invalid notificationID in URL")
		return
	}

	if err := h.markReadUC.Execute(r.Context(), notificationID, userID); err != nil {
		if errors.Is(err, domain.ErrNotificationNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Notification not found")
			return
		}
		logger.Error("Mark notification read use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to mark notification as read")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MarkAllRead handles POST /api/v1/notifications/read-all
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "MarkAllRead"})

	userID, ok := userIDFromContext(r.Context())
	if !ok {
		logger.Error("Invalid or missing user ID in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid user ID in context")
		return
	}

	marked, err := h.markAllUC.Execute(r.Context(), userID)
	if err != nil {
		logger.Error("Mark all notifications read use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to mark notifications as read")
		return
	}

	RespondWithJSON(w, http.StatusOK, MarkedAllResponse{Marked: marked})
}

// GetUnreadCount handles GET /api/v1/notifications/unread-count
func (h *NotificationHandler) GetUnreadCount(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetUnreadCount"})

	userID, ok := userIDFromContext(r.Context())
	if !ok {
		logger.Error("Invalid or missing user ID in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid user ID in context")
		return
	}

	count, err := h.unreadCountUC.Execute(r.Context(), userID)
	if err != nil {
		logger.Error("Get unread count use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve unread count")
		return
	}

	RespondWithJSON(w, http.StatusOK, UnreadCountResponse{Count: count})
}
