package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/potenlab/the-potential-backend/internal/contextkeys"
	"github.com/potenlab/the-potential-backend/internal/core/domain"
	"github.com/potenlab/the-potential-backend/internal/core/port"
	"github.com/potenlab/the-potential-backend/internal/core/port/usecases_port"
)

type CreateCollaborationRequestUseCase struct {
	requests      port.CollaborationRepositoryPort
	experts       port.ExpertRepositoryPort
	notifications port.NotificationRepositoryPort
	publisher     port.NotificationPublisherPort
	unreadCounter port.UnreadCounterPort
}

func NewCreateCollaborationRequestUseCase(
	requests port.CollaborationRepositoryPort,
	experts port.ExpertRepositoryPort,
	notifications port.NotificationRepositoryPort,
	publisher port.NotificationPublisherPort,
	unreadCounter port.UnreadCounterPort,
) *CreateCollaborationRequestUseCase {
	return &CreateCollaborationRequestUseCase{
		requests:      requests,
		experts:       experts,
		notifications: notifications,
		publisher:     publisher,
		unreadCounter: unreadCounter,
	}
}

func (uc *CreateCollaborationRequestUseCase) Execute(ctx context.Context, senderID uuid.UUID, input usecases_port.CreateCollaborationRequestInput) (*domain.CollaborationRequest, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":          "CreateCollaborationRequest",
		"sender_id":         senderID.String(),
		"expert_profile_id": input.ExpertProfileID.String(),
		"type":              input.Type,
	})

	ucLogger.Info("Use case started", nil)

	switch input.Type {
	case domain.RequestTypeCoffeeChat, domain.RequestTypeCollaboration:
	default:
		ucLogger.Warn("Rejecting request with unknown type", nil)
		return nil, domain.ErrInvalidRequestType
	}

	// The recipient is the owner of the expert profile; the payload never
	// names the recipient directly.
	expert, err := uc.experts.GetByID(ctx, input.ExpertProfileID)
	if err != nil {
		ucLogger.Error("Failed to resolve expert profile", err, nil)
		return nil, err
	}
	if expert.UserID == senderID {
		ucLogger.Warn("Rejecting self-addressed request", nil)
		return nil, domain.ErrSelfRequest
	}

	request := domain.NewCollaborationRequest(
		senderID, expert.UserID, input.ExpertProfileID,
		input.Type, input.Subject, input.Message, input.ContactInfo,
	)

	if err := uc.requests.Create(ctx, request); err != nil {
		ucLogger.Error("Repository failed to create request", err, nil)
		return nil, err
	}

	notification := domain.NewNotification(
		expert.UserID,
		domain.NotificationRequestReceived,
		"새로운 협업 요청이 도착했습니다",
		fmt.Sprintf("「%s」 요청: %s", requestTypeLabel(request.Type), request.Subject),
		&request.ID,
	)
	if err := uc.notifications.Create(ctx, notification); err != nil {
		// The request is already committed; a lost notification is logged,
		// not surfaced to the sender.
		ucLogger.Error("Failed to create notification for recipient", err, nil)
	} else {
		uc.unreadCounter.Invalidate(expert.UserID)
		if err := uc.publisher.PublishNotificationCreated(ctx, notification); err != nil {
			ucLogger.Warn("Failed to publish notification event", port.Fields{"error": err.Error()})
		}
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"request_id": request.ID.String()})
	return request, nil
}

func requestTypeLabel(t domain.RequestType) string {
	if t == domain.RequestTypeCoffeeChat {
		return "커피챗"
	}
	return "협업"
}
