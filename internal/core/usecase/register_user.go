package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/potenlab/the-potential-backend/internal/contextkeys"
	"github.com/potenlab/the-potential-backend/internal/core/domain"
	"github.com/potenlab/the-potential-backend/internal/core/port"
)

type RegisterUserUseCase struct {
	users port.UserRepositoryPort
}

func NewRegisterUserUseCase(users port.UserRepositoryPort) *RegisterUserUseCase {
	return &RegisterUserUseCase{users: users}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, email, password, displayName string) (*domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "RegisterUser", "email": email})

	ucLogger.Info("Use case started", nil)

	existing, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		ucLogger.Error("Repository failed to check email", err, nil)
		return nil, fmt.Errorf("internal server error: %w", err)
	}
	if existing != nil {
		ucLogger.Warn("Registration rejected: email already in use", nil)
		return nil, domain.ErrEmailInUse
	}

	user, err := domain.NewUser(email, password, displayName)
	if err != nil {
		ucLogger.Error("Failed to hash password", err, nil)
		return nil, fmt.Errorf("internal server error: %w", err)
	}

	if err := uc.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailInUse) {
			// A concurrent registration won the unique index race.
			ucLogger.Warn("Registration rejected: email already in use", nil)
			return nil, domain.ErrEmailInUse
		}
		ucLogger.Error("Repository failed to create user", err, nil)
		return nil, fmt.Errorf("internal server error: %w", err)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"user_id": user.ID.String()})
	return user, nil
}
