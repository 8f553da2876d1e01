package app

import (
	"context"
	"fmt"

	"taskhub/internal/auth/domain/entities"
	"taskhub/internal/auth/ports/api"
	"taskhub/internal/auth/ports/repositories"
	"taskhub/pkg/logger"

	"go.uber.org/zap"
)

const (
	methodGetUserByID = "GetUserByID"

	msgRequestingUser    = "requesting user by id"
	msgInvalidUserID     = "invalid user ID provided"
	msgUserRetrieved     = "user successfully retrieved"
	msgErrFindingUserQry = "failed to find user by ID"

	errCtxValidatingUserID = "validating user ID"
	errCtxFetchingUser     = "fetching user"
)

// UserUseCaseImpl реализует интерфейс UserUseCase.
type UserUseCaseImpl struct {
	userRepo repositories.UserRepository
}

// NewUserUseCase создает новый экземпляр сервиса пользователя.
func NewUserUseCase(userRepo repositories.UserRepository) api.UserUseCase {
	return &UserUseCaseImpl{
		userRepo: userRepo,
	}
}

// GetUserByID возвращает учетную запись по идентификатору.
// Используется другими сервисами для обогащения собственных данных.
func (u *UserUseCaseImpl) GetUserByID(ctx context.Context, id int64) (*entities.UserAccount, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetUserByID), zap.Int64("userID", id))
	log.Debug(ctx, msgRequestingUser)

	if id <= 0 {
		log.Debug(ctx, msgInvalidUserID)
		return nil, fmt.Errorf("%s: %w", errCtxValidatingUserID, entities.ErrInvalidUserID)
	}

	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		log.Error(ctx, msgErrFindingUserQry, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFetchingUser, err)
	}

	log.Info(ctx, msgUserRetrieved)
	return user, nil
}
