package api

import (
	"context"

	"taskhub/internal/auth/domain/entities"
)

// UserUseCase определяет запросы к данным пользователей,
// используемые другими сервисами.
type UserUseCase interface {
	GetUserByID(ctx context.Context, id int64) (*entities.UserAccount, error)
}
