// Package clients определяет интерфейсы клиентов внешних сервисов.
package clients

import (
	"context"

	"taskhub/internal/tasks/domain/entities"
)

// UserClient определяет получение сведений о пользователе из сервиса
// аутентификации.
type UserClient interface {
	// GetUserByID возвращает сведения о пользователе по идентификатору.
	// Возвращает (nil, nil), если пользователь не найден.
	GetUserByID(ctx context.Context, userID int64) (*entities.UserInfo, error)
}
