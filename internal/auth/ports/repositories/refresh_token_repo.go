package repositories

import (
	"context"

	"taskhub/internal/auth/domain/services"
)

// RefreshTokenRepository определяет интерфейс хранилища refresh токенов.
// Create генерирует новое значение токена и замещает существующий токен
// пользователя, поэтому живой токен всегда один. FindByToken возвращает nil
// без ошибки, если токен не найден.
type RefreshTokenRepository interface {
	Create(ctx context.Context, userID int64) (*services.RefreshToken, error)

	FindByToken(ctx context.Context, token string) (*services.RefreshToken, error)

	DeleteByUserID(ctx context.Context, userID int64) error
}
