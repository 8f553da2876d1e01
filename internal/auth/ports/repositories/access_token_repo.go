package repositories

import (
	"context"

	"taskhub/internal/auth/domain/services"
)

// AccessTokenRepository определяет интерфейс хранилища активных access токенов.
// Хранилище держит не более одной строки на пользователя: запись нового токена
// вытесняет предыдущий. Методы поиска возвращают nil без ошибки, если строка
// не найдена.
type AccessTokenRepository interface {
	RecordActive(ctx context.Context, userID int64, token string) error

	FindByToken(ctx context.Context, token string) (*services.AccessTokenRecord, error)

	FindByUserID(ctx context.Context, userID int64) (*services.AccessTokenRecord, error)

	Deactivate(ctx context.Context, token string) error

	DeleteByToken(ctx context.Context, token string) error
}
