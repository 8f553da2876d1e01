package services

import (
	"context"
	"time"

	domain "taskhub/internal/auth/domain/services"
)

// TokenService определяет интерфейс для операций с подписанными токенами.
type TokenService interface {
	// IssueAccessToken выпускает access токен с идентификатором и именем пользователя.
	IssueAccessToken(ctx context.Context, userID int64, username string) (string, time.Time, error)

	// IssueBareToken выпускает access токен только по имени пользователя.
	// Используется в потоке обновления, где учетные данные повторно не проверяются.
	IssueBareToken(ctx context.Context, username string) (string, time.Time, error)

	// Parse проверяет подпись и срок действия токена и возвращает его claims.
	Parse(ctx context.Context, token string) (*domain.Claims, error)
}
