package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"taskhub/internal/auth/domain/services"
	"taskhub/internal/auth/ports/repositories"
	"taskhub/pkg/logger"
)

// RefreshTokenRepository реализует интерфейс repositories.RefreshTokenRepository
// для работы с Postgres. Уникальный индекс по user_id гарантирует один живой
// refresh токен на пользователя.
type RefreshTokenRepository struct {
	pool PgxPoolInterface
	ttl  time.Duration
}

// NewRefreshTokenRepository создает новый экземпляр репозитория refresh токенов.
func NewRefreshTokenRepository(pool PgxPoolInterface, ttl time.Duration) repositories.RefreshTokenRepository {
	return &RefreshTokenRepository{pool: pool, ttl: ttl}
}

// Create генерирует новый refresh токен для пользователя и замещает
// существующий. Значение токена непрозрачное, срок действия считается
// от текущего времени.
func (r *RefreshTokenRepository) Create(ctx context.Context, userID int64) (*services.RefreshToken, error) {
	log := logger.Log(ctx).With(zap.String("repository", "refresh_token"), zap.String("method", "Create"))

	token := uuid.NewString()
	expiresAt := time.Now().UTC().Add(r.ttl)

	query := `
        INSERT INTO refresh_tokens (user_id, token, expires_at)
        VALUES ($1, $2, $3)
        ON CONFLICT (user_id) DO UPDATE
        SET token = EXCLUDED.token, expires_at = EXCLUDED.expires_at, created_at = now()
        RETURNING id, user_id, token, expires_at, created_at
    `

	var refreshToken services.RefreshToken
	err := r.pool.QueryRow(ctx, query, userID, token, expiresAt).Scan(
		&refreshToken.ID,
		&refreshToken.UserID,
		&refreshToken.Token,
		&refreshToken.ExpiresAt,
		&refreshToken.CreatedAt,
	)

	if err != nil {
		log.Error(ctx, "error storing refresh token", zap.Error(err))
		return nil, fmt.Errorf("error storing refresh token: %w", err)
	}

	return &refreshToken, nil
}

// FindByToken находит refresh токен по его значению.
// Отсутствие строки не является ошибкой.
func (r *RefreshTokenRepository) FindByToken(ctx context.Context, token string) (*services.RefreshToken, error) {
	log := logger.Log(ctx).With(zap.String("repository", "refresh_token"), zap.String("method", "FindByToken"))

	query := `
        SELECT id, user_id, token, expires_at, created_at
        FROM refresh_tokens
        WHERE token = $1
    `

	var refreshToken services.RefreshToken
	err := r.pool.QueryRow(ctx, query, token).Scan(
		&refreshToken.ID,
		&refreshToken.UserID,
		&refreshToken.Token,
		&refreshToken.ExpiresAt,
		&refreshToken.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "refresh token not found")
			return nil, nil
		}
		log.Error(ctx, "error querying refresh token", zap.Error(err))
		return nil, fmt.Errorf("error querying refresh token: %w", err)
	}

	return &refreshToken, nil
}

// DeleteByUserID удаляет refresh токены пользователя.
func (r *RefreshTokenRepository) DeleteByUserID(ctx context.Context, userID int64) error {
	log := logger.Log(ctx).With(
		zap.String("repository", "refresh_token"),
		zap.String("method", "DeleteByUserID"),
		zap.Int64("userID", userID),
	)

	query := `
        DELETE FROM refresh_tokens
        WHERE user_id = $1
    `

	result, err := r.pool.Exec(ctx, query, userID)
	if err != nil {
		log.Error(ctx, "error deleting refresh tokens", zap.Error(err))
		return fmt.Errorf("error deleting refresh tokens: %w", err)
	}

	log.Debug(ctx, "refresh tokens deleted", zap.Int64("count", result.RowsAffected()))
	return nil
}
