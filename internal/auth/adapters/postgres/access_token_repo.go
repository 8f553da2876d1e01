package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"taskhub/internal/auth/domain/services"
	"taskhub/internal/auth/ports/repositories"
	"taskhub/pkg/logger"
)

// AccessTokenRepository реализует интерфейс repositories.AccessTokenRepository
// для работы с Postgres. Таблица access_tokens хранит маркер текущей сессии:
// уникальный индекс по user_id гарантирует одну строку на пользователя.
type AccessTokenRepository struct {
	pool PgxPoolInterface
}

// NewAccessTokenRepository создает новый экземпляр репозитория access токенов.
func NewAccessTokenRepository(pool PgxPoolInterface) repositories.AccessTokenRepository {
	return &AccessTokenRepository{pool: pool}
}

// RecordActive записывает активный access токен пользователя. Предыдущая
// строка пользователя перезаписывается: при конкурентных входах побеждает
// последняя запись.
func (r *AccessTokenRepository) RecordActive(ctx context.Context, userID int64, token string) error {
	log := logger.Log(ctx).With(zap.String("repository", "access_token"), zap.String("method", "RecordActive"))

	query := `
        INSERT INTO access_tokens (user_id, token, is_active)
        VALUES ($1, $2, true)
        ON CONFLICT (user_id) DO UPDATE
        SET token = EXCLUDED.token, is_active = true, created_at = now()
    `

	_, err := r.pool.Exec(ctx, query, userID, token)
	if err != nil {
		log.Error(ctx, "error recording active token", zap.Error(err))
		return fmt.Errorf("error recording active token: %w", err)
	}

	return nil
}

// FindByToken находит запись по значению токена.
func (r *AccessTokenRepository) FindByToken(ctx context.Context, token string) (*services.AccessTokenRecord, error) {
	log := logger.Log(ctx).With(zap.String("repository", "access_token"), zap.String("method", "FindByToken"))

	query := `
        SELECT id, user_id, token, is_active, created_at
        FROM access_tokens
        WHERE token = $1
    `

	return r.scanRecord(ctx, log, r.pool.QueryRow(ctx, query, token))
}

// FindByUserID находит запись по идентификатору пользователя.
func (r *AccessTokenRepository) FindByUserID(ctx context.Context, userID int64) (*services.AccessTokenRecord, error) {
	log := logger.Log(ctx).With(zap.String("repository", "access_token"), zap.String("method", "FindByUserID"))

	query := `
        SELECT id, user_id, token, is_active, created_at
        FROM access_tokens
        WHERE user_id = $1
    `

	return r.scanRecord(ctx, log, r.pool.QueryRow(ctx, query, userID))
}

// Deactivate помечает токен неактивным. Строка сохраняется для аудита.
func (r *AccessTokenRepository) Deactivate(ctx context.Context, token string) error {
	log := logger.Log(ctx).With(zap.String("repository", "access_token"), zap.String("method", "Deactivate"))

	query := `
        UPDATE access_tokens
        SET is_active = false
        WHERE token = $1
    `

	result, err := r.pool.Exec(ctx, query, token)
	if err != nil {
		log.Error(ctx, "error deactivating token", zap.Error(err))
		return fmt.Errorf("error deactivating token: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "token not found for deactivation")
	}

	return nil
}

// DeleteByToken удаляет запись по значению токена.
func (r *AccessTokenRepository) DeleteByToken(ctx context.Context, token string) error {
	log := logger.Log(ctx).With(zap.String("repository", "access_token"), zap.String("method", "DeleteByToken"))

	query := `
        DELETE FROM access_tokens
        WHERE token = $1
    `

	_, err := r.pool.Exec(ctx, query, token)
	if err != nil {
		log.Error(ctx, "error deleting token", zap.Error(err))
		return fmt.Errorf("error deleting token: %w", err)
	}

	return nil
}

// scanRecord читает одну строку таблицы access_tokens.
// Отсутствие строки не является ошибкой.
func (r *AccessTokenRepository) scanRecord(ctx context.Context, log *logger.Logger, row pgx.Row) (*services.AccessTokenRecord, error) {
	var record services.AccessTokenRecord

	err := row.Scan(
		&record.ID,
		&record.UserID,
		&record.Token,
		&record.IsActive,
		&record.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "access token record not found")
			return nil, nil
		}
		log.Error(ctx, "error querying access token", zap.Error(err))
		return nil, fmt.Errorf("error querying access token: %w", err)
	}

	return &record, nil
}
