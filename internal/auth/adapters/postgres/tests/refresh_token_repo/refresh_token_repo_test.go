package refreshtokenrepo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskhub/internal/auth/adapters/postgres"
	"taskhub/internal/auth/domain/services"
	"taskhub/pkg/logger"
)

var errDatabaseConnection = errors.New("database connection error")

func testContext(t *testing.T) context.Context {
	t.Helper()
	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	return logger.NewContext(context.Background(), testLogger)
}

func TestRefreshTokenRepository_Create(t *testing.T) {
	ctx := testContext(t)
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("generates a token and upserts the user row", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO refresh_tokens").
			WithArgs(int64(1), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "token", "expires_at", "created_at"}).
				AddRow(int64(5), int64(1), "generated-token", now.Add(24*time.Hour), now))

		repo := postgres.NewRefreshTokenRepository(mock, 24*time.Hour)

		token, err := repo.Create(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, int64(1), token.UserID)
		assert.NotEmpty(t, token.Token)
		assert.True(t, token.ExpiresAt.After(now))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO refresh_tokens").
			WithArgs(int64(1), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnError(errDatabaseConnection)

		repo := postgres.NewRefreshTokenRepository(mock, 24*time.Hour)

		token, err := repo.Create(ctx, 1)

		assert.Nil(t, token)
		require.ErrorIs(t, err, errDatabaseConnection)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRefreshTokenRepository_FindByToken(t *testing.T) {
	ctx := testContext(t)
	now := time.Now().UTC().Truncate(time.Microsecond)

	stored := services.RefreshToken{
		ID:        5,
		UserID:    1,
		Token:     "stored-token",
		ExpiresAt: now.Add(24 * time.Hour),
		CreatedAt: now,
	}

	t.Run("token found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, user_id, token, expires_at, created_at").
			WithArgs(stored.Token).
			WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "token", "expires_at", "created_at"}).
				AddRow(stored.ID, stored.UserID, stored.Token, stored.ExpiresAt, stored.CreatedAt))

		repo := postgres.NewRefreshTokenRepository(mock, 24*time.Hour)

		token, err := repo.FindByToken(ctx, stored.Token)

		require.NoError(t, err)
		assert.Equal(t, stored, *token)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row is not an error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, user_id, token, expires_at, created_at").
			WithArgs("unknown").
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewRefreshTokenRepository(mock, 24*time.Hour)

		token, err := repo.FindByToken(ctx, "unknown")

		require.NoError(t, err)
		assert.Nil(t, token)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRefreshTokenRepository_DeleteByUserID(t *testing.T) {
	ctx := testContext(t)

	t.Run("deletes the user rows", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("DELETE FROM refresh_tokens").
			WithArgs(int64(1)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		repo := postgres.NewRefreshTokenRepository(mock, 24*time.Hour)

		require.NoError(t, repo.DeleteByUserID(ctx, 1))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("DELETE FROM refresh_tokens").
			WithArgs(int64(1)).
			WillReturnError(errDatabaseConnection)

		repo := postgres.NewRefreshTokenRepository(mock, 24*time.Hour)

		require.ErrorIs(t, repo.DeleteByUserID(ctx, 1), errDatabaseConnection)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
