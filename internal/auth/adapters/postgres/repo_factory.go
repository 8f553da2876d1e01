package postgres

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"taskhub/internal/auth/ports/repositories"
)

// RepositoryFactory создает все необходимые репозитории для работы с PostgreSQL.
type RepositoryFactory struct {
	userRepo         repositories.UserRepository
	accessTokenRepo  repositories.AccessTokenRepository
	refreshTokenRepo repositories.RefreshTokenRepository
}

// NewRepositoryFactory создает новую фабрику репозиториев.
func NewRepositoryFactory(pool *pgxpool.Pool, refreshTokenTTL time.Duration) *RepositoryFactory {
	return &RepositoryFactory{
		userRepo:         NewUserRepository(pool),
		accessTokenRepo:  NewAccessTokenRepository(pool),
		refreshTokenRepo: NewRefreshTokenRepository(pool, refreshTokenTTL),
	}
}

// UserRepository возвращает репозиторий учетных записей.
func (f *RepositoryFactory) UserRepository() repositories.UserRepository {
	return f.userRepo
}

// AccessTokenRepository возвращает репозиторий access токенов.
func (f *RepositoryFactory) AccessTokenRepository() repositories.AccessTokenRepository {
	return f.accessTokenRepo
}

// RefreshTokenRepository возвращает репозиторий refresh токенов.
func (f *RepositoryFactory) RefreshTokenRepository() repositories.RefreshTokenRepository {
	return f.refreshTokenRepo
}
