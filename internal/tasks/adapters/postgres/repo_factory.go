package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"taskhub/internal/tasks/ports/repositories"
)

// RepositoryFactory создает хранилища сервиса задач.
type RepositoryFactory struct {
	pool *pgxpool.Pool
}

// NewRepositoryFactory создает новую фабрику хранилищ.
func NewRepositoryFactory(pool *pgxpool.Pool) *RepositoryFactory {
	return &RepositoryFactory{pool: pool}
}

// TaskRepository возвращает хранилище задач.
func (f *RepositoryFactory) TaskRepository() repositories.TaskRepository {
	return NewTaskRepository(f.pool)
}
