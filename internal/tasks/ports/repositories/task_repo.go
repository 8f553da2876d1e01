// Package repositories определяет интерфейсы хранилищ сервиса задач.
package repositories

import (
	"context"

	"taskhub/internal/tasks/domain/entities"
)

// TaskRepository определяет операции над хранилищем задач.
type TaskRepository interface {
	// Create сохраняет новую задачу и возвращает ее с заполненными
	// идентификатором и временными метками.
	Create(ctx context.Context, task *entities.Task) (*entities.Task, error)

	// FindByID возвращает задачу по идентификатору.
	// Возвращает entities.ErrTaskNotFound, если задача не существует.
	FindByID(ctx context.Context, id int64) (*entities.Task, error)

	// FindAll возвращает все задачи, отсортированные по идентификатору.
	FindAll(ctx context.Context) ([]*entities.Task, error)

	// Update обновляет задачу и возвращает ее актуальное состояние.
	// Возвращает entities.ErrTaskNotFound, если задача не существует.
	Update(ctx context.Context, task *entities.Task) (*entities.Task, error)

	// Delete удаляет задачу по идентификатору.
	// Возвращает entities.ErrTaskNotFound, если задача не существует.
	Delete(ctx context.Context, id int64) error
}
