// Package api определяет интерфейсы сценариев использования сервиса задач.
package api

import (
	"context"

	"taskhub/internal/tasks/domain/entities"
)

// TaskUseCase определяет сценарии использования для работы с задачами.
type TaskUseCase interface {
	// GetAllTasks возвращает все задачи.
	GetAllTasks(ctx context.Context) ([]*entities.Task, error)

	// GetTaskByID возвращает задачу, обогащенную сведениями о владельце.
	GetTaskByID(ctx context.Context, id int64) (*entities.TaskDetails, error)

	// AddTask создает новую задачу.
	AddTask(ctx context.Context, userID int64, title, description string) (*entities.Task, error)

	// UpdateTask обновляет существующую задачу.
	UpdateTask(ctx context.Context, task *entities.Task) (*entities.Task, error)

	// DeleteTask удаляет задачу и возвращает отчет об удалении.
	DeleteTask(ctx context.Context, id int64) (map[string]bool, error)
}
