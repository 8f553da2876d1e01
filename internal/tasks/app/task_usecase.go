// Package app реализует сценарии использования сервиса задач.
package app

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"taskhub/internal/tasks/domain/entities"
	"taskhub/internal/tasks/ports/api"
	"taskhub/internal/tasks/ports/clients"
	"taskhub/internal/tasks/ports/repositories"
	"taskhub/pkg/logger"
)

// Константы для методов логирования.
const (
	methodGetAllTasks = "get all tasks"
	methodGetTask     = "get task by id"
	methodAddTask     = "add task"
	methodUpdateTask  = "update task"
	methodDeleteTask  = "delete task"
)

// Константы для сообщений логирования.
const (
	msgTaskCreated      = "task created"
	msgTaskUpdated      = "task updated"
	msgTaskDeleted      = "task deleted"
	msgOwnerUnavailable = "task owner details unavailable"
)

// Константы для контекста ошибок.
const (
	errCtxListTasks  = "failed to list tasks"
	errCtxGetTask    = "failed to get task"
	errCtxAddTask    = "failed to add task"
	errCtxUpdateTask = "failed to update task"
	errCtxDeleteTask = "failed to delete task"
)

// Ключ отчета об удалении задачи.
const deletedReportKey = "deleted"

// TaskUseCaseImpl реализует сценарии использования для работы с задачами.
type TaskUseCaseImpl struct {
	taskRepo   repositories.TaskRepository
	userClient clients.UserClient
}

// NewTaskUseCase создает новый экземпляр сценариев использования задач.
func NewTaskUseCase(taskRepo repositories.TaskRepository, userClient clients.UserClient) api.TaskUseCase {
	return &TaskUseCaseImpl{
		taskRepo:   taskRepo,
		userClient: userClient,
	}
}

// GetAllTasks возвращает все задачи.
func (uc *TaskUseCaseImpl) GetAllTasks(ctx context.Context) ([]*entities.Task, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetAllTasks))

	tasks, err := uc.taskRepo.FindAll(ctx)
	if err != nil {
		log.Error(ctx, errCtxListTasks, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListTasks, err)
	}

	return tasks, nil
}

// GetTaskByID возвращает задачу, обогащенную сведениями о владельце.
// Недоступность сервиса аутентификации не прерывает запрос: задача
// возвращается без сведений о владельце.
func (uc *TaskUseCaseImpl) GetTaskByID(ctx context.Context, id int64) (*entities.TaskDetails, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetTask), zap.Int64("taskID", id))

	task, err := uc.taskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxGetTask, err)
	}

	details := &entities.TaskDetails{Task: *task}

	owner, err := uc.userClient.GetUserByID(ctx, task.UserID)
	if err != nil {
		log.Warn(ctx, msgOwnerUnavailable, zap.Error(err))
		return details, nil
	}
	details.Owner = owner

	return details, nil
}

// AddTask создает новую задачу.
func (uc *TaskUseCaseImpl) AddTask(ctx context.Context, userID int64, title, description string) (*entities.Task, error) {
	log := logger.Log(ctx).With(zap.String("method", methodAddTask), zap.Int64("userID", userID))

	if strings.TrimSpace(title) == "" {
		return nil, entities.ErrEmptyTitle
	}

	task, err := uc.taskRepo.Create(ctx, &entities.Task{
		UserID:      userID,
		Title:       title,
		Description: description,
	})
	if err != nil {
		log.Error(ctx, errCtxAddTask, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxAddTask, err)
	}

	log.Info(ctx, msgTaskCreated, zap.Int64("taskID", task.ID))

	return task, nil
}

// UpdateTask обновляет существующую задачу.
func (uc *TaskUseCaseImpl) UpdateTask(ctx context.Context, task *entities.Task) (*entities.Task, error) {
	log := logger.Log(ctx).With(zap.String("method", methodUpdateTask), zap.Int64("taskID", task.ID))

	if strings.TrimSpace(task.Title) == "" {
		return nil, entities.ErrEmptyTitle
	}

	updated, err := uc.taskRepo.Update(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxUpdateTask, err)
	}

	log.Info(ctx, msgTaskUpdated)

	return updated, nil
}

// DeleteTask удаляет задачу и возвращает отчет об удалении.
func (uc *TaskUseCaseImpl) DeleteTask(ctx context.Context, id int64) (map[string]bool, error) {
	log := logger.Log(ctx).With(zap.String("method", methodDeleteTask), zap.Int64("taskID", id))

	if err := uc.taskRepo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxDeleteTask, err)
	}

	log.Info(ctx, msgTaskDeleted)

	return map[string]bool{deletedReportKey: true}, nil
}
