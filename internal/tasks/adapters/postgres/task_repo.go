// Package postgres содержит реализацию хранилищ сервиса задач поверх PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"taskhub/internal/tasks/domain/entities"
	"taskhub/internal/tasks/ports/repositories"
	"taskhub/pkg/logger"
)

// Константы для логирования.
const (
	methodCreateTask   = "create task"
	methodFindTask     = "find task by id"
	methodFindAllTasks = "find all tasks"
	methodUpdateTask   = "update task"
	methodDeleteTask   = "delete task"

	errCtxCreateTask   = "failed to create task"
	errCtxFindTask     = "failed to find task"
	errCtxFindAllTasks = "failed to find tasks"
	errCtxUpdateTask   = "failed to update task"
	errCtxDeleteTask   = "failed to delete task"
	errCtxScanTask     = "failed to scan task row"
)

// PgxPoolInterface определяет методы пула соединений, используемые хранилищем.
type PgxPoolInterface interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Close()
}

// TaskRepository реализует repositories.TaskRepository поверх PostgreSQL.
type TaskRepository struct {
	pool PgxPoolInterface
}

// NewTaskRepository создает новый экземпляр хранилища задач.
func NewTaskRepository(pool PgxPoolInterface) repositories.TaskRepository {
	return &TaskRepository{pool: pool}
}

// Create сохраняет новую задачу.
func (r *TaskRepository) Create(ctx context.Context, task *entities.Task) (*entities.Task, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCreateTask), zap.Int64("userID", task.UserID))

	query := `
		INSERT INTO tasks (user_id, title, description, completed)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, title, description, completed, created_at, updated_at`

	created, err := r.scanTask(r.pool.QueryRow(ctx, query,
		task.UserID, task.Title, task.Description, task.Completed))
	if err != nil {
		log.Error(ctx, errCtxCreateTask, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreateTask, err)
	}

	return created, nil
}

// FindByID возвращает задачу по идентификатору.
func (r *TaskRepository) FindByID(ctx context.Context, id int64) (*entities.Task, error) {
	log := logger.Log(ctx).With(zap.String("method", methodFindTask), zap.Int64("taskID", id))

	query := `
		SELECT id, user_id, title, description, completed, created_at, updated_at
		FROM tasks
		WHERE id = $1`

	task, err := r.scanTask(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		log.Error(ctx, errCtxFindTask, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindTask, err)
	}

	return task, nil
}

// FindAll возвращает все задачи, отсортированные по идентификатору.
func (r *TaskRepository) FindAll(ctx context.Context) ([]*entities.Task, error) {
	log := logger.Log(ctx).With(zap.String("method", methodFindAllTasks))

	query := `
		SELECT id, user_id, title, description, completed, created_at, updated_at
		FROM tasks
		ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		log.Error(ctx, errCtxFindAllTasks, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindAllTasks, err)
	}
	defer rows.Close()

	var tasks []*entities.Task
	for rows.Next() {
		var task entities.Task
		if err := rows.Scan(
			&task.ID, &task.UserID, &task.Title, &task.Description,
			&task.Completed, &task.CreatedAt, &task.UpdatedAt,
		); err != nil {
			log.Error(ctx, errCtxScanTask, zap.Error(err))
			return nil, fmt.Errorf("%s: %w", errCtxScanTask, err)
		}
		tasks = append(tasks, &task)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, errCtxFindAllTasks, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindAllTasks, err)
	}

	return tasks, nil
}

// Update обновляет задачу.
func (r *TaskRepository) Update(ctx context.Context, task *entities.Task) (*entities.Task, error) {
	log := logger.Log(ctx).With(zap.String("method", methodUpdateTask), zap.Int64("taskID", task.ID))

	query := `
		UPDATE tasks
		SET title = $2, description = $3, completed = $4, updated_at = now()
		WHERE id = $1
		RETURNING id, user_id, title, description, completed, created_at, updated_at`

	updated, err := r.scanTask(r.pool.QueryRow(ctx, query,
		task.ID, task.Title, task.Description, task.Completed))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		log.Error(ctx, errCtxUpdateTask, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxUpdateTask, err)
	}

	return updated, nil
}

// Delete удаляет задачу по идентификатору.
func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	log := logger.Log(ctx).With(zap.String("method", methodDeleteTask), zap.Int64("taskID", id))

	tag, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		log.Error(ctx, errCtxDeleteTask, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxDeleteTask, err)
	}

	if tag.RowsAffected() == 0 {
		return entities.ErrTaskNotFound
	}

	return nil
}

func (r *TaskRepository) scanTask(row pgx.Row) (*entities.Task, error) {
	var task entities.Task
	err := row.Scan(
		&task.ID, &task.UserID, &task.Title, &task.Description,
		&task.Completed, &task.CreatedAt, &task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &task, nil
}
