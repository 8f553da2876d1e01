package taskusecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"taskhub/internal/tasks/app"
	"taskhub/internal/tasks/domain/entities"
)

var (
	errDatabaseConnection = errors.New("database connection error")
	errAuthUnreachable    = errors.New("auth service unreachable")
)

func TestGetAllTasks(t *testing.T) {
	taskRepo := &mockTaskRepository{}
	userClient := &mockUserClient{}

	stored := []*entities.Task{
		{ID: 1, UserID: 1, Title: "first"},
		{ID: 2, UserID: 2, Title: "second"},
	}
	taskRepo.On("FindAll", mock.Anything).Return(stored, nil).Once()

	useCase := app.NewTaskUseCase(taskRepo, userClient)

	tasks, err := useCase.GetAllTasks(context.Background())

	require.NoError(t, err)
	assert.Equal(t, stored, tasks)
	taskRepo.AssertExpectations(t)
}

func TestGetTaskByID(t *testing.T) {
	now := time.Now()

	task := &entities.Task{
		ID:        1,
		UserID:    7,
		Title:     "write report",
		Completed: false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	owner := &entities.UserInfo{UserID: 7, Username: "alice"}

	t.Run("task enriched with owner", func(t *testing.T) {
		taskRepo := &mockTaskRepository{}
		userClient := &mockUserClient{}

		taskRepo.On("FindByID", mock.Anything, int64(1)).Return(task, nil).Once()
		userClient.On("GetUserByID", mock.Anything, int64(7)).Return(owner, nil).Once()

		useCase := app.NewTaskUseCase(taskRepo, userClient)

		details, err := useCase.GetTaskByID(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, *task, details.Task)
		assert.Equal(t, owner, details.Owner)
		taskRepo.AssertExpectations(t)
		userClient.AssertExpectations(t)
	})

	t.Run("owner lookup failure does not fail the read", func(t *testing.T) {
		taskRepo := &mockTaskRepository{}
		userClient := &mockUserClient{}

		taskRepo.On("FindByID", mock.Anything, int64(1)).Return(task, nil).Once()
		userClient.On("GetUserByID", mock.Anything, int64(7)).Return(nil, errAuthUnreachable).Once()

		useCase := app.NewTaskUseCase(taskRepo, userClient)

		details, err := useCase.GetTaskByID(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, *task, details.Task)
		assert.Nil(t, details.Owner)
	})

	t.Run("missing task returns typed error", func(t *testing.T) {
		taskRepo := &mockTaskRepository{}
		userClient := &mockUserClient{}

		taskRepo.On("FindByID", mock.Anything, int64(404)).
			Return(nil, entities.ErrTaskNotFound).Once()

		useCase := app.NewTaskUseCase(taskRepo, userClient)

		details, err := useCase.GetTaskByID(context.Background(), 404)

		require.ErrorIs(t, err, entities.ErrTaskNotFound)
		assert.Nil(t, details)
		userClient.AssertNotCalled(t, "GetUserByID", mock.Anything, mock.Anything)
	})
}

func TestAddTask(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		taskRepo := &mockTaskRepository{}
		userClient := &mockUserClient{}

		created := &entities.Task{ID: 10, UserID: 1, Title: "new task", Description: "details"}
		taskRepo.On("Create", mock.Anything, mock.MatchedBy(func(task *entities.Task) bool {
			return task.UserID == 1 && task.Title == "new task" && !task.Completed
		})).Return(created, nil).Once()

		useCase := app.NewTaskUseCase(taskRepo, userClient)

		task, err := useCase.AddTask(context.Background(), 1, "new task", "details")

		require.NoError(t, err)
		assert.Equal(t, created, task)
		taskRepo.AssertExpectations(t)
	})

	t.Run("empty title rejected", func(t *testing.T) {
		taskRepo := &mockTaskRepository{}
		userClient := &mockUserClient{}

		useCase := app.NewTaskUseCase(taskRepo, userClient)

		task, err := useCase.AddTask(context.Background(), 1, "   ", "details")

		require.ErrorIs(t, err, entities.ErrEmptyTitle)
		assert.Nil(t, task)
		taskRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestUpdateTask(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		taskRepo := &mockTaskRepository{}
		userClient := &mockUserClient{}

		input := &entities.Task{ID: 1, Title: "renamed", Completed: true}
		updated := &entities.Task{ID: 1, UserID: 7, Title: "renamed", Completed: true}
		taskRepo.On("Update", mock.Anything, input).Return(updated, nil).Once()

		useCase := app.NewTaskUseCase(taskRepo, userClient)

		task, err := useCase.UpdateTask(context.Background(), input)

		require.NoError(t, err)
		assert.Equal(t, updated, task)
	})

	t.Run("missing task", func(t *testing.T) {
		taskRepo := &mockTaskRepository{}
		userClient := &mockUserClient{}

		input := &entities.Task{ID: 404, Title: "renamed"}
		taskRepo.On("Update", mock.Anything, input).Return(nil, entities.ErrTaskNotFound).Once()

		useCase := app.NewTaskUseCase(taskRepo, userClient)

		_, err := useCase.UpdateTask(context.Background(), input)

		require.ErrorIs(t, err, entities.ErrTaskNotFound)
	})
}

func TestDeleteTask(t *testing.T) {
	t.Run("success returns deletion report", func(t *testing.T) {
		taskRepo := &mockTaskRepository{}
		userClient := &mockUserClient{}

		taskRepo.On("Delete", mock.Anything, int64(1)).Return(nil).Once()

		useCase := app.NewTaskUseCase(taskRepo, userClient)

		report, err := useCase.DeleteTask(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, map[string]bool{"deleted": true}, report)
	})

	t.Run("missing task", func(t *testing.T) {
		taskRepo := &mockTaskRepository{}
		userClient := &mockUserClient{}

		taskRepo.On("Delete", mock.Anything, int64(404)).Return(entities.ErrTaskNotFound).Once()

		useCase := app.NewTaskUseCase(taskRepo, userClient)

		report, err := useCase.DeleteTask(context.Background(), 404)

		require.ErrorIs(t, err, entities.ErrTaskNotFound)
		assert.Nil(t, report)
	})

	t.Run("storage failure", func(t *testing.T) {
		taskRepo := &mockTaskRepository{}
		userClient := &mockUserClient{}

		taskRepo.On("Delete", mock.Anything, int64(1)).Return(errDatabaseConnection).Once()

		useCase := app.NewTaskUseCase(taskRepo, userClient)

		_, err := useCase.DeleteTask(context.Background(), 1)

		require.ErrorIs(t, err, errDatabaseConnection)
	})
}
