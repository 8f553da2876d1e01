package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"taskhub/internal/tasks/domain/entities"
	"taskhub/internal/tasks/ports/api"
	"taskhub/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerGetAllTasks = "task handler: get all tasks"
	LogHandlerGetTask     = "task handler: get task by id"
	LogHandlerAddTask     = "task handler: add task"
	LogHandlerUpdateTask  = "task handler: update task"
	LogHandlerDeleteTask  = "task handler: delete task"

	ErrorInvalidRequest       = "invalid request"
	ErrorInvalidTaskID        = "task id must be a number"
	ErrorFailedToServeRequest = "failed to serve request"
)

// TaskHandler содержит HTTP обработчики операций над задачами.
type TaskHandler struct {
	taskUseCase api.TaskUseCase
}

// NewTaskHandler создает новый экземпляр обработчика задач.
func NewTaskHandler(taskUseCase api.TaskUseCase) *TaskHandler {
	return &TaskHandler{
		taskUseCase: taskUseCase,
	}
}

// GetAllTasks возвращает все задачи.
func (h *TaskHandler) GetAllTasks(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerGetAllTasks)

	tasks, err := h.taskUseCase.GetAllTasks(requestCtx)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return ctx.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	response := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		response = append(response, taskToResponse(task))
	}

	return ctx.Status(http.StatusOK).JSON(response)
}

// GetTaskByID возвращает задачу с данными о владельце.
func (h *TaskHandler) GetTaskByID(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerGetTask)

	taskID, err := strconv.ParseInt(ctx.Params("taskId"), 10, 64)
	if err != nil {
		return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": ErrorInvalidTaskID,
		})
	}

	details, err := h.taskUseCase.GetTaskByID(requestCtx, taskID)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		if errors.Is(err, entities.ErrTaskNotFound) {
			return ctx.Status(http.StatusNotFound).JSON(fiber.Map{
				"error": entities.ErrTaskNotFound.Error(),
			})
		}
		return ctx.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	response := TaskDetailsResponse{TaskResponse: taskToResponse(&details.Task)}
	if details.Owner != nil {
		response.Owner = &TaskOwnerResponse{
			UserID:   details.Owner.UserID,
			Username: details.Owner.Username,
		}
	}

	return ctx.Status(http.StatusOK).JSON(response)
}

// AddTask создает новую задачу.
func (h *TaskHandler) AddTask(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerAddTask)

	var req CreateTaskRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": ErrorInvalidRequest,
		})
	}

	task, err := h.taskUseCase.AddTask(requestCtx, req.UserID, req.Title, req.Description)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		if errors.Is(err, entities.ErrEmptyTitle) {
			return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": entities.ErrEmptyTitle.Error(),
			})
		}
		return ctx.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return ctx.Status(http.StatusCreated).JSON(taskToResponse(task))
}

// UpdateTask обновляет существующую задачу.
func (h *TaskHandler) UpdateTask(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerUpdateTask)

	taskID, err := strconv.ParseInt(ctx.Params("taskId"), 10, 64)
	if err != nil {
		return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": ErrorInvalidTaskID,
		})
	}

	var req UpdateTaskRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": ErrorInvalidRequest,
		})
	}

	task, err := h.taskUseCase.UpdateTask(requestCtx, &entities.Task{
		ID:          taskID,
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		switch {
		case errors.Is(err, entities.ErrTaskNotFound):
			return ctx.Status(http.StatusNotFound).JSON(fiber.Map{
				"error": entities.ErrTaskNotFound.Error(),
			})
		case errors.Is(err, entities.ErrEmptyTitle):
			return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": entities.ErrEmptyTitle.Error(),
			})
		default:
			return ctx.Status(http.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
	}

	return ctx.Status(http.StatusOK).JSON(taskToResponse(task))
}

// DeleteTask удаляет задачу и возвращает отчет об удалении.
func (h *TaskHandler) DeleteTask(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerDeleteTask)

	taskID, err := strconv.ParseInt(ctx.Params("taskId"), 10, 64)
	if err != nil {
		return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": ErrorInvalidTaskID,
		})
	}

	report, err := h.taskUseCase.DeleteTask(requestCtx, taskID)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		if errors.Is(err, entities.ErrTaskNotFound) {
			return ctx.Status(http.StatusNotFound).JSON(fiber.Map{
				"error": entities.ErrTaskNotFound.Error(),
			})
		}
		return ctx.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return ctx.Status(http.StatusOK).JSON(report)
}

func taskToResponse(task *entities.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		UserID:      task.UserID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}
