package http

import (
	"github.com/gofiber/fiber/v3"

	"taskhub/internal/tasks/adapters/http/middleware"
	"taskhub/internal/tasks/ports/api"
)

// SetupRouter настраивает маршрутизацию сервиса задач.
func SetupRouter(app *fiber.App, taskUseCase api.TaskUseCase) {
	taskHandler := NewTaskHandler(taskUseCase)

	// Middleware для всех запросов.
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	apiGroup := app.Group("/api")

	taskRoutes := apiGroup.Group("/task")
	taskRoutes.Get("/getTasks", taskHandler.GetAllTasks)
	taskRoutes.Get("/getTaskById/:taskId", taskHandler.GetTaskByID)
	taskRoutes.Post("/addTask", taskHandler.AddTask)
	taskRoutes.Put("/updateTask/:taskId", taskHandler.UpdateTask)
	taskRoutes.Delete("/deleteTask/:taskId", taskHandler.DeleteTask)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
