package http

import (
	"github.com/gofiber/fiber/v3"

	"taskhub/internal/auth/adapters/http/middleware"
	"taskhub/internal/auth/ports/api"
	"taskhub/internal/auth/ports/repositories"
	svc "taskhub/internal/auth/ports/services"
)

// SetupRouter настраивает маршрутизацию сервиса аутентификации.
func SetupRouter(
	app *fiber.App,
	authUseCase api.AuthUseCase,
	userUseCase api.UserUseCase,
	tokenSvc svc.TokenService,
	userRepo repositories.UserRepository,
) {
	authHandler := NewAuthHandler(authUseCase)
	userHandler := NewUserHandler(userUseCase)

	// Middleware для всех запросов.
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	apiGroup := app.Group("/api")

	// Маршруты аутентификации (публичные).
	authRoutes := apiGroup.Group("/auth")
	authRoutes.Post("/signup", authHandler.SignUp)
	authRoutes.Post("/signin", authHandler.SignIn)
	authRoutes.Post("/refreshtoken", authHandler.Refresh)

	// Выход требует принципала, восстановленного из bearer токена.
	authRoutes.Post("/signout", authHandler.SignOut, middleware.NewPrincipalMiddleware(tokenSvc, userRepo))

	// Запросы к данным пользователей, используемые другими сервисами.
	userRoutes := apiGroup.Group("/user")
	userRoutes.Get("/hello", userHandler.Hello)
	userRoutes.Get("/getUserById/:userId", userHandler.GetUserByID)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
