package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"taskhub/internal/auth/domain/entities"
	"taskhub/internal/auth/ports/api"
	"taskhub/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerGetUserByID = "user handler: get user by id"
	LogHandlerHello       = "user handler: hello"
)

// UserHandler содержит HTTP обработчики запросов к данным пользователей.
type UserHandler struct {
	userUseCase api.UserUseCase
}

// NewUserHandler создает новый экземпляр обработчика пользователей.
func NewUserHandler(userUseCase api.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

// GetUserByID возвращает учетную запись по идентификатору.
// Запрос используется сервисом задач для обогащения данных о владельце.
func (h *UserHandler) GetUserByID(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerGetUserByID)

	userID, err := strconv.ParseInt(ctx.Params("userId"), 10, 64)
	if err != nil {
		return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "user id must be a number",
		})
	}

	user, err := h.userUseCase.GetUserByID(requestCtx, userID)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		if errors.Is(err, entities.ErrUserNotFound) {
			return ctx.Status(http.StatusNotFound).JSON(fiber.Map{
				"error": entities.ErrUserNotFound.Error(),
			})
		}
		if errors.Is(err, entities.ErrInvalidUserID) {
			return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": entities.ErrInvalidUserID.Error(),
			})
		}
		return ctx.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return ctx.Status(http.StatusOK).JSON(UserResponse{
		UserID:    user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	})
}

// Hello - проверочный обработчик доступности сервиса.
func (h *UserHandler) Hello(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerHello)
	return ctx.Status(http.StatusOK).SendString("Hello")
}
