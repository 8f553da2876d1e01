package http

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"taskhub/internal/auth/adapters/http/middleware"
	"taskhub/internal/auth/domain/entities"
	"taskhub/internal/auth/domain/services"
	"taskhub/internal/auth/ports/api"
	"taskhub/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerSignIn  = "auth handler: sign in"
	LogHandlerSignUp  = "auth handler: sign up"
	LogHandlerRefresh = "auth handler: refresh token" // #nosec G101 - not a credential
	LogHandlerSignOut = "auth handler: sign out"

	ErrorInvalidRequest       = "invalid request"
	ErrorFailedToServeRequest = "failed to serve request"
)

// AuthHandler содержит HTTP обработчики операций аутентификации.
type AuthHandler struct {
	authUseCase api.AuthUseCase
}

// NewAuthHandler создает новый экземпляр обработчика аутентификации.
func NewAuthHandler(authUseCase api.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

// SignIn обрабатывает запрос на вход пользователя.
func (h *AuthHandler) SignIn(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerSignIn)

	var req SignInRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": ErrorInvalidRequest,
		})
	}

	if req.Username == "" || req.Password == "" {
		return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "username and password are required",
		})
	}

	session, err := h.authUseCase.SignIn(requestCtx, req.Username, req.Password)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		if errors.Is(err, services.ErrInvalidCredentials) {
			return ctx.Status(http.StatusUnauthorized).JSON(fiber.Map{
				"error": services.ErrInvalidCredentials.Error(),
			})
		}
		return ctx.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return ctx.Status(http.StatusOK).JSON(JwtResponse{
		Token:        session.AccessToken,
		Type:         session.TokenType,
		RefreshToken: session.RefreshToken,
		UserID:       session.UserID,
		Username:     session.Username,
	})
}

// SignUp обрабатывает запрос на регистрацию нового пользователя.
func (h *AuthHandler) SignUp(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerSignUp)

	var req SignUpRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": ErrorInvalidRequest,
		})
	}

	message, err := h.authUseCase.SignUp(requestCtx, req.Username, req.Password)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		switch {
		case errors.Is(err, services.ErrUsernameTaken):
			return ctx.Status(http.StatusConflict).JSON(fiber.Map{
				"error": "Username is already taken!",
			})
		case errors.Is(err, entities.ErrEmptyUsername), errors.Is(err, entities.ErrEmptyPassword):
			return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		default:
			return ctx.Status(http.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
	}

	return ctx.Status(http.StatusCreated).JSON(MessageResponse{Message: message})
}

// Refresh обрабатывает запрос на обновление access токена.
func (h *AuthHandler) Refresh(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerRefresh)

	var req RefreshRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": ErrorInvalidRequest,
		})
	}

	if req.RefreshToken == "" {
		return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "refresh token is required",
		})
	}

	result, err := h.authUseCase.Refresh(requestCtx, req.RefreshToken)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		switch {
		case errors.Is(err, services.ErrRefreshTokenNotFound):
			return ctx.Status(http.StatusForbidden).JSON(fiber.Map{
				"error": "Refresh token is not in database!",
			})
		case errors.Is(err, services.ErrRefreshTokenExpired):
			return ctx.Status(http.StatusForbidden).JSON(fiber.Map{
				"error": "Refresh token was expired. Please make a new signin request",
			})
		default:
			return ctx.Status(http.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
	}

	return ctx.Status(http.StatusOK).JSON(RefreshResponse{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		TokenType:    result.TokenType,
	})
}

// SignOut обрабатывает запрос на выход пользователя. Отрицательные исходы
// возвращаются со статусом 200 и различаются текстом сообщения.
func (h *AuthHandler) SignOut(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerSignOut)

	principal, _ := ctx.Locals(middleware.PrincipalKey).(*entities.Principal)
	authHeader := ctx.Get("Authorization")

	outcome, err := h.authUseCase.SignOut(requestCtx, principal, authHeader)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return ctx.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return ctx.Status(http.StatusOK).JSON(MessageResponse{Message: outcome.Message()})
}
