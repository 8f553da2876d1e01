package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"taskhub/internal/auth/domain/entities"
	"taskhub/internal/auth/ports/repositories"
	svc "taskhub/internal/auth/ports/services"
	"taskhub/pkg/logger"
)

// PrincipalKey - ключ Locals, под которым хранится принципал запроса.
const PrincipalKey = "principal"

// Константы для логирования.
const (
	LogPrincipalMiddleware = "principal middleware"

	msgNoBearerToken     = "no bearer token provided"
	msgTokenRejected     = "bearer token rejected"
	msgPrincipalResolved = "principal resolved"
	msgOwnerNotFound     = "token owner not found"
)

// NewPrincipalMiddleware создает промежуточное ПО, восстанавливающее принципала
// из bearer токена запроса. Промежуточное ПО не отклоняет запросы: при
// отсутствии или невалидности токена принципал просто не устанавливается,
// решение остается за обработчиком.
func NewPrincipalMiddleware(tokenSvc svc.TokenService, userRepo repositories.UserRepository) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx).With(zap.String("middleware", "principal"))
		log.Debug(requestCtx, LogPrincipalMiddleware)

		authHeader := ctx.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			log.Debug(requestCtx, msgNoBearerToken)
			return ctx.Next()
		}

		claims, err := tokenSvc.Parse(requestCtx, strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			log.Debug(requestCtx, msgTokenRejected, zap.Error(err))
			return ctx.Next()
		}

		principal := &entities.Principal{
			UserID:   claims.UserID,
			Username: claims.Username,
		}

		// Токены, выданные в потоке обновления, не содержат идентификатора
		// пользователя: он восстанавливается по имени.
		if principal.UserID == 0 && principal.Username != "" {
			user, err := userRepo.FindByUsername(requestCtx, principal.Username)
			if err != nil {
				if !errors.Is(err, entities.ErrUserNotFound) {
					return err
				}
				log.Debug(requestCtx, msgOwnerNotFound, zap.String("username", principal.Username))
				return ctx.Next()
			}
			principal.UserID = user.ID
		}

		log.Debug(requestCtx, msgPrincipalResolved, zap.Int64("userID", principal.UserID))
		ctx.Locals(PrincipalKey, principal)

		return ctx.Next()
	}
}
