// Package api определяет интерфейсы уровня приложения сервиса аутентификации.
package api

import (
	"context"

	"taskhub/internal/auth/domain/entities"
	"taskhub/internal/auth/domain/services"
)

// AuthUseCase определяет операции аутентификации.
type AuthUseCase interface {
	// SignIn проверяет учетные данные и открывает новую сессию пользователя.
	SignIn(ctx context.Context, username, password string) (*services.AuthSession, error)

	// SignUp регистрирует нового пользователя и возвращает сообщение-подтверждение.
	SignUp(ctx context.Context, username, password string) (string, error)

	// Refresh выпускает новый access токен по действующему refresh токену.
	Refresh(ctx context.Context, refreshToken string) (*services.RefreshResult, error)

	// SignOut завершает сессию вызывающего. Отрицательные исходы не являются
	// ошибками и различаются по значению SignOutOutcome.
	SignOut(ctx context.Context, principal *entities.Principal, authHeader string) (services.SignOutOutcome, error)
}
