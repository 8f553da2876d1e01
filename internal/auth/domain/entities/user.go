// Package entities определяет доменные сущности сервиса аутентификации.
package entities

import (
	"errors"
	"time"
)

// Ошибки домена пользователя.
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrEmptyUsername = errors.New("username cannot be empty")
	ErrEmptyPassword = errors.New("password cannot be empty")
	ErrInvalidUserID = errors.New("user ID must be positive")
)

// UserAccount представляет учетную запись пользователя.
type UserAccount struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// Principal представляет аутентифицированную личность текущего запроса,
// восстановленную из проверенного access токена.
type Principal struct {
	UserID   int64
	Username string
}
