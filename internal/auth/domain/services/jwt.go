package services

import (
	"errors"
	"time"
)

// Ошибки, связанные с JWT токенами.
var (
	ErrTokenMalformed        = errors.New("malformed JWT token")
	ErrTokenExpired          = errors.New("JWT token has expired")
	ErrTokenSignatureInvalid = errors.New("JWT token signature is invalid")
	ErrGeneratingToken       = errors.New("failed to generate JWT token")
)

// JWTConfig содержит настройки для JWT сервиса.
type JWTConfig struct {
	SecretKey      []byte
	AccessTokenTTL time.Duration
}

// Claims определяет данные, зашитые в access токен. Для токенов, выданных
// в потоке обновления, заполнено только имя пользователя.
type Claims struct {
	UserID    int64
	Username  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
