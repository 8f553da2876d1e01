// Package http содержит HTTP слой сервиса аутентификации.
package http

import "time"

// SignInRequest содержит учетные данные для входа.
type SignInRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SignUpRequest содержит данные для регистрации пользователя.
type SignUpRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
}

// RefreshRequest содержит refresh токен для обновления access токена.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// JwtResponse содержит данные открытой сессии.
type JwtResponse struct {
	Token        string `json:"token"`
	Type         string `json:"type"`
	RefreshToken string `json:"refreshToken"`
	UserID       int64  `json:"userId"`
	Username     string `json:"username"`
}

// RefreshResponse содержит новый access токен. Значение refresh токена
// возвращается без изменений.
type RefreshResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
}

// MessageResponse содержит человекочитаемое сообщение об исходе операции.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse содержит публичные данные учетной записи.
type UserResponse struct {
	UserID    int64     `json:"userId"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}
