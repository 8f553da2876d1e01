package services

import (
	"errors"
	"time"
)

// Ошибки домена аутентификации.
var (
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrUsernameTaken        = errors.New("username is already taken")
	ErrRefreshTokenNotFound = errors.New("refresh token is not in database")
	ErrRefreshTokenExpired  = errors.New("refresh token was expired")
)

// TokenTypeBearer - тип выдаваемых access токенов.
const TokenTypeBearer = "Bearer"

// AuthSession представляет результат успешного входа.
type AuthSession struct {
	UserID       int64
	Username     string
	AccessToken  string
	RefreshToken string
	TokenType    string
}

// RefreshResult представляет результат обновления access токена.
// Значение refresh токена при обновлении не меняется.
type RefreshResult struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
}

// AccessTokenRecord представляет строку хранилища активных access токенов.
// Для каждого пользователя существует не более одной строки.
type AccessTokenRecord struct {
	ID        int64
	UserID    int64
	Token     string
	IsActive  bool
	CreatedAt time.Time
}

// RefreshToken представляет сущность refresh токена.
// У пользователя есть ровно один живой refresh токен.
type RefreshToken struct {
	ID        int64
	UserID    int64
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// SignOutOutcome перечисляет исходы операции выхода. Отрицательные исходы
// не являются ошибками: наружу они отдаются как сообщения.
type SignOutOutcome int

// Возможные исходы выхода.
const (
	SignOutSuccess SignOutOutcome = iota
	SignOutTokenNotFound
	SignOutBadAuthHeader
	SignOutNotAuthenticated
)

// Message возвращает текст сообщения для клиента. Тексты являются внешним
// контрактом: вызывающие различают исходы по содержимому сообщения.
func (o SignOutOutcome) Message() string {
	switch o {
	case SignOutSuccess:
		return "Logout successful!"
	case SignOutTokenNotFound:
		return "Token not found, logout failed!"
	case SignOutBadAuthHeader:
		return "Authorization header is missing or invalid"
	case SignOutNotAuthenticated:
		return "User is not authenticated"
	default:
		return "Unknown logout outcome"
	}
}
