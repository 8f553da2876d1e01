package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"taskhub/internal/auth/domain/services"
	svc "taskhub/internal/auth/ports/services"
	"taskhub/pkg/logger"
)

// Константы для работы с JWT.
const (
	methodIssueAccessToken = "IssueAccessToken"
	methodIssueBareToken   = "IssueBareToken"
	methodParse            = "Parse"

	msgIssuingAccessToken = "issuing access token"
	msgIssuingBareToken   = "issuing bare token from username"
	msgParsingToken       = "parsing token"
	msgTokenIssued        = "token issued successfully"
	msgTokenParsed        = "token parsed successfully"
	msgTokenExpired       = "token has expired"
	msgBadSignature       = "token signature mismatch"
	msgMalformedToken     = "malformed token"

	//nolint:gosec
	errSigningToken       = "error signing token"
	errCtxIssuingToken    = "issuing token"
	errCtxParsingToken    = "parsing token"
	errCtxValidatingToken = "validating token"
)

// ErrInvalidAlgorithm представляет статическую ошибку неверного алгоритма подписи.
var ErrInvalidAlgorithm = errors.New("invalid signing algorithm")

// Claims используется для адаптации между доменной моделью и библиотекой JWT.
type Claims struct {
	UserID   int64  `json:"user_id,omitempty"`
	Username string `json:"username,omitempty"`
	jwt.RegisteredClaims
}

// ServiceJWT реализует интерфейс TokenService.
type ServiceJWT struct {
	config services.JWTConfig
}

// NewJWT создает новый экземпляр сервиса JWT.
func NewJWT(secretKey string, accessTokenTTL time.Duration) svc.TokenService {
	return &ServiceJWT{
		config: services.JWTConfig{
			SecretKey:      []byte(secretKey),
			AccessTokenTTL: accessTokenTTL,
		},
	}
}

// jwtToDomainClaims преобразует claims формата библиотеки JWT в доменные claims.
func jwtToDomainClaims(claims *Claims) *services.Claims {
	var expiresAt, issuedAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	if claims.IssuedAt != nil {
		issuedAt = claims.IssuedAt.Time
	}

	return &services.Claims{
		UserID:    claims.UserID,
		Username:  claims.Username,
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
	}
}

// sign подписывает подготовленные claims секретным ключом.
func (s *ServiceJWT) sign(ctx context.Context, claims Claims) (string, error) {
	log := logger.Log(ctx)

	if len(s.config.SecretKey) == 0 {
		log.Error(ctx, "empty secret key provided")
		return "", fmt.Errorf("%s: %w: empty secret key", errCtxIssuingToken, services.ErrGeneratingToken)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.config.SecretKey)
	if err != nil {
		log.Error(ctx, errSigningToken, zap.Error(err))
		return "", fmt.Errorf("%s: %w: %w", errCtxIssuingToken, services.ErrGeneratingToken, err)
	}

	return tokenString, nil
}

// IssueAccessToken выпускает access токен с идентификатором и именем пользователя.
func (s *ServiceJWT) IssueAccessToken(ctx context.Context, userID int64, username string) (string, time.Time, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodIssueAccessToken),
		zap.Int64("userID", userID),
	)
	log.Debug(ctx, msgIssuingAccessToken)

	now := time.Now()
	expiresAt := now.Add(s.config.AccessTokenTTL)

	claims := Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	tokenString, err := s.sign(ctx, claims)
	if err != nil {
		return "", time.Time{}, err
	}

	log.Debug(ctx, msgTokenIssued, zap.Time("expiresAt", expiresAt))
	return tokenString, expiresAt, nil
}

// IssueBareToken выпускает access токен только по имени пользователя.
// Учетные данные при этом повторно не проверяются: вызывающий уже предъявил
// действующий refresh токен.
func (s *ServiceJWT) IssueBareToken(ctx context.Context, username string) (string, time.Time, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodIssueBareToken),
		zap.String("username", username),
	)
	log.Debug(ctx, msgIssuingBareToken)

	now := time.Now()
	expiresAt := now.Add(s.config.AccessTokenTTL)

	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	tokenString, err := s.sign(ctx, claims)
	if err != nil {
		return "", time.Time{}, err
	}

	log.Debug(ctx, msgTokenIssued, zap.Time("expiresAt", expiresAt))
	return tokenString, expiresAt, nil
}

// Parse проверяет подпись и срок действия токена и возвращает доменные claims.
// Срок действия проверяется строго по текущему времени, без допуска на
// рассинхронизацию часов.
func (s *ServiceJWT) Parse(ctx context.Context, tokenString string) (*services.Claims, error) {
	log := logger.Log(ctx).With(zap.String("method", methodParse))
	log.Debug(ctx, msgParsingToken)

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAlgorithm, token.Header["alg"])
		}
		return s.config.SecretKey, nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			log.Debug(ctx, msgTokenExpired)
			return nil, fmt.Errorf("%s: %w", errCtxValidatingToken, services.ErrTokenExpired)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			log.Debug(ctx, msgBadSignature)
			return nil, fmt.Errorf("%s: %w", errCtxValidatingToken, services.ErrTokenSignatureInvalid)
		default:
			log.Debug(ctx, msgMalformedToken, zap.Error(err))
			return nil, fmt.Errorf("%s: %w: %w", errCtxParsingToken, services.ErrTokenMalformed, err)
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		log.Debug(ctx, msgMalformedToken)
		return nil, fmt.Errorf("%s: %w", errCtxValidatingToken, services.ErrTokenMalformed)
	}

	log.Debug(ctx, msgTokenParsed, zap.Int64("userID", claims.UserID))
	return jwtToDomainClaims(claims), nil
}
