// Package app реализует бизнес-логику сервиса аутентификации.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"taskhub/internal/auth/domain/entities"
	"taskhub/internal/auth/domain/services"
	"taskhub/internal/auth/ports/api"
	"taskhub/internal/auth/ports/repositories"
	svc "taskhub/internal/auth/ports/services"
	"taskhub/pkg/logger"

	"go.uber.org/zap"
)

const (
	methodSignIn  = "SignIn"
	methodSignUp  = "SignUp"
	methodRefresh = "Refresh"
	methodSignOut = "SignOut"

	msgSignInAttempt        = "sign-in attempt"
	msgSignInUnknownUser    = "sign-in attempt with unknown username"
	msgInvalidPasswordAuth  = "invalid password provided"
	msgUserSignedIn         = "user signed in successfully"
	msgStartRegistration    = "starting user registration"
	msgEmptyUsername        = "empty username provided"
	msgEmptyPassword        = "empty password provided"
	msgUsernameTaken        = "username is already taken"
	msgUserRegistered       = "user registered successfully"
	msgRefreshingToken      = "refreshing access token"
	msgRefreshTokenUnknown  = "refresh token is not in database"
	msgRefreshTokenExpired  = "refresh token expired, deleting row"
	msgAccessTokenReissued  = "access token reissued"
	msgProcessingSignOut    = "processing sign-out request"
	msgNoPrincipal          = "sign-out without authenticated principal"
	msgBadAuthHeader        = "authorization header is missing or malformed"
	msgSignOutTokenUnknown  = "access token not found in store"
	msgUserSignedOut        = "user signed out successfully"
	msgSessionRecorded      = "active session recorded"

	msgErrFindingUser         = "error finding user by username"
	msgErrVerifyingPassword   = "error verifying password"
	msgErrIssuingAccessToken  = "failed to issue access token"
	msgErrRecordingSession    = "failed to record active access token"
	msgErrCreatingRefresh     = "failed to create refresh token"
	msgErrCheckingUsername    = "failed to check username availability"
	msgErrHashPassword        = "failed to hash password"
	msgErrCreateUser          = "failed to create user"
	msgErrFindingRefreshToken = "error finding refresh token"
	msgErrDeletingExpired     = "failed to delete expired refresh token"
	msgErrFindingTokenOwner   = "failed to find refresh token owner"
	msgErrFindingAccessToken  = "error finding access token"
	msgErrDeletingRefresh     = "failed to delete user refresh tokens"
	msgErrDeactivatingToken   = "failed to deactivate access token"

	errCtxValidatingUsername  = "validating username"
	errCtxValidatingPassword  = "validating password"
	errCtxInvalidCredentials  = "invalid credentials"
	errCtxFindingUser         = "finding user"
	errCtxVerifyingPassword   = "verifying password"
	errCtxIssuingAccessToken  = "issuing access token"
	errCtxRecordingSession    = "recording active session"
	errCtxCreatingRefresh     = "creating refresh token"
	errCtxCheckingUsername    = "checking username"
	errCtxUsernameTaken       = "username already taken"
	errCtxHashingPassword     = "hashing password"
	errCtxCreatingUser        = "creating user"
	errCtxFindingRefreshToken = "finding refresh token"
	errCtxVerifyingExpiration = "verifying refresh token expiration"
	errCtxDeletingExpired     = "deleting expired refresh token"
	errCtxFindingAccessToken  = "finding access token"
	errCtxDeletingRefresh     = "deleting refresh tokens"
	errCtxDeactivatingToken   = "deactivating access token"
)

// MsgRegistered - сообщение-подтверждение успешной регистрации.
const MsgRegistered = "User registered successfully!"

// bearerPrefix - префикс значения заголовка Authorization.
const bearerPrefix = "Bearer "

// AuthUseCaseImpl реализует интерфейс AuthUseCase.
type AuthUseCaseImpl struct {
	userRepo         repositories.UserRepository
	accessTokenRepo  repositories.AccessTokenRepository
	refreshTokenRepo repositories.RefreshTokenRepository
	passwordSvc      svc.PasswordService
	tokenSvc         svc.TokenService
}

// NewAuthUseCase создает новый экземпляр сервиса аутентификации.
func NewAuthUseCase(
	userRepo repositories.UserRepository,
	accessTokenRepo repositories.AccessTokenRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
	passwordSvc svc.PasswordService,
	tokenSvc svc.TokenService,
) api.AuthUseCase {
	return &AuthUseCaseImpl{
		userRepo:         userRepo,
		accessTokenRepo:  accessTokenRepo,
		refreshTokenRepo: refreshTokenRepo,
		passwordSvc:      passwordSvc,
		tokenSvc:         tokenSvc,
	}
}

// SignIn аутентифицирует пользователя и открывает новую сессию. Запись access
// токена вытесняет предыдущую сессию пользователя, refresh токен замещается.
func (a *AuthUseCaseImpl) SignIn(ctx context.Context, username, password string) (*services.AuthSession, error) {
	log := logger.Log(ctx).With(zap.String("method", methodSignIn), zap.String("username", username))
	log.Debug(ctx, msgSignInAttempt)

	user, err := a.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgSignInUnknownUser)
			return nil, fmt.Errorf("%s: %w", errCtxInvalidCredentials, services.ErrInvalidCredentials)
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	valid, err := a.passwordSvc.Verify(ctx, password, user.PasswordHash)
	if err != nil {
		log.Error(ctx, msgErrVerifyingPassword, zap.Error(err), zap.Int64("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxVerifyingPassword, err)
	}
	if !valid {
		log.Debug(ctx, msgInvalidPasswordAuth, zap.Int64("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxInvalidCredentials, services.ErrInvalidCredentials)
	}

	accessToken, _, err := a.tokenSvc.IssueAccessToken(ctx, user.ID, user.Username)
	if err != nil {
		log.Error(ctx, msgErrIssuingAccessToken, zap.Error(err), zap.Int64("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxIssuingAccessToken, err)
	}

	if err := a.accessTokenRepo.RecordActive(ctx, user.ID, accessToken); err != nil {
		log.Error(ctx, msgErrRecordingSession, zap.Error(err), zap.Int64("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxRecordingSession, err)
	}
	log.Debug(ctx, msgSessionRecorded, zap.Int64("userID", user.ID))

	refreshToken, err := a.refreshTokenRepo.Create(ctx, user.ID)
	if err != nil {
		log.Error(ctx, msgErrCreatingRefresh, zap.Error(err), zap.Int64("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingRefresh, err)
	}

	log.Info(ctx, msgUserSignedIn, zap.Int64("userID", user.ID))

	return &services.AuthSession{
		UserID:       user.ID,
		Username:     user.Username,
		AccessToken:  accessToken,
		RefreshToken: refreshToken.Token,
		TokenType:    services.TokenTypeBearer,
	}, nil
}

// SignUp регистрирует нового пользователя. Токены при регистрации не выдаются.
func (a *AuthUseCaseImpl) SignUp(ctx context.Context, username, password string) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", methodSignUp), zap.String("username", username))
	log.Debug(ctx, msgStartRegistration)

	if username == "" {
		log.Debug(ctx, msgEmptyUsername)
		return "", fmt.Errorf("%s: %w", errCtxValidatingUsername, entities.ErrEmptyUsername)
	}
	if password == "" {
		log.Debug(ctx, msgEmptyPassword)
		return "", fmt.Errorf("%s: %w", errCtxValidatingPassword, entities.ErrEmptyPassword)
	}

	// Проверка происходит до вставки; гонка двух регистраций разрешается
	// уникальным индексом по username в хранилище.
	exists, err := a.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		log.Error(ctx, msgErrCheckingUsername, zap.Error(err))
		return "", fmt.Errorf("%s: %w", errCtxCheckingUsername, err)
	}
	if exists {
		log.Debug(ctx, msgUsernameTaken)
		return "", fmt.Errorf("%s: %w", errCtxUsernameTaken, services.ErrUsernameTaken)
	}

	hashedPassword, err := a.passwordSvc.Hash(ctx, password)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return "", fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	createdUser, err := a.userRepo.Create(ctx, &entities.UserAccount{
		Username:     username,
		PasswordHash: hashedPassword,
	})
	if err != nil {
		log.Error(ctx, msgErrCreateUser, zap.Error(err))
		return "", fmt.Errorf("%s: %w", errCtxCreatingUser, err)
	}

	log.Info(ctx, msgUserRegistered, zap.Int64("userID", createdUser.ID))
	return MsgRegistered, nil
}

// Refresh выпускает новый access токен по действующему refresh токену.
// Значение refresh токена не меняется: он остается прежним до истечения
// собственного срока действия.
func (a *AuthUseCaseImpl) Refresh(ctx context.Context, refreshToken string) (*services.RefreshResult, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRefresh))
	log.Debug(ctx, msgRefreshingToken)

	token, err := a.refreshTokenRepo.FindByToken(ctx, refreshToken)
	if err != nil {
		log.Error(ctx, msgErrFindingRefreshToken, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingRefreshToken, err)
	}
	if token == nil {
		log.Debug(ctx, msgRefreshTokenUnknown)
		return nil, fmt.Errorf("%s: %w", errCtxFindingRefreshToken, services.ErrRefreshTokenNotFound)
	}

	log = log.With(zap.Int64("userID", token.UserID))

	if err := a.verifyExpiration(ctx, token); err != nil {
		return nil, err
	}

	user, err := a.userRepo.FindByID(ctx, token.UserID)
	if err != nil {
		log.Error(ctx, msgErrFindingTokenOwner, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	accessToken, _, err := a.tokenSvc.IssueBareToken(ctx, user.Username)
	if err != nil {
		log.Error(ctx, msgErrIssuingAccessToken, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxIssuingAccessToken, err)
	}

	if err := a.accessTokenRepo.RecordActive(ctx, user.ID, accessToken); err != nil {
		log.Error(ctx, msgErrRecordingSession, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxRecordingSession, err)
	}

	log.Info(ctx, msgAccessTokenReissued)

	return &services.RefreshResult{
		AccessToken:  accessToken,
		RefreshToken: token.Token,
		TokenType:    services.TokenTypeBearer,
	}, nil
}

// SignOut завершает сессию вызывающего: refresh токены пользователя удаляются,
// строка access токена помечается неактивной, но сохраняется. Отрицательные
// исходы возвращаются значением SignOutOutcome, а не ошибкой.
func (a *AuthUseCaseImpl) SignOut(ctx context.Context, principal *entities.Principal, authHeader string) (services.SignOutOutcome, error) {
	log := logger.Log(ctx).With(zap.String("method", methodSignOut))
	log.Debug(ctx, msgProcessingSignOut)

	if principal == nil {
		log.Debug(ctx, msgNoPrincipal)
		return services.SignOutNotAuthenticated, nil
	}

	log = log.With(zap.Int64("userID", principal.UserID))

	if !strings.HasPrefix(authHeader, bearerPrefix) || len(authHeader) == len(bearerPrefix) {
		log.Debug(ctx, msgBadAuthHeader)
		return services.SignOutBadAuthHeader, nil
	}
	accessToken := authHeader[len(bearerPrefix):]

	record, err := a.accessTokenRepo.FindByToken(ctx, accessToken)
	if err != nil {
		log.Error(ctx, msgErrFindingAccessToken, zap.Error(err))
		return services.SignOutTokenNotFound, fmt.Errorf("%s: %w", errCtxFindingAccessToken, err)
	}
	if record == nil {
		log.Debug(ctx, msgSignOutTokenUnknown)
		return services.SignOutTokenNotFound, nil
	}

	if err := a.refreshTokenRepo.DeleteByUserID(ctx, principal.UserID); err != nil {
		log.Error(ctx, msgErrDeletingRefresh, zap.Error(err))
		return services.SignOutTokenNotFound, fmt.Errorf("%s: %w", errCtxDeletingRefresh, err)
	}

	if err := a.accessTokenRepo.Deactivate(ctx, accessToken); err != nil {
		log.Error(ctx, msgErrDeactivatingToken, zap.Error(err))
		return services.SignOutTokenNotFound, fmt.Errorf("%s: %w", errCtxDeactivatingToken, err)
	}

	log.Info(ctx, msgUserSignedOut)
	return services.SignOutSuccess, nil
}

// verifyExpiration проверяет срок действия refresh токена. Просроченная
// строка удаляется до возврата ошибки: истекшие токены не должны оставаться
// доступными для поиска.
func (a *AuthUseCaseImpl) verifyExpiration(ctx context.Context, token *services.RefreshToken) error {
	log := logger.Log(ctx).With(zap.String("method", methodRefresh), zap.Int64("userID", token.UserID))

	if time.Now().Before(token.ExpiresAt) {
		return nil
	}

	log.Debug(ctx, msgRefreshTokenExpired)

	if err := a.refreshTokenRepo.DeleteByUserID(ctx, token.UserID); err != nil {
		log.Error(ctx, msgErrDeletingExpired, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxDeletingExpired, err)
	}

	return fmt.Errorf("%s: %w", errCtxVerifyingExpiration, services.ErrRefreshTokenExpired)
}
