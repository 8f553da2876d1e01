package authusecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"taskhub/internal/auth/app"
	"taskhub/internal/auth/domain/entities"
	"taskhub/internal/auth/domain/services"
)

func TestSignOut(t *testing.T) {
	principal := &entities.Principal{UserID: 1, Username: "alice"}

	record := &services.AccessTokenRecord{
		ID:        5,
		UserID:    1,
		Token:     "active-access-token",
		IsActive:  true,
		CreatedAt: time.Now(),
	}

	tests := []struct {
		name            string
		principal       *entities.Principal
		authHeader      string
		setupMocks      func(accessRepo *mockAccessTokenRepository, refreshRepo *mockRefreshTokenRepository)
		expectedOutcome services.SignOutOutcome
		expectedMessage string
		expectedErr     error
	}{
		{
			name:       "success - session closed",
			principal:  principal,
			authHeader: "Bearer active-access-token",
			setupMocks: func(accessRepo *mockAccessTokenRepository, refreshRepo *mockRefreshTokenRepository) {
				accessRepo.On("FindByToken", mock.Anything, "active-access-token").Return(record, nil).Once()
				refreshRepo.On("DeleteByUserID", mock.Anything, int64(1)).Return(nil).Once()
				accessRepo.On("Deactivate", mock.Anything, "active-access-token").Return(nil).Once()
			},
			expectedOutcome: services.SignOutSuccess,
			expectedMessage: "Logout successful!",
		},
		{
			name:            "no principal",
			principal:       nil,
			authHeader:      "Bearer whatever",
			setupMocks:      func(_ *mockAccessTokenRepository, _ *mockRefreshTokenRepository) {},
			expectedOutcome: services.SignOutNotAuthenticated,
			expectedMessage: "User is not authenticated",
		},
		{
			name:            "missing authorization header",
			principal:       principal,
			authHeader:      "",
			setupMocks:      func(_ *mockAccessTokenRepository, _ *mockRefreshTokenRepository) {},
			expectedOutcome: services.SignOutBadAuthHeader,
			expectedMessage: "Authorization header is missing or invalid",
		},
		{
			name:            "malformed authorization header",
			principal:       principal,
			authHeader:      "Token abc",
			setupMocks:      func(_ *mockAccessTokenRepository, _ *mockRefreshTokenRepository) {},
			expectedOutcome: services.SignOutBadAuthHeader,
			expectedMessage: "Authorization header is missing or invalid",
		},
		{
			name:       "token not found in store",
			principal:  principal,
			authHeader: "Bearer stale-token",
			setupMocks: func(accessRepo *mockAccessTokenRepository, _ *mockRefreshTokenRepository) {
				accessRepo.On("FindByToken", mock.Anything, "stale-token").Return(nil, nil).Once()
			},
			expectedOutcome: services.SignOutTokenNotFound,
			expectedMessage: "Token not found, logout failed!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo, accessRepo, refreshRepo, passwordSvc, tokenSvc := newMocks()
			tt.setupMocks(accessRepo, refreshRepo)

			useCase := app.NewAuthUseCase(userRepo, accessRepo, refreshRepo, passwordSvc, tokenSvc)

			outcome, err := useCase.SignOut(context.Background(), tt.principal, tt.authHeader)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.expectedOutcome, outcome)
			assert.Equal(t, tt.expectedMessage, outcome.Message())

			accessRepo.AssertExpectations(t)
			refreshRepo.AssertExpectations(t)
		})
	}
}

// Выход помечает access токен неактивным, но не удаляет строку; refresh
// токены пользователя удаляются целиком.
func TestSignOutSoftRevokesAccessToken(t *testing.T) {
	userRepo, accessRepo, refreshRepo, passwordSvc, tokenSvc := newMocks()

	record := &services.AccessTokenRecord{ID: 9, UserID: 42, Token: "tok", IsActive: true}
	accessRepo.On("FindByToken", mock.Anything, "tok").Return(record, nil).Once()
	refreshRepo.On("DeleteByUserID", mock.Anything, int64(42)).Return(nil).Once()
	accessRepo.On("Deactivate", mock.Anything, "tok").Return(nil).Once()

	useCase := app.NewAuthUseCase(userRepo, accessRepo, refreshRepo, passwordSvc, tokenSvc)

	outcome, err := useCase.SignOut(context.Background(), &entities.Principal{UserID: 42, Username: "bob"}, "Bearer tok")
	require.NoError(t, err)
	assert.Equal(t, services.SignOutSuccess, outcome)

	accessRepo.AssertNotCalled(t, "DeleteByToken", mock.Anything, mock.Anything)
	accessRepo.AssertExpectations(t)
	refreshRepo.AssertExpectations(t)
}
