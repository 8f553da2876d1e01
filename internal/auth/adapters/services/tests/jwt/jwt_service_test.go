package jwt_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapters "taskhub/internal/auth/adapters/services"
	"taskhub/internal/auth/domain/services"
)

const testSecret = "test-secret-key"

func TestIssueAccessToken(t *testing.T) {
	svc := adapters.NewJWT(testSecret, 15*time.Minute)
	ctx := context.Background()

	token, expiresAt, err := svc.IssueAccessToken(ctx, 1, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), expiresAt, 5*time.Second)

	claims, err := svc.Parse(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.WithinDuration(t, expiresAt, claims.ExpiresAt, time.Second)
}

func TestIssueBareToken(t *testing.T) {
	svc := adapters.NewJWT(testSecret, 15*time.Minute)
	ctx := context.Background()

	token, _, err := svc.IssueBareToken(ctx, "alice")
	require.NoError(t, err)

	claims, err := svc.Parse(ctx, token)
	require.NoError(t, err)

	// Токен из потока обновления несет только имя пользователя.
	assert.Zero(t, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestParseExpiredToken(t *testing.T) {
	svc := adapters.NewJWT(testSecret, -time.Minute)
	ctx := context.Background()

	token, _, err := svc.IssueAccessToken(ctx, 1, "alice")
	require.NoError(t, err)

	_, err = svc.Parse(ctx, token)
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrTokenExpired)
}

func TestParseTamperedToken(t *testing.T) {
	svc := adapters.NewJWT(testSecret, 15*time.Minute)
	other := adapters.NewJWT("another-secret", 15*time.Minute)
	ctx := context.Background()

	token, _, err := other.IssueAccessToken(ctx, 1, "alice")
	require.NoError(t, err)

	_, err = svc.Parse(ctx, token)
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrTokenSignatureInvalid)
}

func TestParseMalformedToken(t *testing.T) {
	svc := adapters.NewJWT(testSecret, 15*time.Minute)
	ctx := context.Background()

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "empty", token: ""},
		{name: "truncated", token: "eyJhbGciOiJIUzI1NiJ9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Parse(ctx, tt.token)
			require.Error(t, err)
			assert.ErrorIs(t, err, services.ErrTokenMalformed)
		})
	}
}

func TestIssueWithEmptySecret(t *testing.T) {
	svc := adapters.NewJWT("", 15*time.Minute)
	ctx := context.Background()

	_, _, err := svc.IssueAccessToken(ctx, 1, "alice")
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrGeneratingToken)
}

func TestTokenIsCompactJWS(t *testing.T) {
	svc := adapters.NewJWT(testSecret, 15*time.Minute)

	token, _, err := svc.IssueAccessToken(context.Background(), 1, "alice")
	require.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 3)
}
