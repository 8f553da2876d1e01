package userclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskhub/internal/tasks/adapters/cache"
	"taskhub/internal/tasks/adapters/userclient"
	"taskhub/pkg/db/redis"
)

func newAuthStub(t *testing.T, calls *atomic.Int64) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)

		switch r.URL.Path {
		case "/api/user/getUserById/7":
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"userId":    7,
				"username":  "alice",
				"createdAt": time.Now().UTC(),
			})
		case "/api/user/getUserById/404":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	t.Cleanup(server.Close)

	return server
}

func TestClient_GetUserByID(t *testing.T) {
	var calls atomic.Int64
	server := newAuthStub(t, &calls)

	client := userclient.NewClient(server.URL, 5*time.Second)
	ctx := context.Background()

	t.Run("user found", func(t *testing.T) {
		user, err := client.GetUserByID(ctx, 7)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, int64(7), user.UserID)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("missing user is nil without error", func(t *testing.T) {
		user, err := client.GetUserByID(ctx, 404)
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("unexpected status is an error", func(t *testing.T) {
		_, err := client.GetUserByID(ctx, 500)
		require.Error(t, err)
	})
}

func TestCachedClient_ReadThrough(t *testing.T) {
	var calls atomic.Int64
	server := newAuthStub(t, &calls)

	s, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(s.Close)

	userCache := cache.NewRedisCache(redis.NewClientFromAddr(s.Addr()), 15*time.Minute)
	client := userclient.NewCachedClient(
		userclient.NewClient(server.URL, 5*time.Second),
		userCache,
		15*time.Minute,
	)
	ctx := context.Background()

	first, err := client.GetUserByID(ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, int64(1), calls.Load())

	// Повторный запрос обслуживается кэшем.
	second, err := client.GetUserByID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, first.UserID, second.UserID)
	assert.Equal(t, first.Username, second.Username)
	assert.Equal(t, int64(1), calls.Load())
}

func TestCachedClient_MissFallsBackToOrigin(t *testing.T) {
	var calls atomic.Int64
	server := newAuthStub(t, &calls)

	s, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(s.Close)

	userCache := cache.NewRedisCache(redis.NewClientFromAddr(s.Addr()), time.Minute)
	client := userclient.NewCachedClient(
		userclient.NewClient(server.URL, 5*time.Second),
		userCache,
		time.Minute,
	)
	ctx := context.Background()

	_, err = client.GetUserByID(ctx, 7)
	require.NoError(t, err)

	// После истечения TTL запись уходит, следующий запрос снова идет к источнику.
	s.FastForward(2 * time.Minute)

	_, err = client.GetUserByID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(2), calls.Load())
}

func TestCachedClient_MissingUserNotCached(t *testing.T) {
	var calls atomic.Int64
	server := newAuthStub(t, &calls)

	s, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(s.Close)

	userCache := cache.NewRedisCache(redis.NewClientFromAddr(s.Addr()), time.Minute)
	client := userclient.NewCachedClient(
		userclient.NewClient(server.URL, 5*time.Second),
		userCache,
		time.Minute,
	)
	ctx := context.Background()

	user, err := client.GetUserByID(ctx, 404)
	require.NoError(t, err)
	assert.Nil(t, user)

	raw, cacheErr := userCache.Get(ctx, "user:404")
	require.NoError(t, cacheErr)
	assert.Empty(t, raw)
}
