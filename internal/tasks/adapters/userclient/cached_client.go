package userclient

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"taskhub/internal/tasks/domain/entities"
	"taskhub/internal/tasks/ports/cache"
	"taskhub/internal/tasks/ports/clients"
	"taskhub/pkg/logger"
)

// Константы для логирования.
const (
	methodCachedGetUser = "get user by id (cached)"

	msgCacheHit  = "user found in cache"
	msgCacheMiss = "user not in cache, falling back to auth service"

	errCtxMarshalUser = "failed to marshal user for cache"
)

const userCacheKeyFormat = "user:%d"

// CachedClient оборачивает UserClient кэшем со сквозным чтением.
// Ошибки кэша не прерывают запрос: при любой проблеме с кэшем
// клиент обращается к сервису аутентификации напрямую.
type CachedClient struct {
	origin clients.UserClient
	cache  cache.Cache
	ttl    time.Duration
}

// NewCachedClient создает кэширующую обертку над клиентом пользователей.
func NewCachedClient(origin clients.UserClient, userCache cache.Cache, ttl time.Duration) clients.UserClient {
	return &CachedClient{
		origin: origin,
		cache:  userCache,
		ttl:    ttl,
	}
}

// GetUserByID возвращает сведения о пользователе, используя кэш.
func (c *CachedClient) GetUserByID(ctx context.Context, userID int64) (*entities.UserInfo, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCachedGetUser), zap.Int64("userID", userID))

	key := fmt.Sprintf(userCacheKeyFormat, userID)

	if cached, err := c.cache.Get(ctx, key); err == nil && cached != "" {
		var user entities.UserInfo
		if err := json.Unmarshal([]byte(cached), &user); err == nil {
			log.Debug(ctx, msgCacheHit)
			return &user, nil
		}
		// Испорченная запись: удаляем и идем к источнику.
		_ = c.cache.Delete(ctx, key)
	}

	log.Debug(ctx, msgCacheMiss)

	user, err := c.origin.GetUserByID(ctx, userID)
	if err != nil || user == nil {
		return user, err
	}

	payload, err := json.Marshal(user)
	if err != nil {
		log.Warn(ctx, errCtxMarshalUser, zap.Error(err))
		return user, nil
	}
	if err := c.cache.Set(ctx, key, string(payload), c.ttl); err != nil {
		log.Warn(ctx, "failed to cache user", zap.Error(err))
	}

	return user, nil
}
