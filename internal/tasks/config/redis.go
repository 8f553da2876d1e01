package config

import (
	"time"

	"taskhub/pkg/db/redis"
)

// RedisConfig представляет конфигурацию для Redis.
type RedisConfig struct {
	Host     string        `yaml:"host" env:"TASKS_REDIS_HOST" env-default:"localhost"`
	Port     int           `yaml:"port" env:"TASKS_REDIS_PORT" env-default:"6379"`
	Password string        `yaml:"password" env:"TASKS_REDIS_PASSWORD" env-default:""`
	DB       int           `yaml:"db" env:"TASKS_REDIS_DB" env-default:"0"`
	PoolSize int           `yaml:"pool_size" env:"TASKS_REDIS_POOL_SIZE" env-default:"10"`
	Timeout  time.Duration `yaml:"timeout" env:"TASKS_REDIS_TIMEOUT" env-default:"5s"`
	UserTTL  time.Duration `yaml:"user_ttl" env:"TASKS_REDIS_USER_TTL" env-default:"15m"`
}

// ToClientConfig преобразует настройки в конфигурацию общего клиента Redis.
func (c *RedisConfig) ToClientConfig() *redis.Config {
	return &redis.Config{
		Host:     c.Host,
		Port:     c.Port,
		Password: c.Password,
		DB:       c.DB,
		PoolSize: c.PoolSize,
		Timeout:  c.Timeout,
	}
}
