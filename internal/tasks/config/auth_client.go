package config

import (
	"time"
)

// AuthConfig содержит настройки клиента сервиса аутентификации.
type AuthConfig struct {
	BaseURL string        `yaml:"base_url" env:"TASKS_AUTH_BASE_URL" env-default:"http://localhost:8082"`
	Timeout time.Duration `yaml:"timeout" env:"TASKS_AUTH_TIMEOUT" env-default:"5s"`
}
