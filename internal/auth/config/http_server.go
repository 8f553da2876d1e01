package config

import (
	"fmt"
	"time"
)

// HTTPConfig конфигурация HTTP сервера.
type HTTPConfig struct {
	Host         string        `yaml:"host" env:"AUTH_HTTP_HOST" env-default:"0.0.0.0"`
	Port         int           `yaml:"port" env:"AUTH_HTTP_PORT" env-default:"8082"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"AUTH_HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"AUTH_HTTP_WRITE_TIMEOUT" env-default:"10s"`
}

// GetAddress возвращает адрес для HTTP сервера.
func (h *HTTPConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", h.Host, h.Port)
}
