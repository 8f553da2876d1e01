package logger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskhub/pkg/logger"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		env     logger.Environment
		level   string
		wantErr bool
	}{
		{name: "development with debug level", env: logger.Development, level: "debug"},
		{name: "production with info level", env: logger.Production, level: "info"},
		{name: "empty level uses default", env: logger.Development, level: ""},
		{name: "invalid level", env: logger.Development, level: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := logger.NewLogger(tt.env, tt.level)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, log)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, log)
		})
	}
}

func TestRequestIDContext(t *testing.T) {
	t.Run("explicit id is preserved", func(t *testing.T) {
		ctx := logger.NewRequestIDContext(context.Background(), "req-42")

		id, ok := logger.GetRequestID(ctx)
		require.True(t, ok)
		assert.Equal(t, "req-42", id)
	})

	t.Run("empty id is generated", func(t *testing.T) {
		ctx := logger.NewRequestIDContext(context.Background(), "")

		id, ok := logger.GetRequestID(ctx)
		require.True(t, ok)
		assert.NotEmpty(t, id)
	})

	t.Run("absent id", func(t *testing.T) {
		_, ok := logger.GetRequestID(context.Background())
		assert.False(t, ok)
	})
}

func TestLogFromContext(t *testing.T) {
	log, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)

	ctx := logger.NewContext(context.Background(), log)

	fromCtx, err := logger.FromContext(ctx)
	require.NoError(t, err)
	assert.Same(t, log, fromCtx)

	_, err = logger.FromContext(context.Background())
	require.ErrorIs(t, err, logger.ErrLoggerNotFound)

	// Контекст без логгера возвращает запасной логгер, а не nil.
	assert.NotNil(t, logger.Log(context.Background()))
}
