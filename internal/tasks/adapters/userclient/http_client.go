// Package userclient содержит клиент сервиса аутентификации для получения
// сведений о пользователях.
package userclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"taskhub/internal/tasks/domain/entities"
	"taskhub/internal/tasks/ports/clients"
	"taskhub/pkg/logger"
)

// Константы для логирования.
const (
	methodGetUser = "get user by id"

	errCtxBuildRequest   = "failed to build user request"
	errCtxDoRequest      = "failed to call auth service"
	errCtxReadBody       = "failed to read auth service response"
	errCtxDecodeResponse = "failed to decode user response"
	errCtxUnexpectedCode = "unexpected status from auth service"
)

const userByIDPath = "/api/user/getUserById/%d"

// Client реализует clients.UserClient поверх HTTP API сервиса аутентификации.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient создает новый HTTP клиент сервиса аутентификации.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// GetUserByID возвращает сведения о пользователе по идентификатору.
// Возвращает (nil, nil), если сервис аутентификации не знает такого пользователя.
func (c *Client) GetUserByID(ctx context.Context, userID int64) (*entities.UserInfo, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetUser), zap.Int64("userID", userID))

	url := c.baseURL + fmt.Sprintf(userByIDPath, userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxBuildRequest, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error(ctx, errCtxDoRequest, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxDoRequest, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, nil
	default:
		log.Error(ctx, errCtxUnexpectedCode, zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%s: %d", errCtxUnexpectedCode, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxReadBody, err)
	}

	var user entities.UserInfo
	if err := json.Unmarshal(body, &user); err != nil {
		log.Error(ctx, errCtxDecodeResponse, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxDecodeResponse, err)
	}

	return &user, nil
}

var _ clients.UserClient = (*Client)(nil)
