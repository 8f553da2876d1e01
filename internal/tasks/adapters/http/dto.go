// Package http содержит HTTP обработчики сервиса задач.
package http

import "time"

// CreateTaskRequest представляет запрос на создание задачи.
type CreateTaskRequest struct {
	UserID      int64  `json:"userId"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateTaskRequest представляет запрос на обновление задачи.
type UpdateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// TaskResponse представляет задачу в ответе API.
type TaskResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TaskOwnerResponse представляет сведения о владельце задачи.
type TaskOwnerResponse struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
}

// TaskDetailsResponse представляет задачу вместе со сведениями о владельце.
type TaskDetailsResponse struct {
	TaskResponse
	Owner *TaskOwnerResponse `json:"owner,omitempty"`
}
