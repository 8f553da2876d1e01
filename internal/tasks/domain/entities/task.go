// Package entities содержит доменные сущности сервиса задач.
package entities

import (
	"errors"
	"time"
)

// Доменные ошибки сервиса задач.
var (
	ErrTaskNotFound = errors.New("task not found")
	ErrEmptyTitle   = errors.New("task title cannot be empty")
)

// Task представляет задачу пользователя.
type Task struct {
	ID          int64
	UserID      int64
	Title       string
	Description string
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// UserInfo представляет сведения о владельце задачи, полученные от сервиса
// аутентификации.
type UserInfo struct {
	UserID   int64     `json:"userId"`
	Username string    `json:"username"`
	JoinedAt time.Time `json:"createdAt"`
}

// TaskDetails представляет задачу, обогащенную данными о владельце.
// Owner равен nil, если сведения о владельце получить не удалось.
type TaskDetails struct {
	Task  Task
	Owner *UserInfo
}
