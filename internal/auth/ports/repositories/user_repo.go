package repositories

import (
	"context"

	"taskhub/internal/auth/domain/entities"
)

// UserRepository определяет интерфейс для операций с учетными записями.
type UserRepository interface {
	Create(ctx context.Context, user *entities.UserAccount) (*entities.UserAccount, error)

	FindByID(ctx context.Context, id int64) (*entities.UserAccount, error)

	FindByUsername(ctx context.Context, username string) (*entities.UserAccount, error)

	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
