package ports

import (
	"context"

	"github.com/shoplite/store-api/internal/core/domain"
)

// UserRepository is the user/admin record store. Two instances exist at
// runtime, one backed by the "users" collection and one by "admins".
type UserRepository interface {
	Exists(ctx context.Context, username string) (bool, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
}
