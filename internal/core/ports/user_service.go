package ports

import (
	"context"

	"github.com/accountkit/account-service/internal/core/domain"
)

// UserService defines use-case operations for account management.
type UserService interface {
	Create(ctx context.Context, name, email, password string) (int64, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id int64, name, email string) error
	Delete(ctx context.Context, id int64) error
}
