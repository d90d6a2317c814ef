package ports

import (
	"context"

	"github.com/accountkit/account-service/internal/core/domain"
)

// UserRepository defines persistence operations for account records.
type UserRepository interface {
	// Create inserts a new record and returns the store-assigned id.
	Create(ctx context.Context, name, email, passwordHash string) (int64, error)
	// GetByID returns the full record, password hash included. Callers that
	// expose data externally must strip the hash.
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	// GetByEmail is the login lookup. Email uniqueness is not enforced by
	// the schema; when duplicates exist the lowest id wins.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// Update replaces name and email. Both fields are required.
	Update(ctx context.Context, id int64, name, email string) error
	Delete(ctx context.Context, id int64) error
	// List returns every record in insertion (id) order.
	List(ctx context.Context) ([]domain.User, error)
}
