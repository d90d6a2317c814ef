package service

import (
	"context"
	"fmt"

	"github.com/accountkit/account-service/internal/core/domain"
	"github.com/accountkit/account-service/internal/core/ports"
	"github.com/accountkit/account-service/internal/pkg/password"
)

// UserService implements account CRUD on top of the credential store.
type UserService struct {
	repo   ports.UserRepository
	hasher password.Hasher
}

func NewUserService(repo ports.UserRepository, hasher password.Hasher) *UserService {
	return &UserService{repo: repo, hasher: hasher}
}

// Create hashes the submitted password and inserts the record. The raw
// password never reaches the store.
func (s *UserService) Create(ctx context.Context, name, email, plaintext string) (int64, error) {
	hash, err := s.hasher.Hash(plaintext)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	id, err := s.repo.Create(ctx, name, email, hash)
	if err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}
	return id, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

// Update replaces name and email in place. The password is not updatable
// through this surface.
func (s *UserService) Update(ctx context.Context, id int64, name, email string) error {
	return s.repo.Update(ctx, id, name, email)
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
