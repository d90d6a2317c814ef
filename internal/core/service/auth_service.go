package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/accountkit/account-service/internal/core/domain"
	"github.com/accountkit/account-service/internal/core/ports"
	"github.com/accountkit/account-service/internal/pkg/password"
	"github.com/accountkit/account-service/internal/pkg/token"
)

// AuthService verifies login credentials and issues bearer tokens.
type AuthService struct {
	repo   ports.UserRepository
	hasher password.Hasher
	tokens *token.Issuer
}

func NewAuthService(repo ports.UserRepository, hasher password.Hasher, tokens *token.Issuer) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens}
}

// Login looks the account up by email, checks the password against the
// stored hash and returns a fresh token. An unknown email and a wrong
// password both come back as domain.ErrInvalidCredentials so the caller
// cannot probe which accounts exist.
func (s *AuthService) Login(ctx context.Context, email, plaintext string) (string, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("lookup user: %w", err)
	}

	if !s.hasher.Verify(plaintext, user.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return signed, nil
}
