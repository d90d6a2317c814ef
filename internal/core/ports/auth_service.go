package ports

import "context"

// AuthService verifies credentials and issues bearer tokens.
type AuthService interface {
	// Login returns a signed token for the account matching email and
	// password. Unknown email and wrong password are indistinguishable:
	// both surface as domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, error)
}
