// Package token issues and verifies the signed bearer credentials handed
// out after a successful login. Tokens are HS256 JWTs carrying the account
// id as subject plus issued-at and expiry timestamps.
package token

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is how long an issued token stays valid.
const DefaultTTL = 2 * time.Hour

// ErrInvalidToken covers every verification failure: bad signature, wrong
// algorithm, malformed structure, expiry. A single sentinel avoids leaking
// which check rejected the token.
var ErrInvalidToken = errors.New("invalid token")

// Issuer signs and verifies tokens with a symmetric secret fixed at
// construction time. Rotating the secret invalidates everything issued
// before it.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewIssuer builds an Issuer. A non-positive ttl falls back to DefaultTTL.
func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Issuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue produces a signed token for the given account id.
func (i *Issuer) Issue(userID int64) (string, error) {
	issued := i.now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(issued),
		ExpiresAt: jwt.NewNumericDate(issued.Add(i.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Verify checks signature and expiry and returns the embedded account id.
func (i *Issuer) Verify(raw string) (int64, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return i.now() }))
	if err != nil || !parsed.Valid {
		return 0, ErrInvalidToken
	}

	// exp is mandatory; a token without one never times out.
	if claims.ExpiresAt == nil {
		return 0, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return 0, ErrInvalidToken
	}
	return userID, nil
}
