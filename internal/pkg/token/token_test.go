package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssuer_RoundTrip(t *testing.T) {
	iss := NewIssuer("secret", time.Hour)

	raw, err := iss.Issue(42)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if raw == "" {
		t.Fatalf("expected non-empty token")
	}

	userID, err := iss.Verify(raw)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if userID != 42 {
		t.Fatalf("expected subject 42, got %d", userID)
	}
}

func TestIssuer_Expired(t *testing.T) {
	// Issue with a clock three hours in the past so the 2h default TTL has
	// already elapsed by verification time.
	past := NewIssuer("secret", 0)
	past.now = func() time.Time { return time.Now().Add(-3 * time.Hour) }

	raw, err := past.Issue(42)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	iss := NewIssuer("secret", 0)
	if _, err := iss.Verify(raw); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestIssuer_WrongSecret(t *testing.T) {
	other := NewIssuer("other-secret", time.Hour)
	raw, err := other.Issue(7)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	iss := NewIssuer("secret", time.Hour)
	if _, err := iss.Verify(raw); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for foreign signature, got %v", err)
	}
}

func TestIssuer_Malformed(t *testing.T) {
	iss := NewIssuer("secret", time.Hour)

	for _, raw := range []string{"", "garbage", "a.b", "a.b.c"} {
		if _, err := iss.Verify(raw); err != ErrInvalidToken {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", raw, err)
		}
	}
}

func TestIssuer_RejectsUnsignedAlgorithm(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	iss := NewIssuer("secret", time.Hour)
	if _, err := iss.Verify(raw); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for alg=none, got %v", err)
	}
}

func TestIssuer_RejectsNonNumericSubject(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	iss := NewIssuer("secret", time.Hour)
	if _, err := iss.Verify(raw); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for non-numeric subject, got %v", err)
	}
}

func TestIssuer_RejectsMissingExpiry(t *testing.T) {
	claims := jwt.RegisteredClaims{Subject: "42"}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	iss := NewIssuer("secret", time.Hour)
	if _, err := iss.Verify(raw); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for token without exp, got %v", err)
	}
}
