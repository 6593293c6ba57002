package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": "u7"}
	if !exp.IsZero() {
		claims["exp"] = exp.Unix()
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func TestTokenStoreHandsOutLiveToken(t *testing.T) {
	s := NewTokenStore()
	tok := signedToken(t, time.Now().Add(time.Hour))
	s.Set(tok)

	got, err := s.Token()
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	if got != tok {
		t.Fatal("token mangled")
	}
}

func TestTokenStoreRejectsExpiredJWT(t *testing.T) {
	s := NewTokenStore()
	s.Set(signedToken(t, time.Now().Add(-time.Minute)))

	if _, err := s.Token(); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("err = %v, want ErrTokenExpired", err)
	}
}

func TestTokenStoreOpaqueTokenPassesThrough(t *testing.T) {
	// Non-JWT credentials carry no exp claim; treat them as opaque.
	s := NewTokenStore()
	s.Set("opaque-session-token")

	got, err := s.Token()
	if err != nil || got != "opaque-session-token" {
		t.Fatalf("got %q, %v", got, err)
	}
}

func TestTokenStoreEmptyAndClear(t *testing.T) {
	s := NewTokenStore()
	if got, err := s.Token(); err != nil || got != "" {
		t.Fatalf("empty store: %q, %v", got, err)
	}
	s.Set(signedToken(t, time.Now().Add(time.Hour)))
	s.Clear()
	if got, _ := s.Token(); got != "" {
		t.Fatal("clear did not drop the token")
	}
}
