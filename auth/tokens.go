package auth

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrTokenExpired = errors.New("access token expired")

// StaticToken is a fixed credential, mostly for tests and one-shot CLI runs.
type StaticToken string

func (s StaticToken) Token() (string, error) { return string(s), nil }

// TokenStore holds the current access token and refuses to hand out one whose
// JWT exp claim has already passed. The signature is not verified here; the
// backend owns verification, the client only avoids sending dead tokens.
type TokenStore struct {
	mu    sync.RWMutex
	token string
	exp   time.Time
	now   func() time.Time
}

func NewTokenStore() *TokenStore {
	return &TokenStore{now: time.Now}
}

func (s *TokenStore) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.exp = time.Time{}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err == nil {
		if t, err := claims.GetExpirationTime(); err == nil && t != nil {
			s.exp = t.Time
		}
	}
}

func (s *TokenStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.exp = time.Time{}
}

func (s *TokenStore) Token() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return "", nil
	}
	if !s.exp.IsZero() && !s.now().Before(s.exp) {
		return "", ErrTokenExpired
	}
	return s.token, nil
}
