package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/SmoothBrain-Tech-X/badbuddy-go/client"
	"github.com/SmoothBrain-Tech-X/badbuddy-go/structs"
)

type Service struct {
	c *client.Client
}

func NewService(c *client.Client) *Service {
	return &Service{c: c}
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        structs.User `json:"user"`
}

type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	PlayLevel   string `json:"play_level,omitempty"`
}

func (s *Service) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, errors.New("email and password are required")
	}
	var out LoginResponse
	body := map[string]string{"email": email, "password": password}
	if err := s.c.Post(ctx, "/auth/login", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*LoginResponse, error) {
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return nil, errors.New("email and password are required")
	}
	var out LoginResponse
	if err := s.c.Post(ctx, "/auth/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me returns the authenticated user. The chat client needs the user id to
// mark own messages.
func (s *Service) Me(ctx context.Context) (*structs.User, error) {
	var u structs.User
	if err := s.c.Get(ctx, "/users/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
