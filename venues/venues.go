package venues

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
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

type ListResult struct {
	Venues []structs.Venue `json:"venues"`
	Total  int             `json:"total"`
	Page   int             `json:"page"`
}

// List searches venues. query may be empty; page is 1-based.
func (s *Service) List(ctx context.Context, query string, page, limit int) (*ListResult, error) {
	q := url.Values{}
	if query = strings.TrimSpace(query); query != "" {
		q.Set("search", query)
	}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var out ListResult
	if err := s.c.Get(ctx, "/venues", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Service) Get(ctx context.Context, venueID string) (*structs.Venue, error) {
	if venueID == "" {
		return nil, errors.New("missing venue id")
	}
	var v structs.Venue
	if err := s.c.Get(ctx, "/venues/"+venueID, nil, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *Service) Courts(ctx context.Context, venueID string) ([]structs.Court, error) {
	if venueID == "" {
		return nil, errors.New("missing venue id")
	}
	var out struct {
		Courts []structs.Court `json:"courts"`
	}
	if err := s.c.Get(ctx, "/venues/"+venueID+"/courts", nil, &out); err != nil {
		return nil, err
	}
	return out.Courts, nil
}

func (s *Service) Reviews(ctx context.Context, venueID string) ([]structs.Review, error) {
	if venueID == "" {
		return nil, errors.New("missing venue id")
	}
	var out struct {
		Reviews []structs.Review `json:"reviews"`
	}
	if err := s.c.Get(ctx, "/venues/"+venueID+"/reviews", nil, &out); err != nil {
		return nil, err
	}
	return out.Reviews, nil
}

func (s *Service) AddReview(ctx context.Context, venueID string, rating int, comment string) (*structs.Review, error) {
	if venueID == "" {
		return nil, errors.New("missing venue id")
	}
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("rating %d out of range 1..5", rating)
	}
	body := map[string]any{"rating": rating, "comment": strings.TrimSpace(comment)}
	var r structs.Review
	if err := s.c.Post(ctx, "/venues/"+venueID+"/reviews", body, &r); err != nil {
		return nil, err
	}
	return &r, nil
}
