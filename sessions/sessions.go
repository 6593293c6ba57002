package sessions

import (
	"context"
	"errors"
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

type Filter struct {
	VenueID string
	Date    string // YYYY-MM-DD
	Status  structs.SessionStatus
	Page    int
	Limit   int
}

type CreateRequest struct {
	Title            string `json:"title"`
	Description      string `json:"description,omitempty"`
	VenueID          string `json:"venue_id"`
	Date             string `json:"date"`       // YYYY-MM-DD
	StartTime        string `json:"start_time"` // HH:mm
	EndTime          string `json:"end_time"`   // HH:mm
	MaxParticipants  int    `json:"max_participants"`
	RequiresApproval bool   `json:"requires_approval"`
}

func (s *Service) List(ctx context.Context, f Filter) ([]structs.Session, error) {
	q := url.Values{}
	if f.VenueID != "" {
		q.Set("venue_id", f.VenueID)
	}
	if f.Date != "" {
		q.Set("date", f.Date)
	}
	if f.Status != "" {
		q.Set("status", string(f.Status))
	}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	var out struct {
		Sessions []structs.Session `json:"sessions"`
	}
	if err := s.c.Get(ctx, "/sessions", q, &out); err != nil {
		return nil, err
	}
	return out.Sessions, nil
}

func (s *Service) Get(ctx context.Context, id string) (*structs.Session, error) {
	if id == "" {
		return nil, errors.New("missing session id")
	}
	var sess structs.Session
	if err := s.c.Get(ctx, "/sessions/"+id, nil, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*structs.Session, error) {
	if strings.TrimSpace(req.Title) == "" || req.VenueID == "" {
		return nil, errors.New("title and venue are required")
	}
	if req.MaxParticipants < 2 {
		return nil, errors.New("a session needs at least 2 players")
	}
	var sess structs.Session
	if err := s.c.Post(ctx, "/sessions", req, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Join requests participation. Depending on the session's approval setting the
// server answers with a pending or confirmed roster entry; the caller should
// re-fetch rather than patch the roster locally.
func (s *Service) Join(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("missing session id")
	}
	return s.c.Post(ctx, "/sessions/"+id+"/join", nil, nil)
}

func (s *Service) Leave(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("missing session id")
	}
	return s.c.Post(ctx, "/sessions/"+id+"/leave", nil, nil)
}

// Approve confirms a pending participant. Host only.
func (s *Service) Approve(ctx context.Context, id, userID string) error {
	if id == "" || userID == "" {
		return errors.New("missing session or user id")
	}
	body := map[string]string{"user_id": userID, "status": string(structs.ParticipantConfirmed)}
	return s.c.Put(ctx, "/sessions/"+id+"/participants", body, nil)
}

// Reject declines a pending participant. Host only.
func (s *Service) Reject(ctx context.Context, id, userID string) error {
	if id == "" || userID == "" {
		return errors.New("missing session or user id")
	}
	body := map[string]string{"user_id": userID, "status": string(structs.ParticipantCancelled)}
	return s.c.Put(ctx, "/sessions/"+id+"/participants", body, nil)
}

func (s *Service) Cancel(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("missing session id")
	}
	return s.c.Post(ctx, "/sessions/"+id+"/cancel", nil, nil)
}
