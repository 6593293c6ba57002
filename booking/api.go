package booking

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/SmoothBrain-Tech-X/badbuddy-go/client"
	"github.com/SmoothBrain-Tech-X/badbuddy-go/structs"
)

// PaymentMethodCash is the only method the booking flow submits; payment is
// settled at the venue.
const PaymentMethodCash = "cash"

type Service struct {
	c *client.Client
}

func NewService(c *client.Client) *Service {
	return &Service{c: c}
}

// CheckAvailability asks the backend for bookings overlapping the selected
// court/date/time range. date is YYYY-MM-DD, times are HH:mm.
func (s *Service) CheckAvailability(ctx context.Context, courtID, date, start, end string) (*structs.Availability, error) {
	q := url.Values{}
	q.Set("court_id", courtID)
	q.Set("date", date)
	q.Set("start_time", start)
	q.Set("end_time", end)
	var out structs.Availability
	if err := s.c.Get(ctx, "/bookings/availability", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Service) Create(ctx context.Context, courtID, date, start, end string) (*structs.Booking, error) {
	body := map[string]string{
		"court_id":   courtID,
		"date":       date,
		"start_time": start,
		"end_time":   end,
	}
	var b structs.Booking
	if err := s.c.Post(ctx, "/bookings", body, &b); err != nil {
		return nil, err
	}
	if b.ID == "" {
		return nil, errors.New("booking created without an id")
	}
	return &b, nil
}

func (s *Service) CreatePayment(ctx context.Context, bookingID string, amount float64, method, transactionID string) (*structs.Payment, error) {
	if bookingID == "" {
		return nil, errors.New("missing booking id")
	}
	body := map[string]any{
		"payment_method": method,
		"amount":         amount,
		"transaction_id": transactionID,
	}
	var p structs.Payment
	if err := s.c.Post(ctx, "/bookings/"+bookingID+"/payment", body, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Service) Get(ctx context.Context, id string) (*structs.Booking, error) {
	if id == "" {
		return nil, errors.New("missing booking id")
	}
	var b structs.Booking
	if err := s.c.Get(ctx, "/bookings/"+id, nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// ListMine returns the authenticated user's bookings, newest first.
func (s *Service) ListMine(ctx context.Context, page, limit int) ([]structs.Booking, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var out struct {
		Bookings []structs.Booking `json:"bookings"`
	}
	if err := s.c.Get(ctx, "/bookings", q, &out); err != nil {
		return nil, err
	}
	return out.Bookings, nil
}

// Cancel marks a booking cancelled. Also used as the compensating action when
// payment creation fails after a booking was already created.
func (s *Service) Cancel(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("missing booking id")
	}
	return s.c.Post(ctx, "/bookings/"+id+"/cancel", nil, nil)
}

// transactionID builds the client-generated payment reference. It is a
// correlation handle, not a cryptographically unique idempotency key.
func transactionID(now time.Time) string {
	return fmt.Sprintf("BOOK%d", now.UnixMilli())
}
