package structs

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

type Booking struct {
	ID            string        `json:"id"`
	CourtID       string        `json:"court_id"`
	CourtName     string        `json:"court_name,omitempty"`
	VenueID       string        `json:"venue_id,omitempty"`
	VenueName     string        `json:"venue_name,omitempty"`
	Date          string        `json:"date"`       // YYYY-MM-DD
	StartTime     string        `json:"start_time"` // HH:mm
	EndTime       string        `json:"end_time"`   // HH:mm
	DurationHours float64       `json:"duration_hours,omitempty"`
	TotalAmount   float64       `json:"total_amount,omitempty"`
	Status        BookingStatus `json:"status"`
	Payment       *Payment      `json:"payment,omitempty"`
	CreatedAt     time.Time     `json:"created_at,omitempty"`
	UpdatedAt     time.Time     `json:"updated_at,omitempty"`
}

type Payment struct {
	ID            string  `json:"id"`
	BookingID     string  `json:"booking_id"`
	Method        string  `json:"payment_method"`
	Amount        float64 `json:"amount"`
	TransactionID string  `json:"transaction_id"`
	Status        string  `json:"status"`
}

// AvailabilityConflict is a read-only projection of an overlapping booking.
// The client only displays it, never mutates it.
type AvailabilityConflict struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Status    string `json:"status"`
}

type Availability struct {
	Available bool                   `json:"available"`
	Conflicts []AvailabilityConflict `json:"conflicts"`
}
