package structs

import "time"

type ParticipantStatus string

const (
	ParticipantHost      ParticipantStatus = "host"
	ParticipantConfirmed ParticipantStatus = "confirmed"
	ParticipantPending   ParticipantStatus = "pending"
	ParticipantCancelled ParticipantStatus = "cancelled"
)

type SessionStatus string

const (
	SessionOpen      SessionStatus = "open"
	SessionFull      SessionStatus = "full"
	SessionCancelled SessionStatus = "cancelled"
	SessionEnded     SessionStatus = "ended"
)

// Session is a playing party organized at a venue. The roster is server-owned;
// the client mutates it only through join/leave/approve/cancel calls and
// re-fetches afterwards.
type Session struct {
	ID               string        `json:"id"`
	Title            string        `json:"title"`
	Description      string        `json:"description,omitempty"`
	VenueID          string        `json:"venue_id"`
	VenueName        string        `json:"venue_name,omitempty"`
	HostID           string        `json:"host_id"`
	HostName         string        `json:"host_name,omitempty"`
	Date             string        `json:"date"`       // YYYY-MM-DD
	StartTime        string        `json:"start_time"` // HH:mm
	EndTime          string        `json:"end_time"`   // HH:mm
	MaxParticipants  int           `json:"max_participants"`
	ConfirmedCount   int           `json:"confirmed_players,omitempty"`
	PendingCount     int           `json:"pending_players,omitempty"`
	RequiresApproval bool          `json:"requires_approval,omitempty"`
	Status           SessionStatus `json:"status"`
	Participants     []Participant `json:"participants,omitempty"`
	CreatedAt        time.Time     `json:"created_at,omitempty"`
	UpdatedAt        time.Time     `json:"updated_at,omitempty"`
}

type Participant struct {
	UserID      string            `json:"user_id"`
	DisplayName string            `json:"display_name"`
	AvatarURL   string            `json:"avatar_url,omitempty"`
	Status      ParticipantStatus `json:"status"`
	JoinedAt    time.Time         `json:"joined_at,omitempty"`
}
