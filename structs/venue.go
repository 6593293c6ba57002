package structs

import "time"

type VenueStatus string

const (
	VenueActive   VenueStatus = "active"
	VenueInactive VenueStatus = "inactive"
	VenueClosed   VenueStatus = "closed"
)

type Venue struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Address     string      `json:"address"`
	City        string      `json:"city,omitempty"`
	Phone       string      `json:"phone,omitempty"`
	ImageURLs   []string    `json:"image_urls,omitempty"`
	Status      VenueStatus `json:"status"`
	Rating      float64     `json:"rating,omitempty"`
	ReviewCount int         `json:"total_reviews,omitempty"`
	Courts      []Court     `json:"courts,omitempty"`
	OpenRanges  []OpenRange `json:"open_range,omitempty"`
	Location    Coordinates `json:"location,omitempty"`
	CreatedAt   time.Time   `json:"created_at,omitempty"`
	UpdatedAt   time.Time   `json:"updated_at,omitempty"`
}

type Coordinates struct {
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

type Court struct {
	ID           string  `json:"id"`
	VenueID      string  `json:"venue_id,omitempty"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	PricePerHour float64 `json:"price_per_hour"`
	Status       string  `json:"status,omitempty"`
}

// OpenRange is one weekday entry of a venue's opening hours. OpenTime and
// CloseTime arrive as full ISO datetime strings of which only the "THH:mm"
// fragment is meaningful (see utils.ExtractClock).
type OpenRange struct {
	Day       string `json:"day"` // "Monday".."Sunday"
	IsOpen    bool   `json:"is_open"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
}

type Review struct {
	ID         string    `json:"id"`
	VenueID    string    `json:"venue_id"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Rating     int       `json:"rating"` // 1..5
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
}
