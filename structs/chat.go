package structs

import "time"

type DeliveryStatus string

const (
	DeliverySent      DeliveryStatus = "sent"
	DeliveryDelivered DeliveryStatus = "delivered"
	DeliveryRead      DeliveryStatus = "read"
	DeliveryError     DeliveryStatus = "error"
)

// ChatMessage is the canonical message record. Both wire shapes (REST history
// and socket pushes) are normalized into it on ingestion; the raw shapes never
// leave the chat package.
type ChatMessage struct {
	ID                string         `json:"id"`
	AuthorID          string         `json:"author_id"`
	AuthorDisplayName string         `json:"author_display_name"`
	Content           string         `json:"content"`
	SentAt            time.Time      `json:"sent_at"`
	IsOwnMessage      bool           `json:"is_own_message"`
	DeliveryStatus    DeliveryStatus `json:"delivery_status"`
}
