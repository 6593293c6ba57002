package chat

import (
	"sort"
	"time"

	"github.com/SmoothBrain-Tech-X/badbuddy-go/structs"
)

// Wire shapes. The backend's history field is misspelled ("chat_massage") and
// the author arrives nested; both REST history and socket pushes are collapsed
// into structs.ChatMessage right here and never propagate further.

type apiAuthor struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url,omitempty"`
}

type apiMessage struct {
	ID        string    `json:"id"`
	Author    apiAuthor `json:"author"`
	Message   string    `json:"message"`
	Content   string    `json:"content"`
	Status    string    `json:"status"`
	Timestamp string    `json:"timestamp"`
}

type historyPayload struct {
	ChatID   string       `json:"chat_id"`
	Messages []apiMessage `json:"chat_massage"`
}

type socketFrame struct {
	Message *apiMessage `json:"chat_massage"`
}

// normalize converts one wire message into the canonical record. selfID marks
// the current user's own messages.
func normalize(m apiMessage, selfID string) structs.ChatMessage {
	content := m.Message
	if content == "" {
		content = m.Content
	}
	sentAt, err := time.Parse(time.RFC3339, m.Timestamp)
	if err != nil {
		sentAt = time.Time{}
	}
	status := structs.DeliveryStatus(m.Status)
	switch status {
	case structs.DeliverySent, structs.DeliveryDelivered, structs.DeliveryRead, structs.DeliveryError:
	default:
		status = structs.DeliveryDelivered
	}
	return structs.ChatMessage{
		ID:                m.ID,
		AuthorID:          m.Author.ID,
		AuthorDisplayName: m.Author.DisplayName,
		Content:           content,
		SentAt:            sentAt,
		IsOwnMessage:      m.Author.ID != "" && m.Author.ID == selfID,
		DeliveryStatus:    status,
	}
}

// Merge combines an existing message list with newly ingested ones. Each id
// appears exactly once (the entry with the most recent SentAt wins), the
// result is ascending by SentAt, and ties keep arrival order.
func Merge(existing, incoming []structs.ChatMessage) []structs.ChatMessage {
	index := make(map[string]int, len(existing)+len(incoming))
	merged := make([]structs.ChatMessage, 0, len(existing)+len(incoming))
	for _, lists := range [][]structs.ChatMessage{existing, incoming} {
		for _, m := range lists {
			if i, seen := index[m.ID]; seen {
				if m.SentAt.After(merged[i].SentAt) {
					merged[i] = m
				}
				continue
			}
			index[m.ID] = len(merged)
			merged = append(merged, m)
		}
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].SentAt.Before(merged[j].SentAt)
	})
	return merged
}
