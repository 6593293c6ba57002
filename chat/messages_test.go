package chat

import (
	"testing"
	"time"

	"github.com/SmoothBrain-Tech-X/badbuddy-go/structs"
)

func msg(id string, sentAt time.Time, content string) structs.ChatMessage {
	return structs.ChatMessage{ID: id, Content: content, SentAt: sentAt}
}

func TestMergeDeduplicatesByID(t *testing.T) {
	t0 := time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC)
	history := []structs.ChatMessage{
		msg("m1", t0, "hello"),
		msg("m2", t0.Add(time.Minute), "anyone up for doubles?"),
	}
	live := []structs.ChatMessage{
		msg("m2", t0.Add(2*time.Minute), "anyone up for doubles? (edited)"),
		msg("m3", t0.Add(3*time.Minute), "count me in"),
	}

	got := Merge(history, live)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3 (m2 deduplicated)", len(got))
	}
	seen := map[string]int{}
	for _, m := range got {
		seen[m.ID]++
	}
	if seen["m2"] != 1 {
		t.Fatalf("m2 appears %d times", seen["m2"])
	}
	// the most recent timestamp wins for the duplicate id
	for _, m := range got {
		if m.ID == "m2" && !m.SentAt.Equal(t0.Add(2*time.Minute)) {
			t.Fatalf("m2 kept the stale copy: %v", m.SentAt)
		}
	}
}

func TestMergeOrdersAscendingWithStableTies(t *testing.T) {
	t0 := time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC)
	got := Merge(
		[]structs.ChatMessage{msg("b", t0, "second-arrived-first? no: same ts"), msg("c", t0.Add(time.Hour), "later")},
		[]structs.ChatMessage{msg("a", t0.Add(-time.Hour), "earliest"), msg("d", t0, "tied with b, arrived after")},
	)
	wantOrder := []string{"a", "b", "d", "c"}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Fatalf("position %d = %s, want %s (full: %+v)", i, got[i].ID, id, ids(got))
		}
	}
}

func ids(ms []structs.ChatMessage) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.ID
	}
	return out
}

func TestNormalizeNestedAuthorShape(t *testing.T) {
	m := normalize(apiMessage{
		ID:        "m1",
		Author:    apiAuthor{ID: "u7", DisplayName: "Ploy"},
		Message:   "see you at court 2",
		Timestamp: "2025-01-06T10:15:00Z",
	}, "u7")

	if !m.IsOwnMessage {
		t.Fatal("author id matching self must mark the message own")
	}
	if m.AuthorDisplayName != "Ploy" || m.Content != "see you at court 2" {
		t.Fatalf("normalized badly: %+v", m)
	}
	if m.SentAt.IsZero() {
		t.Fatal("timestamp not parsed")
	}
	if m.DeliveryStatus != structs.DeliveryDelivered {
		t.Fatalf("default delivery status = %s", m.DeliveryStatus)
	}
}

func TestNormalizeContentFallbackAndBadTimestamp(t *testing.T) {
	m := normalize(apiMessage{
		ID:        "m2",
		Author:    apiAuthor{ID: "u1", DisplayName: "Beam"},
		Content:   "socket-shaped message",
		Status:    "read",
		Timestamp: "not-a-time",
	}, "u7")

	if m.Content != "socket-shaped message" {
		t.Fatalf("content fallback failed: %q", m.Content)
	}
	if m.IsOwnMessage {
		t.Fatal("different author must not be own")
	}
	if !m.SentAt.IsZero() {
		t.Fatal("unparseable timestamp must yield zero time, not a crash")
	}
	if m.DeliveryStatus != structs.DeliveryRead {
		t.Fatalf("status = %s, want read", m.DeliveryStatus)
	}
}
