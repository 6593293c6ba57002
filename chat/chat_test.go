package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/SmoothBrain-Tech-X/badbuddy-go/client"
)

const historyBody = `{"data":{"chat_id":"chat9","chat_massage":[
	{"id":"m1","author":{"id":"u1","display_name":"Beam"},"message":"warmup at 6?","timestamp":"2025-01-06T10:00:00Z"},
	{"id":"m2","author":{"id":"u7","display_name":"Ploy"},"message":"yes","timestamp":"2025-01-06T10:01:00Z"}
]}}`

func TestLoadHistoryNormalizesAndStoresChatID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chats/session/s1/messages" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(historyBody))
	}))
	defer srv.Close()

	cc := NewClient(client.New(srv.URL, nil), "ws://unused/ws", "s1", "u7")
	defer cc.Close()

	got, err := cc.LoadHistory(context.Background())
	if err != nil {
		t.Fatalf("LoadHistory: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != "m1" || got[1].ID != "m2" {
		t.Fatalf("order wrong: %+v", got)
	}
	if got[0].IsOwnMessage || !got[1].IsOwnMessage {
		t.Fatal("own-message derivation wrong")
	}

	cc.mu.Lock()
	chatID := cc.chatID
	cc.mu.Unlock()
	if chatID != "chat9" {
		t.Fatalf("chat id = %q, want chat9", chatID)
	}
}

func TestSendGuards(t *testing.T) {
	cc := NewClient(client.New("http://unused", nil), "ws://unused/ws", "s1", "u7")
	defer cc.Close()

	if err := cc.Send(context.Background(), "   "); !errors.Is(err, ErrEmptyMessage) {
		t.Fatalf("blank send = %v, want ErrEmptyMessage", err)
	}
	if err := cc.Send(context.Background(), "hello"); !errors.Is(err, ErrNoChat) {
		t.Fatalf("send before history = %v, want ErrNoChat", err)
	}
}

type emptyToken struct{}

func (emptyToken) Token() (string, error) { return "", nil }

func TestSendRequiresToken(t *testing.T) {
	cc := NewClient(client.New("http://unused", emptyToken{}), "ws://unused/ws", "s1", "u7")
	defer cc.Close()
	cc.chatID = "chat9"

	if err := cc.Send(context.Background(), "hello"); !errors.Is(err, ErrNoToken) {
		t.Fatalf("send without token = %v, want ErrNoToken", err)
	}
}

func TestSendPostsThenReloadsHistory(t *testing.T) {
	var mu sync.Mutex
	var posted string
	historyCalls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/chats/session/s1/messages":
			mu.Lock()
			historyCalls++
			mu.Unlock()
			w.Write([]byte(historyBody))
		case r.URL.Path == "/chats/chat9/messages" && r.Method == http.MethodPost:
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			mu.Lock()
			posted = body["message"]
			mu.Unlock()
			w.Write([]byte(`{"data":{}}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	cc := NewClient(client.New(srv.URL, nil), "ws://unused/ws", "s1", "u7")
	defer cc.Close()
	if _, err := cc.LoadHistory(context.Background()); err != nil {
		t.Fatalf("LoadHistory: %v", err)
	}

	if err := cc.Send(context.Background(), "  on my way  "); err != nil {
		t.Fatalf("Send: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if posted != "on my way" {
		t.Fatalf("posted %q, want trimmed text", posted)
	}
	if historyCalls != 2 {
		t.Fatalf("history fetched %d times, want 2 (mount + after send)", historyCalls)
	}
}
