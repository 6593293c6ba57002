package chat

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/SmoothBrain-Tech-X/badbuddy-go/client"
	"github.com/SmoothBrain-Tech-X/badbuddy-go/structs"
	"github.com/gorilla/websocket"
)

var (
	ErrEmptyMessage = errors.New("message is empty")
	ErrNoChat       = errors.New("chat not loaded yet")
	ErrNoToken      = errors.New("not signed in")
	ErrClosed       = errors.New("chat client closed")
)

// Client keeps one session's message history live: REST fetch for the
// snapshot, a websocket for pushes, reconnect on drop, and id-deduplicated
// merging so a push echoing a re-fetched message cannot appear twice.
type Client struct {
	api       *client.Client
	wsBase    string // e.g. wss://host/ws
	sessionID string
	selfID    string

	// Retry governs reconnection. Swap in a Backoff before Connect for
	// long-lived embeddings.
	Retry RetryPolicy

	// OnMessage fires for every push appended to the history.
	// OnConnection fires on connect/disconnect transitions.
	OnMessage    func(structs.ChatMessage)
	OnConnection func(connected bool)

	mu        sync.Mutex
	chatID    string
	messages  []structs.ChatMessage
	conn      *websocket.Conn
	reconnect *timerHandle
	attempts  int
	connected bool
	closed    bool
}

// timerHandle wraps the reconnect timer so tests can observe cancellation.
type timerHandle struct {
	stop func() bool
}

func NewClient(api *client.Client, wsBase, sessionID, selfUserID string) *Client {
	return &Client{
		api:       api,
		wsBase:    strings.TrimRight(wsBase, "/"),
		sessionID: sessionID,
		selfID:    selfUserID,
		Retry:     DefaultRetry,
	}
}

// Messages returns a copy of the current merged history.
func (c *Client) Messages() []structs.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]structs.ChatMessage, len(c.messages))
	copy(out, c.messages)
	return out
}

// Connected reports whether the socket is currently up.
func (c *Client) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

// LoadHistory fetches the session's message snapshot, remembers the chat id
// for sends, and replaces the in-memory list with the normalized snapshot.
func (c *Client) LoadHistory(ctx context.Context) ([]structs.ChatMessage, error) {
	var payload historyPayload
	if err := c.api.Get(ctx, "/chats/session/"+c.sessionID+"/messages", nil, &payload); err != nil {
		return nil, err
	}
	snapshot := make([]structs.ChatMessage, 0, len(payload.Messages))
	for _, m := range payload.Messages {
		snapshot = append(snapshot, normalize(m, c.selfID))
	}
	snapshot = Merge(nil, snapshot)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, ErrClosed
	}
	c.chatID = payload.ChatID
	c.messages = snapshot
	out := make([]structs.ChatMessage, len(snapshot))
	copy(out, snapshot)
	c.mu.Unlock()
	return out, nil
}

// Send posts a message and reloads the history so the list carries the
// server's canonical copy. No optimistic local append.
func (c *Client) Send(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyMessage
	}
	c.mu.Lock()
	chatID := c.chatID
	closed := c.closed
	c.mu.Unlock()
	if closed {
		return ErrClosed
	}
	if chatID == "" {
		return ErrNoChat
	}
	if c.api.Tokens != nil {
		token, err := c.api.Tokens.Token()
		if err != nil || token == "" {
			return ErrNoToken
		}
	}
	if err := c.api.Post(ctx, "/chats/"+chatID+"/messages", map[string]string{"message": text}, nil); err != nil {
		return err
	}
	_, err := c.LoadHistory(ctx)
	return err
}
