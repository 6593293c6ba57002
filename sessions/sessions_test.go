package sessions

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SmoothBrain-Tech-X/badbuddy-go/client"
	"github.com/SmoothBrain-Tech-X/badbuddy-go/structs"
)

func TestCreateValidation(t *testing.T) {
	svc := NewService(client.New("http://unused", nil))
	if _, err := svc.Create(context.Background(), CreateRequest{Title: " ", VenueID: "v1", MaxParticipants: 4}); err == nil {
		t.Error("blank title accepted")
	}
	if _, err := svc.Create(context.Background(), CreateRequest{Title: "Evening doubles", VenueID: "v1", MaxParticipants: 1}); err == nil {
		t.Error("capacity below 2 accepted")
	}
}

func TestApproveSendsConfirmedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sessions/s1/participants" || r.Method != http.MethodPut {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["user_id"] != "u2" || body["status"] != string(structs.ParticipantConfirmed) {
			t.Errorf("body = %v", body)
		}
		w.Write([]byte(`{"data":{}}`))
	}))
	defer srv.Close()

	if err := NewService(client.New(srv.URL, nil)).Approve(context.Background(), "s1", "u2"); err != nil {
		t.Fatalf("approve: %v", err)
	}
}

func TestListFilters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("venue_id") != "v1" || q.Get("status") != "open" {
			t.Errorf("unexpected query: %v", q)
		}
		w.Write([]byte(`{"data":{"sessions":[{"id":"s1","title":"Evening doubles","status":"open"}]}}`))
	}))
	defer srv.Close()

	list, err := NewService(client.New(srv.URL, nil)).List(context.Background(), Filter{VenueID: "v1", Status: structs.SessionOpen})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Title != "Evening doubles" {
		t.Fatalf("list = %+v", list)
	}
}
