package venues

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SmoothBrain-Tech-X/badbuddy-go/client"
)

func TestListPassesSearchAndPaging(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("search") != "arena" || q.Get("page") != "2" || q.Get("limit") != "10" {
			t.Errorf("unexpected query: %v", q)
		}
		w.Write([]byte(`{"data":{"venues":[{"id":"v1","name":"Smash Arena"}],"total":11,"page":2}}`))
	}))
	defer srv.Close()

	res, err := NewService(client.New(srv.URL, nil)).List(context.Background(), " arena ", 2, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(res.Venues) != 1 || res.Venues[0].Name != "Smash Arena" || res.Total != 11 {
		t.Fatalf("result = %+v", res)
	}
}

func TestAddReviewValidatesRating(t *testing.T) {
	svc := NewService(client.New("http://unused", nil))
	for _, bad := range []int{0, 6, -1} {
		if _, err := svc.AddReview(context.Background(), "v1", bad, "meh"); err == nil {
			t.Errorf("rating %d accepted", bad)
		}
	}
	if _, err := svc.Get(context.Background(), ""); err == nil {
		t.Error("empty venue id accepted")
	}
}
