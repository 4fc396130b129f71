package nominatim

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kundali-api/internal/platform/httpclient"
)

func TestReverse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != userAgent {
			t.Errorf("user-agent = %q, want %q", got, userAgent)
		}
		if r.URL.Path != "/reverse" {
			t.Errorf("path = %q, want /reverse", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"display_name": "Connaught Place, New Delhi, Delhi, India",
			"address": {"city": "New Delhi", "country": "India"}
		}`))
	}))
	defer srv.Close()

	c, err := httpclient.NewWithBaseURL(srv.URL, 2*time.Second)
	if err != nil {
		t.Fatalf("client: %v", err)
	}
	rev := NewWithClient(c)

	place, err := rev.Reverse(context.Background(), 28.6139, 77.2090)
	if err != nil {
		t.Fatalf("reverse: %v", err)
	}
	if place.City != "New Delhi" || place.Country != "India" {
		t.Errorf("place = %+v", place)
	}
	if place.Name == "" {
		t.Error("missing display name")
	}
}

func TestReverse_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c, err := httpclient.NewWithBaseURL(srv.URL, 2*time.Second)
	if err != nil {
		t.Fatalf("client: %v", err)
	}

	if _, err := NewWithClient(c).Reverse(context.Background(), 0, 0); err == nil {
		t.Fatal("expected error on 429")
	}
}
