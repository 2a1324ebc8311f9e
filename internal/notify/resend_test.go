package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSendWelcome(t *testing.T) {
	var got struct {
		From    string   `json:"from"`
		To      []string `json:"to"`
		Subject string   `json:"subject"`
		HTML    string   `json:"html"`
	}
	var auth, path string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		path = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("failed to decode send payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	mailer := NewMailer("re_test_key", "Latino Leaders 2026 <hello@discoverlatinoleaders.com>",
		"Latino Leaders 2026", "https://discoverlatinoleaders.com", WithBaseURL(srv.URL))

	if err := mailer.SendWelcome(context.Background(), "maria.lopez@example.com"); err != nil {
		t.Fatalf("sending welcome email: %v", err)
	}

	if path != "/emails" {
		t.Fatalf("expected POST to /emails, got %q", path)
	}
	if auth != "Bearer re_test_key" {
		t.Fatalf("unexpected authorization header %q", auth)
	}
	if len(got.To) != 1 || got.To[0] != "maria.lopez@example.com" {
		t.Fatalf("unexpected recipients %v", got.To)
	}
	if got.Subject != "Welcome to Latino Leaders 2026!" {
		t.Fatalf("unexpected subject %q", got.Subject)
	}
	if !strings.Contains(got.HTML, "Hi Maria,") {
		t.Fatalf("expected personalized greeting, got %q", got.HTML)
	}
}

func TestSendWelcomeAPIFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"message":"invalid api key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	mailer := NewMailer("re_bad_key", "hello@discoverlatinoleaders.com",
		"Latino Leaders 2026", "https://discoverlatinoleaders.com", WithBaseURL(srv.URL))

	err := mailer.SendWelcome(context.Background(), "ana@example.com")
	if err == nil {
		t.Fatal("expected an error for a rejected send")
	}
	if !strings.Contains(err.Error(), "status 401") {
		t.Fatalf("expected status in error, got %v", err)
	}
}
