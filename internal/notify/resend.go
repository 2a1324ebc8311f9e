// Package notify sends transactional email through the Resend HTTP API.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"leaders/pkg/email"
)

const defaultBaseURL = "https://api.resend.com"

// Mailer sends welcome email to new subscribers.
type Mailer struct {
	apiKey   string
	from     string
	siteName string
	siteURL  string
	baseURL  string
	client   *http.Client
}

type Option func(*Mailer)

// WithBaseURL redirects API calls, used by tests.
func WithBaseURL(url string) Option {
	return func(m *Mailer) {
		m.baseURL = url
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(m *Mailer) {
		m.client = client
	}
}

func NewMailer(apiKey, from, siteName, siteURL string, opts ...Option) *Mailer {
	m := &Mailer{
		apiKey:   apiKey,
		from:     from,
		siteName: siteName,
		siteURL:  siteURL,
		baseURL:  defaultBaseURL,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// SendWelcome greets a new subscriber by the name derived from their
// address.
func (m *Mailer) SendWelcome(ctx context.Context, to string) error {
	payload := sendRequest{
		From:    m.from,
		To:      []string{to},
		Subject: fmt.Sprintf("Welcome to %s!", m.siteName),
		HTML:    m.welcomeBody(to),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode welcome email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build welcome email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("send welcome email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("send welcome email: status %d: %s", resp.StatusCode, detail)
	}
	return nil
}

func (m *Mailer) welcomeBody(to string) string {
	name := email.DisplayName(to)
	return fmt.Sprintf(
		`<p>Hi %s,</p>
<p>Thanks for subscribing to %s. We will keep you posted on the candidates shaping the 2026 races.</p>
<p>Browse the latest profiles any time at <a href="%s">%s</a>.</p>`,
		name, m.siteName, m.siteURL, m.siteURL,
	)
}
