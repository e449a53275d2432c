// Package telegram delivers contact-form submissions to the academy's
// operator chat through the Bot API.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const defaultAPIBase = "https://api.telegram.org"

// ErrNotConfigured means the bot token or chat id is missing from the
// environment. Submissions cannot be delivered until both are set.
var ErrNotConfigured = errors.New("telegram bot not configured")

type Client struct {
	apiBase  string
	botToken string
	chatID   string
	http     *http.Client
}

func NewClient(botToken, chatID string) *Client {
	return &Client{
		apiBase:  defaultAPIBase,
		botToken: botToken,
		chatID:   chatID,
		http:     &http.Client{},
	}
}

// WithAPIBase overrides the Bot API host. Used by tests.
func (c *Client) WithAPIBase(base string) *Client {
	c.apiBase = strings.TrimRight(base, "/")
	return c
}

func (c *Client) Configured() bool {
	return c.botToken != "" && c.chatID != ""
}

// Lead is one contact-form submission.
type Lead struct {
	Name   string
	Course string
	Phone  string
}

// DeliveryError carries the Bot API's failure body so the handler can
// attach it to its 500 response.
type DeliveryError struct {
	StatusCode int
	Body       []byte
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("telegram api returned %d", e.StatusCode)
}

// SanitizePhone keeps digits and a leading plus so the number can serve
// as a t.me deep link segment.
func SanitizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' || r == '+' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SendLead formats the submission as an HTML message and posts it to the
// configured chat. No retry on failure; the caller relays the outcome.
func (c *Client) SendLead(ctx context.Context, lead Lead) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	phone := SanitizePhone(lead.Phone)
	text := fmt.Sprintf(
		"<b>Yangi ariza!</b>\n\n<b>Ism:</b> %s\n<b>Kurs:</b> %s\n<b>Telefon:</b> <a href=\"https://t.me/%s\">%s</a>",
		html(lead.Name), html(lead.Course), phone, html(lead.Phone),
	)

	payload, err := json.Marshal(map[string]string{
		"chat_id":    c.chatID,
		"text":       text,
		"parse_mode": "HTML",
	})
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", c.apiBase, c.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return &DeliveryError{StatusCode: resp.StatusCode, Body: body}
	}

	return nil
}

func html(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
