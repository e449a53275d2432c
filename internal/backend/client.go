// Package backend talks to the remote academy API that owns users,
// credentials, and business data. This server never stores credentials;
// it forwards them once per login attempt and keeps only the snapshot
// the backend returns.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"highpro/web/internal/config"
	"highpro/web/internal/models"
)

// ErrMalformedResponse means the backend answered 2xx but the body did
// not carry the expected token pair and user record. The caller maps it
// to a 502 rather than propagating a half-empty session.
var ErrMalformedResponse = errors.New("malformed backend response")

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(cfg config.BackendConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenPair holds the backend's bearer tokens. Both are opaque here:
// stored in cookies and replayed, never parsed.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type LoginResult struct {
	Tokens TokenPair          `json:"tokens"`
	User   models.UserSummary `json:"user"`
}

// RemoteError carries a non-2xx backend reply verbatim so the browser
// can show the backend's exact error text.
type RemoteError struct {
	StatusCode int
	Body       []byte
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("backend returned %d", e.StatusCode)
}

// Login exchanges credentials for a token pair and user summary. A non-2xx
// reply comes back as *RemoteError with the upstream status and body; it is
// never retried or transformed.
func (c *Client) Login(ctx context.Context, creds Credentials) (LoginResult, error) {
	payload, err := json.Marshal(creds)
	if err != nil {
		return LoginResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/login/", bytes.NewReader(payload))
	if err != nil {
		return LoginResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return LoginResult{}, fmt.Errorf("backend login: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return LoginResult{}, fmt.Errorf("read backend response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return LoginResult{}, &RemoteError{StatusCode: resp.StatusCode, Body: body}
	}

	var result LoginResult
	if err := json.Unmarshal(body, &result); err != nil {
		return LoginResult{}, ErrMalformedResponse
	}
	if result.Tokens.Access == "" || result.Tokens.Refresh == "" || result.User.Role == "" {
		return LoginResult{}, ErrMalformedResponse
	}

	return result, nil
}
