// Package remote is the HTTP client for the action-keyed remote store API.
// Every call maps to one `?action=` request; mutation calls are consumed by
// the mirror queue, which swallows their errors by design, while Init and
// Login surface errors to the caller.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/garnizeh/skillswap/internal/models"
)

// package-level logger; can be replaced by callers via SetLogger
var logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))

// SetLogger sets the logger used by pkg/remote. Passing nil is a no-op.
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger = l
	}
}

// Client talks to the remote store. Safe for concurrent use.
type Client struct {
	baseURL string
	client  *http.Client
}

// New creates a client for the given base URL (scheme://host[:port], the
// /api path is appended per request). A nil httpClient gets a default with
// the given timeout.
func New(baseURL string, timeout time.Duration, httpClient *http.Client) (*Client, error) {
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{baseURL: baseURL, client: httpClient}, nil
}

// StatusError is a non-2xx response from the remote store.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("remote returned %d: %s", e.Code, e.Message)
}

// Init performs the one-shot bulk fetch. An error here is the signal to
// switch the application into offline/demo mode.
func (c *Client) Init(ctx context.Context) (*models.Snapshot, error) {
	var snap models.Snapshot
	if err := c.do(ctx, http.MethodGet, "init", nil, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the full user record plus the JWT issued for admin actions.
type LoginResult struct {
	models.User
	Token string `json:"token,omitempty"`
}

func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var res LoginResult
	if err := c.do(ctx, http.MethodPost, "login", loginRequest{Email: email, Password: password}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) Register(ctx context.Context, u models.User) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodPost, "register", u, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SaveSession(ctx context.Context, s models.Session) error {
	return c.do(ctx, http.MethodPost, "save_session", s, nil)
}

type statusUpdate struct {
	ID     string               `json:"id"`
	Status models.SessionStatus `json:"status"`
}

func (c *Client) UpdateSessionStatus(ctx context.Context, id string, status models.SessionStatus) error {
	return c.do(ctx, http.MethodPost, "update_session_status", statusUpdate{ID: id, Status: status}, nil)
}

func (c *Client) SaveReview(ctx context.Context, r models.Review) error {
	return c.do(ctx, http.MethodPost, "save_review", r, nil)
}

type profileUpdate struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Bio      string `json:"bio"`
	Location string `json:"location"`
}

func (c *Client) UpdateProfile(ctx context.Context, u models.User) error {
	return c.do(ctx, http.MethodPost, "update_profile", profileUpdate{ID: u.ID, Name: u.Name, Bio: u.Bio, Location: u.Location}, nil)
}

func (c *Client) AddSkill(ctx context.Context, s models.Skill) error {
	return c.do(ctx, http.MethodPost, "add_skill", s, nil)
}

func (c *Client) SendMessage(ctx context.Context, m models.Message) error {
	return c.do(ctx, http.MethodPost, "send_message", m, nil)
}

func (c *Client) do(ctx context.Context, method, action string, body, out any) error {
	u := fmt.Sprintf("%s/api?action=%s", c.baseURL, url.QueryEscape(action))

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal %s request: %w", action, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", action, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := readErrorBody(resp.Body)
		logger.Warn("remote call failed",
			slog.String("action", action),
			slog.Int("status", resp.StatusCode),
			slog.String("error", msg),
		)
		return &StatusError{Code: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", action, err)
	}
	return nil
}

func readErrorBody(r io.Reader) string {
	var payload struct {
		Error string `json:"error"`
	}
	b, _ := io.ReadAll(io.LimitReader(r, 4096))
	if err := json.Unmarshal(b, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return string(bytes.TrimSpace(b))
}
