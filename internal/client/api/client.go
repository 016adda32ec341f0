// Package api is a small HTTP client for the Edvora REST API used by the CLI.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/edvora/internal/common"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
)

// Error is a non-2xx response. 401 and 403 match ErrUnauthorized.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (HTTP %d)", e.Message, e.StatusCode)
}

func (e *Error) Is(target error) bool {
	return target == ErrUnauthorized &&
		(e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden)
}

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) SetToken(token string) { c.token = token }

func (c *Client) Token() string { return c.token }

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var e struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &e) != nil || e.Error == "" {
			e.Error = http.StatusText(resp.StatusCode)
		}
		return &Error{StatusCode: resp.StatusCode, Message: e.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

type authResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// RegisterInput mirrors the registration form.
type RegisterInput struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Name       string `json:"name"`
	StudentID  string `json:"studentId,omitempty"`
	Department string `json:"department,omitempty"`
}

// Register creates an account and keeps the returned token.
func (c *Client) Register(ctx context.Context, in RegisterInput) (*User, error) {
	var out authResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", in, &out); err != nil {
		return nil, err
	}
	c.token = out.Token
	return &out.User, nil
}

// Login authenticates by username or email and keeps the returned token.
func (c *Client) Login(ctx context.Context, identifier, password string) (*User, error) {
	var out authResponse
	in := map[string]string{"email": identifier, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", in, &out); err != nil {
		return nil, err
	}
	c.token = out.Token
	return &out.User, nil
}

func (c *Client) Profile(ctx context.Context) (*User, error) {
	var out struct {
		User User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/auth/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// AvatarUpload asks for a presigned URL to upload a profile picture.
func (c *Client) AvatarUpload(ctx context.Context, contentType string) (*AvatarUpload, error) {
	var out AvatarUpload
	in := map[string]string{"contentType": contentType}
	if err := c.do(ctx, http.MethodPost, "/api/auth/avatar", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Tasks(ctx context.Context) ([]Task, error) {
	var out struct {
		Tasks []Task `json:"tasks"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/tasks", nil, &out); err != nil {
		return nil, err
	}
	return out.Tasks, nil
}

func (c *Client) CreateTask(ctx context.Context, in NewTask) (*Task, error) {
	var out struct {
		Task Task `json:"task"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/tasks", in, &out); err != nil {
		return nil, err
	}
	return &out.Task, nil
}

// SetTaskStatus updates only the status of a task.
func (c *Client) SetTaskStatus(ctx context.Context, id, status string) (*Task, error) {
	var out struct {
		Task Task `json:"task"`
	}
	in := map[string]string{"status": status}
	if err := c.do(ctx, http.MethodPut, "/api/tasks/"+url.PathEscape(id), in, &out); err != nil {
		return nil, err
	}
	return &out.Task, nil
}

func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/tasks/"+url.PathEscape(id), nil, nil)
}

// Events lists events, optionally limited to month "YYYY-MM".
func (c *Client) Events(ctx context.Context, month string) ([]Event, error) {
	path := "/api/events"
	if month != "" {
		path += "?month=" + url.QueryEscape(month)
	}

	var out struct {
		Events []Event `json:"events"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Events, nil
}

func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	var out struct {
		Stats Stats `json:"stats"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out.Stats, nil
}

func (c *Client) Quote(ctx context.Context) (string, error) {
	var out struct {
		Quote string `json:"quote"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/quote", nil, &out); err != nil {
		return "", err
	}
	return out.Quote, nil
}

func (c *Client) Health(ctx context.Context) (*Health, error) {
	var out Health
	if err := c.do(ctx, http.MethodGet, "/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
