// Package api is the HTTP transport collaborator. It attaches the session
// credential to every request, decodes typed bodies, and converts non-2xx
// responses into *Error values carrying the server-supplied message. It does
// not retry, refresh tokens, or impose ordering; callers own those policies.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// TokenSource supplies the bearer credential for outgoing requests.
// Implemented by session.Store.
type TokenSource interface {
	Token() (string, bool)
}

// Error is a failed round trip. Message is the server's human-readable
// message when it sent one, otherwise empty.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server returned %d", e.Status)
}

// Client talks to the attendance service.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

// NewClient creates a client for the service at baseURL. tokens may be nil
// for an unauthenticated client.
func NewClient(baseURL string, tokens TokenSource, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

// Login exchanges credentials for a token and role.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	var out LoginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &out)
	return out, err
}

// Signup creates an account. The response token is optional; an empty token
// means the user should log in explicitly.
func (c *Client) Signup(ctx context.Context, name, email, password string) (SignupResponse, error) {
	var out SignupResponse
	err := c.do(ctx, http.MethodPost, "/auth/signup", signupRequest{Name: name, Email: email, Password: password}, &out)
	return out, err
}

// Tasks fetches the caller's full task list in server order.
func (c *Client) Tasks(ctx context.Context) ([]Task, error) {
	var out []Task
	err := c.do(ctx, http.MethodGet, "/tasks", nil, &out)
	return out, err
}

// CreateTask submits a new task.
func (c *Client) CreateTask(ctx context.Context, title string) (Task, error) {
	var out Task
	err := c.do(ctx, http.MethodPost, "/tasks", createTaskRequest{Title: title}, &out)
	return out, err
}

// UpdateTask applies a partial update to the task with the given id.
func (c *Client) UpdateTask(ctx context.Context, id string, patch TaskPatch) (Task, error) {
	var out Task
	err := c.do(ctx, http.MethodPut, "/tasks/"+id, patch, &out)
	return out, err
}

// DeleteTask removes the task with the given id.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/tasks/"+id, nil, nil)
}

// MarkAttendance records today's attendance for the caller and returns the
// server's message.
func (c *Client) MarkAttendance(ctx context.Context) (string, error) {
	var out messageResponse
	if err := c.do(ctx, http.MethodPost, "/attendance", nil, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// TodayAttendance fetches the admin roster for today. Non-admin callers get
// a 401/403 *Error.
func (c *Client) TodayAttendance(ctx context.Context) ([]AttendanceRecord, error) {
	var out []AttendanceRecord
	err := c.do(ctx, http.MethodGet, "/admin/attendance/today", nil, &out)
	return out, err
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token, ok := c.tokens.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &Error{Status: resp.StatusCode}
		var msg messageResponse
		if json.Unmarshal(data, &msg) == nil {
			apiErr.Message = msg.Message
		}
		return apiErr
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
