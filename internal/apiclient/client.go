// Package apiclient is the kiosk's HTTP client for the backend: list
// enrolled descriptors, mark attendance, list today's records.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/buildcrew/sitepulse-backend-go/internal/facematch"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if !env.Success {
		if env.Error != nil {
			return fmt.Errorf("api error %s: %s", env.Error.Code, env.Error.Message)
		}
		return fmt.Errorf("api error: status %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return nil
}

type descriptorEntry struct {
	Email      string    `json:"email"`
	Descriptor []float64 `json:"descriptor"`
}

// ListDescriptors implements recognition.Store.
func (c *Client) ListDescriptors(ctx context.Context) ([]facematch.Candidate, error) {
	var entries []descriptorEntry
	if err := c.do(ctx, http.MethodGet, "/api/v1/descriptors", nil, &entries); err != nil {
		return nil, err
	}

	candidates := make([]facematch.Candidate, 0, len(entries))
	for _, e := range entries {
		candidates = append(candidates, facematch.Candidate{
			Email:      e.Email,
			Descriptor: e.Descriptor,
		})
	}
	return candidates, nil
}

// SaveDescriptor enrolls a face for an email.
func (c *Client) SaveDescriptor(ctx context.Context, email string, descriptor []float64) error {
	body := descriptorEntry{Email: email, Descriptor: descriptor}
	return c.do(ctx, http.MethodPost, "/api/v1/descriptors", body, nil)
}

type markResult struct {
	Status string `json:"status"`
}

// MarkAttendance implements recognition.Ledger.
func (c *Client) MarkAttendance(ctx context.Context, email string) (string, error) {
	body := map[string]string{"email": email}
	var result markResult
	if err := c.do(ctx, http.MethodPost, "/api/v1/attendance", body, &result); err != nil {
		return "", err
	}
	return result.Status, nil
}

type attendanceEntry struct {
	Email   string `json:"email"`
	CheckIn string `json:"check_in"`
}

// ListToday implements recognition.Ledger.
func (c *Client) ListToday(ctx context.Context) ([]string, error) {
	var entries []attendanceEntry
	if err := c.do(ctx, http.MethodGet, "/api/v1/attendance/today?unique=true", nil, &entries); err != nil {
		return nil, err
	}

	emails := make([]string, 0, len(entries))
	for _, e := range entries {
		emails = append(emails, e.Email)
	}
	return emails, nil
}
