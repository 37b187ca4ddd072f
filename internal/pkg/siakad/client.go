// Package siakad talks to the university's SIAKAD student information
// system. The production client speaks JSON over HTTP; a mock client stands
// in until the real endpoints are available.
package siakad

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// LoginResponse is the SIAKAD login result.
type LoginResponse struct {
	Success bool    `json:"success"`
	Token   *string `json:"token,omitempty"`
	Message *string `json:"message,omitempty"`
	NIM     *string `json:"nim,omitempty"`
	Name    *string `json:"name,omitempty"`
}

// ScheduleResponse is the remote semester schedule.
type ScheduleResponse struct {
	SemesterName string         `json:"semesterName"`
	StartDate    string         `json:"startDate"` // "YYYY-MM-DD"
	EndDate      string         `json:"endDate"`
	Courses      []RemoteCourse `json:"courses"`
}

// RemoteCourse is one course row as SIAKAD reports it.
type RemoteCourse struct {
	ID       string `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Lecturer string `json:"lecturer"`
	Room     string `json:"room"`
	// DayOfWeek is ISO numbering: 1 (Monday) through 7 (Sunday).
	DayOfWeek int     `json:"dayOfWeek"`
	StartTime string  `json:"startTime"` // "HH:mm"
	EndTime   string  `json:"endTime"`
	Color     *uint32 `json:"color,omitempty"`
}

// Client is the SIAKAD boundary consumed by the sync service.
type Client interface {
	Login(ctx context.Context, nim, password string) (*LoginResponse, error)
	FetchSchedule(ctx context.Context, token string) (*ScheduleResponse, error)
}

// HTTPClient is the real SIAKAD client.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient creates a client for the given SIAKAD base URL.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// Login authenticates against SIAKAD.
func (c *HTTPClient) Login(ctx context.Context, nim, password string) (*LoginResponse, error) {
	body, err := json.Marshal(map[string]string{"nim": nim, "password": password})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/login", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("siakad login request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("siakad login: unexpected status %d", resp.StatusCode)
	}

	var out LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("siakad login response: %w", err)
	}
	return &out, nil
}

// FetchSchedule retrieves the current semester schedule.
func (c *HTTPClient) FetchSchedule(ctx context.Context, token string) (*ScheduleResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/schedule", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("siakad schedule request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("siakad schedule: unexpected status %d", resp.StatusCode)
	}

	var out ScheduleResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("siakad schedule response: %w", err)
	}
	return &out, nil
}
