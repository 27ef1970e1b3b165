// Package news is the HTTP client for the trading-journal server's news and
// report endpoints. The server owns all of this data; we never keep an
// authoritative local copy.
package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"pretrade/internal/model"
)

// API is the surface the TUI and CLI consume. Client implements it; tests
// substitute fakes.
type API interface {
	Unread(ctx context.Context) ([]model.NewsAlert, error)
	MarkRead(ctx context.Context, id int64) error
	GenerateReport(ctx context.Context) error
}

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Unread lists unread news alerts. The badge count is len(result).
func (c *Client) Unread(ctx context.Context) ([]model.NewsAlert, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/news?unread_only=true", nil)
	if err != nil {
		return nil, fmt.Errorf("unread request: %w", err)
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unread fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unread fetch: unexpected status %d", resp.StatusCode)
	}

	var raw newsResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("unread decode: %w", err)
	}

	alerts := make([]model.NewsAlert, 0, len(raw.News))
	for _, e := range raw.News {
		publishedAt, err := time.Parse(time.RFC3339, e.PublishedAt)
		if err != nil {
			publishedAt = time.Time{}
		}
		alerts = append(alerts, model.NewsAlert{
			ID:          e.ID,
			Title:       e.Title,
			Summary:     e.Summary,
			Symbol:      e.Symbol,
			Impact:      e.Impact,
			Source:      e.Source,
			PublishedAt: publishedAt,
			IsRead:      e.IsRead,
		})
	}
	return alerts, nil
}

// MarkRead flips one alert to read on the server. No request body; any 2xx
// is success and the response body is ignored.
func (c *Client) MarkRead(ctx context.Context, id int64) error {
	return c.post(ctx, fmt.Sprintf("/news/%d/mark-read", id))
}

// GenerateReport asks the server to build the weekly report.
func (c *Client) GenerateReport(ctx context.Context) error {
	return c.post(ctx, "/generate-weekly-report")
}

func (c *Client) post(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("post %s: unexpected status %d", path, resp.StatusCode)
	}
	return nil
}

func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

// Wire shape of GET /api/news. Only fields we render are mapped.
type newsResponse struct {
	News []newsEntry `json:"news"`
}

type newsEntry struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Summary     string `json:"summary"`
	Symbol      string `json:"symbol"`
	Impact      string `json:"impact"`
	Source      string `json:"source"`
	PublishedAt string `json:"published_at"`
	IsRead      bool   `json:"is_read"`
}
