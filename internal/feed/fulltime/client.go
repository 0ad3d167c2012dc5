// Package fulltime fetches fixture and result payloads from the FullTime API.
package fulltime

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"fixturecal/internal/domain"
	"fixturecal/internal/feed"
)

const userAgent = "fixturecal/1.0"

// Config controls how the client reaches the upstream API.
type Config struct {
	FixturesURL string
	ResultsURL  string
	HTTPClient  *http.Client
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches raw records from the FullTime fixture and result endpoints.
type Client struct {
	fixturesURL string
	resultsURL  string
	httpClient  httpDoer
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		fixturesURL: cfg.FixturesURL,
		resultsURL:  cfg.ResultsURL,
		httpClient:  resolveHTTPClient(cfg.HTTPClient),
	}
}

// FetchFixtures retrieves the scheduled fixtures feed.
func (c *Client) FetchFixtures(ctx context.Context) ([]domain.RawRecord, error) {
	return c.fetch(ctx, feed.FeedFixtures, c.fixturesURL)
}

// FetchResults retrieves the results feed.
func (c *Client) FetchResults(ctx context.Context) ([]domain.RawRecord, error) {
	return c.fetch(ctx, feed.FeedResults, c.resultsURL)
}

func (c *Client) fetch(ctx context.Context, feedName, url string) ([]domain.RawRecord, error) {
	if url == "" {
		return nil, &feed.UpstreamError{Feed: feedName, Message: "endpoint URL not configured"}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &feed.UpstreamError{
			Feed:       feedName,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("unexpected status: %s", strings.TrimSpace(string(body))),
		}
	}

	// The API returns a JSON array of records. Any other shape (error
	// envelope, single object) is treated as an empty feed rather than a
	// hard failure.
	var payload any
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
		return nil, decodeErr
	}

	list, ok := payload.([]any)
	if !ok {
		return []domain.RawRecord{}, nil
	}

	records := make([]domain.RawRecord, 0, len(list))
	for _, item := range list {
		if rec, ok := item.(map[string]any); ok {
			records = append(records, domain.RawRecord(rec))
		}
	}
	return records, nil
}

func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: 15 * time.Second}
}
