// Package notify delivers reconciliation change summaries.
//
// The default implementation publishes to an ntfy topic and gracefully
// degrades to a no-op when no topic is configured, so the run orchestration
// never needs to branch on whether notifications are enabled.
package notify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"fixturecal/internal/domain"
)

const userAgent = "fixturecal/1.0"

// Service is the notification surface consumed by the run orchestration.
type Service interface {
	NotifyChanges(ctx context.Context, changes domain.ChangeSummary) error
}

// NewService builds a notification service backed by ntfy when a topic URL is
// configured; otherwise a noop implementation is returned.
func NewService(topicURL string, timeout time.Duration) Service {
	topicURL = strings.TrimSpace(topicURL)
	if topicURL == "" {
		return noopService{}
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &ntfyService{
		endpoint: topicURL,
		client:   &http.Client{Timeout: timeout},
	}
}

type noopService struct{}

func (noopService) NotifyChanges(context.Context, domain.ChangeSummary) error { return nil }

type ntfyService struct {
	endpoint string
	client   *http.Client
}

func (n *ntfyService) NotifyChanges(ctx context.Context, changes domain.ChangeSummary) error {
	if changes.Empty() {
		return nil
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, strings.NewReader(FormatMessage(changes)))
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Title", "Fixture calendar updated")
	req.Header.Set("Tags", "calendar,fixtures")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("ntfy returned status %d", resp.StatusCode)
	}
	return nil
}

// FormatMessage renders the change summary as a plain-text message with one
// section per non-empty class.
func FormatMessage(changes domain.ChangeSummary) string {
	var b strings.Builder
	writeSection(&b, "Added", changes.Added)
	writeSection(&b, "Updated", changes.Updated)
	writeSection(&b, "Removed", changes.Removed)
	return strings.TrimRight(b.String(), "\n")
}

func writeSection(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	b.WriteString(title + ":\n")
	for _, item := range items {
		b.WriteString("- " + item + "\n")
	}
}
