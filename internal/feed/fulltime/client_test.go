package fulltime

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"fixturecal/internal/feed"
)

func TestFetchFixturesDecodesArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != userAgent {
			t.Errorf("unexpected user agent %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"fixtureDateTime":"07/09/25 14:00","homeTeam":"A","awayTeam":"B"}]`))
	}))
	defer srv.Close()

	c := NewClient(Config{FixturesURL: srv.URL, HTTPClient: srv.Client()})
	records, err := c.FetchFixtures(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected one record, got %d", len(records))
	}
	if records[0]["homeTeam"] != "A" {
		t.Fatalf("unexpected record %v", records[0])
	}
}

func TestFetchNonArrayPayloadIsEmptyFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":"no data"}`))
	}))
	defer srv.Close()

	c := NewClient(Config{ResultsURL: srv.URL, HTTPClient: srv.Client()})
	records, err := c.FetchResults(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty feed, got %v", records)
	}
}

func TestFetchNon200ReturnsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "service down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(Config{FixturesURL: srv.URL, HTTPClient: srv.Client()})
	_, err := c.FetchFixtures(context.Background())
	ue, ok := feed.AsUpstreamError(err)
	if !ok {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if ue.StatusCode != http.StatusServiceUnavailable || ue.Feed != feed.FeedFixtures {
		t.Fatalf("unexpected error details %+v", ue)
	}
}

func TestFetchMissingURL(t *testing.T) {
	c := NewClient(Config{})
	if _, err := c.FetchFixtures(context.Background()); err == nil {
		t.Fatalf("expected error for unconfigured URL")
	}
}
