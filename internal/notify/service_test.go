package notify

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fixturecal/internal/domain"
)

func TestNoopWhenUnconfigured(t *testing.T) {
	svc := NewService("", 0)
	err := svc.NotifyChanges(context.Background(), domain.ChangeSummary{Added: []string{"x"}})
	if err != nil {
		t.Fatalf("noop must not error: %v", err)
	}
}

func TestNtfyPostsMessage(t *testing.T) {
	var gotBody string
	var gotTitle string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotTitle = r.Header.Get("Title")
	}))
	defer srv.Close()

	svc := NewService(srv.URL, time.Second)
	changes := domain.ChangeSummary{
		Added:   []string{"match one"},
		Updated: []string{"match two (venue changed)"},
	}
	if err := svc.NotifyChanges(context.Background(), changes); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotTitle == "" {
		t.Fatalf("expected a title header")
	}
	if !strings.Contains(gotBody, "Added:\n- match one") {
		t.Fatalf("unexpected body %q", gotBody)
	}
	if !strings.Contains(gotBody, "Updated:\n- match two (venue changed)") {
		t.Fatalf("unexpected body %q", gotBody)
	}
}

func TestNtfyErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	svc := NewService(srv.URL, time.Second)
	err := svc.NotifyChanges(context.Background(), domain.ChangeSummary{Removed: []string{"gone"}})
	if err == nil {
		t.Fatalf("expected error on non-2xx")
	}
}

func TestEmptySummarySkipsPost(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	svc := NewService(srv.URL, time.Second)
	if err := svc.NotifyChanges(context.Background(), domain.ChangeSummary{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if called {
		t.Fatalf("empty summary must not post")
	}
}

func TestFormatMessageOrdering(t *testing.T) {
	msg := FormatMessage(domain.ChangeSummary{
		Added:   []string{"a"},
		Updated: []string{"u"},
		Removed: []string{"r"},
	})
	ai := strings.Index(msg, "Added:")
	ui := strings.Index(msg, "Updated:")
	ri := strings.Index(msg, "Removed:")
	if !(ai >= 0 && ai < ui && ui < ri) {
		t.Fatalf("sections out of order: %q", msg)
	}
}
