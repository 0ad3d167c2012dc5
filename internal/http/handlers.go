// Package http exposes the service's HTTP surface: health, readiness, and
// the published calendar document.
package http

import (
	"encoding/json"
	"log/slog"
	nethttp "net/http"
	"time"

	"fixturecal/internal/poller"
)

// CalendarSource provides the most recently published calendar.
type CalendarSource interface {
	// Document returns the serialized calendar, when it was built, and how
	// many events it holds. An empty document means no run has succeeded yet.
	Document() (string, time.Time, int)
}

// StatusFunc reports the refresh loop's health.
type StatusFunc func() poller.Status

// Handler wires HTTP routes to the published calendar and poller status.
type Handler struct {
	source CalendarSource
	status StatusFunc
	logger *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(source CalendarSource, status StatusFunc, logger *slog.Logger) *Handler {
	return &Handler{source: source, status: status, logger: logger}
}

// Health reports liveness.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"})
}

// Ready reports whether a calendar has been published recently enough to
// serve. Repeated refresh failures flip readiness off.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	var status poller.Status
	if h.status != nil {
		status = h.status()
	}
	payload := map[string]any{
		"ready":                status.IsReady(),
		"consecutive_failures": status.ConsecutiveFailures,
	}
	if !status.LastSuccess.IsZero() {
		payload["last_success"] = status.LastSuccess.UTC().Format(time.RFC3339)
	}
	if status.LastError != "" {
		payload["last_error"] = status.LastError
	}
	code := nethttp.StatusOK
	if !status.IsReady() {
		code = nethttp.StatusServiceUnavailable
	}
	h.writeJSON(w, code, payload)
}

// Calendar serves the published .ics document.
func (h *Handler) Calendar(w nethttp.ResponseWriter, r *nethttp.Request) {
	document, builtAt, _ := h.source.Document()
	if document == "" {
		h.writeError(w, nethttp.StatusServiceUnavailable, "calendar not yet published")
		return
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `inline; filename="fixtures.ics"`)
	w.Header().Set("Last-Modified", builtAt.UTC().Format(nethttp.TimeFormat))
	w.WriteHeader(nethttp.StatusOK)
	if _, err := w.Write([]byte(document)); err != nil && h.logger != nil {
		h.logger.Error("failed to write calendar response", "error", err)
	}
}

func (h *Handler) writeJSON(w nethttp.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w nethttp.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
