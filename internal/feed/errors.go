package feed

import (
	"errors"
	"fmt"
)

// UpstreamError captures a non-success HTTP response from a feed endpoint.
type UpstreamError struct {
	Feed       string
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "upstream feed request failed"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s feed: %s (status=%d)", e.Feed, msg, e.StatusCode)
	}
	return fmt.Sprintf("%s feed: %s", e.Feed, msg)
}

// AsUpstreamError attempts to unwrap an error into an UpstreamError.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}
