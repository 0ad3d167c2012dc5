package reconcile

import (
	"fmt"
	"strings"
	"time"
)

// Accepted civil kickoff layouts: dd/MM/yy HH:mm and dd/MM/yyyy HH:mm.
var kickoffLayouts = []string{"02/01/06 15:04", "02/01/2006 15:04"}

// ParseError reports a kickoff string that matched none of the accepted
// layouts. Records carrying one are skipped with a warning, never fatal.
type ParseError struct {
	Value string
}

func (e *ParseError) Error() string {
	if strings.TrimSpace(e.Value) == "" {
		return "kickoff date-time missing"
	}
	return fmt.Sprintf("could not parse kickoff date-time %q", e.Value)
}

// ResolveKickoff interprets a local wall-clock kickoff string in the given
// civil zone and returns the corresponding UTC instant. The zone's own offset
// rules apply, so seasonal transitions (BST/GMT) are handled per date. Pure:
// the result depends only on the inputs.
func ResolveKickoff(raw string, loc *time.Location) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return time.Time{}, &ParseError{Value: raw}
	}
	for _, layout := range kickoffLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, &ParseError{Value: raw}
}
