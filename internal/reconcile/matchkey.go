package reconcile

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Layouts tried when extracting the date component of a match key. Fixtures
// carry a time, results sometimes only a date, so both granularities must
// collide on the same key.
var matchKeyLayouts = []string{"02/01/06 15:04", "02/01/2006 15:04", "02/01/06", "02/01/2006"}

var (
	clubSuffixPattern = regexp.MustCompile(`\b(fc|afc)\b`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// CleanTeam lightly normalizes a team name to reduce join mismatches between
// the two feeds: lower-case, common club suffixes stripped as whole words,
// "u18s" collapsed to "u18", whitespace collapsed.
func CleanTeam(s string) string {
	s = strings.ToLower(s)
	s = clubSuffixPattern.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "u18s", "u18")
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
}

// MatchKey builds the canonical join key pairing a fixture with its result
// within one run. When no layout matches, the raw date string is kept as the
// date component so both sides still agree on the key.
func MatchKey(dateRaw, home, away string) string {
	datePart := dateRaw
	for _, layout := range matchKeyLayouts {
		if d, err := time.Parse(layout, dateRaw); err == nil {
			datePart = d.Format("20060102")
			break
		}
	}
	return fmt.Sprintf("%s|%s|%s", datePart, CleanTeam(home), CleanTeam(away))
}
