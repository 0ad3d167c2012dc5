package reconcile

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const compactUTCLayout = "20060102T150405Z"

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slug lower-cases a name and collapses every run of non-alphanumeric
// characters into a single hyphen.
func Slug(s string) string {
	return strings.Trim(slugPattern.ReplaceAllString(strings.ToLower(s), "-"), "-")
}

// IsHome reports whether the tracked team is listed as the home side.
// Substring match, case-insensitive, so feed variants of the full club name
// still resolve.
func IsHome(home, trackedTeam string) bool {
	return strings.Contains(strings.ToLower(home), strings.ToLower(trackedTeam))
}

// BuildUID derives the stable calendar identifier for a fixture. It depends
// only on the kickoff instant, which side the tracked team plays, and the
// opponent, so venue, competition and score changes never alter identity.
//
// Known limitation: a double-header (same opponent, same side, same instant)
// collides on UID and is not disambiguated further.
func BuildUID(prefix, uidDomain string, start time.Time, home, away, trackedTeam string) string {
	homeSide := IsHome(home, trackedTeam)
	opponent := home
	side := "a"
	if homeSide {
		opponent = away
		side = "h"
	}
	if opponent == "" {
		opponent = "opponent"
	}
	return fmt.Sprintf("%s-%s-%s-%s@%s", prefix, start.UTC().Format(compactUTCLayout), side, Slug(opponent), uidDomain)
}
