// Package ics renders reconciled fixtures into an iCalendar document.
package ics

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"fixturecal/internal/reconcile"
)

// Builder turns reconciled entries into a serialized VCALENDAR. Consumers
// must treat a VEVENT with a higher SEQUENCE as superseding a lower one with
// the same UID.
type Builder struct {
	trackedTeam  string
	calendarName string
	productID    string
	links        []string
	now          func() time.Time
}

// Config describes the calendar-level framing.
type Config struct {
	TrackedTeam  string
	CalendarName string
	ProductID    string
	// Links is a fixed set of supplementary reference URLs appended to every
	// event description.
	Links []string
}

// NewBuilder constructs a Builder with a real clock.
func NewBuilder(cfg Config) *Builder {
	if cfg.ProductID == "" {
		cfg.ProductID = "-//fixturecal//Fixture Calendar//EN"
	}
	return &Builder{
		trackedTeam:  cfg.TrackedTeam,
		calendarName: cfg.CalendarName,
		productID:    cfg.ProductID,
		links:        cfg.Links,
		now:          time.Now,
	}
}

// WithClock overrides the DTSTAMP clock; fixed clocks keep tests stable.
func (b *Builder) WithClock(now func() time.Time) *Builder {
	b.now = now
	return b
}

// Build serializes the entries into an iCalendar document. Entries are
// emitted in the order given; the reconciler sorts them by kickoff.
func (b *Builder) Build(entries []reconcile.Entry) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(b.productID)
	cal.SetCalscale("GREGORIAN")
	if b.calendarName != "" {
		cal.SetXWRCalName(b.calendarName)
	}
	if len(b.links) > 0 {
		cal.SetXWRCalDesc(strings.Join(b.links, " | "))
	}

	stamp := b.now().UTC()
	for _, e := range entries {
		ev := cal.AddEvent(e.UID)
		ev.SetDtStampTime(stamp)
		ev.SetStartAt(e.StartUTC.UTC())
		ev.SetEndAt(e.EndUTC.UTC())
		ev.SetProperty(ical.ComponentPropertySequence, strconv.Itoa(e.Revision))
		// Values go in raw; the library escapes TEXT properties (commas,
		// semicolons, backslashes, newlines) at serialization.
		ev.SetSummary(b.Summary(e))
		if e.Fixture.Venue != "" {
			ev.SetLocation(e.Fixture.Venue)
		}
		ev.SetProperty(ical.ComponentPropertyDescription, strings.Join(b.DescriptionLines(e), "\n"))
	}
	return cal.Serialize()
}

// Summary phrases the event title relative to the tracked team: plain
// "A vs B" before the match, "{home} {hs}–{as} {away}" once scored, keeping
// home/away orientation.
func (b *Builder) Summary(e reconcile.Entry) string {
	if e.Result != nil && e.Result.Scored() {
		hs := *e.Result.HomeScore
		as := *e.Result.AwayScore
		if e.HomeSide {
			return fmt.Sprintf("%s %d–%d %s", b.trackedTeam, hs, as, e.Opponent)
		}
		return fmt.Sprintf("%s %d–%d %s", e.Opponent, hs, as, b.trackedTeam)
	}
	if e.HomeSide {
		return fmt.Sprintf("%s vs %s", b.trackedTeam, e.Opponent)
	}
	return fmt.Sprintf("%s vs %s", e.Opponent, b.trackedTeam)
}

// DescriptionLines lists the unescaped description content in order.
func (b *Builder) DescriptionLines(e reconcile.Entry) []string {
	lines := []string{fmt.Sprintf("%s vs %s", e.Fixture.HomeTeam, e.Fixture.AwayTeam)}
	if e.Fixture.Competition != "" {
		lines = append(lines, "Competition: "+e.Fixture.Competition)
	}
	if e.Fixture.Venue != "" {
		lines = append(lines, "Venue: "+e.Fixture.Venue)
	}
	if e.Result != nil && e.Result.Scored() {
		lines = append(lines, fmt.Sprintf("Result: %s %d–%d %s",
			e.Fixture.HomeTeam, *e.Result.HomeScore, *e.Result.AwayScore, e.Fixture.AwayTeam))
	}
	return append(lines, b.links...)
}
