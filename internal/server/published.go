package server

import (
	"sync"
	"time"
)

// PublishedCalendar holds the most recently built calendar document for the
// HTTP layer to serve. Writes replace the whole document atomically.
type PublishedCalendar struct {
	mu       sync.RWMutex
	document string
	builtAt  time.Time
	events   int
}

// NewPublishedCalendar returns an empty holder.
func NewPublishedCalendar() *PublishedCalendar {
	return &PublishedCalendar{}
}

// Set replaces the published document.
func (p *PublishedCalendar) Set(document string, builtAt time.Time, events int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.document = document
	p.builtAt = builtAt
	p.events = events
}

// Document returns the current document, its build time, and event count.
func (p *PublishedCalendar) Document() (string, time.Time, int) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.document, p.builtAt, p.events
}
