// Package state persists the per-UID reconciliation state between runs.
package state

import (
	"fixturecal/internal/domain"
)

// Store loads and saves the tracked state as a single unit. A missing store
// is equivalent to an empty mapping (first-ever run).
type Store interface {
	Load() (domain.State, error)
	Save(state domain.State) error
}
