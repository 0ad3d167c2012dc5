package server

import "time"

// The calendar document is a few KB and subscribers poll infrequently, so
// short read/write deadlines are plenty; idle keeps polling clients'
// connections warm between refreshes.
const (
	readTimeout  = 5 * time.Second
	writeTimeout = 15 * time.Second
	idleTimeout  = 90 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
