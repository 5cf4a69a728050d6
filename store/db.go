package store

import "github.com/ayoisaiah/pomo/internal/notify"

// DB is the database storage interface.
type DB interface {
	notify.PermissionStore
	// Close ends the database connection
	Close() error
}

var _ DB = (*Client)(nil)
