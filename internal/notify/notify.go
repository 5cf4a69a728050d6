// Package notify shows desktop notifications when the user has granted
// permission for them.
package notify

import (
	"fmt"
	"log/slog"
	"sync"
)

// Permission is the user's decision about notifications.
type Permission string

const (
	// PermissionDefault means the user has not been asked yet.
	PermissionDefault Permission = "default"
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
)

// Valid reports whether p is one of the known permission states.
func (p Permission) Valid() bool {
	switch p {
	case PermissionDefault, PermissionGranted, PermissionDenied:
		return true
	}

	return false
}

// Platform is the host's notification facility.
type Platform interface {
	// Available reports whether notifications can be shown at all.
	Available() bool
	Permission() Permission
	// RequestPermission asks the user for permission and reports the outcome
	// through done.
	RequestPermission(done func(Permission, error))
	Show(title, body string) error
}

// Gate shows notifications through a platform once permission is granted.
type Gate struct {
	platform Platform
	logger   *slog.Logger
	request  sync.Once
}

// NewGate creates a gate and, if the platform has never asked the user,
// issues a single permission request.
func NewGate(platform Platform, logger *slog.Logger) *Gate {
	if logger == nil {
		logger = slog.Default()
	}

	g := &Gate{
		platform: platform,
		logger:   logger,
	}

	g.RequestPermission()

	return g
}

// RequestPermission asks for permission if notifications are available and
// the user has not decided yet. Only the first call can issue a request.
func (g *Gate) RequestPermission() {
	g.request.Do(func() {
		err := attempt(func() error {
			if g.platform == nil || !g.platform.Available() {
				return nil
			}

			if g.platform.Permission() != PermissionDefault {
				return nil
			}

			g.platform.RequestPermission(func(p Permission, err error) {
				if err != nil {
					g.logger.Debug("notification permission request failed", "error", err)
					return
				}

				g.logger.Debug("notification permission decided", "permission", p)
			})

			return nil
		})
		if err != nil {
			g.logger.Debug("notification permission request failed", "error", err)
		}
	})
}

// Notify shows a notification if permission is currently granted. It does
// nothing otherwise and never reports an error.
func (g *Gate) Notify(title, body string) {
	err := attempt(func() error {
		if g.platform == nil || !g.platform.Available() {
			return nil
		}

		if g.platform.Permission() != PermissionGranted {
			return nil
		}

		return g.platform.Show(title, body)
	})
	if err != nil {
		g.logger.Debug("unable to display notification", "error", err)
	}
}

func attempt(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("recovered: %v", r)
		}
	}()

	return fn()
}
