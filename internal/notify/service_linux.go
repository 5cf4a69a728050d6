//go:build linux

package notify

import (
	"slices"

	"github.com/godbus/dbus/v5"
)

const notificationService = "org.freedesktop.Notifications"

// serviceAvailable reports whether a notification server owns, or can be
// activated for, the freedesktop notifications name on the session bus.
func serviceAvailable() bool {
	conn, err := dbus.SessionBus()
	if err != nil {
		return false
	}

	var owned bool

	err = conn.BusObject().
		Call("org.freedesktop.DBus.NameHasOwner", 0, notificationService).
		Store(&owned)
	if err == nil && owned {
		return true
	}

	var activatable []string

	err = conn.BusObject().
		Call("org.freedesktop.DBus.ListActivatableNames", 0).
		Store(&activatable)
	if err != nil {
		return false
	}

	return slices.Contains(activatable, notificationService)
}
