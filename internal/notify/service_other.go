//go:build !linux

package notify

// serviceAvailable reports true on platforms where beeep talks to a built-in
// notification centre.
func serviceAvailable() bool {
	return true
}
