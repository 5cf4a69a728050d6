// Package gesture runs an action the first time the user interacts with a
// named control.
package gesture

import "sync"

// Binder tracks one-shot bindings per control.
type Binder struct {
	mu    sync.Mutex
	bound map[string]*binding
}

type binding struct {
	once sync.Once
	fn   func()
}

// New returns an empty Binder.
func New() *Binder {
	return &Binder{bound: make(map[string]*binding)}
}

// Bind attaches fn to control and returns the handler to invoke on each
// interaction. fn runs on the first interaction only. Binding a control a
// second time returns the existing handler and ignores fn.
func (b *Binder) Bind(control string, fn func()) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	h, ok := b.bound[control]
	if !ok {
		h = &binding{fn: fn}
		b.bound[control] = h
	}

	return h.fire
}

// Trigger invokes the handler bound to control, if any. It reports whether a
// binding exists.
func (b *Binder) Trigger(control string) bool {
	b.mu.Lock()
	h, ok := b.bound[control]
	b.mu.Unlock()

	if !ok {
		return false
	}

	h.fire()

	return true
}

func (h *binding) fire() {
	h.once.Do(func() {
		if h.fn != nil {
			h.fn()
		}
	})
}
