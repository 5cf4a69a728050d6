package notify

import (
	"log/slog"
	"sync"

	"github.com/charmbracelet/huh"
	"github.com/gen2brain/beeep"
)

// PermissionStore persists the user's decision.
type PermissionStore interface {
	Permission() (Permission, error)
	SetPermission(p Permission) error
}

// Prompter asks the user whether notifications may be shown.
type Prompter func() (allow bool, err error)

// Shower displays a notification.
type Shower func(title, body, icon string) error

// Desktop is a Platform backed by the desktop notification service.
type Desktop struct {
	store   PermissionStore
	prompt  Prompter
	show    Shower
	capable func() bool
	icon    string
	logger  *slog.Logger

	mu sync.Mutex
}

// DesktopOption configures a Desktop platform.
type DesktopOption func(*Desktop)

// WithPrompter replaces the interactive permission prompt.
func WithPrompter(p Prompter) DesktopOption {
	return func(d *Desktop) {
		d.prompt = p
	}
}

// WithShower replaces the function that displays notifications.
func WithShower(s Shower) DesktopOption {
	return func(d *Desktop) {
		d.show = s
	}
}

// WithCapability replaces the notification service probe.
func WithCapability(fn func() bool) DesktopOption {
	return func(d *Desktop) {
		d.capable = fn
	}
}

// WithIcon sets the path to the notification icon.
func WithIcon(path string) DesktopOption {
	return func(d *Desktop) {
		d.icon = path
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) DesktopOption {
	return func(d *Desktop) {
		d.logger = l
	}
}

// NewDesktop creates a desktop platform that keeps its permission in store.
func NewDesktop(store PermissionStore, opts ...DesktopOption) *Desktop {
	d := &Desktop{
		store:   store,
		prompt:  confirmPrompt,
		show:    beeepShow,
		capable: serviceAvailable,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

func (d *Desktop) Available() bool {
	return d.capable()
}

// Permission returns the stored decision. A missing or unreadable decision
// is reported as PermissionDefault.
func (d *Desktop) Permission() Permission {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.store == nil {
		return PermissionDefault
	}

	p, err := d.store.Permission()
	if err != nil || !p.Valid() {
		return PermissionDefault
	}

	return p
}

// RequestPermission prompts the user and stores the answer. The prompt owns
// the terminal, so it is resolved before RequestPermission returns.
func (d *Desktop) RequestPermission(done func(Permission, error)) {
	allow, err := d.prompt()
	if err != nil {
		done(PermissionDefault, err)
		return
	}

	p := PermissionDenied
	if allow {
		p = PermissionGranted
	}

	if err := d.SetPermission(p); err != nil {
		done(PermissionDefault, err)
		return
	}

	done(p, nil)
}

// SetPermission records a decision made outside the prompt.
func (d *Desktop) SetPermission(p Permission) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.store == nil {
		return nil
	}

	return d.store.SetPermission(p)
}

func (d *Desktop) Show(title, body string) error {
	return d.show(title, body, d.icon)
}

func beeepShow(title, body, icon string) error {
	return beeep.Notify(title, body, icon)
}

func confirmPrompt() (bool, error) {
	var allow bool

	err := huh.NewConfirm().
		Title("Show a desktop notification when a session ends?").
		Affirmative("Allow").
		Negative("Block").
		Value(&allow).
		Run()

	return allow, err
}
