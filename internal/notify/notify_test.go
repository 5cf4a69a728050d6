package notify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

type fakePlatform struct {
	unavailable bool
	permission  Permission
	requestErr  error
	answer      Permission
	showErr     error
	showPanic   bool

	requests int
	shown    [][2]string
}

func (p *fakePlatform) Available() bool {
	return !p.unavailable
}

func (p *fakePlatform) Permission() Permission {
	return p.permission
}

func (p *fakePlatform) RequestPermission(done func(Permission, error)) {
	p.requests++

	if p.requestErr != nil {
		done(PermissionDefault, p.requestErr)
		return
	}

	p.permission = p.answer
	done(p.answer, nil)
}

func (p *fakePlatform) Show(title, body string) error {
	if p.showPanic {
		panic("notification constructor threw")
	}

	if p.showErr != nil {
		return p.showErr
	}

	p.shown = append(p.shown, [2]string{title, body})

	return nil
}

func TestNewGateRequestsOnlyWhenUndecided(t *testing.T) {
	cases := []struct {
		Name         string
		Platform     *fakePlatform
		WantRequests int
	}{
		{"default asks", &fakePlatform{permission: PermissionDefault, answer: PermissionGranted}, 1},
		{"granted does not ask", &fakePlatform{permission: PermissionGranted}, 0},
		{"denied does not ask", &fakePlatform{permission: PermissionDenied}, 0},
		{"unavailable does not ask", &fakePlatform{unavailable: true, permission: PermissionDefault}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			g := NewGate(tc.Platform, nil)

			g.RequestPermission()

			assert.Equal(t, tc.WantRequests, tc.Platform.requests)
		})
	}
}

func TestRequestErrorIsSwallowed(t *testing.T) {
	p := &fakePlatform{permission: PermissionDefault, requestErr: errBoom}

	var g *Gate

	assert.NotPanics(t, func() {
		g = NewGate(p, nil)
	})

	g.Notify("Timer", "done")

	assert.Empty(t, p.shown)
	assert.Equal(t, 1, p.requests)
}

func TestNotifyGranted(t *testing.T) {
	p := &fakePlatform{permission: PermissionGranted}

	NewGate(p, nil).Notify("Focus", "Session complete")

	assert.Equal(t, [][2]string{{"Focus", "Session complete"}}, p.shown)
}

func TestNotifyAfterGrantingRequest(t *testing.T) {
	p := &fakePlatform{permission: PermissionDefault, answer: PermissionGranted}

	NewGate(p, nil).Notify("Focus", "Session complete")

	assert.Len(t, p.shown, 1)
}

func TestNotifyDeniedIsSilent(t *testing.T) {
	p := &fakePlatform{permission: PermissionDenied}

	assert.NotPanics(t, func() {
		NewGate(p, nil).Notify("Focus", "Session complete")
	})

	assert.Empty(t, p.shown)
}

func TestNotifySwallowsShowFailures(t *testing.T) {
	for _, p := range []*fakePlatform{
		{permission: PermissionGranted, showErr: errBoom},
		{permission: PermissionGranted, showPanic: true},
	} {
		assert.NotPanics(t, func() {
			NewGate(p, nil).Notify("Focus", "Session complete")
		})
	}
}

func TestNilPlatform(t *testing.T) {
	assert.NotPanics(t, func() {
		NewGate(nil, nil).Notify("Focus", "Session complete")
	})
}

type memoryStore struct {
	p   Permission
	err error
}

func (s *memoryStore) Permission() (Permission, error) {
	if s.err != nil {
		return "", s.err
	}

	if s.p == "" {
		return PermissionDefault, nil
	}

	return s.p, nil
}

func (s *memoryStore) SetPermission(p Permission) error {
	s.p = p
	return nil
}

func TestDesktopRequestStoresAnswer(t *testing.T) {
	for _, allow := range []bool{true, false} {
		store := &memoryStore{}

		d := NewDesktop(store,
			WithCapability(func() bool { return true }),
			WithPrompter(func() (bool, error) { return allow, nil }),
		)

		var got Permission

		d.RequestPermission(func(p Permission, err error) {
			require.NoError(t, err)
			got = p
		})

		want := PermissionDenied
		if allow {
			want = PermissionGranted
		}

		assert.Equal(t, want, got)
		assert.Equal(t, want, d.Permission())
	}
}

func TestDesktopPromptFailureLeavesDefault(t *testing.T) {
	store := &memoryStore{}

	d := NewDesktop(store,
		WithPrompter(func() (bool, error) { return false, errBoom }),
	)

	d.RequestPermission(func(p Permission, err error) {
		assert.ErrorIs(t, err, errBoom)
		assert.Equal(t, PermissionDefault, p)
	})

	assert.Equal(t, PermissionDefault, d.Permission())
}

func TestDesktopUnreadableStoreIsDefault(t *testing.T) {
	d := NewDesktop(&memoryStore{err: errBoom})

	assert.Equal(t, PermissionDefault, d.Permission())

	d = NewDesktop(&memoryStore{p: "maybe"})

	assert.Equal(t, PermissionDefault, d.Permission())
}

func TestDesktopShowThroughGate(t *testing.T) {
	var shown []string

	d := NewDesktop(&memoryStore{p: PermissionGranted},
		WithCapability(func() bool { return true }),
		WithIcon("/tmp/icon.png"),
		WithShower(func(title, body, icon string) error {
			shown = append(shown, title, body, icon)
			return nil
		}),
	)

	NewGate(d, nil).Notify("Перерыв", "Сессия завершена")

	assert.Equal(t, []string{"Перерыв", "Сессия завершена", "/tmp/icon.png"}, shown)
}
