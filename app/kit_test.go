package app

import (
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/pomo/internal/audio"
	"github.com/ayoisaiah/pomo/internal/catalog"
	"github.com/ayoisaiah/pomo/internal/notify"
	"github.com/ayoisaiah/pomo/internal/session"
)

type played struct {
	ref    string
	volume float64
}

type fakeBackend struct {
	mu      sync.Mutex
	played  []played
	cleared int
}

type fakeHandle struct {
	backend *fakeBackend
	ref     string
	volume  float64
}

func (b *fakeBackend) NewHandle(ref string) (audio.Handle, error) {
	return &fakeHandle{backend: b, ref: ref, volume: 1}, nil
}

func (b *fakeBackend) NewContext() (audio.Context, error) {
	return nil, assert.AnError
}

func (b *fakeBackend) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.cleared++
}

func (b *fakeBackend) sounds() []played {
	b.mu.Lock()
	defer b.mu.Unlock()

	return append([]played(nil), b.played...)
}

func (h *fakeHandle) SetVolume(v float64) { h.volume = v }

func (h *fakeHandle) Play(done func(error)) {
	h.backend.mu.Lock()
	h.backend.played = append(h.backend.played, played{h.ref, h.volume})
	h.backend.mu.Unlock()

	done(nil)
}

type fakePlatform struct {
	mu         sync.Mutex
	permission notify.Permission
	requests   int
	shown      [][2]string
}

func (p *fakePlatform) Available() bool { return true }

func (p *fakePlatform) Permission() notify.Permission {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.permission
}

func (p *fakePlatform) RequestPermission(done func(notify.Permission, error)) {
	p.mu.Lock()
	p.requests++
	p.permission = notify.PermissionGranted
	p.mu.Unlock()

	done(notify.PermissionGranted, nil)
}

func (p *fakePlatform) Show(title, body string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.shown = append(p.shown, [2]string{title, body})

	return nil
}

func (p *fakePlatform) notifications() [][2]string {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([][2]string(nil), p.shown...)
}

var testCatalog = catalog.Catalog{
	session.Focus: {
		session.Start: {"tone:440"},
		session.End:   {"tone:880"},
	},
}

func newTestKit(t *testing.T) (*Kit, *fakeBackend, *fakePlatform, *clockwork.FakeClock) {
	t.Helper()

	backend := &fakeBackend{}
	platform := &fakePlatform{permission: notify.PermissionDefault}
	clock := clockwork.NewFakeClockAt(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))

	kit := NewKit(KitOptions{
		Backend:  backend,
		Platform: platform,
		Clock:    clock,
		Catalog:  testCatalog,
		Phrases: catalog.Phrases{
			session.Focus: {NotificationTitle: "Фокус", End: []string{"Пора отдохнуть"}},
		},
		Volume: audio.VolumeFunc(func() any { return "0.25" }),
	})

	return kit, backend, platform, clock
}

func TestKitRequestsPermissionOnce(t *testing.T) {
	_, _, platform, _ := newTestKit(t)

	assert.Equal(t, 1, platform.requests)
	assert.Equal(t, notify.PermissionGranted, platform.Permission())
}

func TestKitGestureUnlocksOncePerControl(t *testing.T) {
	kit, backend, _, _ := newTestKit(t)

	assert.False(t, kit.AudioUnlocked())

	kit.Gesture("start")
	kit.Gesture("start")

	assert.True(t, kit.AudioUnlocked())
	assert.Equal(t, []played{{"", 1}}, backend.sounds())

	kit.Gesture("music-toggle")

	assert.Len(t, backend.sounds(), 1)
}

func TestKitPlaySoundForMode(t *testing.T) {
	kit, backend, _, _ := newTestKit(t)

	kit.PlaySoundForMode(session.Focus, session.Start)
	kit.PlaySoundForMode(session.LongBreak, session.Start)

	assert.Equal(t, []played{{"tone:440", 0.25}}, backend.sounds())
}

func TestKitShowNotification(t *testing.T) {
	kit, _, platform, _ := newTestKit(t)

	kit.ShowNotification("title", "body")

	assert.Equal(t, [][2]string{{"title", "body"}}, platform.notifications())
}

func TestKitSilence(t *testing.T) {
	kit, backend, _, _ := newTestKit(t)

	kit.Silence()

	assert.Equal(t, 1, backend.cleared)

	assert.NotPanics(t, NewKit(KitOptions{}).Silence)
}

func TestKitCompletedSessionAnnounces(t *testing.T) {
	kit, backend, platform, clock := newTestKit(t)

	ended := make(chan struct{}, 1)

	require.NoError(t, kit.Timer().Start(2, session.Focus, nil, func() {
		ended <- struct{}{}
	}))

	for range 2 {
		clock.BlockUntil(1)
		clock.Advance(time.Second)
	}

	select {
	case <-ended:
	case <-time.After(2 * time.Second):
		t.Fatal("session did not end")
	}

	assert.Eventually(t, func() bool {
		return len(platform.notifications()) == 1 && len(backend.sounds()) == 1
	}, 2*time.Second, 10*time.Millisecond)

	assert.Equal(t, [][2]string{{"Фокус", "Пора отдохнуть"}}, platform.notifications())
	assert.Equal(t, []played{{"tone:880", 0.25}}, backend.sounds())
}
