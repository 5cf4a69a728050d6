package timer

import (
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/pomo/internal/config"
	"github.com/ayoisaiah/pomo/internal/countdown"
	"github.com/ayoisaiah/pomo/internal/session"
)

type fakeHost struct {
	timer *countdown.Timer

	mu       sync.Mutex
	gestures []string
	cues     []session.Mode
	silenced int
}

func (h *fakeHost) Timer() *countdown.Timer { return h.timer }

func (h *fakeHost) Gesture(control string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.gestures = append(h.gestures, control)
}

func (h *fakeHost) PlaySoundForMode(mode session.Mode, event session.EventType) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if event == session.Start {
		h.cues = append(h.cues, mode)
	}
}

func (h *fakeHost) Silence() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.silenced++
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func setup(t *testing.T) (*Timer, *fakeHost, *clockwork.FakeClock) {
	t.Helper()

	cfg, err := config.New(config.WithDefaults())
	require.NoError(t, err)

	cfg.Focus.Duration = 3 * time.Second
	cfg.ShortBreak.Duration = 2 * time.Second

	clock := clockwork.NewFakeClockAt(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	host := &fakeHost{timer: countdown.New(countdown.WithClock(clock))}

	return New(host, cfg), host, clock
}

// next runs cmd and returns the message it produces.
func next(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()

	require.NotNil(t, cmd)

	ch := make(chan tea.Msg, 1)

	go func() { ch <- cmd() }()

	select {
	case msg := <-ch:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
	}

	return nil
}

func TestTimerRunsSession(t *testing.T) {
	m, host, clock := setup(t)

	listen := m.Init()

	m.Update(enterKey)

	assert.True(t, m.running)
	assert.Equal(t, []string{GestureStart}, host.gestures)

	var got []int

	for i := range 4 {
		if i > 0 {
			clock.BlockUntil(1)
			clock.Advance(time.Second)
		}

		msg := next(t, listen)
		require.IsType(t, tickMsg{}, msg)

		_, listen = m.Update(msg)
		got = append(got, m.remaining)
	}

	assert.Equal(t, []int{3, 2, 1, 0}, got)

	msg := next(t, listen)
	require.IsType(t, endMsg{}, msg)

	m.Update(msg)

	assert.False(t, m.running)
	assert.True(t, m.finished)
	assert.Equal(t, session.Focus, m.Ended)
	assert.Equal(t, session.ShortBreak, m.Mode)
	assert.Equal(t, 2, m.remaining)
	assert.Contains(t, m.View(), "Your focus session is complete")
}

func TestTimerStop(t *testing.T) {
	m, host, clock := setup(t)

	listen := m.Init()

	m.Update(enterKey)

	stale := next(t, listen)

	m.Update(runeKey('s'))

	assert.False(t, m.running)
	assert.False(t, host.timer.Running())
	assert.Equal(t, 1, host.silenced)

	clock.Advance(5 * time.Second)

	m.Update(stale)
	assert.Equal(t, 3, m.remaining)
	assert.Contains(t, m.View(), "[Stopped]")

	m.Update(runeKey('s'))
	assert.Equal(t, 1, host.silenced)
}

func TestTimerIgnoresStartWhileRunning(t *testing.T) {
	m, host, _ := setup(t)

	m.Update(enterKey)
	run := m.run

	m.Update(enterKey)

	assert.Equal(t, run, m.run)
	assert.Len(t, host.gestures, 1)
}

func TestTimerCycleModes(t *testing.T) {
	m, _, _ := setup(t)

	want := []session.Mode{session.ShortBreak, session.LongBreak, session.Focus}

	for _, mode := range want {
		m.Update(tabKey)
		assert.Equal(t, mode, m.Mode)
	}

	m.Update(enterKey)
	m.Update(tabKey)

	assert.Equal(t, session.Focus, m.Mode)
}

func TestTimerCue(t *testing.T) {
	m, host, _ := setup(t)

	m.Update(tabKey)
	m.Update(runeKey('m'))
	m.Update(runeKey('m'))

	assert.Equal(t, []string{GestureMusicToggle, GestureMusicToggle}, host.gestures)
	assert.Equal(t, []session.Mode{session.ShortBreak, session.ShortBreak}, host.cues)
}

func TestTimerQuit(t *testing.T) {
	m, host, _ := setup(t)

	m.Update(enterKey)

	_, cmd := m.Update(runeKey('q'))

	assert.NotNil(t, cmd)
	assert.False(t, host.timer.Running())
}

func TestRunSessionCmd(t *testing.T) {
	assert.Nil(t, runSessionCmd(""))

	msg := runSessionCmd("true")()
	assert.Equal(t, sessionCmdMsg{}, msg)

	msg = runSessionCmd(`echo "unterminated`)()
	assert.ErrorIs(t, msg.(sessionCmdMsg).err, errParseSessionCmd)

	msg = runSessionCmd("pomo-no-such-command --flag")()
	assert.ErrorIs(t, msg.(sessionCmdMsg).err, errRunSessionCmd)
}

func TestFormatTimeRemaining(t *testing.T) {
	m, _, _ := setup(t)

	m.remaining = 1500
	assert.Equal(t, "25:00", m.formatTimeRemaining())

	m.remaining = 61
	assert.Equal(t, "01:01", m.formatTimeRemaining())
}
