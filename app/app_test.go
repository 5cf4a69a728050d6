package app

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/pomo/internal/catalog"
	"github.com/ayoisaiah/pomo/internal/notify"
	"github.com/ayoisaiah/pomo/internal/session"
)

func TestParseMode(t *testing.T) {
	mode, err := parseMode("")
	require.NoError(t, err)
	assert.Equal(t, session.Focus, mode)

	mode, err = parseMode("longBreak")
	require.NoError(t, err)
	assert.Equal(t, session.LongBreak, mode)

	_, err = parseMode("nap")
	assert.ErrorIs(t, err, errUnknownMode)
}

func TestParseEvent(t *testing.T) {
	event, err := parseEvent("start")
	require.NoError(t, err)
	assert.Equal(t, session.Start, event)

	_, err = parseEvent("middle")
	assert.ErrorIs(t, err, errUnknownEvent)
}

func TestSoundRows(t *testing.T) {
	disableStyling()

	c := catalog.Catalog{
		"custom": {
			session.End: {"tone:100"},
		},
		session.LongBreak: {
			session.End: {"tone:300"},
		},
		session.Focus: {
			session.End:   {"tone:880", "tone:90"},
			session.Start: {"tone:440"},
		},
	}

	var got []string

	for _, row := range soundRows(c) {
		got = append(got, strings.Join(row, " "))
	}

	want := []string{
		"1 focus start tone:440",
		"2 focus end tone:90",
		"3 focus end tone:880",
		"4 longBreak end tone:300",
		"5 custom end tone:100",
	}

	assert.Equal(t, want, got)
}

func TestFirstNonEmptyString(t *testing.T) {
	assert.Equal(t, "b", firstNonEmptyString("", "b", "c"))
	assert.Empty(t, firstNonEmptyString("", ""))
}

func TestDescribePermission(t *testing.T) {
	disableStyling()

	assert.Equal(t, "Notifications: granted", describePermission(notify.PermissionGranted, true))
	assert.Equal(t,
		"Notifications: default (notification service unavailable)",
		describePermission(notify.PermissionDefault, false),
	)
}

func TestPermissionCommand(t *testing.T) {
	dir := t.TempDir()

	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	xdg.Reload()

	run := func(args ...string) string {
		t.Helper()

		var buf bytes.Buffer

		a := Get()
		a.Writer = &buf

		err := a.Run(append([]string{"pomo", "--no-color", "permission"}, args...))
		require.NoError(t, err)

		return buf.String()
	}

	assert.Contains(t, run("status"), "Notifications: default")
	assert.Contains(t, run("allow"), "Notifications: granted")
	assert.Contains(t, run(), "Notifications: granted")
	assert.Contains(t, run("deny"), "Notifications: denied")
	assert.Contains(t, run("reset"), "Notifications: default")

	a := Get()
	a.Writer = &bytes.Buffer{}

	err := a.Run([]string{"pomo", "permission", "maybe"})
	assert.ErrorIs(t, err, errUnknownPermissionCmd)
}
