package static_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/pomo/internal/catalog"
	"github.com/ayoisaiah/pomo/internal/session"
	"github.com/ayoisaiah/pomo/internal/static"
)

func TestDefaultCatalogCoversEveryMode(t *testing.T) {
	b, err := static.ReadFile(static.CatalogFile)
	require.NoError(t, err)

	c, err := catalog.Parse(b)
	require.NoError(t, err)

	for _, mode := range session.Modes {
		for _, event := range []session.EventType{session.Start, session.End} {
			assert.NotEmpty(t, c.Candidates(mode, event), "%s/%s", mode, event)
		}
	}
}

func TestDefaultPhrases(t *testing.T) {
	b, err := static.ReadFile(static.PhraseFile)
	require.NoError(t, err)

	p, err := catalog.ParsePhrases(b)
	require.NoError(t, err)

	for _, mode := range session.Modes {
		assert.NotEqual(t, catalog.DefaultTitle, p.Title(mode), mode)
		assert.NotEqual(t, catalog.DefaultBody, p.Body(mode), mode)
	}
}

func TestCopyToDirKeepsExistingFiles(t *testing.T) {
	dir := t.TempDir()
	custom := []byte("focus: {}\n")

	require.NoError(t, os.WriteFile(filepath.Join(dir, static.CatalogFile), custom, 0o600))
	require.NoError(t, static.CopyToDir(dir))

	got, err := os.ReadFile(filepath.Join(dir, static.CatalogFile))
	require.NoError(t, err)
	assert.Equal(t, custom, got)

	want, err := static.ReadFile(static.PhraseFile)
	require.NoError(t, err)

	got, err = os.ReadFile(filepath.Join(dir, static.PhraseFile))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
