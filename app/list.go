package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/maruel/natural"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/pomo/internal/audio"
	"github.com/ayoisaiah/pomo/internal/catalog"
	"github.com/ayoisaiah/pomo/internal/session"
	"github.com/ayoisaiah/pomo/internal/ui"
)

const (
	noSoundsMsg = "The sound catalog is empty"
)

var events = []session.EventType{session.Start, session.End}

// soundRows flattens the catalog into table rows ordered by mode, event, and
// then naturally by sound.
func soundRows(c catalog.Catalog) [][]string {
	modes := make([]string, 0, len(c))
	for mode := range c {
		modes = append(modes, string(mode))
	}

	slices.SortFunc(modes, compareModes)

	var rows [][]string

	for _, m := range modes {
		mode := session.Mode(m)

		for _, event := range events {
			refs := slices.Clone(c.Candidates(mode, event))

			slices.SortFunc(refs, func(a, b string) int {
				switch {
				case natural.Less(a, b):
					return -1
				case natural.Less(b, a):
					return 1
				default:
					return 0
				}
			})

			for _, ref := range refs {
				rows = append(rows, []string{
					fmt.Sprintf("%d", len(rows)+1),
					m,
					string(event),
					describeSound(ref),
				})
			}
		}
	}

	return rows
}

// compareModes orders the built-in modes first in cycle order and any
// others after them naturally.
func compareModes(a, b string) int {
	ia := slices.Index(session.Modes, session.Mode(a))
	ib := slices.Index(session.Modes, session.Mode(b))

	switch {
	case ia >= 0 && ib >= 0:
		return ia - ib
	case ia >= 0:
		return -1
	case ib >= 0:
		return 1
	case natural.Less(a, b):
		return -1
	case natural.Less(b, a):
		return 1
	default:
		return 0
	}
}

func describeSound(ref string) string {
	if strings.HasPrefix(ref, audio.TonePrefix) {
		return ui.Cyan(ref)
	}

	if _, err := os.Stat(ref); err != nil {
		return ui.Red(filepath.Base(ref) + " (missing)")
	}

	return ui.Green(filepath.Base(ref))
}

// printSoundsTable prints the catalog to w.
func printSoundsTable(w io.Writer, c catalog.Catalog) {
	rows := soundRows(c)
	if len(rows) == 0 {
		pterm.Info.Println(noSoundsMsg)
		return
	}

	rows = append([][]string{
		{"#", "MODE", "EVENT", "SOUND"},
	}, rows...)

	ui.PrintTable(rows, w)
}
