// Package static embeds the default sound catalog and phrase table and
// copies them to the filesystem
package static

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ayoisaiah/pomo/internal/osutil"
)

const (
	filesDir = "files"

	CatalogFile = "catalog.yml"
	PhraseFile  = "phrases.yml"
)

//go:embed files/*
var embeddedFiles embed.FS

// ReadFile returns the embedded copy of a default file.
func ReadFile(name string) ([]byte, error) {
	return embeddedFiles.ReadFile(filesDir + "/" + name)
}

// CopyToDir writes the embedded files into dir. Existing files are left
// untouched so that user edits survive upgrades.
func CopyToDir(dir string) error {
	return fs.WalkDir(
		embeddedFiles,
		filesDir,
		func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				return nil
			}

			destPath := filepath.Join(dir, strings.TrimPrefix(path, filesDir+"/"))

			// Only write if file does not already exist
			if _, err := os.Stat(destPath); !os.IsNotExist(err) {
				return err
			}

			b, err := embeddedFiles.ReadFile(path)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(filepath.Dir(destPath), osutil.DirPermission); err != nil {
				return err
			}

			return os.WriteFile(destPath, b, osutil.FilePermission)
		},
	)
}
