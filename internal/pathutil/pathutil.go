// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"

	"github.com/ayoisaiah/pomo/internal/osutil"
)

// Paths holds all application path configurations.
type Paths struct {
	dir             string
	configFileName  string
	dbFileName      string
	logFileName     string
	catalogFileName string
	phraseFileName  string

	// Computed absolute paths
	dataDir         string
	configFilePath  string
	dbFilePath      string
	logFilePath     string
	catalogFilePath string
	phraseFilePath  string
}

var (
	paths *Paths
	once  sync.Once
)

// Initialize must be called once at program startup.
func Initialize() error {
	var initErr error

	once.Do(func() {
		paths = &Paths{
			dir:             "pomo",
			configFileName:  "config.yml",
			dbFileName:      "pomo.db",
			logFileName:     "pomo.log",
			catalogFileName: "catalog.yml",
			phraseFileName:  "phrases.yml",
		}

		paths.applyEnvironmentOverrides(os.Getenv("POMO_ENV"))
		initErr = paths.computePaths()
	})

	return initErr
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

// Dir is the name of the application directory under the XDG base
// directories.
func Dir() string {
	return Must().dir
}

func DataDir() string {
	return Must().dataDir
}

func ConfigFilePath() string {
	return Must().configFilePath
}

func DBFilePath() string {
	return Must().dbFilePath
}

func LogFilePath() string {
	return Must().logFilePath
}

func CatalogFilePath() string {
	return Must().catalogFilePath
}

func PhraseFilePath() string {
	return Must().phraseFilePath
}

func (p *Paths) applyEnvironmentOverrides(env string) {
	env = strings.TrimSpace(env)
	if env == "" {
		return
	}

	p.configFileName = fmt.Sprintf("config_%s.yml", env)
	p.dbFileName = fmt.Sprintf("pomo_%s.db", env)
	p.logFileName = fmt.Sprintf("pomo_%s.log", env)
}

func (p *Paths) computePaths() error {
	var err error

	p.configFilePath, err = xdg.ConfigFile(filepath.Join(p.dir, p.configFileName))
	if err != nil {
		return err
	}

	p.dataDir, err = xdg.DataFile(p.dir)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(p.dataDir, osutil.DirPermission); err != nil {
		return err
	}

	p.dbFilePath = filepath.Join(p.dataDir, p.dbFileName)
	p.logFilePath = filepath.Join(p.dataDir, "log", p.logFileName)
	p.catalogFilePath = filepath.Join(p.dataDir, p.catalogFileName)
	p.phraseFilePath = filepath.Join(p.dataDir, p.phraseFileName)

	return nil
}

// StripExtension returns the input file name without its extension.
func StripExtension(fileName string) string {
	return fileName[:len(fileName)-len(filepath.Ext(fileName))]
}
