package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse decodes a catalog from YAML.
func Parse(b []byte) (Catalog, error) {
	var c Catalog

	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parsing sound catalog: %w", err)
	}

	return c, nil
}

// Load reads the catalog at path. Relative sound file references are
// resolved against the directory of the catalog file.
func Load(path string) (Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	c, err := Parse(b)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)

	for _, events := range c {
		for _, refs := range events {
			for i, ref := range refs {
				if isFileRef(ref) && !filepath.IsAbs(ref) {
					refs[i] = filepath.Join(dir, ref)
				}
			}
		}
	}

	return c, nil
}

// ParsePhrases decodes a phrase table from YAML.
func ParsePhrases(b []byte) (Phrases, error) {
	var p Phrases

	if err := yaml.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("parsing phrases: %w", err)
	}

	return p, nil
}

// LoadPhrases reads the phrase table at path.
func LoadPhrases(path string) (Phrases, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParsePhrases(b)
}

func isFileRef(ref string) bool {
	return ref != "" && !strings.Contains(ref, ":")
}
