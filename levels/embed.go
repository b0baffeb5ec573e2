package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/milk9111/tilerunner/engine"
)

//go:embed *.json
var LevelsFS embed.FS

// Load reads a level by file name, preferring a copy under ./levels on disk
// over the embedded one.
func Load(name string) (*engine.Descriptor, error) {
	clean := cleanLevelPath(name)
	data, err := os.ReadFile(diskLevelPath(clean))
	if err != nil {
		data, err = fs.ReadFile(LevelsFS, clean)
		if err != nil {
			return nil, fmt.Errorf("read level: %w", err)
		}
	}
	return Parse(data)
}

// LoadFromFS reads a level from fsys.
func LoadFromFS(fsys fs.FS, name string) (*engine.Descriptor, error) {
	data, err := fs.ReadFile(fsys, cleanLevelPath(name))
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a level descriptor.
func Parse(data []byte) (*engine.Descriptor, error) {
	var lvl engine.Descriptor
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// List returns the embedded level file names in order.
func List() ([]string, error) {
	return ListFS(LevelsFS)
}

func ListFS(fsys fs.FS) ([]string, error) {
	names, err := fs.Glob(fsys, "*.json")
	if err != nil {
		return nil, fmt.Errorf("list levels: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

func cleanLevelPath(path string) string {
	s := filepath.ToSlash(path)
	s = strings.TrimPrefix(s, "levels/")
	if filepath.Ext(s) == "" {
		s += ".json"
	}
	return s
}

func diskLevelPath(clean string) string {
	return filepath.Join("levels", filepath.FromSlash(clean))
}
