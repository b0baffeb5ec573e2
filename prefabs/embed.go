package prefabs

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var PrefabsFS embed.FS

// Dir is the directory searched on disk before falling back to PrefabsFS.
var Dir = "prefabs"

// Load reads a prefab file, preferring a copy under Dir over the embedded one.
func Load(name string) ([]byte, error) {
	return loadFrom(os.DirFS(Dir), PrefabsFS, name)
}

func loadFrom(disk, embedded fs.FS, name string) ([]byte, error) {
	clean, err := cleanPrefabPath(name)
	if err != nil {
		return nil, err
	}
	if data, err := fs.ReadFile(disk, clean); err == nil {
		return data, nil
	}
	return fs.ReadFile(embedded, clean)
}

func cleanPrefabPath(name string) (string, error) {
	s := strings.TrimPrefix(filepath.ToSlash(name), "prefabs/")
	s = path.Clean(s)
	if !fs.ValidPath(s) || s == "." {
		return "", fmt.Errorf("prefabs: invalid name %q", name)
	}
	return s, nil
}
