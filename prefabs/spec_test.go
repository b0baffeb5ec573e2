package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/tilerunner/engine"
)

func TestEmbeddedSetupMatchesDefaults(t *testing.T) {
	data, err := PrefabsFS.ReadFile(SetupFile)
	require.NoError(t, err)

	cfg, err := ParseSetup(data)
	require.NoError(t, err)
	assert.Equal(t, engine.DefaultConfig(), cfg)
}

func TestParseSetup(t *testing.T) {
	cases := []struct {
		name    string
		yaml    string
		check   func(t *testing.T, cfg engine.Config)
		wantErr bool
	}{
		{
			name: "partial_keeps_defaults",
			yaml: "gravity: 3\nstart_lives: 5\n",
			check: func(t *testing.T, cfg engine.Config) {
				assert.Equal(t, 3.0, cfg.Gravity)
				assert.Equal(t, 5, cfg.StartLives)
				assert.Equal(t, 20, cfg.Interval)
				assert.Equal(t, 1.5, cfg.SpikedTurtleV)
			},
		},
		{name: "zero_interval", yaml: "interval: 0\n", wantErr: true},
		{name: "bad_yaml", yaml: "interval: [", wantErr: true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg, err := ParseSetup([]byte(c.yaml))
			if c.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			c.check(t, cfg)
		})
	}
}

func TestLoadSetupExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bullet_v: 20\n"), 0o644))

	cfg, err := LoadSetup(path)
	require.NoError(t, err)
	assert.Equal(t, 20.0, cfg.BulletV)

	_, err = LoadSetup(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestWatcherReportsSetupEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	path := filepath.Join(dir, SetupFile)
	require.NoError(t, os.WriteFile(path, []byte("gravity: 1\n"), 0o644))

	select {
	case name := <-w.Events:
		assert.True(t, IsSetup(name))
	case <-time.After(2 * time.Second):
		t.Fatal("no watcher event")
	}
}

func TestFileFilters(t *testing.T) {
	assert.True(t, isSpecFile("a/setup.YAML"))
	assert.True(t, isLevelFile("levels/01.json"))
	assert.False(t, isSpecFile("notes.txt"))
	assert.False(t, IsSetup("other.yaml"))
}

func TestLoadPrefersDisk(t *testing.T) {
	embedded := fstest.MapFS{SetupFile: {Data: []byte("gravity: 1\n")}}
	disk := fstest.MapFS{SetupFile: {Data: []byte("gravity: 2\n")}}

	data, err := loadFrom(disk, embedded, "prefabs/"+SetupFile)
	require.NoError(t, err)
	assert.Equal(t, "gravity: 2\n", string(data))

	data, err = loadFrom(fstest.MapFS{}, embedded, SetupFile)
	require.NoError(t, err)
	assert.Equal(t, "gravity: 1\n", string(data))

	_, err = loadFrom(disk, embedded, "../setup.yaml")
	assert.Error(t, err)
	_, err = loadFrom(disk, embedded, "")
	assert.Error(t, err)
}
