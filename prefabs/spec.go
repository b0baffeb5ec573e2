package prefabs

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/tilerunner/engine"
)

// SetupFile is the name of the engine tuning prefab.
const SetupFile = "setup.yaml"

var ErrInvalidSetup = errors.New("invalid setup")

// SetupSpec is the YAML form of engine.Config. Durations are milliseconds.
type SetupSpec struct {
	Interval       int     `yaml:"interval"`
	Bounce         float64 `yaml:"bounce"`
	Cooldown       int     `yaml:"cooldown"`
	Gravity        float64 `yaml:"gravity"`
	StartLives     int     `yaml:"start_lives"`
	JumpingV       float64 `yaml:"jumping_v"`
	WalkingV       float64 `yaml:"walking_v"`
	MushroomV      float64 `yaml:"mushroom_v"`
	BallmonsterV   float64 `yaml:"ballmonster_v"`
	SpikedTurtleV  float64 `yaml:"spiked_turtle_v"`
	SmallTurtleV   float64 `yaml:"small_turtle_v"`
	BigTurtleV     float64 `yaml:"big_turtle_v"`
	ShellV         float64 `yaml:"shell_v"`
	ShellWait      int     `yaml:"shell_wait"`
	StarVX         float64 `yaml:"star_vx"`
	StarVY         float64 `yaml:"star_vy"`
	BulletV        float64 `yaml:"bullet_v"`
	MaxCoins       int     `yaml:"max_coins"`
	PipePlantCount int     `yaml:"pipeplant_count"`
	PipePlantV     float64 `yaml:"pipeplant_v"`
	Invincible     int     `yaml:"invincible"`
	Invulnerable   int     `yaml:"invulnerable"`
	BlinkFactor    int     `yaml:"blinkfactor"`
	NextLevelDelay int     `yaml:"next_level_delay"`
}

func specFromConfig(c engine.Config) SetupSpec {
	return SetupSpec(c)
}

// Config converts s into an engine.Config.
func (s SetupSpec) Config() engine.Config {
	return engine.Config(s)
}

// ParseSetup decodes YAML over the engine defaults, so omitted keys keep
// their default value.
func ParseSetup(data []byte) (engine.Config, error) {
	spec := specFromConfig(engine.DefaultConfig())
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return engine.Config{}, fmt.Errorf("prefabs: unmarshal %s: %w", SetupFile, err)
	}
	cfg := spec.Config()
	if cfg.Interval <= 0 {
		return engine.Config{}, fmt.Errorf("prefabs: %w: interval %d", ErrInvalidSetup, cfg.Interval)
	}
	if cfg.BlinkFactor <= 0 {
		return engine.Config{}, fmt.Errorf("prefabs: %w: blinkfactor %d", ErrInvalidSetup, cfg.BlinkFactor)
	}
	return cfg, nil
}

// LoadSetup reads the engine tuning. An explicit path wins; otherwise
// ./prefabs/setup.yaml on disk, then the embedded default.
func LoadSetup(path string) (engine.Config, error) {
	var (
		data []byte
		err  error
	)
	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return engine.Config{}, fmt.Errorf("prefabs: load %s: %w", path, err)
		}
	} else {
		data, err = Load(SetupFile)
		if err != nil {
			return engine.Config{}, fmt.Errorf("prefabs: load %s: %w", SetupFile, err)
		}
	}
	return ParseSetup(data)
}
