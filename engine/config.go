package engine

// Config holds the fixed tuning of a simulation. A Level copies it at
// construction and only swaps it at a load boundary.
type Config struct {
	Interval       int     // milliseconds per tick
	Bounce         float64 // upward velocity given by stomps, kicks and bouncing boxes
	Cooldown       int     // ticks between hero shots
	Gravity        float64
	StartLives     int
	JumpingV       float64
	WalkingV       float64
	MushroomV      float64
	BallmonsterV   float64
	SpikedTurtleV  float64
	SmallTurtleV   float64
	BigTurtleV     float64
	ShellV         float64
	ShellWait      int
	StarVX         float64
	StarVY         float64
	BulletV        float64
	MaxCoins       int
	PipePlantCount int
	PipePlantV     float64
	Invincible     int // milliseconds
	Invulnerable   int // milliseconds
	BlinkFactor    int
	NextLevelDelay int // milliseconds
}

func DefaultConfig() Config {
	return Config{
		Interval:       20,
		Bounce:         15,
		Cooldown:       20,
		Gravity:        2,
		StartLives:     3,
		JumpingV:       27,
		WalkingV:       5,
		MushroomV:      3,
		BallmonsterV:   2,
		SpikedTurtleV:  1.5,
		SmallTurtleV:   3,
		BigTurtleV:     2,
		ShellV:         10,
		ShellWait:      25,
		StarVX:         2,
		StarVY:         16,
		BulletV:        12,
		MaxCoins:       100,
		PipePlantCount: 150,
		PipePlantV:     1,
		Invincible:     11000,
		Invulnerable:   1000,
		BlinkFactor:    5,
		NextLevelDelay: 7000,
	}
}

// Ticks converts a duration in milliseconds into whole ticks, rounding down.
func (c Config) Ticks(ms int) int {
	if c.Interval <= 0 {
		return 0
	}
	return ms / c.Interval
}

// TicksCeil converts a duration in milliseconds into ticks, rounding up.
func (c Config) TicksCeil(ms int) int {
	if c.Interval <= 0 {
		return 0
	}
	return (ms + c.Interval - 1) / c.Interval
}

// FrameTicks is the number of ticks one animation frame stays on screen at fps.
func (c Config) FrameTicks(fps float64) float64 {
	if fps <= 0 || c.Interval <= 0 {
		return 0
	}
	return 1000 / fps / float64(c.Interval)
}
