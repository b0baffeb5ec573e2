package engine

// Sound and music labels passed to Sounds.
const (
	SoundJump        = "jump"
	SoundCoin        = "coin"
	SoundMushroom    = "mushroom"
	SoundGrow        = "grow"
	SoundHurt        = "hurt"
	SoundShoot       = "shoot"
	SoundEnemyDie    = "enemy_die"
	SoundShell       = "shell"
	SoundLiveUpgrade = "liveupgrade"

	MusicSuccess       = "success"
	MusicDie           = "die"
	MusicInvincibility = "invincibility"
)

// Sounds is the fire-and-forget audio sink.
type Sounds interface {
	Play(label string)
	Music(label string)
}

// Input is the snapshot of player intents polled once per tick.
type Input struct {
	Left       bool
	Right      bool
	Down       bool
	Jump       bool
	Accelerate bool
}

// InputSource supplies the current input snapshot.
type InputSource interface {
	Input() Input
}

// InputFunc adapts a function to InputSource.
type InputFunc func() Input

func (f InputFunc) Input() Input { return f() }

// View is what the presentation sink needs to draw one figure or matter.
type View struct {
	Handle  Handle
	Kind    string
	X, Y    float64
	W, H    float64
	OffsetX float64
	OffsetY float64
	Frame   int
	Look    Look
	Hidden  bool
	// Rows is the footprint height in tiles of a figure, zero for matter.
	Rows     int
	Blocking Blocking
}

// Viewer is implemented by occupants that draw more than their own cell.
type Viewer interface {
	Views(dst []View) []View
}

// Transfer carries hero-owned state across a reload or level transition.
type Transfer struct {
	Lives  int
	Coins  int
	Size   SizeState
	Power  PowerMode
	Stored bool
}
