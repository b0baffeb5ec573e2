package engine

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/tilerunner/common"
)

// Figure is a moving actor resolved against the grid every tick. Body
// supplies a default for every method; kinds embed Body and override what
// they need.
type Figure interface {
	Base() *Body
	Move()
	Hit(opponent Figure)
	Hurt(from Figure)
	Death() bool
	Die()
	PlayFrame()
	SetVelocity(vx, vy float64)
	SetPosition(x, y float64)
	Collides(is, ie, js, je int, mask Blocking) bool
	Trigger(it Item)
}

// Carrier is a figure whose state survives reloads and level transitions.
type Carrier interface {
	Figure
	Store(t *Transfer)
	Restore(t Transfer)
}

// Body is the kinematic state of a figure.
type Body struct {
	Kind      string
	X, Y      float64
	VX, VY    float64
	I, J      int
	W, H      float64
	OffX      float64
	OffY      float64
	Size      SizeState
	Direction Direction
	Dead      bool
	OnGround  bool
	Hidden    bool
	Look      Look
	Frames    Frames
	// DeathOffset is the vertical display displacement of a death animation.
	DeathOffset float64

	handle Handle
	level  *Level
	self   Figure
}

// NewBody returns a small, grounded, motionless body at (x, y).
func NewBody(l *Level, kind string, x, y float64) Body {
	b := Body{
		Kind:     kind,
		Size:     SizeSmall,
		OnGround: true,
		level:    l,
	}
	b.SetPosition(x, y)
	return b
}

func (b *Body) Base() *Body { return b }

func (b *Body) Handle() Handle { return b.handle }

func (b *Body) Level() *Level { return b.level }

func (b *Body) Config() Config { return b.level.Config() }

// figure returns the outermost figure wrapping this body so overridden
// methods are used from inside the resolver.
func (b *Body) figure() Figure {
	if b.self != nil {
		return b.self
	}
	return b
}

// Self is the outermost figure; kinds call overridable methods through it.
func (b *Body) Self() Figure {
	return b.figure()
}

func (b *Body) SetSize(w, h float64) {
	b.W = w
	b.H = h
}

func (b *Body) SetOffset(dx, dy float64) {
	b.OffX = dx
	b.OffY = dy
}

func (b *Body) SetImage(sheet string, x, y int) {
	b.Look = Look{Sheet: sheet, X: x, Y: y}
}

// SetupFrames starts an animation strip; see Frames.Setup for id semantics.
func (b *Body) SetupFrames(fps float64, count int, rewind bool, id string) bool {
	return b.Frames.Setup(b.Config().FrameTicks(fps), count, rewind, id)
}

// SetPosition moves the body and recomputes its cell. A body whose row ends
// up below the grid dies.
func (b *Body) SetPosition(x, y float64) {
	b.X = x
	b.Y = y
	h := b.level.Grid().Height()
	b.I = common.Column(x)
	b.J = common.Row(h, y)
	if b.J > h && !b.Dead && b.level != nil {
		b.figure().Die()
	}
}

// SetVelocity stores the velocity and turns the body to face its horizontal
// travel.
func (b *Body) SetVelocity(vx, vy float64) {
	b.VX = vx
	b.VY = vy
	if vx > 0 {
		b.Direction = DirRight
	} else if vx < 0 {
		b.Direction = DirLeft
	}
}

// Footprint is the box used by the pairwise overlap test.
func (b *Body) Footprint() cp.BB {
	s := float64(b.Size) * common.TileSize
	return cp.BB{L: b.X, B: b.Y, R: b.X + common.HalfTile, T: b.Y + s}
}

// Overlaps is the quantised overlap test between two figures: centres within
// half a tile horizontally, footprints overlapping vertically with a 4 unit
// tolerance at the top of b.
func (b *Body) Overlaps(o *Body) bool {
	a := b.Footprint()
	a.B += 4
	a.T -= 4
	return a.Intersects(o.Footprint())
}

func (b *Body) Move() {
	b.Resolve()
}

func (b *Body) Hit(opponent Figure) {}

func (b *Body) Hurt(from Figure) {}

// Death reports whether the death animation continues. Bodies without one are
// removed on the next tick.
func (b *Body) Death() bool {
	return false
}

func (b *Body) Die() {
	b.Dead = true
}

func (b *Body) PlayFrame() {
	b.Frames.Play()
}

func (b *Body) Trigger(it Item) {}

// Collides queries the grid, forwarding item triggers to the figure.
func (b *Body) Collides(is, ie, js, je int, mask Blocking) bool {
	f := b.figure()
	return b.level.Grid().Blocked(is, ie, js, je, mask, f.Trigger)
}

func (b *Body) View() View {
	return View{
		Handle:  b.handle,
		Kind:    b.Kind,
		X:       b.X,
		Y:       b.Y,
		W:       b.W,
		H:       b.H,
		OffsetX: b.OffX,
		OffsetY: b.OffY + b.DeathOffset,
		Frame:   b.Frames.Index(),
		Look:    b.Look,
		Hidden:  b.Hidden,
		Rows:    int(b.Size),
	}
}
