package engine

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/tilerunner/common"
)

// Look names a cell on a sprite sheet. The engine stores it for the
// presentation sink and never interprets it.
type Look struct {
	Sheet string
	X, Y  int
}

// Matter is any grid-resident occupant: terrain, decoration or item.
type Matter interface {
	Matter() *Static
}

// Static is the state shared by every Matter. Its cell is derived from its
// position whenever the position changes.
type Static struct {
	Kind     string
	X, Y     float64
	I, J     int
	W, H     float64
	Blocking Blocking
	Look     Look
	Frames   Frames
	Hidden   bool

	level *Level
}

func NewStatic(l *Level, kind string, x, y float64, blocking Blocking) Static {
	s := Static{
		Kind:     kind,
		W:        common.TileSize,
		H:        common.TileSize,
		Blocking: blocking,
		level:    l,
	}
	s.SetPosition(x, y)
	return s
}

func (s *Static) Matter() *Static { return s }

func (s *Static) Level() *Level { return s.level }

// SetPosition moves the occupant and recomputes its cell.
func (s *Static) SetPosition(x, y float64) {
	s.X = x
	s.Y = y
	s.I = int(x) / common.TileSize
	s.J = s.level.Grid().Height() - 1 - int(y)/common.TileSize
}

func (s *Static) SetImage(sheet string, x, y int) {
	s.Look = Look{Sheet: sheet, X: x, Y: y}
}

// SetupFrames starts an animation strip at fps frames per second.
func (s *Static) SetupFrames(fps float64, count int, rewind bool) {
	s.Frames.Setup(s.level.Config().FrameTicks(fps), count, rewind, "")
}

func (s *Static) PlayFrame() {
	s.Frames.Play()
}

func (s *Static) View() View {
	return View{
		Kind:   s.Kind,
		X:      s.X,
		Y:      s.Y,
		W:      s.W,
		H:      s.H,
		Frame:  s.Frames.Index(),
		Look:   s.Look,
		Hidden: s.Hidden,

		Blocking: s.Blocking,
	}
}

// Item is an activatable Matter with its own per-tick animation.
type Item interface {
	Matter
	Item() *ItemBase
	Activate(from Figure)
	PlayFrame()
}

// Rider is a figure that is launched, rather than killed, when the box it
// stands on bounces.
type Rider interface {
	Figure
	Launch(vy float64)
}

// ItemBase implements the activation flag and the bounce animation.
type ItemBase struct {
	Static
	Activated bool

	bouncing     bool
	bounceFrames int
	bounceStep   float64
	bounceDir    int
	bounceCount  int
	offset       float64
}

// NewItemBase builds an item that blocks from every side when blocking is set
// and from none otherwise.
func NewItemBase(l *Level, kind string, x, y float64, blocking bool) ItemBase {
	mask := BlockNone
	if blocking {
		mask = BlockAll
	}
	frames := l.Config().Ticks(50)
	step := 0.0
	if frames > 0 {
		step = float64((10 + frames - 1) / frames)
	}
	return ItemBase{
		Static:       NewStatic(l, kind, x, y, mask),
		bounceFrames: frames,
		bounceStep:   step,
		bounceDir:    1,
	}
}

func (b *ItemBase) Item() *ItemBase { return b }

// Activate marks the item used. Kinds call it after their own effect.
func (b *ItemBase) Activate(from Figure) {
	b.Activated = true
}

// Bouncing reports whether the bounce animation is running.
func (b *ItemBase) Bouncing() bool {
	return b.bouncing
}

// Offset is the current vertical display displacement from the bounce.
func (b *ItemBase) Offset() float64 {
	return b.offset
}

// Bounce starts the bounce animation. Figures standing exactly on top of the
// item are launched when they are riders and killed otherwise.
func (b *ItemBase) Bounce() {
	if b.bounceFrames <= 0 {
		return
	}
	b.bouncing = true

	top := b.Y + common.TileSize
	band := cp.BB{L: b.X - common.HalfTile, B: top, R: b.X + common.HalfTile, T: top}
	figures := b.level.Figures()
	for i := len(figures) - 1; i >= 0; i-- {
		f := figures[i]
		body := f.Base()
		if !band.ContainsVect(cp.Vector{X: body.X, Y: body.Y}) {
			continue
		}
		if r, ok := f.(Rider); ok {
			r.Launch(b.level.Config().Bounce)
		} else {
			f.Die()
		}
	}
}

// PlayFrame advances the bounce and the sprite strip by one tick.
func (b *ItemBase) PlayFrame() {
	if b.bouncing {
		b.offset += float64(b.bounceDir) * b.bounceStep
		b.bounceCount += b.bounceDir
		if b.bounceCount == b.bounceFrames {
			b.bounceDir = -1
		} else if b.bounceCount == 0 {
			b.bounceDir = 1
			b.bouncing = false
		}
	}
	b.Static.PlayFrame()
}

func (b *ItemBase) View() View {
	v := b.Static.View()
	v.OffsetY = b.offset
	return v
}
