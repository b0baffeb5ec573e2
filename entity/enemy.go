package entity

import (
	"math"

	"github.com/milk9111/tilerunner/engine"
)

// DeathMode selects the death animation of an enemy.
type DeathMode int

const (
	DeathNormal DeathMode = iota
	// DeathShell is used when the enemy was knocked out by a moving shell.
	DeathShell
)

// Enemy is the shared behaviour of walking enemies: patrol at a fixed speed,
// turn at walls and ledges, get stomped by a falling hero and hurt it
// otherwise.
type Enemy struct {
	engine.Body

	Speed     float64
	Invisible bool
	DeathMode DeathMode
}

func newEnemy(l *engine.Level, kind string, x, y float64) Enemy {
	return Enemy{Body: engine.NewBody(l, kind, x, y)}
}

func (e *Enemy) hide() {
	e.Invisible = true
	e.Hidden = true
}

func (e *Enemy) show() {
	e.Invisible = false
	e.Hidden = false
}

func (e *Enemy) Move() {
	if e.Invisible {
		return
	}
	e.Body.Move()
	if e.VX == 0 {
		s := math.Abs(e.Speed)
		if e.Direction == engine.DirRight {
			s = -s
		}
		e.Self().SetVelocity(s, e.VY)
	}
}

// Collides treats a probed column without top-blocking ground directly
// below the enemy as blocked, so patrols turn at ledges.
func (e *Enemy) Collides(is, ie, js, je int, mask engine.Blocking) bool {
	g := e.Level().Grid()
	below := e.J + 1
	if below < g.Height() {
		for i := is; i <= ie; i++ {
			if i < 0 || i >= g.Width() {
				return true
			}
			m := g.At(i, below)
			if m == nil || !m.Matter().Blocking.Blocks(engine.BlockTop) {
				return true
			}
		}
	}
	return e.Body.Collides(is, ie, js, je, mask)
}

// SetSpeed sets the patrol speed and starts walking left.
func (e *Enemy) SetSpeed(v float64) {
	e.Speed = v
	e.Self().SetVelocity(-v, 0)
}

func (e *Enemy) Hurt(from engine.Figure) {
	if _, ok := from.(*Shell); ok {
		e.DeathMode = DeathShell
	}
	e.Self().Die()
}

// Stomped reports whether the hero is falling onto e from above.
func (e *Enemy) Stomped(hero *engine.Body) bool {
	return hero.VY < 0 && hero.Y-hero.VY >= e.Y+float64(e.Size)*32
}

func (e *Enemy) Hit(opponent engine.Figure) {
	if e.Invisible {
		return
	}
	if _, ok := opponent.(*Hero); !ok {
		return
	}
	hb := opponent.Base()
	if e.Stomped(hb) {
		opponent.SetVelocity(hb.VX, e.Config().Bounce)
		e.Self().Hurt(opponent)
		return
	}
	opponent.Hurt(e.Self())
}

// arc is the knocked-out animation: rise for a number of ticks, then fall
// back by the same number of ticks.
type arc struct {
	frames int
	count  int
	dir    int
	up     float64
	down   float64
}

func newArc(cfg engine.Config, up, down float64) arc {
	frames := max(cfg.Ticks(250), 1)
	return arc{
		frames: frames,
		dir:    1,
		up:     math.Ceil(up / float64(frames)),
		down:   math.Ceil(down / float64(frames)),
	}
}

// step moves offset one tick along the arc and reports whether it continues.
func (a *arc) step(offset *float64) bool {
	if a.dir > 0 {
		*offset += a.up
	} else {
		*offset -= a.down
	}
	a.count += a.dir
	if a.count == a.frames {
		a.dir = -1
	} else if a.count == 0 {
		return false
	}
	return true
}
