package entity

import "github.com/milk9111/tilerunner/engine"

// Shell is a turtle shell. At rest the hero kicks it; moving, it hurts
// whatever it runs into.
type Shell struct {
	Enemy
	idle int
}

func NewShell(l *engine.Level, x, y float64) *Shell {
	s := &Shell{Enemy: newEnemy(l, KindShell, x, y)}
	l.Spawn(s)
	s.SetSize(34, 32)
	s.Speed = 0
	s.SetImage(SheetEnemies, 0, 494)
	return s
}

// Activate drops the shell at (x, y) and makes it visible.
func (s *Shell) Activate(x, y float64) {
	s.SetupFrames(6, 4, false, "")
	s.Self().SetPosition(x, y)
	s.show()
}

func (s *Shell) takeBack(t *GreenTurtle) {
	if t.setShell(s) {
		s.Frames.Clear()
	}
}

func (s *Shell) Hit(opponent engine.Figure) {
	if s.Invisible {
		return
	}
	if s.VX != 0 {
		if s.idle > 0 {
			s.idle--
			return
		}
		opponent.Hurt(s.Self())
		return
	}

	switch o := opponent.(type) {
	case *Hero:
		v := s.Config().ShellV
		if o.Direction == engine.DirRight {
			v = -v
		}
		s.SetSpeed(v)
		o.SetVelocity(o.VX, s.Config().Bounce)
		s.idle = 2
	case *GreenTurtle:
		if o.Size == engine.SizeSmall {
			s.takeBack(o)
		}
	}
}

// Collides uses plain grid blocking; a shell never triggers items.
func (s *Shell) Collides(is, ie, js, je int, mask engine.Blocking) bool {
	return s.Level().Grid().Blocked(is, ie, js, je, mask, nil)
}
