package entity

import (
	"fmt"

	"github.com/milk9111/tilerunner/common"
	"github.com/milk9111/tilerunner/engine"
)

// [size-1][facing right]
var greenTurtleLooks = [2][2][2]int{
	{{34, 382}, {0, 437}},
	{{34, 266}, {0, 325}},
}

// GreenTurtle walks big while it carries its shell. A stomp drops the shell
// and leaves a small, faster turtle that dies on the next stomp.
type GreenTurtle struct {
	Enemy
	shell     engine.Handle
	wait      int
	deathWait int
	arc       arc
}

func NewGreenTurtle(l *engine.Level, x, y float64) *GreenTurtle {
	cfg := l.Config()
	t := &GreenTurtle{
		Enemy: newEnemy(l, KindGreenTurtle, x, y),
		arc:   newArc(cfg, 150, 182),
	}
	l.Spawn(t)
	t.SetSize(34, 54)
	t.setShell(NewShell(l, x, y))
	return t
}

// Shell returns the carried shell, if any.
func (t *GreenTurtle) Shell() *Shell {
	s, _ := t.Level().Figure(t.shell).(*Shell)
	return s
}

func (t *GreenTurtle) setShell(s *Shell) bool {
	if t.shell.Valid() || t.wait > 0 {
		return false
	}
	t.shell = s.Handle()
	s.hide()
	t.setState(engine.SizeBig)
	return true
}

func (t *GreenTurtle) setState(size engine.SizeState) {
	t.Size = size
	cfg := t.Config()
	if size == engine.SizeBig {
		t.SetSpeed(cfg.BigTurtleV)
	} else {
		t.SetSpeed(cfg.SmallTurtleV)
	}
}

func (t *GreenTurtle) SetVelocity(vx, vy float64) {
	t.Body.SetVelocity(vx, vy)
	rewind := t.Direction == engine.DirRight
	facing := 0
	if rewind {
		facing = 1
	}
	c := greenTurtleLooks[t.Size-1][facing]
	label := fmt.Sprintf("%d-%d", int(common.Sign(vx)), t.Size)
	if !t.SetupFrames(6, 2, rewind, label) {
		t.SetImage(SheetEnemies, c[0], c[1])
	}
}

func (t *GreenTurtle) Die() {
	t.Body.Die()
	t.Frames.Clear()
	switch t.DeathMode {
	case DeathNormal:
		t.deathWait = t.Config().Ticks(600)
		t.SetImage(SheetEnemies, 102, 437)
	case DeathShell:
		t.Level().PlaySound(engine.SoundShell)
		y := 325
		if t.Size == engine.SizeSmall {
			y = 382
			if t.Direction == engine.DirRight {
				y = 437
			}
		}
		t.SetImage(SheetEnemies, 68, y)
	}
}

func (t *GreenTurtle) Death() bool {
	if t.DeathMode == DeathNormal {
		t.deathWait--
		return t.deathWait > 0
	}
	return t.arc.step(&t.DeathOffset)
}

func (t *GreenTurtle) Move() {
	if t.wait > 0 {
		t.wait--
	}
	t.Enemy.Move()
}

// Hurt kills a small turtle. A big one turns small and drops its shell in
// place.
func (t *GreenTurtle) Hurt(from engine.Figure) {
	t.Level().PlaySound(engine.SoundEnemyDie)
	if t.Size == engine.SizeSmall {
		t.Self().Die()
		return
	}
	t.wait = t.Config().ShellWait
	t.setState(engine.SizeSmall)
	if s := t.Shell(); s != nil {
		s.Activate(t.X, t.Y)
	}
	t.shell = 0
}

// SpikedTurtle cannot be stomped.
type SpikedTurtle struct {
	Enemy
	arc arc
}

func NewSpikedTurtle(l *engine.Level, x, y float64) *SpikedTurtle {
	t := &SpikedTurtle{
		Enemy: newEnemy(l, KindSpikedTurtle, x, y),
		arc:   newArc(l.Config(), 150, 182),
	}
	l.Spawn(t)
	t.SetSize(34, 32)
	t.SetSpeed(l.Config().SpikedTurtleV)
	return t
}

func (t *SpikedTurtle) SetVelocity(vx, vy float64) {
	t.Body.SetVelocity(vx, vy)
	if t.Direction == engine.DirLeft {
		if !t.SetupFrames(4, 2, true, "LeftWalk") {
			t.SetImage(SheetEnemies, 0, 106)
		}
		return
	}
	if !t.SetupFrames(6, 2, false, "RightWalk") {
		t.SetImage(SheetEnemies, 34, 147)
	}
}

func (t *SpikedTurtle) Death() bool {
	return t.arc.step(&t.DeathOffset)
}

func (t *SpikedTurtle) Die() {
	t.Level().PlaySound(engine.SoundShell)
	t.Frames.Clear()
	t.Body.Die()
	if t.Direction == engine.DirLeft {
		t.SetImage(SheetEnemies, 68, 106)
	} else {
		t.SetImage(SheetEnemies, 68, 147)
	}
}

func (t *SpikedTurtle) Hit(opponent engine.Figure) {
	if t.Invisible {
		return
	}
	if _, ok := opponent.(*Hero); ok {
		opponent.Hurt(t.Self())
	}
}
