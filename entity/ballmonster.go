package entity

import "github.com/milk9111/tilerunner/engine"

// Ballmonster is the plain walking enemy.
type Ballmonster struct {
	Enemy
	deathWait int
	arc       arc
}

func NewBallmonster(l *engine.Level, x, y float64) *Ballmonster {
	g := &Ballmonster{Enemy: newEnemy(l, KindBallmonster, x, y)}
	l.Spawn(g)
	g.SetSize(34, 32)
	g.SetSpeed(l.Config().BallmonsterV)
	return g
}

func (g *Ballmonster) SetVelocity(vx, vy float64) {
	g.Body.SetVelocity(vx, vy)
	if g.Direction == engine.DirLeft {
		if !g.SetupFrames(6, 2, false, "LeftWalk") {
			g.SetImage(SheetEnemies, 34, 188)
		}
		return
	}
	if !g.SetupFrames(6, 2, true, "RightWalk") {
		g.SetImage(SheetEnemies, 0, 228)
	}
}

func (g *Ballmonster) Death() bool {
	if g.DeathMode == DeathNormal {
		g.deathWait--
		return g.deathWait > 0
	}
	return g.arc.step(&g.DeathOffset)
}

func (g *Ballmonster) Die() {
	g.Frames.Clear()
	cfg := g.Config()
	switch g.DeathMode {
	case DeathNormal:
		g.Level().PlaySound(engine.SoundEnemyDie)
		g.SetImage(SheetEnemies, 102, 228)
		g.deathWait = cfg.TicksCeil(600)
	case DeathShell:
		g.Level().PlaySound(engine.SoundShell)
		if g.Direction == engine.DirRight {
			g.SetImage(SheetEnemies, 68, 228)
		} else {
			g.SetImage(SheetEnemies, 68, 188)
		}
		g.arc = newArc(cfg, 150, 150)
	}
	g.Body.Die()
}
