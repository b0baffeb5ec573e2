package entity

import "github.com/milk9111/tilerunner/engine"

// Plant is a stationary enemy that cannot be stomped.
type Plant struct {
	Enemy
}

func newPlant(l *engine.Level, kind string, x, y float64) Plant {
	return Plant{Enemy: newEnemy(l, kind, x, y)}
}

func (p *Plant) init() {
	p.SetSize(34, 42)
	p.SetupFrames(5, 2, true, "")
	p.SetImage(SheetEnemies, 0, 3)
}

func (p *Plant) SetVelocity(vx, vy float64) {
	p.Body.SetVelocity(0, 0)
}

func (p *Plant) Die() {
	p.Level().PlaySound(engine.SoundShell)
	p.Frames.Clear()
	p.Body.Die()
}

func (p *Plant) Hit(opponent engine.Figure) {
	if p.Invisible {
		return
	}
	if _, ok := opponent.(*Hero); ok {
		opponent.Hurt(p.Self())
	}
}

// StaticPlant stands on the ground.
type StaticPlant struct {
	Plant
	arc arc
}

func NewStaticPlant(l *engine.Level, x, y float64) *StaticPlant {
	p := &StaticPlant{
		Plant: newPlant(l, KindStaticPlant, x, y),
		arc:   newArc(l.Config(), 100, 132),
	}
	l.Spawn(p)
	p.init()
	return p
}

func (p *StaticPlant) Die() {
	p.Plant.Die()
	p.SetImage(SheetEnemies, 68, 3)
}

func (p *StaticPlant) Death() bool {
	return p.arc.step(&p.DeathOffset)
}

// PipePlant rises out of a pipe and sinks back, pausing at both ends. It
// stays down while anything stands over the pipe mouth.
type PipePlant struct {
	Plant
	bottom  float64
	top     float64
	minimum int

	arc       arc
	sinkTicks int
	sinking   bool
}

func NewPipePlant(l *engine.Level, x, y float64) *PipePlant {
	cfg := l.Config()
	p := &PipePlant{
		Plant:     newPlant(l, KindPipePlant, x+16, y-6),
		bottom:    y - 48,
		top:       y - 6,
		minimum:   cfg.PipePlantCount,
		arc:       newArc(cfg, 100, 100),
		sinkTicks: 6,
	}
	l.Spawn(p)
	p.init()
	p.Direction = engine.DirDown
	p.SetImage(SheetEnemies, 0, 56)
	return p
}

func (p *PipePlant) SetPosition(x, y float64) {
	if y == p.bottom || y == p.top {
		p.minimum = p.Config().PipePlantCount
		if p.Direction == engine.DirUp {
			p.Direction = engine.DirDown
		} else {
			p.Direction = engine.DirUp
		}
	}
	p.Body.SetPosition(x, y)
}

// blocked reports whether a figure covers the pipe mouth while the plant is
// fully retracted.
func (p *PipePlant) blocked() bool {
	if p.Y != p.bottom {
		return false
	}
	probe := p.Body
	probe.Y += 48
	for _, f := range p.Level().Figures() {
		if f == p.Self() {
			continue
		}
		if probe.Overlaps(f.Base()) {
			return true
		}
	}
	return false
}

func (p *PipePlant) Move() {
	if p.minimum > 0 {
		p.minimum--
		return
	}
	if p.blocked() {
		return
	}
	v := p.Config().PipePlantV
	y := p.Y
	if p.Direction == engine.DirDown {
		y = max(y-v, p.bottom)
	} else {
		y = min(y+v, p.top)
	}
	p.Self().SetPosition(p.X, y)
}

func (p *PipePlant) Die() {
	p.Plant.Die()
	p.SetImage(SheetEnemies, 68, 56)
}

// Death bounces the plant once and then drops it into the pipe.
func (p *PipePlant) Death() bool {
	if p.sinking {
		p.Self().SetPosition(p.X, p.Y-8)
		p.sinkTicks--
		return p.sinkTicks > 0
	}
	if !p.arc.step(&p.DeathOffset) {
		p.sinking = true
	}
	return true
}
