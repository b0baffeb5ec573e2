package entity

import "github.com/milk9111/tilerunner/engine"

// Upgrade is what a mushroom box releases.
type Upgrade int

const (
	UpgradeMushroom Upgrade = iota
	UpgradePlant
)

// StarBox releases a star on its first hit.
type StarBox struct {
	engine.ItemBase
	star engine.Handle
}

func NewStarBox(l *engine.Level, x, y float64) *StarBox {
	b := &StarBox{ItemBase: engine.NewItemBase(l, KindStarBox, x, y, true)}
	b.SetImage(SheetObjects, 96, 33)
	b.SetupFrames(8, 4, false)
	l.Place(b)
	b.star = NewStar(l, x, y).Handle()
	return b
}

func (b *StarBox) Activate(from engine.Figure) {
	if !b.Activated {
		if s, ok := b.Level().Figure(b.star).(*Star); ok {
			s.Release()
		}
		b.Frames.Clear()
		b.Bounce()
		b.SetImage(SheetObjects, 514, 194)
	}
	b.ItemBase.Activate(from)
}

// Star flies in an arc through everything and makes the hero invincible.
type Star struct {
	engine.Body
	active bool
	taken  int
}

// NewStar places a dormant star on top of the box at (x, y).
func NewStar(l *engine.Level, x, y float64) *Star {
	s := &Star{Body: engine.NewBody(l, KindStar, x, y+32)}
	l.Spawn(s)
	s.SetSize(32, 32)
	s.SetImage(SheetObjects, 32, 69)
	s.Hidden = true
	return s
}

func (s *Star) Active() bool {
	return s.active
}

func (s *Star) Release() {
	cfg := s.Config()
	s.taken = 4
	s.active = true
	s.Level().PlaySound(engine.SoundMushroom)
	s.Hidden = false
	s.Self().SetVelocity(cfg.StarVX, cfg.StarVY)
	s.SetupFrames(10, 2, false, "")
}

func (s *Star) Launch(vy float64) {
	s.Self().SetVelocity(s.VX, vy)
}

func (s *Star) Collides(is, ie, js, je int, mask engine.Blocking) bool {
	return false
}

func (s *Star) Move() {
	if s.active {
		cfg := s.Config()
		if s.VY <= -cfg.StarVY {
			s.VY += cfg.Gravity
		} else {
			s.VY += cfg.Gravity / 2
		}
		s.Body.Move()
	}
	if s.taken > 0 {
		s.taken--
	}
}

func (s *Star) Hit(opponent engine.Figure) {
	h, ok := opponent.(*Hero)
	if !ok || s.taken > 0 || !s.active {
		return
	}
	h.Invincible()
	s.Self().Die()
}

// MushroomBox releases a mushroom to a small hero and a fire plant otherwise.
type MushroomBox struct {
	engine.ItemBase
	mushroom engine.Handle
	maxMode  Upgrade
}

func NewMushroomBox(l *engine.Level, x, y float64) *MushroomBox {
	b := &MushroomBox{
		ItemBase: engine.NewItemBase(l, KindMushroomBox, x, y, true),
		maxMode:  UpgradePlant,
	}
	b.SetImage(SheetObjects, 96, 33)
	b.SetupFrames(8, 4, false)
	l.Place(b)
	b.mushroom = NewMushroom(l, x, y).Handle()
	return b
}

func (b *MushroomBox) Activate(from engine.Figure) {
	if !b.Activated {
		if m, ok := b.Level().Figure(b.mushroom).(*Mushroom); ok {
			if from.Base().Size == engine.SizeSmall || b.maxMode == UpgradeMushroom {
				m.Release(UpgradeMushroom)
			} else {
				m.Release(UpgradePlant)
			}
		}
		b.Frames.Clear()
		b.Bounce()
		b.SetImage(SheetObjects, 514, 194)
	}
	b.ItemBase.Activate(from)
}

// Mushroom hides inside its box until released, rises out of it and then
// walks until the hero picks it up.
type Mushroom struct {
	engine.Body
	mode     Upgrade
	active   bool
	released int
}

func NewMushroom(l *engine.Level, x, y float64) *Mushroom {
	m := &Mushroom{Body: engine.NewBody(l, KindMushroom, x, y)}
	l.Spawn(m)
	m.SetSize(32, 32)
	m.SetImage(SheetObjects, 582, 60)
	m.Hidden = true
	return m
}

func (m *Mushroom) Mode() Upgrade {
	return m.mode
}

func (m *Mushroom) Active() bool {
	return m.active
}

func (m *Mushroom) Release(mode Upgrade) {
	m.released = 4
	m.Level().PlaySound(engine.SoundMushroom)
	if mode == UpgradePlant {
		m.SetImage(SheetObjects, 548, 60)
	}
	m.mode = mode
	m.Hidden = false
}

func (m *Mushroom) Launch(vy float64) {
	m.Self().SetVelocity(m.VX, vy)
}

func (m *Mushroom) Move() {
	cfg := m.Config()
	switch {
	case m.active:
		m.Body.Move()
		if m.mode == UpgradeMushroom && m.VX == 0 {
			v := cfg.MushroomV
			if m.Direction == engine.DirRight {
				v = -v
			}
			m.Self().SetVelocity(v, m.VY)
		}
	case m.released > 0:
		m.released--
		m.Self().SetPosition(m.X, m.Y+8)
		if m.released == 0 {
			m.active = true
			if m.mode == UpgradeMushroom {
				m.Self().SetVelocity(cfg.MushroomV, cfg.Gravity)
			}
		}
	}
}

func (m *Mushroom) Hit(opponent engine.Figure) {
	h, ok := opponent.(*Hero)
	if !ok || !m.active {
		return
	}
	h.Upgrade(m.mode)
	m.Self().Die()
}
