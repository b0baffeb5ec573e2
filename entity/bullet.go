package entity

import (
	"math"

	"github.com/milk9111/tilerunner/engine"
)

// Bullet is the hero's fireball. It bounces along the ground, turns at walls
// and kills the first figure it touches other than its shooter.
type Bullet struct {
	engine.Body
	parent engine.Handle
	life   int
	speed  float64
}

func NewBullet(parent engine.Figure) *Bullet {
	pb := parent.Base()
	l := pb.Level()
	cfg := l.Config()
	b := &Bullet{
		Body:   engine.NewBody(l, KindBullet, pb.X+31, pb.Y+14),
		parent: pb.Handle(),
		life:   cfg.TicksCeil(2000),
		speed:  cfg.BulletV,
	}
	l.Spawn(b)
	b.SetImage(SheetSprites, 191, 366)
	b.SetSize(16, 16)
	b.Direction = pb.Direction
	b.VY = 0
	if b.Direction == engine.DirRight {
		b.VX = b.speed
	} else {
		b.VX = -b.speed
	}
	return b
}

func (b *Bullet) Parent() engine.Handle {
	return b.parent
}

func (b *Bullet) Life() int {
	return b.life
}

func (b *Bullet) SetVelocity(vx, vy float64) {
	b.Body.SetVelocity(vx, vy)
	if b.VX == 0 {
		s := math.Abs(b.speed)
		if b.Direction == engine.DirRight {
			b.VX = -s
		} else {
			b.VX = s
		}
	}
	if b.OnGround {
		b.VY = b.Config().Bounce
	}
}

func (b *Bullet) Move() {
	b.life--
	if b.life > 0 {
		b.Body.Move()
		return
	}
	b.Self().Die()
}

func (b *Bullet) Hit(opponent engine.Figure) {
	if opponent.Base().Handle() == b.parent {
		return
	}
	opponent.Die()
	b.Self().Die()
}
