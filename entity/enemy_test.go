package entity

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/tilerunner/engine"
)

func TestStomp(t *testing.T) {
	t.Run("falling_hero_stomps", func(t *testing.T) {
		l, rec := defaultWorld(t)
		g := NewBallmonster(l, 96, 32)
		h := NewHero(l, 96, 60)
		h.VY = -6

		g.Hit(h)
		assert.True(t, g.Dead)
		assert.Equal(t, DeathNormal, g.DeathMode)
		assert.Equal(t, 15.0, h.VY)
		assert.False(t, h.Dead)
		assert.Contains(t, rec.sounds, engine.SoundEnemyDie)

		ticks := 1
		for g.Death() {
			ticks++
		}
		assert.Equal(t, 30, ticks)
	})

	t.Run("side_contact_hurts_hero", func(t *testing.T) {
		l, _ := defaultWorld(t)
		g := NewBallmonster(l, 96, 32)
		h := NewHero(l, 90, 32)

		g.Hit(h)
		assert.False(t, g.Dead)
		assert.True(t, h.Dead)
	})

	t.Run("spiked_turtle_cannot_be_stomped", func(t *testing.T) {
		l, _ := defaultWorld(t)
		s := NewSpikedTurtle(l, 96, 32)
		h := NewHero(l, 96, 60)
		h.VY = -6

		s.Hit(h)
		assert.False(t, s.Dead)
		assert.True(t, h.Dead)
	})

	t.Run("plants_only_hurt", func(t *testing.T) {
		l, _ := defaultWorld(t)
		p := NewStaticPlant(l, 96, 32)
		h := NewHero(l, 96, 60)
		h.Size = engine.SizeBig
		h.VY = -6

		p.Hit(h)
		assert.False(t, p.Dead)
		assert.Equal(t, engine.SizeSmall, h.Size)
	})
}

func TestEnemyTurnsAtLedges(t *testing.T) {
	d := &engine.Descriptor{ID: 1, Width: 8, Height: 3, Data: make([][]string, 8)}
	for i := range d.Data {
		d.Data[i] = make([]string, 3)
	}
	for i := 2; i <= 4; i++ {
		d.Data[i][2] = "stone"
	}
	l, _ := newWorld(t, d, engine.DefaultConfig())
	g := NewBallmonster(l, 96, 32)

	lo, hi := g.X, g.X
	for i := 0; i < 200; i++ {
		l.Tick()
		require.False(t, g.Dead)
		require.Equal(t, 32.0, g.Y)
		lo = min(lo, g.X)
		hi = max(hi, g.X)
	}
	assert.Equal(t, 48.0, lo)
	assert.Equal(t, 143.0, hi)
}

func TestShell(t *testing.T) {
	l, rec := defaultWorld(t)
	s := NewShell(l, 96, 32)
	h := NewHero(l, 90, 32)
	g := NewBallmonster(l, 200, 32)

	s.Hit(h)
	assert.Equal(t, 10.0, s.VX, "kicked away from the hero")
	assert.Equal(t, 15.0, h.VY)

	s.Hit(g)
	s.Hit(g)
	assert.False(t, g.Dead, "a fresh kick ignores contact for two hits")

	s.Hit(g)
	assert.True(t, g.Dead)
	assert.Equal(t, DeathShell, g.DeathMode)
	assert.Contains(t, rec.sounds, engine.SoundShell)

	offsets := 0
	for g.Death() {
		offsets++
		require.Less(t, offsets, 100)
	}
	assert.Equal(t, 0.0, g.DeathOffset)
}

func TestGreenTurtle(t *testing.T) {
	l, _ := defaultWorld(t)
	gt := NewGreenTurtle(l, 96, 32)
	h := NewHero(l, 32, 32)

	s := gt.Shell()
	require.NotNil(t, s)
	assert.True(t, s.Invisible)
	assert.Equal(t, engine.SizeBig, gt.Size)
	assert.Equal(t, -2.0, gt.VX)

	s.Hit(h)
	assert.Equal(t, 0.0, s.VX, "a carried shell ignores contact")

	gt.Hurt(h)
	assert.False(t, gt.Dead)
	assert.Equal(t, engine.SizeSmall, gt.Size)
	assert.Equal(t, -3.0, gt.VX)
	assert.Nil(t, gt.Shell())
	assert.False(t, s.Invisible)
	assert.Equal(t, gt.X, s.X)

	t.Run("takes_back_an_idle_shell", func(t *testing.T) {
		s.Hit(gt)
		assert.Nil(t, gt.Shell(), "not while recovering")

		gt.wait = 0
		s.Hit(gt)
		assert.Same(t, s, gt.Shell())
		assert.Equal(t, engine.SizeBig, gt.Size)
		assert.True(t, s.Invisible)
	})

	t.Run("small_turtle_dies", func(t *testing.T) {
		gt.Hurt(h)
		gt.Hurt(h)
		assert.True(t, gt.Dead)
		assert.Equal(t, DeathNormal, gt.DeathMode)
	})
}

func TestPipePlant(t *testing.T) {
	l, _ := newWorld(t, stoneLevel(1, 8, 6), engine.DefaultConfig())
	p := NewPipePlant(l, 64, 96)
	require.Equal(t, 80.0, p.X)
	require.Equal(t, 90.0, p.Y)

	for i := 0; i < 150; i++ {
		p.Move()
	}
	assert.Equal(t, 90.0, p.Y, "waits at the top")

	for i := 0; i < 42; i++ {
		p.Move()
	}
	assert.Equal(t, 48.0, p.Y)
	assert.Equal(t, engine.DirUp, p.Direction)

	t.Run("stays_down_while_the_mouth_is_covered", func(t *testing.T) {
		h := NewHero(l, 80, 96)
		for i := 0; i < 160; i++ {
			p.Move()
		}
		assert.Equal(t, 48.0, p.Y)

		h.SetPosition(120, 96)
		p.Move()
		assert.Equal(t, 49.0, p.Y)
	})

	t.Run("dies_and_sinks", func(t *testing.T) {
		p.Die()
		ticks := 0
		for p.Death() {
			ticks++
			require.Less(t, ticks, 100)
		}
		assert.Equal(t, 29, ticks)
	})
}

func TestBullet(t *testing.T) {
	l, _ := defaultWorld(t)
	h := NewHero(l, 32, 32)
	b := NewBullet(h)
	g := NewBallmonster(l, 160, 32)

	assert.Equal(t, h.Handle(), b.Parent())
	assert.Equal(t, 100, b.Life())
	assert.Equal(t, 63.0, b.X)
	assert.Equal(t, 12.0, b.VX)

	b.Hit(h)
	assert.False(t, b.Dead)
	assert.False(t, h.Dead)

	b.Hit(g)
	assert.True(t, g.Dead)
	assert.True(t, b.Dead)

	t.Run("expires", func(t *testing.T) {
		b := NewBullet(h)
		for i := 0; i < 100; i++ {
			b.Move()
		}
		assert.True(t, b.Dead)
	})
}

func TestRegistry(t *testing.T) {
	reg := Registry()
	names := make([]string, 0, len(reg))
	for name := range reg {
		names = append(names, name)
	}
	sort.Strings(names)
	assert.Len(t, names, 44)

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			d := stoneLevel(1, 4, 4)
			d.Data[1][1] = name
			l, _ := newWorld(t, d, engine.DefaultConfig())
			total := len(l.Matter()) + len(l.Items()) + len(l.Figures())
			assert.Greater(t, total, 4)
		})
	}
}
