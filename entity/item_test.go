package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/tilerunner/engine"
)

func settle(it engine.Item) {
	for i := 0; i < 20 && it.Item().Bouncing(); i++ {
		it.PlayFrame()
	}
}

func TestCoin(t *testing.T) {
	l, rec := defaultWorld(t)
	h := NewHero(l, 32, 32)
	c := NewCoin(l, 96, 64)

	c.Activate(h)
	c.Activate(h)
	assert.Equal(t, 1, h.Coins)
	assert.True(t, c.Hidden)
	assert.True(t, c.Activated)
	assert.Equal(t, []string{engine.SoundCoin}, rec.sounds)
	assert.Equal(t, engine.BlockNone, c.Blocking)
}

func TestCoinBox(t *testing.T) {
	l, rec := defaultWorld(t)
	h := NewHero(l, 32, 32)
	b := NewCoinBox(l, 96, 64, 3)
	assert.Equal(t, KindMultipleCoinBox, b.Kind)

	b.Activate(h)
	assert.Equal(t, 2, b.Coins())
	assert.Equal(t, 1, h.Coins)
	assert.True(t, b.Bouncing())

	b.Activate(h)
	assert.Equal(t, 2, b.Coins(), "a bouncing box ignores hits")

	settle(b)
	b.Activate(h)
	settle(b)
	b.Activate(h)
	assert.Equal(t, 0, b.Coins())
	assert.Equal(t, 3, h.Coins)
	assert.Equal(t, engine.Look{Sheet: SheetObjects, X: 514, Y: 194}, b.Look)

	settle(b)
	b.Activate(h)
	assert.Equal(t, 3, h.Coins, "an empty box gives nothing")
	assert.Len(t, rec.sounds, 3)

	t.Run("popups_rise_and_expire", func(t *testing.T) {
		b := NewCoinBox(l, 128, 64, 1)
		assert.Equal(t, KindCoinBox, b.Kind)
		b.Activate(h)
		assert.Equal(t, 1, b.Popups())

		views := b.Views(nil)
		require.Len(t, views, 2)
		assert.Equal(t, KindBoxCoin, views[1].Kind)
		assert.Equal(t, 8.0, views[1].OffsetY)

		b.PlayFrame()
		assert.Equal(t, 13.0, b.Views(nil)[1].OffsetY)
		for i := 0; i < 6; i++ {
			b.PlayFrame()
		}
		assert.Equal(t, 0, b.Popups())
	})
}

func TestCoinBoxFromBelow(t *testing.T) {
	d := stoneLevel(1, 8, 6)
	l, _ := newWorld(t, d, engine.DefaultConfig(), engine.WithInput(engine.InputFunc(func() engine.Input {
		return engine.Input{Jump: true}
	})))
	b := NewCoinBox(l, 32, 96, 2)
	h := NewHero(l, 32, 32)

	for i := 0; i < 10 && b.Coins() == 2; i++ {
		l.Tick()
	}
	assert.Equal(t, 1, b.Coins())
	assert.Equal(t, 1, h.Coins)
	assert.LessOrEqual(t, h.Y, 64.0)
}

func TestStarBox(t *testing.T) {
	l, rec := defaultWorld(t)
	h := NewHero(l, 32, 32)
	b := NewStarBox(l, 96, 64)
	s, ok := l.Figure(b.star).(*Star)
	require.True(t, ok)
	assert.True(t, s.Hidden)
	assert.Equal(t, 96.0, s.Y)

	b.Activate(h)
	b.Activate(h)
	assert.True(t, s.Active())
	assert.False(t, s.Hidden)
	assert.Equal(t, 2.0, s.VX)
	assert.Positive(t, s.VY)
	assert.Equal(t, []string{engine.SoundMushroom}, rec.sounds)

	s.Hit(h)
	assert.False(t, s.Dead, "a freshly released star cannot be taken")

	for i := 0; i < 4; i++ {
		s.Move()
	}
	s.Hit(h)
	assert.True(t, s.Dead)
	assert.Equal(t, 550, h.Deadly())
	assert.Equal(t, 550, h.Invulnerable())
	assert.Contains(t, rec.music, engine.MusicInvincibility)
}

func TestMushroomBox(t *testing.T) {
	tests := []struct {
		name string
		size engine.SizeState
		want Upgrade
	}{
		{name: "small_hero_gets_mushroom", size: engine.SizeSmall, want: UpgradeMushroom},
		{name: "big_hero_gets_plant", size: engine.SizeBig, want: UpgradePlant},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, _ := defaultWorld(t)
			h := NewHero(l, 32, 32)
			h.Size = tt.size
			b := NewMushroomBox(l, 96, 64)
			m, ok := l.Figure(b.mushroom).(*Mushroom)
			require.True(t, ok)

			b.Activate(h)
			assert.Equal(t, tt.want, m.Mode())
			assert.False(t, m.Hidden)

			m.Hit(h)
			assert.False(t, m.Dead, "the mushroom is inert while it rises")

			for i := 0; i < 4; i++ {
				m.Move()
			}
			assert.True(t, m.Active())
			assert.Equal(t, 96.0, m.Y)

			m.Hit(h)
			assert.True(t, m.Dead)
			assert.Equal(t, engine.SizeBig, h.Size)
			if tt.want == UpgradePlant {
				assert.Equal(t, engine.PowerFire, h.Power)
			}
		})
	}
}
