package entity

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/milk9111/tilerunner/engine"
)

var (
	_ engine.Carrier = (*Hero)(nil)
	_ engine.Figure  = (*Ballmonster)(nil)
	_ engine.Figure  = (*Bullet)(nil)
	_ engine.Figure  = (*GreenTurtle)(nil)
	_ engine.Figure  = (*SpikedTurtle)(nil)
	_ engine.Figure  = (*Shell)(nil)
	_ engine.Figure  = (*StaticPlant)(nil)
	_ engine.Figure  = (*PipePlant)(nil)
	_ engine.Figure  = (*Star)(nil)
	_ engine.Figure  = (*Mushroom)(nil)
	_ engine.Item    = (*Coin)(nil)
	_ engine.Item    = (*CoinBox)(nil)
	_ engine.Item    = (*StarBox)(nil)
	_ engine.Item    = (*MushroomBox)(nil)
)

type recorder struct {
	sounds []string
	music  []string
}

func (r *recorder) Play(label string)  { r.sounds = append(r.sounds, label) }
func (r *recorder) Music(label string) { r.music = append(r.music, label) }

type campaign []*engine.Descriptor

func (c campaign) First() *engine.Descriptor { return c[0] }

func (c campaign) Next(id int) *engine.Descriptor {
	for i, d := range c {
		if d.ID == id {
			return c[(i+1)%len(c)]
		}
	}
	return c[0]
}

// stoneLevel is a w by h level with a stone floor along the bottom row.
func stoneLevel(id, w, h int) *engine.Descriptor {
	d := &engine.Descriptor{ID: id, Width: w, Height: h, Data: make([][]string, w)}
	for i := range d.Data {
		d.Data[i] = make([]string, h)
		d.Data[i][h-1] = "stone"
	}
	return d
}

func newWorld(t *testing.T, d *engine.Descriptor, cfg engine.Config, opts ...engine.Option) (*engine.Level, *recorder) {
	t.Helper()
	rec := &recorder{}
	opts = append([]engine.Option{engine.WithSounds(rec)}, opts...)
	l := engine.NewLevel(cfg, Registry(), opts...)
	require.NoError(t, l.Load(d))
	l.Events().Drain()
	return l, rec
}

func defaultWorld(t *testing.T) (*engine.Level, *recorder) {
	return newWorld(t, stoneLevel(1, 8, 4), engine.DefaultConfig())
}
