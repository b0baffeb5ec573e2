package engine

import (
	"math"

	"github.com/milk9111/tilerunner/common"
)

// Resolve advances the body by one tick against the grid: gravity, then a
// column-by-column horizontal sweep, then a row-by-row vertical sweep. The
// first blocked step on an axis clamps the position to the tile face and
// zeroes that velocity component. Collisions, velocity and position go
// through the outer figure so kinds can override them.
func (b *Body) Resolve() {
	f := b.figure()
	cfg := b.Config()
	h := b.level.Grid().Height()
	s := int(b.Size)

	vx := b.VX
	vy := b.VY - cfg.Gravity
	x := b.X
	y := b.Y

	dx := int(common.Sign(vx))
	dy := int(common.Sign(vy))

	is := b.I
	ie := is
	js := int(math.Ceil(float64(h-s) - (y+31)/common.TileSize))
	je := b.J

	d := 0
	mask := BlockNone
	t := int(math.Floor((x + common.HalfTile + vx) / common.TileSize))

	switch {
	case dx > 0:
		d = t - ie
		t = ie
		mask = BlockLeft
	case dx < 0:
		d = is - t
		t = is
		mask = BlockRight
	}

	x += vx
	for n := 0; n < d; n++ {
		if f.Collides(t+dx, t+dx, js, je, mask) {
			vx = 0
			x = float64(t*common.TileSize + (common.HalfTile-1)*dx)
			break
		}
		t += dx
		is += dx
		ie += dx
	}

	switch {
	case dy > 0:
		t = int(math.Ceil(float64(h-s) - (y+31+vy)/common.TileSize))
		d = js - t
		t = js
		mask = BlockBottom
	case dy < 0:
		t = int(math.Ceil(float64(h-1) - (y+vy)/common.TileSize))
		d = t - je
		t = je
		mask = BlockTop
	default:
		d = 0
	}

	onground := false
	y += vy
	for n := 0; n < d; n++ {
		if f.Collides(is, ie, t-dy, t-dy, mask) {
			onground = dy < 0
			vy = 0
			y = float64(h*common.TileSize - (t+1)*common.TileSize)
			if dy > 0 {
				y -= float64((s - 1) * common.TileSize)
			}
			break
		}
		t -= dy
	}

	b.OnGround = onground
	f.SetVelocity(vx, vy)
	f.SetPosition(x, y)
}
