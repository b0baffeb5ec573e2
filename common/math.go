package common

import "math"

// TileSize is the edge length of one grid cell in world units.
const TileSize = 32

// HalfTile is the horizontal reach used when quantising a figure's centre.
const HalfTile = TileSize / 2

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Sign returns -1, 0 or 1.
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// Column returns the grid column whose span contains the horizontal centre of
// a figure standing at x.
func Column(x float64) int {
	return int(math.Floor((x + HalfTile) / TileSize))
}

// Row converts a bottom-up world y into a top-down grid row for a grid that is
// height cells tall.
func Row(height int, y float64) int {
	return int(math.Ceil(float64(height) - 1 - y/TileSize))
}
