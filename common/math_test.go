package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowAndColumn(t *testing.T) {
	cases := []struct {
		name   string
		height int
		x, y   float64
		i, j   int
	}{
		{"origin", 15, 0, 0, 0, 14},
		{"one_tile_up", 15, 32, 32, 1, 13},
		{"half_tile_right", 15, 16, 0, 1, 14},
		{"just_below_tile_top", 15, 0, 30, 0, 14},
		{"below_floor", 15, 0, -2, 0, 15},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.i, Column(c.x))
			assert.Equal(t, c.j, Row(c.height, c.y))
		})
	}
}

func TestSign(t *testing.T) {
	assert.Equal(t, 1.0, Sign(3.5))
	assert.Equal(t, -1.0, Sign(-0.1))
	assert.Equal(t, 0.0, Sign(0))
}
