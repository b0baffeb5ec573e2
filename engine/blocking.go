package engine

import "strings"

// Blocking is the set of approach directions an occupant obstructs.
type Blocking uint8

const (
	BlockNone   Blocking = 0
	BlockLeft   Blocking = 1
	BlockTop    Blocking = 2
	BlockRight  Blocking = 4
	BlockBottom Blocking = 8
	BlockAll             = BlockLeft | BlockTop | BlockRight | BlockBottom
)

// Blocks reports whether every direction in required is obstructed.
func (b Blocking) Blocks(required Blocking) bool {
	return b&required == required
}

func (b Blocking) String() string {
	switch b {
	case BlockNone:
		return "none"
	case BlockAll:
		return "all"
	}
	var parts []string
	for _, d := range []struct {
		bit  Blocking
		name string
	}{
		{BlockLeft, "left"},
		{BlockTop, "top"},
		{BlockRight, "right"},
		{BlockBottom, "bottom"},
	} {
		if b&d.bit != 0 {
			parts = append(parts, d.name)
		}
	}
	return strings.Join(parts, "|")
}

// Direction is a facing or travel direction.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirUp
	DirRight
	DirDown
)

// SizeState doubles as the footprint height in tiles.
type SizeState int

const (
	SizeSmall SizeState = 1
	SizeBig   SizeState = 2
)

// PowerMode is the hero's attack capability.
type PowerMode int

const (
	PowerNormal PowerMode = iota
	PowerFire
)
