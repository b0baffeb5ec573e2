package entity

import "github.com/milk9111/tilerunner/engine"

// Sprite sheets referenced by looks.
const (
	SheetObjects = "objects"
	SheetSprites = "sprites"
	SheetEnemies = "enemies"
)

// Tile is a static terrain or decoration cell. Decorations never block but
// still occupy their cell.
type Tile struct {
	engine.Static
}

func NewTile(l *engine.Level, kind string, x, y float64, blocking engine.Blocking, lookX, lookY int) *Tile {
	t := &Tile{Static: engine.NewStatic(l, kind, x, y, blocking)}
	t.SetImage(SheetObjects, lookX, lookY)
	l.Place(t)
	return t
}

func tile(kind string, blocking engine.Blocking, lookX, lookY int) engine.Constructor {
	return func(l *engine.Level, x, y float64) {
		NewTile(l, kind, x, y, blocking, lookX, lookY)
	}
}

func decoration(kind string, lookX, lookY int) engine.Constructor {
	return tile(kind, engine.BlockNone, lookX, lookY)
}
