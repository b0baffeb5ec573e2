package entity

import "github.com/milk9111/tilerunner/engine"

// Level-data identifiers.
const (
	KindPipePlant       = "pipeplant"
	KindStaticPlant     = "staticplant"
	KindGreenTurtle     = "greenturtle"
	KindSpikedTurtle    = "spikedturtle"
	KindShell           = "shell"
	KindBallmonster     = "ballmonster"
	KindHero            = "mario"
	KindCoin            = "coin"
	KindCoinBox         = "coinbox"
	KindMultipleCoinBox = "multiple_coinbox"
	KindStarBox         = "starbox"
	KindMushroomBox     = "mushroombox"

	// Figures created by other occupants; never found in level data.
	KindBullet   = "bullet"
	KindStar     = "star"
	KindMushroom = "mushroom"
	KindBoxCoin  = "coinbox_coin"
)

// Registry returns the constructor for every identifier that may appear in
// level data.
func Registry() engine.Registry {
	return engine.Registry{
		KindPipePlant:    func(l *engine.Level, x, y float64) { NewPipePlant(l, x, y) },
		KindStaticPlant:  func(l *engine.Level, x, y float64) { NewStaticPlant(l, x, y) },
		KindGreenTurtle:  func(l *engine.Level, x, y float64) { NewGreenTurtle(l, x, y) },
		KindSpikedTurtle: func(l *engine.Level, x, y float64) { NewSpikedTurtle(l, x, y) },
		KindShell:        func(l *engine.Level, x, y float64) { NewShell(l, x, y) },
		KindBallmonster:  func(l *engine.Level, x, y float64) { NewBallmonster(l, x, y) },
		KindHero:         func(l *engine.Level, x, y float64) { NewHero(l, x, y) },

		"pipe_right_grass":             decoration("pipe_right_grass", 36, 424),
		"pipe_left_grass":              decoration("pipe_left_grass", 2, 424),
		"pipe_right_soil":              decoration("pipe_right_soil", 36, 458),
		"pipe_left_soil":               decoration("pipe_left_soil", 2, 458),
		"planted_soil_left":            decoration("planted_soil_left", 714, 832),
		"planted_soil_middle":          decoration("planted_soil_middle", 748, 832),
		"planted_soil_right":           decoration("planted_soil_right", 782, 832),
		"grass_top_right_rounded_soil": decoration("grass_top_right_rounded_soil", 990, 506),
		"grass_top_left_rounded_soil":  decoration("grass_top_left_rounded_soil", 956, 506),
		"bush_right":                   decoration("bush_right", 382, 928),
		"bush_middle_right":            decoration("bush_middle_right", 314, 928),
		"bush_middle":                  decoration("bush_middle", 348, 928),
		"bush_middle_left":             decoration("bush_middle_left", 212, 928),
		"bush_left":                    decoration("bush_left", 178, 928),
		"soil":                         decoration("soil", 888, 438),
		"soil_right":                   decoration("soil_right", 922, 540),
		"soil_left":                    decoration("soil_left", 854, 540),
		"grass_top_right_corner":       decoration("grass_top_right_corner", 612, 868),
		"grass_top_left_corner":        decoration("grass_top_left_corner", 648, 868),

		"grass_top":               tile("grass_top", engine.BlockTop, 888, 404),
		"grass_top_right":         tile("grass_top_right", engine.BlockTop|engine.BlockRight, 922, 404),
		"grass_top_left":          tile("grass_top_left", engine.BlockLeft|engine.BlockTop, 854, 404),
		"grass_right":             tile("grass_right", engine.BlockRight, 922, 438),
		"grass_left":              tile("grass_left", engine.BlockLeft, 854, 438),
		"grass_top_right_rounded": tile("grass_top_right_rounded", engine.BlockTop, 922, 506),
		"grass_top_left_rounded":  tile("grass_top_left_rounded", engine.BlockTop, 854, 506),
		"stone":                   tile("stone", engine.BlockAll, 550, 160),
		"brown_block":             tile("brown_block", engine.BlockAll, 514, 194),
		"pipe_top_right":          tile("pipe_top_right", engine.BlockAll, 36, 358),
		"pipe_top_left":           tile("pipe_top_left", engine.BlockAll, 2, 358),
		"pipe_right":              tile("pipe_right", engine.BlockRight|engine.BlockBottom, 36, 390),
		"pipe_left":               tile("pipe_left", engine.BlockLeft|engine.BlockBottom, 2, 390),

		KindCoin:            func(l *engine.Level, x, y float64) { NewCoin(l, x, y) },
		KindCoinBox:         func(l *engine.Level, x, y float64) { NewCoinBox(l, x, y, 1) },
		KindMultipleCoinBox: func(l *engine.Level, x, y float64) { NewCoinBox(l, x, y, 8) },
		KindStarBox:         func(l *engine.Level, x, y float64) { NewStarBox(l, x, y) },
		KindMushroomBox:     func(l *engine.Level, x, y float64) { NewMushroomBox(l, x, y) },
	}
}
