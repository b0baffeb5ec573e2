package entity

import "github.com/milk9111/tilerunner/engine"

// coinCollector is implemented by figures that keep a coin count.
type coinCollector interface {
	AddCoin()
}

// Coin is a free-standing, non-blocking coin collected on first touch.
type Coin struct {
	engine.ItemBase
}

func NewCoin(l *engine.Level, x, y float64) *Coin {
	c := &Coin{ItemBase: engine.NewItemBase(l, KindCoin, x, y, false)}
	c.SetImage(SheetObjects, 0, 0)
	c.SetupFrames(10, 4, true)
	l.Place(c)
	return c
}

func (c *Coin) Activate(from engine.Figure) {
	if !c.Activated {
		c.Level().PlaySound(engine.SoundCoin)
		if cc, ok := from.(coinCollector); ok {
			cc.AddCoin()
		}
		c.Hidden = true
	}
	c.ItemBase.Activate(from)
}

// popupCoin is the coin shown rising out of a coin box.
type popupCoin struct {
	offset float64
	count  int
}

// CoinBox is a blocking box holding a queue of coins, one released per hit
// from below.
type CoinBox struct {
	engine.ItemBase

	coins  int
	popups []popupCoin
	frames int
	step   float64
}

func NewCoinBox(l *engine.Level, x, y float64, amount int) *CoinBox {
	kind := KindCoinBox
	if amount > 1 {
		kind = KindMultipleCoinBox
	}
	b := &CoinBox{
		ItemBase: engine.NewItemBase(l, kind, x, y, true),
		coins:    amount,
		frames:   l.Config().Ticks(150),
	}
	if b.frames > 0 {
		b.step = float64((30 + b.frames - 1) / b.frames)
	}
	b.SetImage(SheetObjects, 346, 328)
	l.Place(b)
	return b
}

// Coins is the number of coins still held.
func (b *CoinBox) Coins() int {
	return b.coins
}

// Popups is the number of released coins still animating.
func (b *CoinBox) Popups() int {
	return len(b.popups)
}

func (b *CoinBox) Activate(from engine.Figure) {
	if !b.Bouncing() && b.coins > 0 {
		b.Bounce()
		b.coins--
		b.Level().PlaySound(engine.SoundCoin)
		if cc, ok := from.(coinCollector); ok {
			cc.AddCoin()
		}
		b.popups = append(b.popups, popupCoin{offset: 8})
		if b.coins == 0 {
			b.SetImage(SheetObjects, 514, 194)
		}
	}
	b.ItemBase.Activate(from)
}

func (b *CoinBox) PlayFrame() {
	for i := len(b.popups) - 1; i >= 0; i-- {
		p := &b.popups[i]
		p.offset += b.step
		p.count++
		if p.count >= b.frames {
			b.popups = append(b.popups[:i], b.popups[i+1:]...)
		}
	}
	b.ItemBase.PlayFrame()
}

func (b *CoinBox) Views(dst []engine.View) []engine.View {
	dst = append(dst, b.View())
	for _, p := range b.popups {
		dst = append(dst, engine.View{
			Kind:    KindBoxCoin,
			X:       b.X,
			Y:       b.Y,
			W:       b.W,
			H:       b.H,
			OffsetY: p.offset,
			Look:    engine.Look{Sheet: SheetObjects, X: 96, Y: 0},
		})
	}
	return dst
}
