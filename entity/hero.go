package entity

import (
	"math"

	"github.com/milk9111/tilerunner/common"
	"github.com/milk9111/tilerunner/engine"
)

const (
	viewportWidth = 640
	scrollLeft    = 210
	scrollRight   = 230
	victoryMargin = 128
)

var (
	// [size-1][facing right][airborne]
	standLooks = [2][2][2][2]int{
		{{{0, 81}, {481, 83}}, {{81, 0}, {561, 83}}},
		{{{0, 162}, {481, 247}}, {{81, 243}, {561, 247}}},
	}
	// [size-1][facing right]
	crouchLooks = [2][2][2]int{
		{{241, 0}, {161, 0}},
		{{241, 162}, {241, 243}},
	}
)

// Hero is the player-controlled figure. It survives reloads through Store
// and Restore.
type Hero struct {
	engine.Body

	Power engine.PowerMode
	Lives int
	Coins int

	deadly       int
	invulnerable int
	cooldown     int
	blinking     int
	fast         bool
	crouching    bool

	deathBeginWait int
	deathEndWait   int
	deathDir       int
	deathCount     int
	deathFrames    int
	deathStepUp    float64
	deathStepDown  float64
}

func NewHero(l *engine.Level, x, y float64) *Hero {
	cfg := l.Config()
	h := &Hero{Body: engine.NewBody(l, KindHero, x, y)}
	l.Spawn(h)
	h.SetOffset(-24, 0)
	h.SetSize(80, 80)
	h.Lives = cfg.StartLives
	h.deathBeginWait = cfg.Ticks(700)
	h.deathFrames = max(cfg.Ticks(600), 1)
	h.deathStepUp = math.Ceil(200 / float64(h.deathFrames))
	h.deathDir = 1
	h.Direction = engine.DirRight
	h.SetImage(SheetSprites, 81, 0)
	return h
}

// Deadly reports the remaining ticks during which touching enemies kills them.
func (h *Hero) Deadly() int { return h.deadly }

func (h *Hero) Invulnerable() int { return h.invulnerable }

func (h *Hero) Cooldown() int { return h.cooldown }

func (h *Hero) Store(t *engine.Transfer) {
	t.Lives = h.Lives
	t.Coins = h.Coins
	t.Size = h.Size
	t.Power = h.Power
	t.Stored = true
}

func (h *Hero) Restore(t engine.Transfer) {
	h.Lives = t.Lives
	h.setCoins(t.Coins)
	size := t.Size
	if size == 0 {
		size = engine.SizeSmall
	}
	h.setState(size)
	h.Power = t.Power
}

// setState changes the size. Any change drops the hero back to normal power.
func (h *Hero) setState(s engine.SizeState) {
	if s != h.Size {
		h.Power = engine.PowerNormal
		h.Size = s
	}
}

func (h *Hero) SetPosition(x, y float64) {
	h.Body.SetPosition(x, y)
	l := h.Level()
	width := l.WidthPx()

	r := math.Max(width-viewportWidth, 0)
	switch {
	case h.X <= scrollLeft:
		l.SetScroll(0)
	case h.X >= width-scrollRight:
		l.SetScroll(r)
	default:
		l.SetScroll(common.Lerp(0, r, (h.X-scrollLeft)/(width-scrollLeft-scrollRight)))
	}

	if h.OnGround && !h.Dead && h.X >= width-victoryMargin {
		h.victory()
	}
}

func (h *Hero) Trigger(it engine.Item) {
	it.Activate(h)
}

func (h *Hero) input(in engine.Input) {
	h.fast = in.Accelerate
	h.crouching = in.Down
	if h.crouching {
		return
	}
	if h.OnGround && in.Jump {
		h.jump()
	}
	if in.Accelerate && h.Power == engine.PowerFire {
		h.shoot()
	}
	if in.Left || in.Right {
		h.walk(in.Left, in.Accelerate)
	} else {
		h.VX = 0
	}
}

func (h *Hero) victory() {
	l := h.Level()
	if l.NextPending() {
		return
	}
	l.PlayMusic(engine.MusicSuccess)
	h.Frames.Clear()
	h.Hidden = false
	if h.Size == engine.SizeSmall {
		h.SetImage(SheetSprites, 241, 81)
	} else {
		h.SetImage(SheetSprites, 161, 81)
	}
	l.Next()
}

func (h *Hero) shoot() {
	if h.cooldown > 0 {
		return
	}
	h.cooldown = h.Config().Cooldown
	h.Level().PlaySound(engine.SoundShoot)
	NewBullet(h)
}

func (h *Hero) SetVelocity(vx, vy float64) {
	switch {
	case h.crouching:
		vx = 0
		h.crouch()
	case h.OnGround && vx > 0:
		h.walkRight()
	case h.OnGround && vx < 0:
		h.walkLeft()
	default:
		h.stand()
	}
	h.Body.SetVelocity(vx, vy)
}

func (h *Hero) blink(times int) {
	h.blinking = max(2*times*h.Config().BlinkFactor, h.blinking)
}

// Invincible starts the star countdown.
func (h *Hero) Invincible() {
	cfg := h.Config()
	h.Level().PlayMusic(engine.MusicInvincibility)
	h.deadly = cfg.Ticks(cfg.Invincible)
	h.invulnerable = h.deadly
	h.blink(ceilDiv(h.deadly, 2*cfg.BlinkFactor))
}

func (h *Hero) Upgrade(u Upgrade) {
	switch u {
	case UpgradeMushroom:
		h.Grow()
	case UpgradePlant:
		h.Shooter()
	}
}

// Grow turns a small hero big. It does nothing to a big one.
func (h *Hero) Grow() {
	if h.Size != engine.SizeSmall {
		return
	}
	h.Level().PlaySound(engine.SoundGrow)
	h.setState(engine.SizeBig)
	h.blink(3)
}

// Shooter grants fire mode, growing a small hero first.
func (h *Hero) Shooter() {
	if h.Size == engine.SizeSmall {
		h.Grow()
	} else {
		h.Level().PlaySound(engine.SoundGrow)
	}
	h.Power = engine.PowerFire
}

func (h *Hero) walk(reverse, fast bool) {
	v := h.Config().WalkingV
	if fast {
		v *= 2
	}
	if reverse {
		v = -v
	}
	h.VX = v
}

func (h *Hero) walkRight() {
	if h.Size == engine.SizeSmall {
		if !h.SetupFrames(8, 2, true, "WalkRightSmall") {
			h.SetImage(SheetSprites, 0, 0)
		}
		return
	}
	if !h.SetupFrames(9, 2, true, "WalkRightBig") {
		h.SetImage(SheetSprites, 0, 243)
	}
}

func (h *Hero) walkLeft() {
	if h.Size == engine.SizeSmall {
		if !h.SetupFrames(8, 2, false, "WalkLeftSmall") {
			h.SetImage(SheetSprites, 80, 81)
		}
		return
	}
	if !h.SetupFrames(9, 2, false, "WalkLeftBig") {
		h.SetImage(SheetSprites, 81, 162)
	}
}

func (h *Hero) facing() int {
	if h.Direction == engine.DirLeft {
		return 0
	}
	return 1
}

func (h *Hero) stand() {
	air := 1
	if h.OnGround {
		air = 0
	}
	c := standLooks[h.Size-1][h.facing()][air]
	h.SetImage(SheetSprites, c[0], c[1])
	h.Frames.Clear()
}

func (h *Hero) crouch() {
	c := crouchLooks[h.Size-1][h.facing()]
	h.SetImage(SheetSprites, c[0], c[1])
	h.Frames.Clear()
}

func (h *Hero) jump() {
	h.Level().PlaySound(engine.SoundJump)
	h.VY = h.Config().JumpingV
}

func (h *Hero) Move() {
	h.input(h.Level().Input())
	h.Body.Move()
}

func (h *Hero) AddCoin() {
	h.setCoins(h.Coins + 1)
}

func (h *Hero) setCoins(coins int) {
	h.Coins = coins
	if limit := h.Config().MaxCoins; limit > 0 && h.Coins >= limit {
		h.addLife()
		h.Coins -= limit
	}
}

func (h *Hero) addLife() {
	h.Level().PlaySound(engine.SoundLiveUpgrade)
	h.Lives++
}

func (h *Hero) PlayFrame() {
	if h.blinking > 0 {
		if bf := h.Config().BlinkFactor; bf > 0 && h.blinking%bf == 0 {
			h.Hidden = !h.Hidden
		}
		h.blinking--
		if h.blinking == 0 {
			h.Hidden = false
		}
	}
	if h.cooldown > 0 {
		h.cooldown--
	}
	if h.deadly > 0 {
		h.deadly--
	}
	if h.invulnerable > 0 {
		h.invulnerable--
	}
	h.Body.PlayFrame()
}

// Death waits, rises, falls and waits again before the level reloads.
func (h *Hero) Death() bool {
	if h.deathBeginWait > 0 {
		h.deathBeginWait--
		return true
	}
	if h.deathEndWait > 0 {
		h.deathEndWait--
		return h.deathEndWait > 0
	}

	if h.deathDir > 0 {
		h.DeathOffset += h.deathStepUp
	} else {
		h.DeathOffset -= h.deathStepDown
	}
	h.deathCount += h.deathDir
	if h.deathCount == h.deathFrames {
		h.deathDir = -1
	} else if h.deathCount == 0 {
		h.deathEndWait = max(h.Config().Ticks(1800), 1)
	}
	return true
}

func (h *Hero) Die() {
	if h.Dead {
		return
	}
	h.Power = engine.PowerNormal
	h.deathStepDown = math.Ceil(240 / float64(h.deathFrames))
	h.SetupFrames(9, 2, false, "")
	h.SetImage(SheetSprites, 81, 324)
	h.Hidden = false
	h.blinking = 0
	h.Level().PlayMusic(engine.MusicDie)
	h.Body.Die()
}

// Hurt applies enemy contact: a deadly hero kills the enemy, an invulnerable
// one ignores it, fire drops to normal, big drops to small and small dies.
func (h *Hero) Hurt(enemy engine.Figure) {
	switch {
	case h.deadly > 0:
		enemy.Die()
	case h.invulnerable > 0:
	case h.Size == engine.SizeSmall:
		h.Self().Die()
	default:
		cfg := h.Config()
		h.invulnerable = cfg.Ticks(cfg.Invulnerable)
		h.blink(ceilDiv(h.invulnerable, 2*cfg.BlinkFactor))
		if h.Power == engine.PowerFire {
			h.Power = engine.PowerNormal
		} else {
			h.setState(engine.SizeSmall)
		}
		h.Level().PlaySound(engine.SoundHurt)
	}
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
