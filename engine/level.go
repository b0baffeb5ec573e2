package engine

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/milk9111/tilerunner/common"
)

var (
	// ErrInvalidDescriptor is returned when a level descriptor's dimensions
	// disagree with its data.
	ErrInvalidDescriptor = errors.New("invalid level descriptor")
	// ErrNoCampaign is returned when a level transition is requested without
	// a campaign.
	ErrNoCampaign = errors.New("no campaign")
)

// Descriptor is a level in its serialized form. Data is column-major: Data[i]
// is column i, listed from the top row down. Empty strings are empty cells.
type Descriptor struct {
	ID         int        `json:"id"`
	Width      int        `json:"width"`
	Height     int        `json:"height"`
	Background int        `json:"background"`
	Data       [][]string `json:"data"`
}

// Validate checks that the declared size matches the data.
func (d *Descriptor) Validate() error {
	if d == nil {
		return fmt.Errorf("%w: nil", ErrInvalidDescriptor)
	}
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("%w: level %d has size %dx%d", ErrInvalidDescriptor, d.ID, d.Width, d.Height)
	}
	if len(d.Data) != d.Width {
		return fmt.Errorf("%w: level %d declares %d columns, has %d", ErrInvalidDescriptor, d.ID, d.Width, len(d.Data))
	}
	for i, col := range d.Data {
		if len(col) != d.Height {
			return fmt.Errorf("%w: level %d column %d has %d rows, want %d", ErrInvalidDescriptor, d.ID, i, len(col), d.Height)
		}
	}
	return nil
}

// Campaign supplies the ordered sequence of levels.
type Campaign interface {
	First() *Descriptor
	Next(id int) *Descriptor
}

// Constructor builds and places one kind at (x, y).
type Constructor func(l *Level, x, y float64)

// Registry maps level-data identifiers to constructors.
type Registry map[string]Constructor

type Option func(*Level)

func WithSounds(s Sounds) Option {
	return func(l *Level) { l.sounds = s }
}

func WithInput(in InputSource) Option {
	return func(l *Level) { l.input = in }
}

func WithLogger(logger *log.Logger) Option {
	return func(l *Level) {
		if logger != nil {
			l.logger = logger
		}
	}
}

func WithCampaign(c Campaign) Option {
	return func(l *Level) { l.campaign = c }
}

// Level owns the grid, the figures, the items and the static matter of the
// level being played, and runs the tick.
type Level struct {
	cfg      Config
	pending  *Config
	registry Registry
	sounds   Sounds
	input    InputSource
	campaign Campaign
	logger   *log.Logger

	raw        *Descriptor
	id         int
	background int
	active     bool
	loaded     bool
	scroll     float64
	nextCycles int
	tick       uint64

	grid     *Grid
	figures  []Figure
	items    []Item
	matter   []Matter
	handles  handleStore
	byHandle map[Handle]Figure
	events   EventQueue
}

func NewLevel(cfg Config, registry Registry, opts ...Option) *Level {
	l := &Level{
		cfg:      cfg,
		registry: registry,
		logger:   log.New(io.Discard),
		byHandle: make(map[Handle]Figure),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load resets the level and populates it from d.
func (l *Level) Load(d *Descriptor) error {
	if err := d.Validate(); err != nil {
		return err
	}
	l.load(d, nil)
	return nil
}

func (l *Level) load(d *Descriptor, t *Transfer) {
	if l.loaded {
		l.Reset()
	}
	if l.pending != nil {
		l.cfg = *l.pending
		l.pending = nil
	}

	l.raw = d
	l.id = d.ID
	l.background = d.Background
	l.scroll = 0
	l.nextCycles = 0
	l.grid = NewGrid(d.Width, d.Height)
	l.active = true
	l.loaded = true

	skipped := 0
	for i, col := range d.Data {
		for j, name := range col {
			if name == "" {
				continue
			}
			ctor, ok := l.registry[name]
			if !ok {
				skipped++
				l.logger.Debug("unknown tile", "id", name, "column", i, "row", j)
				continue
			}
			ctor(l, float64(i*common.TileSize), float64((len(col)-j-1)*common.TileSize))
		}
	}

	l.events.Push(Event{Type: EventLevelLoaded, LevelID: d.ID, Transfer: t})
	l.logger.Info("level loaded", "id", d.ID, "width", d.Width, "height", d.Height, "figures", len(l.figures), "skipped", skipped)
}

// Reset empties the level. Handles to removed figures stop resolving.
func (l *Level) Reset() {
	l.active = false
	l.loaded = false
	for _, f := range l.figures {
		l.handles.destroy(f.Base().handle)
	}
	clear(l.byHandle)
	l.figures = nil
	l.items = nil
	l.matter = nil
	l.grid.Clear()
	l.events.Push(Event{Type: EventReset, LevelID: l.id})
}

// Reload restarts after the hero's death. Carrier state is collected and one
// life is spent. With lives left the current level restarts; otherwise the
// first campaign level starts with a fresh hero.
func (l *Level) Reload() {
	if l.raw == nil {
		return
	}
	t := l.collect()
	t.Lives--

	if t.Lives <= 0 {
		first := l.raw
		if l.campaign != nil {
			if d := l.campaign.First(); d != nil {
				first = d
			}
		}
		l.logger.Info("game over", "level", first.ID)
		l.load(first, nil)
		l.events.Push(Event{Type: EventGameOver, LevelID: first.ID, Transfer: &t})
		return
	}

	l.load(l.raw, nil)
	l.restore(t)
	l.logger.Info("level reloaded", "id", l.id, "lives", t.Lives)
	l.events.Push(Event{Type: EventReloaded, LevelID: l.id, Transfer: &t})
}

// Swap loads d in place of the current level and hands the carriers' state
// over to the carriers of d, as a level transition does.
func (l *Level) Swap(d *Descriptor) error {
	if err := d.Validate(); err != nil {
		return err
	}
	t := l.collect()
	l.load(d, &t)
	l.restore(t)
	return nil
}

func (l *Level) collect() Transfer {
	var t Transfer
	for i := len(l.figures) - 1; i >= 0; i-- {
		if c, ok := l.figures[i].(Carrier); ok {
			c.Store(&t)
		}
	}
	return t
}

func (l *Level) restore(t Transfer) {
	if !t.Stored {
		return
	}
	for _, f := range l.figures {
		if c, ok := f.(Carrier); ok {
			c.Restore(t)
		}
	}
}

// Next schedules the transition to the following level.
func (l *Level) Next() {
	if l.nextCycles > 0 {
		return
	}
	l.nextCycles = l.cfg.Ticks(l.cfg.NextLevelDelay)
	if l.nextCycles <= 0 {
		l.nextCycles = 1
	}
	l.events.Push(Event{Type: EventVictory, LevelID: l.id})
}

// NextPending reports whether a level transition is counting down.
func (l *Level) NextPending() bool {
	return l.nextCycles > 0
}

func (l *Level) nextLoad() {
	if l.nextCycles > 0 {
		return
	}
	if l.campaign == nil {
		l.logger.Error("level transition failed", "err", ErrNoCampaign)
		l.active = false
		return
	}
	next := l.campaign.Next(l.id)
	if next == nil {
		l.logger.Info("campaign complete", "id", l.id)
		l.active = false
		return
	}

	t := l.collect()
	l.load(next, &t)
	l.restore(t)
}

// Spawn adds f to the live figures and returns its handle.
func (l *Level) Spawn(f Figure) Handle {
	b := f.Base()
	b.level = l
	b.self = f
	b.handle = l.handles.create()
	l.figures = append(l.figures, f)
	l.byHandle[b.handle] = f
	l.events.Push(Event{Type: EventSpawned, Handle: b.handle, Kind: b.Kind})
	return b.handle
}

// Place puts m into the grid cell its position maps to.
func (l *Level) Place(m Matter) {
	s := m.Matter()
	s.level = l
	if !l.grid.Set(s.I, s.J, m) {
		l.logger.Warn("matter outside grid", "kind", s.Kind, "column", s.I, "row", s.J)
	}
	if it, ok := m.(Item); ok {
		l.items = append(l.items, it)
		return
	}
	l.matter = append(l.matter, m)
}

func (l *Level) remove(i int) {
	f := l.figures[i]
	b := f.Base()
	l.handles.destroy(b.handle)
	delete(l.byHandle, b.handle)
	l.figures = append(l.figures[:i], l.figures[i+1:]...)
	l.events.Push(Event{Type: EventRemoved, Handle: b.handle, Kind: b.Kind})
}

// Figure resolves a handle. It returns nil once the figure was removed.
func (l *Level) Figure(h Handle) Figure {
	if l == nil || !l.handles.isAlive(h) {
		return nil
	}
	return l.byHandle[h]
}

func (l *Level) Figures() []Figure { return l.figures }

func (l *Level) Items() []Item { return l.items }

func (l *Level) Matter() []Matter { return l.matter }

func (l *Level) Grid() *Grid {
	if l == nil {
		return nil
	}
	return l.grid
}

func (l *Level) Config() Config {
	if l == nil {
		return DefaultConfig()
	}
	return l.cfg
}

// SetConfig replaces the tuning at the next load.
func (l *Level) SetConfig(cfg Config) {
	l.pending = &cfg
}

func (l *Level) Logger() *log.Logger { return l.logger }

func (l *Level) PlaySound(label string) {
	if l == nil || l.sounds == nil {
		return
	}
	l.sounds.Play(label)
}

func (l *Level) PlayMusic(label string) {
	if l == nil || l.sounds == nil {
		return
	}
	l.sounds.Music(label)
}

// Input returns the current input snapshot, empty without a source.
func (l *Level) Input() Input {
	if l == nil || l.input == nil {
		return Input{}
	}
	return l.input.Input()
}

func (l *Level) ID() int { return l.id }

func (l *Level) Background() int { return l.background }

func (l *Level) Active() bool { return l.active }

func (l *Level) Ticks() uint64 { return l.tick }

func (l *Level) WidthPx() float64 {
	return float64(l.grid.Width() * common.TileSize)
}

func (l *Level) HeightPx() float64 {
	return float64(l.grid.Height() * common.TileSize)
}

// Scroll is the horizontal camera offset in world units.
func (l *Level) Scroll() float64 { return l.scroll }

func (l *Level) SetScroll(x float64) { l.scroll = x }

func (l *Level) Events() *EventQueue { return &l.events }

// Hero returns the first live carrier, if any.
func (l *Level) Hero() Carrier {
	for _, f := range l.figures {
		if c, ok := f.(Carrier); ok {
			return c
		}
	}
	return nil
}

// Views snapshots everything drawable: matter, then items, then figures.
func (l *Level) Views() []View {
	out := make([]View, 0, len(l.matter)+len(l.items)+len(l.figures))
	for _, m := range l.matter {
		out = appendView(out, m)
	}
	for _, it := range l.items {
		out = appendView(out, it)
	}
	for _, f := range l.figures {
		out = appendView(out, f)
	}
	return out
}

type viewer interface {
	View() View
}

func appendView(dst []View, v any) []View {
	if vv, ok := v.(Viewer); ok {
		return vv.Views(dst)
	}
	if vv, ok := v.(viewer); ok {
		return append(dst, vv.View())
	}
	return dst
}
