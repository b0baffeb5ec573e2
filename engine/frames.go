package engine

// Frames is a frame cursor over a horizontal sprite strip. It advances once per
// tick at its own rate and never influences physics; the presentation sink
// reads Index to pick the strip cell.
type Frames struct {
	ID     string
	Count  int
	Rewind bool

	perFrame float64
	tick     int
	current  int
	shown    int
}

// Setup starts a strip of count frames shown for perFrame ticks each. When id
// is non-empty and already running, Setup leaves the strip alone and returns
// true, so callers can re-request the same animation every tick.
func (f *Frames) Setup(perFrame float64, count int, rewind bool, id string) bool {
	if id != "" {
		if f.ID == id {
			return true
		}
		f.ID = id
	}

	f.current = 0
	f.shown = 0
	f.Count = count
	f.Rewind = rewind
	if count > 0 {
		f.perFrame = perFrame
	} else {
		f.perFrame = 0
	}
	return false
}

// Clear stops the strip; the static look is shown.
func (f *Frames) Clear() {
	f.ID = ""
	f.Count = 0
	f.current = 0
	f.shown = 0
	f.perFrame = 0
}

// Playing reports whether a strip is running.
func (f *Frames) Playing() bool {
	return f.perFrame > 0
}

// Play advances the strip by one tick.
func (f *Frames) Play() {
	if f.perFrame <= 0 {
		return
	}
	f.tick++
	if float64(f.tick) < f.perFrame {
		return
	}
	f.tick = 0
	if f.current == f.Count {
		f.current = 0
	}
	if f.Rewind {
		f.shown = f.Count - 1 - f.current
	} else {
		f.shown = f.current
	}
	f.current++
}

// Index returns the strip cell currently shown.
func (f *Frames) Index() int {
	return f.shown
}
