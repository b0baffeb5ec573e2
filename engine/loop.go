package engine

import (
	"context"
	"sync"
	"time"
)

// Loop drives a Level from a fixed-rate ticker. It is used by hosts that do
// not bring their own frame clock.
type Loop struct {
	mu     sync.Mutex
	level  *Level
	paused bool
	onTick func(*Level)
}

func NewLoop(l *Level, onTick func(*Level)) *Loop {
	return &Loop{level: l, onTick: onTick}
}

// Start ticks the level every configured interval until ctx is cancelled or the
// level becomes inactive.
func (lp *Loop) Start(ctx context.Context) error {
	interval := time.Duration(lp.level.Config().Interval) * time.Millisecond
	if interval <= 0 {
		interval = time.Duration(DefaultConfig().Interval) * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !lp.Step() {
				return nil
			}
		}
	}
}

// Step runs one tick unless paused. It reports whether the level is still
// active.
func (lp *Loop) Step() bool {
	lp.mu.Lock()
	defer lp.mu.Unlock()

	if !lp.level.Active() {
		return false
	}
	if lp.paused {
		return true
	}
	lp.level.Tick()
	if lp.onTick != nil {
		lp.onTick(lp.level)
	}
	return lp.level.Active()
}

func (lp *Loop) Pause() {
	lp.mu.Lock()
	lp.paused = true
	lp.mu.Unlock()
}

func (lp *Loop) Resume() {
	lp.mu.Lock()
	lp.paused = false
	lp.mu.Unlock()
}

func (lp *Loop) Paused() bool {
	lp.mu.Lock()
	defer lp.mu.Unlock()
	return lp.paused
}

// Do runs fn with exclusive access to the level, between ticks.
func (lp *Loop) Do(fn func(*Level)) {
	lp.mu.Lock()
	defer lp.mu.Unlock()
	fn(lp.level)
}
