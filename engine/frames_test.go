package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playN(f *Frames, n int) []int {
	var shown []int
	for i := 0; i < n; i++ {
		f.Play()
		shown = append(shown, f.Index())
	}
	return shown
}

func TestFrames(t *testing.T) {
	t.Run("forward_strip_wraps", func(t *testing.T) {
		var f Frames
		assert.False(t, f.Setup(2, 3, false, "walk"))
		assert.True(t, f.Playing())
		assert.Equal(t, []int{0, 0, 0, 1, 1, 2, 2, 0}, playN(&f, 8))
	})

	t.Run("rewind_strip_counts_down", func(t *testing.T) {
		var f Frames
		f.Setup(1, 3, true, "")
		assert.Equal(t, []int{2, 1, 0, 2}, playN(&f, 4))
	})

	t.Run("same_id_keeps_running", func(t *testing.T) {
		var f Frames
		f.Setup(1, 4, false, "walk")
		playN(&f, 3)
		assert.True(t, f.Setup(1, 4, false, "walk"))
		assert.Equal(t, 2, f.Index())
		assert.False(t, f.Setup(1, 2, false, "stand"))
		assert.Equal(t, 0, f.Index())
	})

	t.Run("clear_stops", func(t *testing.T) {
		var f Frames
		f.Setup(1, 2, false, "walk")
		playN(&f, 2)
		f.Clear()
		assert.False(t, f.Playing())
		assert.Equal(t, 0, f.Index())
		assert.Equal(t, []int{0, 0}, playN(&f, 2))
	})

	t.Run("empty_strip_never_plays", func(t *testing.T) {
		var f Frames
		f.Setup(3, 0, false, "")
		assert.False(t, f.Playing())
	})
}

func TestConfigTicks(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 2, cfg.Ticks(50))
	assert.Equal(t, 1, cfg.Ticks(30))
	assert.Equal(t, 2, cfg.TicksCeil(30))
	assert.Equal(t, 100, cfg.TicksCeil(2000))
	assert.Equal(t, 350, cfg.Ticks(cfg.NextLevelDelay))
	assert.Equal(t, 5.0, cfg.FrameTicks(10))
	assert.Equal(t, 0.0, cfg.FrameTicks(0))

	cfg.Interval = 0
	assert.Equal(t, 0, cfg.Ticks(50))
	assert.Equal(t, 0, cfg.TicksCeil(50))
	assert.Equal(t, 0.0, cfg.FrameTicks(10))
}

func TestEventQueue(t *testing.T) {
	var q EventQueue
	assert.Nil(t, q.Drain())
	q.Push(Event{Type: EventSpawned})
	q.Push(Event{Type: EventRemoved})
	assert.Equal(t, 2, q.Len())
	evts := q.Drain()
	assert.Equal(t, EventSpawned, evts[0].Type)
	assert.Equal(t, EventRemoved, evts[1].Type)
	assert.Equal(t, 0, q.Len())

	var nilQueue *EventQueue
	nilQueue.Push(Event{})
	assert.Equal(t, 0, nilQueue.Len())
	assert.Nil(t, nilQueue.Totals())

	t.Run("drain_by_type_keeps_the_rest", func(t *testing.T) {
		var q EventQueue
		q.Push(Event{Type: EventSpawned, Kind: "a"})
		q.Push(Event{Type: EventVictory, LevelID: 1})
		q.Push(Event{Type: EventRemoved, Kind: "a"})
		q.Push(Event{Type: EventGameOver, LevelID: 2})

		got := q.Drain(EventGameOver, EventVictory)
		require.Len(t, got, 2)
		assert.Equal(t, EventVictory, got[0].Type)
		assert.Equal(t, EventGameOver, got[1].Type)
		assert.Equal(t, 2, q.Len())
		assert.Nil(t, q.Drain(EventReloaded))

		rest := q.Drain()
		require.Len(t, rest, 2)
		assert.Equal(t, EventSpawned, rest[0].Type)
		assert.Equal(t, EventRemoved, rest[1].Type)
	})

	t.Run("totals_survive_draining", func(t *testing.T) {
		var q EventQueue
		q.Push(Event{Type: EventSpawned})
		q.Push(Event{Type: EventSpawned})
		q.Drain()
		q.Push(Event{Type: EventRemoved})

		totals := q.Totals()
		assert.Equal(t, map[EventType]int{EventSpawned: 2, EventRemoved: 1}, totals)
		totals[EventSpawned] = 9
		assert.Equal(t, 2, q.Totals()[EventSpawned])
	})
}
