package engine

import (
	"maps"
	"slices"
)

// EventType identifies a lifecycle notification for the host.
type EventType string

const (
	EventSpawned     EventType = "spawned"
	EventRemoved     EventType = "removed"
	EventLevelLoaded EventType = "level_loaded"
	EventReloaded    EventType = "reloaded"
	EventGameOver    EventType = "game_over"
	EventVictory     EventType = "victory"
	EventReset       EventType = "reset"
)

// Event is a lifecycle notification. Transfer is set on reload, game over and
// level transitions and holds the hero state carried across the boundary.
type Event struct {
	Type     EventType
	Handle   Handle
	Kind     string
	LevelID  int
	Transfer *Transfer
}

// EventQueue buffers lifecycle events until the host collects them and keeps
// a running count per type.
type EventQueue struct {
	pending []Event
	totals  map[EventType]int
}

func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	if q.totals == nil {
		q.totals = make(map[EventType]int)
	}
	q.totals[evt.Type]++
	q.pending = append(q.pending, evt)
}

// Drain removes and returns the pending events of the given types, oldest
// first. Events of other types stay queued. With no types every pending
// event is returned.
func (q *EventQueue) Drain(types ...EventType) []Event {
	if q == nil || len(q.pending) == 0 {
		return nil
	}
	if len(types) == 0 {
		out := q.pending
		q.pending = nil
		return out
	}
	var out []Event
	kept := q.pending[:0]
	for _, evt := range q.pending {
		if slices.Contains(types, evt.Type) {
			out = append(out, evt)
		} else {
			kept = append(kept, evt)
		}
	}
	q.pending = kept
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.pending)
}

// Totals returns how many events of each type were pushed, drained or not.
func (q *EventQueue) Totals() map[EventType]int {
	if q == nil {
		return nil
	}
	return maps.Clone(q.totals)
}
