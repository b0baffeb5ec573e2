package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/milk9111/tilerunner/engine"
)

type segment struct {
	input engine.Input
	ticks int
}

// scriptInput replays a fixed input sequence, one step per tick. After the
// last segment it reports no input.
type scriptInput struct {
	segments []segment
	index    int
	elapsed  int
}

// parseScript reads "keys:ticks" segments separated by commas, where keys
// joins left, right, down, jump, fire or idle with '+'.
func parseScript(s string) (*scriptInput, error) {
	sc := &scriptInput{}
	s = strings.TrimSpace(s)
	if s == "" {
		return sc, nil
	}
	for _, part := range strings.Split(s, ",") {
		keys, count, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, fmt.Errorf("script segment %q: missing tick count", part)
		}
		n, err := strconv.Atoi(count)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("script segment %q: bad tick count", part)
		}
		var in engine.Input
		for _, k := range strings.Split(keys, "+") {
			switch strings.ToLower(strings.TrimSpace(k)) {
			case "left":
				in.Left = true
			case "right":
				in.Right = true
			case "down":
				in.Down = true
			case "jump":
				in.Jump = true
			case "fire":
				in.Accelerate = true
			case "idle", "":
			default:
				return nil, fmt.Errorf("script segment %q: unknown key %q", part, k)
			}
		}
		sc.segments = append(sc.segments, segment{input: in, ticks: n})
	}
	return sc, nil
}

func (s *scriptInput) Input() engine.Input {
	if s.index >= len(s.segments) {
		return engine.Input{}
	}
	return s.segments[s.index].input
}

// advance moves the script forward by one tick.
func (s *scriptInput) advance() {
	if s.index >= len(s.segments) {
		return
	}
	s.elapsed++
	if s.elapsed >= s.segments[s.index].ticks {
		s.index++
		s.elapsed = 0
	}
}

// Done reports whether every segment was replayed.
func (s *scriptInput) Done() bool {
	return s.index >= len(s.segments)
}
