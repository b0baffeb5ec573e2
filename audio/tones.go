package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/milk9111/tilerunner/engine"
)

const sampleRate = beep.SampleRate(44100)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSquare Wave = iota
	WaveSine
	WaveTriangle
	WaveNoise
)

// note is one step of a synthesized cue.
type note struct {
	freq float64
	dur  time.Duration
	wave Wave
}

var cues = map[string][]note{
	engine.SoundJump:        {{330, 40 * time.Millisecond, WaveSquare}, {660, 80 * time.Millisecond, WaveSquare}},
	engine.SoundCoin:        {{988, 60 * time.Millisecond, WaveSquare}, {1319, 180 * time.Millisecond, WaveSquare}},
	engine.SoundMushroom:    {{523, 60 * time.Millisecond, WaveTriangle}, {659, 60 * time.Millisecond, WaveTriangle}, {784, 60 * time.Millisecond, WaveTriangle}},
	engine.SoundGrow:        {{392, 50 * time.Millisecond, WaveSquare}, {523, 50 * time.Millisecond, WaveSquare}, {659, 50 * time.Millisecond, WaveSquare}, {784, 90 * time.Millisecond, WaveSquare}},
	engine.SoundHurt:        {{440, 60 * time.Millisecond, WaveSquare}, {294, 60 * time.Millisecond, WaveSquare}, {196, 120 * time.Millisecond, WaveSquare}},
	engine.SoundShoot:       {{1200, 30 * time.Millisecond, WaveSquare}, {600, 40 * time.Millisecond, WaveSquare}},
	engine.SoundEnemyDie:    {{0, 90 * time.Millisecond, WaveNoise}},
	engine.SoundShell:       {{180, 40 * time.Millisecond, WaveTriangle}, {0, 60 * time.Millisecond, WaveNoise}},
	engine.SoundLiveUpgrade: {{659, 80 * time.Millisecond, WaveSquare}, {784, 80 * time.Millisecond, WaveSquare}, {1319, 80 * time.Millisecond, WaveSquare}, {1047, 80 * time.Millisecond, WaveSquare}, {1175, 80 * time.Millisecond, WaveSquare}, {1568, 160 * time.Millisecond, WaveSquare}},

	engine.MusicSuccess:       {{523, 150 * time.Millisecond, WaveSquare}, {659, 150 * time.Millisecond, WaveSquare}, {784, 150 * time.Millisecond, WaveSquare}, {1047, 450 * time.Millisecond, WaveSquare}},
	engine.MusicDie:           {{494, 120 * time.Millisecond, WaveSquare}, {698, 240 * time.Millisecond, WaveSquare}, {698, 120 * time.Millisecond, WaveSquare}, {659, 160 * time.Millisecond, WaveSquare}, {587, 160 * time.Millisecond, WaveSquare}, {523, 320 * time.Millisecond, WaveSquare}},
	engine.MusicInvincibility: {{523, 100 * time.Millisecond, WaveTriangle}, {587, 100 * time.Millisecond, WaveTriangle}, {659, 100 * time.Millisecond, WaveTriangle}, {587, 100 * time.Millisecond, WaveTriangle}},
}

// Labels lists every cue the synthesizer knows.
func Labels() []string {
	out := make([]string, 0, len(cues))
	for label := range cues {
		out = append(out, label)
	}
	return out
}

// oscillator generates a fixed-length wave.
type oscillator struct {
	freq     float64
	phase    float64
	length   int
	position int
	wave     Wave
	seed     uint32
}

func newOscillator(freq float64, dur time.Duration, wave Wave) *oscillator {
	return &oscillator{freq: freq, length: sampleRate.N(dur), wave: wave, seed: 2463534242}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		case WaveNoise:
			o.seed ^= o.seed << 13
			o.seed ^= o.seed >> 17
			o.seed ^= o.seed << 5
			val = float64(o.seed)/float64(math.MaxUint32)*2 - 1
		}

		// short linear release avoids clicks between notes
		if rem := o.length - o.position; rem < 64 {
			val *= float64(rem) / 64
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(sampleRate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// Synth builds the streamer for a cue, or nil for an unknown label.
func Synth(label string, volume float64) beep.Streamer {
	notes, ok := cues[label]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, newOscillator(n.freq, n.dur, n.wave))
	}
	return withVolume(beep.Seq(parts...), volume)
}

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// ToneSink plays synthesized cues through the speaker. Sound effects mix
// freely; a new music cue replaces the one playing.
type ToneSink struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	volume      float64
	initialized bool
}

func NewToneSink(volume float64) *ToneSink {
	return &ToneSink{mixer: &beep.Mixer{}, volume: volume}
}

// Init opens the audio device.
func (s *ToneSink) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Close silences everything.
func (s *ToneSink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.music = nil
	s.initialized = false
}

func (s *ToneSink) Play(label string) {
	s.add(label, false)
}

func (s *ToneSink) Music(label string) {
	s.add(label, true)
}

func (s *ToneSink) add(label string, music bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	st := Synth(label, s.volume)
	if st == nil {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	if music {
		if s.music != nil {
			s.music.Paused = true
			s.music.Streamer = nil
		}
		s.music = &beep.Ctrl{Streamer: st}
		s.mixer.Add(s.music)
		return
	}
	s.mixer.Add(st)
}
