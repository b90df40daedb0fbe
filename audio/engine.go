package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/arclight-dev/mindmesh/cognition"
)

const (
	sampleRate = beep.SampleRate(44100)
	cueVolume  = -1.2 // Quiet by default; cues accent, they don't announce
)

// Engine plays short synthesized cues for cognition events. Initialization
// failure flips it to silent mode instead of failing the visualizer.
type Engine struct {
	enabled bool
}

// NewEngine initializes the speaker. A nil error with a disabled engine is
// the silent-mode path.
func NewEngine(enabled bool) (*Engine, error) {
	if !enabled {
		return &Engine{}, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return &Engine{}, err
	}
	return &Engine{enabled: true}, nil
}

// Enabled reports whether the engine will actually produce sound.
func (e *Engine) Enabled() bool {
	return e.enabled
}

// Close shuts the speaker down.
func (e *Engine) Close() {
	if e.enabled {
		speaker.Close()
	}
}

// Cue plays the sound mapped to a cognition event kind. Non-blocking.
func (e *Engine) Cue(ev cognition.Event) {
	if !e.enabled {
		return
	}

	var streamer beep.Streamer
	switch ev.(type) {
	case cognition.SparkReceived:
		streamer = NewOscillator(880, 60*time.Millisecond, WaveSine, sampleRate)
	case cognition.PhaseTransition:
		streamer = NewOscillator(520, 40*time.Millisecond, WaveTriangle, sampleRate)
	case cognition.UncertaintySpike:
		streamer = NewOscillator(180, 120*time.Millisecond, WaveSquare, sampleRate)
	case cognition.TaskCompleted:
		// Quick rising arpeggio
		streamer = beep.Seq(
			NewOscillator(523, 60*time.Millisecond, WaveSine, sampleRate),
			NewOscillator(659, 60*time.Millisecond, WaveSine, sampleRate),
			NewOscillator(784, 90*time.Millisecond, WaveSine, sampleRate),
		)
	case cognition.HumanEscalation:
		// Two-tone alarm
		streamer = beep.Seq(
			NewOscillator(440, 120*time.Millisecond, WaveSquare, sampleRate),
			NewOscillator(330, 160*time.Millisecond, WaveSquare, sampleRate),
		)
	default:
		return
	}

	speaker.Play(&effects.Volume{
		Streamer: streamer,
		Base:     2,
		Volume:   cueVolume,
	})
}
