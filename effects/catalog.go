package effects

import (
	"math"

	"github.com/arclight-dev/mindmesh/cognition"
	"github.com/arclight-dev/mindmesh/vmath"
)

// Stable effect names. Diagnostics and tests match against these strings
// instead of inspecting concrete types.
const (
	NameSparkBurst  = "spark_burst"
	NameHeightPulse = "height_pulse"
	NameColorWash   = "color_wash"
	NameTurbulence  = "turbulence"
	NameConfetti    = "confetti"
)

// Default parameterizations. Constructors substitute these for zero-valued
// overrides. Non-positive explicit durations are a caller precondition
// violation, not a handled runtime case.
const (
	DefaultSparkBurstRadius   = 3.0
	DefaultSparkBurstDuration = 1.5

	DefaultHeightPulseRadius   = 5.0
	DefaultHeightPulseDuration = 2.0

	// HeightPulseAmplitudePerRadius scales peak amplitude with radius so
	// wider pulses also rise higher
	HeightPulseAmplitudePerRadius = 0.35

	DefaultColorWashDuration = 2.5
	ColorWashRadius          = 6.0

	DefaultTurbulenceAmplitude = 1.0
	DefaultTurbulenceDuration  = 2.0
	TurbulenceRadius           = 8.0

	DefaultConfettiDuration = 1.0
	ConfettiRadius          = 4.0
)

// Description is an immutable parameterization of one effect kind. Values
// are shared freely across instances; nothing mutates them after
// construction.
type Description interface {
	// Name returns the stable identifier for the effect kind.
	Name() string

	// BaseDuration returns the unscaled lifetime in seconds.
	BaseDuration() float64

	// influenceAt computes this kind's contribution at horizontal distance
	// dist from the anchor, given the instance age, effective duration, and
	// metadata intensity multiplier. Must be monotonically non-increasing
	// in dist and reach zero at or beyond the kind's radius.
	influenceAt(age, effDur, dist, intensity float64) Influence
}

// falloff is the shared distance decay: linear to zero at radius.
// A zero radius degrades to no contribution rather than dividing by zero.
func falloff(dist, radius float64) float64 {
	if radius <= 0 {
		return 0
	}
	return vmath.Clamp01(1 - dist/radius)
}

// lifeFrac returns age/effDur clamped to [0,1], guarding zero durations.
func lifeFrac(age, effDur float64) float64 {
	if effDur <= 0 {
		return 1
	}
	return vmath.Clamp01(age / effDur)
}

// SparkBurst is a short radial shower of sparks around the anchor.
type SparkBurst struct {
	Radius   float64
	Duration float64
}

// NewSparkBurst builds a spark burst description. Zero-valued arguments
// select the documented defaults.
func NewSparkBurst(radius, duration float64) SparkBurst {
	if radius == 0 {
		radius = DefaultSparkBurstRadius
	}
	if duration == 0 {
		duration = DefaultSparkBurstDuration
	}
	return SparkBurst{Radius: radius, Duration: duration}
}

func (s SparkBurst) Name() string          { return NameSparkBurst }
func (s SparkBurst) BaseDuration() float64 { return s.Duration }

func (s SparkBurst) influenceAt(age, effDur, dist, intensity float64) Influence {
	f := falloff(dist, s.Radius)
	if f == 0 {
		return None
	}
	// Sparks decay linearly over the lifetime
	fade := 1 - lifeFrac(age, effDur)
	return Influence{Intensity: intensity * f * fade}
}

// HeightPulse is a traveling bump in the field surface that swells and
// subsides over its lifetime.
type HeightPulse struct {
	Radius        float64
	PeakAmplitude float64
	Duration      float64
}

// NewHeightPulse builds a height pulse description. Zero-valued arguments
// select defaults; a zero peak amplitude derives from the radius.
func NewHeightPulse(radius, peakAmplitude, duration float64) HeightPulse {
	if radius == 0 {
		radius = DefaultHeightPulseRadius
	}
	if peakAmplitude == 0 {
		peakAmplitude = radius * HeightPulseAmplitudePerRadius
	}
	if duration == 0 {
		duration = DefaultHeightPulseDuration
	}
	return HeightPulse{Radius: radius, PeakAmplitude: peakAmplitude, Duration: duration}
}

func (h HeightPulse) Name() string          { return NameHeightPulse }
func (h HeightPulse) BaseDuration() float64 { return h.Duration }

func (h HeightPulse) influenceAt(age, effDur, dist, intensity float64) Influence {
	f := falloff(dist, h.Radius)
	if f == 0 {
		return None
	}
	// Half-sine envelope: rises to the peak mid-life, subsides to zero
	envelope := math.Sin(math.Pi * lifeFrac(age, effDur))
	height := intensity * h.PeakAmplitude * f * envelope
	return Influence{
		Intensity: 0.25 * height,
		Height:    height,
	}
}

// ColorWash floods the area around the anchor with a phase-colored glow
// that fades as the instance ages.
type ColorWash struct {
	Ramp     Ramp
	Duration float64
}

// NewColorWash builds a color wash for a cognitive phase. A zero duration
// selects the default.
func NewColorWash(phase cognition.Phase, duration float64) ColorWash {
	if duration == 0 {
		duration = DefaultColorWashDuration
	}
	return ColorWash{Ramp: RampForPhase(phase), Duration: duration}
}

func (c ColorWash) Name() string          { return NameColorWash }
func (c ColorWash) BaseDuration() float64 { return c.Duration }

func (c ColorWash) influenceAt(age, effDur, dist, intensity float64) Influence {
	f := falloff(dist, ColorWashRadius)
	if f == 0 {
		return None
	}
	t := lifeFrac(age, effDur)
	weight := intensity * f * (1 - t)
	if weight <= 0 {
		return None
	}
	in := Influence{Intensity: 0.3 * weight}
	return tinted(in, c.Ramp.At(t), weight)
}

// Turbulence perturbs glyphs near the anchor with noise-driven jitter.
type Turbulence struct {
	NoiseAmplitude float64
	Duration       float64
}

// NewTurbulence builds a turbulence description. Zero-valued arguments
// select the documented defaults.
func NewTurbulence(noiseAmplitude, duration float64) Turbulence {
	if noiseAmplitude == 0 {
		noiseAmplitude = DefaultTurbulenceAmplitude
	}
	if duration == 0 {
		duration = DefaultTurbulenceDuration
	}
	return Turbulence{NoiseAmplitude: noiseAmplitude, Duration: duration}
}

func (t Turbulence) Name() string          { return NameTurbulence }
func (t Turbulence) BaseDuration() float64 { return t.Duration }

func (t Turbulence) influenceAt(age, effDur, dist, intensity float64) Influence {
	f := falloff(dist, TurbulenceRadius)
	if f == 0 {
		return None
	}
	fade := 1 - lifeFrac(age, effDur)
	return Influence{Turbulence: intensity * t.NoiseAmplitude * f * fade}
}

// Confetti is a brief celebratory shimmer around the anchor.
type Confetti struct {
	Duration float64
}

// NewConfetti builds a confetti description. A zero duration selects the
// default.
func NewConfetti(duration float64) Confetti {
	if duration == 0 {
		duration = DefaultConfettiDuration
	}
	return Confetti{Duration: duration}
}

func (c Confetti) Name() string          { return NameConfetti }
func (c Confetti) BaseDuration() float64 { return c.Duration }

func (c Confetti) influenceAt(age, effDur, dist, intensity float64) Influence {
	f := falloff(dist, ConfettiRadius)
	if f == 0 {
		return None
	}
	fade := 1 - lifeFrac(age, effDur)
	sparkle := intensity * f * fade
	return Influence{
		Intensity:  sparkle,
		Turbulence: 0.5 * sparkle,
	}
}
