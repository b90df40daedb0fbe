package effects

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Influence is the aggregated visual perturbation a query point experiences
// from active effect instances. Channels combine by linear superposition, so
// the zero value is the identity element for Add.
type Influence struct {
	// Intensity drives brightness scaling, >= 0
	Intensity float64

	// Height displaces the field surface, positive for pulses, negative for dips
	Height float64

	// Turbulence drives noise-based glyph jitter, >= 0
	Turbulence float64

	// Color accumulates weighted RGB contributions from color washes.
	// The normalized tint is ColorR/G/B divided by ColorWeight.
	ColorR, ColorG, ColorB float64
	ColorWeight            float64
}

// None is the canonical "no influence" value. Aggregation returns this exact
// value when nothing contributes, so callers may compare against it directly.
var None = Influence{}

// Add returns the channel-wise sum of two influences.
func (in Influence) Add(o Influence) Influence {
	return Influence{
		Intensity:   in.Intensity + o.Intensity,
		Height:      in.Height + o.Height,
		Turbulence:  in.Turbulence + o.Turbulence,
		ColorR:      in.ColorR + o.ColorR,
		ColorG:      in.ColorG + o.ColorG,
		ColorB:      in.ColorB + o.ColorB,
		ColorWeight: in.ColorWeight + o.ColorWeight,
	}
}

// IsNone reports whether the influence is the canonical zero value.
func (in Influence) IsNone() bool {
	return in == None
}

// Tint returns the normalized color contribution. ok is false when no color
// wash contributed at this point.
func (in Influence) Tint() (c colorful.Color, ok bool) {
	if in.ColorWeight <= 0 {
		return colorful.Color{}, false
	}
	inv := 1.0 / in.ColorWeight
	return colorful.Color{
		R: in.ColorR * inv,
		G: in.ColorG * inv,
		B: in.ColorB * inv,
	}, true
}

// tinted folds a weighted color sample into an influence value.
func tinted(in Influence, c colorful.Color, weight float64) Influence {
	if weight <= 0 {
		return in
	}
	in.ColorR += c.R * weight
	in.ColorG += c.G * weight
	in.ColorB += c.B * weight
	in.ColorWeight += weight
	return in
}
