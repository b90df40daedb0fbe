package effects

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/arclight-dev/mindmesh/cognition"
)

// Ramp is a two-stop color gradient tagged with the phase it represents.
// Color washes sample it over the instance lifetime.
type Ramp struct {
	Phase      cognition.Phase
	Start, End colorful.Color
}

// At samples the ramp at t in [0,1] using HCL blending, which keeps the
// midpoints perceptually sane instead of washing through gray.
func (r Ramp) At(t float64) colorful.Color {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return r.Start.BlendHcl(r.End, t).Clamped()
}

// phaseRamps maps every cognitive phase to its wash gradient. The idle
// phase gets a neutral gray ramp so RampForPhase is total.
var phaseRamps = map[cognition.Phase]Ramp{
	cognition.PhaseNone: {
		Phase: cognition.PhaseNone,
		Start: colorful.Color{R: 0.45, G: 0.45, B: 0.48},
		End:   colorful.Color{R: 0.25, G: 0.25, B: 0.28},
	},
	cognition.PhasePerceive: {
		Phase: cognition.PhasePerceive,
		Start: colorful.Color{R: 0.20, G: 0.85, B: 0.95},
		End:   colorful.Color{R: 0.05, G: 0.40, B: 0.55},
	},
	cognition.PhaseRecall: {
		Phase: cognition.PhaseRecall,
		Start: colorful.Color{R: 0.65, G: 0.45, B: 0.95},
		End:   colorful.Color{R: 0.30, G: 0.15, B: 0.55},
	},
	cognition.PhasePlan: {
		Phase: cognition.PhasePlan,
		Start: colorful.Color{R: 0.98, G: 0.75, B: 0.25},
		End:   colorful.Color{R: 0.60, G: 0.40, B: 0.08},
	},
	cognition.PhaseExecute: {
		Phase: cognition.PhaseExecute,
		Start: colorful.Color{R: 0.30, G: 0.95, B: 0.45},
		End:   colorful.Color{R: 0.08, G: 0.50, B: 0.20},
	},
	cognition.PhaseEvaluate: {
		Phase: cognition.PhaseEvaluate,
		Start: colorful.Color{R: 0.35, G: 0.55, B: 0.98},
		End:   colorful.Color{R: 0.12, G: 0.22, B: 0.60},
	},
	cognition.PhaseLoop: {
		Phase: cognition.PhaseLoop,
		Start: colorful.Color{R: 0.95, G: 0.40, B: 0.80},
		End:   colorful.Color{R: 0.50, G: 0.12, B: 0.42},
	},
}

// RampForPhase returns the wash ramp for a phase. Total over the enum:
// unknown values fall back to the neutral idle ramp.
func RampForPhase(p cognition.Phase) Ramp {
	if r, ok := phaseRamps[p]; ok {
		return r
	}
	return phaseRamps[cognition.PhaseNone]
}
