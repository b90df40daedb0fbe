package cognition

// Phase is one stage of an agent's cognitive cycle. PhaseNone is the idle
// state for agents that are not currently working.
type Phase uint8

const (
	PhaseNone Phase = iota
	PhasePerceive
	PhaseRecall
	PhasePlan
	PhaseExecute
	PhaseEvaluate
	PhaseLoop
)

// Phases lists every phase in cycle order, PhaseNone first.
// Lookup tables keyed by Phase (glyphs, colors, ramps) must cover all of it.
var Phases = [...]Phase{
	PhaseNone,
	PhasePerceive,
	PhaseRecall,
	PhasePlan,
	PhaseExecute,
	PhaseEvaluate,
	PhaseLoop,
}

func (p Phase) String() string {
	switch p {
	case PhaseNone:
		return "none"
	case PhasePerceive:
		return "perceive"
	case PhaseRecall:
		return "recall"
	case PhasePlan:
		return "plan"
	case PhaseExecute:
		return "execute"
	case PhaseEvaluate:
		return "evaluate"
	case PhaseLoop:
		return "loop"
	}
	return "unknown"
}

// Next returns the phase that follows p in the working cycle.
// PhaseNone has no successor and maps to PhasePerceive (work begins).
func (p Phase) Next() Phase {
	switch p {
	case PhaseNone:
		return PhasePerceive
	case PhasePerceive:
		return PhaseRecall
	case PhaseRecall:
		return PhasePlan
	case PhasePlan:
		return PhaseExecute
	case PhaseExecute:
		return PhaseEvaluate
	case PhaseEvaluate:
		return PhaseLoop
	case PhaseLoop:
		return PhasePerceive
	}
	return PhaseNone
}
