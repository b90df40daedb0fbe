package cognition

import (
	"testing"
)

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseNone, "none"},
		{PhasePerceive, "perceive"},
		{PhaseRecall, "recall"},
		{PhasePlan, "plan"},
		{PhaseExecute, "execute"},
		{PhaseEvaluate, "evaluate"},
		{PhaseLoop, "loop"},
		{Phase(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.phase.String(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestPhaseNextCycles(t *testing.T) {
	tests := []struct {
		from Phase
		want Phase
	}{
		{PhaseNone, PhasePerceive},
		{PhasePerceive, PhaseRecall},
		{PhaseRecall, PhasePlan},
		{PhasePlan, PhaseExecute},
		{PhaseExecute, PhaseEvaluate},
		{PhaseEvaluate, PhaseLoop},
		{PhaseLoop, PhasePerceive},
	}

	for _, tt := range tests {
		t.Run(tt.from.String(), func(t *testing.T) {
			if got := tt.from.Next(); got != tt.want {
				t.Errorf("%v.Next(): expected %v, got %v", tt.from, tt.want, got)
			}
		})
	}
}

func TestPhasesCoversEnum(t *testing.T) {
	seen := map[Phase]bool{}
	for _, p := range Phases {
		seen[p] = true
	}
	for p := PhaseNone; p <= PhaseLoop; p++ {
		if !seen[p] {
			t.Errorf("Phases table missing %v", p)
		}
	}
}
