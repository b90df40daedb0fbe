package cognition

import (
	"github.com/google/uuid"
)

// Event is a semantic cognition event produced by an agent. The variant set
// is closed; each kind carries only its payload, never a world position.
// The dispatcher supplies the agent's current location separately.
//
// This type lives here rather than next to the effect engine so that event
// producers do not depend on the render-side packages (same decoupling as
// the phase enum).
type Event interface {
	// Agent identifies the originating agent.
	Agent() uuid.UUID

	// sealed keeps the variant set closed to this package.
	sealed()
}

// SparkReceived fires when an agent receives a unit of work.
type SparkReceived struct {
	AgentID uuid.UUID
}

// PhaseTransition fires when an agent moves between cognitive phases.
type PhaseTransition struct {
	AgentID uuid.UUID
	From    Phase
	To      Phase
}

// UncertaintySpike fires when an agent's self-reported uncertainty jumps.
// Level is nominally in [0,1]; consumers clamp out-of-range input.
type UncertaintySpike struct {
	AgentID uuid.UUID
	Level   float64
}

// TaskCompleted fires when an agent finishes its current task.
type TaskCompleted struct {
	AgentID uuid.UUID
}

// HumanEscalation fires when an agent hands control to a human operator.
type HumanEscalation struct {
	AgentID uuid.UUID
}

func (e SparkReceived) Agent() uuid.UUID    { return e.AgentID }
func (e PhaseTransition) Agent() uuid.UUID  { return e.AgentID }
func (e UncertaintySpike) Agent() uuid.UUID { return e.AgentID }
func (e TaskCompleted) Agent() uuid.UUID    { return e.AgentID }
func (e HumanEscalation) Agent() uuid.UUID  { return e.AgentID }

func (SparkReceived) sealed()    {}
func (PhaseTransition) sealed()  {}
func (UncertaintySpike) sealed() {}
func (TaskCompleted) sealed()    {}
func (HumanEscalation) sealed()  {}
