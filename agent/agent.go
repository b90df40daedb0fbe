package agent

import (
	"github.com/google/uuid"

	"github.com/arclight-dev/mindmesh/cognition"
	"github.com/arclight-dev/mindmesh/vmath"
)

// Agent is the visual-state record for one agent in the field. It is plain
// data: the sim feed mutates it, the renderer reads it, nothing here has
// behavior beyond lookups.
type Agent struct {
	ID          uuid.UUID
	Name        string
	Pos         vmath.Vec3F
	Phase       cognition.Phase
	Uncertainty float64 // [0,1], drives the halo
	Activity    float64 // [0,1], recent work level, drives brightness

	// Links are flow targets: agents this one is currently feeding work to
	Links []uuid.UUID
}

// Working reports whether the agent is in an active cognitive phase.
func (a *Agent) Working() bool {
	return a.Phase != cognition.PhaseNone
}
