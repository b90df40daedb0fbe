package sim

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/arclight-dev/mindmesh/agent"
	"github.com/arclight-dev/mindmesh/cognition"
	"github.com/arclight-dev/mindmesh/vmath"
)

// Tuning for the demo feed. Rates are per agent per second.
const (
	sparkRate      = 0.18 // Idle agent picks up work
	spikeRate      = 0.10 // Working agent reports an uncertainty spike
	escalationRate = 0.015
	completeAfter  = 2 // Full cycles before a task can complete

	minPhaseSeconds = 0.8
	maxPhaseSeconds = 2.4

	ringRadius = 14.0
	walkSpeed  = 0.8
)

// agentState is the feed's private per-agent bookkeeping.
type agentState struct {
	phaseLeft float64 // Seconds until the next phase transition
	cycles    int     // Completed perceive..evaluate cycles this task
	heading   float64 // Random-walk direction, radians
}

// Feed is a scripted stochastic producer of cognition events. It owns the
// agent visual-state records and mutates them as the imaginary swarm works;
// the run loop forwards the returned events into the effect bridge. It is
// the "external producer" side of the pipeline and never touches the effect
// registry directly.
//
// Deterministic under a fixed seed: all randomness flows through one rng.
type Feed struct {
	rng    *rand.Rand
	agents []*agent.Agent
	states []agentState
	log    *zap.Logger
}

// NewFeed seeds n agents evenly around a ring.
func NewFeed(n int, seed int64, log *zap.Logger) *Feed {
	if n < 1 {
		n = 1
	}
	if log == nil {
		log = zap.NewNop()
	}
	f := &Feed{
		rng: rand.New(rand.NewSource(seed)),
		log: log,
	}
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		a := &agent.Agent{
			ID:   uuid.New(),
			Name: fmt.Sprintf("agent-%02d", i+1),
			Pos: vmath.Vec3F{
				X: ringRadius * math.Cos(angle),
				Z: ringRadius * math.Sin(angle),
			},
		}
		f.agents = append(f.agents, a)
		f.states = append(f.states, agentState{heading: angle + math.Pi/2})
	}
	return f
}

// Agents returns the live agent records. The renderer reads them in place.
func (f *Feed) Agents() []*agent.Agent {
	return f.agents
}

// Tick advances the swarm by dt seconds and returns the cognition events it
// produced, in agent order.
func (f *Feed) Tick(dt float64) []cognition.Event {
	var events []cognition.Event

	for i, a := range f.agents {
		st := &f.states[i]
		f.wander(a, st, dt)

		// Activity and uncertainty relax toward rest
		a.Activity = math.Max(0, a.Activity-0.35*dt)
		a.Uncertainty = math.Max(0, a.Uncertainty-0.15*dt)

		if !a.Working() {
			if f.roll(sparkRate, dt) {
				events = append(events, f.startTask(a, st)...)
			}
			continue
		}

		events = append(events, f.advanceTask(a, st, dt)...)
	}

	return events
}

// wander drifts an agent along its heading with occasional turns, loosely
// bounded to the ring neighborhood.
func (f *Feed) wander(a *agent.Agent, st *agentState, dt float64) {
	st.heading += (f.rng.Float64() - 0.5) * 1.5 * dt
	a.Pos.X += walkSpeed * dt * math.Cos(st.heading)
	a.Pos.Z += walkSpeed * dt * math.Sin(st.heading)

	// Steer back when straying too far from the center
	if d := vmath.GroundDistance(a.Pos, vmath.Vec3F{}); d > ringRadius*1.4 {
		st.heading = math.Atan2(-a.Pos.Z, -a.Pos.X)
	}
}

func (f *Feed) startTask(a *agent.Agent, st *agentState) []cognition.Event {
	a.Phase = cognition.PhasePerceive
	a.Activity = 1
	st.cycles = 0
	st.phaseLeft = f.phaseDuration()

	// Working agents feed one random peer
	a.Links = nil
	if len(f.agents) > 1 {
		for {
			peer := f.agents[f.rng.Intn(len(f.agents))]
			if peer.ID != a.ID {
				a.Links = []uuid.UUID{peer.ID}
				break
			}
		}
	}

	f.log.Debug("spark received",
		zap.String("agent", a.Name),
	)
	return []cognition.Event{cognition.SparkReceived{AgentID: a.ID}}
}

func (f *Feed) advanceTask(a *agent.Agent, st *agentState, dt float64) []cognition.Event {
	var events []cognition.Event

	if f.roll(spikeRate, dt) {
		level := 0.3 + 0.7*f.rng.Float64()
		a.Uncertainty = vmath.Clamp01(a.Uncertainty + level*0.6)
		events = append(events, cognition.UncertaintySpike{AgentID: a.ID, Level: level})
	}

	// Deep uncertainty occasionally escalates to a human and aborts the task
	if a.Uncertainty > 0.7 && f.roll(escalationRate, dt) {
		a.Phase = cognition.PhaseNone
		a.Links = nil
		f.log.Info("human escalation",
			zap.String("agent", a.Name),
			zap.Float64("uncertainty", a.Uncertainty),
		)
		return append(events, cognition.HumanEscalation{AgentID: a.ID})
	}

	st.phaseLeft -= dt
	if st.phaseLeft > 0 {
		return events
	}

	from := a.Phase
	to := from.Next()

	if from == cognition.PhaseEvaluate {
		st.cycles++
		if st.cycles >= completeAfter && f.rng.Float64() < 0.6 {
			a.Phase = cognition.PhaseNone
			a.Links = nil
			f.log.Debug("task completed",
				zap.String("agent", a.Name),
				zap.Int("cycles", st.cycles),
			)
			return append(events, cognition.TaskCompleted{AgentID: a.ID})
		}
	}

	a.Phase = to
	a.Activity = 1
	st.phaseLeft = f.phaseDuration()
	return append(events, cognition.PhaseTransition{AgentID: a.ID, From: from, To: to})
}

// roll is a Poisson-ish event check: rate events per second over dt.
func (f *Feed) roll(rate, dt float64) bool {
	return f.rng.Float64() < rate*dt
}

func (f *Feed) phaseDuration() float64 {
	return minPhaseSeconds + (maxPhaseSeconds-minPhaseSeconds)*f.rng.Float64()
}
