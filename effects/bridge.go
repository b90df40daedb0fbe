package effects

import (
	"github.com/arclight-dev/mindmesh/cognition"
	"github.com/arclight-dev/mindmesh/vmath"
)

// Escalation spark burst overrides: bigger and longer than the default so a
// human hand-off reads as an alarm, not a notification.
const (
	EscalationSparkDuration = 2.0
	EscalationSparkRadius   = 10.0
)

// UncertaintyAmplitudeScale converts a clamped uncertainty level into
// turbulence noise amplitude.
const UncertaintyAmplitudeScale = 1.5

// Bridge translates semantic cognition events into effect emissions on a
// borrowed Manager. It is stateless and keeps no clock; callers thread the
// event position and current time through Dispatch.
type Bridge struct {
	manager *Manager
}

// NewBridge returns a bridge dispatching into m. The bridge does not own
// the manager.
func NewBridge(m *Manager) *Bridge {
	return &Bridge{manager: m}
}

// Dispatch emits the effects mapped to ev, anchored at pos. now is the
// caller's clock in seconds, 0 when unused.
func (b *Bridge) Dispatch(ev cognition.Event, pos vmath.Vec3F, now float64) {
	switch e := ev.(type) {
	case cognition.SparkReceived:
		// Incoming work: sparks plus a ground swell at the same anchor
		b.manager.Emit(NewSparkBurst(0, 0), pos, now, nil)
		b.manager.Emit(NewHeightPulse(0, 0, 0), pos, now, nil)

	case cognition.PhaseTransition:
		// The destination phase picks the ramp; where the agent came from
		// does not matter
		b.manager.Emit(NewColorWash(e.To, 0), pos, now, nil)

	case cognition.UncertaintySpike:
		// Clamp BEFORE scaling: the amplitude ceiling is 1.5, and a level
		// of 2.0 yields exactly 1.5. Matches the observed contract; do not
		// reorder.
		// Struct literal, not the constructor: a zero amplitude must stay
		// zero instead of picking up the default.
		amplitude := UncertaintyAmplitudeScale * vmath.Clamp01(e.Level)
		b.manager.Emit(Turbulence{
			NoiseAmplitude: amplitude,
			Duration:       DefaultTurbulenceDuration,
		}, pos, now, nil)

	case cognition.TaskCompleted:
		b.manager.Emit(NewConfetti(0), pos, now, nil)

	case cognition.HumanEscalation:
		b.manager.Emit(NewSparkBurst(EscalationSparkRadius, EscalationSparkDuration), pos, now, nil)
	}
}
