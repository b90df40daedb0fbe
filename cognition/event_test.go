package cognition

import (
	"testing"

	"github.com/google/uuid"
)

func TestEventsCarryAgentIdentity(t *testing.T) {
	id := uuid.New()

	events := []Event{
		SparkReceived{AgentID: id},
		PhaseTransition{AgentID: id, From: PhasePlan, To: PhaseExecute},
		UncertaintySpike{AgentID: id, Level: 0.4},
		TaskCompleted{AgentID: id},
		HumanEscalation{AgentID: id},
	}

	for _, ev := range events {
		if ev.Agent() != id {
			t.Errorf("%T: expected agent %v, got %v", ev, id, ev.Agent())
		}
	}
}
