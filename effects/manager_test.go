package effects

import (
	"math"
	"testing"

	"github.com/arclight-dev/mindmesh/vmath"
)

func TestEmitAppendsInOrder(t *testing.T) {
	m := NewManager()
	m.Emit(NewSparkBurst(0, 0), vmath.Vec3F{X: 1}, 0, nil)
	m.Emit(NewConfetti(0), vmath.Vec3F{X: 2}, 0, nil)
	m.Emit(NewTurbulence(0, 0), vmath.Vec3F{X: 3}, 0, nil)

	if m.ActiveCount() != 3 {
		t.Fatalf("expected 3 active instances, got %d", m.ActiveCount())
	}

	want := []string{NameSparkBurst, NameConfetti, NameTurbulence}
	for i, inst := range m.Instances() {
		if inst.Effect.Name() != want[i] {
			t.Errorf("instance %d: expected %s, got %s", i, want[i], inst.Effect.Name())
		}
	}
}

func TestUpdateAccumulatesAge(t *testing.T) {
	tests := []struct {
		name   string
		deltas []float64
		want   float64
	}{
		{"Single step", []float64{0.25}, 0.25},
		{"Many small steps", []float64{0.1, 0.1, 0.1, 0.1}, 0.4},
		{"Zero deltas are no-ops", []float64{0, 0.5, 0}, 0.5},
		{"Uneven steps", []float64{0.016, 0.033, 0.2}, 0.249},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager()
			// Long duration so nothing expires mid-test
			m.Emit(NewSparkBurst(0, 100), vmath.Vec3F{}, 0, nil)

			for _, dt := range tt.deltas {
				m.Update(dt)
			}

			inst := m.Instances()[0]
			if math.Abs(inst.Age-tt.want) > 1e-9 {
				t.Errorf("expected age %v, got %v", tt.want, inst.Age)
			}
		})
	}
}

func TestUpdateEvictsOnExactExpiryTick(t *testing.T) {
	m := NewManager()
	m.Emit(NewSparkBurst(0, 1.5), vmath.Vec3F{}, 0, nil)

	// Present strictly before the expiry tick
	m.Update(0.5)
	if m.ActiveCount() != 1 {
		t.Fatalf("expected instance alive at age 0.5, count %d", m.ActiveCount())
	}
	m.Update(0.5)
	if m.ActiveCount() != 1 {
		t.Fatalf("expected instance alive at age 1.0, count %d", m.ActiveCount())
	}

	// age reaches exactly 1.5 here: expiry is >=, so this update removes it
	m.Update(0.5)
	if m.ActiveCount() != 0 {
		t.Errorf("expected eviction at exact duration, count %d", m.ActiveCount())
	}
}

func TestUpdatePreservesSurvivorOrder(t *testing.T) {
	m := NewManager()
	m.Emit(NewSparkBurst(0, 0.2), vmath.Vec3F{}, 0, nil) // Dies first
	m.Emit(NewSparkBurst(0, 5), vmath.Vec3F{X: 1}, 0, nil)
	m.Emit(NewConfetti(0.2), vmath.Vec3F{}, 0, nil) // Dies first
	m.Emit(NewTurbulence(0, 5), vmath.Vec3F{X: 2}, 0, nil)

	m.Update(0.3)

	instances := m.Instances()
	if len(instances) != 2 {
		t.Fatalf("expected 2 survivors, got %d", len(instances))
	}
	if instances[0].Effect.Name() != NameSparkBurst || instances[0].Pos.X != 1 {
		t.Errorf("first survivor wrong: %s at %v", instances[0].Effect.Name(), instances[0].Pos)
	}
	if instances[1].Effect.Name() != NameTurbulence || instances[1].Pos.X != 2 {
		t.Errorf("second survivor wrong: %s at %v", instances[1].Effect.Name(), instances[1].Pos)
	}
}

func TestInfluenceFarAwayIsCanonicalNone(t *testing.T) {
	m := NewManager()
	m.Emit(NewSparkBurst(3, 0), vmath.Vec3F{}, 0, nil)
	m.Emit(NewHeightPulse(5, 0, 0), vmath.Vec3F{X: 2, Z: 2}, 0, nil)
	m.Emit(NewConfetti(0), vmath.Vec3F{X: -3}, 0, nil)

	// Beyond every configured radius
	in := m.InfluenceAt(100, 100)
	if !in.IsNone() {
		t.Errorf("expected canonical None far from all instances, got %+v", in)
	}
	if in != None {
		t.Errorf("expected identity-comparable None value")
	}
}

func TestInfluenceSuperposition(t *testing.T) {
	single := NewManager()
	single.Emit(NewHeightPulse(5, 2, 2), vmath.Vec3F{}, 0, nil)
	single.Update(1) // Mid-life, peak envelope

	double := NewManager()
	double.Emit(NewHeightPulse(5, 2, 2), vmath.Vec3F{}, 0, nil)
	double.Emit(NewHeightPulse(5, 2, 2), vmath.Vec3F{X: 1}, 0, nil)
	double.Update(1)

	one := single.InfluenceAt(0.5, 0)
	two := double.InfluenceAt(0.5, 0)

	if one.Height <= 0 {
		t.Fatalf("expected positive single contribution, got %v", one.Height)
	}
	if two.Height < one.Height {
		t.Errorf("superposition must not be less than a single contribution: %v < %v",
			two.Height, one.Height)
	}
}

func TestMetadataIntensitySuppression(t *testing.T) {
	m := NewManager()
	m.Emit(NewSparkBurst(0, 0), vmath.Vec3F{}, 0, Metadata{MetaIntensity: 0})

	// Even at distance zero a suppressed instance contributes nothing
	if in := m.InfluenceAt(0, 0); !in.IsNone() {
		t.Errorf("intensity 0 must suppress entirely, got %+v", in)
	}

	// An identical instance without the key contributes
	m.Emit(NewSparkBurst(0, 0), vmath.Vec3F{}, 0, nil)
	if in := m.InfluenceAt(0, 0); in.Intensity <= 0 {
		t.Errorf("expected nonzero contribution without intensity key, got %+v", in)
	}
}

func TestMetadataIntensityScales(t *testing.T) {
	base := NewManager()
	base.Emit(NewSparkBurst(0, 0), vmath.Vec3F{}, 0, nil)

	boosted := NewManager()
	boosted.Emit(NewSparkBurst(0, 0), vmath.Vec3F{}, 0, Metadata{MetaIntensity: 2})

	a := base.InfluenceAt(0, 0).Intensity
	b := boosted.InfluenceAt(0, 0).Intensity
	if math.Abs(b-2*a) > 1e-9 {
		t.Errorf("intensity 2 should double the contribution: base %v, boosted %v", a, b)
	}
}

func TestMetadataDurationScale(t *testing.T) {
	tests := []struct {
		name    string
		scale   float64
		aliveAt []float64 // Cumulative updates where the instance survives
		deadAt  float64   // Final update after which it is gone
	}{
		// Base duration 1.5s: x2 expires at 3.0, x0.5 at 0.75
		{"Stretched x2", 2.0, []float64{1.4, 1.4}, 0.3},
		{"Compressed x0.5", 0.5, []float64{0.7}, 0.1},
		{"Unit scale matches base", 1.0, []float64{1.4}, 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager()
			m.Emit(NewSparkBurst(0, 1.5), vmath.Vec3F{}, 0, Metadata{MetaDurationScale: tt.scale})

			for _, dt := range tt.aliveAt {
				m.Update(dt)
				if m.ActiveCount() != 1 {
					t.Fatalf("instance expired early at scale %v", tt.scale)
				}
			}
			m.Update(tt.deadAt)
			if m.ActiveCount() != 0 {
				t.Errorf("instance outlived scaled duration %v", tt.scale)
			}
		})
	}
}

func TestEmitCopiesMetadata(t *testing.T) {
	m := NewManager()
	meta := Metadata{MetaIntensity: 1}
	m.Emit(NewSparkBurst(0, 0), vmath.Vec3F{}, 0, meta)

	// Caller-side mutation after Emit must not reach the instance
	meta[MetaIntensity] = 0

	if in := m.InfluenceAt(0, 0); in.IsNone() {
		t.Errorf("instance metadata aliased to caller map")
	}
}

func TestClear(t *testing.T) {
	m := NewManager()
	for i := 0; i < 5; i++ {
		m.Emit(NewConfetti(0), vmath.Vec3F{X: float64(i)}, 0, nil)
	}
	m.Clear()
	if m.ActiveCount() != 0 {
		t.Errorf("expected empty registry after Clear, count %d", m.ActiveCount())
	}
	if in := m.InfluenceAt(0, 0); !in.IsNone() {
		t.Errorf("expected None after Clear, got %+v", in)
	}
}

func TestInfluenceIgnoresHeightAxis(t *testing.T) {
	// Anchor high above the plane: horizontal distance is still zero, so
	// the query must see the full contribution
	m := NewManager()
	m.Emit(NewSparkBurst(0, 0), vmath.Vec3F{Y: 50}, 0, nil)

	grounded := NewManager()
	grounded.Emit(NewSparkBurst(0, 0), vmath.Vec3F{}, 0, nil)

	a := m.InfluenceAt(0, 0)
	b := grounded.InfluenceAt(0, 0)
	if a != b {
		t.Errorf("height of anchor must not affect influence: %+v vs %+v", a, b)
	}
}

func TestActivatedAtRecordsCallerClock(t *testing.T) {
	m := NewManager()
	m.Emit(NewSparkBurst(0, 0), vmath.Vec3F{}, 12.5, nil)

	inst := m.Instances()[0]
	if inst.ActivatedAt != 12.5 {
		t.Errorf("expected activation time 12.5, got %v", inst.ActivatedAt)
	}
	if inst.Age != 0 {
		t.Errorf("expected fresh instance age 0, got %v", inst.Age)
	}
}
