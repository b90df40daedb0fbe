package effects

import (
	"github.com/arclight-dev/mindmesh/vmath"
)

// MetaKey names a per-instance metadata slot. The key set is closed; absent
// keys fall back to documented defaults when read.
type MetaKey uint8

const (
	// MetaIntensity multiplies the base contribution. A present value of
	// exactly 0 is a hard suppression switch, independent of distance.
	MetaIntensity MetaKey = iota

	// MetaHeat carries the emitting agent's heat for renderers that want
	// to color-grade by workload. Not consulted by aggregation.
	MetaHeat

	// MetaDurationScale stretches (>1) or compresses (<1) the effect
	// lifetime. Absent means 1.0.
	MetaDurationScale
)

// Metadata maps metadata keys to numeric values.
type Metadata map[MetaKey]float64

// Instance is one live, time-bounded occurrence of an effect anchored at a
// world position. Created by Manager.Emit; only Manager.Update mutates it,
// and only by advancing Age.
type Instance struct {
	Effect      Description
	Pos         vmath.Vec3F
	ActivatedAt float64 // Emission time in seconds, caller's clock
	Age         float64 // Seconds since emission, monotonically increasing

	// meta is owned by the instance: Emit copies the caller's map so later
	// caller-side mutation cannot reach aggregation
	meta Metadata
}

// Meta reads a metadata slot. ok is false when the key was never set.
func (i *Instance) Meta(key MetaKey) (v float64, ok bool) {
	v, ok = i.meta[key]
	return v, ok
}

// EffectiveDuration is the base duration scaled by MetaDurationScale.
func (i *Instance) EffectiveDuration() float64 {
	scale := 1.0
	if s, ok := i.meta[MetaDurationScale]; ok {
		scale = s
	}
	return i.Effect.BaseDuration() * scale
}

// Expired reports whether the instance has outlived its effective duration.
func (i *Instance) Expired() bool {
	return i.Age >= i.EffectiveDuration()
}

// influenceAt computes this instance's contribution at a horizontal query
// point. Distance is measured on the ground plane only; the anchor's height
// and the query's height never enter the falloff.
func (i *Instance) influenceAt(x, z float64) Influence {
	intensity := 1.0
	if v, ok := i.meta[MetaIntensity]; ok {
		if v == 0 {
			return None
		}
		intensity = v
	}

	dist := vmath.GroundDistance(i.Pos, vmath.Vec3F{X: x, Z: z})
	return i.Effect.influenceAt(i.Age, i.EffectiveDuration(), dist, intensity)
}
