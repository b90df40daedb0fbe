package effects

import (
	"github.com/arclight-dev/mindmesh/vmath"
)

// Manager owns the set of currently active effect instances. It is the
// single authority for emission, aging, expiry, and spatial influence
// queries. Insertion order is preserved so iteration is deterministic.
//
// Not safe for concurrent use: the rendering loop owns it. A multi-threaded
// host must serialize Emit/Update/InfluenceAt behind one mutex since queries
// read the same slice Update compacts.
type Manager struct {
	instances []*Instance
}

// NewManager returns an empty effect registry.
func NewManager() *Manager {
	return &Manager{}
}

// Emit activates an effect at a world position. now is the caller's clock
// (seconds); pass 0 when no real time is threaded through. The metadata map
// is copied, never aliased. Emit cannot fail.
func (m *Manager) Emit(effect Description, pos vmath.Vec3F, now float64, meta Metadata) {
	inst := &Instance{
		Effect:      effect,
		Pos:         pos,
		ActivatedAt: now,
	}
	if len(meta) > 0 {
		inst.meta = make(Metadata, len(meta))
		for k, v := range meta {
			inst.meta[k] = v
		}
	}
	m.instances = append(m.instances, inst)
}

// Update advances every instance's age by dt seconds, then removes the ones
// that expired. Survivors keep their relative order. dt = 0 is a no-op aside
// from evicting instances that were already at their limit.
func (m *Manager) Update(dt float64) {
	for _, inst := range m.instances {
		inst.Age += dt
	}

	// Filter in place to avoid reallocating every frame
	kept := m.instances[:0]
	for _, inst := range m.instances {
		if !inst.Expired() {
			kept = append(kept, inst)
		}
	}
	// Release trailing pointers so expired instances can be collected
	for i := len(kept); i < len(m.instances); i++ {
		m.instances[i] = nil
	}
	m.instances = kept
}

// InfluenceAt aggregates the contribution of every active instance at a
// horizontal query point. Contributions superpose linearly per channel;
// overlapping effects stack rather than shadowing each other. Returns the
// canonical None value when nothing contributes.
func (m *Manager) InfluenceAt(x, z float64) Influence {
	total := None
	for _, inst := range m.instances {
		total = total.Add(inst.influenceAt(x, z))
	}
	return total
}

// ActiveCount returns the number of live instances.
func (m *Manager) ActiveCount() int {
	return len(m.instances)
}

// Instances returns a snapshot of the live instances in insertion order,
// for diagnostics and tests. The slice is a copy; the instances are not.
func (m *Manager) Instances() []*Instance {
	out := make([]*Instance, len(m.instances))
	copy(out, m.instances)
	return out
}

// Clear drops every instance unconditionally.
func (m *Manager) Clear() {
	for i := range m.instances {
		m.instances[i] = nil
	}
	m.instances = m.instances[:0]
}
