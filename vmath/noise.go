package vmath

import (
	"math"
)

// hash2 folds 2D integer coordinates into a pseudo-random float in [0,1).
// Deterministic across runs, no table storage.
func hash2(ix, iz int64) float64 {
	h := uint64(ix)*0x9e3779b97f4a7c15 ^ uint64(iz)*0xc2b2ae3d27d4eb4f
	h ^= h >> 29
	h *= 0xbf58476d1ce4e5b9
	h ^= h >> 32
	return float64(h&0xfffff) / float64(1<<20)
}

// ValueNoise2 is smooth value noise over the X/Z plane in [0,1].
// Used to drive turbulence jitter; cheap enough to sample per cell per frame.
func ValueNoise2(x, z float64) float64 {
	fx, fz := math.Floor(x), math.Floor(z)
	ix, iz := int64(fx), int64(fz)
	tx, tz := x-fx, z-fz

	// Smooth the lattice weights
	sx := tx * tx * (3 - 2*tx)
	sz := tz * tz * (3 - 2*tz)

	n00 := hash2(ix, iz)
	n10 := hash2(ix+1, iz)
	n01 := hash2(ix, iz+1)
	n11 := hash2(ix+1, iz+1)

	nx0 := Lerp(n00, n10, sx)
	nx1 := Lerp(n01, n11, sx)
	return Lerp(nx0, nx1, sz)
}
