package entities

import "github.com/vxm/isotopeboat/geometry"

// RadiationSource is a point emitter whose field decays linearly with
// Manhattan distance. Rads may be negative; callers must not clamp.
type RadiationSource struct {
	Location     geometry.Point
	Magnitude    int
	DecayFactor  int
}

// Rads returns the radiation level at p: Magnitude - DecayFactor*manhattan(Location, p).
func (r RadiationSource) Rads(p geometry.Point) int {
	return r.Magnitude - r.DecayFactor*geometry.Manhattan(r.Location, p)
}
