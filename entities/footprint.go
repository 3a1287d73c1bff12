package entities

import "github.com/vxm/isotopeboat/geometry"

// Footprint is the finite set of cells an entity occupies.
type Footprint map[geometry.Point]struct{}

// NewFootprint builds a Footprint from a list of points.
func NewFootprint(points ...geometry.Point) Footprint {
	fp := make(Footprint, len(points))
	for _, p := range points {
		fp[p] = struct{}{}
	}
	return fp
}

// Intersects reports whether fp and other share any cell.
func (fp Footprint) Intersects(other Footprint) bool {
	small, big := fp, other
	if len(big) < len(small) {
		small, big = big, small
	}
	for p := range small {
		if _, ok := big[p]; ok {
			return true
		}
	}
	return false
}

// Union returns a new Footprint containing every cell of fp and other.
func (fp Footprint) Union(other Footprint) Footprint {
	out := make(Footprint, len(fp)+len(other))
	for p := range fp {
		out[p] = struct{}{}
	}
	for p := range other {
		out[p] = struct{}{}
	}
	return out
}

// SubsetOf reports whether every cell of fp lies within board.
func (fp Footprint) SubsetOf(board Rectangle) bool {
	for p := range fp {
		if p.X < 0 || p.X >= board.Width || p.Y < 0 || p.Y >= board.Height {
			return false
		}
	}
	return true
}
