// Package boardstate implements the immutable board snapshot, its
// successor function, and the neighbour generator the search
// algorithms drive.
package boardstate

import (
	"hash/fnv"
	"sort"

	"github.com/vxm/isotopeboat/entities"
	"github.com/vxm/isotopeboat/geometry"
)

// BoardState is an immutable tuple of every entity on the board.
// Equality and hashing are over the entire tuple; the ordered
// Alligators/Turtles slices are compared positionally so indices
// remain stable and part of identity, per spec.
type BoardState struct {
	Board      entities.Rectangle
	Rad        entities.RadiationSource
	Boat       entities.Boat
	Goal       geometry.Point
	Alligators []entities.Alligator
	Turtles    []entities.Turtle
	Trees      []geometry.Point
}

// IsGoal reports whether the boat's footprint overlaps the goal cell.
func (s BoardState) IsGoal() bool {
	_, occupied := s.Boat.Footprint()[s.Goal]
	return occupied
}

// obstacleFootprint returns the union of every entity's footprint
// except the one identified by (kind, index) — the set a moving
// entity must not collide with.
func (s BoardState) obstacleFootprint(skipKind entities.ObjectKind, skipIndex int) entities.Footprint {
	out := entities.Footprint{}
	if skipKind != entities.KindBoat {
		for p := range s.Boat.Footprint() {
			out[p] = struct{}{}
		}
	}
	for _, a := range s.Alligators {
		if skipKind == entities.KindAlligator && a.Index == skipIndex {
			continue
		}
		for p := range a.Footprint() {
			out[p] = struct{}{}
		}
	}
	for _, tu := range s.Turtles {
		if skipKind == entities.KindTurtle && tu.Index == skipIndex {
			continue
		}
		for p := range tu.Footprint() {
			out[p] = struct{}{}
		}
	}
	for _, t := range s.Trees {
		out[t] = struct{}{}
	}
	return out
}

// Hash returns a 64-bit FNV-1a digest of the full state tuple, used
// to key the explored/visited sets. Hash collisions are resolved by
// Equal on the full tuple.
func (s BoardState) Hash() uint64 {
	h := fnv.New64a()
	write := func(vals ...int) {
		buf := make([]byte, 0, len(vals)*8)
		for _, v := range vals {
			buf = append(buf,
				byte(v), byte(v>>8), byte(v>>16), byte(v>>24),
				byte(v>>32), byte(v>>40), byte(v>>48), byte(v>>56))
		}
		_, _ = h.Write(buf)
	}

	write(s.Board.Width, s.Board.Height)
	write(s.Rad.Location.X, s.Rad.Location.Y, s.Rad.Magnitude, s.Rad.DecayFactor)
	write(s.Boat.Pose.Anchor.X, s.Boat.Pose.Anchor.Y, int(s.Boat.Pose.Facing))
	write(s.Goal.X, s.Goal.Y)
	for _, a := range s.Alligators {
		write(a.Pose.Anchor.X, a.Pose.Anchor.Y, int(a.Pose.Facing))
	}
	for _, tu := range s.Turtles {
		write(tu.Pose.Anchor.X, tu.Pose.Anchor.Y, int(tu.Pose.Facing))
	}
	trees := append([]geometry.Point(nil), s.Trees...)
	sort.Slice(trees, func(i, j int) bool {
		if trees[i].X != trees[j].X {
			return trees[i].X < trees[j].X
		}
		return trees[i].Y < trees[j].Y
	})
	for _, t := range trees {
		write(t.X, t.Y)
	}
	return h.Sum64()
}

// Equal compares two states field by field, positionally over the
// Alligators/Turtles slices, per spec.
func (s BoardState) Equal(other BoardState) bool {
	if s.Board != other.Board || s.Rad != other.Rad || s.Boat != other.Boat || s.Goal != other.Goal {
		return false
	}
	if len(s.Alligators) != len(other.Alligators) || len(s.Turtles) != len(other.Turtles) || len(s.Trees) != len(other.Trees) {
		return false
	}
	for i := range s.Alligators {
		if s.Alligators[i] != other.Alligators[i] {
			return false
		}
	}
	for i := range s.Turtles {
		if s.Turtles[i] != other.Turtles[i] {
			return false
		}
	}
	treesA := append([]geometry.Point(nil), s.Trees...)
	treesB := append([]geometry.Point(nil), other.Trees...)
	sortPoints := func(ps []geometry.Point) {
		sort.Slice(ps, func(i, j int) bool {
			if ps[i].X != ps[j].X {
				return ps[i].X < ps[j].X
			}
			return ps[i].Y < ps[j].Y
		})
	}
	sortPoints(treesA)
	sortPoints(treesB)
	for i := range treesA {
		if treesA[i] != treesB[i] {
			return false
		}
	}
	return true
}
