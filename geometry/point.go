// Package geometry provides the cartesian primitives the rest of the
// solver is built on: points, cardinal directions, oriented poses, and
// ray expansion. Nothing here knows about boats, boards, or radiation.
package geometry

import "fmt"

// Point is an integer cartesian coordinate. Immutable, hashable,
// equality by coordinates.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("%d %d", p.X, p.Y)
}

// Manhattan returns the L1 distance between a and b.
func Manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
