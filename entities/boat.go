package entities

import "github.com/vxm/isotopeboat/geometry"

// BoatLength is the fixed length of the single boat.
const BoatLength = 2

// Boat is the single piece the solver must steer to the goal. Index
// is always 0 — there is exactly one boat per spec.
type Boat struct {
	Index int
	Pose  geometry.Pose
}

// Footprint returns the two cells the boat currently occupies.
func (b Boat) Footprint() Footprint {
	return NewFootprint(geometry.RayCells(b.Pose, BoatLength)...)
}

// Front returns the boat's leading cell.
func (b Boat) Front() geometry.Point {
	return geometry.RayCells(b.Pose, BoatLength)[BoatLength-1]
}

// LegalActions returns the boat's three candidate moves in the fixed
// order [Forward, CounterClockwise, Clockwise].
func (b Boat) LegalActions() []Action {
	return []Action{
		{Kind: KindBoat, Index: b.Index, Move: MoveForward, DisplayDir: b.Pose.Facing, HasDisplay: true},
		{Kind: KindBoat, Index: b.Index, Move: MoveCounterClockwise},
		{Kind: KindBoat, Index: b.Index, Move: MoveClockwise},
	}
}

// Forward translates the boat's anchor one cell in its facing
// direction. It does not validate board bounds or collisions — that
// is boardstate.ApplyAction's job.
func (b Boat) Forward() Boat {
	cells := geometry.RayCells(b.Pose, BoatLength)
	b.Pose.Anchor = cells[1]
	return b
}

// RotationResult is the outcome of rotating the boat in place: the new
// pose and the two swept cells (newFront.X, oldFront.Y) and
// (oldFront.X, newFront.Y), both of which must be clear for the
// rotation to be legal. One of the two is always the anchor itself;
// the other is the cell diagonal to the anchor that the front passes
// through.
type RotationResult struct {
	Rotated  Boat
	Swept    [2]geometry.Point
}

// rotate turns the boat clockwise or counter-clockwise around its
// anchor. oldFront/newFront give the swept cells.
func (b Boat) rotate(newFacing geometry.Direction) RotationResult {
	oldFront := b.Front()
	rotated := b
	rotated.Pose.Facing = newFacing
	newFront := rotated.Front()
	return RotationResult{
		Rotated: rotated,
		Swept: [2]geometry.Point{
			{X: newFront.X, Y: oldFront.Y},
			{X: oldFront.X, Y: newFront.Y},
		},
	}
}

// Clockwise rotates the boat 90 degrees clockwise in place.
func (b Boat) Clockwise() RotationResult {
	return b.rotate(geometry.Clockwise(b.Pose.Facing))
}

// CounterClockwise rotates the boat 90 degrees counter-clockwise in place.
func (b Boat) CounterClockwise() RotationResult {
	return b.rotate(geometry.CounterClockwise(b.Pose.Facing))
}
