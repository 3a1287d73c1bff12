package entities

import "github.com/vxm/isotopeboat/geometry"

// TurtleLength is the fixed length of every turtle.
const TurtleLength = 2

// Turtle is a mobile obstacle the solver may reposition.
type Turtle struct {
	Index int
	Pose  geometry.Pose
}

// Footprint returns the two cells the turtle currently occupies.
func (t Turtle) Footprint() Footprint {
	return NewFootprint(geometry.RayCells(t.Pose, TurtleLength)...)
}

// LegalActions returns [Forward, Backward] with Backward's display
// direction tagged as the reverse of the current facing.
func (t Turtle) LegalActions() []Action {
	return []Action{
		{Kind: KindTurtle, Index: t.Index, Move: MoveForward, DisplayDir: t.Pose.Facing, HasDisplay: true},
		{Kind: KindTurtle, Index: t.Index, Move: MoveBackward, DisplayDir: geometry.Reverse(t.Pose.Facing), HasDisplay: true},
	}
}

// Forward translates the turtle one cell along its facing.
func (t Turtle) Forward() Turtle {
	t.Pose = animalForward(t.Pose)
	return t
}

// Backward translates the turtle one cell opposite its facing,
// leaving the facing direction itself unchanged.
func (t Turtle) Backward() Turtle {
	t.Pose = animalBackward(t.Pose)
	return t
}
