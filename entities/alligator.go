package entities

import "github.com/vxm/isotopeboat/geometry"

// AlligatorLength is the fixed length of every alligator.
const AlligatorLength = 3

// Alligator is a mobile obstacle the solver may reposition.
type Alligator struct {
	Index int
	Pose  geometry.Pose
}

// Footprint returns the three cells the alligator currently occupies.
func (a Alligator) Footprint() Footprint {
	return NewFootprint(geometry.RayCells(a.Pose, AlligatorLength)...)
}

// LegalActions returns [Forward, Backward] with Backward's display
// direction tagged as the reverse of the current facing.
func (a Alligator) LegalActions() []Action {
	return []Action{
		{Kind: KindAlligator, Index: a.Index, Move: MoveForward, DisplayDir: a.Pose.Facing, HasDisplay: true},
		{Kind: KindAlligator, Index: a.Index, Move: MoveBackward, DisplayDir: geometry.Reverse(a.Pose.Facing), HasDisplay: true},
	}
}

// Forward translates the alligator one cell along its facing.
func (a Alligator) Forward() Alligator {
	a.Pose = animalForward(a.Pose)
	return a
}

// Backward translates the alligator one cell opposite its facing,
// leaving the facing direction itself unchanged.
func (a Alligator) Backward() Alligator {
	a.Pose = animalBackward(a.Pose)
	return a
}
