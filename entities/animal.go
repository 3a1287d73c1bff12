package entities

import "github.com/vxm/isotopeboat/geometry"

// animalForward advances a pose one cell in its facing direction,
// leaving the facing unchanged. Shared by Alligator and Turtle, whose
// only difference is their fixed length.
func animalForward(pose geometry.Pose) geometry.Pose {
	pose.Anchor = geometry.RayCells(pose, 2)[1]
	return pose
}

// animalBackward reverses the pose, advances it forward, then
// restores the original facing. This reuses the forward logic exactly
// as the move is a translation opposite the facing direction with the
// facing itself left untouched — a Backward move is never considered
// to have changed direction.
func animalBackward(pose geometry.Pose) geometry.Pose {
	original := pose.Facing
	pose.Facing = geometry.Reverse(pose.Facing)
	pose = animalForward(pose)
	pose.Facing = original
	return pose
}
