package cost

import (
	"github.com/vxm/isotopeboat/boardstate"
	"github.com/vxm/isotopeboat/entities"
	"github.com/vxm/isotopeboat/geometry"
)

// obstaclePoints returns every cell occupied by an alligator, turtle,
// or tree in s.
func obstaclePoints(s boardstate.BoardState) entities.Footprint {
	out := entities.Footprint{}
	for _, a := range s.Alligators {
		for p := range a.Footprint() {
			out[p] = struct{}{}
		}
	}
	for _, t := range s.Turtles {
		for p := range t.Footprint() {
			out[p] = struct{}{}
		}
	}
	for _, t := range s.Trees {
		out[t] = struct{}{}
	}
	return out
}

// boundingBox returns the axis-aligned min/max over the given points.
func boundingBox(points ...geometry.Point) (minX, maxX, minY, maxY int) {
	minX, maxX = points[0].X, points[0].X
	minY, maxY = points[0].Y, points[0].Y
	for _, p := range points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return
}

// obstaclesInBox counts obstacle cells within the inclusive
// axis-aligned box [minX,maxX] x [minY,maxY].
func obstaclesInBox(obstacles entities.Footprint, minX, maxX, minY, maxY int) int {
	count := 0
	for p := range obstacles {
		if p.X >= minX && p.X <= maxX && p.Y >= minY && p.Y <= maxY {
			count++
		}
	}
	return count
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Greedy is spec's inadmissible-but-informative heuristic:
// min(manhattan(anchor,goal), manhattan(front,goal)) + obstacles in
// the boat/goal bounding box + an orientation penalty rewarding the
// boat facing the dominant goal axis.
func Greedy(initial boardstate.BoardState) Heuristic {
	return func(s boardstate.BoardState) int {
		if s.IsGoal() {
			return 0
		}
		boatPos := s.Boat.Pose.Anchor
		boatFront := s.Boat.Front()
		goal := s.Goal

		goalDist := min(geometry.Manhattan(boatPos, goal), geometry.Manhattan(boatFront, goal))

		minX, maxX, minY, maxY := boundingBox(boatPos, boatFront, goal)
		obstacleCost := obstaclesInBox(obstaclePoints(s), minX, maxX, minY, maxY)

		var orientationCost int
		if (maxX - minX) > (maxY - minY) {
			orientationCost = axisPenalty(s.Boat.Pose.Facing, map[geometry.Direction]bool{
				geometry.Left:  minX == goal.X,
				geometry.Right: maxX == goal.X,
			}, map[geometry.Direction]int{geometry.Up: 1, geometry.Down: 1})
		} else {
			orientationCost = axisPenalty(s.Boat.Pose.Facing, map[geometry.Direction]bool{
				geometry.Up:   minY == goal.Y,
				geometry.Down: maxY == goal.Y,
			}, map[geometry.Direction]int{geometry.Left: 1, geometry.Right: 1})
		}

		return goalDist + obstacleCost + orientationCost
	}
}

// axisPenalty returns 0 when facing's entry in aligned is true, 4 when
// aligned explicitly says false, or the flat penalty from minorAxis
// for directions off the dominant axis.
func axisPenalty(facing geometry.Direction, aligned map[geometry.Direction]bool, minorAxis map[geometry.Direction]int) int {
	if isAligned, ok := aligned[facing]; ok {
		if isAligned {
			return 0
		}
		return 4
	}
	return minorAxis[facing]
}

// Smart is an inadmissible heuristic usable only with greedy best-first
// search: Greedy's distance and obstacle terms plus the
// goalFacingPenalty orientation term Admissible uses, scaled by a
// per-call minimum radiation cost over the boat/goal bounding box,
// rather than a fixed per-search constant.
func Smart(initial boardstate.BoardState) Heuristic {
	goal := initial.Goal
	return func(s boardstate.BoardState) int {
		if s.IsGoal() {
			return 0
		}
		boatPos := s.Boat.Pose.Anchor
		boatFront := s.Boat.Front()

		goalDist := min(geometry.Manhattan(boatPos, goal), geometry.Manhattan(boatFront, goal))

		minX, maxX, minY, maxY := boundingBox(boatPos, boatFront, goal)
		obstacleCost := obstaclesInBox(obstaclePoints(s), minX, maxX, minY, maxY)
		orientationCost := goalFacingPenalty(s.Boat.Pose.Facing, minX, maxX, minY, maxY, goal)

		minRadCost := 2*minRadsInBox(s, minX, maxX, minY, maxY) + s.Rad.DecayFactor

		return (goalDist + obstacleCost + orientationCost) * minRadCost
	}
}

func minRadsInBox(s boardstate.BoardState, minX, maxX, minY, maxY int) int {
	best := s.Rad.Rads(geometry.Point{X: minX, Y: minY})
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			if r := s.Rad.Rads(geometry.Point{X: x, Y: y}); r < best {
				best = r
			}
		}
	}
	return best
}

// goalFacingPenalty is 1 when the goal lies on the box edge opposite
// facing (goal at maxX penalises Left, minX Right, maxY Up, minY Down)
// and 0 otherwise, used by Smart and Admissible.
func goalFacingPenalty(facing geometry.Direction, minX, maxX, minY, maxY int, goal geometry.Point) int {
	penalty := map[geometry.Direction]int{geometry.Left: 0, geometry.Right: 0, geometry.Up: 0, geometry.Down: 0}
	if maxX == goal.X {
		penalty[geometry.Left] = 1
	}
	if minX == goal.X {
		penalty[geometry.Right] = 1
	}
	if maxY == goal.Y {
		penalty[geometry.Up] = 1
	}
	if minY == goal.Y {
		penalty[geometry.Down] = 1
	}
	return penalty[facing]
}

// terminalClearance reports whether the boat is one legal move away
// from a goal-covering position: orthogonally in line with a clear
// goal, or diagonally adjacent with both rotation-swept cells and the
// goal itself clear. This is the tightest bound Consistent/Admissible
// can return without risking inadmissibility.
func terminalClearance(s boardstate.BoardState) bool {
	boatPos := s.Boat.Pose.Anchor
	boatFront := s.Boat.Front()
	goal := s.Goal
	obstacles := obstaclePoints(s)
	_, goalBlocked := obstacles[goal]
	if goalBlocked {
		return false
	}

	frontDist := geometry.Manhattan(boatFront, goal)
	if frontDist == 1 && (boatPos.X == goal.X || boatPos.Y == goal.Y) {
		return true
	}

	backDist := geometry.Manhattan(boatPos, goal)
	if backDist == 1 && boatFront.X != goal.X && boatFront.Y != goal.Y {
		p1 := geometry.Point{X: goal.X, Y: boatFront.Y}
		p2 := geometry.Point{X: boatFront.X, Y: goal.Y}
		_, p1Blocked := obstacles[p1]
		_, p2Blocked := obstacles[p2]
		if !p1Blocked && !p2Blocked {
			return true
		}
	}
	return false
}

// minRadCostOverBoard computes 2*min(rads over every board cell) +
// decayFactor once from the initial state, the scale factor Consistent
// and Admissible multiply their distance estimate by.
func minRadCostOverBoard(initial boardstate.BoardState) int {
	best := initial.Rad.Rads(geometry.Point{X: 0, Y: 0})
	for x := 0; x < initial.Board.Width; x++ {
		for y := 0; y < initial.Board.Height; y++ {
			if r := initial.Rad.Rads(geometry.Point{X: x, Y: y}); r < best {
				best = r
			}
		}
	}
	return 2*best + initial.Rad.DecayFactor
}

func terminalOrGoalDist(s boardstate.BoardState) (goalDist int, terminal bool) {
	if s.IsGoal() {
		return 0, true
	}
	if terminalClearance(s) {
		return 0, true
	}
	boatPos := s.Boat.Pose.Anchor
	boatFront := s.Boat.Front()
	goal := s.Goal
	return min(geometry.Manhattan(boatPos, goal), geometry.Manhattan(boatFront, goal)), false
}

// Consistent is the tightest admissible heuristic: goalDist *
// minRadCost, with minRadCost computed once over the initial board.
// It returns 0 exactly when the boat is on, or one legal move from, a
// clear goal — required for A* optimality.
func Consistent(initial boardstate.BoardState) Heuristic {
	minRadCost := minRadCostOverBoard(initial)
	return func(s boardstate.BoardState) int {
		goalDist, terminal := terminalOrGoalDist(s)
		if terminal {
			return 0
		}
		return goalDist * minRadCost
	}
}

// Admissible extends Consistent with a small orientation penalty,
// still scaled by the same once-computed minRadCost, so it remains a
// valid (if looser) admissible bound.
func Admissible(initial boardstate.BoardState) Heuristic {
	minRadCost := minRadCostOverBoard(initial)
	return func(s boardstate.BoardState) int {
		goalDist, terminal := terminalOrGoalDist(s)
		if terminal {
			return 0
		}
		boatPos := s.Boat.Pose.Anchor
		boatFront := s.Boat.Front()
		minX, maxX, minY, maxY := boundingBox(boatPos, boatFront, s.Goal)
		orientationCost := goalFacingPenalty(s.Boat.Pose.Facing, minX, maxX, minY, maxY, s.Goal)
		return (goalDist + orientationCost) * minRadCost
	}
}
