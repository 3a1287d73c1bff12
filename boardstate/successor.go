package boardstate

import (
	"github.com/pkg/errors"

	"github.com/vxm/isotopeboat/entities"
	"github.com/vxm/isotopeboat/errs"
)

// ApplyAction computes the successor of s under a, returning
// (successor, true) if the action is legal or the zero value and
// false otherwise. ApplyAction has no hidden state: legality depends
// only on s and a.
func ApplyAction(s BoardState, a entities.Action) (BoardState, bool) {
	switch a.Kind {
	case entities.KindBoat:
		return applyBoatAction(s, a)
	case entities.KindAlligator:
		return applyAlligatorAction(s, a)
	case entities.KindTurtle:
		return applyTurtleAction(s, a)
	default:
		panic(errors.Wrap(errs.ErrInternalInvariant, "boardstate: unrecognized object kind"))
	}
}

func applyBoatAction(s BoardState, a entities.Action) (BoardState, bool) {
	if a.Index != s.Boat.Index {
		return BoardState{}, false
	}

	var testFootprint entities.Footprint
	var moved entities.Boat

	switch a.Move {
	case entities.MoveForward:
		moved = s.Boat.Forward()
		testFootprint = moved.Footprint()
	case entities.MoveClockwise:
		result := s.Boat.Clockwise()
		moved = result.Rotated
		testFootprint = moved.Footprint().Union(entities.NewFootprint(result.Swept[0], result.Swept[1]))
	case entities.MoveCounterClockwise:
		result := s.Boat.CounterClockwise()
		moved = result.Rotated
		testFootprint = moved.Footprint().Union(entities.NewFootprint(result.Swept[0], result.Swept[1]))
	default:
		panic(errors.Wrap(errs.ErrInternalInvariant, "boardstate: unrecognized boat action"))
	}

	if !testFootprint.SubsetOf(s.Board) {
		return BoardState{}, false
	}
	obstacles := s.obstacleFootprint(entities.KindBoat, a.Index)
	if testFootprint.Intersects(obstacles) {
		return BoardState{}, false
	}

	next := s
	next.Boat = moved
	return next, true
}

func applyAlligatorAction(s BoardState, a entities.Action) (BoardState, bool) {
	if a.Index < 0 || a.Index >= len(s.Alligators) {
		return BoardState{}, false
	}

	var moved entities.Alligator
	switch a.Move {
	case entities.MoveForward:
		moved = s.Alligators[a.Index].Forward()
	case entities.MoveBackward:
		moved = s.Alligators[a.Index].Backward()
	default:
		panic(errors.Wrap(errs.ErrInternalInvariant, "boardstate: unrecognized alligator action"))
	}

	testFootprint := moved.Footprint()
	if !testFootprint.SubsetOf(s.Board) {
		return BoardState{}, false
	}
	obstacles := s.obstacleFootprint(entities.KindAlligator, a.Index)
	if testFootprint.Intersects(obstacles) {
		return BoardState{}, false
	}

	newAlligators := make([]entities.Alligator, len(s.Alligators))
	copy(newAlligators, s.Alligators)
	newAlligators[a.Index] = moved

	next := s
	next.Alligators = newAlligators
	return next, true
}

func applyTurtleAction(s BoardState, a entities.Action) (BoardState, bool) {
	if a.Index < 0 || a.Index >= len(s.Turtles) {
		return BoardState{}, false
	}

	var moved entities.Turtle
	switch a.Move {
	case entities.MoveForward:
		moved = s.Turtles[a.Index].Forward()
	case entities.MoveBackward:
		moved = s.Turtles[a.Index].Backward()
	default:
		panic(errors.Wrap(errs.ErrInternalInvariant, "boardstate: unrecognized turtle action"))
	}

	testFootprint := moved.Footprint()
	if !testFootprint.SubsetOf(s.Board) {
		return BoardState{}, false
	}
	obstacles := s.obstacleFootprint(entities.KindTurtle, a.Index)
	if testFootprint.Intersects(obstacles) {
		return BoardState{}, false
	}

	newTurtles := make([]entities.Turtle, len(s.Turtles))
	copy(newTurtles, s.Turtles)
	newTurtles[a.Index] = moved

	next := s
	next.Turtles = newTurtles
	return next, true
}
