package geometry

import (
	"github.com/pkg/errors"

	"github.com/vxm/isotopeboat/errs"
)

// Direction is one of the four cardinal headings a Pose can face.
// Down means increasing Y; Up means decreasing Y.
type Direction int

const (
	Down Direction = iota
	Up
	Left
	Right
)

// DisplayChar is the single ASCII letter used in puzzle files and
// result output for a Direction.
func (d Direction) DisplayChar() byte {
	switch d {
	case Down:
		return 'D'
	case Up:
		return 'U'
	case Left:
		return 'L'
	case Right:
		return 'R'
	default:
		panic(errors.Wrap(errs.ErrInternalInvariant, "geometry: unrecognized direction"))
	}
}

// ParseDirection maps a puzzle-file direction letter back to a Direction.
// ok is false for any byte other than D, U, L, R.
func ParseDirection(c byte) (Direction, bool) {
	switch c {
	case 'D':
		return Down, true
	case 'U':
		return Up, true
	case 'L':
		return Left, true
	case 'R':
		return Right, true
	default:
		return 0, false
	}
}

var reverseTable = map[Direction]Direction{
	Down:  Up,
	Up:    Down,
	Left:  Right,
	Right: Left,
}

// Reverse returns the opposite heading.
func Reverse(d Direction) Direction {
	r, ok := reverseTable[d]
	if !ok {
		panic(errors.Wrap(errs.ErrInternalInvariant, "geometry: unrecognized direction"))
	}
	return r
}

var clockwiseTable = map[Direction]Direction{
	Up:    Right,
	Right: Down,
	Down:  Left,
	Left:  Up,
}

// Clockwise returns the heading 90 degrees clockwise from d.
func Clockwise(d Direction) Direction {
	r, ok := clockwiseTable[d]
	if !ok {
		panic(errors.Wrap(errs.ErrInternalInvariant, "geometry: unrecognized direction"))
	}
	return r
}

var counterClockwiseTable = map[Direction]Direction{
	Right: Up,
	Down:  Right,
	Left:  Down,
	Up:    Left,
}

// CounterClockwise returns the heading 90 degrees counter-clockwise from d.
func CounterClockwise(d Direction) Direction {
	r, ok := counterClockwiseTable[d]
	if !ok {
		panic(errors.Wrap(errs.ErrInternalInvariant, "geometry: unrecognized direction"))
	}
	return r
}

// step returns the unit point offset for moving one cell in direction d.
func step(d Direction) Point {
	switch d {
	case Down:
		return Point{0, 1}
	case Up:
		return Point{0, -1}
	case Left:
		return Point{-1, 0}
	case Right:
		return Point{1, 0}
	default:
		panic(errors.Wrap(errs.ErrInternalInvariant, "geometry: unrecognized direction"))
	}
}
