package entities

import (
	"github.com/pkg/errors"

	"github.com/vxm/isotopeboat/errs"
	"github.com/vxm/isotopeboat/geometry"
)

// ObjectKind identifies which family of movable a kind/index pair
// refers to.
type ObjectKind int

const (
	KindBoat ObjectKind = iota
	KindAlligator
	KindTurtle
)

// DisplayChar is the puzzle-output letter for an ObjectKind.
func (k ObjectKind) DisplayChar() byte {
	switch k {
	case KindBoat:
		return 'B'
	case KindAlligator:
		return 'A'
	case KindTurtle:
		return 'T'
	default:
		panic(errors.Wrap(errs.ErrInternalInvariant, "entities: unrecognized object kind"))
	}
}

// MoveKind is the family of move a legal action performs.
type MoveKind int

const (
	MoveForward MoveKind = iota
	MoveBackward
	MoveClockwise
	MoveCounterClockwise
)

// DisplayChar is the puzzle-output letter for a MoveKind when the
// action carries no display direction override.
func (m MoveKind) DisplayChar() byte {
	switch m {
	case MoveForward:
		return 'F'
	case MoveBackward:
		return 'B'
	case MoveClockwise:
		return 'C'
	case MoveCounterClockwise:
		return 'N'
	default:
		panic(errors.Wrap(errs.ErrInternalInvariant, "entities: unrecognized move kind"))
	}
}

// Action names a single legal move: which object, which move, and a
// cosmetic display direction. Equality ignores DisplayDir per spec:
// two actions that differ only in display direction are the same move.
type Action struct {
	Kind       ObjectKind
	Index      int
	Move       MoveKind
	DisplayDir geometry.Direction
	HasDisplay bool
}

// Equal compares actions ignoring the cosmetic display direction.
func (a Action) Equal(b Action) bool {
	return a.Kind == b.Kind && a.Index == b.Index && a.Move == b.Move
}

// DisplayChar returns the move letter printed in output: the cardinal
// direction letter if the action carries a display direction,
// otherwise the move-kind letter.
func (a Action) DisplayChar() byte {
	if a.HasDisplay {
		return a.DisplayDir.DisplayChar()
	}
	return a.Move.DisplayChar()
}
