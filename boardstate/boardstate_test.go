package boardstate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vxm/isotopeboat/boardstate"
	"github.com/vxm/isotopeboat/entities"
	"github.com/vxm/isotopeboat/geometry"
)

func trivialState() boardstate.BoardState {
	return boardstate.BoardState{
		Board: entities.Rectangle{Width: 3, Height: 3},
		Rad:   entities.RadiationSource{Location: geometry.Point{0, 0}, Magnitude: 0, DecayFactor: 0},
		Boat:  entities.Boat{Index: 0, Pose: geometry.Pose{Anchor: geometry.Point{0, 0}, Facing: geometry.Right}},
		Goal:  geometry.Point{2, 0},
	}
}

func TestForwardMoveWithinBoardIsLegal(t *testing.T) {
	s := trivialState()
	next, ok := boardstate.ApplyAction(s, entities.Action{Kind: entities.KindBoat, Move: entities.MoveForward})
	require.True(t, ok)
	assert.Equal(t, geometry.Point{1, 0}, next.Boat.Pose.Anchor)
}

func TestForwardMoveOutsideBoardIsIllegal(t *testing.T) {
	s := trivialState()
	s.Boat.Pose.Anchor = geometry.Point{2, 0}
	_, ok := boardstate.ApplyAction(s, entities.Action{Kind: entities.KindBoat, Move: entities.MoveForward})
	assert.False(t, ok)
}

func TestTreeBlocksForward(t *testing.T) {
	s := trivialState()
	s.Trees = []geometry.Point{{1, 0}}
	_, ok := boardstate.ApplyAction(s, entities.Action{Kind: entities.KindBoat, Move: entities.MoveForward})
	assert.False(t, ok)
}

func TestRotationRequiresBothDiagonalsClear(t *testing.T) {
	s := trivialState()
	s.Boat.Pose.Anchor = geometry.Point{1, 1}
	// Rotating clockwise from Right at (1,1) sweeps (1,1), the anchor
	// itself, and (2,2), the diagonal the front passes through; block
	// that diagonal with a tree and confirm rejection.
	result := s.Boat.Clockwise()
	s.Trees = []geometry.Point{result.Swept[1]}
	_, ok := boardstate.ApplyAction(s, entities.Action{Kind: entities.KindBoat, Move: entities.MoveClockwise})
	assert.False(t, ok)
}

func TestAlligatorMustMoveForBoatToPass(t *testing.T) {
	s := boardstate.BoardState{
		Board:      entities.Rectangle{Width: 5, Height: 2},
		Rad:        entities.RadiationSource{},
		Boat:       entities.Boat{Index: 0, Pose: geometry.Pose{Anchor: geometry.Point{0, 0}, Facing: geometry.Right}},
		Goal:       geometry.Point{4, 0},
		Alligators: []entities.Alligator{{Index: 0, Pose: geometry.Pose{Anchor: geometry.Point{2, 0}, Facing: geometry.Right}}},
	}
	// Boat can't pass straight through at row 0 while the alligator sits at x=2..4.
	_, ok := boardstate.ApplyAction(s, entities.Action{Kind: entities.KindBoat, Move: entities.MoveForward})
	assert.False(t, ok, "boat forward from x=0 puts its front on x=2, the alligator's anchor cell")
	blocked := s
	blocked.Boat.Pose.Anchor = geometry.Point{1, 0}
	_, ok = boardstate.ApplyAction(blocked, entities.Action{Kind: entities.KindBoat, Move: entities.MoveForward})
	assert.False(t, ok, "alligator occupies x=2..4, boat forward to x=2 must be illegal")
}

func TestUnsolvableBoardYieldsNoGoalNeighborPath(t *testing.T) {
	s := boardstate.BoardState{
		Board: entities.Rectangle{Width: 3, Height: 3},
		Rad:   entities.RadiationSource{},
		Boat:  entities.Boat{Index: 0, Pose: geometry.Pose{Anchor: geometry.Point{0, 0}, Facing: geometry.Right}},
		Goal:  geometry.Point{2, 2},
		Trees: []geometry.Point{{2, 0}, {1, 1}, {2, 1}, {0, 2}, {1, 2}},
	}
	assert.False(t, s.IsGoal())
	assert.Empty(t, boardstate.Neighbors(s), "the trees leave the boat no legal move at all")
}

func TestFootprintContainmentInvariant(t *testing.T) {
	s := trivialState()
	for _, tr := range boardstate.Neighbors(s) {
		assert.True(t, tr.State.Boat.Footprint().SubsetOf(tr.State.Board))
	}
}

func TestNonOverlapInvariant(t *testing.T) {
	s := boardstate.BoardState{
		Board:      entities.Rectangle{Width: 5, Height: 5},
		Rad:        entities.RadiationSource{},
		Boat:       entities.Boat{Index: 0, Pose: geometry.Pose{Anchor: geometry.Point{0, 0}, Facing: geometry.Right}},
		Goal:       geometry.Point{4, 4},
		Alligators: []entities.Alligator{{Index: 0, Pose: geometry.Pose{Anchor: geometry.Point{2, 2}, Facing: geometry.Up}}},
		Turtles:    []entities.Turtle{{Index: 0, Pose: geometry.Pose{Anchor: geometry.Point{0, 4}, Facing: geometry.Right}}},
		Trees:      []geometry.Point{{4, 0}},
	}
	for _, tr := range boardstate.Neighbors(s) {
		next := tr.State
		fps := []entities.Footprint{next.Boat.Footprint()}
		for _, a := range next.Alligators {
			fps = append(fps, a.Footprint())
		}
		for _, tu := range next.Turtles {
			fps = append(fps, tu.Footprint())
		}
		for i := 0; i < len(fps); i++ {
			for j := i + 1; j < len(fps); j++ {
				assert.False(t, fps[i].Intersects(fps[j]), "entity footprints must not overlap")
			}
		}
	}
}

func TestNeighborsDeterministicWithoutShuffle(t *testing.T) {
	s := trivialState()
	first := boardstate.Neighbors(s)
	second := boardstate.Neighbors(s)
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Action, second[i].Action)
	}
}

func TestHashAndEqualAgree(t *testing.T) {
	a := trivialState()
	b := trivialState()
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())

	b.Boat.Pose.Anchor = geometry.Point{1, 0}
	assert.False(t, a.Equal(b))
}
