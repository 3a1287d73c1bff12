package puzzleio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vxm/isotopeboat/boardstate"
	"github.com/vxm/isotopeboat/entities"
	"github.com/vxm/isotopeboat/errs"
	"github.com/vxm/isotopeboat/geometry"
	"github.com/vxm/isotopeboat/puzzleio"
	"github.com/vxm/isotopeboat/solver"
)

const trivialPuzzle = `3 3
0 0
0 0
0 0 0
0 0 R
2 0
`

func TestParseTrivialPuzzle(t *testing.T) {
	s, err := puzzleio.Parse(strings.NewReader(trivialPuzzle))
	require.NoError(t, err)

	assert.Equal(t, entities.Rectangle{Width: 3, Height: 3}, s.Board)
	assert.Equal(t, geometry.Point{0, 0}, s.Boat.Pose.Anchor)
	assert.Equal(t, geometry.Right, s.Boat.Pose.Facing)
	assert.Equal(t, geometry.Point{2, 0}, s.Goal)
	assert.Empty(t, s.Alligators)
	assert.Empty(t, s.Turtles)
	assert.Empty(t, s.Trees)
}

const puzzleWithEntities = `6 2
0 0
0 0
1 0 1
3 0 R
0 1
0 0 R
5 1
`

func TestParseWithAlligatorAndTree(t *testing.T) {
	s, err := puzzleio.Parse(strings.NewReader(puzzleWithEntities))
	require.NoError(t, err)

	require.Len(t, s.Alligators, 1)
	assert.Equal(t, geometry.Point{3, 0}, s.Alligators[0].Pose.Anchor)
	require.Len(t, s.Trees, 1)
	assert.Equal(t, geometry.Point{0, 1}, s.Trees[0])
}

func TestParseRejectsTooFewLines(t *testing.T) {
	_, err := puzzleio.Parse(strings.NewReader("3 3\n0 0\n"))
	assert.ErrorIs(t, err, errs.ErrInputMalformed)
}

func TestParseRejectsBadDirectionLetter(t *testing.T) {
	bad := `3 3
0 0
0 0
0 0 0
0 0 Z
2 0
`
	_, err := puzzleio.Parse(strings.NewReader(bad))
	assert.ErrorIs(t, err, errs.ErrInputMalformed)
}

func TestParseRejectsOutOfBoundsEntity(t *testing.T) {
	outOfBounds := `2 2
0 0
0 0
0 0 0
5 5 R
0 0
`
	_, err := puzzleio.Parse(strings.NewReader(outOfBounds))
	assert.ErrorIs(t, err, errs.ErrInputInconsistent)
}

func TestParseRejectsOverlappingEntities(t *testing.T) {
	overlapping := `5 2
0 0
0 0
1 0 0
0 0 R
0 0 R
4 1
`
	_, err := puzzleio.Parse(strings.NewReader(overlapping))
	assert.ErrorIs(t, err, errs.ErrInputInconsistent)
}

func TestWriteRoundTripsTrivialResult(t *testing.T) {
	result := solver.Result{
		ElapsedMicros: 42,
		PathCost:      0,
		ActionCount:   2,
		Actions: []entities.Action{
			{Kind: entities.KindBoat, Index: 0, Move: entities.MoveForward, DisplayDir: geometry.Right, HasDisplay: true},
			{Kind: entities.KindBoat, Index: 0, Move: entities.MoveForward, DisplayDir: geometry.Right, HasDisplay: true},
		},
		FinalState: boardstate.BoardState{
			Board: entities.Rectangle{Width: 3, Height: 3},
			Rad:   entities.RadiationSource{},
			Boat:  entities.Boat{Index: 0, Pose: geometry.Pose{Anchor: geometry.Point{2, 0}, Facing: geometry.Right}},
			Goal:  geometry.Point{2, 0},
		},
		Found: true,
	}

	var out strings.Builder
	require.NoError(t, puzzleio.Write(&out, result))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Equal(t, "42", lines[0])
	assert.Equal(t, "0", lines[1])
	assert.Equal(t, "2", lines[2])
	assert.Equal(t, "B 0 R,B 0 R", lines[3])
}

func TestWriteUnsolvedReturnsError(t *testing.T) {
	var out strings.Builder
	err := puzzleio.Write(&out, solver.Result{Found: false})
	assert.ErrorIs(t, err, errs.ErrUnsolvable)
	assert.Empty(t, out.String())
}
