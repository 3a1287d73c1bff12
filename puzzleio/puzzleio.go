// Package puzzleio parses puzzle input files into a BoardState and
// serialises a solver.Result in the matching output format.
package puzzleio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/vxm/isotopeboat/boardstate"
	"github.com/vxm/isotopeboat/entities"
	"github.com/vxm/isotopeboat/errs"
	"github.com/vxm/isotopeboat/geometry"
	"github.com/vxm/isotopeboat/logging"
	"github.com/vxm/isotopeboat/solver"
)

// Parse reads the puzzle-file format described by the external
// interfaces:
//
//	W H
//	RX RY
//	M D
//	NA NT NR
//	(repeated NA times)  AX AY AD
//	(repeated NT times)  TX TY TD
//	(repeated NR times)  RX RY
//	BX BY BD
//	GX GY
//
// Malformed lines are collected and returned together, wrapped in
// errs.ErrInputMalformed; a structurally valid file whose entities
// fall outside the board or overlap is rejected with
// errs.ErrInputInconsistent.
func Parse(r io.Reader) (boardstate.BoardState, error) {
	logger := logging.Parser()

	lines, err := readAllLines(r)
	if err != nil {
		logger.Warningf("rejecting input: %v", err)
		return boardstate.BoardState{}, errors.Wrapf(errs.ErrInputMalformed, "reading input: %v", err)
	}

	if len(lines) < 6 {
		logger.Warningf("rejecting input: expected at least 6 lines, got %d", len(lines))
		return boardstate.BoardState{}, errors.Wrapf(errs.ErrInputMalformed, "expected at least 6 lines, got %d", len(lines))
	}

	var merr *multierror.Error

	width, height := parseIntFields(lines[0], 0, 2, &merr)
	radX, radY := parseIntFields(lines[1], 1, 2, &merr)
	magnitude, decay := parseIntFields(lines[2], 2, 2, &merr)
	numAlligators, numTurtles, numTrees := parseCounts(lines[3], &merr)

	row := 4
	alligators := make([]entities.Alligator, 0, numAlligators)
	for i := 0; i < numAlligators; i++ {
		alligators = append(alligators, entities.Alligator{Index: i, Pose: parsePose(lines, row, &merr)})
		row++
	}

	turtles := make([]entities.Turtle, 0, numTurtles)
	for i := 0; i < numTurtles; i++ {
		turtles = append(turtles, entities.Turtle{Index: i, Pose: parsePose(lines, row, &merr)})
		row++
	}

	trees := make([]geometry.Point, 0, numTrees)
	for i := 0; i < numTrees; i++ {
		x, y := parseInts(lines, row, 2, &merr)
		trees = append(trees, geometry.Point{X: x, Y: y})
		row++
	}

	boatPose := parsePose(lines, row, &merr)
	row++
	goalX, goalY := parseInts(lines, row, 2, &merr)

	if merr.ErrorOrNil() != nil {
		logger.Warningf("rejecting malformed input: %v", merr)
		return boardstate.BoardState{}, errors.Wrap(errs.ErrInputMalformed, merr.Error())
	}

	state := boardstate.BoardState{
		Board:      entities.Rectangle{Width: width, Height: height},
		Rad:        entities.RadiationSource{Location: geometry.Point{X: radX, Y: radY}, Magnitude: magnitude, DecayFactor: decay},
		Boat:       entities.Boat{Index: 0, Pose: boatPose},
		Goal:       geometry.Point{X: goalX, Y: goalY},
		Alligators: alligators,
		Turtles:    turtles,
		Trees:      trees,
	}

	if err := checkConsistent(state); err != nil {
		logger.Warningf("rejecting inconsistent input: %v", err)
		return boardstate.BoardState{}, err
	}
	logger.Debugf("parsed %dx%d board: %d alligators, %d turtles, %d trees", width, height, numAlligators, numTurtles, numTrees)
	return state, nil
}

// checkConsistent verifies every entity's footprint lies within the
// board and that no two footprints overlap, per errs.ErrInputInconsistent.
func checkConsistent(s boardstate.BoardState) error {
	footprints := []entities.Footprint{s.Boat.Footprint()}
	for _, a := range s.Alligators {
		footprints = append(footprints, a.Footprint())
	}
	for _, t := range s.Turtles {
		footprints = append(footprints, t.Footprint())
	}
	for _, t := range s.Trees {
		footprints = append(footprints, entities.NewFootprint(t))
	}

	for _, fp := range footprints {
		if !fp.SubsetOf(s.Board) {
			return errors.Wrap(errs.ErrInputInconsistent, "entity footprint lies outside the board")
		}
	}
	for i := 0; i < len(footprints); i++ {
		for j := i + 1; j < len(footprints); j++ {
			if footprints[i].Intersects(footprints[j]) {
				return errors.Wrap(errs.ErrInputInconsistent, "entity footprints overlap")
			}
		}
	}
	return nil
}

func readAllLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func parsePose(lines []string, row int, merr **multierror.Error) geometry.Pose {
	if row >= len(lines) {
		*merr = multierror.Append(*merr, fmt.Errorf("missing line %d", row+1))
		return geometry.Pose{}
	}
	fields := strings.Fields(lines[row])
	if len(fields) != 3 {
		*merr = multierror.Append(*merr, fmt.Errorf("line %d: expected 3 fields, got %d", row+1, len(fields)))
		return geometry.Pose{}
	}
	x, errX := strconv.Atoi(fields[0])
	y, errY := strconv.Atoi(fields[1])
	if errX != nil || errY != nil {
		*merr = multierror.Append(*merr, fmt.Errorf("line %d: non-integer coordinate", row+1))
	}
	dir, ok := geometry.ParseDirection(fields[2][0])
	if !ok {
		*merr = multierror.Append(*merr, fmt.Errorf("line %d: unrecognised direction letter %q", row+1, fields[2]))
	}
	return geometry.Pose{Anchor: geometry.Point{X: x, Y: y}, Facing: dir}
}

func parseInts(lines []string, row int, n int, merr **multierror.Error) (int, int) {
	if row >= len(lines) {
		*merr = multierror.Append(*merr, fmt.Errorf("missing line %d", row+1))
		return 0, 0
	}
	return parseIntFields(lines[row], row, n, merr)
}

func parseIntFields(line string, row int, n int, merr **multierror.Error) (int, int) {
	fields := strings.Fields(line)
	if len(fields) < n {
		*merr = multierror.Append(*merr, fmt.Errorf("line %d: expected %d fields, got %d", row+1, n, len(fields)))
		return 0, 0
	}
	a, errA := strconv.Atoi(fields[0])
	b, errB := strconv.Atoi(fields[1])
	if errA != nil || errB != nil {
		*merr = multierror.Append(*merr, fmt.Errorf("line %d: non-integer token", row+1))
	}
	return a, b
}

func parseCounts(line string, merr **multierror.Error) (int, int, int) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		*merr = multierror.Append(*merr, fmt.Errorf("entity-count line: expected 3 fields, got %d", len(fields)))
		return 0, 0, 0
	}
	var values [3]int
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			*merr = multierror.Append(*merr, fmt.Errorf("entity-count line: non-integer token %q", f))
		}
		values[i] = v
	}
	return values[0], values[1], values[2]
}

// Write serialises result in the output format: elapsed microseconds,
// path cost, action count, comma-separated actions, then the final
// board state echoing the puzzle-file layout.
func Write(w io.Writer, result solver.Result) error {
	if !result.Found {
		return errs.ErrUnsolvable
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, result.ElapsedMicros)
	fmt.Fprintln(bw, result.PathCost)
	fmt.Fprintln(bw, result.ActionCount)

	actionStrs := make([]string, len(result.Actions))
	for i, a := range result.Actions {
		actionStrs[i] = formatAction(a)
	}
	fmt.Fprintln(bw, strings.Join(actionStrs, ","))

	writeBoardState(bw, result.FinalState)
	return bw.Flush()
}

func formatAction(a entities.Action) string {
	return fmt.Sprintf("%c %d %c", a.Kind.DisplayChar(), a.Index, a.DisplayChar())
}

func writeBoardState(bw *bufio.Writer, s boardstate.BoardState) {
	fmt.Fprintf(bw, "%d %d\n", s.Board.Width, s.Board.Height)
	fmt.Fprintf(bw, "%d %d\n", s.Rad.Location.X, s.Rad.Location.Y)
	fmt.Fprintf(bw, "%d %d\n", s.Rad.Magnitude, s.Rad.DecayFactor)
	fmt.Fprintf(bw, "%d %d %d\n", len(s.Alligators), len(s.Turtles), len(s.Trees))
	for _, a := range s.Alligators {
		writePose(bw, a.Pose)
	}
	for _, t := range s.Turtles {
		writePose(bw, t.Pose)
	}
	for _, t := range s.Trees {
		fmt.Fprintf(bw, "%d %d\n", t.X, t.Y)
	}
	writePose(bw, s.Boat.Pose)
	fmt.Fprintf(bw, "%d %d\n", s.Goal.X, s.Goal.Y)
}

func writePose(bw *bufio.Writer, p geometry.Pose) {
	fmt.Fprintf(bw, "%d %d %c\n", p.Anchor.X, p.Anchor.Y, p.Facing.DisplayChar())
}
