// Package cost implements the step-cost function and the heuristic
// family (greedy, smart, admissible, consistent) the search algorithms
// consume. Heuristics are constructed once per initial state and
// returned as plain functions so search code never depends on this
// package's internals.
package cost

import "github.com/vxm/isotopeboat/boardstate"

// Heuristic estimates the remaining cost from a state to the goal.
type Heuristic func(boardstate.BoardState) int

// StepCost is the edge weight of transitioning into s: the radiation
// sum over the boat's footprint in the destination state. Radiation
// may be negative; this never clamps.
func StepCost(s boardstate.BoardState) int {
	total := 0
	for p := range s.Boat.Footprint() {
		total += s.Rad.Rads(p)
	}
	return total
}
