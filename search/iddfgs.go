package search

import "github.com/vxm/isotopeboat/boardstate"

// IDDFGS is iterative-deepening depth-first graph search: it reruns
// DLGS with depth limits 0, 1, 2, ... up to maxDepth, with no memo
// shared between iterations, stopping at the first solved limit.
type IDDFGS struct {
	result
}

// RunIDDFGS iterates RunDLGS over increasing depth limits, returning
// the first solution found or an unsolved result once maxDepth is
// exhausted.
func RunIDDFGS(initial boardstate.BoardState, neighbors NeighborFunc, stepCost StepCostFunc, isGoal IsGoalFunc, maxDepth int) *IDDFGS {
	for limit := 0; limit <= maxDepth; limit++ {
		attempt := RunDLGS(initial, neighbors, stepCost, isGoal, limit)
		if attempt.PathFound() {
			return &IDDFGS{result: attempt.result}
		}
	}
	return &IDDFGS{result: result{goal: -1}}
}
