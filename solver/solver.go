// Package solver binds a search algorithm constructor to an initial
// puzzle state, times the run, and exposes the result in the shape
// puzzleio needs to serialise it.
package solver

import (
	"time"

	"github.com/vxm/isotopeboat/boardstate"
	"github.com/vxm/isotopeboat/entities"
	"github.com/vxm/isotopeboat/logging"
	"github.com/vxm/isotopeboat/search"
)

// AlgorithmFactory constructs and runs a search algorithm against an
// initial state, returning it once the search has completed.
type AlgorithmFactory func(initial boardstate.BoardState) search.Algorithm

// Result is a completed solve: timing, cost, and the path if found.
type Result struct {
	ElapsedMicros int64
	PathCost      int
	ActionCount   int
	Actions       []entities.Action
	FinalState    boardstate.BoardState
	Found         bool
}

// Solver runs one AlgorithmFactory against one initial state.
type Solver struct {
	Algorithm AlgorithmFactory
}

// New builds a Solver bound to algorithm.
func New(algorithm AlgorithmFactory) *Solver {
	return &Solver{Algorithm: algorithm}
}

// Run constructs and executes the bound algorithm against initial,
// measuring wall time in microseconds around the call, and returns
// both the Result and the algorithm instance itself so callers that
// need the full search arena (a debug graph dump, say) don't have to
// re-run the search to get it.
func (s *Solver) Run(initial boardstate.BoardState) (Result, search.Algorithm) {
	start := time.Now()
	alg := s.Algorithm(initial)
	elapsed := time.Since(start)
	return ResultFrom(alg, elapsed), alg
}

// ResultFrom builds a Result from an already-completed algorithm and
// its elapsed wall time. PathCost is read from the penultimate node
// on the path — the cost accumulated up to, but not including, the
// final edge into the goal — matching this solver's established
// output format.
func ResultFrom(alg search.Algorithm, elapsed time.Duration) Result {
	logger := logging.Solver()

	if !alg.PathFound() {
		logger.Warningf("search completed in %s without finding a goal", elapsed)
		return Result{ElapsedMicros: elapsed.Microseconds(), Found: false}
	}

	nodes := alg.NodePath()
	actions := alg.ActionPath()
	finalState := nodes[len(nodes)-1].State

	pathCost := 0
	if len(nodes) >= 2 {
		pathCost = nodes[len(nodes)-2].PathCost
	}

	logger.Infof("search completed in %s: %d actions, path cost %d", elapsed, len(actions), pathCost)

	return Result{
		ElapsedMicros: elapsed.Microseconds(),
		PathCost:      pathCost,
		ActionCount:   len(actions),
		Actions:       actions,
		FinalState:    finalState,
		Found:         true,
	}
}
