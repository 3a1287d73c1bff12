package search

import (
	"github.com/vxm/isotopeboat/boardstate"
	"github.com/vxm/isotopeboat/cost"
	"github.com/vxm/isotopeboat/pqueue"
)

// GrBFGS is greedy best-first graph search: the frontier is ordered
// purely by h(S), with an explored set by state. Fast but not
// optimal — it never looks at accumulated path cost.
type GrBFGS struct {
	result
}

// RunGrBFGS expands states in order of increasing heuristic estimate
// until a goal is popped or the frontier empties. tieBreakSeed seeds
// the priority queue's randomised tiebreak.
func RunGrBFGS(initial boardstate.BoardState, neighbors NeighborFunc, stepCost StepCostFunc, isGoal IsGoalFunc, heuristic cost.Heuristic, tieBreakSeed uint64) *GrBFGS {
	s := &GrBFGS{result: result{goal: -1}}
	s.nodes = append(s.nodes, SearchNode{State: initial, Parent: -1})

	frontier := pqueue.New(tieBreakSeed)
	explored := newStateSet()
	frontier.Push(0, heuristic(initial))

	for frontier.Len() > 0 {
		v, _ := frontier.Pop()
		idx := v.(int)
		node := s.nodes[idx]

		if explored.contains(node.State) {
			continue
		}
		if isGoal(node.State) {
			s.goal = idx
			return s
		}
		explored.add(node.State)

		for _, t := range neighbors(node.State) {
			if explored.contains(t.State) {
				continue
			}
			child := SearchNode{
				State:    t.State,
				Parent:   idx,
				Action:   t.Action,
				PathCost: node.PathCost + stepCost(t.State),
				Depth:    node.Depth + 1,
			}
			s.nodes = append(s.nodes, child)
			frontier.Push(len(s.nodes)-1, heuristic(t.State))
		}
	}
	return s
}
