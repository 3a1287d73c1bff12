package search

import "github.com/vxm/isotopeboat/boardstate"

// DLGS is depth-limited graph search: LIFO frontier, explored set
// keyed by BoardState equality. A node past limit is kept as a leaf
// and never expanded; a successor already in the frontier or the
// explored set is discarded rather than re-enqueued.
type DLGS struct {
	result
}

// RunDLGS explores initial depth-first up to limit.
func RunDLGS(initial boardstate.BoardState, neighbors NeighborFunc, stepCost StepCostFunc, isGoal IsGoalFunc, limit int) *DLGS {
	s := &DLGS{result: result{goal: -1}}
	s.nodes = append(s.nodes, SearchNode{State: initial, Parent: -1})

	explored := newStateSet()
	inFrontier := newStateSet()

	frontier := []int{0}
	inFrontier.add(initial)

	for len(frontier) > 0 {
		idx := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		node := s.nodes[idx]
		inFrontier.remove(node.State)

		if isGoal(node.State) {
			s.goal = idx
			return s
		}

		explored.add(node.State)

		if node.Depth > limit {
			continue
		}

		for _, t := range neighbors(node.State) {
			if explored.contains(t.State) || inFrontier.contains(t.State) {
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
			frontier = append(frontier, len(s.nodes)-1)
			inFrontier.add(t.State)
		}
	}
	return s
}
