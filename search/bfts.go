package search

import "github.com/vxm/isotopeboat/boardstate"

// BFTS is breadth-first tree search: FIFO frontier, no explored set.
// It finds the path with the fewest actions, which is not necessarily
// the cheapest one.
type BFTS struct {
	result
}

// RunBFTS expands initial's successors breadth-first until a goal is
// popped or the frontier empties.
func RunBFTS(initial boardstate.BoardState, neighbors NeighborFunc, stepCost StepCostFunc, isGoal IsGoalFunc) *BFTS {
	s := &BFTS{result: result{goal: -1}}
	s.nodes = append(s.nodes, SearchNode{State: initial, Parent: -1})

	frontier := []int{0}
	for len(frontier) > 0 {
		idx := frontier[0]
		frontier = frontier[1:]
		node := s.nodes[idx]

		if isGoal(node.State) {
			s.goal = idx
			return s
		}

		for _, t := range neighbors(node.State) {
			child := SearchNode{
				State:    t.State,
				Parent:   idx,
				Action:   t.Action,
				PathCost: node.PathCost + stepCost(t.State),
				Depth:    node.Depth + 1,
			}
			s.nodes = append(s.nodes, child)
			frontier = append(frontier, len(s.nodes)-1)
		}
	}
	return s
}
