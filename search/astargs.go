package search

import (
	"github.com/vxm/isotopeboat/boardstate"
	"github.com/vxm/isotopeboat/cost"
	"github.com/vxm/isotopeboat/logging"
	"github.com/vxm/isotopeboat/pqueue"
)

// AStarGS is A* graph search: the frontier is ordered by g(S)+h(S).
// Popping a state already in the explored set skips it; generating a
// successor already enqueued under a better path cost replaces its
// frontier entry via unique-push. Optimal when heuristic is
// consistent.
type AStarGS struct {
	result
}

// RunAStarGS runs A* from initial. The priority queue's payload is an
// arena index, per the arena design; byState maps a state's hash to
// the arena index of its current best-known frontier entry, purely as
// internal bookkeeping so a better path to an already-enqueued state
// updates that node in place instead of duplicating it. A hash
// collision between two distinct live frontier states would be
// mistaken for the same state, but at this puzzle's scale that is not
// a practical concern.
func RunAStarGS(initial boardstate.BoardState, neighbors NeighborFunc, stepCost StepCostFunc, isGoal IsGoalFunc, heuristic cost.Heuristic, tieBreakSeed uint64) *AStarGS {
	logger := logging.Search()
	logger.Debugf("asgs: starting from %d, tie-break seed %d", initial.Hash(), tieBreakSeed)

	s := &AStarGS{result: result{goal: -1}}
	s.nodes = append(s.nodes, SearchNode{State: initial, Parent: -1})

	frontier := pqueue.New(tieBreakSeed)
	explored := newStateSet()
	byState := map[uint64]int{initial.Hash(): 0}

	frontier.Push(0, heuristic(initial))

	for frontier.Len() > 0 {
		v, _ := frontier.Pop()
		idx := v.(int)
		node := s.nodes[idx]

		if h := node.State.Hash(); byState[h] == idx {
			delete(byState, h)
		}

		if explored.contains(node.State) {
			continue
		}
		if isGoal(node.State) {
			s.goal = idx
			logger.Infof("asgs: goal found at depth %d, path cost %d, %d nodes generated", node.Depth, node.PathCost, len(s.nodes))
			return s
		}
		explored.add(node.State)

		for _, t := range neighbors(node.State) {
			if explored.contains(t.State) {
				continue
			}
			g := node.PathCost + stepCost(t.State)
			childHash := t.State.Hash()

			if existingIdx, inFrontier := byState[childHash]; inFrontier && s.nodes[existingIdx].State.Equal(t.State) {
				if g < s.nodes[existingIdx].PathCost {
					s.nodes[existingIdx] = SearchNode{
						State:    t.State,
						Parent:   idx,
						Action:   t.Action,
						PathCost: g,
						Depth:    node.Depth + 1,
					}
					frontier.UniquePush(existingIdx, g+heuristic(t.State))
				}
				continue
			}

			child := SearchNode{
				State:    t.State,
				Parent:   idx,
				Action:   t.Action,
				PathCost: g,
				Depth:    node.Depth + 1,
			}
			s.nodes = append(s.nodes, child)
			newIdx := len(s.nodes) - 1
			byState[childHash] = newIdx
			frontier.Push(newIdx, g+heuristic(t.State))
		}
	}
	logger.Warningf("asgs: frontier exhausted without a goal, %d nodes generated", len(s.nodes))
	return s
}
