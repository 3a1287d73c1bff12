// Package search implements the state-space search algorithm family:
// BFTS, DLGS (iterated into IDDFGS), GrBFGS, and AStarGS. Every
// variant is a plain sequential loop over a SearchNode arena — no
// goroutines, channels, or shared mutable state, since a search
// instance is never touched by more than one caller.
package search

import (
	"github.com/vxm/isotopeboat/boardstate"
	"github.com/vxm/isotopeboat/entities"
)

// SearchNode is one entry in a search's node arena: the state reached,
// the action that produced it, the accumulated path cost, the depth
// from the root, and Parent, the index of its parent in the same
// arena (-1 for the root). Path reconstruction walks Parent indices
// back to -1 rather than following pointers, so an entire search's
// memory lives in one slice and is released when the algorithm value
// is dropped.
type SearchNode struct {
	State    boardstate.BoardState
	Parent   int
	Action   entities.Action
	PathCost int
	Depth    int
}

// NeighborFunc enumerates the legal transitions out of a state.
type NeighborFunc func(boardstate.BoardState) []boardstate.Transition

// StepCostFunc is the edge weight of transitioning into a state.
// cost.StepCost satisfies this directly.
type StepCostFunc func(boardstate.BoardState) int

// IsGoalFunc reports whether a state satisfies the search's goal test.
type IsGoalFunc func(boardstate.BoardState) bool
