package search

import (
	"github.com/vxm/isotopeboat/boardstate"
	"github.com/vxm/isotopeboat/entities"
)

// Algorithm is the contract every search variant satisfies once it has
// run to completion: whether a path was found, and three views of it.
type Algorithm interface {
	PathFound() bool
	BoardStatePath() []boardstate.BoardState
	ActionPath() []entities.Action
	NodePath() []SearchNode
	AllNodes() []SearchNode
}

// result implements Algorithm over a node arena plus the index of the
// goal node, or -1 if the search ended without finding one. Every
// concrete algorithm embeds this and populates nodes/goal itself.
type result struct {
	nodes []SearchNode
	goal  int
}

func (r *result) PathFound() bool { return r.goal >= 0 }

// NodePath walks Parent indices from the goal back to the root,
// returning root-to-goal order. Nil if no path was found.
func (r *result) NodePath() []SearchNode {
	if r.goal < 0 {
		return nil
	}
	var reversed []SearchNode
	for idx := r.goal; idx != -1; {
		n := r.nodes[idx]
		reversed = append(reversed, n)
		idx = n.Parent
	}
	out := make([]SearchNode, len(reversed))
	for i, n := range reversed {
		out[len(reversed)-1-i] = n
	}
	return out
}

func (r *result) BoardStatePath() []boardstate.BoardState {
	path := r.NodePath()
	if path == nil {
		return nil
	}
	out := make([]boardstate.BoardState, len(path))
	for i, n := range path {
		out[i] = n.State
	}
	return out
}

// AllNodes returns the full search arena in allocation order, root
// first, regardless of whether a goal was found. Used by callers that
// want to inspect the whole explored tree rather than just the
// winning path, such as a debug graph dump.
func (r *result) AllNodes() []SearchNode {
	return r.nodes
}

// ActionPath is path[1:]'s actions — the root carries no action.
func (r *result) ActionPath() []entities.Action {
	path := r.NodePath()
	if len(path) < 2 {
		return nil
	}
	out := make([]entities.Action, 0, len(path)-1)
	for _, n := range path[1:] {
		out = append(out, n.Action)
	}
	return out
}
