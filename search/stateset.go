package search

import "github.com/vxm/isotopeboat/boardstate"

// stateSet is a hash-bucketed set of BoardStates: Hash narrows down to
// a bucket, Equal resolves collisions. This is the "set of visited
// states keyed by a precomputed hash" the graph-search variants share.
type stateSet struct {
	buckets map[uint64][]boardstate.BoardState
}

func newStateSet() *stateSet {
	return &stateSet{buckets: make(map[uint64][]boardstate.BoardState)}
}

func (s *stateSet) add(state boardstate.BoardState) {
	if s.contains(state) {
		return
	}
	h := state.Hash()
	s.buckets[h] = append(s.buckets[h], state)
}

func (s *stateSet) contains(state boardstate.BoardState) bool {
	for _, candidate := range s.buckets[state.Hash()] {
		if candidate.Equal(state) {
			return true
		}
	}
	return false
}

func (s *stateSet) remove(state boardstate.BoardState) {
	h := state.Hash()
	bucket := s.buckets[h]
	for i, candidate := range bucket {
		if candidate.Equal(state) {
			s.buckets[h] = append(bucket[:i], bucket[i+1:]...)
			return
		}
	}
}
