// Package pqueue implements the search algorithms' shared frontier: a
// binary-heap priority queue keyed on (priority, randomised tiebreak,
// insertion serial), with "unique push" semantics for graph search.
package pqueue

import (
	"container/heap"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Item is a single queued element: an opaque payload plus its
// priority. Equal payloads must compare equal for Contains/UniquePush to
// find them.
type Item struct {
	Value    interface{}
	Priority int

	tiebreak float64
	serial   int64
	index    int
}

// PriorityQueue is a min-priority queue over (priority, tiebreak,
// serial) triples. Values are never compared directly — only the key
// triple orders the heap, per spec 4.6.
type PriorityQueue struct {
	heap    innerHeap
	lookup  map[interface{}]*Item
	rng     *rand.Rand
	counter map[interface{}]int64
	serial  int64
}

// New creates an empty queue. seed drives the randomised secondary
// tiebreak; pass a fixed seed (the default is 0, per spec 9's design
// note) for reproducible search runs across identical inputs.
func New(seed uint64) *PriorityQueue {
	return &PriorityQueue{
		lookup:  make(map[interface{}]*Item),
		rng:     rand.New(rand.NewSource(seed)),
		counter: make(map[interface{}]int64),
	}
}

// Len reports the number of queued elements.
func (pq *PriorityQueue) Len() int { return pq.heap.Len() }

// Contains reports whether value is currently enqueued.
func (pq *PriorityQueue) Contains(value interface{}) bool {
	_, ok := pq.lookup[value]
	return ok
}

// Push enqueues value with the given priority. Repeated pushes of the
// same value each draw a fresh randomised tiebreak from a uniform
// distribution over [serial/2, serial], where serial counts prior
// pushes of that same value (spec 4.6's diversification rule).
func (pq *PriorityQueue) Push(value interface{}, priority int) {
	orderSerial := pq.counter[value]
	pq.counter[value] = orderSerial + 1

	item := &Item{
		Value:    value,
		Priority: priority,
		tiebreak: pq.drawTiebreak(orderSerial),
		serial:   pq.serial,
	}
	pq.serial++

	heap.Push(&pq.heap, item)
	pq.lookup[value] = item
}

// drawTiebreak samples uniformly from [orderSerial/2, orderSerial],
// collapsing to a point mass at 0 for the first push of a value.
func (pq *PriorityQueue) drawTiebreak(orderSerial int64) float64 {
	lo := float64(orderSerial) / 2
	hi := float64(orderSerial)
	if hi <= lo {
		return lo
	}
	return distuv.Uniform{Min: lo, Max: hi, Src: pq.rng}.Rand()
}

// UniquePush implements spec 4.6's graph-search insertion rule: if
// value is already enqueued with a worse (higher) priority, replace
// it in place; if already enqueued with an equal-or-better priority,
// leave it untouched; otherwise push it fresh.
func (pq *PriorityQueue) UniquePush(value interface{}, priority int) {
	existing, ok := pq.lookup[value]
	if !ok {
		pq.Push(value, priority)
		return
	}
	if priority < existing.Priority {
		existing.Priority = priority
		heap.Fix(&pq.heap, existing.index)
	}
}

// Pop removes and returns the lowest-priority element.
func (pq *PriorityQueue) Pop() (interface{}, bool) {
	if pq.heap.Len() == 0 {
		return nil, false
	}
	item := heap.Pop(&pq.heap).(*Item)
	delete(pq.lookup, item.Value)
	return item.Value, true
}

// innerHeap implements container/heap.Interface over *Item, ordering
// by the (priority, tiebreak, serial) triple. Values themselves are
// never compared.
type innerHeap []*Item

func (h innerHeap) Len() int { return len(h) }

func (h innerHeap) Less(i, j int) bool {
	if h[i].Priority != h[j].Priority {
		return h[i].Priority < h[j].Priority
	}
	if h[i].tiebreak != h[j].tiebreak {
		return h[i].tiebreak < h[j].tiebreak
	}
	return h[i].serial < h[j].serial
}

func (h innerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *innerHeap) Push(x interface{}) {
	item := x.(*Item)
	item.index = len(*h)
	*h = append(*h, item)
}

func (h *innerHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[:n-1]
	return item
}
