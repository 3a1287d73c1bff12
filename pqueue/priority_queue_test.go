package pqueue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vxm/isotopeboat/pqueue"
)

func TestPopOrdersByPriority(t *testing.T) {
	pq := pqueue.New(1)
	pq.Push("c", 3)
	pq.Push("a", 1)
	pq.Push("b", 2)

	for _, want := range []string{"a", "b", "c"} {
		got, ok := pq.Pop()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	_, ok := pq.Pop()
	assert.False(t, ok)
}

func TestPopOnEmptyQueue(t *testing.T) {
	pq := pqueue.New(0)
	_, ok := pq.Pop()
	assert.False(t, ok)
}

func TestContainsReflectsMembership(t *testing.T) {
	pq := pqueue.New(0)
	assert.False(t, pq.Contains("x"))
	pq.Push("x", 5)
	assert.True(t, pq.Contains("x"))
	pq.Pop()
	assert.False(t, pq.Contains("x"))
}

func TestLenTracksSize(t *testing.T) {
	pq := pqueue.New(0)
	assert.Equal(t, 0, pq.Len())
	pq.Push("a", 1)
	pq.Push("b", 2)
	assert.Equal(t, 2, pq.Len())
	pq.Pop()
	assert.Equal(t, 1, pq.Len())
}

func TestUniquePushReplacesOnBetterPriority(t *testing.T) {
	pq := pqueue.New(0)
	pq.Push("a", 10)
	pq.Push("b", 5)
	pq.UniquePush("a", 1)

	got, ok := pq.Pop()
	require.True(t, ok)
	assert.Equal(t, "a", got, "a's priority was lowered below b's, it must pop first")
}

func TestUniquePushIgnoresWorsePriority(t *testing.T) {
	pq := pqueue.New(0)
	pq.Push("a", 1)
	pq.Push("b", 5)
	pq.UniquePush("a", 10)

	got, ok := pq.Pop()
	require.True(t, ok)
	assert.Equal(t, "a", got, "a's original, better priority must survive an UniquePush with a worse one")
}

func TestUniquePushOnNewValueBehavesLikePush(t *testing.T) {
	pq := pqueue.New(0)
	pq.UniquePush("only", 7)
	assert.True(t, pq.Contains("only"))
	assert.Equal(t, 1, pq.Len())
}

func TestTiebreakIsDeterministicForFixedSeed(t *testing.T) {
	build := func() []string {
		pq := pqueue.New(42)
		pq.Push("a", 1)
		pq.Push("b", 1)
		pq.Push("c", 1)
		var order []string
		for pq.Len() > 0 {
			v, _ := pq.Pop()
			order = append(order, v.(string))
		}
		return order
	}
	first := build()
	second := build()
	assert.Equal(t, first, second, "identical seed and push sequence must reproduce the same pop order")
}

func TestRepeatedPushOfSameValueEnqueuesEachTime(t *testing.T) {
	pq := pqueue.New(7)
	for i := 0; i < 5; i++ {
		pq.Push("repeat", 1)
	}
	assert.Equal(t, 5, pq.Len(), "Push (not UniquePush) always enqueues a fresh entry")
}
