package datastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
)

func generateRandomInteger(min int, max int) int {
	return min + rand.Intn(max-min)
}

func TestPriorityQueue(t *testing.T) {
	pq := NewMinHeap[int32]()
	assert.NotNil(t, pq)

	for i := 0; i < 10000; i++ {
		item := PriorityQueueNode[int32]{Rank: float64(generateRandomInteger(0, 10000)), Item: int32(i)}
		pq.Insert(item)

		if (i+1)%100 == 0 {
			item.Rank = float64(generateRandomInteger(0, int(item.Rank)+1))
			err := pq.DecreaseKey(item)
			assert.NoError(t, err)
		}
	}

	prevItem, err := pq.ExtractMin()
	assert.NoError(t, err)
	for i := 1; i < 10000; i++ {
		item, err := pq.ExtractMin()
		assert.NoError(t, err)
		assert.LessOrEqual(t, prevItem.Rank, item.Rank)
		prevItem = item
	}

	_, err = pq.ExtractMin()
	assert.ErrorIs(t, err, ErrEmptyHeap)
}

func TestPriorityQueueDecreaseKey(t *testing.T) {
	pq := NewMinHeap[Segment]()

	a := NewSegment(0, 1, 0, true)
	b := NewSegment(0, 2, 0, true)
	c := NewSegment(0, 3, 0, false)
	pq.Insert(NewPriorityQueueNode(10, a))
	pq.Insert(NewPriorityQueueNode(20, b))
	pq.Insert(NewPriorityQueueNode(30, c))

	assert.NoError(t, pq.DecreaseKey(NewPriorityQueueNode(5, c)))
	assert.ErrorIs(t, pq.DecreaseKey(NewPriorityQueueNode(1, NewSegment(1, 1, 1, true))), ErrItemNotFound)

	min, err := pq.ExtractMin()
	assert.NoError(t, err)
	assert.Equal(t, c, min.Item)
	assert.Equal(t, 5.0, min.Rank)
	assert.Equal(t, 2, pq.Size())
	assert.False(t, pq.Contains(c))
	assert.True(t, pq.Contains(a))
}

func TestPriorityQueueInsertQueued(t *testing.T) {
	pq := NewMinHeap[Segment]()
	a := NewSegment(0, 1, 0, true)
	b := NewSegment(0, 2, 0, true)

	pq.Insert(NewPriorityQueueNode(10, a))
	pq.Insert(NewPriorityQueueNode(20, b))
	// a queued item is moved, never duplicated.
	pq.Insert(NewPriorityQueueNode(30, a))
	pq.Insert(NewPriorityQueueNode(5, a))
	assert.Equal(t, 2, pq.Size())

	min, err := pq.ExtractMin()
	assert.NoError(t, err)
	assert.Equal(t, a, min.Item)
	assert.Equal(t, 5.0, min.Rank)

	min, err = pq.ExtractMin()
	assert.NoError(t, err)
	assert.Equal(t, b, min.Item)
	assert.True(t, pq.IsEmpty())
}
