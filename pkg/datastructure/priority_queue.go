package datastructure

import "errors"

var (
	ErrEmptyHeap    = errors.New("heap is empty")
	ErrItemNotFound = errors.New("item not found in heap")
)

type PriorityQueueNode[T comparable] struct {
	Rank float64
	Item T
}

func NewPriorityQueueNode[T comparable](rank float64, item T) PriorityQueueNode[T] {
	return PriorityQueueNode[T]{Rank: rank, Item: item}
}

// MinHeap is a binary heap with an item -> position index, so DecreaseKey is O(log n).
type MinHeap[T comparable] struct {
	heap []PriorityQueueNode[T]
	pos  map[T]int
}

func NewMinHeap[T comparable]() *MinHeap[T] {
	return &MinHeap[T]{
		heap: make([]PriorityQueueNode[T], 0),
		pos:  make(map[T]int),
	}
}

func (h *MinHeap[T]) parent(i int) int { return (i - 1) / 2 }
func (h *MinHeap[T]) left(i int) int   { return 2*i + 1 }
func (h *MinHeap[T]) right(i int) int  { return 2*i + 2 }

func (h *MinHeap[T]) swap(i, j int) {
	h.heap[i], h.heap[j] = h.heap[j], h.heap[i]
	h.pos[h.heap[i].Item] = i
	h.pos[h.heap[j].Item] = j
}

func (h *MinHeap[T]) heapifyUp(i int) {
	for i > 0 && h.heap[i].Rank < h.heap[h.parent(i)].Rank {
		h.swap(i, h.parent(i))
		i = h.parent(i)
	}
}

func (h *MinHeap[T]) heapifyDown(i int) {
	for {
		smallest := i
		l, r := h.left(i), h.right(i)
		if l < len(h.heap) && h.heap[l].Rank < h.heap[smallest].Rank {
			smallest = l
		}
		if r < len(h.heap) && h.heap[r].Rank < h.heap[smallest].Rank {
			smallest = r
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

func (h *MinHeap[T]) Size() int {
	return len(h.heap)
}

func (h *MinHeap[T]) IsEmpty() bool {
	return len(h.heap) == 0
}

// Insert adds item. inserting an item that is already queued updates its rank.
func (h *MinHeap[T]) Insert(node PriorityQueueNode[T]) {
	if i, ok := h.pos[node.Item]; ok {
		old := h.heap[i].Rank
		h.heap[i].Rank = node.Rank
		if node.Rank < old {
			h.heapifyUp(i)
		} else {
			h.heapifyDown(i)
		}
		return
	}
	h.heap = append(h.heap, node)
	h.pos[node.Item] = len(h.heap) - 1
	h.heapifyUp(len(h.heap) - 1)
}

func (h *MinHeap[T]) GetMin() (PriorityQueueNode[T], error) {
	if len(h.heap) == 0 {
		return PriorityQueueNode[T]{}, ErrEmptyHeap
	}
	return h.heap[0], nil
}

func (h *MinHeap[T]) ExtractMin() (PriorityQueueNode[T], error) {
	if len(h.heap) == 0 {
		return PriorityQueueNode[T]{}, ErrEmptyHeap
	}
	root := h.heap[0]
	last := len(h.heap) - 1
	h.swap(0, last)
	h.heap = h.heap[:last]
	delete(h.pos, root.Item)
	if len(h.heap) > 0 {
		h.heapifyDown(0)
	}
	return root, nil
}

func (h *MinHeap[T]) DecreaseKey(node PriorityQueueNode[T]) error {
	i, ok := h.pos[node.Item]
	if !ok {
		return ErrItemNotFound
	}
	if node.Rank > h.heap[i].Rank {
		return nil
	}
	h.heap[i].Rank = node.Rank
	h.heapifyUp(i)
	return nil
}

func (h *MinHeap[T]) Contains(item T) bool {
	_, ok := h.pos[item]
	return ok
}
