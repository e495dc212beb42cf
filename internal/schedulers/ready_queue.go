package schedulers

import (
	"container/heap"

	"cpu-scheduler/internal/core"
)

// readyQueue holds processes that have arrived and still need CPU time.
type readyQueue interface {
	// Push admits a newly arrived process.
	Push(s *core.ProcessState)
	// Requeue returns a process that was interrupted before completion.
	Requeue(s *core.ProcessState)
	Pop() *core.ProcessState
	// Peek returns the process Pop would return, or nil.
	Peek() *core.ProcessState
	Len() int
}

type lessFunc func(a, b *core.ProcessState) bool

// processHeap implements heap.Interface over a strict total order.
type processHeap struct {
	items []*core.ProcessState
	less  lessFunc
}

func (h processHeap) Len() int           { return len(h.items) }
func (h processHeap) Less(i, j int) bool { return h.less(h.items[i], h.items[j]) }
func (h processHeap) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *processHeap) Push(x any) {
	h.items = append(h.items, x.(*core.ProcessState))
}

func (h *processHeap) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	h.items = old[0 : n-1]
	return item
}

// orderedQueue always yields the minimum under its ordering.
type orderedQueue struct {
	h *processHeap
}

func newOrderedQueue(less lessFunc) *orderedQueue {
	return &orderedQueue{h: &processHeap{less: less}}
}

func (q *orderedQueue) Push(s *core.ProcessState)    { heap.Push(q.h, s) }
func (q *orderedQueue) Requeue(s *core.ProcessState) { heap.Push(q.h, s) }
func (q *orderedQueue) Len() int                     { return q.h.Len() }

func (q *orderedQueue) Pop() *core.ProcessState {
	if q.h.Len() == 0 {
		panic("ready queue: pop from empty queue")
	}
	return heap.Pop(q.h).(*core.ProcessState)
}

func (q *orderedQueue) Peek() *core.ProcessState {
	if q.h.Len() == 0 {
		return nil
	}
	return q.h.items[0]
}

// fifoQueue is the circular round-robin queue.
type fifoQueue struct {
	items []*core.ProcessState
}

func (q *fifoQueue) Push(s *core.ProcessState)    { q.items = append(q.items, s) }
func (q *fifoQueue) Requeue(s *core.ProcessState) { q.items = append(q.items, s) }
func (q *fifoQueue) Len() int                     { return len(q.items) }

func (q *fifoQueue) Pop() *core.ProcessState {
	if len(q.items) == 0 {
		panic("ready queue: pop from empty queue")
	}
	s := q.items[0]
	q.items[0] = nil
	q.items = q.items[1:]
	return s
}

func (q *fifoQueue) Peek() *core.ProcessState {
	if len(q.items) == 0 {
		return nil
	}
	return q.items[0]
}
