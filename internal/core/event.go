package core

import "container/heap"

// ArrivalEvent marks the moment a process becomes ready.
type ArrivalEvent struct {
	Time    int64
	Process *ProcessState
}

// EventQueue implements heap.Interface and orders arrivals by time, then
// by process id so simultaneous arrivals are always admitted in the same order.
type EventQueue []*ArrivalEvent

func (eq EventQueue) Len() int { return len(eq) }
func (eq EventQueue) Less(i, j int) bool {
	if eq[i].Time != eq[j].Time {
		return eq[i].Time < eq[j].Time
	}
	return eq[i].Process.Id() < eq[j].Process.Id()
}
func (eq EventQueue) Swap(i, j int) { eq[i], eq[j] = eq[j], eq[i] }

func (eq *EventQueue) Push(x any) {
	*eq = append(*eq, x.(*ArrivalEvent))
}

func (eq *EventQueue) Pop() any {
	old := *eq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*eq = old[0 : n-1]
	return item
}

// NewEventQueue schedules one arrival per process.
func NewEventQueue(states []*ProcessState) *EventQueue {
	eq := make(EventQueue, 0, len(states))
	for _, s := range states {
		eq = append(eq, &ArrivalEvent{Time: s.Arrival(), Process: s})
	}
	heap.Init(&eq)
	return &eq
}

// NextTime reports the time of the earliest pending arrival.
func (eq *EventQueue) NextTime() (int64, bool) {
	if eq.Len() == 0 {
		return 0, false
	}
	return (*eq)[0].Time, true
}

// PopDue removes and returns, in admission order, every process arriving at or before now.
func (eq *EventQueue) PopDue(now int64) []*ProcessState {
	var due []*ProcessState
	for eq.Len() > 0 && (*eq)[0].Time <= now {
		ev := heap.Pop(eq).(*ArrivalEvent)
		due = append(due, ev.Process)
	}
	return due
}
