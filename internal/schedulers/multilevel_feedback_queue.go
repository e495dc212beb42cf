package schedulers

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// feedbackQueue keeps one FIFO per level. Levels below len(quanta) are
// round robin; the last level runs FCFS until completion.
type feedbackQueue struct {
	levels []fifoQueue
	size   int
}

func newFeedbackQueue(roundRobinLevels int) *feedbackQueue {
	return &feedbackQueue{levels: make([]fifoQueue, roundRobinLevels+1)}
}

// Push puts new arrivals into the top level.
func (q *feedbackQueue) Push(s *core.ProcessState) {
	s.Level = 0
	q.levels[0].Push(s)
	q.size++
}

// Requeue demotes a process that used its whole quantum.
func (q *feedbackQueue) Requeue(s *core.ProcessState) {
	if s.Level < len(q.levels)-1 {
		s.Level++
	}
	q.levels[s.Level].Requeue(s)
	q.size++
}

func (q *feedbackQueue) Pop() *core.ProcessState {
	for i := range q.levels {
		if q.levels[i].Len() > 0 {
			q.size--
			return q.levels[i].Pop()
		}
	}
	panic("ready queue: pop from empty queue")
}

func (q *feedbackQueue) Peek() *core.ProcessState {
	for i := range q.levels {
		if s := q.levels[i].Peek(); s != nil {
			return s
		}
	}
	return nil
}

func (q *feedbackQueue) Len() int {
	return q.size
}

// ScheduleMultilevelFeedbackQueue runs the feedback queue with one round
// robin level per entry of timeQuantumList and a final FCFS level.
func ScheduleMultilevelFeedbackQueue(processes []requests.Process, timeQuantumList []int) responses.AlgorithmResult {
	quanta := make([]int64, len(timeQuantumList))
	for i, q := range timeQuantumList {
		quanta[i] = int64(q)
	}
	return RunPolicy(Policy{Algorithm: MultilevelFeedbackQueue, LevelQuanta: quanta}, processes, nil)
}
