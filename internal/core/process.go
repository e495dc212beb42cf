package core

import (
	"sort"

	"cpu-scheduler/internal/requests"
)

// ProcessState is the per-run bookkeeping for one process. Every
// simulation builds its own set, so runs never share state.
type ProcessState struct {
	Process   requests.Process
	Remaining int64

	Started    bool
	FirstStart int64
	Completion int64

	// Level is the current feedback-queue level; unused by other policies.
	Level int
	// LastReady is the last time the process entered a ready queue.
	LastReady int64
}

// NewProcessStates copies the workload into fresh states ordered by
// arrival time, then id.
func NewProcessStates(processes []requests.Process) []*ProcessState {
	states := make([]*ProcessState, 0, len(processes))
	for _, p := range processes {
		states = append(states, &ProcessState{
			Process:   p,
			Remaining: int64(p.BurstTime),
		})
	}
	sort.SliceStable(states, func(i, j int) bool {
		if states[i].Process.ArrivalTime != states[j].Process.ArrivalTime {
			return states[i].Process.ArrivalTime < states[j].Process.ArrivalTime
		}
		return states[i].Process.Id < states[j].Process.Id
	})
	return states
}

func (s *ProcessState) Id() int {
	return s.Process.Id
}

func (s *ProcessState) Arrival() int64 {
	return int64(s.Process.ArrivalTime)
}

func (s *ProcessState) Burst() int64 {
	return int64(s.Process.BurstTime)
}

func (s *ProcessState) Done() bool {
	return s.Remaining == 0
}
