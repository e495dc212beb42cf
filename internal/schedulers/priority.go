package schedulers

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// byPriority orders by priority value ascending (lower value runs first),
// then arrival time, then id.
func byPriority(a, b *core.ProcessState) bool {
	if a.Process.Priority != b.Process.Priority {
		return a.Process.Priority < b.Process.Priority
	}
	return byArrival(a, b)
}

func SchedulePriority(processes []requests.Process) responses.AlgorithmResult {
	return RunPolicy(Policy{Algorithm: PriorityNonPreemptive}, processes, nil)
}

// SchedulePriorityPreemptive lets an arrival with a strictly lower priority
// value interrupt the running process.
func SchedulePriorityPreemptive(processes []requests.Process) responses.AlgorithmResult {
	return RunPolicy(Policy{Algorithm: PriorityPreemptive}, processes, nil)
}
