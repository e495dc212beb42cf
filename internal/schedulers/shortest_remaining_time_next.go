package schedulers

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// byRemaining orders by remaining time, then arrival time, then id.
func byRemaining(a, b *core.ProcessState) bool {
	if a.Remaining != b.Remaining {
		return a.Remaining < b.Remaining
	}
	return byArrival(a, b)
}

// ScheduleShortestRemainingTimeNext is the preemptive form of SJF. An arrival
// with strictly less remaining time interrupts the running process.
func ScheduleShortestRemainingTimeNext(processes []requests.Process) responses.AlgorithmResult {
	return RunPolicy(Policy{Algorithm: ShortestRemainingTimeNext}, processes, nil)
}
