package schedulers

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// byBurst orders by total burst time, then arrival time, then id.
// Warning: long jobs can starve under a steady stream of short arrivals.
func byBurst(a, b *core.ProcessState) bool {
	if a.Burst() != b.Burst() {
		return a.Burst() < b.Burst()
	}
	return byArrival(a, b)
}

// ScheduleShortestJobFirst is non-preemptive: once dispatched a job runs to completion.
func ScheduleShortestJobFirst(processes []requests.Process) responses.AlgorithmResult {
	return RunPolicy(Policy{Algorithm: ShortestJobFirst}, processes, nil)
}
