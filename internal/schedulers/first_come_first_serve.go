package schedulers

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// byArrival orders by arrival time, then id.
func byArrival(a, b *core.ProcessState) bool {
	if a.Arrival() != b.Arrival() {
		return a.Arrival() < b.Arrival()
	}
	return a.Id() < b.Id()
}

// ScheduleFirstComeFirstServe runs each process to completion in arrival order.
func ScheduleFirstComeFirstServe(processes []requests.Process) responses.AlgorithmResult {
	return RunPolicy(Policy{Algorithm: FirstComeFirstServe}, processes, nil)
}
