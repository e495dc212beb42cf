package schedulers

import (
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// ScheduleRoundRobin grants each process at most timeQuantum before moving
// it to the tail of the queue. Processes that arrived during the slice are
// queued ahead of it.
func ScheduleRoundRobin(processes []requests.Process, timeQuantum int) responses.AlgorithmResult {
	return RunPolicy(Policy{Algorithm: RoundRobin, TimeQuantum: int64(timeQuantum)}, processes, nil)
}
