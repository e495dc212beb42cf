package schedulers

import (
	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
)

// simulate drives one policy over a fresh copy of the workload and returns
// the recorded timeline together with the final process states. The clock
// jumps between decision points: arrivals, completions and slice expiry.
func simulate(policy Policy, processes []requests.Process, log *logrus.Entry) (*core.CPU, []*core.ProcessState) {
	states := core.NewProcessStates(processes)
	arrivals := core.NewEventQueue(states)
	ready := policy.newReadyQueue()
	cpu := core.NewCPU()

	var clock int64
	admit := func() {
		for _, s := range arrivals.PopDue(clock) {
			s.LastReady = s.Arrival()
			ready.Push(s)
		}
	}

	unfinished := len(states)
	for unfinished > 0 {
		admit()
		if ready.Len() == 0 {
			next, ok := arrivals.NextTime()
			if !ok {
				panic("simulation: unfinished processes but no pending arrivals")
			}
			log.Debugf("cpu idle from %d to %d", clock, next)
			cpu.Idle(clock, next)
			clock = next
			continue
		}

		current := ready.Pop()
		log.Debugf("pid: %d dispatched at %d after waiting %d (remaining %d)", current.Id(), clock, clock-current.LastReady, current.Remaining)
		end := clock + policy.runLength(current)

		preempted := false
		if policy.Algorithm.Preemptive() {
			// re-evaluate at every arrival inside the run, not only at its end
			for {
				next, ok := arrivals.NextTime()
				if !ok || next >= end {
					break
				}
				cpu.Execute(current, clock, next)
				clock = next
				admit()
				if best := ready.Peek(); best != nil && policy.preempts(best, current) {
					log.Debugf("pid: %d preempted by pid: %d at %d", current.Id(), best.Id(), clock)
					preempted = true
					break
				}
			}
		}
		if !preempted {
			cpu.Execute(current, clock, end)
			clock = end
		}

		if current.Done() {
			unfinished--
			log.Debugf("pid: %d completed at %d", current.Id(), current.Completion)
			continue
		}

		// arrivals during the slice go ahead of the interrupted process
		admit()
		current.LastReady = clock
		ready.Requeue(current)
	}

	return cpu, states
}
