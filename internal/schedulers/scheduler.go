package schedulers

import (
	"fmt"
	"strconv"
	"strings"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
)

// Algorithm tags one scheduling strategy. The simulation clock switches on
// it wherever strategies differ.
type Algorithm int

const (
	FirstComeFirstServe Algorithm = iota
	ShortestJobFirst
	ShortestRemainingTimeNext
	RoundRobin
	PriorityNonPreemptive
	PriorityPreemptive
	MultilevelFeedbackQueue
)

// AllAlgorithms lists every algorithm in request enumeration order.
var AllAlgorithms = []Algorithm{
	FirstComeFirstServe,
	ShortestJobFirst,
	ShortestRemainingTimeNext,
	RoundRobin,
	PriorityNonPreemptive,
	PriorityPreemptive,
	MultilevelFeedbackQueue,
}

var algorithmKeys = map[Algorithm]string{
	FirstComeFirstServe:       "fcfs",
	ShortestJobFirst:          "sjf",
	ShortestRemainingTimeNext: "srtn",
	RoundRobin:                "rr",
	PriorityNonPreemptive:     "priority",
	PriorityPreemptive:        "priority-preemptive",
	MultilevelFeedbackQueue:   "mlfq",
}

// String returns the short key used in routes and CLI flags.
func (a Algorithm) String() string {
	if key, ok := algorithmKeys[a]; ok {
		return key
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm resolves a short key. "roundRobin" and "priorityPreemptive"
// are accepted as well so request keys work too.
func ParseAlgorithm(key string) (Algorithm, bool) {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "roundrobin":
		return RoundRobin, true
	case "prioritypreemptive":
		return PriorityPreemptive, true
	}
	for a, k := range algorithmKeys {
		if strings.EqualFold(k, strings.TrimSpace(key)) {
			return a, true
		}
	}
	return 0, false
}

// Preemptive reports whether a new arrival may interrupt the running process.
func (a Algorithm) Preemptive() bool {
	return a == ShortestRemainingTimeNext || a == PriorityPreemptive
}

// Selected reports whether the request flags enable a.
func (a Algorithm) Selected(flags requests.Algorithms) bool {
	switch a {
	case FirstComeFirstServe:
		return flags.FCFS
	case ShortestJobFirst:
		return flags.SJF
	case ShortestRemainingTimeNext:
		return flags.SRTN
	case RoundRobin:
		return flags.RoundRobin
	case PriorityNonPreemptive:
		return flags.Priority
	case PriorityPreemptive:
		return flags.PriorityPreemptive
	case MultilevelFeedbackQueue:
		return flags.MultilevelFeedbackQueue
	}
	return false
}

// Enable switches a on in flags.
func (a Algorithm) Enable(flags *requests.Algorithms) {
	switch a {
	case FirstComeFirstServe:
		flags.FCFS = true
	case ShortestJobFirst:
		flags.SJF = true
	case ShortestRemainingTimeNext:
		flags.SRTN = true
	case RoundRobin:
		flags.RoundRobin = true
	case PriorityNonPreemptive:
		flags.Priority = true
	case PriorityPreemptive:
		flags.PriorityPreemptive = true
	case MultilevelFeedbackQueue:
		flags.MultilevelFeedbackQueue = true
	default:
		panic(fmt.Sprintf("unhandled algorithm %v", a))
	}
}

// Only returns request flags with just a enabled.
func Only(a Algorithm) requests.Algorithms {
	var flags requests.Algorithms
	a.Enable(&flags)
	return flags
}

// Policy is an algorithm together with its time-slice configuration.
type Policy struct {
	Algorithm   Algorithm
	TimeQuantum int64
	LevelQuanta []int64
}

// Name is the display name reported in results.
func (p Policy) Name() string {
	switch p.Algorithm {
	case FirstComeFirstServe:
		return "FCFS"
	case ShortestJobFirst:
		return "SJF"
	case ShortestRemainingTimeNext:
		return "SRTN"
	case RoundRobin:
		return fmt.Sprintf("Round Robin (TQ=%d)", p.TimeQuantum)
	case PriorityNonPreemptive:
		return "Priority (Non-Preemptive)"
	case PriorityPreemptive:
		return "Priority (Preemptive)"
	case MultilevelFeedbackQueue:
		quanta := make([]string, len(p.LevelQuanta))
		for i, q := range p.LevelQuanta {
			quanta[i] = strconv.FormatInt(q, 10)
		}
		return fmt.Sprintf("MLFQ (TQ=%s)", strings.Join(quanta, ","))
	}
	panic(fmt.Sprintf("unhandled algorithm %v", p.Algorithm))
}

func (p Policy) newReadyQueue() readyQueue {
	switch p.Algorithm {
	case FirstComeFirstServe:
		return newOrderedQueue(byArrival)
	case ShortestJobFirst:
		return newOrderedQueue(byBurst)
	case ShortestRemainingTimeNext:
		return newOrderedQueue(byRemaining)
	case PriorityNonPreemptive, PriorityPreemptive:
		return newOrderedQueue(byPriority)
	case RoundRobin:
		return &fifoQueue{}
	case MultilevelFeedbackQueue:
		return newFeedbackQueue(len(p.LevelQuanta))
	}
	panic(fmt.Sprintf("unhandled algorithm %v", p.Algorithm))
}

// runLength is how long the dispatched process may hold the CPU, ignoring preemption.
func (p Policy) runLength(s *core.ProcessState) int64 {
	switch p.Algorithm {
	case RoundRobin:
		return min(p.TimeQuantum, s.Remaining)
	case MultilevelFeedbackQueue:
		if s.Level < len(p.LevelQuanta) {
			return min(p.LevelQuanta[s.Level], s.Remaining)
		}
	}
	return s.Remaining
}

// preempts reports whether candidate strictly beats running on the primary
// ordering key. Ties keep the running process.
func (p Policy) preempts(candidate, running *core.ProcessState) bool {
	switch p.Algorithm {
	case ShortestRemainingTimeNext:
		return candidate.Remaining < running.Remaining
	case PriorityPreemptive:
		return candidate.Process.Priority < running.Process.Priority
	}
	return false
}
