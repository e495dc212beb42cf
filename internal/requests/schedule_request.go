package requests

import "fmt"

// Process is one workload entry. Lower Priority values run first.
type Process struct {
	Id          int `json:"id" yaml:"id"`
	ArrivalTime int `json:"arrivalTime" yaml:"arrivalTime"`
	BurstTime   int `json:"burstTime" yaml:"burstTime"`
	Priority    int `json:"priority" yaml:"priority"`
}

// Algorithms selects which schedulers to run. Unknown keys in the
// request body are dropped by the decoder.
type Algorithms struct {
	FCFS                    bool `json:"fcfs" yaml:"fcfs"`
	SJF                     bool `json:"sjf" yaml:"sjf"`
	SRTN                    bool `json:"srtn" yaml:"srtn"`
	RoundRobin              bool `json:"roundRobin" yaml:"roundRobin"`
	Priority                bool `json:"priority" yaml:"priority"`
	PriorityPreemptive      bool `json:"priorityPreemptive" yaml:"priorityPreemptive"`
	MultilevelFeedbackQueue bool `json:"mlfq" yaml:"mlfq"`
}

type ScheduleRequest struct {
	Processes      []Process  `json:"processes" yaml:"processes"`
	Algorithms     Algorithms `json:"algorithms" yaml:"algorithms"`
	TimeQuantum    int        `json:"timeQuantum" yaml:"timeQuantum"`
	MlfqTimeQuanta []int      `json:"mlfqTimeQuanta,omitempty" yaml:"mlfqTimeQuanta,omitempty"`
}

// ValidationError names the first request field that failed validation.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func invalid(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// Validate checks the workload and the settings of the selected algorithms.
// It returns nil or a *ValidationError.
func (r *ScheduleRequest) Validate() error {
	if len(r.Processes) == 0 {
		return invalid("processes", "at least one process is required")
	}

	seen := make(map[int]int, len(r.Processes))
	for i, p := range r.Processes {
		if p.Id <= 0 {
			return invalid(fmt.Sprintf("processes[%d].id", i), "must be a positive integer, got %d", p.Id)
		}
		if first, ok := seen[p.Id]; ok {
			return invalid(fmt.Sprintf("processes[%d].id", i), "duplicate id %d (first used by processes[%d])", p.Id, first)
		}
		seen[p.Id] = i
		if p.ArrivalTime < 0 {
			return invalid(fmt.Sprintf("processes[%d].arrivalTime", i), "must not be negative, got %d", p.ArrivalTime)
		}
		if p.BurstTime <= 0 {
			return invalid(fmt.Sprintf("processes[%d].burstTime", i), "must be positive, got %d", p.BurstTime)
		}
	}

	if r.Algorithms.RoundRobin && r.TimeQuantum <= 0 {
		return invalid("timeQuantum", "must be positive when roundRobin is requested, got %d", r.TimeQuantum)
	}
	if r.Algorithms.MultilevelFeedbackQueue {
		for i, q := range r.MlfqTimeQuanta {
			if q <= 0 {
				return invalid(fmt.Sprintf("mlfqTimeQuanta[%d]", i), "must be positive, got %d", q)
			}
		}
	}
	return nil
}
