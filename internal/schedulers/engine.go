package schedulers

import (
	"sync"

	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// DefaultLevelQuanta is used for the feedback queue when neither the request
// nor the configuration provides level quanta.
var DefaultLevelQuanta = []int{5, 8}

type Options struct {
	// Parallel runs each selected algorithm in its own goroutine.
	Parallel bool
	// LevelQuanta applies when a request selects mlfq without its own quanta.
	LevelQuanta []int
	Logger      *logrus.Entry
}

// Policies builds one policy per selected algorithm, in enumeration order.
// The request is expected to be valid.
func Policies(request *requests.ScheduleRequest, options Options) []Policy {
	policies := make([]Policy, 0, len(AllAlgorithms))
	for _, algorithm := range AllAlgorithms {
		if !algorithm.Selected(request.Algorithms) {
			continue
		}
		policy := Policy{Algorithm: algorithm}
		switch algorithm {
		case RoundRobin:
			policy.TimeQuantum = int64(request.TimeQuantum)
		case MultilevelFeedbackQueue:
			quanta := request.MlfqTimeQuanta
			if len(quanta) == 0 {
				quanta = options.LevelQuanta
			}
			if len(quanta) == 0 {
				quanta = DefaultLevelQuanta
			}
			policy.LevelQuanta = make([]int64, len(quanta))
			for i, q := range quanta {
				policy.LevelQuanta[i] = int64(q)
			}
		}
		policies = append(policies, policy)
	}
	return policies
}

// Run validates the request and simulates every selected algorithm against
// its own copy of the workload. Results follow enumeration order. The only
// error returned is a *requests.ValidationError.
func Run(request *requests.ScheduleRequest, options Options) ([]responses.AlgorithmResult, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	log := options.Logger
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	policies := Policies(request, options)
	results := make([]responses.AlgorithmResult, len(policies))
	if !options.Parallel {
		for i, policy := range policies {
			results[i] = RunPolicy(policy, request.Processes, log)
		}
		return results, nil
	}

	var wg sync.WaitGroup
	wg.Add(len(policies))
	for i, policy := range policies {
		go func(i int, policy Policy) {
			defer wg.Done()
			results[i] = RunPolicy(policy, request.Processes, log)
		}(i, policy)
	}
	wg.Wait()

	return results, nil
}

// RunPolicy simulates a single policy. It does not validate the workload.
func RunPolicy(policy Policy, processes []requests.Process, log *logrus.Entry) responses.AlgorithmResult {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	log = log.WithField("algorithm", policy.Algorithm.String())
	log.Infof("running %s algorithm ...", policy.Name())

	cpu, states := simulate(policy, processes, log)
	response := generateResponse(policy.Name(), processes, cpu, states)

	log.Debugf("makespan=%d utilization=%.2f%% throughput=%.4f", response.Makespan, response.CpuUtilization, response.Throughput)
	return response
}
