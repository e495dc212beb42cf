package schedulers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// seg is a compact (pid, start, end) triple; pid 0 marks idle time.
type seg struct {
	pid        int
	start, end int64
}

func segments(result responses.AlgorithmResult) []seg {
	out := make([]seg, 0, len(result.GanttChart))
	for _, g := range result.GanttChart {
		s := seg{start: g.StartTime, end: g.EndTime}
		if g.ProcessId != nil {
			s.pid = *g.ProcessId
		}
		out = append(out, s)
	}
	return out
}

// procs builds a workload from (id, arrival, burst, priority) quadruples.
func procs(rows ...[4]int) []requests.Process {
	out := make([]requests.Process, 0, len(rows))
	for _, r := range rows {
		out = append(out, requests.Process{Id: r[0], ArrivalTime: r[1], BurstTime: r[2], Priority: r[3]})
	}
	return out
}

func processResult(t *testing.T, result responses.AlgorithmResult, id int) responses.ProcessResult {
	t.Helper()
	for _, p := range result.Processes {
		if p.Id == id {
			return p
		}
	}
	require.Failf(t, "missing process", "process %d not in result %q", id, result.Name)
	return responses.ProcessResult{}
}

// assertTimelineInvariants checks the properties every run must satisfy.
func assertTimelineInvariants(t *testing.T, workload []requests.Process, result responses.AlgorithmResult) {
	t.Helper()
	require.NotEmpty(t, result.GanttChart, result.Name)

	var cursor int64
	executed := make(map[int]int64)
	for i, g := range result.GanttChart {
		assert.Equal(t, cursor, g.StartTime, "%s: segment %d is not contiguous", result.Name, i)
		assert.Less(t, g.StartTime, g.EndTime, "%s: segment %d is empty", result.Name, i)
		if !g.Idle() {
			executed[*g.ProcessId] += g.Duration()
			if i > 0 && !result.GanttChart[i-1].Idle() {
				assert.NotEqual(t, *result.GanttChart[i-1].ProcessId, *g.ProcessId, "%s: segment %d should have merged", result.Name, i)
			}
		}
		cursor = g.EndTime
	}
	assert.Equal(t, result.Makespan, cursor, result.Name)

	var maxCompletion int64
	for _, p := range workload {
		assert.Equal(t, int64(p.BurstTime), executed[p.Id], "%s: pid %d executed time", result.Name, p.Id)

		m := processResult(t, result, p.Id)
		assert.Equal(t, m.CompletionTime-int64(p.ArrivalTime), m.TurnaroundTime, result.Name)
		assert.Equal(t, m.TurnaroundTime-int64(p.BurstTime), m.WaitingTime, result.Name)
		assert.GreaterOrEqual(t, m.WaitingTime, int64(0), result.Name)
		assert.GreaterOrEqual(t, m.ResponseTime, int64(0), result.Name)
		assert.LessOrEqual(t, m.ResponseTime, m.WaitingTime, result.Name)
		if m.CompletionTime > maxCompletion {
			maxCompletion = m.CompletionTime
		}
	}
	assert.Equal(t, maxCompletion, result.Makespan, "%s: makespan is the last completion", result.Name)
}
