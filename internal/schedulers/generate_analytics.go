package schedulers

import (
	"fmt"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/util"
)

// generateResponse derives per-process metrics and aggregates from a finished run.
// Processes are reported in workload order.
func generateResponse(name string, processes []requests.Process, cpu *core.CPU, states []*core.ProcessState) responses.AlgorithmResult {
	byId := make(map[int]*core.ProcessState, len(states))
	for _, s := range states {
		byId[s.Id()] = s
	}

	processDetails := make([]responses.ProcessResult, 0, len(processes))
	for _, p := range processes {
		processDetails = append(processDetails, generateProcessDetails(byId[p.Id]))
	}

	averageWaitingTime, averageResponseTime, averageTurnaroundTime, averageCompletionTime := util.CalculateAverage(processDetails)

	makespan := cpu.Makespan()
	var utilization, throughput float64
	if makespan > 0 {
		utilization = 100 * float64(makespan-cpu.IdleTime) / float64(makespan)
		throughput = float64(len(processes)) / float64(makespan)
	}

	return responses.AlgorithmResult{
		Name:              name,
		GanttChart:        generateGanttChart(cpu.Segments),
		Processes:         processDetails,
		AvgTurnaroundTime: averageTurnaroundTime,
		AvgWaitingTime:    averageWaitingTime,
		AvgResponseTime:   averageResponseTime,
		AvgCompletionTime: averageCompletionTime,
		CpuUtilization:    utilization,
		Throughput:        throughput,
		Makespan:          makespan,
		IdleTime:          cpu.IdleTime,
	}
}

func generateProcessDetails(state *core.ProcessState) responses.ProcessResult {
	if state == nil || !state.Done() {
		panic(fmt.Sprintf("analytics: process %+v did not complete", state))
	}
	turnaroundTime := state.Completion - state.Arrival()
	return responses.ProcessResult{
		Id:             state.Process.Id,
		ArrivalTime:    state.Process.ArrivalTime,
		BurstTime:      state.Process.BurstTime,
		Priority:       state.Process.Priority,
		CompletionTime: state.Completion,
		TurnaroundTime: turnaroundTime,
		WaitingTime:    turnaroundTime - state.Burst(),
		ResponseTime:   state.FirstStart - state.Arrival(),
	}
}

func generateGanttChart(segments []core.Segment) []responses.GanttEntry {
	chart := make([]responses.GanttEntry, 0, len(segments))
	for _, seg := range segments {
		entry := responses.GanttEntry{StartTime: seg.Start, EndTime: seg.End}
		if !seg.Idle {
			id := seg.ProcessId
			entry.ProcessId = &id
		}
		chart = append(chart, entry)
	}
	return chart
}
