package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

func outputResult(w io.Writer, result responses.AlgorithmResult) {
	outputTitle(w, result.Name)
	outputGantt(w, result.GanttChart)
	outputSchedule(w, result)
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func outputGantt(w io.Writer, gantt []responses.GanttEntry) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for _, entry := range gantt {
		label := "idle"
		if !entry.Idle() {
			label = "P" + strconv.Itoa(*entry.ProcessId)
		}
		padding := strings.Repeat(" ", max(0, (8-len(label))/2))
		_, _ = fmt.Fprint(w, padding, label, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i, entry := range gantt {
		_, _ = fmt.Fprint(w, entry.StartTime, "\t")
		if i == len(gantt)-1 {
			_, _ = fmt.Fprint(w, entry.EndTime)
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

func outputSchedule(w io.Writer, result responses.AlgorithmResult) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Response", "Wait", "Turnaround", "Exit"})
	for _, p := range result.Processes {
		table.Append([]string{
			strconv.Itoa(p.Id),
			strconv.Itoa(p.Priority),
			strconv.Itoa(p.BurstTime),
			strconv.Itoa(p.ArrivalTime),
			strconv.FormatInt(p.ResponseTime, 10),
			strconv.FormatInt(p.WaitingTime, 10),
			strconv.FormatInt(p.TurnaroundTime, 10),
			strconv.FormatInt(p.CompletionTime, 10),
		})
	}
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", result.AvgResponseTime),
		fmt.Sprintf("Average\n%.2f", result.AvgWaitingTime),
		fmt.Sprintf("Average\n%.2f", result.AvgTurnaroundTime),
		fmt.Sprintf("Throughput\n%.2f/t", result.Throughput)})
	table.Render()
	_, _ = fmt.Fprintf(w, "CPU utilization %.2f%% over %d time units (%d idle)\n\n", result.CpuUtilization, result.Makespan, result.IdleTime)
}

// outputComparison summarizes every algorithm on one table.
func outputComparison(w io.Writer, results []responses.AlgorithmResult) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg Turnaround", "Avg Waiting", "Avg Response", "CPU %", "Throughput"})
	for _, r := range results {
		table.Append([]string{
			r.Name,
			fmt.Sprintf("%.2f", r.AvgTurnaroundTime),
			fmt.Sprintf("%.2f", r.AvgWaitingTime),
			fmt.Sprintf("%.2f", r.AvgResponseTime),
			fmt.Sprintf("%.2f", r.CpuUtilization),
			fmt.Sprintf("%.4f", r.Throughput),
		})
	}
	table.Render()
}

func outputProcesses(w io.Writer, processes []requests.Process) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Arrival", "Burst", "Priority"})
	for _, p := range processes {
		table.Append([]string{
			strconv.Itoa(p.Id),
			strconv.Itoa(p.ArrivalTime),
			strconv.Itoa(p.BurstTime),
			strconv.Itoa(p.Priority),
		})
	}
	table.Render()
}
