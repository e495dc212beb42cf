package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/schedulers"
)

var (
	workloadPath  string // Workload file (.json, .yaml, .csv)
	algorithmList string // Comma-separated algorithm keys, or "all"
	timeQuantum   int    // Round robin quantum; 0 keeps the file's value or the configured default
	mlfqQuanta    []int  // Feedback queue level quanta
	outputFormat  string // table or json
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Simulate scheduling algorithms over a workload file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.GetSchedulerConfig()

		request, err := loadWorkload(workloadPath)
		if err != nil {
			return err
		}
		if err := applySimulateFlags(cmd, cfg, request); err != nil {
			return err
		}

		results, err := schedulers.Run(request, cfg.EngineOptions(logrus.WithField("workload", workloadPath)))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		switch outputFormat {
		case "json":
			return writeJSON(out, results)
		case "table":
			for _, result := range results {
				outputResult(out, result)
			}
			if len(results) > 1 {
				outputComparison(out, results)
			}
			return nil
		}
		return fmt.Errorf("unknown output format %q", outputFormat)
	},
}

// applySimulateFlags lets flags override the workload file. The configured
// round robin quantum fills in when neither provides one.
func applySimulateFlags(cmd *cobra.Command, cfg *config.SchedulerConfig, request *requests.ScheduleRequest) error {
	if cmd.Flags().Changed("algorithms") || request.Algorithms == (requests.Algorithms{}) {
		flags, err := parseAlgorithmList(algorithmList)
		if err != nil {
			return err
		}
		request.Algorithms = flags
	}
	if timeQuantum != 0 {
		request.TimeQuantum = timeQuantum
	}
	if request.TimeQuantum == 0 {
		request.TimeQuantum = cfg.RoundRobinTimeQuantum
	}
	if len(mlfqQuanta) > 0 {
		request.MlfqTimeQuanta = mlfqQuanta
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func init() {
	simulateCmd.Flags().StringVarP(&workloadPath, "workload", "w", "", "Workload file (.json, .yaml, .yml, .csv)")
	simulateCmd.Flags().StringVarP(&algorithmList, "algorithms", "a", "all", "Comma-separated algorithms (fcfs,sjf,srtn,rr,priority,priority-preemptive,mlfq) or all")
	simulateCmd.Flags().IntVarP(&timeQuantum, "quantum", "q", 0, "Round robin time quantum")
	simulateCmd.Flags().IntSliceVar(&mlfqQuanta, "mlfq-quanta", nil, "Comma-separated feedback queue level quanta")
	simulateCmd.Flags().StringVarP(&outputFormat, "format", "f", "table", "Output format (table, json)")
	_ = simulateCmd.MarkFlagRequired("workload")
}
