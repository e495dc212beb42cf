package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/generator"
	"cpu-scheduler/internal/requests"
)

var (
	processCount   int    // Number of processes to generate
	seed           int64  // Seed for random generation; 0 picks one from the clock
	generateFormat string // json, yaml or table
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a random workload",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.GetSchedulerConfig()
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		processes, err := generator.New(cfg.Generator, seed).Processes(processCount)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		switch generateFormat {
		case "json":
			return writeJSON(out, requests.ScheduleRequest{Processes: processes})
		case "yaml":
			encoder := yaml.NewEncoder(out)
			encoder.SetIndent(2)
			if err := encoder.Encode(requests.ScheduleRequest{Processes: processes}); err != nil {
				return err
			}
			return encoder.Close()
		case "table":
			outputProcesses(out, processes)
			return nil
		}
		return fmt.Errorf("unknown output format %q", generateFormat)
	},
}

func init() {
	generateCmd.Flags().IntVarP(&processCount, "count", "n", 10, "Number of processes")
	generateCmd.Flags().Int64Var(&seed, "seed", 0, "Seed for random generation (0 = time based)")
	generateCmd.Flags().StringVarP(&generateFormat, "format", "f", "json", "Output format (json, yaml, table)")
}
