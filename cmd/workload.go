package cmd

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/schedulers"
)

// loadWorkload reads a schedule request from a .json, .yaml/.yml or .csv file.
// CSV rows are id,burst,arrival[,priority] and select no algorithms.
func loadWorkload(path string) (*requests.ScheduleRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workload: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		var request requests.ScheduleRequest
		if err := json.Unmarshal(data, &request); err != nil {
			return nil, fmt.Errorf("parsing workload %s: %w", path, err)
		}
		return &request, nil
	case ".yaml", ".yml":
		return parseYAMLWorkload(data)
	case ".csv":
		processes, err := parseCSVProcesses(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("parsing workload %s: %w", path, err)
		}
		return &requests.ScheduleRequest{Processes: processes}, nil
	}
	return nil, fmt.Errorf("unsupported workload format %q", filepath.Ext(path))
}

// parseYAMLWorkload decodes with strict field checking so typos fail loudly.
func parseYAMLWorkload(data []byte) (*requests.ScheduleRequest, error) {
	var request requests.ScheduleRequest
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&request); err != nil {
		return nil, fmt.Errorf("parsing workload YAML: %w", err)
	}
	return &request, nil
}

func parseCSVProcesses(r io.Reader) ([]requests.Process, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	processes := make([]requests.Process, 0, len(rows))
	for i, row := range rows {
		if len(row) < 3 || len(row) > 4 {
			return nil, fmt.Errorf("line %d: expected 3 or 4 fields, got %d", i+1, len(row))
		}
		values := make([]int, len(row))
		for j, field := range row {
			if values[j], err = strconv.Atoi(strings.TrimSpace(field)); err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
		}
		p := requests.Process{Id: values[0], BurstTime: values[1], ArrivalTime: values[2]}
		if len(values) == 4 {
			p.Priority = values[3]
		}
		processes = append(processes, p)
	}
	return processes, nil
}

// parseAlgorithmList turns "fcfs,rr,srtn" or "all" into request flags.
func parseAlgorithmList(list string) (requests.Algorithms, error) {
	var flags requests.Algorithms
	for _, key := range strings.Split(list, ",") {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if key == "all" {
			for _, algorithm := range schedulers.AllAlgorithms {
				algorithm.Enable(&flags)
			}
			continue
		}
		algorithm, ok := schedulers.ParseAlgorithm(key)
		if !ok {
			return flags, fmt.Errorf("unknown algorithm %q", key)
		}
		algorithm.Enable(&flags)
	}
	return flags, nil
}
