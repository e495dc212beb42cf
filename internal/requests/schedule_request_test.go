package requests

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() ScheduleRequest {
	return ScheduleRequest{
		Processes: []Process{
			{Id: 1, ArrivalTime: 0, BurstTime: 5, Priority: 2},
			{Id: 2, ArrivalTime: 1, BurstTime: 3, Priority: 1},
		},
		Algorithms:  Algorithms{FCFS: true, RoundRobin: true},
		TimeQuantum: 2,
	}
}

func TestValidate_AcceptsValidRequest(t *testing.T) {
	r := validRequest()
	assert.NoError(t, r.Validate())
}

func TestValidate_ReportsOffendingField(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *ScheduleRequest)
		field  string
	}{
		{"empty process list", func(r *ScheduleRequest) { r.Processes = nil }, "processes"},
		{"non-positive id", func(r *ScheduleRequest) { r.Processes[1].Id = 0 }, "processes[1].id"},
		{"duplicate id", func(r *ScheduleRequest) { r.Processes[1].Id = 1 }, "processes[1].id"},
		{"negative arrival", func(r *ScheduleRequest) { r.Processes[0].ArrivalTime = -1 }, "processes[0].arrivalTime"},
		{"zero burst", func(r *ScheduleRequest) { r.Processes[1].BurstTime = 0 }, "processes[1].burstTime"},
		{"negative burst", func(r *ScheduleRequest) { r.Processes[0].BurstTime = -4 }, "processes[0].burstTime"},
		{"missing quantum", func(r *ScheduleRequest) { r.TimeQuantum = 0 }, "timeQuantum"},
		{"negative quantum", func(r *ScheduleRequest) { r.TimeQuantum = -2 }, "timeQuantum"},
		{"bad mlfq quantum", func(r *ScheduleRequest) {
			r.Algorithms.MultilevelFeedbackQueue = true
			r.MlfqTimeQuanta = []int{4, 0}
		}, "mlfqTimeQuanta[1]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRequest()
			tt.mutate(&r)

			err := r.Validate()

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr), "got %v", err)
			assert.Equal(t, tt.field, validationErr.Field)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestValidate_QuantumOnlyRequiredForRoundRobin(t *testing.T) {
	r := validRequest()
	r.Algorithms.RoundRobin = false
	r.TimeQuantum = 0
	assert.NoError(t, r.Validate())
}

func TestValidate_MlfqQuantaIgnoredWhenNotSelected(t *testing.T) {
	r := validRequest()
	r.MlfqTimeQuanta = []int{-1}
	assert.NoError(t, r.Validate())
}

func TestDecode_UnknownAlgorithmKeysIgnored(t *testing.T) {
	body := `{"processes":[{"id":1,"arrivalTime":0,"burstTime":2,"priority":1}],
		"algorithms":{"fcfs":true,"lottery":true,"roundRobin":true},"timeQuantum":3}`

	var r ScheduleRequest
	require.NoError(t, json.Unmarshal([]byte(body), &r))

	assert.True(t, r.Algorithms.FCFS)
	assert.True(t, r.Algorithms.RoundRobin)
	assert.False(t, r.Algorithms.SJF)
	assert.Equal(t, 3, r.TimeQuantum)
	assert.NoError(t, r.Validate())
}
