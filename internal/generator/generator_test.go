package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/internal/requests"
)

func TestProcesses_RespectsBounds(t *testing.T) {
	g := New(DefaultBounds, 42)
	processes, err := g.Processes(25)
	require.NoError(t, err)
	require.Len(t, processes, 25)

	for i, p := range processes {
		assert.Equal(t, i+1, p.Id)
		assert.GreaterOrEqual(t, p.BurstTime, 1)
		assert.LessOrEqual(t, p.BurstTime, 100)
		assert.GreaterOrEqual(t, p.ArrivalTime, 0)
		assert.LessOrEqual(t, p.ArrivalTime, 50)
		assert.GreaterOrEqual(t, p.Priority, 1)
		assert.LessOrEqual(t, p.Priority, 50)
	}

	// generated workloads are always schedulable
	request := requests.ScheduleRequest{Processes: processes, Algorithms: requests.Algorithms{FCFS: true}}
	assert.NoError(t, request.Validate())
}

func TestProcesses_SameSeedSameWorkload(t *testing.T) {
	a, err := New(DefaultBounds, 7).Processes(10)
	require.NoError(t, err)
	b, err := New(DefaultBounds, 7).Processes(10)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestProcesses_SmallCountUsesMinimumArrivalWindow(t *testing.T) {
	g := New(Bounds{MaxCount: 10, MinBurst: 1, MaxBurst: 1, MinPriority: 1}, 3)
	processes, err := g.Processes(1)
	require.NoError(t, err)
	assert.LessOrEqual(t, processes[0].ArrivalTime, 10)
	assert.Equal(t, 1, processes[0].BurstTime)
}

func TestProcesses_RejectsCountOutOfRange(t *testing.T) {
	g := New(Bounds{MaxCount: 5, MinBurst: 1, MaxBurst: 10, MinPriority: 1}, 1)
	for _, count := range []int{0, -3, 6} {
		_, err := g.Processes(count)
		assert.Error(t, err, "count %d", count)
	}
}

func TestBounds_Validate(t *testing.T) {
	assert.NoError(t, DefaultBounds.Validate())
	assert.Error(t, Bounds{MaxCount: 0, MinBurst: 1, MaxBurst: 2}.Validate())
	assert.Error(t, Bounds{MaxCount: 1, MinBurst: 0, MaxBurst: 2}.Validate())
	assert.Error(t, Bounds{MaxCount: 1, MinBurst: 5, MaxBurst: 2}.Validate())
}
