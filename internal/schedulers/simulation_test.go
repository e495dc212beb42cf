package schedulers

import (
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulate_DispatchLogReportsWaitSinceLastReady(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	workload := procs([4]int{1, 0, 5, 0}, [4]int{2, 1, 3, 0})

	_, states := simulate(Policy{Algorithm: RoundRobin, TimeQuantum: 2}, workload, logrus.NewEntry(logger))

	var dispatches []string
	for _, entry := range hook.AllEntries() {
		if strings.Contains(entry.Message, "dispatched") {
			dispatches = append(dispatches, entry.Message)
		}
	}
	assert.Equal(t, []string{
		"pid: 1 dispatched at 0 after waiting 0 (remaining 5)",
		"pid: 2 dispatched at 2 after waiting 1 (remaining 3)",
		"pid: 1 dispatched at 4 after waiting 2 (remaining 3)",
		"pid: 2 dispatched at 6 after waiting 2 (remaining 1)",
		"pid: 1 dispatched at 7 after waiting 1 (remaining 1)",
	}, dispatches)

	// last time each process re-entered the ready queue
	require.Len(t, states, 2)
	assert.Equal(t, int64(6), states[0].LastReady)
	assert.Equal(t, int64(4), states[1].LastReady)
}
