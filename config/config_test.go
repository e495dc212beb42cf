package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9095, c.Port)
	assert.Equal(t, "info", c.LogLevel)
	assert.True(t, c.Parallel)
	assert.Equal(t, 2, c.RoundRobinTimeQuantum)
	assert.Equal(t, []int{5, 8}, c.MultilevelFeedbackQueueLevelsTimeQuantum)
	assert.Equal(t, 1000, c.Generator.MaxCount)
	assert.Equal(t, 100, c.Generator.MaxBurst)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
port: 8080
log_level: debug
scheduler:
  parallel: false
  round_robin:
    time_quantum: 4
  multilevel_feedback_queue:
    levels_time_quantum: [2, 4, 8]
generator:
  max_count: 50
  max_burst: 20
`)

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, c.Port)
	assert.Equal(t, "debug", c.LogLevel)
	assert.False(t, c.Parallel)
	assert.Equal(t, 4, c.RoundRobinTimeQuantum)
	assert.Equal(t, []int{2, 4, 8}, c.MultilevelFeedbackQueueLevelsTimeQuantum)
	assert.Equal(t, 50, c.Generator.MaxCount)
	assert.Equal(t, 20, c.Generator.MaxBurst)
	assert.Equal(t, 1, c.Generator.MinBurst)

	opts := c.EngineOptions(nil)
	assert.False(t, opts.Parallel)
	assert.Equal(t, []int{2, 4, 8}, opts.LevelQuanta)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "port: 8080\n")
	t.Setenv("SCHEDULER_PORT", "7070")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, c.Port)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "an explicit path must exist")

	for _, content := range []string{
		"port: 0\n",
		"log_level: chatty\n",
		"scheduler:\n  round_robin:\n    time_quantum: 0\n",
		"scheduler:\n  multilevel_feedback_queue:\n    levels_time_quantum: [3, -1]\n",
		"generator:\n  min_burst: 10\n  max_burst: 5\n",
	} {
		_, err := Load(writeConfig(t, content))
		assert.Error(t, err, content)
	}
}
