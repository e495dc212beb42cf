package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"cpu-scheduler/internal/generator"
	"cpu-scheduler/internal/schedulers"
)

type SchedulerConfig struct {
	Port     int
	LogLevel string
	// Parallel runs the selected algorithms of a request concurrently.
	Parallel                                 bool
	RoundRobinTimeQuantum                    int
	MultilevelFeedbackQueueLevelsTimeQuantum []int
	Generator                                generator.Bounds
}

// ConfigPath overrides the default ./config.yaml lookup when set.
var ConfigPath string

var once sync.Once
var config *SchedulerConfig

func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		var err error
		if config, err = Load(ConfigPath); err != nil {
			logrus.Fatalln(err)
		}
	})

	return config
}

// Load reads configuration from path, or from ./config.yaml when path is
// empty. A missing default file is not an error. Environment variables
// prefixed with SCHEDULER_ override file values.
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetDefault("port", 9095)
	v.SetDefault("log_level", "info")
	v.SetDefault("scheduler.parallel", true)
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("scheduler.multilevel_feedback_queue.levels_time_quantum", schedulers.DefaultLevelQuanta)
	v.SetDefault("generator.max_count", generator.DefaultBounds.MaxCount)
	v.SetDefault("generator.min_burst", generator.DefaultBounds.MinBurst)
	v.SetDefault("generator.max_burst", generator.DefaultBounds.MaxBurst)
	v.SetDefault("generator.min_priority", generator.DefaultBounds.MinPriority)

	v.SetEnvPrefix("SCHEDULER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	c := &SchedulerConfig{
		Port:                                     v.GetInt("port"),
		LogLevel:                                 v.GetString("log_level"),
		Parallel:                                 v.GetBool("scheduler.parallel"),
		RoundRobinTimeQuantum:                    v.GetInt("scheduler.round_robin.time_quantum"),
		MultilevelFeedbackQueueLevelsTimeQuantum: v.GetIntSlice("scheduler.multilevel_feedback_queue.levels_time_quantum"),
		Generator: generator.Bounds{
			MaxCount:    v.GetInt("generator.max_count"),
			MinBurst:    v.GetInt("generator.min_burst"),
			MaxBurst:    v.GetInt("generator.max_burst"),
			MinPriority: v.GetInt("generator.min_priority"),
		},
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *SchedulerConfig) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}
	if c.RoundRobinTimeQuantum <= 0 {
		return fmt.Errorf("scheduler.round_robin.time_quantum must be positive, got %d", c.RoundRobinTimeQuantum)
	}
	for _, q := range c.MultilevelFeedbackQueueLevelsTimeQuantum {
		if q <= 0 {
			return fmt.Errorf("scheduler.multilevel_feedback_queue.levels_time_quantum must be positive, got %v", c.MultilevelFeedbackQueueLevelsTimeQuantum)
		}
	}
	if err := c.Generator.Validate(); err != nil {
		return err
	}
	return nil
}

// EngineOptions maps the configuration onto the simulation engine.
func (c *SchedulerConfig) EngineOptions(log *logrus.Entry) schedulers.Options {
	return schedulers.Options{
		Parallel:    c.Parallel,
		LevelQuanta: c.MultilevelFeedbackQueueLevelsTimeQuantum,
		Logger:      log,
	}
}
