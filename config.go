package osim

import (
	"fmt"

	"github.com/osimkit/osim/policy"
)

// SchedulerConfig holds CPU scheduling settings.
type SchedulerConfig struct {
	// Policy selects the scheduling discipline.
	Policy policy.Policy `json:"policy" yaml:"policy"`
	// TimeQuantum is the Round Robin time slice; ignored by the other
	// policies.
	TimeQuantum int `json:"timeQuantum,omitempty" yaml:"timeQuantum,omitempty"`
}

// MemoryConfig holds contiguous memory allocation settings.
type MemoryConfig struct {
	// TotalMemory is the size of the managed pool in MB.
	TotalMemory int `json:"totalMemory" yaml:"totalMemory"`
	// Strategy selects the free block fit strategy.
	Strategy policy.Strategy `json:"strategy" yaml:"strategy"`
}

// Config defines simulator settings.
type Config struct {
	Scheduler SchedulerConfig `json:"scheduler" yaml:"scheduler"`
	Memory    MemoryConfig    `json:"memory" yaml:"memory"`
}

// DefaultConfig returns a configuration with sensible defaults: FCFS
// scheduling with a Round Robin quantum of 2, and 1024 MB managed with
// First-Fit.
func DefaultConfig() *Config {
	return &Config{
		Scheduler: SchedulerConfig{
			Policy:      policy.FCFS,
			TimeQuantum: 2,
		},
		Memory: MemoryConfig{
			TotalMemory: 1024,
			Strategy:    policy.FirstFit,
		},
	}
}

// Validate checks the configuration and returns a descriptive error on the
// first violation found.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config was nil")
	}
	if !c.Scheduler.Policy.Valid() {
		return fmt.Errorf("invalid scheduling policy: %q", c.Scheduler.Policy)
	}
	if c.Scheduler.Policy == policy.RoundRobin && c.Scheduler.TimeQuantum < 1 {
		return fmt.Errorf("time quantum must be at least 1, had: %d", c.Scheduler.TimeQuantum)
	}
	if !c.Memory.Strategy.Valid() {
		return fmt.Errorf("invalid allocation strategy: %q", c.Memory.Strategy)
	}
	if c.Memory.TotalMemory < 1 {
		return fmt.Errorf("total memory must be at least 1, had: %d", c.Memory.TotalMemory)
	}
	return nil
}
