package osim

import (
	"github.com/osimkit/osim/policy"
	"github.com/osimkit/osim/progress"
)

// Option represents a service option.
type Option func(*Service)

// WithConfig replaces the whole configuration.
func WithConfig(config *Config) Option {
	return func(s *Service) {
		if config != nil {
			s.config = config
		}
	}
}

// WithPolicy sets the scheduling policy.
func WithPolicy(p policy.Policy) Option {
	return func(s *Service) {
		s.config.Scheduler.Policy = p
	}
}

// WithTimeQuantum sets the Round Robin time slice.
func WithTimeQuantum(quantum int) Option {
	return func(s *Service) {
		s.config.Scheduler.TimeQuantum = quantum
	}
}

// WithStrategy sets the memory fit strategy.
func WithStrategy(strategy policy.Strategy) Option {
	return func(s *Service) {
		s.config.Memory.Strategy = strategy
	}
}

// WithTotalMemory sets the size of the managed memory pool in MB.
func WithTotalMemory(totalMemory int) Option {
	return func(s *Service) {
		s.config.Memory.TotalMemory = totalMemory
	}
}

// WithProgressListener registers a callback invoked after every progress
// counter update during Run.
func WithProgressListener(onChange func(progress.Progress)) Option {
	return func(s *Service) {
		s.onProgress = onChange
	}
}
