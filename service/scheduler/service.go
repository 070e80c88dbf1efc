package scheduler

import (
	"context"
	"fmt"
	"sort"

	"github.com/osimkit/osim/model/process"
	"github.com/osimkit/osim/policy"
	"github.com/osimkit/osim/progress"
)

// Slice is one execution interval of the trace.
type Slice struct {
	PID   int `json:"pid"`
	Start int `json:"start"`
	End   int `json:"end"`
}

// Option customises a scheduler Service.
type Option func(*Service)

// WithTimeQuantum sets the RR time quantum.  It is ignored by the
// non-preemptive policies.
func WithTimeQuantum(quantum int) Option {
	return func(s *Service) {
		s.timeQuantum = quantum
	}
}

// Service simulates one CPU under a single scheduling policy.  A Service
// tracks one simulation: current time, the completed list and the trace
// accumulate across Schedule calls, mirroring a single machine run.
type Service struct {
	policy      policy.Policy
	timeQuantum int

	queue       readyQueue
	currentTime int
	completed   []*process.Process
	gantt       []Slice
}

// New creates a scheduler for the given policy.  An unknown policy or RR
// without a positive quantum is rejected here so a zero quantum can never
// produce a non-advancing slice mid-simulation.
func New(p policy.Policy, opts ...Option) (*Service, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("unknown scheduling policy: %q", p)
	}
	s := &Service{policy: p}
	for _, opt := range opts {
		opt(s)
	}
	if p == policy.RoundRobin && s.timeQuantum < 1 {
		return nil, fmt.Errorf("round robin requires a positive time quantum, got %d", s.timeQuantum)
	}
	s.queue = newReadyQueue(p)
	return s, nil
}

// Policy returns the configured scheduling policy.
func (s *Service) Policy() policy.Policy {
	return s.policy
}

// Schedule runs every process to completion and returns them in completion
// order.  Processes must already hold memory; handing over an unallocated
// process is a caller bug and fails the whole call before any time advances.
func (s *Service) Schedule(ctx context.Context, processes []*process.Process) ([]*process.Process, error) {
	for _, p := range processes {
		if !p.MemoryAllocated {
			return nil, fmt.Errorf("process %d entered the scheduler without memory allocated", p.PID)
		}
	}

	// Ascending arrival order; ties keep the original list order.
	pending := make([]*process.Process, len(processes))
	copy(pending, processes)
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].ArrivalTime < pending[j].ArrivalTime
	})

	next := 0
	admit := func() {
		for next < len(pending) && pending[next].ArrivalTime <= s.currentTime {
			pending[next].State = process.StateReady
			s.queue.push(pending[next])
			progress.UpdateCtx(ctx, progress.Delta{Admitted: 1, Pending: -1})
			next++
		}
	}
	progress.UpdateCtx(ctx, progress.Delta{Pending: len(pending)})

	for next < len(pending) || s.queue.size() > 0 {
		admit()

		// CPU idle: jump straight to the next arrival, the trace records
		// nothing for idle time.
		if s.queue.size() == 0 {
			s.currentTime = pending[next].ArrivalTime
			continue
		}

		current := s.queue.pop()
		if s.policy == policy.RoundRobin {
			finished := s.execute(ctx, current, s.timeQuantum)
			if !finished {
				// Arrivals up to and including the new current time enter
				// the queue before the preempted process re-joins the tail.
				admit()
				current.State = process.StateReady
				s.queue.push(current)
			}
		} else {
			s.execute(ctx, current, current.RemainingTime)
		}
	}

	return s.completed, nil
}

// execute runs one slice of at most timeSlice units and reports whether the
// process finished.
func (s *Service) execute(ctx context.Context, p *process.Process, timeSlice int) bool {
	p.State = process.StateRunning
	progress.UpdateCtx(ctx, progress.Delta{Running: 1})

	// First dispatch: start and response are written exactly once.
	if p.StartTime == nil {
		start := s.currentTime
		p.StartTime = &start
		p.ResponseTime = start - p.ArrivalTime
	}

	run := timeSlice
	if p.RemainingTime < run {
		run = p.RemainingTime
	}
	sliceStart := s.currentTime
	p.RemainingTime -= run
	s.currentTime += run
	s.gantt = append(s.gantt, Slice{PID: p.PID, Start: sliceStart, End: s.currentTime})
	progress.UpdateCtx(ctx, progress.Delta{Running: -1, Slices: 1})

	if p.RemainingTime > 0 {
		return false
	}

	p.State = process.StateTerminated
	p.CompletionTime = s.currentTime
	p.TurnaroundTime = p.CompletionTime - p.ArrivalTime
	p.WaitingTime = p.TurnaroundTime - p.BurstTime
	s.completed = append(s.completed, p)
	progress.UpdateCtx(ctx, progress.Delta{Completed: 1})
	return true
}

// GanttChart returns the execution trace in chronological order.
func (s *Service) GanttChart() []Slice {
	return s.gantt
}

// TotalTime returns the simulated time consumed so far.
func (s *Service) TotalTime() int {
	return s.currentTime
}
