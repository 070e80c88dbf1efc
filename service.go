package osim

import (
	"context"
	"fmt"
	"time"

	"github.com/osimkit/osim/internal/clock"
	"github.com/osimkit/osim/internal/idgen"
	"github.com/osimkit/osim/model/memory"
	"github.com/osimkit/osim/model/process"
	"github.com/osimkit/osim/policy"
	"github.com/osimkit/osim/progress"
	"github.com/osimkit/osim/service/allocator"
	"github.com/osimkit/osim/service/metrics"
	"github.com/osimkit/osim/service/scheduler"
	"github.com/osimkit/osim/tracing"
)

// Service represents the simulation engine.  A single Service can drive any
// number of independent runs; each Run builds a fresh allocator and scheduler
// so that no state leaks between runs.
type Service struct {
	config     *Config
	onProgress func(progress.Progress)
}

// Report aggregates the complete outcome of one simulation run.
type Report struct {
	RunID     string        `json:"runId"`
	Policy    policy.Policy `json:"policy"`
	StartedAt time.Time     `json:"startedAt"`
	Elapsed   time.Duration `json:"elapsed"`

	// Completed lists the scheduled processes in completion order, with
	// their timing metrics filled in.
	Completed []*process.Process `json:"completed"`
	// Unallocated lists the processes rejected because no free block could
	// satisfy their memory requirement.
	Unallocated []*process.Process `json:"unallocated,omitempty"`

	Gantt     []scheduler.Slice `json:"gantt"`
	TotalTime int               `json:"totalTime"`
	Summary   metrics.Summary   `json:"summary"`

	// Memory state sampled after allocation, while the admitted processes
	// were resident.
	MemoryUtilization float64        `json:"memoryUtilization"`
	Fragmentation     float64        `json:"fragmentation"`
	Blocks            []memory.Block `json:"blocks"`
	// FinalBlocks is the memory map after every process was released; a
	// correct run always ends with a single free block.
	FinalBlocks []memory.Block `json:"finalBlocks"`
}

// New creates a simulation service for the supplied options.
func New(options ...Option) (*Service, error) {
	srv := &Service{config: DefaultConfig()}
	for _, option := range options {
		option(srv)
	}
	if err := srv.config.Validate(); err != nil {
		return nil, err
	}
	return srv, nil
}

// Config returns the service configuration.
func (s *Service) Config() *Config {
	return s.config
}

// Run performs a complete simulation: memory allocation, CPU scheduling,
// metric aggregation and memory release.  The supplied processes are
// mutated in place; pass freshly built ones for every run.
func (s *Service) Run(ctx context.Context, processes []*process.Process) (*Report, error) {
	runID := idgen.New()
	startedAt := clock.Now()

	ctx, tracker := progress.WithNewTracker(ctx, runID, string(s.config.Scheduler.Policy), s.onProgress)
	ctx, span := tracing.StartSpan(ctx, "osim.Run", "internal")
	span.WithAttributes(map[string]string{
		"run.id":          runID,
		"run.policy":      string(s.config.Scheduler.Policy),
		"memory.strategy": string(s.config.Memory.Strategy),
	})

	report, err := s.run(ctx, tracker, processes)
	tracing.EndSpan(span, err)
	if err != nil {
		return nil, err
	}

	report.RunID = runID
	report.StartedAt = startedAt
	report.Elapsed = clock.Now().Sub(startedAt)
	return report, nil
}

func (s *Service) run(ctx context.Context, tracker *progress.Progress, processes []*process.Process) (*Report, error) {
	alloc, err := allocator.New(s.config.Memory.TotalMemory, s.config.Memory.Strategy)
	if err != nil {
		return nil, fmt.Errorf("failed to create allocator: %w", err)
	}
	sched, err := scheduler.New(s.config.Scheduler.Policy,
		scheduler.WithTimeQuantum(s.config.Scheduler.TimeQuantum))
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	report := &Report{Policy: s.config.Scheduler.Policy}

	_, allocSpan := tracing.StartSpan(ctx, "osim.allocate", "internal")
	var admitted []*process.Process
	for _, candidate := range processes {
		if candidate == nil {
			tracing.EndSpan(allocSpan, nil)
			return nil, fmt.Errorf("process was nil")
		}
		if alloc.Allocate(candidate) {
			admitted = append(admitted, candidate)
			continue
		}
		report.Unallocated = append(report.Unallocated, candidate)
		tracker.Update(progress.Delta{Rejected: 1})
	}
	report.MemoryUtilization = alloc.Utilization()
	report.Fragmentation = alloc.Fragmentation()
	report.Blocks = alloc.Blocks()
	tracing.EndSpan(allocSpan, nil)

	schedCtx, schedSpan := tracing.StartSpan(ctx, "osim.schedule", "internal")
	completed, err := sched.Schedule(schedCtx, admitted)
	tracing.EndSpan(schedSpan, err)
	if err != nil {
		return nil, fmt.Errorf("failed to schedule: %w", err)
	}
	report.Completed = completed
	report.Gantt = sched.GanttChart()
	report.TotalTime = sched.TotalTime()
	report.Summary = metrics.Summarize(completed, report.Gantt, report.TotalTime)

	_, releaseSpan := tracing.StartSpan(ctx, "osim.release", "internal")
	for _, resident := range admitted {
		if !alloc.Deallocate(resident) {
			tracing.EndSpan(releaseSpan, nil)
			return nil, fmt.Errorf("failed to release memory of process %d", resident.PID)
		}
	}
	report.FinalBlocks = alloc.Blocks()
	tracing.EndSpan(releaseSpan, nil)

	return report, nil
}
