package progress

import (
	"context"
	"sync"
	"time"
)

// Delta represents an incremental counter change emitted by the scheduler or
// the engine façade.  The fields are signed and therefore can be either
// positive (increment) or negative (decrement).
type Delta struct {
	Admitted  int
	Pending   int
	Running   int
	Completed int
	Rejected  int
	Slices    int
}

// Progress keeps aggregated counters for one simulation run.  It is safe for
// concurrent use.
type Progress struct {
	// Identification – informative only, filled when the run starts.
	RunID     string
	Policy    string
	StartedAt time.Time

	// Counters – modified via Update().
	AdmittedProcesses  int
	PendingProcesses   int
	RunningProcesses   int
	CompletedProcesses int
	RejectedProcesses  int
	ExecutedSlices     int

	sync.Mutex
	onChange func(Progress)
}

// Update applies the supplied delta to the tracker.  If an onChange callback
// has been registered it is invoked with a copy of the updated tracker
// outside the critical section so that the callback can perform slow
// operations (rendering, I/O) without blocking the simulation.
func (p *Progress) Update(d Delta) {
	if p == nil {
		return
	}

	p.Lock()

	p.AdmittedProcesses += d.Admitted
	p.PendingProcesses += d.Pending
	p.RunningProcesses += d.Running
	p.CompletedProcesses += d.Completed
	p.RejectedProcesses += d.Rejected
	p.ExecutedSlices += d.Slices

	snapshot := *p
	cb := p.onChange

	p.Unlock()

	if cb != nil {
		cb(snapshot)
	}
}

// Snapshot returns a copy of the tracker suitable for read-only inspection.
func (p *Progress) Snapshot() Progress {
	if p == nil {
		return Progress{}
	}
	p.Lock()
	defer p.Unlock()
	return *p
}

// OnChange registers a callback that is invoked after every Update.  Passing
// nil disables the callback; only one callback can be active at a time.
func (p *Progress) OnChange(cb func(Progress)) {
	if p == nil {
		return
	}
	p.Lock()
	p.onChange = cb
	p.Unlock()
}

type trackerKeyT struct{}

var trackerKey trackerKeyT

// WithNewTracker creates a new Progress tracker, embeds it in a derived
// context and returns both.  The caller may optionally pass an onChange
// callback that will be invoked after every counter update.
func WithNewTracker(ctx context.Context, runID, policy string, onChange func(Progress)) (context.Context, *Progress) {
	if ctx == nil {
		ctx = context.Background()
	}
	tr := &Progress{
		RunID:     runID,
		Policy:    policy,
		StartedAt: time.Now(),
		onChange:  onChange,
	}
	return context.WithValue(ctx, trackerKey, tr), tr
}

// FromContext extracts the Progress tracker from ctx; the second return value
// is false when the context carries no tracker.
func FromContext(ctx context.Context) (*Progress, bool) {
	if ctx == nil {
		return nil, false
	}
	tr, ok := ctx.Value(trackerKey).(*Progress)
	return tr, ok
}

// UpdateCtx looks up the tracker in ctx (if any) and applies the supplied
// delta.
func UpdateCtx(ctx context.Context, d Delta) {
	if tr, ok := FromContext(ctx); ok {
		tr.Update(d)
	}
}
