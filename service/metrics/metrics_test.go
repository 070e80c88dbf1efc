package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osimkit/osim/model/process"
	"github.com/osimkit/osim/service/scheduler"
)

func finished(pid, arrival, burst, start int) *process.Process {
	p := process.New(pid, arrival, burst, 100, 0)
	p.StartTime = &start
	p.ResponseTime = start - arrival
	p.CompletionTime = start + burst
	p.TurnaroundTime = p.CompletionTime - arrival
	p.WaitingTime = p.TurnaroundTime - burst
	p.RemainingTime = 0
	p.State = process.StateTerminated
	return p
}

func TestSummarize(t *testing.T) {
	// FCFS run of arrivals [0,1,2], bursts [5,3,2]: waits [0,4,6],
	// turnarounds [5,7,8], responses [0,4,6].
	completed := []*process.Process{
		finished(1, 0, 5, 0),
		finished(2, 1, 3, 5),
		finished(3, 2, 2, 8),
	}
	gantt := []scheduler.Slice{
		{PID: 1, Start: 0, End: 5},
		{PID: 2, Start: 5, End: 8},
		{PID: 3, Start: 8, End: 10},
	}

	summary := Summarize(completed, gantt, 10)
	assert.InDelta(t, 10.0/3, summary.AvgWaitingTime, 1e-9)
	assert.InDelta(t, 20.0/3, summary.AvgTurnaroundTime, 1e-9)
	assert.InDelta(t, 10.0/3, summary.AvgResponseTime, 1e-9)
	assert.InDelta(t, 0.3, summary.Throughput, 1e-9)
	assert.InDelta(t, 100.0, summary.CPUUtilization, 1e-9)
}

func TestSummarizeWithIdleTime(t *testing.T) {
	completed := []*process.Process{
		finished(1, 0, 2, 0),
		finished(2, 5, 1, 5),
	}
	gantt := []scheduler.Slice{
		{PID: 1, Start: 0, End: 2},
		{PID: 2, Start: 5, End: 6},
	}

	summary := Summarize(completed, gantt, 6)
	assert.InDelta(t, 50.0, summary.CPUUtilization, 1e-9)
	assert.InDelta(t, 2.0/6, summary.Throughput, 1e-9)
	assert.InDelta(t, 0.0, summary.AvgWaitingTime, 1e-9)
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil, nil, 0)
	assert.Equal(t, Summary{}, summary)

	summary = Summarize([]*process.Process{}, []scheduler.Slice{}, 42)
	assert.Equal(t, Summary{}, summary)
}
