package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osimkit/osim/model/memory"
	"github.com/osimkit/osim/model/process"
	"github.com/osimkit/osim/service/metrics"
	"github.com/osimkit/osim/service/scheduler"
)

func TestProcessTable(t *testing.T) {
	start := 5
	done := process.New(2, 1, 3, 200, 0)
	done.StartTime = &start
	done.ResponseTime = 4
	done.CompletionTime = 8
	done.TurnaroundTime = 7
	done.WaitingTime = 4
	done.State = process.StateTerminated

	pending := process.New(1, 0, 5, 100, 0)

	out := ProcessTable([]*process.Process{done, pending})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4, "header, rule and two rows")
	assert.Contains(t, lines[0], "PID")
	// Rows come back ordered by PID and the unstarted process renders "-".
	assert.True(t, strings.HasPrefix(lines[2], "1"))
	assert.Contains(t, lines[2], " - ")
	assert.True(t, strings.HasPrefix(lines[3], "2"))
	assert.Contains(t, lines[3], "5")
}

func TestGanttChart(t *testing.T) {
	out := GanttChart([]scheduler.Slice{
		{PID: 1, Start: 0, End: 5},
		{PID: 2, Start: 5, End: 8},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "P1")
	assert.Contains(t, lines[0], "P2")
	assert.True(t, strings.HasPrefix(lines[1], "0"))
	assert.True(t, strings.HasSuffix(lines[1], "8"))
	assert.Contains(t, lines[1], "5")

	assert.Empty(t, GanttChart(nil))
}

func TestMemoryMap(t *testing.T) {
	out := MemoryMap([]memory.Block{
		{Start: 0, Size: 100, Allocated: true, PID: 1},
		{Start: 100, Size: 924},
	})
	assert.Equal(t, "[0-99:P1,100MB] | [100-1023:Free,924MB]", out)
}

func TestSummary(t *testing.T) {
	out := Summary(metrics.Summary{
		AvgWaitingTime:    3.5,
		AvgTurnaroundTime: 9.25,
		AvgResponseTime:   3.5,
		Throughput:        0.25,
		CPUUtilization:    100,
	}, 75.5, 12.5)
	assert.Contains(t, out, "Average Waiting Time")
	assert.Contains(t, out, "3.50 time units")
	assert.Contains(t, out, "0.2500 processes/unit")
	assert.Contains(t, out, "75.50 %")
	assert.Contains(t, out, "12.50 %")
}
