package metrics

import (
	"github.com/osimkit/osim/model/process"
	"github.com/osimkit/osim/service/scheduler"
)

// Summary holds the run-level performance figures.
type Summary struct {
	AvgWaitingTime    float64 `json:"avgWaitingTime"`
	AvgTurnaroundTime float64 `json:"avgTurnaroundTime"`
	AvgResponseTime   float64 `json:"avgResponseTime"`
	// Throughput is completed processes per simulated time unit.
	Throughput float64 `json:"throughput"`
	// CPUUtilization is the busy share of total simulated time, in percent.
	CPUUtilization float64 `json:"cpuUtilization"`
}

// Summarize computes the summary for a finished run.  Empty input or a zero
// total time yields zero values rather than an error.
func Summarize(completed []*process.Process, gantt []scheduler.Slice, totalTime int) Summary {
	var summary Summary
	if len(completed) == 0 {
		return summary
	}

	waiting, turnaround, response := 0, 0, 0
	for _, p := range completed {
		waiting += p.WaitingTime
		turnaround += p.TurnaroundTime
		response += p.ResponseTime
	}
	count := float64(len(completed))
	summary.AvgWaitingTime = float64(waiting) / count
	summary.AvgTurnaroundTime = float64(turnaround) / count
	summary.AvgResponseTime = float64(response) / count

	if totalTime > 0 {
		busy := 0
		for _, slice := range gantt {
			busy += slice.End - slice.Start
		}
		summary.Throughput = count / float64(totalTime)
		summary.CPUUtilization = float64(busy) / float64(totalTime) * 100
	}
	return summary
}
