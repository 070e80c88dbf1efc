// Package render turns simulation results into the fixed-width console
// representations used by the interactive driver: the process execution
// table, the ASCII Gantt chart and the memory map.  Everything returns plain
// strings so the caller decides where the output goes.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/osimkit/osim/model/memory"
	"github.com/osimkit/osim/model/process"
	"github.com/osimkit/osim/service/metrics"
	"github.com/osimkit/osim/service/scheduler"
)

const lineWidth = 80

// Header renders a centered section header between separator lines.
func Header(title string) string {
	var b strings.Builder
	rule := strings.Repeat("=", lineWidth)
	padding := (lineWidth - len(title)) / 2
	if padding < 0 {
		padding = 0
	}
	b.WriteString(rule + "\n")
	b.WriteString(strings.Repeat(" ", padding) + title + "\n")
	b.WriteString(rule + "\n")
	return b.String()
}

// ProcessTable renders the per-process execution details, ordered by PID.
func ProcessTable(processes []*process.Process) string {
	rows := make([]*process.Process, len(processes))
	copy(rows, processes)
	sort.Slice(rows, func(i, j int) bool { return rows[i].PID < rows[j].PID })

	var b strings.Builder
	fmt.Fprintf(&b, "%-6s %-9s %-7s %-8s %-7s %-10s %-9s %-6s %-9s\n",
		"PID", "Arrival", "Burst", "Memory", "Start", "Complete", "Waiting", "TAT", "Response")
	b.WriteString(strings.Repeat("-", lineWidth) + "\n")
	for _, p := range rows {
		start := "-"
		if p.Started() {
			start = fmt.Sprintf("%d", *p.StartTime)
		}
		fmt.Fprintf(&b, "%-6d %-9d %-7d %-8d %-7s %-10d %-9d %-6d %-9d\n",
			p.PID, p.ArrivalTime, p.BurstTime, p.MemoryRequired, start,
			p.CompletionTime, p.WaitingTime, p.TurnaroundTime, p.ResponseTime)
	}
	return b.String()
}

// GanttChart renders the trace as labelled execution cells over a time axis:
//
//	|  P1  |  P2  | P3 |
//	0      5      8   10
func GanttChart(gantt []scheduler.Slice) string {
	if len(gantt) == 0 {
		return ""
	}

	var cells, axis strings.Builder
	cells.WriteString("|")
	axis.WriteString(fmt.Sprintf("%d", gantt[0].Start))
	for _, slice := range gantt {
		width := cellWidth(slice)
		label := fmt.Sprintf(" P%d ", slice.PID)
		cells.WriteString(center(label, width) + "|")

		end := fmt.Sprintf("%d", slice.End)
		padding := width + 1 - len(end)
		if padding < 1 {
			padding = 1
		}
		axis.WriteString(strings.Repeat(" ", padding) + end)
	}
	return cells.String() + "\n" + axis.String() + "\n"
}

// cellWidth scales a slice to three columns per time unit, capped so long
// bursts do not blow up the chart.
func cellWidth(slice scheduler.Slice) int {
	width := (slice.End - slice.Start) * 3
	if width > 15 {
		width = 15
	}
	if width < 4 {
		width = 4
	}
	return width
}

func center(text string, width int) string {
	if len(text) >= width {
		return text
	}
	left := (width - len(text)) / 2
	right := width - len(text) - left
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}

// MemoryMap renders the block list in the compact map notation, e.g.
// "[0-99:P1,100MB] | [100-1023:Free,924MB]".
func MemoryMap(blocks []memory.Block) string {
	parts := make([]string, len(blocks))
	for i, block := range blocks {
		parts[i] = block.String()
	}
	return strings.Join(parts, " | ")
}

// Summary renders the run-level performance figures.
func Summary(s metrics.Summary, memoryUtilization, fragmentation float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-30s %s\n", "Metric", "Value")
	b.WriteString(strings.Repeat("-", 50) + "\n")
	fmt.Fprintf(&b, "%-30s %.2f time units\n", "Average Waiting Time", s.AvgWaitingTime)
	fmt.Fprintf(&b, "%-30s %.2f time units\n", "Average Turnaround Time", s.AvgTurnaroundTime)
	fmt.Fprintf(&b, "%-30s %.2f time units\n", "Average Response Time", s.AvgResponseTime)
	fmt.Fprintf(&b, "%-30s %.4f processes/unit\n", "Throughput", s.Throughput)
	fmt.Fprintf(&b, "%-30s %.2f %%\n", "CPU Utilization", s.CPUUtilization)
	fmt.Fprintf(&b, "%-30s %.2f %%\n", "Memory Utilization", memoryUtilization)
	fmt.Fprintf(&b, "%-30s %.2f %%\n", "External Fragmentation", fragmentation)
	return b.String()
}
