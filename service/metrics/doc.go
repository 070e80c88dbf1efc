// Package metrics aggregates per-process timing results and the execution
// trace into the run-level performance summary (average waiting, turnaround
// and response times, throughput and CPU utilization).
package metrics
