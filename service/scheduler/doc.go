// Package scheduler drives simulated CPU time over a set of memory-resident
// processes.  A Service is configured with one scheduling policy (FCFS, SJF,
// Priority or RR) and executes the whole set to completion in discrete steps,
// producing per-process timing metrics and a chronological execution trace
// (Gantt data).  Time is purely simulated – nothing blocks and identical
// input always yields an identical trace.
package scheduler
