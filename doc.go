// Package osim provides a deterministic simulator for classic operating
// system resource management: CPU scheduling over a single processor and
// contiguous memory allocation over a fixed pool.
//
// A Service is configured once (policy, time quantum, memory size and fit
// strategy) and then drives complete runs with Run: memory is allocated for
// each process, the admitted set is scheduled to completion, performance
// metrics are derived, and all memory is released again.  Every run is fully
// reproducible; the simulation advances a logical clock and never consults
// wall time.
package osim
