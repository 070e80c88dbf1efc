// Package progress provides a lightweight tracker that keeps aggregated
// counters (processes admitted, running, completed, slices executed, …) for a
// single simulation run.  The tracker instance lives in the run context –
// every component that receives the context can update the counters via the
// Delta helper without requiring a global registry.  A context without a
// tracker makes every update a no-op.
package progress
