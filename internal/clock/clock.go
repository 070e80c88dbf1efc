package clock

import "time"

// NowFunc returns current wall time. Override in tests for determinism.
// Simulated time never reads it; only report timestamps do.
var NowFunc = time.Now

// Now is a thin wrapper around NowFunc.
func Now() time.Time { return NowFunc() }
