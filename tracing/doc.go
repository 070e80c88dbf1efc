// Package tracing is a thin wrapper around OpenTelemetry so that the rest of
// the code-base can instrument simulation phases through a couple of helper
// functions (StartSpan, EndSpan) without touching the upstream API directly.
// When Init is never called the spans are no-ops, which keeps tracing
// entirely opt-in.
package tracing
