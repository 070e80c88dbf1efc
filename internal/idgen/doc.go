// Package idgen produces run identifiers and sequential process IDs.  It
// lives under `internal` because callers should not rely on the exact shape
// of run IDs – they should treat them as opaque strings.
package idgen
