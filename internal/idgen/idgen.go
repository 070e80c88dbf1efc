package idgen

import "github.com/google/uuid"

// NewFunc returns a new globally unique run identifier. It is a variable so
// tests can stub it.
var NewFunc = func() string { return uuid.New().String() }

// New returns a new run identifier.
func New() string { return NewFunc() }

// PIDSequence hands out process IDs starting at 1.  It is not safe for
// concurrent use; each loading site owns its own sequence.
type PIDSequence struct {
	next int
}

// Next returns the next process ID.
func (s *PIDSequence) Next() int {
	s.next++
	return s.next
}
