package memory

import "fmt"

// Block is a contiguous span of the simulated address space.  The allocator
// owns every Block it manages; callers only ever see value copies.  At all
// times the allocator's blocks form a sorted, contiguous, non-overlapping
// partition of [0, totalMemory).
type Block struct {
	Start     int  `json:"start"`
	Size      int  `json:"size"`
	Allocated bool `json:"allocated"`
	// PID identifies the owning process; it is meaningful only while
	// Allocated is true.
	PID int `json:"pid,omitempty"`
}

// End returns the inclusive end address of the block.
func (b Block) End() int {
	return b.Start + b.Size - 1
}

// String renders the block in the compact map notation used by the console
// driver, e.g. "[0-99:P1,100MB]" or "[100-1023:Free,924MB]".
func (b Block) String() string {
	owner := "Free"
	if b.Allocated {
		owner = fmt.Sprintf("P%d", b.PID)
	}
	return fmt.Sprintf("[%d-%d:%s,%dMB]", b.Start, b.End(), owner, b.Size)
}
