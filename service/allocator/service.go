package allocator

import (
	"fmt"

	"github.com/osimkit/osim/model/memory"
	"github.com/osimkit/osim/model/process"
	"github.com/osimkit/osim/policy"
)

// Service manages a single linear memory space.  It exclusively owns all
// memory.Block values; processes only carry the start/end addresses of their
// reservation.
type Service struct {
	totalMemory int
	strategy    policy.Strategy
	blocks      []*memory.Block
	owned       map[int]*memory.Block
}

// New creates an allocator with one free block spanning the whole space.
// Invalid configuration is rejected here rather than surfacing mid-run.
func New(totalMemory int, strategy policy.Strategy) (*Service, error) {
	if totalMemory < 1 {
		return nil, fmt.Errorf("total memory must be positive, got %d", totalMemory)
	}
	if !strategy.Valid() {
		return nil, fmt.Errorf("unknown allocation strategy: %q", strategy)
	}
	return &Service{
		totalMemory: totalMemory,
		strategy:    strategy,
		blocks:      []*memory.Block{{Start: 0, Size: totalMemory}},
		owned:       make(map[int]*memory.Block),
	}, nil
}

// TotalMemory returns the size of the managed space in MB.
func (s *Service) TotalMemory() int {
	return s.totalMemory
}

// Strategy returns the configured placement strategy.
func (s *Service) Strategy() policy.Strategy {
	return s.strategy
}

// Allocate reserves p.MemoryRequired MB for the process.  On success the
// block list mutates exactly once and the process's memory fields are set; on
// failure nothing changes and false is returned.
func (s *Service) Allocate(p *process.Process) bool {
	if p == nil || p.MemoryRequired <= 0 {
		return false
	}
	if _, exists := s.owned[p.PID]; exists {
		return false
	}

	block, index := s.findBlock(p.MemoryRequired)
	if block == nil {
		return false
	}

	// Split off the surplus as a new free block right after the reservation.
	if block.Size > p.MemoryRequired {
		remainder := &memory.Block{
			Start: block.Start + p.MemoryRequired,
			Size:  block.Size - p.MemoryRequired,
		}
		s.blocks = append(s.blocks, nil)
		copy(s.blocks[index+2:], s.blocks[index+1:])
		s.blocks[index+1] = remainder
	}

	block.Size = p.MemoryRequired
	block.Allocated = true
	block.PID = p.PID
	s.owned[p.PID] = block

	p.MemoryAllocated = true
	p.MemoryStart = block.Start
	p.MemoryEnd = block.Start + p.MemoryRequired - 1
	return true
}

// Deallocate releases the process's reservation and merges every maximal run
// of adjacent free blocks.  It returns false when the process owns no block,
// which makes a second call on the same process a harmless no-op.
func (s *Service) Deallocate(p *process.Process) bool {
	if p == nil {
		return false
	}
	block, exists := s.owned[p.PID]
	if !exists {
		return false
	}

	block.Allocated = false
	block.PID = 0
	delete(s.owned, p.PID)
	s.mergeFreeBlocks()

	p.MemoryAllocated = false
	p.MemoryStart = 0
	p.MemoryEnd = 0
	return true
}

// Utilization returns the allocated share of total memory as a percentage,
// evaluated against the current block list.
func (s *Service) Utilization() float64 {
	used := 0
	for _, block := range s.blocks {
		if block.Allocated {
			used += block.Size
		}
	}
	return float64(used) / float64(s.totalMemory) * 100
}

// Fragmentation returns the external fragmentation percentage: the share of
// free memory that sits outside the largest free block.  With zero or one
// free block the result is 0.
func (s *Service) Fragmentation() float64 {
	totalFree, largestFree := 0, 0
	for _, block := range s.blocks {
		if block.Allocated {
			continue
		}
		totalFree += block.Size
		if block.Size > largestFree {
			largestFree = block.Size
		}
	}
	if totalFree == 0 {
		return 0
	}
	return float64(totalFree-largestFree) / float64(totalFree) * 100
}

// Blocks returns a value-copy snapshot of the block list for display.
func (s *Service) Blocks() []memory.Block {
	snapshot := make([]memory.Block, len(s.blocks))
	for i, block := range s.blocks {
		snapshot[i] = *block
	}
	return snapshot
}

// findBlock locates a free block of at least size MB under the configured
// strategy and returns it with its index, or (nil, -1) when none qualifies.
func (s *Service) findBlock(size int) (*memory.Block, int) {
	switch s.strategy {
	case policy.BestFit:
		return s.bestFit(size)
	case policy.WorstFit:
		return s.worstFit(size)
	default:
		return s.firstFit(size)
	}
}

// firstFit returns the first sufficient free block in address order.
func (s *Service) firstFit(size int) (*memory.Block, int) {
	for i, block := range s.blocks {
		if !block.Allocated && block.Size >= size {
			return block, i
		}
	}
	return nil, -1
}

// bestFit returns the free block with minimal slack; on equal slack the
// lowest address wins.
func (s *Service) bestFit(size int) (*memory.Block, int) {
	var best *memory.Block
	bestIndex := -1
	for i, block := range s.blocks {
		if block.Allocated || block.Size < size {
			continue
		}
		if best == nil || block.Size < best.Size {
			best, bestIndex = block, i
		}
	}
	return best, bestIndex
}

// worstFit returns the largest sufficient free block; ties keep the lowest
// address.
func (s *Service) worstFit(size int) (*memory.Block, int) {
	var worst *memory.Block
	worstIndex := -1
	for i, block := range s.blocks {
		if block.Allocated || block.Size < size {
			continue
		}
		if worst == nil || block.Size > worst.Size {
			worst, worstIndex = block, i
		}
	}
	return worst, worstIndex
}

// mergeFreeBlocks coalesces adjacent free blocks until no two remain next to
// each other, restoring the minimal partition.
func (s *Service) mergeFreeBlocks() {
	i := 0
	for i < len(s.blocks)-1 {
		current, next := s.blocks[i], s.blocks[i+1]
		if !current.Allocated && !next.Allocated {
			current.Size += next.Size
			s.blocks = append(s.blocks[:i+1], s.blocks[i+2:]...)
			continue
		}
		i++
	}
}
