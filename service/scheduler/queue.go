package scheduler

import (
	"container/heap"

	"github.com/osimkit/osim/model/process"
	"github.com/osimkit/osim/policy"
)

// readyQueue abstracts the ready structure so that each policy carries its
// own ordering in one place: FCFS and RR use plain FIFO order, SJF and
// Priority use a min-ordering on their key.  Every variant is deterministic;
// equal keys fall back to arrival time and then to insertion order.
type readyQueue interface {
	push(p *process.Process)
	pop() *process.Process
	size() int
}

func newReadyQueue(p policy.Policy) readyQueue {
	switch p {
	case policy.SJF:
		return newOrderedQueue(func(a, b *process.Process) (int, int) {
			return a.RemainingTime, b.RemainingTime
		})
	case policy.Priority:
		return newOrderedQueue(func(a, b *process.Process) (int, int) {
			return a.Priority, b.Priority
		})
	default:
		return &fifoQueue{}
	}
}

// fifoQueue serves processes in insertion order.
type fifoQueue struct {
	items []*process.Process
}

func (q *fifoQueue) push(p *process.Process) {
	q.items = append(q.items, p)
}

func (q *fifoQueue) pop() *process.Process {
	if len(q.items) == 0 {
		return nil
	}
	head := q.items[0]
	q.items = q.items[1:]
	return head
}

func (q *fifoQueue) size() int {
	return len(q.items)
}

// entry pairs a process with its insertion sequence number, the explicit
// tertiary tie-break that keeps heap ordering stable across runs.
type entry struct {
	p   *process.Process
	seq int
}

// keyFunc extracts the primary ordering key of two processes.
type keyFunc func(a, b *process.Process) (int, int)

// orderedQueue is a binary min-heap keyed by (key, arrival time, insertion
// sequence).
type orderedQueue struct {
	entries []entry
	key     keyFunc
	nextSeq int
}

func newOrderedQueue(key keyFunc) *orderedQueue {
	return &orderedQueue{key: key}
}

func (q *orderedQueue) push(p *process.Process) {
	heap.Push(q, entry{p: p, seq: q.nextSeq})
	q.nextSeq++
}

func (q *orderedQueue) pop() *process.Process {
	if len(q.entries) == 0 {
		return nil
	}
	return heap.Pop(q).(entry).p
}

func (q *orderedQueue) size() int {
	return len(q.entries)
}

// heap.Interface

func (q *orderedQueue) Len() int { return len(q.entries) }

func (q *orderedQueue) Less(i, j int) bool {
	a, b := q.entries[i], q.entries[j]
	ka, kb := q.key(a.p, b.p)
	if ka != kb {
		return ka < kb
	}
	if a.p.ArrivalTime != b.p.ArrivalTime {
		return a.p.ArrivalTime < b.p.ArrivalTime
	}
	return a.seq < b.seq
}

func (q *orderedQueue) Swap(i, j int) {
	q.entries[i], q.entries[j] = q.entries[j], q.entries[i]
}

func (q *orderedQueue) Push(x interface{}) {
	q.entries = append(q.entries, x.(entry))
}

func (q *orderedQueue) Pop() interface{} {
	last := len(q.entries) - 1
	popped := q.entries[last]
	q.entries = q.entries[:last]
	return popped
}
