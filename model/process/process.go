package process

// Process lifecycle states.
const (
	StateNew        = "NEW"
	StateReady      = "READY"
	StateRunning    = "RUNNING"
	StateTerminated = "TERMINATED"
)

// Process represents a single unit of work moving through the simulation.
// Identity and demand fields are fixed at construction; the scheduler owns the
// timing fields and the allocator owns the memory fields.
type Process struct {
	PID            int `json:"pid"`
	ArrivalTime    int `json:"arrivalTime"`
	BurstTime      int `json:"burstTime"`
	MemoryRequired int `json:"memoryRequired"`
	Priority       int `json:"priority"`

	RemainingTime int    `json:"remainingTime"`
	State         string `json:"state"`

	// StartTime is nil until the process is dispatched for the first time;
	// the scheduler writes it exactly once.
	StartTime *int `json:"startTime,omitempty"`

	// The derived metrics below are meaningful only once State is TERMINATED.
	ResponseTime   int `json:"responseTime"`
	CompletionTime int `json:"completionTime"`
	TurnaroundTime int `json:"turnaroundTime"`
	WaitingTime    int `json:"waitingTime"`

	// MemoryStart/MemoryEnd are inclusive bounds of the reservation, valid
	// only while MemoryAllocated is true.
	MemoryAllocated bool `json:"memoryAllocated"`
	MemoryStart     int  `json:"memoryStart"`
	MemoryEnd       int  `json:"memoryEnd"`
}

// New creates a process in the NEW state with its full burst outstanding.
func New(pid, arrivalTime, burstTime, memoryRequired, priority int) *Process {
	return &Process{
		PID:            pid,
		ArrivalTime:    arrivalTime,
		BurstTime:      burstTime,
		MemoryRequired: memoryRequired,
		Priority:       priority,
		RemainingTime:  burstTime,
		State:          StateNew,
	}
}

// Started reports whether the process has been dispatched at least once.
func (p *Process) Started() bool {
	return p.StartTime != nil
}

// Terminated reports whether the process has finished its burst.
func (p *Process) Terminated() bool {
	return p.State == StateTerminated
}
