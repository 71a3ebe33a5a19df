package core

import (
	"errors"
	"fmt"
)

// ErrInvalidWorkload is returned for workloads that cannot be simulated.
var ErrInvalidWorkload = errors.New("invalid workload")

// Process holds the fixed workload attributes of a job plus the run state a
// scheduler mutates while simulating it.
type Process struct {
	ID       int
	Arrival  int
	Burst    int
	Priority int

	Remaining      int
	Start          int
	Completion     int
	Started        bool
	WaitingTime    int
	TurnaroundTime int
	ResponseTime   int
}

// NewProcess returns a process with fresh run state.
func NewProcess(id, arrival, burst, priority int) Process {
	p := Process{ID: id, Arrival: arrival, Burst: burst, Priority: priority}
	ResetRunState(&p)
	return p
}

// Done reports whether the process has no CPU work left.
func (p *Process) Done() bool {
	return p.Remaining <= 0
}

// ResetRunState clears everything a previous simulation wrote into p.
func ResetRunState(p *Process) {
	p.Remaining = p.Burst
	p.Start = -1
	p.Completion = -1
	p.Started = false
	p.WaitingTime = 0
	p.TurnaroundTime = 0
	p.ResponseTime = 0
}

// CloneWorkload copies the workload attributes of every process into a new
// slice with fresh run state. The input is never modified.
func CloneWorkload(processes []Process) []Process {
	clone := make([]Process, len(processes))
	for i, p := range processes {
		clone[i] = NewProcess(p.ID, p.Arrival, p.Burst, p.Priority)
	}
	return clone
}

// ValidateWorkload checks the preconditions every scheduler relies on.
func ValidateWorkload(processes []Process) error {
	if len(processes) < 1 {
		return fmt.Errorf("%w: at least one process is required", ErrInvalidWorkload)
	}
	seen := make(map[int]struct{}, len(processes))
	for _, p := range processes {
		if p.ID < 1 {
			return fmt.Errorf("%w: pid %d, process ids must be positive", ErrInvalidWorkload, p.ID)
		}
		if p.Burst < 1 {
			return fmt.Errorf("%w: pid %d has burst time %d, must be >= 1", ErrInvalidWorkload, p.ID, p.Burst)
		}
		if p.Arrival < 0 {
			return fmt.Errorf("%w: pid %d has negative arrival time %d", ErrInvalidWorkload, p.ID, p.Arrival)
		}
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("%w: duplicate pid %d", ErrInvalidWorkload, p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}
