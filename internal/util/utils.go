package util

import (
	"errors"
	"fmt"

	"cpusched/internal/core"
)

// ErrInconsistentSchedule means a scheduler produced timings that cannot
// happen: a process never completed, or finished before it could have.
var ErrInconsistentSchedule = errors.New("inconsistent schedule")

// Averages over every process of a run.
type Averages struct {
	WaitingTime    float64
	TurnaroundTime float64
	ResponseTime   float64
}

// ComputeStats fills in turnaround, waiting and response time of every
// process from its arrival, burst, start and completion, and returns the
// means across all processes.
func ComputeStats(processes []core.Process) (Averages, error) {
	var avg Averages
	if len(processes) == 0 {
		return avg, nil
	}

	var waitingTimeSum, turnAroundTimeSum, responseTimeSum int
	for i := range processes {
		p := &processes[i]
		if p.Completion < 0 || p.Remaining != 0 {
			return Averages{}, fmt.Errorf("%w: pid %d never completed", ErrInconsistentSchedule, p.ID)
		}
		p.TurnaroundTime = p.Completion - p.Arrival
		p.WaitingTime = p.TurnaroundTime - p.Burst
		p.ResponseTime = p.Start - p.Arrival
		if p.TurnaroundTime < 0 || p.WaitingTime < 0 || p.ResponseTime < 0 {
			return Averages{}, fmt.Errorf("%w: pid %d turnaround=%d waiting=%d response=%d",
				ErrInconsistentSchedule, p.ID, p.TurnaroundTime, p.WaitingTime, p.ResponseTime)
		}
		waitingTimeSum += p.WaitingTime
		turnAroundTimeSum += p.TurnaroundTime
		responseTimeSum += p.ResponseTime
	}

	count := float64(len(processes))
	avg.WaitingTime = float64(waitingTimeSum) / count
	avg.TurnaroundTime = float64(turnAroundTimeSum) / count
	avg.ResponseTime = float64(responseTimeSum) / count
	return avg, nil
}
