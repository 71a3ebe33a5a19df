package schedulers

import (
	"errors"
	"fmt"
	"strings"

	"cpusched/internal/core"
	"cpusched/internal/util"
)

var (
	// ErrInvalidQuantum is returned when round robin is asked to run with a
	// non-positive time quantum.
	ErrInvalidQuantum   = errors.New("time quantum must be positive")
	ErrUnknownAlgorithm = errors.New("unknown scheduling algorithm")
)

type Algorithm string

const (
	AlgorithmFCFS     Algorithm = "fcfs"
	AlgorithmSJF      Algorithm = "sjf"
	AlgorithmPriority Algorithm = "priority"
	AlgorithmRR       Algorithm = "rr"
)

// Algorithms lists every policy in comparison order. Ties in Compare go to
// the one listed first.
var Algorithms = []Algorithm{AlgorithmFCFS, AlgorithmSJF, AlgorithmPriority, AlgorithmRR}

func (a Algorithm) DisplayName() string {
	switch a {
	case AlgorithmFCFS:
		return "FCFS"
	case AlgorithmSJF:
		return "SJF (NP)"
	case AlgorithmPriority:
		return "Priority (NP)"
	case AlgorithmRR:
		return "RR"
	default:
		return string(a)
	}
}

// ParseAlgorithm accepts the short identifiers plus a few long spellings.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fcfs", "first-come-first-serve":
		return AlgorithmFCFS, nil
	case "sjf", "shortest-job-first":
		return AlgorithmSJF, nil
	case "priority", "prio":
		return AlgorithmPriority, nil
	case "rr", "round-robin":
		return AlgorithmRR, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// RunResult is the outcome of simulating one policy over a workload.
type RunResult struct {
	Algorithm Algorithm
	// Quantum is only set for round robin.
	Quantum   int
	Processes []core.Process
	Ledger    core.Ledger
	Cpu       core.CpuMetric

	AverageWaitingTime    float64
	AverageTurnaroundTime float64
	AverageResponseTime   float64
}

// Run dispatches to the policy named by algorithm. quantum is ignored by the
// non-preemptive policies.
func Run(algorithm Algorithm, workload []core.Process, quantum int) (RunResult, error) {
	switch algorithm {
	case AlgorithmFCFS:
		return ScheduleFirstComeFirstServe(workload)
	case AlgorithmSJF:
		return ScheduleShortestJobFirst(workload)
	case AlgorithmPriority:
		return SchedulePriority(workload)
	case AlgorithmRR:
		return ScheduleRoundRobin(workload, quantum)
	default:
		return RunResult{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
}

// prepare validates the workload and returns a private copy to simulate on.
func prepare(workload []core.Process) ([]core.Process, error) {
	if err := core.ValidateWorkload(workload); err != nil {
		return nil, err
	}
	return core.CloneWorkload(workload), nil
}

func finish(algorithm Algorithm, quantum int, processes []core.Process, ledger core.Ledger) (RunResult, error) {
	averages, err := util.ComputeStats(processes)
	if err != nil {
		return RunResult{}, fmt.Errorf("%s: %w", algorithm, err)
	}
	return RunResult{
		Algorithm:             algorithm,
		Quantum:               quantum,
		Processes:             processes,
		Ledger:                ledger,
		Cpu:                   core.MeasureCpu(&ledger, len(processes)),
		AverageWaitingTime:    averages.WaitingTime,
		AverageTurnaroundTime: averages.TurnaroundTime,
		AverageResponseTime:   averages.ResponseTime,
	}, nil
}
