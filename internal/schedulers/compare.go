package schedulers

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"cpusched/internal/core"
)

// Comparison holds one result per policy, in Algorithms order.
type Comparison struct {
	Results []RunResult
	// BestIndex points into Results at the lowest average waiting time.
	BestIndex int
}

func (c Comparison) Best() RunResult {
	return c.Results[c.BestIndex]
}

// Compare runs every policy on its own copy of workload and picks the one
// with the smallest average waiting time. An exact tie goes to the policy
// that comes first in Algorithms.
func Compare(workload []core.Process, timeQuantum int) (Comparison, error) {
	if err := core.ValidateWorkload(workload); err != nil {
		return Comparison{}, err
	}
	if timeQuantum <= 0 {
		return Comparison{}, fmt.Errorf("%w: got %d", ErrInvalidQuantum, timeQuantum)
	}

	results := make([]RunResult, len(Algorithms))
	errs := make([]error, len(Algorithms))

	var wg sync.WaitGroup
	wg.Add(len(Algorithms))
	for i, algorithm := range Algorithms {
		go func(i int, algorithm Algorithm) {
			defer wg.Done()
			results[i], errs[i] = Run(algorithm, workload, timeQuantum)
		}(i, algorithm)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return Comparison{}, err
	}

	comparison := Comparison{Results: results, BestIndex: pickBest(results)}
	slog.Debug("comparison done", "best", comparison.Best().Algorithm, "avg_waiting", comparison.Best().AverageWaitingTime)
	return comparison, nil
}

func pickBest(results []RunResult) int {
	best := 0
	for i := 1; i < len(results); i++ {
		if results[i].AverageWaitingTime < results[best].AverageWaitingTime {
			best = i
		}
	}
	return best
}
