package schedulers

import (
	"log/slog"

	"cpusched/internal/core"
)

// ScheduleShortestJobFirst is non-preemptive SJF: whenever the cpu frees up
// the arrived job with the smallest burst runs to completion, lowest pid
// first on ties.
func ScheduleShortestJobFirst(workload []core.Process) (RunResult, error) {
	slog.Debug("running sjf algorithm", "processes", len(workload))
	processes, err := prepare(workload)
	if err != nil {
		return RunResult{}, err
	}
	ledger := runNonPreemptive(AlgorithmSJF, processes, byBurst)
	return finish(AlgorithmSJF, 0, processes, ledger)
}

// runNonPreemptive repeatedly picks the best arrived process according to
// less and runs it to completion. The clock starts at the earliest arrival
// and jumps over idle gaps.
func runNonPreemptive(algorithm Algorithm, processes []core.Process, less func(a, b *core.Process) bool) core.Ledger {
	var ledger core.Ledger
	ready := newReadySet(processes, less)
	clock := earliestArrival(processes)

	for completed := 0; completed < len(processes); {
		ready.admit(clock)
		if ready.Len() == 0 {
			clock = nextArrival(processes, clock)
			continue
		}

		p := ready.pop()
		p.Started = true
		p.Start = clock
		clock += p.Remaining
		p.Remaining = 0
		p.Completion = clock
		ledger.Append(p.ID, p.Start, p.Completion)
		completed++
		slog.Debug("dispatch", "algorithm", algorithm, "pid", p.ID, "start", p.Start, "end", p.Completion)
	}
	return ledger
}
