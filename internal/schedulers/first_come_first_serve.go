package schedulers

import (
	"log/slog"
	"sort"

	"cpusched/internal/core"
)

// ScheduleFirstComeFirstServe runs jobs to completion in (arrival, id)
// order. The returned processes are in that order too.
func ScheduleFirstComeFirstServe(workload []core.Process) (RunResult, error) {
	slog.Debug("running fcfs algorithm", "processes", len(workload))
	processes, err := prepare(workload)
	if err != nil {
		return RunResult{}, err
	}

	// sort jobs by arrival time, then pid
	sort.SliceStable(processes, func(i, j int) bool {
		return byArrival(&processes[i], &processes[j])
	})

	var ledger core.Ledger
	clock := 0
	for i := range processes {
		p := &processes[i]
		if clock < p.Arrival {
			clock = p.Arrival // cpu idle until the next job shows up
		}
		p.Started = true
		p.Start = clock
		clock += p.Burst
		p.Remaining = 0
		p.Completion = clock
		ledger.Append(p.ID, p.Start, p.Completion)
		slog.Debug("dispatch", "algorithm", AlgorithmFCFS, "pid", p.ID, "start", p.Start, "end", p.Completion)
	}

	return finish(AlgorithmFCFS, 0, processes, ledger)
}
