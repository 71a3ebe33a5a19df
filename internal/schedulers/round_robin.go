package schedulers

import (
	"fmt"
	"log/slog"

	"cpusched/internal/core"
)

// ScheduleRoundRobin gives each ready process up to timeQuantum units per
// turn in FIFO order. Processes that arrive during a turn are queued ahead
// of the process whose turn just ended.
func ScheduleRoundRobin(workload []core.Process, timeQuantum int) (RunResult, error) {
	return roundRobin(workload, timeQuantum, nil)
}

// roundRobin is ScheduleRoundRobin with a hook that sees every dispatch
// before it is merged into the ledger.
func roundRobin(workload []core.Process, timeQuantum int, onDispatch func(core.ExecutionSlice)) (RunResult, error) {
	slog.Debug("running roundRobin algorithm", "processes", len(workload), "time_quantum", timeQuantum)
	if timeQuantum <= 0 {
		return RunResult{}, fmt.Errorf("%w: got %d", ErrInvalidQuantum, timeQuantum)
	}
	processes, err := prepare(workload)
	if err != nil {
		return RunResult{}, err
	}

	var ledger core.Ledger
	ids := indicesBy(processes, byID)
	queue := make([]int, 0, len(processes))

	// enqueue queues every unfinished process accepted by arrived, in pid order.
	enqueue := func(arrived func(p *core.Process) bool) {
		for _, i := range ids {
			if p := &processes[i]; !p.Done() && arrived(p) {
				queue = append(queue, i)
			}
		}
	}

	clock := earliestArrival(processes)
	enqueue(func(p *core.Process) bool { return p.Arrival == clock })

	for completed := 0; completed < len(processes); {
		if len(queue) == 0 {
			clock = nextArrival(processes, clock)
			enqueue(func(p *core.Process) bool { return p.Arrival == clock })
			continue
		}

		i := queue[0]
		queue = queue[1:]
		p := &processes[i]
		if p.Done() {
			continue
		}
		if !p.Started {
			p.Started = true
			p.Start = clock
		}

		run := p.Remaining
		if run > timeQuantum {
			run = timeQuantum
		}
		before := clock
		clock += run
		p.Remaining -= run

		// arrivals during this turn go first
		enqueue(func(q *core.Process) bool { return q.Arrival > before && q.Arrival <= clock })

		if onDispatch != nil {
			onDispatch(core.ExecutionSlice{ProcessID: p.ID, Start: before, End: clock})
		}
		ledger.Append(p.ID, before, clock)
		slog.Debug("dispatch", "algorithm", AlgorithmRR, "pid", p.ID, "start", before, "end", clock, "remaining", p.Remaining)

		if p.Done() {
			p.Completion = clock
			completed++
		} else {
			queue = append(queue, i)
		}
	}

	return finish(AlgorithmRR, timeQuantum, processes, ledger)
}
