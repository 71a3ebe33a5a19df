package schedulers

import (
	"log/slog"

	"cpusched/internal/core"
)

// SchedulePriority is non-preemptive priority scheduling. A lower priority
// value is more urgent; equal priorities go to the lower pid. A more urgent
// arrival waits for the running job to finish.
func SchedulePriority(workload []core.Process) (RunResult, error) {
	slog.Debug("running priority algorithm", "processes", len(workload))
	processes, err := prepare(workload)
	if err != nil {
		return RunResult{}, err
	}
	ledger := runNonPreemptive(AlgorithmPriority, processes, byPriority)
	return finish(AlgorithmPriority, 0, processes, ledger)
}
