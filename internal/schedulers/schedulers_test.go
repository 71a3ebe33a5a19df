package schedulers

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpusched/internal/core"
)

// threeJobs is P1 arr=0 burst=5, P2 arr=1 burst=3, P3 arr=2 burst=1.
func threeJobs() []core.Process {
	return []core.Process{
		core.NewProcess(1, 0, 5, 0),
		core.NewProcess(2, 1, 3, 0),
		core.NewProcess(3, 2, 1, 0),
	}
}

func slice(pid, start, end int) core.ExecutionSlice {
	return core.ExecutionSlice{ProcessID: pid, Start: start, End: end}
}

func byPID(result RunResult) map[int]core.Process {
	out := make(map[int]core.Process, len(result.Processes))
	for _, p := range result.Processes {
		out[p.ID] = p
	}
	return out
}

func TestFirstComeFirstServe_Example(t *testing.T) {
	result, err := ScheduleFirstComeFirstServe(threeJobs())
	require.NoError(t, err)

	assert.Equal(t, []core.ExecutionSlice{slice(1, 0, 5), slice(2, 5, 8), slice(3, 8, 9)}, result.Ledger.Slices())

	var completions, waits []int
	for _, p := range result.Processes {
		completions = append(completions, p.Completion)
		waits = append(waits, p.WaitingTime)
	}
	assert.Equal(t, []int{5, 8, 9}, completions)
	assert.Equal(t, []int{0, 4, 6}, waits)
	assert.InDelta(t, 3.33, result.AverageWaitingTime, 0.005)
	assert.InDelta(t, 19.0/3, result.AverageTurnaroundTime, 1e-9)
}

func TestFirstComeFirstServe_EqualArrivalOrderedByID(t *testing.T) {
	workload := []core.Process{
		core.NewProcess(2, 0, 3, 0),
		core.NewProcess(1, 0, 2, 0),
		core.NewProcess(3, 4, 1, 0),
	}
	result, err := ScheduleFirstComeFirstServe(workload)
	require.NoError(t, err)

	assert.Equal(t, []core.ExecutionSlice{slice(1, 0, 2), slice(2, 2, 5), slice(3, 5, 6)}, result.Ledger.Slices())
	assert.Equal(t, 1, result.Processes[0].ID)
	assert.Equal(t, 2, result.Processes[1].ID)
}

func TestFirstComeFirstServe_IdleGap(t *testing.T) {
	workload := []core.Process{
		core.NewProcess(1, 2, 2, 0),
		core.NewProcess(2, 10, 1, 0),
	}
	result, err := ScheduleFirstComeFirstServe(workload)
	require.NoError(t, err)

	assert.Equal(t, []core.ExecutionSlice{slice(1, 2, 4), slice(2, 10, 11)}, result.Ledger.Slices())
	assert.Equal(t, 11, result.Cpu.TotalTime)
	assert.Equal(t, 8, result.Cpu.IdleTime)
	assert.Equal(t, 3, result.Cpu.UtilizationTime)
	assert.Zero(t, result.AverageWaitingTime)
}

func TestShortestJobFirst_Example(t *testing.T) {
	result, err := ScheduleShortestJobFirst(threeJobs())
	require.NoError(t, err)

	assert.Equal(t, []core.ExecutionSlice{slice(1, 0, 5), slice(3, 5, 6), slice(2, 6, 9)}, result.Ledger.Slices())

	procs := byPID(result)
	assert.Equal(t, 5, procs[1].Completion)
	assert.Equal(t, 9, procs[2].Completion)
	assert.Equal(t, 6, procs[3].Completion)
	assert.InDelta(t, 3.00, result.AverageWaitingTime, 1e-9)
}

func TestShortestJobFirst_TieBreakAndIdle(t *testing.T) {
	workload := []core.Process{
		core.NewProcess(1, 3, 2, 0),
		core.NewProcess(3, 8, 2, 0),
		core.NewProcess(2, 8, 2, 0),
		core.NewProcess(4, 8, 1, 0),
	}
	result, err := ScheduleShortestJobFirst(workload)
	require.NoError(t, err)

	assert.Equal(t, []core.ExecutionSlice{slice(1, 3, 5), slice(4, 8, 9), slice(2, 9, 11), slice(3, 11, 13)}, result.Ledger.Slices())
	// input order is kept for the returned processes
	assert.Equal(t, 1, result.Processes[0].ID)
	assert.Equal(t, 3, result.Processes[1].ID)
	assert.Equal(t, 6, result.Cpu.IdleTime)
}

func TestShortestJobFirst_NotPreemptedByShorterArrival(t *testing.T) {
	workload := []core.Process{
		core.NewProcess(1, 0, 10, 0),
		core.NewProcess(2, 1, 1, 0),
	}
	result, err := ScheduleShortestJobFirst(workload)
	require.NoError(t, err)
	assert.Equal(t, []core.ExecutionSlice{slice(1, 0, 10), slice(2, 10, 11)}, result.Ledger.Slices())
}

func TestPriority_NonPreemptive(t *testing.T) {
	workload := []core.Process{
		core.NewProcess(1, 0, 4, 3),
		core.NewProcess(2, 1, 3, 1),
		core.NewProcess(3, 2, 2, 2),
		core.NewProcess(4, 3, 1, 1),
	}
	result, err := SchedulePriority(workload)
	require.NoError(t, err)

	assert.Equal(t, []core.ExecutionSlice{slice(1, 0, 4), slice(2, 4, 7), slice(4, 7, 8), slice(3, 8, 10)}, result.Ledger.Slices())
	procs := byPID(result)
	assert.Equal(t, 0, procs[1].WaitingTime)
	assert.Equal(t, 3, procs[2].WaitingTime)
	assert.Equal(t, 6, procs[3].WaitingTime)
	assert.Equal(t, 4, procs[4].WaitingTime)
	assert.InDelta(t, 3.25, result.AverageWaitingTime, 1e-9)
}

func TestPriority_NegativeValuesAreMoreUrgent(t *testing.T) {
	workload := []core.Process{
		core.NewProcess(1, 0, 1, 0),
		core.NewProcess(2, 0, 1, -5),
	}
	result, err := SchedulePriority(workload)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Ledger.Slices()[0].ProcessID)
}

func TestPriority_EqualPrioritiesMatchFCFS(t *testing.T) {
	fcfs, err := ScheduleFirstComeFirstServe(threeJobs())
	require.NoError(t, err)
	prio, err := SchedulePriority(threeJobs())
	require.NoError(t, err)

	assert.Equal(t, fcfs.Ledger.Slices(), prio.Ledger.Slices())
	assert.Equal(t, fcfs.AverageWaitingTime, prio.AverageWaitingTime)
}

func TestRoundRobin_Example(t *testing.T) {
	result, err := ScheduleRoundRobin(threeJobs(), 2)
	require.NoError(t, err)

	// P2 and P3 arrive during P1's first turn and are queued ahead of it.
	assert.Equal(t, []core.ExecutionSlice{
		slice(1, 0, 2),
		slice(2, 2, 4),
		slice(3, 4, 5),
		slice(1, 5, 7),
		slice(2, 7, 8),
		slice(1, 8, 9),
	}, result.Ledger.Slices())

	procs := byPID(result)
	assert.Equal(t, 9, procs[1].Completion)
	assert.Equal(t, 8, procs[2].Completion)
	assert.Equal(t, 5, procs[3].Completion)
	assert.Equal(t, 2, procs[2].Start)
	assert.Equal(t, 4, procs[3].Start)
	assert.Equal(t, 4, procs[1].WaitingTime)
	assert.Equal(t, 4, procs[2].WaitingTime)
	assert.Equal(t, 2, procs[3].WaitingTime)
	assert.InDelta(t, 10.0/3, result.AverageWaitingTime, 1e-9)
	assert.Equal(t, 2, result.Quantum)
}

func TestRoundRobin_MergesConsecutiveTurns(t *testing.T) {
	workload := []core.Process{
		core.NewProcess(1, 0, 3, 0),
		core.NewProcess(2, 10, 1, 0),
	}
	var dispatches []core.ExecutionSlice
	result, err := roundRobin(workload, 1, func(s core.ExecutionSlice) {
		dispatches = append(dispatches, s)
	})
	require.NoError(t, err)

	assert.Len(t, dispatches, 4)
	assert.Equal(t, []core.ExecutionSlice{slice(1, 0, 3), slice(2, 10, 11)}, result.Ledger.Slices())
	assert.Equal(t, 10, byPID(result)[2].Start)
}

func TestRoundRobin_CoincidentArrivalsQueuedByID(t *testing.T) {
	workload := []core.Process{
		core.NewProcess(3, 0, 2, 0),
		core.NewProcess(1, 0, 2, 0),
		core.NewProcess(2, 0, 2, 0),
	}
	result, err := ScheduleRoundRobin(workload, 1)
	require.NoError(t, err)

	var order []int
	for _, s := range result.Ledger.Slices() {
		order = append(order, s.ProcessID)
	}
	assert.Equal(t, []int{1, 2, 3, 1, 2, 3}, order)
}

func TestRoundRobin_InvalidQuantum(t *testing.T) {
	for _, q := range []int{0, -3} {
		_, err := ScheduleRoundRobin(threeJobs(), q)
		assert.ErrorIs(t, err, ErrInvalidQuantum)
	}
}

func TestSchedulers_RejectInvalidWorkload(t *testing.T) {
	cases := map[string][]core.Process{
		"empty":      {},
		"zero burst": {core.NewProcess(1, 0, 0, 0)},
		"negative":   {core.NewProcess(1, 0, -1, 0)},
	}
	for name, workload := range cases {
		t.Run(name, func(t *testing.T) {
			for _, alg := range Algorithms {
				_, err := Run(alg, workload, 2)
				assert.ErrorIs(t, err, core.ErrInvalidWorkload, alg)
			}
		})
	}
}

func TestRun_UnknownAlgorithm(t *testing.T) {
	_, err := Run(Algorithm("srtf"), threeJobs(), 2)
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]Algorithm{
		"fcfs":        AlgorithmFCFS,
		"SJF":         AlgorithmSJF,
		" priority ":  AlgorithmPriority,
		"round-robin": AlgorithmRR,
	}
	for in, want := range cases {
		got, err := ParseAlgorithm(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseAlgorithm("mlfq")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestSchedulers_DoNotMutateWorkload(t *testing.T) {
	workload := threeJobs()
	before := core.CloneWorkload(workload)
	for _, alg := range Algorithms {
		_, err := Run(alg, workload, 2)
		require.NoError(t, err)
	}
	assert.Equal(t, before, workload)
}

func randomWorkload(r *rand.Rand) []core.Process {
	n := 1 + r.Intn(12)
	workload := make([]core.Process, n)
	for i, id := range r.Perm(n) {
		workload[i] = core.NewProcess(id+1, r.Intn(30), 1+r.Intn(9), r.Intn(5)-2)
	}
	return workload
}

func TestSchedulers_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(325))
	for iter := 0; iter < 200; iter++ {
		workload := randomWorkload(r)
		quantum := 1 + r.Intn(4)

		for _, alg := range Algorithms {
			result, err := Run(alg, workload, quantum)
			require.NoError(t, err)
			require.Len(t, result.Processes, len(workload))

			slices := result.Ledger.Slices()
			busy := map[int]int{}
			burstSum := 0
			for i, s := range slices {
				require.Greater(t, s.End, s.Start)
				busy[s.ProcessID] += s.Duration()
				if i > 0 {
					require.LessOrEqual(t, slices[i-1].End, s.Start, "%s: overlapping slices", alg)
					if slices[i-1].ProcessID == s.ProcessID {
						require.Less(t, slices[i-1].End, s.Start, "%s: unmerged slices", alg)
					}
				}
			}
			for _, p := range result.Processes {
				burstSum += p.Burst
				require.GreaterOrEqual(t, p.Completion, p.Arrival+p.Burst, "%s pid %d", alg, p.ID)
				require.GreaterOrEqual(t, p.Start, p.Arrival)
				require.Equal(t, p.Burst, busy[p.ID], "%s pid %d", alg, p.ID)
				require.Zero(t, p.Remaining)
			}
			require.Equal(t, burstSum, result.Ledger.End()-result.Ledger.IdleTime())

			again, err := Run(alg, workload, quantum)
			require.NoError(t, err)
			require.Equal(t, result, again, "%s is not deterministic", alg)
		}
	}
}

func TestNonPreemptive_OneSlicePerProcess(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for iter := 0; iter < 100; iter++ {
		workload := randomWorkload(r)
		for _, alg := range []Algorithm{AlgorithmFCFS, AlgorithmSJF, AlgorithmPriority} {
			result, err := Run(alg, workload, 1)
			require.NoError(t, err)
			require.Equal(t, len(workload), result.Ledger.Len())

			procs := byPID(result)
			for _, s := range result.Ledger.Slices() {
				p := procs[s.ProcessID]
				require.Equal(t, p.Start, s.Start)
				require.Equal(t, p.Completion, s.End)
			}
		}
	}
}

func TestFirstComeFirstServe_CompletionOrder(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for iter := 0; iter < 100; iter++ {
		result, err := ScheduleFirstComeFirstServe(randomWorkload(r))
		require.NoError(t, err)
		for i := 1; i < len(result.Processes); i++ {
			prev, cur := &result.Processes[i-1], &result.Processes[i]
			require.True(t, byArrival(prev, cur))
			require.Less(t, prev.Completion, cur.Completion)
		}
	}
}

func TestRoundRobin_DispatchesBoundedByQuantum(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for iter := 0; iter < 100; iter++ {
		workload := randomWorkload(r)
		quantum := 1 + r.Intn(5)
		perPID := map[int]int{}
		_, err := roundRobin(workload, quantum, func(s core.ExecutionSlice) {
			require.LessOrEqual(t, s.Duration(), quantum)
			perPID[s.ProcessID] += s.Duration()
		})
		require.NoError(t, err)
		for _, p := range workload {
			require.Equal(t, p.Burst, perPID[p.ID])
		}
	}
}
