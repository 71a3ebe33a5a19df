package schedulers

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpusched/internal/core"
)

func TestCompare_PicksLowestAverageWaiting(t *testing.T) {
	comparison, err := Compare(threeJobs(), 2)
	require.NoError(t, err)
	require.Len(t, comparison.Results, len(Algorithms))

	for i, alg := range Algorithms {
		assert.Equal(t, alg, comparison.Results[i].Algorithm)
	}
	assert.Equal(t, AlgorithmSJF, comparison.Best().Algorithm)
	assert.InDelta(t, 3.0, comparison.Best().AverageWaitingTime, 1e-9)
	assert.Equal(t, 2, comparison.Results[3].Quantum)
}

func TestCompare_TieGoesToEarliestPolicy(t *testing.T) {
	comparison, err := Compare([]core.Process{core.NewProcess(1, 4, 3, 0)}, 1)
	require.NoError(t, err)
	for _, result := range comparison.Results {
		assert.Zero(t, result.AverageWaitingTime)
	}
	assert.Equal(t, 0, comparison.BestIndex)
	assert.Equal(t, AlgorithmFCFS, comparison.Best().Algorithm)
}

func TestCompare_MatchesIndividualRuns(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for iter := 0; iter < 50; iter++ {
		workload := randomWorkload(r)
		quantum := 1 + r.Intn(4)

		comparison, err := Compare(workload, quantum)
		require.NoError(t, err)
		for i, alg := range Algorithms {
			single, err := Run(alg, workload, quantum)
			require.NoError(t, err)
			require.Equal(t, single, comparison.Results[i])
			require.LessOrEqual(t, comparison.Best().AverageWaitingTime, single.AverageWaitingTime)
			if i < comparison.BestIndex {
				require.Greater(t, single.AverageWaitingTime, comparison.Best().AverageWaitingTime)
			}
		}
	}
}

func TestCompare_Errors(t *testing.T) {
	_, err := Compare(nil, 2)
	assert.ErrorIs(t, err, core.ErrInvalidWorkload)

	_, err = Compare(threeJobs(), 0)
	assert.ErrorIs(t, err, ErrInvalidQuantum)
}

func TestGenerateCompareResponse(t *testing.T) {
	comparison, err := Compare(threeJobs(), 2)
	require.NoError(t, err)

	response := GenerateCompareResponse(comparison)
	assert.Equal(t, "sjf", response.Best)
	require.Len(t, response.Results, 4)
	assert.Equal(t, "rr", response.Results[3].Algorithm)
	assert.Equal(t, 2, response.Results[3].TimeQuantum)
}

func TestGenerateResponse(t *testing.T) {
	result, err := ScheduleShortestJobFirst(threeJobs())
	require.NoError(t, err)

	response := GenerateResponse(result)
	assert.Equal(t, "sjf", response.Algorithm)
	assert.Equal(t, 9, response.TotalTime)
	assert.Equal(t, 0, response.IdleTime)
	assert.InDelta(t, 1.0, response.CpuUtilization, 1e-9)
	assert.InDelta(t, 3.0/9, response.CpuThroughput, 1e-9)
	require.Len(t, response.Timeline, 3)
	assert.Equal(t, 3, response.Timeline[1].ProcessId)
	require.Len(t, response.Details, 3)
	assert.Equal(t, 2, response.Details[1].ProcessId)
	assert.Equal(t, 6, response.Details[1].StartTime)
	assert.Equal(t, 5, response.Details[1].WaitingTime)
	assert.Equal(t, 5, response.Details[1].ResponseTime)
}
