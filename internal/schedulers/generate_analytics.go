package schedulers

import (
	"cpusched/internal/responses"
)

// GenerateResponse flattens a run into its JSON shape.
func GenerateResponse(result RunResult) responses.ScheduleResponse {
	slices := result.Ledger.Slices()
	timeline := make([]responses.SliceResponse, 0, len(slices))
	for _, s := range slices {
		timeline = append(timeline, responses.SliceResponse{
			ProcessId: s.ProcessID,
			Start:     s.Start,
			End:       s.End,
		})
	}

	proccessDetails := make([]responses.ProcessResponse, 0, len(result.Processes))
	for _, p := range result.Processes {
		proccessDetails = append(proccessDetails, responses.ProcessResponse{
			ProcessId:      p.ID,
			ArrivalTime:    p.Arrival,
			BurstTime:      p.Burst,
			Priority:       p.Priority,
			StartTime:      p.Start,
			CompletionTime: p.Completion,
			ResponseTime:   p.ResponseTime,
			TurnAroundTime: p.TurnaroundTime,
			WaitingTime:    p.WaitingTime,
		})
	}

	return responses.ScheduleResponse{
		Algorithm:             string(result.Algorithm),
		TimeQuantum:           result.Quantum,
		TotalTime:             result.Cpu.TotalTime,
		IdleTime:              result.Cpu.IdleTime,
		AverageWaitingTime:    result.AverageWaitingTime,
		AverageResponseTime:   result.AverageResponseTime,
		AverageTurnAroundTime: result.AverageTurnaroundTime,
		CpuUtilization:        result.Cpu.Utilization,
		CpuThroughput:         result.Cpu.Throughput,
		Timeline:              timeline,
		Details:               proccessDetails,
	}
}

// GenerateCompareResponse flattens every run of a comparison.
func GenerateCompareResponse(comparison Comparison) responses.CompareResponse {
	results := make([]responses.ScheduleResponse, 0, len(comparison.Results))
	for _, result := range comparison.Results {
		results = append(results, GenerateResponse(result))
	}
	return responses.CompareResponse{
		Best:    string(comparison.Best().Algorithm),
		Results: results,
	}
}
