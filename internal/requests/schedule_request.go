package requests

import "cpusched/internal/core"

type Job struct {
	ProcessId   int `json:"process_id" yaml:"process_id"`
	ArrivalTime int `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int `json:"burst_time" yaml:"burst_time"`
	Priority    int `json:"priority" yaml:"priority"`
}

type ScheduleRequests struct {
	TimeQuantum int   `json:"time_quantum" yaml:"time_quantum"`
	Jobs        []Job `json:"jobs" yaml:"jobs"`
}

// Workload converts the jobs into processes. Jobs without an id are numbered
// by their 1-based position.
func (r *ScheduleRequests) Workload() []core.Process {
	processes := make([]core.Process, 0, len(r.Jobs))
	for i, job := range r.Jobs {
		id := job.ProcessId
		if id == 0 {
			id = i + 1
		}
		processes = append(processes, core.NewProcess(id, job.ArrivalTime, job.BurstTime, job.Priority))
	}
	return processes
}
