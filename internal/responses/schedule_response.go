package responses

type ProcessResponse struct {
	ProcessId      int `json:"process_id"`
	ArrivalTime    int `json:"arrival_time"`
	BurstTime      int `json:"burst_time"`
	Priority       int `json:"priority"`
	StartTime      int `json:"start_time"`
	CompletionTime int `json:"completion_time"`
	ResponseTime   int `json:"response_time"`
	TurnAroundTime int `json:"turn_around_time"`
	WaitingTime    int `json:"waiting_time"`
}

type SliceResponse struct {
	ProcessId int `json:"process_id"`
	Start     int `json:"start"`
	End       int `json:"end"`
}

type ScheduleResponse struct {
	RunId                 string            `json:"run_id,omitempty"`
	Algorithm             string            `json:"algorithm"`
	TimeQuantum           int               `json:"time_quantum,omitempty"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	Timeline              []SliceResponse   `json:"timeline"`
	Details               []ProcessResponse `json:"details"`
}

type CompareResponse struct {
	RunId   string             `json:"run_id,omitempty"`
	Best    string             `json:"best"`
	Results []ScheduleResponse `json:"results"`
}
