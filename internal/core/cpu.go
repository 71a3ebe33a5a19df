package core

// ExecutionSlice is one contiguous occupation of the CPU by a process.
type ExecutionSlice struct {
	ProcessID int `json:"process_id"`
	Start     int `json:"start"`
	End       int `json:"end"`
}

// Duration of the slice in time units.
func (s ExecutionSlice) Duration() int {
	return s.End - s.Start
}

// Ledger records which process held the CPU and when. Slices are kept in
// dispatch order; two touching slices of the same process are stored as one.
type Ledger struct {
	slices []ExecutionSlice
}

// Append records that pid ran over [start, end).
func (l *Ledger) Append(pid, start, end int) {
	if n := len(l.slices); n > 0 {
		last := &l.slices[n-1]
		if last.ProcessID == pid && last.End == start {
			last.End = end
			return
		}
	}
	l.slices = append(l.slices, ExecutionSlice{ProcessID: pid, Start: start, End: end})
}

// Slices returns a copy of the recorded slices.
func (l *Ledger) Slices() []ExecutionSlice {
	out := make([]ExecutionSlice, len(l.slices))
	copy(out, l.slices)
	return out
}

func (l *Ledger) Len() int {
	return len(l.slices)
}

// Begin is the start of the first slice, 0 for an empty ledger.
func (l *Ledger) Begin() int {
	if len(l.slices) == 0 {
		return 0
	}
	return l.slices[0].Start
}

// End is the end of the last slice, 0 for an empty ledger.
func (l *Ledger) End() int {
	if len(l.slices) == 0 {
		return 0
	}
	return l.slices[len(l.slices)-1].End
}

// BusyTime is the total time some process held the CPU.
func (l *Ledger) BusyTime() int {
	busy := 0
	for _, s := range l.slices {
		busy += s.Duration()
	}
	return busy
}

// IdleTime is the total length of the gaps between slices, measured from
// time zero up to the end of the last slice.
func (l *Ledger) IdleTime() int {
	return l.End() - l.BusyTime()
}

// CpuMetric summarizes CPU usage over a finished run.
type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
	Utilization     float64
	Throughput      float64
}

// MeasureCpu derives usage figures for a run of processCount processes.
// TotalTime is the final clock value, so idle time before the first
// arrival is counted.
func MeasureCpu(l *Ledger, processCount int) CpuMetric {
	metric := CpuMetric{
		TotalTime:       l.End(),
		UtilizationTime: l.BusyTime(),
		IdleTime:        l.IdleTime(),
	}
	if metric.TotalTime > 0 {
		metric.Utilization = float64(metric.UtilizationTime) / float64(metric.TotalTime)
		metric.Throughput = float64(processCount) / float64(metric.TotalTime)
	}
	return metric
}
