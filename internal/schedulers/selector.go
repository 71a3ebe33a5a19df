package schedulers

import (
	"container/heap"
	"math"
	"sort"

	"cpusched/internal/core"
)

// nextArrival returns the earliest arrival after now among unfinished
// processes, or now when there is none. Only call it while work remains.
func nextArrival(processes []core.Process, now int) int {
	next := math.MaxInt
	for i := range processes {
		p := &processes[i]
		if !p.Done() && p.Arrival > now && p.Arrival < next {
			next = p.Arrival
		}
	}
	if next == math.MaxInt {
		return now
	}
	return next
}

func earliestArrival(processes []core.Process) int {
	earliest := math.MaxInt
	for i := range processes {
		if processes[i].Arrival < earliest {
			earliest = processes[i].Arrival
		}
	}
	return earliest
}

// indicesBy returns the indices of processes ordered by less.
func indicesBy(processes []core.Process, less func(a, b *core.Process) bool) []int {
	order := make([]int, len(processes))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return less(&processes[order[i]], &processes[order[j]])
	})
	return order
}

func byArrival(a, b *core.Process) bool {
	if a.Arrival != b.Arrival {
		return a.Arrival < b.Arrival
	}
	return a.ID < b.ID
}

func byID(a, b *core.Process) bool {
	return a.ID < b.ID
}

func byBurst(a, b *core.Process) bool {
	if a.Burst != b.Burst {
		return a.Burst < b.Burst
	}
	return a.ID < b.ID
}

// byPriority treats the lower value as more urgent.
func byPriority(a, b *core.Process) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return a.ID < b.ID
}

// readyQueue is a heap of arrived, not yet dispatched processes.
type readyQueue struct {
	items []*core.Process
	less  func(a, b *core.Process) bool
}

func (q *readyQueue) Len() int           { return len(q.items) }
func (q *readyQueue) Less(i, j int) bool { return q.less(q.items[i], q.items[j]) }
func (q *readyQueue) Swap(i, j int)      { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *readyQueue) Push(x interface{}) {
	q.items = append(q.items, x.(*core.Process))
}

func (q *readyQueue) Pop() interface{} {
	old := q.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	q.items = old[:n-1]
	return item
}

// readySet admits processes in arrival order as the clock reaches them and
// hands out the best one according to less.
type readySet struct {
	processes []core.Process
	pending   []int
	queue     *readyQueue
}

func newReadySet(processes []core.Process, less func(a, b *core.Process) bool) *readySet {
	q := &readyQueue{less: less}
	heap.Init(q)
	return &readySet{
		processes: processes,
		pending:   indicesBy(processes, byArrival),
		queue:     q,
	}
}

// admit moves every process that has arrived by now into the ready queue.
func (s *readySet) admit(now int) {
	for len(s.pending) > 0 {
		p := &s.processes[s.pending[0]]
		if p.Arrival > now {
			return
		}
		s.pending = s.pending[1:]
		if !p.Done() {
			heap.Push(s.queue, p)
		}
	}
}

func (s *readySet) Len() int {
	return s.queue.Len()
}

func (s *readySet) pop() *core.Process {
	return heap.Pop(s.queue).(*core.Process)
}
