package scheduler

// Result holds the timings of one scheduling run. Every per-process slice is
// indexed like the input processes, regardless of the order they ran in.
type Result struct {
	Algorithm         Algorithm   `json:"algorithm"`
	Processes         []Process   `json:"processes"`
	Completion        []int64     `json:"completion_time"`
	Waiting           []int64     `json:"waiting_time"`
	Turnaround        []int64     `json:"turnaround_time"`
	FirstDispatch     []int64     `json:"first_dispatch"`
	Gantt             []TimeSlice `json:"gantt"`
	AverageWaiting    float64     `json:"average_waiting_time"`
	AverageTurnaround float64     `json:"average_turnaround_time"`
}

func newResult(alg Algorithm, procs []Process) Result {
	n := len(procs)
	r := Result{
		Algorithm:     alg,
		Processes:     procs,
		Completion:    make([]int64, n),
		Waiting:       make([]int64, n),
		Turnaround:    make([]int64, n),
		FirstDispatch: make([]int64, n),
		Gantt:         make([]TimeSlice, 0, n),
	}
	for i := range r.FirstDispatch {
		r.FirstDispatch[i] = -1
	}
	return r
}

// dispatch records that process i held the CPU over [start, stop).
func (r *Result) dispatch(i int, start, stop int64) {
	if r.FirstDispatch[i] < 0 {
		r.FirstDispatch[i] = start
	}
	r.Gantt = append(r.Gantt, TimeSlice{
		Name:  r.Processes[i].Name,
		Index: i,
		Start: start,
		Stop:  stop,
	})
}

// complete derives the turnaround and waiting time of process i.
func (r *Result) complete(i int, completion int64) {
	p := r.Processes[i]
	r.Completion[i] = completion
	r.Turnaround[i] = completion - p.ArrivalTime
	r.Waiting[i] = r.Turnaround[i] - p.BurstTime
}

func (r *Result) finish() {
	var totalWait, totalTurnaround float64
	for i := range r.Processes {
		totalWait += float64(r.Waiting[i])
		totalTurnaround += float64(r.Turnaround[i])
	}
	count := float64(len(r.Processes))
	r.AverageWaiting = totalWait / count
	r.AverageTurnaround = totalTurnaround / count
}

// Makespan is the time the last process completes.
func (r Result) Makespan() int64 {
	var last int64
	for _, c := range r.Completion {
		if c > last {
			last = c
		}
	}
	return last
}

// Throughput is the number of processes completed per time unit.
func (r Result) Throughput() float64 {
	last := r.Makespan()
	if last == 0 {
		return 0
	}
	return float64(len(r.Processes)) / float64(last)
}

// IdleTime is the time between the first arrival and the makespan during
// which no process held the CPU.
func (r Result) IdleTime() int64 {
	if len(r.Gantt) == 0 {
		return 0
	}
	first := r.Processes[0].ArrivalTime
	for _, p := range r.Processes[1:] {
		if p.ArrivalTime < first {
			first = p.ArrivalTime
		}
	}

	var idle int64
	clock := first
	for _, s := range r.Gantt {
		if s.Start > clock {
			idle += s.Start - clock
		}
		if s.Stop > clock {
			clock = s.Stop
		}
	}
	return idle
}
