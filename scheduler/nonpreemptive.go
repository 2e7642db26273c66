package scheduler

// before reports whether a should be picked over b. Ties must return false so
// the lowest index among equals wins.
type before func(a, b Process) bool

func byBurstTime(a, b Process) bool { return a.BurstTime < b.BurstTime }
func byPriority(a, b Process) bool  { return a.Priority < b.Priority }

// SJF picks, each time the CPU frees up, the arrived process with the
// shortest burst and runs it to completion. A shorter job arriving while
// another runs waits for it to finish.
func SJF(processes []Process) (Result, error) {
	return nonPreemptive(AlgorithmSJF, processes, byBurstTime)
}

// Priority picks, each time the CPU frees up, the arrived process with the
// lowest priority value and runs it to completion.
func Priority(processes []Process) (Result, error) {
	return nonPreemptive(AlgorithmPriority, processes, byPriority)
}

func nonPreemptive(alg Algorithm, processes []Process, less before) (Result, error) {
	procs, err := prepare(processes)
	if err != nil {
		return Result{}, err
	}

	var (
		serviceTime int64
		completed   = make([]bool, len(procs))
		result      = newResult(alg, procs)
	)
	for done := 0; done < len(procs); {
		next := selectNext(procs, completed, serviceTime, less)
		if next < 0 {
			// Nothing has arrived yet, skip ahead to the next arrival.
			serviceTime = earliestArrival(procs, func(i int) bool { return !completed[i] })
			continue
		}

		completion := serviceTime + procs[next].BurstTime
		result.dispatch(next, serviceTime, completion)
		result.complete(next, completion)
		completed[next] = true
		serviceTime = completion
		done++
	}
	result.finish()

	return result, nil
}

// selectNext scans in index order for the best arrived, unfinished process.
// It returns -1 when none has arrived by serviceTime.
func selectNext(procs []Process, completed []bool, serviceTime int64, less before) int {
	next := -1
	for i := range procs {
		if completed[i] || procs[i].ArrivalTime > serviceTime {
			continue
		}
		if next < 0 || less(procs[i], procs[next]) {
			next = i
		}
	}
	return next
}
