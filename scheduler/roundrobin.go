package scheduler

import "fmt"

// RoundRobin sweeps the processes in index order, giving each arrived,
// unfinished process up to quantum units of CPU per sweep.
//
// There is no FIFO ready queue. A process that arrives after the sweep has
// passed its index is first served on the following sweep, even if it
// arrived before a process with a higher index that runs in this one.
func RoundRobin(processes []Process, quantum int64) (Result, error) {
	if quantum <= 0 {
		return Result{}, fmt.Errorf("%w: must be positive, got %d", ErrInvalidQuantum, quantum)
	}
	procs, err := prepare(processes)
	if err != nil {
		return Result{}, err
	}

	var (
		serviceTime     int64
		finished        int
		remainingBursts = make([]int64, len(procs))
		result          = newResult(AlgorithmRoundRobin, procs)
	)
	for i := range procs {
		remainingBursts[i] = procs[i].BurstTime
	}

	for finished < len(procs) {
		dispatched := false
		for i := range procs {
			if procs[i].ArrivalTime > serviceTime || remainingBursts[i] == 0 {
				continue
			}
			dispatched = true

			start := serviceTime
			if remainingBursts[i] > quantum {
				serviceTime += quantum
				remainingBursts[i] -= quantum
				result.dispatch(i, start, serviceTime)
				continue
			}

			serviceTime += remainingBursts[i]
			remainingBursts[i] = 0
			result.dispatch(i, start, serviceTime)
			result.complete(i, serviceTime)
			finished++
		}

		if !dispatched {
			// CPU idle for a whole sweep.
			serviceTime = earliestArrival(procs, func(i int) bool { return remainingBursts[i] > 0 })
		}
	}
	result.finish()

	return result, nil
}
