package scheduler

// FCFS runs processes to completion in the order given. The slice is not
// sorted by arrival time first: a process listed before an earlier arrival
// still runs first, and the CPU idles until it arrives.
func FCFS(processes []Process) (Result, error) {
	procs, err := prepare(processes)
	if err != nil {
		return Result{}, err
	}

	var (
		serviceTime int64
		result      = newResult(AlgorithmFCFS, procs)
	)
	for i := range procs {
		if serviceTime < procs[i].ArrivalTime {
			serviceTime = procs[i].ArrivalTime
		}
		completion := serviceTime + procs[i].BurstTime
		result.dispatch(i, serviceTime, completion)
		result.complete(i, completion)
		serviceTime = completion
	}
	result.finish()

	return result, nil
}
