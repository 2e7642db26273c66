package scheduler

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Algorithm names a scheduling discipline.
type Algorithm string

const (
	AlgorithmFCFS       Algorithm = "fcfs"
	AlgorithmSJF        Algorithm = "sjf"
	AlgorithmPriority   Algorithm = "priority"
	AlgorithmRoundRobin Algorithm = "rr"
)

// Algorithms lists every discipline in report order.
var Algorithms = []Algorithm{AlgorithmFCFS, AlgorithmSJF, AlgorithmPriority, AlgorithmRoundRobin}

// Title is the human readable name used in reports.
func (a Algorithm) Title() string {
	switch a {
	case AlgorithmFCFS:
		return "First-come, first-serve"
	case AlgorithmSJF:
		return "Shortest-job-first"
	case AlgorithmPriority:
		return "Priority"
	case AlgorithmRoundRobin:
		return "Round-robin"
	}
	return string(a)
}

// ParseAlgorithm accepts an algorithm name, case-insensitively. "roundrobin"
// and "round-robin" are accepted for rr.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fcfs":
		return AlgorithmFCFS, nil
	case "sjf":
		return AlgorithmSJF, nil
	case "priority":
		return AlgorithmPriority, nil
	case "rr", "roundrobin", "round-robin":
		return AlgorithmRoundRobin, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Run schedules processes with alg. The quantum is only used by round robin.
func Run(alg Algorithm, processes []Process, quantum int64) (Result, error) {
	switch alg {
	case AlgorithmFCFS:
		return FCFS(processes)
	case AlgorithmSJF:
		return SJF(processes)
	case AlgorithmPriority:
		return Priority(processes)
	case AlgorithmRoundRobin:
		return RoundRobin(processes, quantum)
	}
	return Result{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(alg))
}

// RunAll runs each of algs concurrently over the same processes and returns
// the results in the order of algs. If any run fails, no results are
// returned.
func RunAll(ctx context.Context, algs []Algorithm, processes []Process, quantum int64) ([]Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(algs) == 0 {
		algs = Algorithms
	}

	var (
		wg      sync.WaitGroup
		results = make([]Result, len(algs))
		errs    = make([]error, len(algs))
	)
	wg.Add(len(algs))
	for i, alg := range algs {
		go func(i int, alg Algorithm) {
			defer wg.Done()
			results[i], errs[i] = Run(alg, processes, quantum)
		}(i, alg)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("%s: %w", algs[i], err)
		}
	}
	return results, nil
}
