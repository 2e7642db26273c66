// Package scheduler computes per-process timing metrics for a fixed set of
// processes under FCFS, SJF, Priority and Round Robin scheduling.
//
// Every algorithm is a pure function over its input: it works on a private
// copy of the processes and never mutates the caller's slice, so the
// algorithms may run concurrently on the same input.
package scheduler

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyInput       = errors.New("no processes to schedule")
	ErrInvalidProcess   = errors.New("invalid process")
	ErrInvalidQuantum   = errors.New("invalid quantum")
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)

type (
	// Process is one schedulable unit. Lower Priority values run first.
	Process struct {
		Name        string `json:"name"`
		BurstTime   int64  `json:"burst_time"`
		ArrivalTime int64  `json:"arrival_time"`
		Priority    int64  `json:"priority"`
	}
	// TimeSlice is a contiguous stretch of CPU time given to one process.
	TimeSlice struct {
		Name  string `json:"name"`
		Index int    `json:"index"`
		Start int64  `json:"start"`
		Stop  int64  `json:"stop"`
	}
)

// Validate reports whether p can be scheduled.
func (p Process) Validate() error {
	if p.BurstTime <= 0 {
		return fmt.Errorf("%w: %q burst time must be positive, got %d", ErrInvalidProcess, p.Name, p.BurstTime)
	}
	if p.ArrivalTime < 0 {
		return fmt.Errorf("%w: %q arrival time must not be negative, got %d", ErrInvalidProcess, p.Name, p.ArrivalTime)
	}
	return nil
}

// prepare validates processes and returns a copy owned by the caller.
func prepare(processes []Process) ([]Process, error) {
	if len(processes) == 0 {
		return nil, ErrEmptyInput
	}
	for i := range processes {
		if err := processes[i].Validate(); err != nil {
			return nil, fmt.Errorf("process %d: %w", i, err)
		}
	}
	procs := make([]Process, len(processes))
	copy(procs, processes)
	return procs, nil
}

// earliestArrival is the smallest arrival time among the processes for which
// pending returns true. Callers guarantee at least one is pending.
func earliestArrival(procs []Process, pending func(i int) bool) int64 {
	earliest := int64(-1)
	for i := range procs {
		if !pending(i) {
			continue
		}
		if earliest < 0 || procs[i].ArrivalTime < earliest {
			earliest = procs[i].ArrivalTime
		}
	}
	return earliest
}
