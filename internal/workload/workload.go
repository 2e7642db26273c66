// Package workload loads and validates the set of processes and the round
// robin quantum a simulation runs on.
package workload

import (
	"errors"
	"fmt"

	"github.com/TigerCipher/cpusched/scheduler"
)

const (
	// DefaultQuantum is used when a workload leaves the quantum unset.
	DefaultQuantum int64 = 2
	// MaxProcesses bounds the size of a single workload.
	MaxProcesses = 100
)

var ErrInvalidWorkload = errors.New("invalid workload")

type (
	// Config is a complete workload description.
	Config struct {
		ProcessCount int             `mapstructure:"process_count" json:"process_count,omitempty" yaml:"process_count,omitempty"`
		Processes    []ProcessConfig `mapstructure:"processes" json:"processes" yaml:"processes"`
		Quantum      int64           `mapstructure:"quantum" json:"quantum,omitempty" yaml:"quantum,omitempty"`
	}
	ProcessConfig struct {
		Name        string `mapstructure:"name" json:"name" yaml:"name"`
		BurstTime   int64  `mapstructure:"burst_time" json:"burst_time" yaml:"burst_time"`
		ArrivalTime int64  `mapstructure:"arrival_time" json:"arrival_time" yaml:"arrival_time"`
		Priority    int64  `mapstructure:"priority" json:"priority" yaml:"priority"`
	}
)

// Validate checks the workload as a whole before any process record is built.
func (c Config) Validate() error {
	if len(c.Processes) == 0 {
		return scheduler.ErrEmptyInput
	}
	if c.ProcessCount != 0 && c.ProcessCount != len(c.Processes) {
		return fmt.Errorf("%w: process_count is %d but %d processes are listed", ErrInvalidWorkload, c.ProcessCount, len(c.Processes))
	}
	if len(c.Processes) > MaxProcesses {
		return fmt.Errorf("%w: at most %d processes, got %d", ErrInvalidWorkload, MaxProcesses, len(c.Processes))
	}
	if c.Quantum < 0 {
		return fmt.Errorf("%w: must be positive, got %d", scheduler.ErrInvalidQuantum, c.Quantum)
	}
	for i, p := range c.Processes {
		if err := p.record(i).Validate(); err != nil {
			return fmt.Errorf("process %d: %w", i, err)
		}
	}
	return nil
}

// Records validates c and returns its processes in declaration order.
func (c Config) Records() ([]scheduler.Process, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	procs := make([]scheduler.Process, len(c.Processes))
	for i, p := range c.Processes {
		procs[i] = p.record(i)
	}
	return procs, nil
}

// EffectiveQuantum is the quantum round robin runs with.
func (c Config) EffectiveQuantum() int64 {
	if c.Quantum == 0 {
		return DefaultQuantum
	}
	return c.Quantum
}

func (p ProcessConfig) record(i int) scheduler.Process {
	name := p.Name
	if name == "" {
		name = fmt.Sprintf("P%d", i+1)
	}
	return scheduler.Process{
		Name:        name,
		BurstTime:   p.BurstTime,
		ArrivalTime: p.ArrivalTime,
		Priority:    p.Priority,
	}
}
