package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/TigerCipher/cpusched/scheduler"
)

var ErrInvalidArgs = errors.New("invalid args")

// Config holds configuration for the schedsim binary.
type Config struct {
	File       string                // Workload file (CSV, YAML, JSON or TOML)
	Quantum    int64                 // Round robin quantum; 0 keeps the workload's value
	Algorithms []scheduler.Algorithm // Algorithms to run, in report order
	LogLevel   string
	ServeAddr  string // When set, serve the HTTP API instead of running File
}

// Parse parses configuration from flags and environment variables.
// Flags take precedence over environment variables.
func Parse() (Config, error) {
	return parseWithFlagSet(flag.CommandLine, os.Args[1:])
}

func parseWithFlagSet(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{
		LogLevel: "info",
	}

	// Read from environment first
	if logLevel := os.Getenv("SCHEDSIM_LOG_LEVEL"); logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if raw := os.Getenv("SCHEDSIM_QUANTUM"); raw != "" {
		q, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%w: SCHEDSIM_QUANTUM: %v", ErrInvalidArgs, err)
		}
		cfg.Quantum = q
	}
	if addr := os.Getenv("SCHEDSIM_ADDR"); addr != "" {
		cfg.ServeAddr = addr
	}

	// Flags override environment
	algorithms := "all"
	fs.Int64Var(&cfg.Quantum, "quantum", cfg.Quantum, "round robin time quantum (overrides the workload file)")
	fs.StringVar(&algorithms, "algorithms", algorithms, "comma separated algorithms to run (fcfs, sjf, priority, rr) or all")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.ServeAddr, "serve", cfg.ServeAddr, "serve the HTTP API on this address instead of running a file")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidArgs, err)
	}

	if cfg.Quantum < 0 {
		return Config{}, fmt.Errorf("%w: quantum must be positive, got %d", ErrInvalidArgs, cfg.Quantum)
	}

	algs, err := parseAlgorithms(algorithms)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidArgs, err)
	}
	cfg.Algorithms = algs

	if cfg.ServeAddr == "" {
		if fs.NArg() != 1 {
			return Config{}, fmt.Errorf("%w: must give a scheduling file to process", ErrInvalidArgs)
		}
		cfg.File = fs.Arg(0)
	}

	return cfg, nil
}

func parseAlgorithms(s string) ([]scheduler.Algorithm, error) {
	if strings.TrimSpace(s) == "" || strings.EqualFold(strings.TrimSpace(s), "all") {
		return scheduler.Algorithms, nil
	}
	var algs []scheduler.Algorithm
	for _, name := range strings.Split(s, ",") {
		alg, err := scheduler.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		algs = append(algs, alg)
	}
	return algs, nil
}
