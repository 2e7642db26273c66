package config

import (
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TigerCipher/cpusched/scheduler"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	return fs
}

func TestParse_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := parseWithFlagSet(newFlagSet(), []string{"procs.csv"})
	require.NoError(t, err)

	assert.Equal(t, "procs.csv", cfg.File)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Zero(t, cfg.Quantum)
	assert.Equal(t, scheduler.Algorithms, cfg.Algorithms)
	assert.Empty(t, cfg.ServeAddr)
}

func TestParse_Flags(t *testing.T) {
	os.Clearenv()

	cfg, err := parseWithFlagSet(newFlagSet(), []string{
		"-quantum", "3", "-algorithms", "rr,fcfs", "-log-level", "debug", "workload.yaml",
	})
	require.NoError(t, err)

	assert.Equal(t, "workload.yaml", cfg.File)
	assert.Equal(t, int64(3), cfg.Quantum)
	assert.Equal(t, []scheduler.Algorithm{scheduler.AlgorithmRoundRobin, scheduler.AlgorithmFCFS}, cfg.Algorithms)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParse_FlagsOverrideEnv(t *testing.T) {
	os.Clearenv()
	t.Setenv("SCHEDSIM_LOG_LEVEL", "warn")
	t.Setenv("SCHEDSIM_QUANTUM", "5")

	cfg, err := parseWithFlagSet(newFlagSet(), []string{"a.csv"})
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, int64(5), cfg.Quantum)

	cfg, err = parseWithFlagSet(newFlagSet(), []string{"-quantum", "1", "-log-level", "error", "a.csv"})
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, int64(1), cfg.Quantum)
}

func TestParse_Serve(t *testing.T) {
	os.Clearenv()

	cfg, err := parseWithFlagSet(newFlagSet(), []string{"-serve", ":9095"})
	require.NoError(t, err)
	assert.Equal(t, ":9095", cfg.ServeAddr)
	assert.Empty(t, cfg.File)
}

func TestParse_Errors(t *testing.T) {
	os.Clearenv()

	tests := map[string][]string{
		"missing file":      {},
		"two files":         {"a.csv", "b.csv"},
		"negative quantum":  {"-quantum", "-2", "a.csv"},
		"unknown algorithm": {"-algorithms", "fcfs,lottery", "a.csv"},
	}
	for name, args := range tests {
		_, err := parseWithFlagSet(newFlagSet(), args)
		assert.ErrorIs(t, err, ErrInvalidArgs, name)
	}

	t.Setenv("SCHEDSIM_QUANTUM", "two")
	_, err := parseWithFlagSet(newFlagSet(), []string{"a.csv"})
	assert.ErrorIs(t, err, ErrInvalidArgs)
}
