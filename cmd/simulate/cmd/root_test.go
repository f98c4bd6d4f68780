package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dnderr "github.com/KirkDiggler/duel-sim/internal/errors"
	"github.com/KirkDiggler/duel-sim/internal/reports"
)

// resetRootCmd puts the package level command back to its defaults
func resetRootCmd(t *testing.T) {
	t.Helper()
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		require.NoError(t, f.Value.Set(f.DefValue))
		f.Changed = false
	})
	rootCmd.SetArgs(nil)
	rootCmd.SetOut(nil)
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"SIMULATE_RUNS", "SIMULATE_WORKERS", "SIMULATE_SEED", "SIMULATE_MAX_ROUNDS", "SIMULATE_REPORT"} {
		t.Setenv(key, "")
	}
}

func TestResolveConfig_FlagsOverrideEnv(t *testing.T) {
	clearEnv(t)
	resetRootCmd(t)
	t.Cleanup(func() { resetRootCmd(t) })

	t.Setenv("SIMULATE_RUNS", "0")
	t.Setenv("SIMULATE_WORKERS", "2")
	t.Setenv("SIMULATE_SEED", "9")

	require.NoError(t, rootCmd.ParseFlags([]string{"--runs", "5", "--max-rounds", "40", "--report", "out/r.json"}))

	cfg, err := resolveConfig(rootCmd)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Simulation.Runs)
	assert.Equal(t, 2, cfg.Simulation.Workers, "unset flags keep the environment value")
	assert.Equal(t, int64(9), cfg.Simulation.Seed)
	assert.Equal(t, 40, cfg.Simulation.MaxRounds)
	assert.Equal(t, "out/r.json", cfg.Simulation.ReportPath)
}

func TestResolveConfig_InvalidEnvWithoutOverride(t *testing.T) {
	clearEnv(t)
	resetRootCmd(t)
	t.Cleanup(func() { resetRootCmd(t) })

	t.Setenv("SIMULATE_RUNS", "0")
	require.NoError(t, rootCmd.ParseFlags([]string{"--workers", "3"}))

	_, err := resolveConfig(rootCmd)
	require.Error(t, err)
	assert.True(t, dnderr.IsValidation(err))
	assert.Contains(t, err.Error(), "Runs")
}

func TestRootCmd_Execute(t *testing.T) {
	clearEnv(t)
	resetRootCmd(t)
	t.Cleanup(func() { resetRootCmd(t) })

	t.Setenv("SIMULATE_RUNS", "0")
	reportPath := filepath.Join(t.TempDir(), "nested", "summary.json")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--runs", "3", "--workers", "2", "--seed", "7", "--max-rounds", "100", "--report", reportPath})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Battles: 3 (seed 7)")

	summary, err := reports.NewOSWriter().Read(reportPath)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Runs)
	assert.Equal(t, int64(7), summary.Seed)
	assert.Equal(t, 3, summary.PlayerWins+summary.EnemyWins+summary.NoContests)
}
