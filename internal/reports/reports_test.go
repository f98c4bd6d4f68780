package reports_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dnderr "github.com/KirkDiggler/duel-sim/internal/errors"
	"github.com/KirkDiggler/duel-sim/internal/reports"
	"github.com/KirkDiggler/duel-sim/internal/services/simulation"
)

func sampleSummary() *simulation.Summary {
	return &simulation.Summary{
		Runs:          12000,
		Seed:          42,
		PlayerWins:    9000,
		EnemyWins:     2500,
		NoContests:    500,
		RoundLimits:   500,
		MinRounds:     1,
		MaxRounds:     100,
		AverageRounds: 6.5,
	}
}

func TestWriter_WriteAndRead(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := reports.NewWriter(fs)

	require.NoError(t, w.Write("out/nested/summary.json", sampleSummary()))

	exists, err := afero.Exists(fs, "out/nested/summary.json")
	require.NoError(t, err)
	assert.True(t, exists)

	got, err := w.Read("out/nested/summary.json")
	require.NoError(t, err)
	assert.Equal(t, sampleSummary(), got)

	raw, err := afero.ReadFile(fs, "out/nested/summary.json")
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"player_wins": 9000`)
}

func TestWriter_Errors(t *testing.T) {
	w := reports.NewWriter(afero.NewMemMapFs())

	assert.True(t, dnderr.IsInvalidArgument(w.Write("", sampleSummary())))
	assert.True(t, dnderr.IsInvalidArgument(w.Write("summary.json", nil)))

	_, err := w.Read("missing.json")
	assert.Error(t, err)

	ro := reports.NewWriter(afero.NewReadOnlyFs(afero.NewMemMapFs()))
	assert.Error(t, ro.Write("summary.json", sampleSummary()))
}

func TestFormat(t *testing.T) {
	out := reports.Format(sampleSummary())

	assert.Contains(t, out, "Battles: 12,000 (seed 42)")
	assert.Contains(t, out, "Player wins: 9,000 (75.0%)")
	assert.Contains(t, out, "Enemy wins: 2,500")
	assert.Contains(t, out, "No contest: 500 (round limit 500)")
	assert.Contains(t, out, "Rounds: min 1, max 100, avg 6.50")
}
