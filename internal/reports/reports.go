package reports

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	dnderr "github.com/KirkDiggler/duel-sim/internal/errors"
	"github.com/KirkDiggler/duel-sim/internal/services/simulation"
)

// Writer saves simulation summaries to a filesystem
type Writer struct {
	fs afero.Fs
}

// NewWriter creates a report writer on fs
func NewWriter(fs afero.Fs) *Writer {
	if fs == nil {
		panic("filesystem is required")
	}
	return &Writer{fs: fs}
}

// NewOSWriter creates a report writer on the real filesystem
func NewOSWriter() *Writer {
	return NewWriter(afero.NewOsFs())
}

// Write stores summary as indented JSON at path, creating parent directories
func (w *Writer) Write(path string, summary *simulation.Summary) error {
	if path == "" {
		return dnderr.InvalidArgument("report path is required")
	}
	if summary == nil {
		return dnderr.InvalidArgument("summary is required")
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return dnderr.Wrap(err, "failed to serialize summary")
	}

	if err := w.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return dnderr.Wrapf(err, "failed to create report directory for %s", path)
	}

	if err := afero.WriteFile(w.fs, path, append(data, '\n'), 0o644); err != nil {
		return dnderr.Wrapf(err, "failed to write report %s", path)
	}

	return nil
}

// Read loads a summary previously written at path
func (w *Writer) Read(path string) (*simulation.Summary, error) {
	data, err := afero.ReadFile(w.fs, path)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to read report %s", path)
	}

	var summary simulation.Summary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, dnderr.Wrapf(err, "failed to parse report %s", path)
	}

	return &summary, nil
}

// Format renders a human readable summary with grouped thousands
func Format(summary *simulation.Summary) string {
	p := message.NewPrinter(language.English)

	return p.Sprintf("Battles: %d (seed %d)\n", summary.Runs, summary.Seed) +
		p.Sprintf("Player wins: %d (%.1f%%)\n", summary.PlayerWins, summary.PlayerWinRate()*100) +
		p.Sprintf("Enemy wins: %d\n", summary.EnemyWins) +
		p.Sprintf("No contest: %d (round limit %d)\n", summary.NoContests, summary.RoundLimits) +
		fmt.Sprintf("Rounds: min %d, max %d, avg %.2f\n", summary.MinRounds, summary.MaxRounds, summary.AverageRounds)
}
