package config

import (
	"fmt"
	"io"

	"github.com/lgbarn/chesscore/internal/errors"
)

// SummaryMode selects how match results are reported.
type SummaryMode int

const (
	// ConciseSummary prints one line per distinct final state.
	ConciseSummary SummaryMode = iota
	// FullSummary also lists every game.
	FullSummary
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// MaxLineLength wraps PGN movetext; 0 disables wrapping.
	MaxLineLength uint

	// JSONFormat writes one JSON record per finished game.
	JSONFormat bool

	// ShowBoard prints the board before every turn.
	ShowBoard bool

	// ShowStats prints history, PGN and repetition tables at game end.
	ShowStats bool

	// Summary selects the end-of-match report.
	Summary SummaryMode

	// PGNFile receives a PGN record of every finished game when set.
	PGNFile io.Writer

	// Event and Site fill the PGN tag roster.
	Event string
	Site  string
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		MaxLineLength: 80,
		ShowBoard:     true,
		ShowStats:     true,
		Summary:       ConciseSummary,
		Event:         "Casual game",
		Site:          "?",
	}
}

// Validate checks the output settings.
func (o *OutputConfig) Validate() error {
	if o.MaxLineLength != 0 && o.MaxLineLength < 20 {
		return fmt.Errorf("line length %d too short: %w", o.MaxLineLength, errors.ErrInvalidConfig)
	}
	if o.Summary != ConciseSummary && o.Summary != FullSummary {
		return fmt.Errorf("summary mode %d: %w", o.Summary, errors.ErrInvalidConfig)
	}
	return nil
}
