package config

import (
	"io"

	"github.com/lgbarn/chesscore/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithPlayer sets the kind of player for one side.
func (b *ConfigBuilder) WithPlayer(c chess.Colour, kind PlayerKind) *ConfigBuilder {
	b.cfg.Players[c] = kind
	return b
}

// WithPlayerName sets the display name for one side.
func (b *ConfigBuilder) WithPlayerName(c chess.Colour, name string) *ConfigBuilder {
	if name != "" {
		b.cfg.PlayerNames[c] = name
	}
	return b
}

// WithGames sets the number of games; 0 asks after each game.
func (b *ConfigBuilder) WithGames(n int) *ConfigBuilder {
	b.cfg.Match.Games = n
	return b
}

// WithWorkers sets the number of concurrent games.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Match.Workers = n
	return b
}

// WithMaxPlies stops games after n plies.
func (b *ConfigBuilder) WithMaxPlies(n int) *ConfigBuilder {
	b.cfg.Match.MaxPlies = n
	return b
}

// WithSeed sets the random seed.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.Match.Seed = seed
	return b
}

// WithStartFEN starts every game from fen.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Match.StartFEN = fen
	return b
}

// WithMaxLineLength sets the maximum line length.
func (b *ConfigBuilder) WithMaxLineLength(length uint) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = length
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithPGNFile writes a PGN record of each game to w.
func (b *ConfigBuilder) WithPGNFile(w io.Writer) *ConfigBuilder {
	b.cfg.Output.PGNFile = w
	return b
}

// WithEvent sets the PGN Event and Site tags.
func (b *ConfigBuilder) WithEvent(event, site string) *ConfigBuilder {
	if event != "" {
		b.cfg.Output.Event = event
	}
	if site != "" {
		b.cfg.Output.Site = site
	}
	return b
}

// WithBoard controls the per-turn board display.
func (b *ConfigBuilder) WithBoard(show bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = show
	return b
}

// WithStats controls the end-of-game statistics.
func (b *ConfigBuilder) WithStats(show bool) *ConfigBuilder {
	b.cfg.Output.ShowStats = show
	return b
}

// WithSummary sets the end-of-match report.
func (b *ConfigBuilder) WithSummary(mode SummaryMode) *ConfigBuilder {
	b.cfg.Output.Summary = mode
	return b
}

// WithDuplicateDetection enables duplicate final position counting.
func (b *ConfigBuilder) WithDuplicateDetection(enabled, exact bool) *ConfigBuilder {
	b.cfg.Duplicate.Detect = enabled
	b.cfg.Duplicate.ExactMatch = exact
	return b
}

// WithDuplicateCapacity caps the number of stored final positions.
func (b *ConfigBuilder) WithDuplicateCapacity(n int) *ConfigBuilder {
	b.cfg.Duplicate.MaxPositions = n
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithInput sets the reader used by console players.
func (b *ConfigBuilder) WithInput(r io.Reader) *ConfigBuilder {
	b.cfg.Input = r
	return b
}

// WithVerbosity sets the log level.
func (b *ConfigBuilder) WithVerbosity(level LogLevel) *ConfigBuilder {
	b.cfg.verbosity = level
	return b
}
