// Package config provides configuration for playing games and matches.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/errors"
)

// LogLevel controls how much commentary is written to the log.
type LogLevel int

const (
	LogError LogLevel = iota
	LogWarn
	LogInfo  // game results
	LogDebug // every move
	LogTrace // move generation detail
)

var logLevelNames = [...]string{
	LogError: "LogError",
	LogWarn:  "LogWarn",
	LogInfo:  "LogInfo",
	LogDebug: "LogDebug",
	LogTrace: "LogTrace",
}

// String returns the level name, e.g. "LogInfo".
func (l LogLevel) String() string {
	if l >= 0 && int(l) < len(logLevelNames) {
		return logLevelNames[l]
	}
	return "Unknown"
}

// ParseLogLevel accepts "info", "log_info" or "LogInfo" in any case.
func ParseLogLevel(s string) (LogLevel, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.TrimPrefix(strings.TrimPrefix(name, "log_"), "log")
	for l, n := range logLevelNames {
		if strings.ToLower(strings.TrimPrefix(n, "Log")) == name {
			return LogLevel(l), nil
		}
	}
	return LogError, fmt.Errorf("unknown log level %q: %w", s, errors.ErrInvalidConfig)
}

// Config holds all program configuration.
type Config struct {
	Players     [chess.NumColours]PlayerKind
	PlayerNames [chess.NumColours]string

	Match     *MatchConfig
	Output    *OutputConfig
	Duplicate *DuplicateConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer

	// Input is read by human players.
	Input io.Reader

	mu        sync.Mutex
	verbosity LogLevel
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	cfg := &Config{
		Match:      NewMatchConfig(),
		Output:     NewOutputConfig(),
		Duplicate:  NewDuplicateConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
		Input:      os.Stdin,
		verbosity:  LogWarn,
	}
	cfg.Players[chess.White] = Random
	cfg.Players[chess.Black] = Random
	cfg.PlayerNames[chess.White] = "Wilma"
	cfg.PlayerNames[chess.Black] = "Basho"
	return cfg
}

// Player returns the kind of player for colour c.
func (c *Config) Player(col chess.Colour) PlayerKind {
	return c.Players[col]
}

// PlayerName returns the display name of the player for colour c.
func (c *Config) PlayerName(col chess.Colour) string {
	return c.PlayerNames[col]
}

// Verbosity returns the current log level.
func (c *Config) Verbosity() LogLevel {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.verbosity
}

// SetVerbosity changes the log level. Safe to call while games are running.
func (c *Config) SetVerbosity(l LogLevel) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.verbosity = l
}

// Logf writes to the log file when level is enabled.
func (c *Config) Logf(level LogLevel, format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if level > c.verbosity || c.LogFile == nil {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// HasHuman reports whether either side is played from the console.
func (c *Config) HasHuman() bool {
	return c.Players[chess.White] == Human || c.Players[chess.Black] == Human
}

// Validate checks that the configuration can be run.
func (c *Config) Validate() error {
	for _, col := range chess.Colours {
		if !c.Players[col].Valid() {
			return fmt.Errorf("%s player kind %d: %w", col, c.Players[col], errors.ErrInvalidConfig)
		}
	}
	if c.HasHuman() && c.Match.Workers > 1 {
		return fmt.Errorf("console players need a single worker, got %d: %w", c.Match.Workers, errors.ErrInvalidConfig)
	}
	if err := c.Match.Validate(); err != nil {
		return err
	}
	return c.Output.Validate()
}
