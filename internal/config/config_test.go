package config

import (
	"bytes"
	"testing"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/errors"
)

// TestConfig_Defaults verifies NewConfig has sensible defaults
func TestConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Player(chess.White) != Random || cfg.Player(chess.Black) != Random {
		t.Errorf("Players = %v, want random for both", cfg.Players)
	}
	if cfg.PlayerName(chess.White) != "Wilma" {
		t.Errorf("White name = %q, want Wilma", cfg.PlayerName(chess.White))
	}
	if cfg.PlayerName(chess.Black) != "Basho" {
		t.Errorf("Black name = %q, want Basho", cfg.PlayerName(chess.Black))
	}
	if cfg.Verbosity() != LogWarn {
		t.Errorf("Verbosity = %v, want LogWarn", cfg.Verbosity())
	}
	if cfg.Match.Games != 1 || cfg.Match.Workers != 1 {
		t.Errorf("Match = %+v, want one game on one worker", *cfg.Match)
	}
	if cfg.Output.MaxLineLength != 80 {
		t.Errorf("MaxLineLength = %d, want 80", cfg.Output.MaxLineLength)
	}
	if !cfg.Duplicate.Detect {
		t.Error("Detect should be true by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{"log_error", LogError, false},
		{"warn", LogWarn, false},
		{"LogInfo", LogInfo, false},
		{"DEBUG", LogDebug, false},
		{" log_trace ", LogTrace, false},
		{"loud", LogError, true},
		{"", LogError, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLogLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLogLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrInvalidConfig) {
				t.Errorf("error %v does not wrap ErrInvalidConfig", err)
			}
			if got != tt.want {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParsePlayerKind(t *testing.T) {
	for _, k := range []PlayerKind{Human, Random, RandomCapture} {
		got, err := ParsePlayerKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParsePlayerKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParsePlayerKind("grandmaster"); !errors.Is(err, errors.ErrInvalidConfig) {
		t.Errorf("unknown kind error = %v", err)
	}
	if PlayerKind(7).Valid() {
		t.Error("PlayerKind(7) should be invalid")
	}
}

func TestLogf_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfigBuilder().WithLog(&buf).WithVerbosity(LogInfo).Build()

	cfg.Logf(LogInfo, "shown %d\n", 1)
	cfg.Logf(LogDebug, "hidden\n")
	cfg.SetVerbosity(LogTrace)
	cfg.Logf(LogTrace, "shown %d\n", 2)

	if got, want := buf.String(), "shown 1\nshown 2\n"; got != want {
		t.Errorf("log = %q, want %q", got, want)
	}
}

// TestMatchConfig_Validate verifies match config validation
func TestMatchConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     MatchConfig
		wantErr bool
	}{
		{"defaults", *NewMatchConfig(), false},
		{"open ended", MatchConfig{Games: 0, Workers: 1}, false},
		{"open ended in parallel", MatchConfig{Games: 0, Workers: 4}, true},
		{"negative games", MatchConfig{Games: -1, Workers: 1}, true},
		{"no workers", MatchConfig{Games: 3}, true},
		{"negative ply limit", MatchConfig{Games: 1, Workers: 1, MaxPlies: -5}, true},
		{"many games", MatchConfig{Games: 1000, Workers: 8, MaxPlies: 400, Seed: 7}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_ValidateHumanNeedsSingleWorker(t *testing.T) {
	cfg := NewConfigBuilder().
		WithPlayer(chess.White, Human).
		WithGames(10).
		WithWorkers(4).
		Build()

	if err := cfg.Validate(); !errors.Is(err, errors.ErrInvalidConfig) {
		t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
	}
	if !cfg.HasHuman() {
		t.Error("HasHuman() should be true")
	}
}

func TestOutputConfig_Validate(t *testing.T) {
	cfg := NewOutputConfig()
	cfg.MaxLineLength = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("unwrapped output rejected: %v", err)
	}
	cfg.MaxLineLength = 5
	if err := cfg.Validate(); err == nil {
		t.Error("line length 5 accepted")
	}
}

// TestConfigBuilder verifies the fluent builder API
func TestConfigBuilder(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfigBuilder().
		WithPlayer(chess.Black, RandomCapture).
		WithPlayerName(chess.Black, "Deep Basho").
		WithPlayerName(chess.White, "").
		WithGames(50).
		WithWorkers(4).
		WithMaxPlies(300).
		WithSeed(42).
		WithMaxLineLength(100).
		WithJSONOutput(true).
		WithBoard(false).
		WithStats(false).
		WithSummary(FullSummary).
		WithDuplicateDetection(true, false).
		WithOutput(&buf).
		Build()

	if cfg.Player(chess.Black) != RandomCapture {
		t.Errorf("Black = %v, want random-capture", cfg.Player(chess.Black))
	}
	if cfg.PlayerName(chess.Black) != "Deep Basho" {
		t.Errorf("Black name = %q", cfg.PlayerName(chess.Black))
	}
	if cfg.PlayerName(chess.White) != "Wilma" {
		t.Errorf("empty name should keep default, got %q", cfg.PlayerName(chess.White))
	}
	if cfg.Match.Games != 50 || cfg.Match.Workers != 4 || cfg.Match.MaxPlies != 300 || cfg.Match.Seed != 42 {
		t.Errorf("Match = %+v", *cfg.Match)
	}
	if cfg.Output.MaxLineLength != 100 || !cfg.Output.JSONFormat || cfg.Output.ShowBoard || cfg.Output.ShowStats {
		t.Errorf("Output = %+v", *cfg.Output)
	}
	if cfg.Output.Summary != FullSummary {
		t.Errorf("Summary = %v, want FullSummary", cfg.Output.Summary)
	}
	if cfg.Duplicate.ExactMatch {
		t.Error("ExactMatch should be false")
	}
	if cfg.OutputFile != &buf {
		t.Error("OutputFile not set")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}
