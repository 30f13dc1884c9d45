package config

import (
	"fmt"

	"github.com/lgbarn/chesscore/internal/errors"
)

// MatchConfig holds settings for a series of games.
type MatchConfig struct {
	// Games is the number of games to play. 0 asks after each game
	// whether to play again.
	Games int

	// Workers is the number of games played at once.
	Workers int

	// MaxPlies stops a game that runs longer; 0 means no limit.
	MaxPlies int

	// Seed seeds the random players. Game i uses Seed+i.
	Seed int64

	// StartFEN replaces the initial position when set.
	StartFEN string
}

// NewMatchConfig creates a MatchConfig with default values.
func NewMatchConfig() *MatchConfig {
	return &MatchConfig{
		Games:   1,
		Workers: 1,
	}
}

// Validate checks that the match configuration is valid.
func (m *MatchConfig) Validate() error {
	if m.Games < 0 {
		return fmt.Errorf("game count %d: %w", m.Games, errors.ErrInvalidConfig)
	}
	if m.Workers < 1 {
		return fmt.Errorf("worker count %d: %w", m.Workers, errors.ErrInvalidConfig)
	}
	if m.MaxPlies < 0 {
		return fmt.Errorf("ply limit %d: %w", m.MaxPlies, errors.ErrInvalidConfig)
	}
	if m.Games == 0 && m.Workers > 1 {
		return fmt.Errorf("open-ended matches need a single worker: %w", errors.ErrInvalidConfig)
	}
	return nil
}
