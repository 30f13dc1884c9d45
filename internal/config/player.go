package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chesscore/internal/errors"
)

// PlayerKind selects the strategy that plays one side.
type PlayerKind int

const (
	Human PlayerKind = iota
	Random
	RandomCapture
)

var playerKindNames = [...]string{
	Human:         "human",
	Random:        "random",
	RandomCapture: "random-capture",
}

// String returns the flag spelling of the kind.
func (k PlayerKind) String() string {
	if k.Valid() {
		return playerKindNames[k]
	}
	return fmt.Sprintf("PlayerKind(%d)", int(k))
}

// Valid reports whether k names a known player.
func (k PlayerKind) Valid() bool {
	return k >= 0 && int(k) < len(playerKindNames)
}

// ParsePlayerKind parses "human", "random" or "random-capture".
func ParsePlayerKind(s string) (PlayerKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range playerKindNames {
		if n == name {
			return PlayerKind(k), nil
		}
	}
	return Human, fmt.Errorf("unknown player %q: %w", s, errors.ErrInvalidConfig)
}
