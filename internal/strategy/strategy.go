// Package strategy chooses moves for one side of a game: uniformly random,
// capture-preferring random, or a human at the console.
package strategy

import (
	"context"
	"fmt"
	"io"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/config"
	"github.com/lgbarn/chesscore/internal/engine"
	"github.com/lgbarn/chesscore/internal/errors"
	"github.com/lgbarn/chesscore/internal/parser"
)

// Action is what a player does with its turn.
type Action int

const (
	PlayMove Action = iota
	ClaimDraw
	Concede
	ProposeWin
	ProposeDraw
	Quit
)

var actionNames = [...]string{
	PlayMove:    "move",
	ClaimDraw:   "draw claim",
	Concede:     "concession",
	ProposeWin:  "win proposal",
	ProposeDraw: "draw proposal",
	Quit:        "quit",
}

func (a Action) String() string {
	if a >= 0 && int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// Decision is a player's turn. Move and ClaimDraw apply to PlayMove only;
// ClaimDraw then asks for a draw after the move.
type Decision struct {
	Action    Action
	Move      chess.Move
	ClaimDraw bool
}

// Proposal is put to the opponent of a player who proposed it.
type Proposal int

const (
	// AcceptDraw asks whether the game is drawn.
	AcceptDraw Proposal = iota
	// AcceptLoss asks the responder to concede.
	AcceptLoss
)

// Strategy plays one side.
type Strategy interface {
	Name() string

	// Interactive reports whether the player can answer proposals.
	Interactive() bool

	// Choose decides the turn of colour c. moves holds c's legal moves and
	// is never empty.
	Choose(ctx context.Context, g *engine.Game, c chess.Colour, moves engine.MoveMap) (Decision, error)

	// Respond answers a proposal made by c's opponent.
	Respond(ctx context.Context, g *engine.Game, c chess.Colour, p Proposal) (bool, error)
}

// New creates the strategy for kind. Console players share in and write
// to cfg.OutputFile.
func New(kind config.PlayerKind, seed int64, cfg *config.Config, in *parser.Parser) (Strategy, error) {
	switch kind {
	case config.Random:
		return NewRandom(seed), nil
	case config.RandomCapture:
		return NewRandomCapture(seed), nil
	case config.Human:
		var out io.Writer = io.Discard
		if cfg.OutputFile != nil {
			out = cfg.OutputFile
		}
		return NewConsole(cfg, in, out), nil
	}
	return nil, fmt.Errorf("player kind %v: %w", kind, errors.ErrInvalidConfig)
}
