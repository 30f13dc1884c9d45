package parser

import (
	"fmt"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/engine"
	"github.com/lgbarn/chesscore/internal/errors"
)

// ResolveMove matches a parsed move against the legal moves of colour c and
// returns the legal move, with the requested promotion applied. Promotions
// without a letter become queens. The board is never changed.
//
// Errors are *errors.MoveError values wrapping ErrEmptySquare,
// ErrNotYourPiece, ErrIllegalMove or ErrInvalidPromotion.
func ResolveMove(g *engine.Game, c chess.Colour, moves engine.MoveMap, in Input) (chess.Move, error) {
	fail := func(err error) (chess.Move, error) {
		return chess.Move{}, &errors.MoveError{
			Err:    err,
			GameID: g.ID.String(),
			Ply:    g.Ply(),
			Colour: c.String(),
			Input:  in.Text,
		}
	}

	if in.Kind != MoveInput {
		return fail(fmt.Errorf("%s is not a move: %w", in.Kind, errors.ErrIllegalMove))
	}

	p, ok := g.Board().PieceAt(in.From)
	if !ok {
		return fail(fmt.Errorf("%s: %w", in.From, errors.ErrEmptySquare))
	}
	if p.Colour != c {
		return fail(fmt.Errorf("%s on %s: %w", p.Type, in.From, errors.ErrNotYourPiece))
	}

	m, ok := moves.Find(in.From, in.To)
	if !ok {
		return fail(fmt.Errorf("%s %s-%s: %w", p.Type, in.From, in.To, errors.ErrIllegalMove))
	}

	if in.Promotion != chess.NoPieceType {
		if !m.IsPromotion() {
			return fail(fmt.Errorf("%s does not promote: %w", m.Notation(), errors.ErrInvalidPromotion))
		}
		m = m.WithPromotion(in.Promotion)
	}
	return m, nil
}
