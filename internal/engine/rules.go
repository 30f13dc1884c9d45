package engine

import (
	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/errors"
)

// automaticDraws returns the draws that end the game without a claim, with
// toMove the side about to play.
func automaticDraws(b *chess.Board, toMove chess.Colour) DrawFlags {
	var d DrawFlags
	if b.HasInsufficientMaterial() {
		d |= DrawInsufficientMaterial
	}
	if b.MaxRepetitionCount(toMove) >= AutomaticRepetitions {
		d |= Draw5xRepetition
	}
	if b.MovesSincePawnMoveOrCapture() >= AutomaticQuietPlies {
		d |= Draw75MoveRule
	}
	return d
}

// claimableDraws returns the draws a player may claim, with toMove the side
// about to play.
func claimableDraws(b *chess.Board, toMove chess.Colour) DrawFlags {
	var d DrawFlags
	if b.MaxRepetitionCount(toMove) >= ClaimRepetitions {
		d |= DrawClaimed3xRepetition
	}
	if b.MovesSincePawnMoveOrCapture() >= ClaimQuietPlies {
		d |= DrawClaimed50MoveRule
	}
	return d
}

// ClaimDraw is a draw claim by c, the side to move, on the current position.
func ClaimDraw(g *Game, c chess.Colour) (State, error) {
	d := claimableDraws(g.board, c)
	if d == 0 {
		return State{}, errors.Wrapf(errors.ErrNoDrawClaim, "%s at ply %d", c, g.Ply())
	}
	return State{End: Draw, Draws: d}, nil
}

// Concede ends the game with c resigning.
func Concede(c chess.Colour) State {
	return State{End: WinFor(c.Opposite()), Win: Conceding}
}

// Agreed ends the game on a proposal accepted by the opponent. A proposed
// win goes to the proposer.
func Agreed(end GameEnd, proposer chess.Colour) State {
	if end == Draw {
		return State{End: Draw, Draws: DrawAgreement}
	}
	return State{End: WinFor(proposer), Win: Agreement}
}
