package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chesscore/internal/chess"
)

// GameEnd is the outcome recorded in a State.
type GameEnd int

const (
	InPlay GameEnd = iota
	Draw
	WinBlack
	WinWhite
)

// String returns the string representation of a game end.
func (e GameEnd) String() string {
	switch e {
	case InPlay:
		return "In play"
	case Draw:
		return "Draw"
	case WinBlack:
		return "Black wins"
	case WinWhite:
		return "White wins"
	}
	return "Unknown"
}

// WinFor returns the win outcome for colour c.
func WinFor(c chess.Colour) GameEnd {
	if c == chess.White {
		return WinWhite
	}
	return WinBlack
}

// WinType is the reason a game was won.
type WinType int

const (
	NoWin WinType = iota
	Checkmate
	Agreement
	Conceding
)

func (w WinType) String() string {
	switch w {
	case Checkmate:
		return "checkmate"
	case Agreement:
		return "agreement"
	case Conceding:
		return "concession"
	}
	return ""
}

// DrawFlags records every reason that applies to a drawn position.
type DrawFlags uint

const (
	DrawStalemate DrawFlags = 1 << iota
	DrawInsufficientMaterial
	Draw5xRepetition
	Draw75MoveRule
	DrawClaimed3xRepetition
	DrawClaimed50MoveRule
	DrawAgreement
)

var drawReasons = []struct {
	flag DrawFlags
	text string
}{
	{DrawStalemate, "stalemate"},
	{DrawInsufficientMaterial, "insufficient material"},
	{Draw5xRepetition, "fivefold repetition"},
	{Draw75MoveRule, "75-move rule"},
	{DrawClaimed3xRepetition, "threefold repetition claimed"},
	{DrawClaimed50MoveRule, "50-move rule claimed"},
	{DrawAgreement, "agreement"},
}

// Has reports whether every flag in f is set.
func (d DrawFlags) Has(f DrawFlags) bool { return d&f == f }

// String lists the set reasons, comma separated.
func (d DrawFlags) String() string {
	var reasons []string
	for _, r := range drawReasons {
		if d.Has(r.flag) {
			reasons = append(reasons, r.text)
		}
	}
	return strings.Join(reasons, ", ")
}

// Draw thresholds, counted in half-moves.
const (
	ClaimRepetitions     = 3
	AutomaticRepetitions = 5
	ClaimQuietPlies      = 50
	AutomaticQuietPlies  = 75
)

// State is a snapshot of the game's status after a move.
type State struct {
	End         GameEnd
	Win         WinType
	Draws       DrawFlags
	IsCheck     bool // in check but not mated
	IsCheckmate bool
}

// Terminal reports whether the game is over.
func (s State) Terminal() bool { return s.End != InPlay }

// Winner returns the winning colour, if there is one.
func (s State) Winner() (chess.Colour, bool) {
	switch s.End {
	case WinWhite:
		return chess.White, true
	case WinBlack:
		return chess.Black, true
	}
	return chess.Black, false
}

// String describes the state, e.g. "White wins by checkmate".
func (s State) String() string {
	switch s.End {
	case InPlay:
		if s.IsCheck {
			return "In play (check)"
		}
		return "In play"
	case Draw:
		return fmt.Sprintf("Draw (%s)", s.Draws)
	default:
		return fmt.Sprintf("%s by %s", s.End, s.Win)
	}
}

// ComputeState decides the outcome after mover's move. oppMoves must be the
// opponent's legal moves in the resulting position. Claimable draws count
// only when claimDraw is set.
func ComputeState(g *Game, mover chess.Colour, claimDraw bool, oppMoves MoveMap) State {
	opp := mover.Opposite()
	var s State

	if IsInCheck(g, opp) {
		s.IsCheck = true
		if !canEscapeCheck(g, opp, oppMoves) {
			s.IsCheck = false
			s.IsCheckmate = true
			s.End = WinFor(mover)
			s.Win = Checkmate
			return s
		}
	} else if oppMoves.Count() == 0 {
		s.Draws |= DrawStalemate
	}

	s.Draws |= automaticDraws(g.board, opp)
	if claimDraw {
		s.Draws |= claimableDraws(g.board, opp)
	}
	if s.Draws != 0 {
		s.End = Draw
	}
	return s
}

// NextState generates the opponent's replies and computes the state after
// mover's move, annotating that move with check or checkmate. It returns the
// replies for reuse by the caller.
func NextState(g *Game, mover chess.Colour, claimDraw bool) (State, MoveMap) {
	replies := LegalMoves(g, mover.Opposite())
	s := ComputeState(g, mover, claimDraw, replies)
	if _, ok := g.LastApplied(); ok {
		switch {
		case s.IsCheckmate:
			g.Annotate(chess.Checkmate)
		case s.IsCheck:
			g.Annotate(chess.Check)
		}
	}
	return s, replies
}

// canEscapeCheck tries each reply of c and reports whether one leaves c's
// king unattacked.
func canEscapeCheck(g *Game, c chess.Colour, replies MoveMap) bool {
	for _, moves := range replies {
		for _, m := range moves {
			if !leavesKingInCheck(g, m) {
				return true
			}
		}
	}
	return false
}
