package engine

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chesscore/internal/chess"
)

// MoveMap holds legal moves grouped by their origin square.
type MoveMap map[chess.Square][]chess.Move

// LegalMoves returns every legal move of colour c, keyed by origin square.
// Squares without legal moves are absent.
func LegalMoves(g *Game, c chess.Colour) MoveMap {
	moves := make(MoveMap)
	for _, p := range g.board.Pieces(c) {
		from := p.Square
		for _, m := range PieceMoves(g, c, from) {
			if !leavesKingInCheck(g, m) {
				moves[from] = append(moves[from], m)
			}
		}
	}
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(g *Game, c chess.Colour) bool {
	for _, p := range g.board.Pieces(c) {
		for _, m := range PieceMoves(g, c, p.Square) {
			if !leavesKingInCheck(g, m) {
				return true
			}
		}
	}
	return false
}

// leavesKingInCheck plays m speculatively and tests the mover's king.
func leavesKingInCheck(g *Game, m chess.Move) (inCheck bool) {
	g.withMove(m, func() {
		inCheck = IsInCheck(g, m.Colour)
	})
	return inCheck
}

// Count returns the total number of moves.
func (mm MoveMap) Count() int {
	n := 0
	for _, moves := range mm {
		n += len(moves)
	}
	return n
}

// Squares returns the origin squares in ascending order.
func (mm MoveMap) Squares() []chess.Square {
	squares := maps.Keys(mm)
	slices.Sort(squares)
	return squares
}

// All returns every move ordered by origin square, then destination.
func (mm MoveMap) All() []chess.Move {
	out := make([]chess.Move, 0, mm.Count())
	for _, from := range mm.Squares() {
		moves := slices.Clone(mm[from])
		slices.SortStableFunc(moves, func(a, b chess.Move) bool { return a.To < b.To })
		out = append(out, moves...)
	}
	return out
}

// Find returns the move from from to to. A promotion is returned with its
// default piece.
func (mm MoveMap) Find(from, to chess.Square) (chess.Move, bool) {
	for _, m := range mm[from] {
		if m.To == to {
			return m, true
		}
	}
	return chess.Move{}, false
}

// Captures returns the subset of moves that capture.
func (mm MoveMap) Captures() MoveMap {
	out := make(MoveMap)
	for from, moves := range mm {
		for _, m := range moves {
			if m.IsCapture() {
				out[from] = append(out[from], m)
			}
		}
	}
	return out
}

// Targets returns the destinations reachable from from, in ascending order.
func (mm MoveMap) Targets(from chess.Square) []chess.Square {
	var out []chess.Square
	for _, m := range mm[from] {
		out = append(out, m.To)
	}
	slices.Sort(out)
	return out
}
