package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chesscore/internal/chess"
)

// stepReaches reports whether target is one step from from in one of dirs.
func stepReaches(from, target chess.Square, dirs []chess.Dir) bool {
	for _, d := range dirs {
		if sq, ok := from.Add(d); ok && sq == target {
			return true
		}
	}
	return false
}

// slideReaches reports whether a slider on from reaches target along one of
// dirs with every square in between empty.
func slideReaches(b *chess.Board, from, target chess.Square, dirs []chess.Dir) bool {
	dc := target.Col() - from.Col()
	dr := target.Row() - from.Row()
	d := chess.Dir{DX: sign(dc), DY: sign(dr)}
	if dc != 0 && dr != 0 && abs(dc) != abs(dr) {
		return false
	}
	if !slices.Contains(dirs, d) {
		return false
	}
	return isPathClear(b, from, target, d)
}

// isPathClear checks that every square strictly between from and to along d is empty.
func isPathClear(b *chess.Board, from, to chess.Square, d chess.Dir) bool {
	sq, ok := from.Add(d)
	for ok && sq != to {
		if !b.IsEmpty(sq) {
			return false
		}
		sq, ok = sq.Add(d)
	}
	return ok
}

// slideTargets walks each direction until the edge or the first piece,
// calling visit for every reachable square. The blocking square is visited
// too when it holds an enemy piece.
func slideTargets(b *chess.Board, c chess.Colour, from chess.Square, dirs []chess.Dir, visit func(to chess.Square, victim *chess.Piece)) {
	for _, d := range dirs {
		for sq, ok := from.Add(d); ok; sq, ok = sq.Add(d) {
			p, occupied := b.PieceAt(sq)
			if !occupied {
				visit(sq, nil)
				continue
			}
			if p.Colour != c {
				visit(sq, p)
			}
			break
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
