package engine

import "github.com/lgbarn/chesscore/internal/chess"

// Attacks reports whether attacker threatens target, ignoring whose turn it
// is and whether the attacker is pinned.
func Attacks(g *Game, attacker *chess.Piece, target chess.Square) bool {
	from := attacker.Square
	if from == target || !from.Valid() {
		return false
	}

	switch attacker.Type {
	case chess.King:
		return stepReaches(from, target, chess.AllDirs)
	case chess.Knight:
		return stepReaches(from, target, chess.KnightDirs)
	case chess.Rook:
		return slideReaches(g.board, from, target, chess.OrthoDirs)
	case chess.Bishop:
		return slideReaches(g.board, from, target, chess.DiagDirs)
	case chess.Queen:
		return slideReaches(g.board, from, target, chess.AllDirs)
	case chess.Pawn:
		return pawnAttacks(g, attacker, target)
	}
	panic("attacks: unknown piece type " + attacker.Type.String())
}

// IsAttacked reports whether sq is attacked by any piece of c's opponent.
func IsAttacked(g *Game, sq chess.Square, c chess.Colour) bool {
	for _, p := range g.board.Pieces(c.Opposite()) {
		if Attacks(g, p, sq) {
			return true
		}
	}
	return false
}

// IsInCheck returns true if the given colour's king is attacked.
func IsInCheck(g *Game, c chess.Colour) bool {
	return IsAttacked(g, g.board.King(c).Square, c)
}

// Attackers returns the opponent pieces attacking c's square sq.
func Attackers(g *Game, sq chess.Square, c chess.Colour) []*chess.Piece {
	var out []*chess.Piece
	for _, p := range g.board.Pieces(c.Opposite()) {
		if Attacks(g, p, sq) {
			out = append(out, p)
		}
	}
	return out
}

// pawnAttacks covers the two forward diagonals and, when the pawn stands on
// its fifth rank, an adjacent enemy pawn that has just double stepped.
func pawnAttacks(g *Game, pawn *chess.Piece, target chess.Square) bool {
	fwd := chess.Forward(pawn.Colour)
	for _, dx := range []int{-1, 1} {
		if sq, ok := pawn.Square.Add(chess.Dir{DX: dx, DY: fwd.DY}); ok && sq == target {
			return true
		}
	}
	if target.Row() == pawn.Square.Row() && abs(target.Col()-pawn.Square.Col()) == 1 {
		_, ok := enPassantVictim(g, pawn, target)
		return ok
	}
	return false
}
