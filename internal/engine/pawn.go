package engine

import "github.com/lgbarn/chesscore/internal/chess"

// pawnMoves generates pushes, double steps, captures, en passant and
// promotions. Promotions default to a Queen.
func pawnMoves(g *Game, p *chess.Piece) []chess.Move {
	b := g.board
	c := p.Colour
	fwd := chess.Forward(c)
	var moves []chess.Move

	add := func(m chess.Move) {
		if m.To.Row() == chess.PromotionRow(c) {
			m.Promotion = chess.Queen
		}
		moves = append(moves, m)
	}

	// Pushes.
	if one, ok := p.Square.Add(fwd); ok && b.IsEmpty(one) {
		add(newMove(p, one, nil))
		if p.Square.RelRow(c) == chess.PawnStartRelRow {
			if two, ok := one.Add(fwd); ok && b.IsEmpty(two) {
				add(newMove(p, two, nil))
			}
		}
	}

	for _, dx := range []int{-1, 1} {
		// Diagonal captures.
		if to, ok := p.Square.Add(chess.Dir{DX: dx, DY: fwd.DY}); ok {
			if target, occupied := b.PieceAt(to); occupied && target.Colour != c {
				add(newMove(p, to, target))
			}
		}

		// En passant.
		side, ok := p.Square.Offset(dx)
		if !ok {
			continue
		}
		victim, ok := enPassantVictim(g, p, side)
		if !ok {
			continue
		}
		to, ok := side.Add(fwd)
		if !ok || !b.IsEmpty(to) {
			continue
		}
		m := newMove(p, to, victim)
		m.IsEnPassant = true
		moves = append(moves, m)
	}
	return moves
}

// enPassantVictim returns the enemy pawn on side that pawn may capture en
// passant: pawn stands on its fifth rank and the enemy pawn reached side by a
// double step on the immediately preceding ply.
func enPassantVictim(g *Game, pawn *chess.Piece, side chess.Square) (*chess.Piece, bool) {
	b := g.board
	if pawn.Type != chess.Pawn || pawn.Square.RelRow(pawn.Colour) != chess.EnPassantRelRow {
		return nil, false
	}
	victim, ok := b.PieceAt(side)
	if !ok || victim.Type != chess.Pawn || victim.Colour == pawn.Colour {
		return nil, false
	}
	if victim.LastMovePly() != b.Ply()-1 {
		return nil, false
	}
	last, ok := g.LastMove()
	if !ok || !last.IsDoubleStep() || last.To != side {
		return nil, false
	}
	return victim, true
}
