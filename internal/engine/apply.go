package engine

import (
	"fmt"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/hashing"
)

// Apply plays m, which must have been generated as legal for the current
// position. Inconsistent moves panic before the board is changed.
func (g *Game) Apply(m chess.Move) {
	b := g.board
	ply := b.Ply()

	p := g.checkApplicable(m)
	if m.IsCapture() {
		victim, _ := b.PieceAt(m.Captured.Square)
		m.Captured.ID = victim.ID
		b.RemovePiece(m.Captured.Square)
	}

	b.MovePiece(m.From, m.To)
	if m.IsPromotion() {
		b.SetPieceType(m.To, m.Promotion)
	}
	p.MarkMoved(ply)

	if m.IsCastling() {
		rookFrom, rookTo := castlingRookSquares(m)
		rook, _ := b.PieceAt(rookFrom)
		b.MovePiece(rookFrom, rookTo)
		rook.MarkMoved(ply)
	}

	b.PushProgress(m.IsPawnMove || m.IsCapture())
	b.IncrementPly()
	b.RecordHash(m.Colour.Opposite(), hashing.ZobristHash(b))
	g.moves = append(g.moves, m)
}

// checkApplicable validates m against the board and returns the moving piece.
func (g *Game) checkApplicable(m chess.Move) *chess.Piece {
	b := g.board
	p, ok := b.PieceAt(m.From)
	if !ok {
		panic(fmt.Sprintf("apply %s: no piece on %s", m, m.From))
	}
	if p.Colour != m.Colour || p.Type != m.Piece {
		panic(fmt.Sprintf("apply %s: %s is on %s, not %s %s", m, p, m.From, m.Colour, m.Piece))
	}

	if m.IsCapture() {
		victim, ok := b.PieceAt(m.Captured.Square)
		if !ok || victim.Colour == m.Colour || victim.Type != m.Captured.Type {
			panic(fmt.Sprintf("apply %s: nothing to capture on %s", m, m.Captured.Square))
		}
		if victim.Type == chess.King {
			panic(fmt.Sprintf("apply %s: kings cannot be captured", m))
		}
		if m.Captured.Square != m.To && !m.IsEnPassant {
			panic(fmt.Sprintf("apply %s: capture square %s differs from destination", m, m.Captured.Square))
		}
	}
	if !b.IsEmpty(m.To) && !(m.IsCapture() && m.Captured.Square == m.To) {
		panic(fmt.Sprintf("apply %s: destination is occupied", m))
	}

	onLastRow := m.Piece == chess.Pawn && m.To.Row() == chess.PromotionRow(m.Colour)
	if onLastRow != m.IsPromotion() {
		panic(fmt.Sprintf("apply %s: promotion does not match destination", m))
	}
	if m.IsPromotion() && !m.Promotion.IsPromotionTarget() {
		panic(fmt.Sprintf("apply %s: cannot promote to %s", m, m.Promotion))
	}

	if m.IsCastling() {
		rookFrom, rookTo := castlingRookSquares(m)
		rook, ok := b.PieceAt(rookFrom)
		if !ok || rook.Type != chess.Rook || rook.Colour != m.Colour || p.HasMoved() || rook.HasMoved() {
			panic(fmt.Sprintf("apply %s: castling is not available", m))
		}
		if !b.IsEmpty(rookTo) {
			panic(fmt.Sprintf("apply %s: castling path is blocked", m))
		}
	}
	return p
}

// Undo takes back the most recent move and returns it.
func (g *Game) Undo() chess.Move {
	n := len(g.moves)
	if n == 0 {
		panic("undo: no move to take back")
	}
	m := g.moves[n-1]
	b := g.board

	b.RollBackHash(m.Colour.Opposite(), hashing.ZobristHash(b))
	b.DecrementPly()
	ply := b.Ply()
	b.PopProgress()

	p, ok := b.PieceAt(m.To)
	if !ok {
		panic(fmt.Sprintf("undo %s: %s is empty", m, m.To))
	}
	p.RollBack(ply)
	if m.IsPromotion() {
		b.SetPieceType(m.To, chess.Pawn)
	}
	b.MovePiece(m.To, m.From)

	if m.IsCapture() {
		b.RestorePiece(m.Captured.ID, m.Captured.Square, m.Captured.Type)
	}

	if m.IsCastling() {
		rookFrom, rookTo := castlingRookSquares(m)
		rook, ok := b.PieceAt(rookTo)
		if !ok {
			panic(fmt.Sprintf("undo %s: rook missing from %s", m, rookTo))
		}
		rook.RollBack(ply)
		b.MovePiece(rookTo, rookFrom)
	}

	g.moves = g.moves[:n-1]
	return m
}

// UndoMove takes back m, which must be the most recent move.
func (g *Game) UndoMove(m chess.Move) {
	last, ok := g.LastApplied()
	if !ok || !last.Matches(m) {
		panic(fmt.Sprintf("undo %s: not the most recent move", m))
	}
	g.Undo()
}

// LastApplied returns the top of the move stack, ignoring any FEN seed move.
func (g *Game) LastApplied() (chess.Move, bool) {
	if n := len(g.moves); n > 0 {
		return g.moves[n-1], true
	}
	return chess.Move{}, false
}
