package engine

import (
	"fmt"

	"github.com/lgbarn/chesscore/internal/chess"
)

// castlingMoves returns the castling moves available to king.
//
// The king and the rook must both be unmoved on their initial squares, the
// squares between them empty, and the king's square, the square it passes
// and its destination not attacked.
func castlingMoves(g *Game, king *chess.Piece) []chess.Move {
	b := g.board
	c := king.Colour
	if king.HasMoved() || king.Square != chess.KingHome(c) {
		return nil
	}

	var moves []chess.Move
	for _, rookSq := range []chess.Square{chess.KingsideRookHome(c), chess.QueensideRookHome(c)} {
		rook, ok := b.PieceAt(rookSq)
		if !ok || rook.Type != chess.Rook || rook.Colour != c || rook.HasMoved() {
			continue
		}
		dir := chess.Dir{DX: sign(rookSq.Col() - king.Square.Col())}
		if !isPathClear(b, king.Square, rookSq, dir) {
			continue
		}
		if castlingPathAttacked(g, king.Square, dir, c) {
			continue
		}
		to, _ := king.Square.Offset(2 * dir.DX)
		moves = append(moves, newMove(king, to, nil))
	}
	return moves
}

func castlingPathAttacked(g *Game, from chess.Square, dir chess.Dir, c chess.Colour) bool {
	for i := 0; i <= 2; i++ {
		sq, _ := from.Offset(i * dir.DX)
		if IsAttacked(g, sq, c) {
			return true
		}
	}
	return false
}

// castlingRookSquares returns where the rook stands before and after castling move m.
func castlingRookSquares(m chess.Move) (from, to chess.Square) {
	row := m.From.Row()
	switch {
	case m.IsCastlingKingside():
		return chess.NewSquare(chess.KingsideRookCol, row), chess.NewSquare(chess.KingCol+1, row)
	case m.IsCastlingQueenside():
		return chess.NewSquare(chess.QueensideRookCol, row), chess.NewSquare(chess.KingCol-1, row)
	}
	panic(fmt.Sprintf("%s is not a castling move", m))
}
