package engine

import (
	"fmt"

	"github.com/lgbarn/chesscore/internal/chess"
)

// PieceMoves returns the candidate moves of c's piece on from, before the
// self-check filter. It returns nil if from holds no piece of colour c.
func PieceMoves(g *Game, c chess.Colour, from chess.Square) []chess.Move {
	p, ok := g.board.PieceAt(from)
	if !ok || p.Colour != c {
		return nil
	}

	switch p.Type {
	case chess.King:
		return append(stepMoves(g.board, p, chess.AllDirs), castlingMoves(g, p)...)
	case chess.Knight:
		return stepMoves(g.board, p, chess.KnightDirs)
	case chess.Rook:
		return slideMoves(g.board, p, chess.OrthoDirs)
	case chess.Bishop:
		return slideMoves(g.board, p, chess.DiagDirs)
	case chess.Queen:
		return slideMoves(g.board, p, chess.AllDirs)
	case chess.Pawn:
		return pawnMoves(g, p)
	}
	panic(fmt.Sprintf("moves: unknown piece type %d on %s", p.Type, from))
}

// newMove builds a move of p to to, capturing victim when it is not nil.
func newMove(p *chess.Piece, to chess.Square, victim *chess.Piece) chess.Move {
	m := chess.Move{
		Colour:     p.Colour,
		Piece:      p.Type,
		From:       p.Square,
		To:         to,
		IsPawnMove: p.Type == chess.Pawn,
	}
	if victim != nil {
		m.Captured = chess.Capture{ID: victim.ID, Square: victim.Square, Type: victim.Type}
	}
	return m
}

// stepMoves generates single-step moves for the king and knight.
func stepMoves(b *chess.Board, p *chess.Piece, dirs []chess.Dir) []chess.Move {
	var moves []chess.Move
	for _, d := range dirs {
		to, ok := p.Square.Add(d)
		if !ok {
			continue
		}
		target, occupied := b.PieceAt(to)
		switch {
		case !occupied:
			moves = append(moves, newMove(p, to, nil))
		case target.Colour != p.Colour:
			moves = append(moves, newMove(p, to, target))
		}
	}
	return moves
}

// slideMoves generates moves for the queen, rook and bishop.
func slideMoves(b *chess.Board, p *chess.Piece, dirs []chess.Dir) []chess.Move {
	var moves []chess.Move
	slideTargets(b, p.Colour, p.Square, dirs, func(to chess.Square, victim *chess.Piece) {
		moves = append(moves, newMove(p, to, victim))
	})
	return moves
}
