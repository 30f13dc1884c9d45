package testutil

import (
	"testing"

	"github.com/lgbarn/chesscore/internal/chess"
)

// PieceSpec describes one piece of a fixture position.
type PieceSpec struct {
	Colour      chess.Colour
	Type        chess.PieceType
	Square      string
	LastMovePly int
}

// W is a White piece that has not moved.
func W(t chess.PieceType, sq string) PieceSpec {
	return PieceSpec{Colour: chess.White, Type: t, Square: sq}
}

// B is a Black piece that has not moved.
func B(t chess.PieceType, sq string) PieceSpec {
	return PieceSpec{Colour: chess.Black, Type: t, Square: sq}
}

// Moved returns the spec with its last move recorded on ply.
func (s PieceSpec) Moved(ply int) PieceSpec {
	s.LastMovePly = ply
	return s
}

// NewBoard builds a board at the given ply holding exactly the given pieces.
func NewBoard(t testing.TB, ply int, pieces ...PieceSpec) *chess.Board {
	t.Helper()
	b := chess.NewBoard()
	b.SetPly(ply)
	for _, p := range pieces {
		sq, err := chess.ParseSquare(p.Square)
		if err != nil {
			t.Fatalf("fixture piece %v: %v", p, err)
		}
		b.AddPiece(p.Colour, p.Type, sq, p.LastMovePly)
	}
	return b
}

// Sq parses a square or fails the test.
func Sq(t testing.TB, s string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(s)
	if err != nil {
		t.Fatalf("square %q: %v", s, err)
	}
	return sq
}
