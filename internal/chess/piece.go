package chess

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// PieceID is a stable identity for a piece on one board. It survives moves,
// promotion, and capture followed by undo.
type PieceID int

// NoPiece is the zero PieceID, never assigned to a real piece.
const NoPiece PieceID = 0

// Piece is a single piece with its move history.
type Piece struct {
	ID     PieceID
	Colour Colour
	Type   PieceType
	Square Square

	// history has bit n set when the piece moved on ply n.
	history bitset.BitSet
}

// String returns e.g. "White Knight g1".
func (p *Piece) String() string {
	return fmt.Sprintf("%s %s %s", p.Colour, p.Type, p.Square)
}

// Code returns the two-character board code, e.g. "WK".
func (p *Piece) Code() string {
	return string([]byte{p.Colour.Letter(), p.Type.Letter()})
}

// MarkMoved records that the piece moved on ply.
func (p *Piece) MarkMoved(ply int) {
	if ply < 0 {
		panic(fmt.Sprintf("negative ply %d", ply))
	}
	p.history.Set(uint(ply))
}

// RollBack forgets every move at or after ply.
func (p *Piece) RollBack(ply int) {
	if ply < 0 {
		ply = 0
	}
	for i, ok := p.history.NextSet(uint(ply)); ok; i, ok = p.history.NextSet(i + 1) {
		p.history.Clear(i)
	}
}

// LastMovePly returns the ply of the most recent move, or 0 if it never moved.
func (p *Piece) LastMovePly() int {
	last := 0
	for i, ok := p.history.NextSet(0); ok; i, ok = p.history.NextSet(i + 1) {
		last = int(i)
	}
	return last
}

// HasMoved reports whether the piece has ever moved.
func (p *Piece) HasMoved() bool { return p.LastMovePly() > 0 }

// MovedOn reports whether the piece moved on exactly this ply.
func (p *Piece) MovedOn(ply int) bool {
	return ply >= 0 && p.history.Test(uint(ply))
}
