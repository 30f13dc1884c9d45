package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chesscore/internal/errors"
)

// Board dimensions.
const (
	BoardCols  = 8
	BoardRows  = 8
	NumSquares = BoardCols * BoardRows
)

// Square identifies a board square by its linear index, col + 8*row.
// Columns and rows are 0-based: a1 is (0,0), h8 is (7,7).
type Square int8

// NoSquare marks the absence of a square.
const NoSquare Square = -1

// NewSquare returns the square at the given column and row.
// The caller must ensure both are on the board.
func NewSquare(col, row int) Square {
	return Square(col + BoardCols*row)
}

// SquareAt returns the square at col,row and whether it is on the board.
func SquareAt(col, row int) (Square, bool) {
	if col < 0 || col >= BoardCols || row < 0 || row >= BoardRows {
		return NoSquare, false
	}
	return NewSquare(col, row), true
}

// MustSquare parses algebraic notation and panics on failure.
// Intended for fixtures and tables.
func MustSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// ParseSquare parses algebraic notation such as "e4".
func ParseSquare(s string) (Square, error) {
	s = strings.TrimSpace(s)
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%q: %w", s, errors.ErrInvalidSquare)
	}
	col := int(lower(s[0]) - 'a')
	row := int(s[1] - '1')
	sq, ok := SquareAt(col, row)
	if !ok {
		return NoSquare, fmt.Errorf("%q: %w", s, errors.ErrInvalidSquare)
	}
	return sq, nil
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

// Col returns the 0-based column (file).
func (s Square) Col() int { return int(s) % BoardCols }

// Row returns the 0-based row (rank).
func (s Square) Row() int { return int(s) / BoardCols }

// Index returns the linear index of the square.
func (s Square) Index() int { return int(s) }

// Valid reports whether the square is on the board.
func (s Square) Valid() bool { return s >= 0 && int(s) < NumSquares }

// String returns the algebraic notation of the square.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + s.Col()), byte('1' + s.Row())})
}

// Add steps one square in direction d, reporting false if that leaves the board.
func (s Square) Add(d Dir) (Square, bool) {
	return SquareAt(s.Col()+d.DX, s.Row()+d.DY)
}

// Offset steps n columns sideways on the same row.
func (s Square) Offset(n int) (Square, bool) {
	return SquareAt(s.Col()+n, s.Row())
}

// RelRow returns the row as seen from colour c's side of the board,
// so that every colour starts on relative row 0.
func (s Square) RelRow(c Colour) int {
	if c == White {
		return s.Row()
	}
	return BoardRows - 1 - s.Row()
}

// IsLight reports whether the square is a light square (h1 is light).
func (s Square) IsLight() bool {
	return (s.Col()+s.Row())%2 == 1
}

// Dir is a single step in column/row space.
type Dir struct {
	DX int
	DY int
}

// Direction sets shared by the attack and move rules.
var (
	OrthoDirs  = []Dir{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	DiagDirs   = []Dir{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	AllDirs    = []Dir{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	KnightDirs = []Dir{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
)

// Colour-relative rows.
const (
	HomeRelRow       = 0
	PawnStartRelRow  = 1
	DoubleStepRelRow = 3
	EnPassantRelRow  = 4
	PromotionRelRow  = BoardRows - 1
)

// Forward returns the direction colour c's pawns advance in.
func Forward(c Colour) Dir {
	if c == White {
		return Dir{0, 1}
	}
	return Dir{0, -1}
}

// Backward returns the opposite of Forward.
func Backward(c Colour) Dir {
	f := Forward(c)
	return Dir{0, -f.DY}
}

// AbsRow converts a colour-relative row back to an absolute row.
func AbsRow(c Colour, relRow int) int {
	if c == White {
		return relRow
	}
	return BoardRows - 1 - relRow
}

// HomeRow returns the absolute row of colour c's back rank.
func HomeRow(c Colour) int { return AbsRow(c, HomeRelRow) }

// PromotionRow returns the absolute row on which colour c's pawns promote.
func PromotionRow(c Colour) int { return AbsRow(c, PromotionRelRow) }

// Standard columns of the king and rooks.
const (
	KingCol          = 4
	KingsideRookCol  = 7
	QueensideRookCol = 0
)

// KingHome returns colour c's initial king square.
func KingHome(c Colour) Square { return NewSquare(KingCol, HomeRow(c)) }

// KingsideRookHome returns colour c's initial king-side rook square.
func KingsideRookHome(c Colour) Square { return NewSquare(KingsideRookCol, HomeRow(c)) }

// QueensideRookHome returns colour c's initial queen-side rook square.
func QueensideRookHome(c Colour) Square { return NewSquare(QueensideRookCol, HomeRow(c)) }

// PawnStartRow returns the absolute row colour c's pawns start on.
func PawnStartRow(c Colour) int { return AbsRow(c, PawnStartRelRow) }

// EnPassantRow returns the absolute row (the fifth rank for c) from which
// colour c's pawns may capture en passant.
func EnPassantRow(c Colour) int { return AbsRow(c, EnPassantRelRow) }
