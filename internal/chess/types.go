// Package chess provides the core chess value types: squares, pieces, boards and moves.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// NumColours is the number of colours; Colour values index [NumColours] arrays.
const NumColours = 2

// Colours lists both colours with White first, matching the order of play.
var Colours = [NumColours]Colour{White, Black}

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Letter returns 'W' or 'B', as used in the board grid.
func (c Colour) Letter() byte {
	if c == White {
		return 'W'
	}
	return 'B'
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PieceType represents a chess piece type.
// The declaration order is also the order of descending material value.
type PieceType int

const (
	NoPieceType PieceType = iota
	King
	Queen
	Rook
	Bishop
	Knight
	Pawn
	NumPieceTypes
)

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"None", "King", "Queen", "Rook", "Bishop", "Knight", "Pawn"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{' ', 'K', 'Q', 'R', 'B', 'N', 'P'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// Value returns the material value used for material sums.
// The King counts as zero since it can never be captured.
func (p PieceType) Value() float64 {
	switch p {
	case Queen:
		return 9.0
	case Rook:
		return 5.0
	case Bishop:
		return 3.5
	case Knight:
		return 3.0
	case Pawn:
		return 1.0
	default:
		return 0
	}
}

// IsPromotionTarget reports whether a pawn may promote to p.
func (p PieceType) IsPromotionTarget() bool {
	switch p {
	case Queen, Rook, Bishop, Knight:
		return true
	default:
		return false
	}
}

// PieceTypeFromLetter converts a piece letter (either case) to a piece type.
func PieceTypeFromLetter(c byte) PieceType {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'B', 'b':
		return Bishop
	case 'N', 'n':
		return Knight
	case 'P', 'p':
		return Pawn
	default:
		return NoPieceType
	}
}

// CheckStatus indicates whether a move gives check or checkmate.
type CheckStatus int

const (
	NoCheck CheckStatus = iota
	Check
	Checkmate
)
