package chess

import "strings"

// Capture describes the piece taken by a move. Type is NoPieceType when the
// move captures nothing.
type Capture struct {
	ID     PieceID
	Square Square
	Type   PieceType
}

// Move is a single half-move with everything needed to undo it.
type Move struct {
	Colour Colour
	Piece  PieceType
	From   Square
	To     Square

	// The captured piece. For en passant its square differs from To.
	Captured Capture

	IsPawnMove  bool
	IsEnPassant bool

	// The type a pawn becomes on the last row, NoPieceType otherwise.
	Promotion PieceType

	// Set after the move is applied, for rendering.
	Check CheckStatus
}

// IsCapture reports whether the move takes a piece.
func (m Move) IsCapture() bool {
	return m.Captured.Type != NoPieceType
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoPieceType
}

// IsCastling reports whether the move is a king move of two columns.
func (m Move) IsCastling() bool {
	if m.Piece != King {
		return false
	}
	d := m.To.Col() - m.From.Col()
	return d == 2 || d == -2
}

// IsCastlingKingside reports whether the move castles towards the h-file.
func (m Move) IsCastlingKingside() bool {
	return m.IsCastling() && m.To.Col() > m.From.Col()
}

// IsCastlingQueenside reports whether the move castles towards the a-file.
func (m Move) IsCastlingQueenside() bool {
	return m.IsCastling() && m.To.Col() < m.From.Col()
}

// IsDoubleStep reports whether the move is a pawn's initial two-square advance.
func (m Move) IsDoubleStep() bool {
	if m.Piece != Pawn {
		return false
	}
	d := m.To.Row() - m.From.Row()
	return d == 2 || d == -2
}

// Matches reports whether two moves denote the same action, ignoring the
// capture details and check annotation.
func (m Move) Matches(other Move) bool {
	return m.Colour == other.Colour &&
		m.Piece == other.Piece &&
		m.From == other.From &&
		m.To == other.To &&
		m.Promotion == other.Promotion
}

// WithPromotion returns a copy of a promotion move promoting to t instead.
func (m Move) WithPromotion(t PieceType) Move {
	m.Promotion = t
	return m
}

// String returns long algebraic notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += strings.ToLower(string(m.Promotion.Letter()))
	}
	return s
}

// Notation returns the move with its piece letter, e.g. "Ng1-f3", "Pe5xd6 e.p."
// or "Pe7-e8=Q+".
func (m Move) Notation() string {
	var sb strings.Builder
	sb.WriteByte(m.Piece.Letter())
	sb.WriteString(m.From.String())
	if m.IsCapture() {
		sb.WriteByte('x')
	} else {
		sb.WriteByte('-')
	}
	sb.WriteString(m.To.String())
	if m.IsPromotion() {
		sb.WriteByte('=')
		sb.WriteByte(m.Promotion.Letter())
	}
	switch m.Check {
	case Check:
		sb.WriteByte('+')
	case Checkmate:
		sb.WriteByte('#')
	}
	if m.IsEnPassant {
		sb.WriteString(" e.p.")
	}
	return sb.String()
}
