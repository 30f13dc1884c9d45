package chess

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Board holds the pieces of one game together with the ply counter and the
// histories the draw rules need.
type Board struct {
	// Pieces by ID. Index 0 is unused so that NoPiece never names a piece.
	// Captured pieces stay here with Square == NoSquare until restored.
	arena []Piece

	// Which piece stands on each square.
	squares [NumSquares]PieceID

	// Pieces currently on the board, per colour.
	members [NumColours]map[PieceID]struct{}

	kings [NumColours]PieceID

	// The number of the next half-move to be played, starting at 1.
	ply int

	// Position hash -> plies on which it occurred, per side to move.
	hashes [NumColours]map[uint64][]int

	// One entry per played ply: true when that ply moved a pawn or captured.
	progress []bool
}

// NewBoard creates an empty board at ply 1.
func NewBoard() *Board {
	b := &Board{
		arena: make([]Piece, 1, 33),
		ply:   1,
	}
	for c := range b.members {
		b.members[c] = make(map[PieceID]struct{})
		b.hashes[c] = make(map[uint64][]int)
	}
	return b
}

// BackRank is the standard arrangement of the pieces on the home row.
var BackRank = [BoardCols]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	for _, c := range Colours {
		for col, t := range BackRank {
			b.AddPiece(c, t, NewSquare(col, HomeRow(c)), 0)
		}
		for col := 0; col < BoardCols; col++ {
			b.AddPiece(c, Pawn, NewSquare(col, PawnStartRow(c)), 0)
		}
	}
	return b
}

// AddPiece places a new piece and returns its ID.
// lastMovePly > 0 records that the piece already moved on that ply.
func (b *Board) AddPiece(c Colour, t PieceType, sq Square, lastMovePly int) PieceID {
	if !sq.Valid() {
		panic(fmt.Sprintf("add %s %s: invalid square %d", c, t, sq))
	}
	if t == NoPieceType || t >= NumPieceTypes {
		panic(fmt.Sprintf("add piece at %s: invalid type %d", sq, t))
	}
	if b.squares[sq] != NoPiece {
		panic(fmt.Sprintf("add %s %s: %s is occupied", c, t, sq))
	}
	if t == King && b.kings[c] != NoPiece {
		panic(fmt.Sprintf("add %s King at %s: king already present", c, sq))
	}
	if lastMovePly > b.ply {
		panic(fmt.Sprintf("add %s %s: last move ply %d is after current ply %d", c, t, lastMovePly, b.ply))
	}

	id := PieceID(len(b.arena))
	p := Piece{ID: id, Colour: c, Type: t, Square: sq}
	if lastMovePly > 0 {
		p.MarkMoved(lastMovePly)
	}
	b.arena = append(b.arena, p)
	b.squares[sq] = id
	b.members[c][id] = struct{}{}
	if t == King {
		b.kings[c] = id
	}
	return id
}

// RemovePiece takes the piece off sq and returns its ID. The piece keeps its
// identity and history so RestorePiece can bring it back.
func (b *Board) RemovePiece(sq Square) PieceID {
	id := b.squares[sq]
	if id == NoPiece {
		panic(fmt.Sprintf("remove: %s is empty", sq))
	}
	p := &b.arena[id]
	if p.Type == King {
		panic(fmt.Sprintf("remove: cannot remove the %s King", p.Colour))
	}
	b.squares[sq] = NoPiece
	delete(b.members[p.Colour], id)
	p.Square = NoSquare
	return id
}

// RestorePiece puts a removed piece back on sq as type t.
func (b *Board) RestorePiece(id PieceID, sq Square, t PieceType) {
	if id <= NoPiece || int(id) >= len(b.arena) {
		panic(fmt.Sprintf("restore: unknown piece %d", id))
	}
	p := &b.arena[id]
	if p.Square != NoSquare {
		panic(fmt.Sprintf("restore: piece %d is still on %s", id, p.Square))
	}
	if b.squares[sq] != NoPiece {
		panic(fmt.Sprintf("restore: %s is occupied", sq))
	}
	p.Square = sq
	p.Type = t
	b.squares[sq] = id
	b.members[p.Colour][id] = struct{}{}
}

// MovePiece relocates the piece on from to the empty square to.
func (b *Board) MovePiece(from, to Square) {
	id := b.squares[from]
	if id == NoPiece {
		panic(fmt.Sprintf("move %s%s: source is empty", from, to))
	}
	if b.squares[to] != NoPiece {
		panic(fmt.Sprintf("move %s%s: destination is occupied", from, to))
	}
	b.squares[from] = NoPiece
	b.squares[to] = id
	b.arena[id].Square = to
}

// SetPieceType changes the type of the piece on sq (promotion and its undo).
func (b *Board) SetPieceType(sq Square, t PieceType) {
	id := b.squares[sq]
	if id == NoPiece {
		panic(fmt.Sprintf("set type: %s is empty", sq))
	}
	if t == King || b.arena[id].Type == King {
		panic(fmt.Sprintf("set type on %s: kings cannot change type", sq))
	}
	b.arena[id].Type = t
}

// PieceAt returns the piece on sq, if any.
func (b *Board) PieceAt(sq Square) (*Piece, bool) {
	if !sq.Valid() {
		return nil, false
	}
	id := b.squares[sq]
	if id == NoPiece {
		return nil, false
	}
	return &b.arena[id], true
}

// Piece returns the piece with the given ID, on the board or captured.
func (b *Board) Piece(id PieceID) *Piece {
	if id <= NoPiece || int(id) >= len(b.arena) {
		panic(fmt.Sprintf("unknown piece %d", id))
	}
	return &b.arena[id]
}

// IsEmpty reports whether sq has no piece on it.
func (b *Board) IsEmpty(sq Square) bool {
	return b.squares[sq] == NoPiece
}

// King returns colour c's king.
func (b *Board) King(c Colour) *Piece {
	id := b.kings[c]
	if id == NoPiece {
		panic(fmt.Sprintf("no %s King on the board", c))
	}
	return &b.arena[id]
}

// HasKing reports whether colour c has a king on the board.
func (b *Board) HasKing(c Colour) bool {
	return b.kings[c] != NoPiece
}

// Pieces returns colour c's pieces in ascending ID order.
func (b *Board) Pieces(c Colour) []*Piece {
	ids := maps.Keys(b.members[c])
	slices.Sort(ids)
	out := make([]*Piece, len(ids))
	for i, id := range ids {
		out[i] = &b.arena[id]
	}
	return out
}

// Ply returns the number of the half-move about to be played.
func (b *Board) Ply() int { return b.ply }

// IncrementPly advances to the next half-move.
func (b *Board) IncrementPly() { b.ply++ }

// DecrementPly steps back one half-move.
func (b *Board) DecrementPly() {
	if b.ply <= 1 {
		panic("decrement ply below 1")
	}
	b.ply--
}

// SetPly sets the ply counter of a freshly built board.
// Only valid before any hash or progress history is recorded.
func (b *Board) SetPly(ply int) {
	if ply < 1 {
		panic(fmt.Sprintf("invalid ply %d", ply))
	}
	if len(b.progress) > 0 {
		panic("set ply after progress was recorded")
	}
	b.ply = ply
}

// ToMove returns the colour whose turn it is. White plays the odd plies.
func (b *Board) ToMove() Colour {
	if b.ply%2 == 1 {
		return White
	}
	return Black
}

// MaterialValue returns the summed piece values of colour c.
func (b *Board) MaterialValue(c Colour) float64 {
	total := 0.0
	for id := range b.members[c] {
		total += b.arena[id].Type.Value()
	}
	return total
}

// MaterialBalance returns Black's material minus White's.
func (b *Board) MaterialBalance() float64 {
	return b.MaterialValue(Black) - b.MaterialValue(White)
}

// PieceTypes returns the types of colour c's pieces, most valuable first.
// The King always leads.
func (b *Board) PieceTypes(c Colour) []PieceType {
	types := make([]PieceType, 0, len(b.members[c]))
	for id := range b.members[c] {
		types = append(types, b.arena[id].Type)
	}
	slices.Sort(types)
	return types
}

// Material combinations that cannot force mate, as (stronger, weaker) pairs.
var insufficientMaterial = [][2][]PieceType{
	{{King}, {King}},
	{{King, Bishop}, {King}},
	{{King, Knight}, {King}},
	{{King, Knight, Knight}, {King}},
	{{King, Rook}, {King, Bishop}},
	{{King, Rook}, {King, Knight}},
	{{King, Rook, Bishop}, {King, Rook}},
	{{King, Rook, Knight}, {King, Rook}},
}

// HasInsufficientMaterial reports whether neither side can force checkmate.
func (b *Board) HasInsufficientMaterial() bool {
	white := b.PieceTypes(White)
	black := b.PieceTypes(Black)
	for _, combo := range insufficientMaterial {
		if (slices.Equal(white, combo[0]) && slices.Equal(black, combo[1])) ||
			(slices.Equal(black, combo[0]) && slices.Equal(white, combo[1])) {
			return true
		}
	}

	// Lone bishops on squares of the same colour.
	bishopOnly := []PieceType{King, Bishop}
	if slices.Equal(white, bishopOnly) && slices.Equal(black, bishopOnly) {
		return b.bishopSquare(White).IsLight() == b.bishopSquare(Black).IsLight()
	}
	return false
}

func (b *Board) bishopSquare(c Colour) Square {
	for id := range b.members[c] {
		if b.arena[id].Type == Bishop {
			return b.arena[id].Square
		}
	}
	return NoSquare
}

// RecordHash records that the position with hash h arose at the current ply
// with colour c to move.
func (b *Board) RecordHash(c Colour, h uint64) {
	b.hashes[c][h] = append(b.hashes[c][h], b.ply)
}

// RollBackHash removes the record made by RecordHash at the current ply.
func (b *Board) RollBackHash(c Colour, h uint64) {
	plies := b.hashes[c][h]
	if len(plies) == 0 || plies[len(plies)-1] != b.ply {
		panic(fmt.Sprintf("roll back hash %016x for %s: no record at ply %d", h, c, b.ply))
	}
	if len(plies) == 1 {
		delete(b.hashes[c], h)
		return
	}
	b.hashes[c][h] = plies[:len(plies)-1]
}

// RepetitionCount returns how often the position with hash h occurred with c to move.
func (b *Board) RepetitionCount(c Colour, h uint64) int {
	return len(b.hashes[c][h])
}

// MaxRepetitionCount returns the highest occurrence count of any position
// with colour c to move.
func (b *Board) MaxRepetitionCount(c Colour) int {
	best := 0
	for _, plies := range b.hashes[c] {
		if len(plies) > best {
			best = len(plies)
		}
	}
	return best
}

// Repetitions returns the plies of every position that occurred more than
// once with colour c to move.
func (b *Board) Repetitions(c Colour) map[uint64][]int {
	out := make(map[uint64][]int)
	for h, plies := range b.hashes[c] {
		if len(plies) > 1 {
			out[h] = slices.Clone(plies)
		}
	}
	return out
}

// PushProgress records whether the ply just played moved a pawn or captured.
func (b *Board) PushProgress(progress bool) {
	b.progress = append(b.progress, progress)
}

// PopProgress removes the most recent progress record.
func (b *Board) PopProgress() {
	if len(b.progress) == 0 {
		panic("pop progress: history is empty")
	}
	b.progress = b.progress[:len(b.progress)-1]
}

// MovesSincePawnMoveOrCapture returns the number of plies since the last pawn
// move or capture, or all recorded plies if there was none.
func (b *Board) MovesSincePawnMoveOrCapture() int {
	for i := len(b.progress) - 1; i >= 0; i-- {
		if b.progress[i] {
			return len(b.progress) - 1 - i
		}
	}
	return len(b.progress)
}

// Equal reports whether both boards have the same pieces on the same squares.
// Identities, histories and ply are not compared.
func (b *Board) Equal(other *Board) bool {
	for sq := Square(0); sq < NumSquares; sq++ {
		p, ok := b.PieceAt(sq)
		q, ok2 := other.PieceAt(sq)
		if ok != ok2 {
			return false
		}
		if ok && (p.Colour != q.Colour || p.Type != q.Type) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	nb := &Board{
		arena:    make([]Piece, len(b.arena)),
		squares:  b.squares,
		kings:    b.kings,
		ply:      b.ply,
		progress: slices.Clone(b.progress),
	}
	for i, p := range b.arena {
		p.history = *p.history.Clone()
		nb.arena[i] = p
	}
	for c := range b.members {
		nb.members[c] = maps.Clone(b.members[c])
		nb.hashes[c] = make(map[uint64][]int, len(b.hashes[c]))
		for h, plies := range b.hashes[c] {
			nb.hashes[c][h] = slices.Clone(plies)
		}
	}
	return nb
}

// String renders the board as a grid with White at the bottom.
func (b *Board) String() string {
	var sb strings.Builder
	border := "  +" + strings.Repeat("----+", BoardCols) + "\n"
	sb.WriteString(border)
	for row := BoardRows - 1; row >= 0; row-- {
		fmt.Fprintf(&sb, "%d |", row+1)
		for col := 0; col < BoardCols; col++ {
			cell := "  "
			if p, ok := b.PieceAt(NewSquare(col, row)); ok {
				cell = p.Code()
			}
			fmt.Fprintf(&sb, " %s |", cell)
		}
		sb.WriteString("\n")
		sb.WriteString(border)
	}
	sb.WriteString("  ")
	for col := 0; col < BoardCols; col++ {
		fmt.Fprintf(&sb, "  %c  ", 'a'+col)
	}
	sb.WriteString("\n")
	return sb.String()
}
