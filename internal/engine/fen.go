package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenFields holds the parsed fields of a FEN string.
type fenFields struct {
	placement string
	toMove    chess.Colour
	castling  string
	enPassant chess.Square
	halfmove  int
	fullmove  int
}

// Upper bounds on the FEN clocks. Each ply before the start position gets a
// synthesised history entry.
const (
	maxFENFullmove = 6000
	maxFENHalfmove = 2 * maxFENFullmove
)

// NewGameFromFEN creates a game from a FEN string.
//
// Histories are synthesised so that the rules see the same position: pieces
// that lost their castling rights count as moved on ply 1, an en passant
// target becomes a preceding double step, and the half-move clock becomes
// that many quiet plies.
func NewGameFromFEN(fen string) (*Game, error) {
	f, err := parseFENFields(fen)
	if err != nil {
		return nil, err
	}

	b := chess.NewBoard()
	if err := parsePiecePositions(b, f.placement); err != nil {
		return nil, err
	}

	lost, err := lostCastlingRights(b, f.castling)
	if err != nil {
		return nil, err
	}

	// Synthetic history needs at least one ply before the start.
	needsHistory := len(lost) > 0 || f.enPassant != chess.NoSquare
	startPly := 2*f.fullmove - 1
	if f.toMove == chess.Black {
		startPly++
	}
	for startPly-1 < f.halfmove || (needsHistory && startPly < 2) {
		startPly += 2
	}
	b.SetPly(startPly)

	for _, p := range lost {
		p.MarkMoved(1)
	}

	var seed *chess.Move
	if f.enPassant != chess.NoSquare {
		seed, err = enPassantSeed(b, f.enPassant, f.toMove.Opposite(), startPly-1)
		if err != nil {
			return nil, err
		}
	}

	for ply := 1; ply < startPly; ply++ {
		b.PushProgress(ply < startPly-f.halfmove)
	}

	g := NewGame(b)
	g.seed = seed
	if IsInCheck(g, f.toMove.Opposite()) {
		return nil, fmt.Errorf("%s king in check with %s to move: %w", f.toMove.Opposite(), f.toMove, errors.ErrInvalidFEN)
	}
	return g, nil
}

// MustGameFromFEN is NewGameFromFEN for fixtures; it panics on error.
func MustGameFromFEN(fen string) *Game {
	g, err := NewGameFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return g
}

func parseFENFields(fen string) (fenFields, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return fenFields{}, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}
	f := fenFields{
		placement: parts[0],
		toMove:    chess.White,
		castling:  "-",
		enPassant: chess.NoSquare,
		fullmove:  1,
	}

	if len(parts) >= 2 {
		switch parts[1] {
		case "w":
		case "b":
			f.toMove = chess.Black
		default:
			return f, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
		}
	}
	if len(parts) >= 3 {
		f.castling = parts[2]
	}
	if len(parts) >= 4 && parts[3] != "-" {
		sq, err := chess.ParseSquare(parts[3])
		if err != nil {
			return f, fmt.Errorf("invalid en passant square %s: %w", parts[3], errors.ErrInvalidFEN)
		}
		f.enPassant = sq
	}
	if len(parts) >= 5 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 || n > maxFENHalfmove {
			return f, fmt.Errorf("invalid halfmove clock %s: %w", parts[4], errors.ErrInvalidFEN)
		}
		f.halfmove = n
	}
	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 || n > maxFENFullmove {
			return f, fmt.Errorf("invalid fullmove number %s: %w", parts[5], errors.ErrInvalidFEN)
		}
		f.fullmove = n
	}
	return f, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(b *chess.Board, positions string) error {
	rows := strings.Split(positions, "/")
	if len(rows) != chess.BoardRows {
		return fmt.Errorf("expected %d rows, got %d: %w", chess.BoardRows, len(rows), errors.ErrInvalidFEN)
	}

	for i, text := range rows {
		row := chess.BoardRows - 1 - i
		col := 0
		for _, c := range text {
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}
			t := chess.PieceTypeFromLetter(byte(c))
			if t == chess.NoPieceType {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			sq, ok := chess.SquareAt(col, row)
			if !ok {
				return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}
			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			if t == chess.Pawn && (row == 0 || row == chess.BoardRows-1) {
				return fmt.Errorf("pawn on %s: %w", sq, errors.ErrInvalidFEN)
			}
			if t == chess.King && b.HasKing(colour) {
				return fmt.Errorf("more than one %s king: %w", colour, errors.ErrInvalidFEN)
			}
			b.AddPiece(colour, t, sq, 0)
			col++
		}
		if col != chess.BoardCols {
			return fmt.Errorf("row %d has %d columns: %w", row+1, col, errors.ErrInvalidFEN)
		}
	}

	for _, c := range chess.Colours {
		if !b.HasKing(c) {
			return fmt.Errorf("missing %s king: %w", c, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// lostCastlingRights returns the kings and rooks on their initial squares
// that rights says can no longer castle.
func lostCastlingRights(b *chess.Board, rights string) ([]*chess.Piece, error) {
	if rights == "" {
		rights = "-"
	}
	has := map[rune]bool{}
	if rights != "-" {
		for _, r := range rights {
			if !strings.ContainsRune("KQkq", r) {
				return nil, fmt.Errorf("invalid castling rights %q: %w", rights, errors.ErrInvalidFEN)
			}
			has[r] = true
		}
	}

	var lost []*chess.Piece
	for _, c := range chess.Colours {
		kingside, queenside := 'K', 'Q'
		if c == chess.Black {
			kingside, queenside = 'k', 'q'
		}
		king := b.King(c)
		if !has[kingside] && !has[queenside] {
			if king.Square == chess.KingHome(c) {
				lost = append(lost, king)
			}
			continue
		}
		for r, sq := range map[rune]chess.Square{
			kingside:  chess.KingsideRookHome(c),
			queenside: chess.QueensideRookHome(c),
		} {
			if has[r] {
				continue
			}
			if rook, ok := b.PieceAt(sq); ok && rook.Type == chess.Rook && rook.Colour == c {
				lost = append(lost, rook)
			}
		}
	}
	return lost, nil
}

// enPassantSeed rebuilds the double step by mover that produced target.
func enPassantSeed(b *chess.Board, target chess.Square, mover chess.Colour, ply int) (*chess.Move, error) {
	if target.RelRow(mover) != chess.PawnStartRelRow+1 {
		return nil, fmt.Errorf("en passant square %s: %w", target, errors.ErrInvalidFEN)
	}
	to, _ := target.Add(chess.Forward(mover))
	from, _ := target.Add(chess.Backward(mover))
	pawn, ok := b.PieceAt(to)
	if !ok || pawn.Type != chess.Pawn || pawn.Colour != mover || !b.IsEmpty(target) || !b.IsEmpty(from) {
		return nil, fmt.Errorf("no double step through %s: %w", target, errors.ErrInvalidFEN)
	}
	pawn.MarkMoved(ply)
	return &chess.Move{
		Colour:     mover,
		Piece:      chess.Pawn,
		From:       from,
		To:         to,
		IsPawnMove: true,
	}, nil
}

// FEN returns the FEN string of the game's current position.
func FEN(g *Game) string {
	b := g.board
	var sb strings.Builder

	writePiecePositions(&sb, b)
	if b.ToMove() == chess.White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}
	writeCastlingRights(&sb, b)
	sb.WriteByte(' ')
	writeEnPassant(&sb, g)
	fmt.Fprintf(&sb, " %d %d", b.MovesSincePawnMoveOrCapture(), (b.Ply()+1)/2)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, b *chess.Board) {
	for row := chess.BoardRows - 1; row >= 0; row-- {
		emptyCount := 0
		for col := 0; col < chess.BoardCols; col++ {
			p, ok := b.PieceAt(chess.NewSquare(col, row))
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			letter := p.Type.Letter()
			if p.Colour == chess.Black {
				letter = byte(unicode.ToLower(rune(letter)))
			}
			sb.WriteByte(letter)
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, b *chess.Board) {
	n := sb.Len()
	for _, c := range chess.Colours {
		king, ok := b.PieceAt(chess.KingHome(c))
		if !ok || king.Type != chess.King || king.Colour != c || king.HasMoved() {
			continue
		}
		for _, side := range []struct {
			sq     chess.Square
			letter byte
		}{{chess.KingsideRookHome(c), 'K'}, {chess.QueensideRookHome(c), 'Q'}} {
			rook, ok := b.PieceAt(side.sq)
			if !ok || rook.Type != chess.Rook || rook.Colour != c || rook.HasMoved() {
				continue
			}
			letter := side.letter
			if c == chess.Black {
				letter = byte(unicode.ToLower(rune(letter)))
			}
			sb.WriteByte(letter)
		}
	}
	if sb.Len() == n {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the square behind a pawn that has just double stepped.
func writeEnPassant(sb *strings.Builder, g *Game) {
	last, ok := g.LastMove()
	if !ok || !last.IsDoubleStep() {
		sb.WriteByte('-')
		return
	}
	behind, _ := last.To.Add(chess.Backward(last.Colour))
	sb.WriteString(behind.String())
}
