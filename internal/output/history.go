package output

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chesscore/internal/chess"
)

// CompactMove renders a move as colour, piece and squares, e.g.
// "WP@e2->e4", "BN@f6->e4xP", "WP@e5->d6xPep", "WO-O" or "WP@b7->b8=Q+".
func CompactMove(m chess.Move) string {
	var sb strings.Builder
	sb.WriteByte(m.Colour.Letter())
	switch {
	case m.IsCastlingKingside():
		sb.WriteString("O-O")
	case m.IsCastlingQueenside():
		sb.WriteString("O-O-O")
	default:
		sb.WriteByte(m.Piece.Letter())
		sb.WriteByte('@')
		sb.WriteString(m.From.String())
		sb.WriteString("->")
		sb.WriteString(m.To.String())
		if m.IsCapture() {
			sb.WriteByte('x')
			sb.WriteByte(m.Captured.Type.Letter())
		}
		if m.IsEnPassant {
			sb.WriteString("ep")
		}
		if m.IsPromotion() {
			sb.WriteByte('=')
			sb.WriteByte(m.Promotion.Letter())
		}
	}
	sb.WriteString(checkSuffix(m.Check))
	return sb.String()
}

// PGNMove renders a move in the verbose input form, e.g. "Pe2e4",
// "Ng1xf3", "O-O-O", "Pe7e8=Q#" or "Pe5xd6 {e.p.}".
func PGNMove(m chess.Move) string {
	var sb strings.Builder
	switch {
	case m.IsCastlingKingside():
		sb.WriteString("O-O")
	case m.IsCastlingQueenside():
		sb.WriteString("O-O-O")
	default:
		sb.WriteByte(m.Piece.Letter())
		sb.WriteString(m.From.String())
		if m.IsCapture() {
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
		if m.IsPromotion() {
			sb.WriteByte('=')
			sb.WriteByte(m.Promotion.Letter())
		}
	}
	sb.WriteString(checkSuffix(m.Check))
	if m.IsEnPassant {
		sb.WriteString(" {e.p.}")
	}
	return sb.String()
}

func checkSuffix(c chess.CheckStatus) string {
	switch c {
	case chess.Check:
		return "+"
	case chess.Checkmate:
		return "#"
	}
	return ""
}

// HistoryCompact joins the compact form of every move.
func HistoryCompact(moves []chess.Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = CompactMove(m)
	}
	return strings.Join(parts, " ")
}

// movetext returns the numbered tokens of a move list whose first move was
// played on firstPly.
func movetext(moves []chess.Move, firstPly int) []string {
	tokens := make([]string, 0, len(moves)*3/2+1)
	for i, m := range moves {
		ply := firstPly + i
		moveNum := (ply + 1) / 2
		switch {
		case m.Colour == chess.White:
			tokens = append(tokens, fmt.Sprintf("%d.", moveNum))
		case i == 0:
			tokens = append(tokens, fmt.Sprintf("%d...", moveNum))
		}
		tokens = append(tokens, PGNMove(m))
	}
	return tokens
}

// HistoryPGN renders the numbered move list on one line, e.g.
// "1. Pe2e4 Pe7e5 2. Ng1f3".
func HistoryPGN(moves []chess.Move, firstPly int) string {
	return strings.Join(movetext(moves, firstPly), " ")
}

func sortedHashes(m map[uint64][]int) []uint64 {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}
