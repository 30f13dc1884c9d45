// Package output renders boards, move histories and finished games.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/engine"
)

var hRule = "+" + strings.Repeat("--+", chess.BoardCols) + "\n"

// Board writes the grid with row 8 at the top, e.g. "|WR|WN|  |".
func Board(w io.Writer, b *chess.Board) {
	var sb strings.Builder
	sb.WriteString(hRule)
	for row := chess.BoardRows - 1; row >= 0; row-- {
		sb.WriteByte('|')
		for col := 0; col < chess.BoardCols; col++ {
			if p, ok := b.PieceAt(chess.NewSquare(col, row)); ok {
				sb.WriteString(p.Code())
			} else {
				sb.WriteString("  ")
			}
			sb.WriteByte('|')
		}
		sb.WriteByte('\n')
		sb.WriteString(hRule)
	}
	io.WriteString(w, sb.String()) //nolint:errcheck // console output
}

// Pieces lists the pieces of each colour.
func Pieces(w io.Writer, b *chess.Board) {
	for _, c := range chess.Colours {
		pieces := b.Pieces(c)
		fmt.Fprintf(w, "Pieces with color %s (%d):\n", c, len(pieces))
		for _, p := range pieces {
			fmt.Fprintf(w, "\t%s\n", p)
		}
	}
}

// Repetitions lists every position that occurred more than once, per
// colour to move, with the plies it occurred on.
func Repetitions(w io.Writer, b *chess.Board) {
	for _, c := range []chess.Colour{chess.Black, chess.White} {
		fmt.Fprintf(w, "Color: %s:\n", c)
		reps := b.Repetitions(c)
		found := false
		for _, h := range sortedHashes(reps) {
			plies := reps[h]
			if len(plies) < 2 {
				continue
			}
			found = true
			fmt.Fprintf(w, "\tHash: 0x%016x - %d - %v\n", h, len(plies), plies)
		}
		if !found {
			fmt.Fprintln(w, "\tNo board hash repetitions")
		}
	}
}

// MoveMapText lists the legal moves grouped by origin square, e.g.
// "  Moves of N @ g1 (2): f3 h3".
func MoveMapText(w io.Writer, b *chess.Board, mm engine.MoveMap) {
	fmt.Fprintln(w, "List of valid moves:")
	for _, from := range mm.Squares() {
		p, ok := b.PieceAt(from)
		if !ok {
			continue
		}
		targets := mm.Targets(from)
		names := make([]string, len(targets))
		for i, to := range targets {
			names[i] = to.String()
		}
		fmt.Fprintf(w, "  Moves of %c @ %s (%d): %s\n", p.Type.Letter(), from, len(targets), strings.Join(names, " "))
	}
}
