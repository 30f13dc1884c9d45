package engine

import (
	"fmt"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/errors"
)

// promotionChoices lists every piece a pawn may promote to.
var promotionChoices = []chess.PieceType{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// ExpandPromotions replaces every promotion move with one move per promotion choice.
func ExpandPromotions(moves []chess.Move) []chess.Move {
	out := make([]chess.Move, 0, len(moves))
	for _, m := range moves {
		if !m.IsPromotion() {
			out = append(out, m)
			continue
		}
		for _, t := range promotionChoices {
			out = append(out, m.WithPromotion(t))
		}
	}
	return out
}

// Perft counts the leaf nodes of the legal move tree to depth, with every
// promotion choice counted separately.
func Perft(g *Game, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := ExpandPromotions(LegalMoves(g, g.ToMove()).All())
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		g.withMove(m, func() {
			nodes += Perft(g, depth-1)
		})
	}
	return nodes
}

// PerftDivide returns the perft count below each root move, keyed by the
// move in long algebraic notation.
func PerftDivide(g *Game, depth int) map[string]uint64 {
	out := make(map[string]uint64)
	if depth <= 0 {
		return out
	}
	for _, m := range ExpandPromotions(LegalMoves(g, g.ToMove()).All()) {
		g.withMove(m, func() {
			out[m.String()] = Perft(g, depth-1)
		})
	}
	return out
}

// ReferencePerftDivide computes PerftDivide for fen with the dragontoothmg
// move generator, for cross-checking.
func ReferencePerftDivide(fen string, depth int) (out map[string]uint64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("reference generator rejected %q: %v: %w", fen, r, errors.ErrInvalidFEN)
		}
	}()

	board := dragontoothmg.ParseFen(fen)
	out = make(map[string]uint64)
	if depth <= 0 {
		return out, nil
	}
	for _, m := range board.GenerateLegalMoves() {
		unapply := board.Apply(m)
		out[m.String()] = referencePerft(&board, depth-1)
		unapply()
	}
	return out, nil
}

func referencePerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += referencePerft(b, depth-1)
		unapply()
	}
	return nodes
}

// DivideMismatch is one root move on which two perft divisions disagree.
type DivideMismatch struct {
	Move      string
	Got, Want uint64
}

// CompareDivide lists the moves whose counts differ between got and want,
// in move order. A move missing from one side counts as zero there.
func CompareDivide(got, want map[string]uint64) []DivideMismatch {
	all := maps.Clone(want)
	for mv, n := range got {
		all[mv] = n
	}
	keys := maps.Keys(all)
	slices.Sort(keys)

	var out []DivideMismatch
	for _, mv := range keys {
		if got[mv] != want[mv] {
			out = append(out, DivideMismatch{Move: mv, Got: got[mv], Want: want[mv]})
		}
	}
	return out
}
