package engine

import (
	"testing"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/testutil"
)

// play applies the legal move from -> to for the side to move.
func play(t testing.TB, g *Game, from, to string) chess.Move {
	t.Helper()
	m := findMove(t, g, g.ToMove(), from, to)
	g.Apply(m)
	return m
}

func findMove(t testing.TB, g *Game, c chess.Colour, from, to string) chess.Move {
	t.Helper()
	m, ok := LegalMoves(g, c).Find(testutil.Sq(t, from), testutil.Sq(t, to))
	if !ok {
		t.Fatalf("%s %s%s is not legal in %s", c, from, to, FEN(g))
	}
	return m
}

// checkmatesGame is a position where Black has four mating moves and White one.
func checkmatesGame(t testing.TB, ply int) *Game {
	t.Helper()
	return NewGame(testutil.NewBoard(t, ply,
		testutil.B(chess.King, "a8").Moved(2),
		testutil.B(chess.Queen, "h3"),
		testutil.B(chess.Rook, "h5"),
		testutil.B(chess.Knight, "f4"),
		testutil.B(chess.Pawn, "b7"),
		testutil.B(chess.Pawn, "e2"),
		testutil.W(chess.King, "h1").Moved(2),
		testutil.W(chess.Bishop, "e3"),
		testutil.W(chess.Bishop, "e5"),
		testutil.W(chess.Knight, "d8"),
		testutil.W(chess.Pawn, "a5"),
		testutil.W(chess.Pawn, "c6"),
		testutil.W(chess.Pawn, "f2"),
		testutil.W(chess.Pawn, "g3"),
		testutil.W(chess.Pawn, "h2"),
	))
}

// castlingGame is a position where Black may castle on both sides and
// White's kingside path is attacked.
func castlingGame(t testing.TB, ply int) *Game {
	t.Helper()
	return NewGame(testutil.NewBoard(t, ply,
		testutil.B(chess.King, "e8"),
		testutil.B(chess.Rook, "a8"),
		testutil.B(chess.Rook, "h8"),
		testutil.B(chess.Bishop, "a6"),
		testutil.B(chess.Bishop, "f6"),
		testutil.W(chess.King, "e1"),
		testutil.W(chess.Rook, "a1"),
		testutil.W(chess.Rook, "h1"),
		testutil.W(chess.Pawn, "h2"),
	))
}

// snapshot captures everything apply/undo must restore.
type snapshot struct {
	FEN   string
	Moved map[string]int
	Reps  [chess.NumColours]map[uint64][]int
	Moves int
}

func takeSnapshot(g *Game) snapshot {
	s := snapshot{
		FEN:   FEN(g),
		Moved: map[string]int{},
		Moves: len(g.Moves()),
	}
	for _, c := range chess.Colours {
		for _, p := range g.Board().Pieces(c) {
			s.Moved[p.Code()+p.Square.String()] = p.LastMovePly()
		}
		s.Reps[c] = g.Board().Repetitions(c)
	}
	return s
}
