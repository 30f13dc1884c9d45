package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/engine"
	"github.com/lgbarn/chesscore/internal/testutil"
)

var names = [chess.NumColours]string{chess.White: "Wilma", chess.Black: "Basho"}

// playLine applies moves given as from/to pairs and returns the final state.
func playLine(t *testing.T, g *engine.Game, line ...string) engine.State {
	t.Helper()
	var s engine.State
	for _, mv := range line {
		from, to := chess.MustSquare(mv[:2]), chess.MustSquare(mv[2:])
		m, ok := engine.LegalMoves(g, g.ToMove()).Find(from, to)
		if !ok {
			t.Fatalf("%s is not legal", mv)
		}
		g.Apply(m)
		s, _ = engine.NextState(g, m.Colour, false)
	}
	return s
}

func foolsMate(t *testing.T) (*engine.Game, engine.State) {
	g := engine.NewStandardGame()
	return g, playLine(t, g, "f2f3", "e7e5", "g2g4", "d8h4")
}

func TestBoard(t *testing.T) {
	var buf bytes.Buffer
	Board(&buf, chess.NewInitialBoard())
	lines := strings.Split(buf.String(), "\n")

	testutil.AssertEqual(t, len(lines), 18)
	testutil.AssertEqual(t, lines[0], "+--+--+--+--+--+--+--+--+")
	testutil.AssertEqual(t, lines[1], "|BR|BN|BB|BQ|BK|BB|BN|BR|")
	testutil.AssertEqual(t, lines[5], "|  |  |  |  |  |  |  |  |")
	testutil.AssertEqual(t, lines[15], "|WR|WN|WB|WQ|WK|WB|WN|WR|")
}

func TestMoveNotation(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		line    []string
		compact string
		pgn     string
	}{
		{"pawn push", engine.InitialFEN, []string{"e2e4"}, "WP@e2->e4", "1. Pe2e4"},
		{"fools mate", engine.InitialFEN, []string{"f2f3", "e7e5", "g2g4", "d8h4"},
			"WP@f2->f3 BP@e7->e5 WP@g2->g4 BQ@d8->h4#", "1. Pf2f3 Pe7e5 2. Pg2g4 Qd8h4#"},
		{"castling", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", []string{"e1g1", "e8c8"},
			"WO-O BO-O-O", "1. O-O O-O-O"},
		{"en passant", "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3", []string{"f5e6"},
			"WP@f5->e6xPep", "3. Pf5xe6 {e.p.}"},
		{"promotion capture", "3r3k/4P3/8/8/8/8/8/K7 w - - 0 1", []string{"e7d8"},
			"WP@e7->d8xR=Q+", "1. Pe7xd8=Q+"},
		{"black first", "4k3/8/8/8/8/8/4p3/K7 b - - 0 40", []string{"e2e1", "a1b2"},
			"BP@e2->e1=Q+ WK@a1->b2", "40... Pe2e1=Q+ 41. Ka1b2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := engine.MustGameFromFEN(tt.fen)
			first := g.Ply()
			playLine(t, g, tt.line...)
			testutil.AssertEqual(t, HistoryCompact(g.Moves()), tt.compact)
			testutil.AssertEqual(t, HistoryPGN(g.Moves(), first), tt.pgn)
		})
	}
}

func TestMoveMapText(t *testing.T) {
	g := engine.NewStandardGame()
	var buf bytes.Buffer
	MoveMapText(&buf, g.Board(), engine.LegalMoves(g, chess.White))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")

	testutil.AssertEqual(t, len(lines), 11)
	testutil.AssertEqual(t, lines[0], "List of valid moves:")
	testutil.AssertEqual(t, lines[1], "  Moves of N @ b1 (2): a3 c3")
	testutil.AssertEqual(t, lines[2], "  Moves of N @ g1 (2): f3 h3")
	testutil.AssertEqual(t, lines[3], "  Moves of P @ a2 (2): a3 a4")
}

func TestRepetitions(t *testing.T) {
	g := engine.NewStandardGame()
	var buf bytes.Buffer
	Repetitions(&buf, g.Board())
	testutil.AssertEqual(t, buf.String(),
		"Color: Black:\n\tNo board hash repetitions\nColor: White:\n\tNo board hash repetitions\n")

	playLine(t, g, "b1c3", "b8c6", "c3b1", "c6b8")
	buf.Reset()
	Repetitions(&buf, g.Board())
	out := buf.String()
	testutil.AssertContains(t, out, "Color: Black:\n\tNo board hash repetitions\n")
	testutil.AssertContains(t, out, " - 2 - [1 5]\n")
	testutil.AssertContains(t, out, "\tHash: 0x")
}

func TestPieces(t *testing.T) {
	var buf bytes.Buffer
	Pieces(&buf, engine.MustGameFromFEN("4k3/8/8/8/8/8/8/4K2R w K - 0 1").Board())
	out := buf.String()
	testutil.AssertContains(t, out, "Pieces with color White (2):\n")
	testutil.AssertContains(t, out, "\tWhite Rook h1\n")
	testutil.AssertContains(t, out, "Pieces with color Black (1):\n\tBlack King e8\n")
}

func TestGameRecord(t *testing.T) {
	g, s := foolsMate(t)
	rec := NewGameRecord(g, s, 2, "Casual game", "?", names)

	testutil.AssertEqual(t, rec.Round, 3)
	testutil.AssertEqual(t, rec.FirstPly, 1)
	testutil.AssertEqual(t, rec.StartFEN, engine.InitialFEN)
	testutil.AssertEqual(t, rec.Tag("Result"), "0-1")
	testutil.AssertEqual(t, rec.Tag("Termination"), "Black wins by checkmate")
	testutil.AssertEqual(t, rec.Tag("Annotator"), "?")
	_, hasFEN := rec.Tags["FEN"]
	testutil.AssertFalse(t, hasFEN)
	testutil.AssertEqual(t, rec.MaterialBalance, 0.0)
	testutil.AssertEqual(t, len(g.Moves()), 4, "record must not change the game")
}

func TestResultString(t *testing.T) {
	testutil.AssertEqual(t, ResultString(engine.State{}), "*")
	testutil.AssertEqual(t, ResultString(engine.Concede(chess.Black)), "1-0")
	testutil.AssertEqual(t, ResultString(engine.Concede(chess.White)), "0-1")
	testutil.AssertEqual(t, ResultString(engine.Agreed(engine.Draw, chess.White)), "1/2-1/2")
}

// TestPGNWriter_WriteGame verifies PGN writer outputs correct format
func TestPGNWriter_WriteGame(t *testing.T) {
	g, s := foolsMate(t)
	rec := NewGameRecord(g, s, 0, "Test", "Here", names)

	var buf bytes.Buffer
	w := NewPGNWriter(&buf, 80)
	testutil.AssertNoError(t, w.WriteGame(rec))
	testutil.AssertNoError(t, w.Close())

	out := buf.String()
	for _, want := range []string{
		"[Event \"Test\"]\n[Site \"Here\"]\n",
		"[Round \"1\"]\n[White \"Wilma\"]\n[Black \"Basho\"]\n[Result \"0-1\"]\n",
		"[Termination \"Black wins by checkmate\"]\n",
		"\n\n1. Pf2f3 Pe7e5 2. Pg2g4 Qd8h4# 0-1\n\n",
	} {
		testutil.AssertContains(t, out, want)
	}
}

func TestPGNWriter_WrapsAndTagsSetUp(t *testing.T) {
	g := engine.MustGameFromFEN("4k2r/8/8/8/8/8/8/R3K3 w Qk - 0 1")
	s := playLine(t, g, "a1a2", "e8d8", "a2a3", "d8e8", "a3a4", "e8d8", "a4a5", "d8e8", "a5a6")

	var buf bytes.Buffer
	testutil.AssertNoError(t, NewPGNWriter(&buf, 24).WriteGame(NewGameRecord(g, s, 0, "E", "S", names)))
	out := buf.String()

	testutil.AssertContains(t, out, "[SetUp \"1\"]\n[FEN \"4k2r/8/8/8/8/8/8/R3K3 w Qk - 0 1\"]\n")
	movetext := out[strings.Index(out, "\n\n")+2:]
	for _, line := range strings.Split(strings.TrimSpace(movetext), "\n") {
		if len(line) > 24 {
			t.Errorf("line %q longer than 24", line)
		}
	}
	testutil.AssertTrue(t, strings.HasSuffix(strings.TrimSpace(movetext), "Ra5a6 *"))
}

func TestOutputWriter_NoWrap(t *testing.T) {
	var buf bytes.Buffer
	ow := NewOutputWriter(&buf, 0)
	for i := 0; i < 50; i++ {
		ow.Write("Pe2e4")
	}
	ow.NewLine()
	testutil.AssertEqual(t, strings.Count(buf.String(), "\n"), 1)
}

// TestJSONWriter_WriteGame verifies JSON writer outputs correct format
func TestJSONWriter_WriteGame(t *testing.T) {
	g, s := foolsMate(t)
	rec := NewGameRecord(g, s, 0, "Test", "?", names)

	var buf bytes.Buffer
	w := NewJSONWriter(&buf)
	testutil.AssertNoError(t, w.WriteGame(rec))
	testutil.AssertNoError(t, w.WriteGame(rec))
	testutil.AssertEqual(t, buf.Len(), 0, "batch writer wrote before Close")
	testutil.AssertNoError(t, w.Close())

	var out JSONOutput
	testutil.AssertNoError(t, json.Unmarshal(buf.Bytes(), &out))
	testutil.AssertEqual(t, len(out.Games), 2)

	jg := out.Games[0]
	testutil.AssertEqual(t, jg.ID, g.ID.String())
	testutil.AssertEqual(t, jg.Result, "0-1")
	testutil.AssertEqual(t, jg.PlyCount, 4)
	testutil.AssertEqual(t, jg.InitialFEN, "")
	testutil.AssertEqual(t, jg.FinalFEN, engine.FEN(g))

	want := JSONMove{
		Color:    "black",
		Notation: "Qd8-h4#",
		UCI:      "d8h4",
		From:     "d8",
		To:       "h4",
		Piece:    "queen",
		Check:    "#",
	}
	if diff := cmp.Diff(want, jg.Moves[3]); diff != "" {
		t.Errorf("last move mismatch (-want +got):\n%s", diff)
	}
	testutil.AssertEqual(t, jg.Moves[2].MoveNumber, 2)
}

func TestJSONWriterSingle(t *testing.T) {
	g, s := foolsMate(t)
	var buf bytes.Buffer
	w := NewJSONWriterSingle(&buf)
	testutil.AssertNoError(t, w.WriteGame(NewGameRecord(g, s, 0, "Test", "?", names)))
	testutil.AssertTrue(t, buf.Len() > 0)

	var jg JSONGame
	testutil.AssertNoError(t, json.Unmarshal(buf.Bytes(), &jg))
	testutil.AssertEqual(t, jg.Tags["White"], "Wilma")
	testutil.AssertEqual(t, jg.State, "Black wins by checkmate")
}
