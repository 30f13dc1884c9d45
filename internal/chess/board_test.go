package chess_test

import (
	"strings"
	"testing"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/testutil"
)

func TestNewInitialBoard(t *testing.T) {
	b := chess.NewInitialBoard()

	tests := []struct {
		name   string
		square string
		colour chess.Colour
		piece  chess.PieceType
	}{
		{"white rook a1", "a1", chess.White, chess.Rook},
		{"white knight b1", "b1", chess.White, chess.Knight},
		{"white queen d1", "d1", chess.White, chess.Queen},
		{"white king e1", "e1", chess.White, chess.King},
		{"white pawn e2", "e2", chess.White, chess.Pawn},
		{"black pawn h7", "h7", chess.Black, chess.Pawn},
		{"black queen d8", "d8", chess.Black, chess.Queen},
		{"black king e8", "e8", chess.Black, chess.King},
		{"black rook h8", "h8", chess.Black, chess.Rook},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := b.PieceAt(chess.MustSquare(tt.square))
			if !ok {
				t.Fatalf("PieceAt(%s) is empty", tt.square)
			}
			testutil.AssertEqual(t, p.Colour, tt.colour)
			testutil.AssertEqual(t, p.Type, tt.piece)
			testutil.AssertFalse(t, p.HasMoved(), "fresh piece has moved")
		})
	}

	t.Run("middle is empty", func(t *testing.T) {
		for row := 2; row < 6; row++ {
			for col := 0; col < chess.BoardCols; col++ {
				if !b.IsEmpty(chess.NewSquare(col, row)) {
					t.Errorf("%s is occupied", chess.NewSquare(col, row))
				}
			}
		}
	})

	t.Run("counts and material", func(t *testing.T) {
		testutil.AssertEqual(t, len(b.Pieces(chess.White)), 16)
		testutil.AssertEqual(t, len(b.Pieces(chess.Black)), 16)
		testutil.AssertEqual(t, b.MaterialValue(chess.White), 9.0+2*5+2*3.5+2*3+8)
		testutil.AssertEqual(t, b.MaterialBalance(), 0.0)
		testutil.AssertEqual(t, b.Ply(), 1)
		testutil.AssertEqual(t, b.ToMove(), chess.White)
	})
}

func TestBoardAddPiecePanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func(b *chess.Board)
	}{
		{"occupied square", func(b *chess.Board) {
			b.AddPiece(chess.White, chess.Rook, chess.MustSquare("a1"), 0)
			b.AddPiece(chess.Black, chess.Rook, chess.MustSquare("a1"), 0)
		}},
		{"second king", func(b *chess.Board) {
			b.AddPiece(chess.White, chess.King, chess.MustSquare("e1"), 0)
			b.AddPiece(chess.White, chess.King, chess.MustSquare("e2"), 0)
		}},
		{"future move ply", func(b *chess.Board) {
			b.AddPiece(chess.White, chess.Rook, chess.MustSquare("a1"), 5)
		}},
		{"remove king", func(b *chess.Board) {
			b.AddPiece(chess.White, chess.King, chess.MustSquare("e1"), 0)
			b.RemovePiece(chess.MustSquare("e1"))
		}},
		{"remove from empty", func(b *chess.Board) {
			b.RemovePiece(chess.MustSquare("e4"))
		}},
		{"move onto piece", func(b *chess.Board) {
			b.AddPiece(chess.White, chess.Rook, chess.MustSquare("a1"), 0)
			b.AddPiece(chess.White, chess.Rook, chess.MustSquare("a2"), 0)
			b.MovePiece(chess.MustSquare("a1"), chess.MustSquare("a2"))
		}},
		{"missing king", func(b *chess.Board) {
			b.King(chess.Black)
		}},
		{"ply below one", func(b *chess.Board) {
			b.DecrementPly()
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertPanics(t, func() { tt.fn(chess.NewBoard()) })
		})
	}
}

func TestBoardRemoveRestoreKeepsIdentity(t *testing.T) {
	b := testutil.NewBoard(t, 6,
		testutil.W(chess.King, "e1"),
		testutil.B(chess.King, "e8"),
		testutil.B(chess.Knight, "d5").Moved(4),
	)
	d5 := chess.MustSquare("d5")
	before, _ := b.PieceAt(d5)
	id := before.ID

	removed := b.RemovePiece(d5)
	testutil.AssertEqual(t, removed, id)
	testutil.AssertTrue(t, b.IsEmpty(d5))
	testutil.AssertEqual(t, len(b.Pieces(chess.Black)), 1)

	b.RestorePiece(id, d5, chess.Knight)
	after, ok := b.PieceAt(d5)
	testutil.AssertTrue(t, ok, "piece not restored")
	testutil.AssertEqual(t, after.ID, id)
	testutil.AssertEqual(t, after.LastMovePly(), 4)
	testutil.AssertEqual(t, len(b.Pieces(chess.Black)), 2)
}

func TestBoardPiecesOrderedByID(t *testing.T) {
	b := chess.NewInitialBoard()
	pieces := b.Pieces(chess.Black)
	for i := 1; i < len(pieces); i++ {
		if pieces[i-1].ID >= pieces[i].ID {
			t.Fatalf("Pieces not in ID order at %d: %d then %d", i, pieces[i-1].ID, pieces[i].ID)
		}
	}
}

func TestPieceTypesSortedByValue(t *testing.T) {
	b := testutil.NewBoard(t, 1,
		testutil.W(chess.Pawn, "a2"),
		testutil.W(chess.Knight, "b1"),
		testutil.W(chess.King, "e1"),
		testutil.W(chess.Queen, "d1"),
		testutil.W(chess.Bishop, "c1"),
		testutil.W(chess.Rook, "a1"),
	)
	testutil.AssertEqual(t, b.PieceTypes(chess.White), []chess.PieceType{
		chess.King, chess.Queen, chess.Rook, chess.Bishop, chess.Knight, chess.Pawn,
	})
}

func TestHasInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name   string
		pieces []testutil.PieceSpec
		want   bool
	}{
		{"king v king", nil, true},
		{"rook v bishop", []testutil.PieceSpec{
			testutil.B(chess.Rook, "a7"), testutil.W(chess.Bishop, "h2"),
		}, true},
		{"rook v knight", []testutil.PieceSpec{
			testutil.B(chess.Rook, "a7"), testutil.W(chess.Knight, "h2"),
		}, true},
		{"bishop v nothing", []testutil.PieceSpec{
			testutil.W(chess.Bishop, "c4"),
		}, true},
		{"two knights v nothing", []testutil.PieceSpec{
			testutil.W(chess.Knight, "c4"), testutil.W(chess.Knight, "c5"),
		}, true},
		{"rook and bishop v rook", []testutil.PieceSpec{
			testutil.W(chess.Rook, "c4"), testutil.W(chess.Bishop, "c5"), testutil.B(chess.Rook, "f5"),
		}, true},
		{"bishops same colour", []testutil.PieceSpec{
			testutil.B(chess.Bishop, "a7"), testutil.W(chess.Bishop, "h2"),
		}, true},
		{"bishops opposite colour", []testutil.PieceSpec{
			testutil.B(chess.Bishop, "a7"), testutil.W(chess.Bishop, "h1"),
		}, false},
		{"rook v rook", []testutil.PieceSpec{
			testutil.B(chess.Rook, "a7"), testutil.W(chess.Rook, "h2"),
		}, false},
		{"lone pawn", []testutil.PieceSpec{
			testutil.W(chess.Pawn, "a2"),
		}, false},
		{"lone rook", []testutil.PieceSpec{
			testutil.B(chess.Rook, "a7"),
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pieces := append([]testutil.PieceSpec{
				testutil.B(chess.King, "a8"), testutil.W(chess.King, "h1"),
			}, tt.pieces...)
			b := testutil.NewBoard(t, 1, pieces...)
			testutil.AssertEqual(t, b.HasInsufficientMaterial(), tt.want)
		})
	}
}

func TestHashHistory(t *testing.T) {
	b := chess.NewBoard()
	b.RecordHash(chess.White, 42)
	b.IncrementPly()
	b.RecordHash(chess.Black, 7)
	b.IncrementPly()
	b.RecordHash(chess.White, 42)

	testutil.AssertEqual(t, b.RepetitionCount(chess.White, 42), 2)
	testutil.AssertEqual(t, b.RepetitionCount(chess.Black, 42), 0)
	testutil.AssertEqual(t, b.MaxRepetitionCount(chess.White), 2)
	testutil.AssertEqual(t, b.Repetitions(chess.White), map[uint64][]int{42: {1, 3}})

	b.RollBackHash(chess.White, 42)
	testutil.AssertEqual(t, b.MaxRepetitionCount(chess.White), 1)
	testutil.AssertPanics(t, func() { b.RollBackHash(chess.White, 42) }, "no record at ply 3")
}

func TestMovesSincePawnMoveOrCapture(t *testing.T) {
	b := chess.NewBoard()
	testutil.AssertEqual(t, b.MovesSincePawnMoveOrCapture(), 0)

	b.PushProgress(false)
	b.PushProgress(false)
	testutil.AssertEqual(t, b.MovesSincePawnMoveOrCapture(), 2)

	b.PushProgress(true)
	testutil.AssertEqual(t, b.MovesSincePawnMoveOrCapture(), 0)
	b.PushProgress(false)
	testutil.AssertEqual(t, b.MovesSincePawnMoveOrCapture(), 1)

	b.PopProgress()
	b.PopProgress()
	testutil.AssertEqual(t, b.MovesSincePawnMoveOrCapture(), 2)
}

func TestBoardCloneAndEqual(t *testing.T) {
	b := chess.NewInitialBoard()
	c := b.Clone()
	testutil.AssertTrue(t, b.Equal(c))

	c.MovePiece(chess.MustSquare("e2"), chess.MustSquare("e4"))
	testutil.AssertFalse(t, b.Equal(c))
	testutil.AssertTrue(t, b.IsEmpty(chess.MustSquare("e4")), "clone shares squares")

	p, _ := c.PieceAt(chess.MustSquare("e4"))
	p.MarkMoved(1)
	q, _ := b.PieceAt(chess.MustSquare("e2"))
	testutil.AssertFalse(t, q.HasMoved(), "clone shares history")
}

func TestBoardString(t *testing.T) {
	s := chess.NewInitialBoard().String()
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	testutil.AssertEqual(t, len(lines), 18)
	testutil.AssertEqual(t, lines[1], "8 | BR | BN | BB | BQ | BK | BB | BN | BR |")
	testutil.AssertEqual(t, lines[9], "4 |    |    |    |    |    |    |    |    |")
	testutil.AssertEqual(t, lines[15], "1 | WR | WN | WB | WQ | WK | WB | WN | WR |")
	testutil.AssertContains(t, lines[17], "a    b")
}
