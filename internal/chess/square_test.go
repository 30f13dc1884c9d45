package chess_test

import (
	"testing"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/errors"
	"github.com/lgbarn/chesscore/internal/testutil"
)

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in      string
		col     int
		row     int
		wantErr bool
	}{
		{"a1", 0, 0, false},
		{"h8", 7, 7, false},
		{"E4", 4, 3, false},
		{" d5 ", 3, 4, false},
		{"i1", 0, 0, true},
		{"a9", 0, 0, true},
		{"a0", 0, 0, true},
		{"e", 0, 0, true},
		{"e44", 0, 0, true},
		{"", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			sq, err := chess.ParseSquare(tt.in)
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, errors.ErrInvalidSquare)
				return
			}
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, sq.Col(), tt.col)
			testutil.AssertEqual(t, sq.Row(), tt.row)
		})
	}
}

func TestSquareRoundTrip(t *testing.T) {
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		got, err := chess.ParseSquare(sq.String())
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, got, sq)
	}
}

func TestSquareAdd(t *testing.T) {
	tests := []struct {
		name string
		from string
		dir  chess.Dir
		want string
		ok   bool
	}{
		{"up", "e4", chess.Dir{DX: 0, DY: 1}, "e5", true},
		{"knight", "g1", chess.Dir{DX: -1, DY: 2}, "f3", true},
		{"off right edge", "h4", chess.Dir{DX: 1, DY: 0}, "", false},
		{"off bottom", "a1", chess.Dir{DX: -1, DY: -1}, "", false},
		{"no wrap", "h3", chess.Dir{DX: 1, DY: 1}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := chess.MustSquare(tt.from).Add(tt.dir)
			testutil.AssertEqual(t, ok, tt.ok)
			if ok {
				testutil.AssertEqual(t, got.String(), tt.want)
			}
		})
	}
}

func TestColourRelativeFrame(t *testing.T) {
	testutil.AssertEqual(t, chess.MustSquare("e2").RelRow(chess.White), 1)
	testutil.AssertEqual(t, chess.MustSquare("e7").RelRow(chess.Black), 1)
	testutil.AssertEqual(t, chess.EnPassantRow(chess.White), 4)
	testutil.AssertEqual(t, chess.EnPassantRow(chess.Black), 3)
	testutil.AssertEqual(t, chess.PromotionRow(chess.Black), 0)
	testutil.AssertEqual(t, chess.KingHome(chess.Black).String(), "e8")
	testutil.AssertEqual(t, chess.QueensideRookHome(chess.White).String(), "a1")
	testutil.AssertEqual(t, chess.Forward(chess.Black), chess.Dir{DX: 0, DY: -1})
	testutil.AssertEqual(t, chess.Backward(chess.Black), chess.Dir{DX: 0, DY: 1})
}

func TestSquareIsLight(t *testing.T) {
	testutil.AssertFalse(t, chess.MustSquare("a1").IsLight())
	testutil.AssertTrue(t, chess.MustSquare("h1").IsLight())
	testutil.AssertTrue(t, chess.MustSquare("a8").IsLight())
	testutil.AssertEqual(t, chess.MustSquare("a7").IsLight(), chess.MustSquare("h2").IsLight())
}

func TestPieceHistory(t *testing.T) {
	b := chess.NewBoard()
	id := b.AddPiece(chess.White, chess.Rook, chess.MustSquare("a1"), 0)
	p := b.Piece(id)

	testutil.AssertFalse(t, p.HasMoved())
	testutil.AssertEqual(t, p.LastMovePly(), 0)

	for _, ply := range []int{3, 70, 130} {
		p.MarkMoved(ply)
	}
	testutil.AssertEqual(t, p.LastMovePly(), 130)
	testutil.AssertTrue(t, p.MovedOn(70))
	testutil.AssertFalse(t, p.MovedOn(71))

	p.RollBack(130)
	testutil.AssertEqual(t, p.LastMovePly(), 70)
	p.RollBack(4)
	testutil.AssertEqual(t, p.LastMovePly(), 3)
	testutil.AssertTrue(t, p.HasMoved())
	p.RollBack(1)
	testutil.AssertFalse(t, p.HasMoved())

	p.MarkMoved(200)
	testutil.AssertFalse(t, p.MovedOn(-1))
	testutil.AssertFalse(t, p.MovedOn(1000))
	p.RollBack(-5)
	testutil.AssertEqual(t, p.LastMovePly(), 0)
	testutil.AssertPanics(t, func() { p.MarkMoved(-1) })
}

func TestMoveQueries(t *testing.T) {
	castle := chess.Move{Colour: chess.White, Piece: chess.King, From: chess.MustSquare("e1"), To: chess.MustSquare("c1")}
	testutil.AssertTrue(t, castle.IsCastling())
	testutil.AssertTrue(t, castle.IsCastlingQueenside())
	testutil.AssertFalse(t, castle.IsCastlingKingside())

	push := chess.Move{Colour: chess.Black, Piece: chess.Pawn, From: chess.MustSquare("d7"), To: chess.MustSquare("d5"), IsPawnMove: true}
	testutil.AssertTrue(t, push.IsDoubleStep())
	testutil.AssertFalse(t, push.IsCapture())
	testutil.AssertEqual(t, push.String(), "d7d5")

	promo := chess.Move{
		Colour: chess.White, Piece: chess.Pawn,
		From: chess.MustSquare("e7"), To: chess.MustSquare("d8"),
		Captured:   chess.Capture{ID: 9, Square: chess.MustSquare("d8"), Type: chess.Queen},
		IsPawnMove: true, Promotion: chess.Queen, Check: chess.Check,
	}
	testutil.AssertEqual(t, promo.String(), "e7d8q")
	testutil.AssertEqual(t, promo.Notation(), "Pe7xd8=Q+")
	knight := promo.WithPromotion(chess.Knight)
	testutil.AssertEqual(t, knight.String(), "e7d8n")
	testutil.AssertFalse(t, knight.Matches(promo))
	testutil.AssertTrue(t, knight.WithPromotion(chess.Queen).Matches(promo))
}
