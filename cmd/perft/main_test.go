package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/lgbarn/chesscore/internal/engine"
	"github.com/lgbarn/chesscore/internal/errors"
)

const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestRun(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		depth   int
		workers int
		want    string
	}{
		{"initial depth 1", engine.InitialFEN, 1, 1, "perft(1) = 20 "},
		{"initial depth 2", engine.InitialFEN, 2, 4, "perft(2) = 400 "},
		{"kiwipete", kiwipete, 2, 3, "perft(2) = 2039 "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreString(fen, tt.fen)()
			defer saveRestoreInt(depth, tt.depth)()
			defer saveRestoreInt(workers, tt.workers)()

			var out bytes.Buffer
			if err := run(context.Background(), &out); err != nil {
				t.Fatalf("run: %v", err)
			}
			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("output = %q; want %q", out.String(), tt.want)
			}
		})
	}
}

func TestRun_DivideVerify(t *testing.T) {
	defer saveRestoreString(fen, kiwipete)()
	defer saveRestoreInt(depth, 2)()
	defer saveRestoreInt(workers, 2)()
	defer saveRestoreBool(divide, true)()
	defer saveRestoreBool(verify, true)()

	var out bytes.Buffer
	if err := run(context.Background(), &out); err != nil {
		t.Fatalf("run: %v\n%s", err, out.String())
	}
	text := out.String()
	lines := strings.Split(strings.TrimSpace(text), "\n")
	// 48 root moves, a blank line, the total and the verification.
	if len(lines) != 51 {
		t.Errorf("got %d lines; want 51:\n%s", len(lines), text)
	}
	if !strings.HasPrefix(lines[0], "a1b1: ") {
		t.Errorf("first line = %q; want a1b1", lines[0])
	}
	if !strings.Contains(text, "Verified against dragontoothmg.\n") {
		t.Errorf("output missing verification:\n%s", text)
	}
}

func TestRun_Errors(t *testing.T) {
	t.Run("bad fen", func(t *testing.T) {
		defer saveRestoreString(fen, "not a position")()
		err := run(context.Background(), &bytes.Buffer{})
		if !errors.Is(err, errors.ErrInvalidFEN) {
			t.Errorf("err = %v; want ErrInvalidFEN", err)
		}
	})

	t.Run("king capturable", func(t *testing.T) {
		defer saveRestoreString(fen, "4k3/4R3/8/8/8/8/8/4K3 w - - 0 1")()
		err := run(context.Background(), &bytes.Buffer{})
		if !errors.Is(err, errors.ErrInvalidFEN) {
			t.Errorf("err = %v; want ErrInvalidFEN", err)
		}
	})

	t.Run("zero depth", func(t *testing.T) {
		defer saveRestoreInt(depth, 0)()
		if err := run(context.Background(), &bytes.Buffer{}); err == nil {
			t.Error("run accepted depth 0")
		}
	})
}

func TestDivideParallel_MatchesEngine(t *testing.T) {
	g := engine.MustGameFromFEN(kiwipete)
	want := engine.PerftDivide(g, 2)

	got, err := divideParallel(context.Background(), g, 2, 4)
	if err != nil {
		t.Fatalf("divideParallel: %v", err)
	}
	if mm := engine.CompareDivide(got, want); len(mm) != 0 {
		t.Errorf("divisions differ: %+v", mm)
	}
	if engine.FEN(g) != kiwipete {
		t.Errorf("FEN after search = %q; want unchanged", engine.FEN(g))
	}
}
