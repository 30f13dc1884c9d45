// perft counts move-generation leaf nodes from a position and optionally
// cross-checks the counts against the dragontoothmg generator.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chesscore/internal/engine"
	"github.com/lgbarn/chesscore/internal/errors"
	"github.com/lgbarn/chesscore/internal/worker"
)

var (
	depth   = flag.Int("depth", 3, "Search depth in plies")
	fen     = flag.String("fen", engine.InitialFEN, "Position to search")
	divide  = flag.Bool("divide", false, "Print the node count below each root move")
	verify  = flag.Bool("verify", false, "Compare the division with the dragontoothmg generator")
	workers = flag.Int("workers", 1, "Number of root moves searched at once")
	help    = flag.Bool("h", false, "Show help")
)

// errMismatch reports a verification failure.
var errMismatch = errors.New("perft counts differ from reference")

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if err := run(context.Background(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run searches the position given by the flags and writes the report to w.
func run(ctx context.Context, w io.Writer) error {
	if *depth < 1 {
		return fmt.Errorf("depth %d: must be at least 1", *depth)
	}
	g, err := engine.NewGameFromFEN(*fen)
	if err != nil {
		return err
	}

	start := time.Now()
	counts, err := divideParallel(ctx, g, *depth, *workers)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	moves := maps.Keys(counts)
	slices.Sort(moves)
	var total uint64
	for _, n := range counts {
		total += n
	}

	if *divide {
		for _, mv := range moves {
			fmt.Fprintf(w, "%s: %d\n", mv, counts[mv])
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "perft(%d) = %d (%.3fs)\n", *depth, total, elapsed.Seconds())

	if !*verify {
		return nil
	}
	want, err := engine.ReferencePerftDivide(*fen, *depth)
	if err != nil {
		return err
	}
	mismatches := engine.CompareDivide(counts, want)
	for _, m := range mismatches {
		fmt.Fprintf(w, "MISMATCH %s: got %d, want %d\n", m.Move, m.Got, m.Want)
	}
	if len(mismatches) > 0 {
		return fmt.Errorf("%d root moves: %w", len(mismatches), errMismatch)
	}
	fmt.Fprintln(w, "Verified against dragontoothmg.")
	return nil
}

// divideParallel computes engine.PerftDivide with the root moves spread
// over the worker pool. Each worker searches its own copy of g.
func divideParallel(ctx context.Context, g *engine.Game, depth, numWorkers int) (map[string]uint64, error) {
	roots := engine.ExpandPromotions(engine.LegalMoves(g, g.ToMove()).All())

	processFunc := func(_ context.Context, item worker.WorkItem) worker.ProcessResult {
		c := g.Clone()
		c.Apply(roots[item.Index])
		return worker.ProcessResult{Index: item.Index, Game: c, Info: engine.Perft(c, depth-1)}
	}

	pool := worker.NewPool(processFunc, worker.WithWorkers(numWorkers), worker.WithBufferSize(len(roots)+1))
	pool.Start(ctx)
	go func() {
		for i := range roots {
			if pool.Submit(ctx, worker.WorkItem{Index: i}) != nil {
				break
			}
		}
		pool.Close()
	}()

	out := make(map[string]uint64, len(roots))
	for res := range pool.Results() {
		n, ok := res.Info.(uint64)
		if !ok {
			return nil, fmt.Errorf("root move %d: no count", res.Index)
		}
		out[roots[res.Index].String()] = n
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: perft [options]\n\n")
	fmt.Fprintf(os.Stderr, "Counts the positions reachable from a FEN position.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
