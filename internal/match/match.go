package match

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/config"
	"github.com/lgbarn/chesscore/internal/engine"
	"github.com/lgbarn/chesscore/internal/hashing"
	"github.com/lgbarn/chesscore/internal/output"
	"github.com/lgbarn/chesscore/internal/parser"
	"github.com/lgbarn/chesscore/internal/strategy"
	"github.com/lgbarn/chesscore/internal/worker"
)

// Factory creates the player for colour c in the game described by item.
type Factory func(c chess.Colour, item worker.WorkItem) (strategy.Strategy, error)

// DefaultFactory builds players from cfg.Players. Each side of each game
// gets its own seed; console players read from in.
func DefaultFactory(cfg *config.Config, in *parser.Parser) Factory {
	return func(c chess.Colour, item worker.WorkItem) (strategy.Strategy, error) {
		return strategy.New(cfg.Player(c), item.Seed*2+int64(c), cfg, in)
	}
}

// GameSummary is one game of a match.
type GameSummary struct {
	Index     int
	ID        uuid.UUID
	State     engine.State
	Plies     int
	Truncated bool
	Duplicate bool // Final position seen in an earlier game
}

// Summary is the outcome of a match.
type Summary struct {
	Games      []GameSummary // By index
	Histogram  map[engine.State]int
	Duplicates int
	Distinct   int // Distinct final positions, when detection is on

	Wins  [chess.NumColours]int
	Draws int

	// Quit is set when a player left; the match ended there.
	Quit bool
}

// gameInfo travels from a worker to the consumer with each game.
type gameInfo struct {
	result     Result
	transcript []byte
}

// runner holds what every game of a match shares.
type runner struct {
	cfg     *config.Config
	in      *parser.Parser
	factory Factory

	// live games print straight to the output instead of a transcript.
	live bool
	text bool
}

// RunMatch plays cfg.Match.Games games, or asks after each game when that
// is 0. Computer-only matches run on cfg.Match.Workers workers; matches
// with a console player go one game at a time. Each finished game is
// written to the configured writers and tallied in the summary.
func RunMatch(ctx context.Context, cfg *config.Config, in *parser.Parser, factory Factory) (*Summary, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Match.StartFEN != "" {
		if _, err := engine.NewGameFromFEN(cfg.Match.StartFEN); err != nil {
			return nil, err
		}
	}
	if in == nil {
		in = parser.NewParser(cfg.Input)
	}
	if factory == nil {
		factory = DefaultFactory(cfg, in)
	}

	r := &runner{
		cfg:     cfg,
		in:      in,
		factory: factory,
		live:    cfg.HasHuman() || cfg.Match.Games == 0,
		text:    !cfg.Output.JSONFormat || cfg.HasHuman(),
	}
	c := newCollector(cfg, r.live)

	bufferSize := cfg.Match.Games
	if bufferSize > 100 || bufferSize < 1 {
		bufferSize = 100
	}
	pool := worker.NewPool(r.play,
		worker.WithWorkers(cfg.Match.Workers),
		worker.WithBufferSize(bufferSize))
	pool.Start(ctx)
	cfg.Logf(config.LogInfo, "Seed %d, %d workers\n", cfg.Match.Seed, pool.NumWorkers())

	if r.live {
		r.sequential(ctx, pool, c)
		pool.Close()
		for res := range pool.Results() {
			c.add(res)
		}
		return c.finish(ctx)
	}

	go func() {
		for i := 0; i < cfg.Match.Games; i++ {
			if pool.IsStopped() || pool.Submit(ctx, r.item(i)) != nil {
				break
			}
		}
		pool.Close()
	}()

	for res := range pool.Results() {
		if !c.add(res) {
			pool.Stop()
		}
	}
	return c.finish(ctx)
}

// sequential plays one game at a time, for matches a person takes part in.
// With no game count the player is asked after each game.
func (r *runner) sequential(ctx context.Context, pool *worker.Pool, c *collector) {
	out := r.cfg.OutputFile
	for i := 0; r.cfg.Match.Games == 0 || i < r.cfg.Match.Games; i++ {
		if err := pool.Submit(ctx, r.item(i)); err != nil {
			c.fail(err)
			return
		}
		select {
		case res := <-pool.Results():
			if !c.add(res) {
				return
			}
		case <-ctx.Done():
			c.fail(ctx.Err())
			return
		}
		if r.cfg.Match.Games > 0 {
			continue
		}
		again, err := strategy.AskYesNo(ctx, r.in, out, "Play again (y/n)? ")
		if err != nil {
			c.fail(err)
			return
		}
		if !again {
			fmt.Fprintln(out, "Thanks for playing. Bye!")
			return
		}
	}
}

func (r *runner) item(i int) worker.WorkItem {
	return worker.WorkItem{Index: i, Seed: r.cfg.Match.Seed + int64(i)}
}

func (r *runner) newGame() (*engine.Game, error) {
	if r.cfg.Match.StartFEN == "" {
		return engine.NewStandardGame(), nil
	}
	return engine.NewGameFromFEN(r.cfg.Match.StartFEN)
}

// play is the worker's process function: one complete game.
func (r *runner) play(ctx context.Context, item worker.WorkItem) worker.ProcessResult {
	pr := worker.ProcessResult{Index: item.Index}

	g, err := r.newGame()
	if err != nil {
		pr.Err = err
		return pr
	}
	pr.Game = g

	var players [chess.NumColours]strategy.Strategy
	for _, c := range chess.Colours {
		if players[c], err = r.factory(c, item); err != nil {
			pr.Err = err
			return pr
		}
	}

	var buf bytes.Buffer
	var out io.Writer = &buf
	switch {
	case !r.text:
		out = io.Discard
	case r.live:
		out = r.cfg.OutputFile
	}

	fmt.Fprintln(out, "=========================")
	fmt.Fprintf(out, "Game #%-5s\n", fmt.Sprintf("%d.", item.Index+1))

	res, err := Play(ctx, r.cfg, g, players[chess.White], players[chess.Black], out)
	pr.State, pr.Err = res.State, err
	if err == nil && !res.Quit && r.cfg.Output.ShowStats {
		writeStats(out, g)
	}
	pr.Info = &gameInfo{result: res, transcript: buf.Bytes()}
	return pr
}

// writeStats prints the move history, repetitions and quiet-move count.
func writeStats(w io.Writer, g *engine.Game) {
	moves := g.Moves()
	fmt.Fprintf(w, "Move history (custom):\n\t%s\n", output.HistoryCompact(moves))
	fmt.Fprintf(w, "Move history (verbose input PGN):\n\t%s\n", output.HistoryPGN(moves, g.Ply()-len(moves)))
	output.Repetitions(w, g.Board())
	fmt.Fprintf(w, "Moves since last Pawn move or capture:\n\t%d\n", g.Board().MovesSincePawnMoveOrCapture())
}

// collector is the single consumer of finished games.
type collector struct {
	cfg     *config.Config
	sum     *Summary
	dups    *hashing.ThreadSafeDuplicateDetector
	writers []output.GameWriter
	err     error
}

// newCollector sets up the record writers. JSON is written game by game
// when stream is set, as one document otherwise.
func newCollector(cfg *config.Config, stream bool) *collector {
	c := &collector{
		cfg: cfg,
		sum: &Summary{Histogram: make(map[engine.State]int)},
	}
	if cfg.Duplicate.Detect {
		c.dups = hashing.NewThreadSafeDuplicateDetector(cfg.Duplicate.ExactMatch, cfg.Duplicate.MaxPositions)
	}
	switch {
	case cfg.Output.JSONFormat && stream:
		c.writers = append(c.writers, output.NewJSONWriterSingle(cfg.OutputFile))
	case cfg.Output.JSONFormat:
		c.writers = append(c.writers, output.NewJSONWriter(cfg.OutputFile))
	}
	if cfg.Output.PGNFile != nil {
		c.writers = append(c.writers, output.NewPGNWriter(cfg.Output.PGNFile, int(cfg.Output.MaxLineLength)))
	}
	return c
}

// fail keeps the first error.
func (c *collector) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

// add records a finished game and reports whether the match goes on.
func (c *collector) add(res worker.ProcessResult) bool {
	if c.err != nil || c.sum.Quit {
		return false
	}
	if res.Err != nil {
		c.fail(fmt.Errorf("game %d: %w", res.Index+1, res.Err))
		return false
	}
	info, ok := res.Info.(*gameInfo)
	if !ok {
		c.fail(fmt.Errorf("game %d: no result", res.Index+1))
		return false
	}
	if len(info.transcript) > 0 {
		if _, err := c.cfg.OutputFile.Write(info.transcript); err != nil {
			c.fail(err)
			return false
		}
	}
	if info.result.Quit {
		c.sum.Quit = true
		return false
	}

	g := res.Game
	gs := GameSummary{
		Index:     res.Index,
		ID:        g.ID,
		State:     res.State,
		Plies:     len(g.Moves()),
		Truncated: info.result.Truncated,
	}
	if c.dups != nil && c.dups.CheckAndAdd(g.Board()) {
		gs.Duplicate = true
		c.sum.Duplicates++
	}
	c.sum.Games = append(c.sum.Games, gs)
	c.sum.Histogram[res.State]++
	if winner, ok := res.State.Winner(); ok {
		c.sum.Wins[winner]++
	} else if res.State.End == engine.Draw {
		c.sum.Draws++
	}

	rec := output.NewGameRecord(g, res.State, res.Index, c.cfg.Output.Event, c.cfg.Output.Site, c.cfg.PlayerNames)
	for _, w := range c.writers {
		if err := w.WriteGame(rec); err != nil {
			c.fail(err)
			return false
		}
	}
	return true
}

// finish closes the writers and prints the match records.
func (c *collector) finish(ctx context.Context) (*Summary, error) {
	if err := ctx.Err(); err != nil {
		c.fail(err)
	}
	for _, w := range c.writers {
		if err := w.Close(); err != nil {
			c.fail(err)
		}
	}
	if c.dups != nil {
		c.sum.Distinct = c.dups.UniqueCount()
		if c.dups.IsFull() {
			c.cfg.Logf(config.LogWarn, "Duplicate table full; later positions were not stored\n")
		}
	}
	slices.SortFunc(c.sum.Games, func(a, b GameSummary) bool { return a.Index < b.Index })

	if !c.cfg.Output.JSONFormat && !c.sum.Quit && len(c.sum.Games) > 0 {
		c.sum.Write(c.cfg.OutputFile, c.cfg.Output.Summary)
		if c.dups != nil {
			fmt.Fprintf(c.cfg.OutputFile, "Duplicate final positions: %d, distinct: %d\n", c.sum.Duplicates, c.sum.Distinct)
		}
	}
	c.cfg.Logf(config.LogInfo, "Match over: %d games, %d duplicates\n", len(c.sum.Games), c.sum.Duplicates)
	return c.sum, c.err
}

// States returns the distinct end states, most frequent first.
func (s *Summary) States() []engine.State {
	states := maps.Keys(s.Histogram)
	slices.SortFunc(states, func(a, b engine.State) bool {
		if s.Histogram[a] != s.Histogram[b] {
			return s.Histogram[a] > s.Histogram[b]
		}
		return a.String() < b.String()
	})
	return states
}

// Write prints the match records. The concise form counts each end state;
// the full form lists every game as well.
func (s *Summary) Write(w io.Writer, mode config.SummaryMode) {
	fmt.Fprintf(w, "Match records (%d games):\n", len(s.Games))
	for _, st := range s.States() {
		fmt.Fprintf(w, "\t%-5dinstances: %s\n", s.Histogram[st], st)
	}
	if mode != config.FullSummary {
		return
	}
	fmt.Fprintf(w, "\tWhite wins: %d, Black wins: %d, draws: %d\n", s.Wins[chess.White], s.Wins[chess.Black], s.Draws)
	for _, gs := range s.Games {
		fmt.Fprintf(w, "\t%-6s%-4d plies  %s  %s\n", fmt.Sprintf("%d.", gs.Index+1), gs.Plies, gs.State, gs.ID)
	}
}
