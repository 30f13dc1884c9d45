// Package match plays games between two strategies and runs series of
// games on the worker pool.
package match

import (
	"context"
	"fmt"
	"io"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/config"
	"github.com/lgbarn/chesscore/internal/engine"
	"github.com/lgbarn/chesscore/internal/output"
	"github.com/lgbarn/chesscore/internal/strategy"
)

// Result is the outcome of one game.
type Result struct {
	Game  *engine.Game
	State engine.State

	// Quit is set when a player left the game. State is then in play.
	Quit bool

	// Truncated is set when the ply limit stopped the game.
	Truncated bool
}

// table is one game in progress.
type table struct {
	cfg     *config.Config
	g       *engine.Game
	players [chess.NumColours]strategy.Strategy
	out     io.Writer

	// moves are the legal moves of the side to play.
	moves engine.MoveMap
}

// Play runs g to the end with white and black choosing the moves. The turn
// display and final board are written to out.
func Play(ctx context.Context, cfg *config.Config, g *engine.Game, white, black strategy.Strategy, out io.Writer) (Result, error) {
	t := &table{
		cfg:     cfg,
		g:       g,
		players: [chess.NumColours]strategy.Strategy{white, black},
		out:     out,
	}
	res := Result{Game: g}

	// A start position may already be over.
	mover := g.ToMove()
	t.moves = engine.LegalMoves(g, mover)
	res.State = engine.ComputeState(g, mover.Opposite(), false, t.moves)

	for !res.State.Terminal() {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if cfg.Match.MaxPlies > 0 && len(g.Moves()) >= cfg.Match.MaxPlies {
			cfg.Logf(config.LogInfo, "Game %s stopped after %d plies\n", g.ID, len(g.Moves()))
			res.Truncated = true
			break
		}

		if cfg.Output.ShowBoard {
			fmt.Fprintf(out, "Turn #%d (%s):\n", g.Ply(), g.ToMove())
			output.Board(out, g.Board())
		}

		state, quit, err := t.turn(ctx)
		if err != nil {
			return res, err
		}
		if quit {
			cfg.Logf(config.LogInfo, "Game %s abandoned at ply %d\n", g.ID, g.Ply())
			res.Quit = true
			return res, nil
		}
		res.State = state
	}

	fmt.Fprintln(out, "Final board layout:")
	output.Board(out, g.Board())
	fmt.Fprintf(out, "Game over: %s\n", res.State)
	cfg.Logf(config.LogInfo, "Game %s: %s after %d plies\n", g.ID, res.State, len(g.Moves()))
	return res, nil
}

// turn asks the side to move until it plays a move or ends the game.
func (t *table) turn(ctx context.Context) (engine.State, bool, error) {
	g := t.g
	c := g.ToMove()
	for {
		d, err := t.players[c].Choose(ctx, g, c, t.moves)
		if err != nil {
			return engine.State{}, false, fmt.Errorf("%s at ply %d: %w", c, g.Ply(), err)
		}

		switch d.Action {
		case strategy.Quit:
			return engine.State{}, true, nil

		case strategy.ClaimDraw:
			s, err := engine.ClaimDraw(g, c)
			if err != nil {
				t.cfg.Logf(config.LogWarn, "%v\n", err)
				continue
			}
			return s, false, nil

		case strategy.Concede:
			return engine.Concede(c), false, nil

		case strategy.ProposeWin, strategy.ProposeDraw:
			s, ok, err := t.propose(ctx, c, d.Action)
			if err != nil {
				return engine.State{}, false, err
			}
			if ok {
				return s, false, nil
			}

		case strategy.PlayMove:
			if t.cfg.Output.ShowBoard {
				fmt.Fprintf(t.out, "%-4s Moved: %s\n", fmt.Sprintf("%d.", g.Ply()), output.CompactMove(d.Move))
			}
			g.Apply(d.Move)
			s, replies := engine.NextState(g, c, d.ClaimDraw)
			t.moves = replies
			if last, ok := g.LastApplied(); ok {
				t.cfg.Logf(config.LogDebug, "Game %s ply %d: %s %s, %d replies\n", g.ID, g.Ply()-1, c, last.Notation(), replies.Count())
			}
			if s.IsCheck {
				opp := c.Opposite()
				king := g.Board().King(opp)
				t.cfg.Logf(config.LogTrace, "Game %s: %s king on %s attacked by %d\n", g.ID, opp, king.Square, len(engine.Attackers(g, king.Square, opp)))
			}
			if t.cfg.Output.ShowBoard {
				fmt.Fprintln(t.out, "-------------------------")
			}
			return s, false, nil
		}
	}
}

// propose puts a win or draw proposal by c to the opponent. Only an
// interactive opponent can answer; otherwise c must choose again.
func (t *table) propose(ctx context.Context, c chess.Colour, a strategy.Action) (engine.State, bool, error) {
	opp := t.players[c.Opposite()]
	prop, end := strategy.AcceptDraw, engine.Draw
	if a == strategy.ProposeWin {
		prop, end = strategy.AcceptLoss, engine.WinFor(c)
	}

	if !opp.Interactive() {
		if prop == strategy.AcceptDraw {
			fmt.Fprintln(t.out, "Cannot offer a draw to a non-human Player.")
		} else {
			fmt.Fprintln(t.out, "Cannot propose resigning to a non-human Player.")
		}
		return engine.State{}, false, nil
	}

	ok, err := opp.Respond(ctx, t.g, c.Opposite(), prop)
	if err != nil {
		return engine.State{}, false, err
	}
	if !ok {
		return engine.State{}, false, nil
	}
	return engine.Agreed(end, c), true, nil
}
