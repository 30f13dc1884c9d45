package strategy

import (
	"context"
	"fmt"
	"io"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/config"
	"github.com/lgbarn/chesscore/internal/engine"
	"github.com/lgbarn/chesscore/internal/errors"
	"github.com/lgbarn/chesscore/internal/output"
	"github.com/lgbarn/chesscore/internal/parser"
)

const helpText = `Move entry:
  * Give the square moved from and the square moved to, e.g. "e2 e4".
    Castle by moving the king two squares, e.g. "e1 g1".
  * A promotion may name the new piece (Q, R, B or N), e.g. "b7 b8 N".
    Without a letter the pawn becomes a queen.
  * A move may be followed by "draw" to claim a draw after it.

Other types of "moves":
  * draw     Claim a draw by 3x repetition or the 50 move rule.
  * concede  Concede the game.
  * win?     Propose that the other player concede.
  * draw?    Propose a draw.

Special commands:
  * board        Print out the board.
  * history      Show move history in a compact format.
  * pgn          Show move history in PGN input format.
  * moves [sq]   Show legal moves, optionally from one square.
  * pieces       List the pieces on the board.
  * repetitions  List repeated positions.
  * log_level    Display the current log reporting level.
  * log_error, log_warn, log_info, log_debug, log_trace
                 Change the current log reporting level.
  * exit / quit  Exit the game.
`

// Console is a human player reading moves from a line parser.
type Console struct {
	cfg *config.Config
	in  *parser.Parser
	out io.Writer
}

// NewConsole creates a console player. Two console players may share in.
func NewConsole(cfg *config.Config, in *parser.Parser, out io.Writer) *Console {
	return &Console{cfg: cfg, in: in, out: out}
}

// Name returns "human".
func (p *Console) Name() string { return "human" }

// Interactive is true.
func (p *Console) Interactive() bool { return true }

// Choose prompts until the player enters a legal move or a game action.
// Commands are answered in place. End of input quits.
func (p *Console) Choose(ctx context.Context, g *engine.Game, c chess.Colour, moves engine.MoveMap) (Decision, error) {
	claimable, _ := engine.ClaimDraw(g, c)

	fmt.Fprintln(p.out, "========================================")
	fmt.Fprintf(p.out, "%s (%s) to play.\n", c, p.cfg.PlayerName(c))
	if engine.IsInCheck(g, c) {
		fmt.Fprintln(p.out, "You are in check.")
	}
	if claimable.Draws != 0 {
		fmt.Fprint(p.out, "Game can be called a draw: ")
		if claimable.Draws.Has(engine.DrawClaimed3xRepetition) {
			fmt.Fprint(p.out, "3x Repetition. ")
		}
		if claimable.Draws.Has(engine.DrawClaimed50MoveRule) {
			fmt.Fprint(p.out, "50 Move Rule. ")
		}
		fmt.Fprintln(p.out)
	}

	for {
		if err := ctx.Err(); err != nil {
			return Decision{}, err
		}
		fmt.Fprintf(p.out, "Enter move #%d", g.Ply())
		if claimable.Draws != 0 {
			fmt.Fprint(p.out, " or 'draw' to claim draw")
		}
		fmt.Fprint(p.out, " (or '?' for more options): ")

		in, err := p.in.Next()
		if err == io.EOF {
			fmt.Fprintln(p.out)
			return Decision{Action: Quit}, nil
		}
		if err != nil {
			var pe *errors.ParseError
			if !errors.As(err, &pe) {
				return Decision{}, err
			}
			fmt.Fprintf(p.out, "Unrecognized input: %v\n", err)
			continue
		}
		p.cfg.Logf(config.LogDebug, "Command entered (line %d): %s\n", p.in.LineNumber(), in.Text)

		switch in.Kind {
		case parser.Empty:
			continue
		case parser.CommandInput:
			if in.Command == parser.Quit {
				return Decision{Action: Quit}, nil
			}
			p.command(g, c, moves, in)
			continue
		case parser.ClaimDraw:
			if claimable.Draws == 0 {
				fmt.Fprintln(p.out, "There are no draw-claimable conditions present.")
				continue
			}
			return Decision{Action: ClaimDraw}, nil
		case parser.Concede:
			return Decision{Action: Concede}, nil
		case parser.ProposeWin:
			return Decision{Action: ProposeWin}, nil
		case parser.ProposeDraw:
			return Decision{Action: ProposeDraw}, nil
		}

		m, err := parser.ResolveMove(g, c, moves, in)
		switch {
		case err == nil:
			return Decision{Action: PlayMove, Move: m, ClaimDraw: in.ClaimDraw}, nil
		case errors.Is(err, errors.ErrEmptySquare), errors.Is(err, errors.ErrNotYourPiece):
			fmt.Fprintln(p.out, "There are no moves from that board location.")
		case errors.Is(err, errors.ErrIllegalMove):
			fmt.Fprintln(p.out, "That is not a legal move.")
		default:
			fmt.Fprintf(p.out, "%v\n", err)
		}
	}
}

// command answers a request that does not use up the turn.
func (p *Console) command(g *engine.Game, c chess.Colour, moves engine.MoveMap, in parser.Input) {
	b := g.Board()
	history := g.Moves()
	switch in.Command {
	case parser.Help:
		fmt.Fprintln(p.out, helpText)
	case parser.ShowBoard:
		output.Board(p.out, b)
	case parser.ShowHistory:
		fmt.Fprintln(p.out, output.HistoryCompact(history))
	case parser.ShowPGN:
		fmt.Fprintln(p.out, output.HistoryPGN(history, g.Ply()-len(history)))
	case parser.ShowMoves:
		if in.Square != chess.NoSquare {
			only := engine.MoveMap{}
			if ms, ok := moves[in.Square]; ok {
				only[in.Square] = ms
			}
			moves = only
		}
		output.MoveMapText(p.out, b, moves)
	case parser.ShowPieces:
		output.Pieces(p.out, b)
	case parser.ShowRepetitions:
		output.Repetitions(p.out, b)
	case parser.ShowLogLevel:
		fmt.Fprintf(p.out, "Log reporting level = %s\n", p.cfg.Verbosity())
	case parser.SetLogLevel:
		p.cfg.SetVerbosity(in.LogLevel)
		fmt.Fprintf(p.out, "Log level set to %s\n", in.LogLevel)
	}
}

// Respond asks the player, prefixed with their name, until they answer
// "y" or "n". End of input declines.
func (p *Console) Respond(ctx context.Context, g *engine.Game, c chess.Colour, prop Proposal) (bool, error) {
	msg := "Do you accept a Draw (y/n)? "
	if prop == AcceptLoss {
		msg = "Do you agree to concede (y/n)? "
	}
	return AskYesNo(ctx, p.in, p.out, p.cfg.PlayerName(c)+": "+msg)
}

// AskYesNo prints prompt and reads lines until one is "y" or "n".
func AskYesNo(ctx context.Context, in *parser.Parser, out io.Writer, prompt string) (bool, error) {
	fmt.Fprint(out, prompt)
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		line, err := in.ReadLine()
		if err == io.EOF {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		switch line {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
		if len(line) != 1 {
			fmt.Fprintln(out, "Please enter simply 'y' or 'n'.")
		}
	}
}
