package strategy

import (
	"context"
	"math/rand"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/engine"
	"github.com/lgbarn/chesscore/internal/errors"
)

// Random plays a uniformly random legal move. Promotions are to a queen.
type Random struct {
	rng           *rand.Rand
	preferCapture bool
}

// NewRandom creates a random player seeded with seed.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// NewRandomCapture creates a random player that captures whenever it can.
func NewRandomCapture(seed int64) *Random {
	r := NewRandom(seed)
	r.preferCapture = true
	return r
}

// Name returns "random" or "random-capture".
func (r *Random) Name() string {
	if r.preferCapture {
		return "random-capture"
	}
	return "random"
}

// Interactive is false; random players are never asked to agree.
func (r *Random) Interactive() bool { return false }

// Choose picks a move. Candidates are sorted first so a seed always
// reproduces the same game.
func (r *Random) Choose(ctx context.Context, _ *engine.Game, _ chess.Colour, moves engine.MoveMap) (Decision, error) {
	if err := ctx.Err(); err != nil {
		return Decision{}, err
	}
	candidates := moves
	if r.preferCapture {
		if captures := moves.Captures(); captures.Count() > 0 {
			candidates = captures
		}
	}
	all := candidates.All()
	if len(all) == 0 {
		return Decision{}, errors.ErrGameOver
	}
	return Decision{Action: PlayMove, Move: all[r.rng.Intn(len(all))]}, nil
}

// Respond declines every proposal.
func (r *Random) Respond(context.Context, *engine.Game, chess.Colour, Proposal) (bool, error) {
	return false, nil
}
