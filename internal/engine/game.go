// Package engine implements the chess rules over a chess.Board: attacks,
// legal move generation, applying and undoing moves, and game-end detection.
package engine

import (
	"github.com/google/uuid"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/hashing"
)

// Game is the context for one game: the board, the stack of applied moves,
// and an identifier. Game values are not safe for concurrent use.
type Game struct {
	ID uuid.UUID

	board *chess.Board
	moves []chess.Move

	// The double step that preceded a position loaded with an en passant
	// target. Only consulted while no move has been applied.
	seed *chess.Move
}

// NewGame wraps b in a new game and records its position for repetition counting.
func NewGame(b *chess.Board) *Game {
	g := &Game{
		ID:    uuid.New(),
		board: b,
	}
	b.RecordHash(b.ToMove(), hashing.ZobristHash(b))
	return g
}

// NewStandardGame starts a game from the standard initial position.
func NewStandardGame() *Game {
	return NewGame(chess.NewInitialBoard())
}

// Board returns the game's board. Callers must not mutate it directly.
func (g *Game) Board() *chess.Board { return g.board }

// Ply returns the number of the half-move about to be played.
func (g *Game) Ply() int { return g.board.Ply() }

// ToMove returns the colour whose turn it is.
func (g *Game) ToMove() chess.Colour { return g.board.ToMove() }

// Moves returns a copy of the applied moves, oldest first.
func (g *Game) Moves() []chess.Move {
	out := make([]chess.Move, len(g.moves))
	copy(out, g.moves)
	return out
}

// LastMove returns the most recently applied move, or the seed move of a
// position loaded from FEN.
func (g *Game) LastMove() (chess.Move, bool) {
	if n := len(g.moves); n > 0 {
		return g.moves[n-1], true
	}
	if g.seed != nil {
		return *g.seed, true
	}
	return chess.Move{}, false
}

// Annotate sets the check annotation of the most recent move.
func (g *Game) Annotate(check chess.CheckStatus) {
	if len(g.moves) == 0 {
		panic("annotate: no move applied")
	}
	g.moves[len(g.moves)-1].Check = check
}

// Clone returns an independent copy of the game with the same ID.
func (g *Game) Clone() *Game {
	ng := &Game{
		ID:    g.ID,
		board: g.board.Clone(),
		moves: g.Moves(),
	}
	if g.seed != nil {
		seed := *g.seed
		ng.seed = &seed
	}
	return ng
}

// withMove applies m, runs fn, and undoes m on every exit path.
func (g *Game) withMove(m chess.Move, fn func()) {
	g.Apply(m)
	defer g.Undo()
	fn()
}
