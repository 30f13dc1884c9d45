package hashing

import (
	"math/rand"
	"sync"

	"github.com/lgbarn/chesscore/internal/chess"
)

// Zobrist keys indexed by square, colour and piece type.
var (
	zobristOnce  sync.Once
	zobristTable [chess.NumSquares][chess.NumColours][chess.NumPieceTypes]uint64
)

// A fixed seed so that hashes are stable across runs.
const zobristSeed = 0x5EED_C0DE

func initZobrist() {
	rnd := rand.New(rand.NewSource(zobristSeed))
	for sq := range zobristTable {
		for c := range zobristTable[sq] {
			for t := range zobristTable[sq][c] {
				zobristTable[sq][c][t] = rnd.Uint64()
			}
		}
	}
}

// ZobristHash computes the hash of the piece placement on b.
// Only piece placement is hashed; repetition records are kept per side to move.
func ZobristHash(b *chess.Board) uint64 {
	zobristOnce.Do(initZobrist)

	var key uint64
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		if p, ok := b.PieceAt(sq); ok {
			key ^= zobristTable[sq][p.Colour][p.Type]
		}
	}
	return key
}

// WeakHash is a fast additive hash of the placement, used as a secondary
// check against Zobrist collisions.
func WeakHash(b *chess.Board) uint32 {
	var h uint32
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		if p, ok := b.PieceAt(sq); ok {
			code := uint32(p.Type) + uint32(p.Colour)*uint32(chess.NumPieceTypes)
			h += (uint32(sq) + 1) * (code + 1) * 2654435761
		}
	}
	return h
}
