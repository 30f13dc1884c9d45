// Package hashing provides Zobrist position hashing and duplicate detection
// of finished games by their final position.
package hashing

import (
	"github.com/lgbarn/chesscore/internal/chess"
)

// DuplicateDetector tracks the final positions of finished games.
type DuplicateDetector struct {
	// hashTable stores seen final positions keyed by Zobrist hash
	hashTable map[uint64][]GameSignature
	// useExactMatch also requires equal game lengths
	useExactMatch bool
	// duplicateCount tracks number of duplicates found
	duplicateCount int
	// maxCapacity bounds the number of stored signatures (0 = unlimited)
	maxCapacity int
	size        int
}

// GameSignature stores identifying information about a finished game.
type GameSignature struct {
	// Hash is the Zobrist hash of the final position
	Hash uint64
	// PlyCount is the number of half-moves played
	PlyCount int
	// WeakHash is a fast hash for quick comparison
	WeakHash uint32
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]GameSignature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// Signature builds the signature of the position on b.
func Signature(b *chess.Board) GameSignature {
	return GameSignature{
		Hash:     ZobristHash(b),
		PlyCount: b.Ply() - 1,
		WeakHash: WeakHash(b),
	}
}

// CheckAndAdd checks whether the final position on board was seen before and
// records it. Returns true if the game is a duplicate.
func (d *DuplicateDetector) CheckAndAdd(board *chess.Board) bool {
	if board == nil {
		return false
	}
	return d.checkAndAddSignature(Signature(board))
}

func (d *DuplicateDetector) checkAndAddSignature(sig GameSignature) bool {
	if existing, ok := d.hashTable[sig.Hash]; ok {
		for _, existingSig := range existing {
			if d.signaturesMatch(sig, existingSig) {
				d.duplicateCount++
				return true
			}
		}
	}

	// Once full, new positions are still reported as unique but not stored.
	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.size++
	return false
}

// signaturesMatch checks if two game signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	if d.useExactMatch && a.PlyCount != b.PlyCount {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique final positions stored.
func (d *DuplicateDetector) UniqueCount() int {
	return d.size
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.size >= d.maxCapacity
}

