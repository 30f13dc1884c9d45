package hashing

import (
	"sync"

	"github.com/lgbarn/chesscore/internal/chess"
)

// ThreadSafeDuplicateDetector wraps DuplicateDetector with mutex protection
// for games finishing on several workers.
type ThreadSafeDuplicateDetector struct {
	detector *DuplicateDetector
	mu       sync.RWMutex
}

// NewThreadSafeDuplicateDetector creates a new thread-safe detector.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafeDuplicateDetector(exactMatch bool, maxCapacity int) *ThreadSafeDuplicateDetector {
	return &ThreadSafeDuplicateDetector{
		detector: NewDuplicateDetector(exactMatch, maxCapacity),
	}
}

// CheckAndAdd atomically checks whether the final position was seen and records it.
// The board is hashed before the lock is taken.
func (d *ThreadSafeDuplicateDetector) CheckAndAdd(board *chess.Board) bool {
	if board == nil {
		return false
	}
	sig := Signature(board)

	d.mu.Lock()
	defer d.mu.Unlock()
	return d.detector.checkAndAddSignature(sig)
}

// DuplicateCount returns the number of duplicates detected.
func (d *ThreadSafeDuplicateDetector) DuplicateCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.detector.DuplicateCount()
}

// UniqueCount returns the number of unique final positions.
func (d *ThreadSafeDuplicateDetector) UniqueCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.detector.UniqueCount()
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *ThreadSafeDuplicateDetector) IsFull() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.detector.IsFull()
}
