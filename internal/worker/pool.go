// Package worker provides a worker pool that plays games in parallel.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chesscore/internal/engine"
)

// WorkItem identifies one game of a match.
type WorkItem struct {
	Index int   // Position in the match, 0-based
	Seed  int64 // Seed for the game's random players
}

// ProcessResult is a finished (or abandoned) game.
type ProcessResult struct {
	Index int
	Game  *engine.Game
	State engine.State
	Info  any // Opaque per-game payload; typed by consumer
	Err   error
}

// ProcessFunc plays the game described by item. It should return promptly
// once ctx is cancelled.
type ProcessFunc func(ctx context.Context, item WorkItem) ProcessResult

// Pool runs a fixed number of workers over submitted games.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopped     atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool. Default: 1 worker, buffer size of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines. Cancelling ctx stops them from
// starting new games.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

// worker plays items from the work channel until it is closed.
func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() || ctx.Err() != nil {
			continue // Drain channel without playing
		}
		p.resultChan <- p.processFunc(ctx, item)
	}
}

// Submit queues a game, blocking while the buffer is full. It returns
// ctx.Err() if ctx is cancelled first.
func (p *Pool) Submit(ctx context.Context, item WorkItem) error {
	select {
	case p.workChan <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop signals workers to skip the games still queued.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close closes the work channel and waits for all workers to finish.
// The result channel is closed once they have.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading finished games.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
