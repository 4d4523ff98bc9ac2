// Package tilescheduler distributes a frame's rasterization work across a
// fixed pool of persistent worker goroutines, one disjoint horizontal band
// per worker, each holding exactly one {job, rect} slot at a time: a
// persistent worker with an Idle/Busy lifecycle driven by claim/assign/Wait,
// rather than a spawn-per-tile goroutine pool.
package tilescheduler

import (
	"sync"

	"github.com/oxy-go/swrast/raster"
)

type workerState int

const (
	stateIdle workerState = iota
	stateBusy
)

type worker struct {
	mu    sync.Mutex
	idle  sync.Cond
	busy  sync.Cond
	state workerState
	job   func()
	run   bool
}

func newWorker() *worker {
	w := &worker{run: true}
	w.idle.L = &w.mu
	w.busy.L = &w.mu
	go w.loop()
	return w
}

func (w *worker) loop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for {
		for w.job == nil && w.run {
			w.idle.Wait()
		}
		if !w.run {
			return
		}
		job := w.job
		w.mu.Unlock()
		job()
		w.mu.Lock()
		w.job = nil
		w.state = stateIdle
		w.busy.Broadcast()
	}
}

// claim marks the worker busy without assigning a job yet, returning false
// if it was already busy.
func (w *worker) claim() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state == stateBusy {
		return false
	}
	w.state = stateBusy
	return true
}

// assign hands a job to a worker already marked busy via claim.
func (w *worker) assign(job func()) {
	w.mu.Lock()
	w.job = job
	w.idle.Signal()
	w.mu.Unlock()
}

// Wait blocks until this worker returns to idle.
func (w *worker) Wait() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for w.state == stateBusy {
		w.busy.Wait()
	}
}

func (w *worker) stop() {
	w.mu.Lock()
	w.run = false
	w.idle.Signal()
	w.mu.Unlock()
}

// Pool is a fixed set of persistent worker goroutines that rasterize a
// frame's horizontal bands concurrently, one band per worker per frame.
// There is no work queue and no work-stealing: Dispatch hands each worker
// at most one execute call per invocation, in lockstep with TileRects.
type Pool struct {
	workers []*worker
}

// NewPool creates a Pool with n persistent workers. n is clamped to at
// least 1.
func NewPool(n int) *Pool {
	if n < 1 {
		n = 1
	}
	p := &Pool{workers: make([]*worker, n)}
	for i := range p.workers {
		p.workers[i] = newWorker()
	}
	return p
}

// WorkerCount returns the number of persistent workers in the pool.
func (p *Pool) WorkerCount() int {
	return len(p.workers)
}

// TileRects partitions [0, renderHeight) into n disjoint horizontal bands,
// each spanning the full renderW, for exactly n workers to execute one-to-
// one. Band heights differ by at most one row: the first renderHeight%n
// bands get one extra row so every row in [0, renderHeight) is covered by
// exactly one band.
func TileRects(renderW, renderHeight, n int) []raster.Rect {
	if n < 1 {
		n = 1
	}
	base := renderHeight / n
	rem := renderHeight % n

	tiles := make([]raster.Rect, 0, n)
	y := 0
	for i := 0; i < n; i++ {
		h := base
		if i < rem {
			h++
		}
		if h == 0 {
			continue
		}
		tiles = append(tiles, raster.Rect{X: 0, Y: y, W: renderW, H: h})
		y += h
	}
	return tiles
}

// Dispatch issues exactly one execute call per tile to the worker at the
// same index and blocks until every dispatched worker returns to idle.
// len(tiles) must not exceed the pool's worker count; per the scheduler
// contract, a band whose worker is still Busy is dropped silently rather
// than queued or redistributed to another worker.
func (p *Pool) Dispatch(tiles []raster.Rect, fn func(tile raster.Rect)) {
	for i, t := range tiles {
		if i >= len(p.workers) {
			break
		}
		tile := t
		w := p.workers[i]
		if !w.claim() {
			continue
		}
		w.assign(func() { fn(tile) })
	}
	p.WaitAll()
}

// WaitAll blocks until every worker in the pool is idle.
func (p *Pool) WaitAll() {
	for _, w := range p.workers {
		w.Wait()
	}
}

// Close stops every worker goroutine. The pool must not be used afterward.
func (p *Pool) Close() {
	for _, w := range p.workers {
		w.stop()
	}
}
