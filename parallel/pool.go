// Package parallel provides the worker pool that fans batch conversion out
// over goroutines.
package parallel

import (
	"runtime"
	"sync"
)

type (
	WorkerFunc func(func())
	WaitFunc   func(done bool)
)

// Pool runs submitted jobs on a fixed set of goroutines. A single-worker
// pool runs jobs inline, which keeps one-file runs deterministic.
type Pool struct {
	wg     sync.WaitGroup
	queue  chan func()
	closeq func()
}

// Start launches a pool. numWorkers below 1 means one worker per CPU.
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{}
	if numWorkers == 1 {
		return p
	}

	p.queue = make(chan func(), numWorkers)
	p.closeq = sync.OnceFunc(func() { close(p.queue) })

	for i := 0; i < numWorkers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for f := range p.queue {
				f()
			}
		}()
	}

	return p
}

// Do submits f to the pool, or runs it inline for a single-worker pool.
func (p *Pool) Do(f func()) {
	if p.queue == nil {
		f()
		return
	}
	p.queue <- f
}

// Wait blocks until all submitted work has finished. done closes the
// queue first so workers exit once it drains; Do must not be called after
// Wait(true).
func (p *Pool) Wait(done bool) {
	if p.queue == nil {
		return
	}
	if done {
		p.Cancel()
	}
	p.wg.Wait()
}

// Cancel closes the queue. Already-queued jobs still run.
func (p *Pool) Cancel() {
	if p.closeq != nil {
		p.closeq()
	}
}
