package worker

import "sync/atomic"

// WorkerPool manages a pool of workers to process tasks
type WorkerPool struct {
	workers []*Worker
	next    atomic.Uint64
	stop    chan struct{}
}

// NewWorkerPool creates a new WorkerPool with the specified number of workers
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers < 1 {
		numWorkers = 1
	}

	pool := &WorkerPool{
		workers: make([]*Worker, numWorkers),
		stop:    make(chan struct{}),
	}

	for i := 0; i < numWorkers; i++ {
		worker := NewWorker()
		worker.Start()
		pool.workers[i] = worker
	}

	return pool
}

// Stop stops all workers in the pool
func (p *WorkerPool) Stop() {
	for _, worker := range p.workers {
		worker.Stop()
	}
	close(p.stop)
}

// Submit dispatches a task to the next worker in round-robin order
func (p *WorkerPool) Submit(task Task) {
	idx := p.next.Add(1) - 1
	worker := p.workers[idx%uint64(len(p.workers))]
	worker.Submit(task)
}
