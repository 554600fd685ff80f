package concurrent

import (
	"sync"
)

/*
WorkerPool. fixed number of goroutines draining a buffered job queue.

	workers := NewWorkerPool[BuildConnectorParam, result](8, len(mwms))
	for _, mwm := range mwms {
		workers.AddJob(NewBuildConnectorParam(mwm))
	}
	workers.Close()
	workers.Start(build)
	workers.Wait()
	for res := range workers.CollectResults() { ... }

both queues are sized for numJobs, so AddJob never blocks when at most numJobs jobs are added.
*/
type WorkerPool[T JobI, G any] struct {
	numWorkers int
	jobQueue   chan T
	results    chan G
	wg         sync.WaitGroup
}

func NewWorkerPool[T JobI, G any](numWorkers, numJobs int) *WorkerPool[T, G] {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &WorkerPool[T, G]{
		numWorkers: numWorkers,
		jobQueue:   make(chan T, numJobs),
		results:    make(chan G, numJobs),
	}
}

func (w *WorkerPool[T, G]) AddJob(job T) {
	w.jobQueue <- job
}

// Close marks the end of jobs.
func (w *WorkerPool[T, G]) Close() {
	close(w.jobQueue)
}

func (w *WorkerPool[T, G]) Start(jobFunc JobFunc[T, G]) {
	for i := 0; i < w.numWorkers; i++ {
		w.wg.Add(1)
		go w.worker(jobFunc)
	}
}

func (w *WorkerPool[T, G]) worker(jobFunc JobFunc[T, G]) {
	defer w.wg.Done()
	for job := range w.jobQueue {
		w.results <- jobFunc(job)
	}
}

// Wait blocks until every job is done and closes the results.
func (w *WorkerPool[T, G]) Wait() {
	w.wg.Wait()
	close(w.results)
}

func (w *WorkerPool[T, G]) CollectResults() <-chan G {
	return w.results
}
