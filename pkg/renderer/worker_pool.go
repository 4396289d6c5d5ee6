package renderer

import (
	"sync"
)

// WorkerPool splits image rows into stripes: worker i owns every row y
// with y mod numWorkers == i. Workers never share rows, so they need no
// locking and no communication until they are all done.
type WorkerPool struct {
	numWorkers int
	height     int
}

// NewWorkerPool creates a pool of numWorkers workers over height rows
func NewWorkerPool(numWorkers, height int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = 1
	}
	return &WorkerPool{numWorkers: numWorkers, height: height}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Rows returns the rows owned by the given worker in ascending order
func (wp *WorkerPool) Rows(workerID int) []int {
	var rows []int
	for y := workerID; y < wp.height; y += wp.numWorkers {
		rows = append(rows, y)
	}
	return rows
}

// Run starts one goroutine per worker and blocks until all of them return.
// The result slice is indexed by worker ID.
func (wp *WorkerPool) Run(work func(workerID int, rows []int) WorkerStats) []WorkerStats {
	results := make([]WorkerStats, wp.numWorkers)

	var wg sync.WaitGroup
	for i := 0; i < wp.numWorkers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			results[id] = work(id, wp.Rows(id))
		}(i)
	}
	wg.Wait()

	return results
}
