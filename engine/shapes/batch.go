package shapes

import (
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/mesh-go/engine/geometry"
)

// GenerateBatch builds many meshes concurrently on a bounded worker pool and
// returns them in generator order. Each mesh is built entirely by a single
// worker, so the unsynchronized Mesh contract is preserved — no mesh is ever
// touched by two goroutines.
//
// A WaitGroup provides the completion barrier since the pool's own Wait blocks
// until workers idle-exit, which is unsuitable for a one-shot batch.
//
// Parameters:
//   - workers: the worker count; values < 1 default to NumCPU-1 (minimum 1)
//   - generators: one function per mesh to build
//
// Returns:
//   - []geometry.Mesh: the generated meshes, index-aligned with generators
func GenerateBatch(workers int, generators ...func() geometry.Mesh) []geometry.Mesh {
	if len(generators) == 0 {
		return nil
	}
	if workers < 1 {
		workers = max(runtime.NumCPU()-1, 1)
	}

	meshes := make([]geometry.Mesh, len(generators))
	pool := worker.NewDynamicWorkerPool(workers, len(generators), 1*time.Second)

	var wg sync.WaitGroup
	for i, generate := range generators {
		wg.Add(1)
		slot := i
		gen := generate
		pool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				meshes[slot] = gen()
				return nil, nil
			},
		})
	}
	wg.Wait()

	return meshes
}
