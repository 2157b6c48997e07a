package workers

import "context"

// Workers runs a fixed set of workers together.
type Workers struct {
	workers []Worker
}

func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker in order.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Stop stops the workers in reverse order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
