package workers

type Workers struct {
	workers []Worker
}

// NewWorkers aggregates the given workers. Run starts them in the order
// they were passed.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
