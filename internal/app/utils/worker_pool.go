package utils

import (
	"context"
	"sync"
)

type workerJob[T any] struct {
	index int
	data  T
}

type workerResult[R any] struct {
	index  int
	result R
	err    error
}

// RunWorkerPool processes items in parallel with workerCount workers and
// returns results and errors in the same order as the input items.
func RunWorkerPool[T, R any](ctx context.Context, items []T, workerCount int, processor func(context.Context, T) (R, error)) ([]R, []error) {
	if len(items) == 0 {
		return nil, nil
	}
	if workerCount < 1 {
		workerCount = 1
	}
	if workerCount > len(items) {
		workerCount = len(items)
	}

	jobs := make(chan workerJob[T], len(items))
	out := make(chan workerResult[R], len(items))

	var wg sync.WaitGroup
	for w := 0; w < workerCount; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				if ctx.Err() != nil {
					out <- workerResult[R]{index: job.index, err: ctx.Err()}
					continue
				}
				result, err := processor(ctx, job.data)
				out <- workerResult[R]{index: job.index, result: result, err: err}
			}
		}()
	}

	for i, item := range items {
		jobs <- workerJob[T]{index: i, data: item}
	}
	close(jobs)
	wg.Wait()
	close(out)

	results := make([]R, len(items))
	errs := make([]error, len(items))
	for r := range out {
		results[r.index] = r.result
		errs[r.index] = r.err
	}
	return results, errs
}
