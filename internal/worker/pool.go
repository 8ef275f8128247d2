package worker

import "sync"

// Result pairs one task's output with its input position so callers
// can reassemble ordered output from unordered completion.
type Result[T any] struct {
	Index int
	Value T
	Err   error
}

// Map runs fn over indices 0..n-1 on workerCount goroutines and
// returns the results in input order. Used for per-page OCR, where
// page recognition is independent and tesseract-bound.
func Map[T any](n, workerCount int, fn func(i int) (T, error)) []Result[T] {
	if workerCount <= 0 {
		workerCount = 1
	}
	if workerCount > n {
		workerCount = n
	}

	results := make([]Result[T], n)
	tasks := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workerCount; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range tasks {
				v, err := fn(i)
				results[i] = Result[T]{Index: i, Value: v, Err: err}
			}
		}()
	}

	for i := 0; i < n; i++ {
		tasks <- i
	}
	close(tasks)
	wg.Wait()

	return results
}
