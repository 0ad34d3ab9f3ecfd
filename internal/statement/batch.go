package statement

import (
	"context"
	"sync"

	"github.com/serikbay/budged/internal/model"
)

// BatchOptions configures parallel statement parsing.
type BatchOptions struct {
	Workers  int    // Number of parallel parser goroutines
	Progress func() // Called once per finished file, from the collecting goroutine
}

// DefaultBatchOptions returns sensible defaults.
func DefaultBatchOptions() BatchOptions {
	return BatchOptions{Workers: 2}
}

// FileResult pairs one statement file with its parse outcome. A failed
// file carries its error here instead of failing the batch.
type FileResult struct {
	Err          error
	Path         string
	Transactions []model.Transaction
}

type indexedResult struct {
	result FileResult
	index  int
}

// ParseFiles parses every path concurrently and returns results in input
// order. Cancelling the context marks the remaining files with the
// context's error; files already parsed keep their results.
func (p *Parser) ParseFiles(ctx context.Context, paths []string, opts BatchOptions) []FileResult {
	if len(paths) == 0 {
		return nil
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	// Create work channel
	workChan := make(chan int, len(paths))
	for i := range paths {
		workChan <- i
	}
	close(workChan)

	resultsChan := make(chan indexedResult, len(paths))

	// Start workers
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			p.parseWorker(ctx, paths, workChan, resultsChan)
		}()
	}

	// Wait for workers and close results
	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	// Collect results back into input order
	results := make([]FileResult, len(paths))
	for r := range resultsChan {
		results[r.index] = r.result
		if opts.Progress != nil {
			opts.Progress()
		}
	}
	return results
}

func (p *Parser) parseWorker(ctx context.Context, paths []string, workChan <-chan int, resultsChan chan<- indexedResult) {
	for i := range workChan {
		select {
		case <-ctx.Done():
			resultsChan <- indexedResult{index: i, result: FileResult{Path: paths[i], Err: ctx.Err()}}
			continue
		default:
		}

		txns, err := p.ParseFile(paths[i])
		resultsChan <- indexedResult{
			index:  i,
			result: FileResult{Path: paths[i], Transactions: txns, Err: err},
		}
	}
}
