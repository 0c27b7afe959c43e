package operation

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// 🏃 Runner executes a per-file function over a list of files, either
// sequentially or with a bounded number of workers. Files never share
// state, so fan-out is safe; sequential is the default and keeps report
// lines in traversal order.
type Runner struct {
	workers int
}

// 🏗️ NewRunner creates a new runner. workers <= 1 means sequential.
func NewRunner(workers int) *Runner {
	return &Runner{workers: workers}
}

// Run applies fn to every file, stopping at the first error
func (r *Runner) Run(ctx context.Context, files []string, fn func(ctx context.Context, path string) error) error {
	if r.workers <= 1 {
		for _, file := range files {
			if err := fn(ctx, file); err != nil {
				return err
			}
		}
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for _, file := range files {
		file := file
		g.Go(func() error {
			return fn(ctx, file)
		})
	}
	return g.Wait()
}
