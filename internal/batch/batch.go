// Package batch formats many fragment lists concurrently with one formatter.
package batch

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/erraggy/slashfmt/slash"
)

// FormatAll formats each entry of inputs with f and returns the results in
// input order. limit bounds the number of concurrent workers; a non-positive
// limit uses GOMAXPROCS. Cancellation of ctx stops outstanding work and
// returns ctx.Err().
func FormatAll(ctx context.Context, f slash.Formatter, inputs [][]string, limit int) ([]string, error) {
	if len(inputs) == 0 {
		return nil, ctx.Err()
	}
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	// each goroutine writes its own index
	results := make([]string, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(limit, len(inputs)))

	for i, fragments := range inputs {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = f.Format(fragments...)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// Lines wraps each line as a single-fragment input.
func Lines(lines []string) [][]string {
	inputs := make([][]string, len(lines))
	for i, line := range lines {
		inputs[i] = []string{line}
	}
	return inputs
}
