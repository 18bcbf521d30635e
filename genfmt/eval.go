package genfmt

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Evaluator computes the raw amplitude of one path.
type Evaluator func(ctx context.Context, path PathInput) (float64, error)

// EvalAmplitudes evaluates every path concurrently and returns a copy of
// the set with Amplitude filled in. limit caps how many evaluations run
// at once, non-positive meaning unbounded. The first failing evaluation
// cancels the remaining ones and its error is returned.
func EvalAmplitudes(ctx context.Context, paths []PathInput, limit int, eval Evaluator) ([]PathInput, error) {
	out := make([]PathInput, len(paths))
	copy(out, paths)

	group, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		group.SetLimit(limit)
	}

	for index := range out {
		index := index
		group.Go(func() error {
			amplitude, err := eval(ctx, out[index])
			if err != nil {
				return err
			}
			out[index].Amplitude = amplitude
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
