// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// ItemError reports which input of a batch failed.
type ItemError struct {
	Op    string
	Index int
	Err   error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("batch: %s[%d]: %v", e.Op, e.Index, e.Err)
}

func (e *ItemError) Unwrap() error { return e.Err }

// Run applies fn to every input concurrently and returns the results in input order.
//
// Behavior highlights:
//   - At most WithLimit calls run at once.
//   - The first failure cancels the context passed to the other calls and stops
//     scheduling; Run then returns that failure as an *ItemError.
//   - A cancelled parent context is returned as ctx.Err().
//   - Empty input returns an empty, non-nil slice.
func Run[In, Out any](ctx context.Context, op string, inputs []In, fn func(context.Context, In) (Out, error), opts ...Option) ([]Out, error) {
	o := gatherOptions(opts...)
	log := o.logger.With("op", op)
	results := make([]Out, len(inputs))
	if len(inputs) == 0 {
		return results, nil
	}

	start := time.Now()
	log.DebugContext(ctx, "batch started", "count", len(inputs), "limit", o.limit)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.limit)
	for i, in := range inputs {
		if gctx.Err() != nil {
			break
		}
		i, in := i, in
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := fn(gctx, in)
			if err != nil {
				log.WarnContext(gctx, "batch item failed", "index", i, "error", err)
				return &ItemError{Op: op, Index: i, Err: err}
			}
			results[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		var item *ItemError
		if !errors.As(err, &item) && ctx.Err() != nil {
			err = ctx.Err()
		}
		log.DebugContext(ctx, "batch aborted", "count", len(inputs), "error", err)
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log.DebugContext(ctx, "batch finished", "count", len(inputs), "elapsed", time.Since(start))

	return results, nil
}
