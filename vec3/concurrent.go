// SPDX-License-Identifier: MIT
// Package vec3: partitioned parallel Map.
//
// Windows never overlap (Map requires stride >= 3), so disjoint ranges of
// window starts write disjoint ranges of the result. Each worker owns an
// Iterator, so no scratch is shared between goroutines.

package vec3

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// cancelCheckWindows is how many windows a worker maps between ctx checks.
const cancelCheckWindows = 1024

// MapConcurrent behaves like Map but splits the windows into contiguous
// chunks processed by up to WithWorkers(n) goroutines (default
// runtime.GOMAXPROCS(0)). The result is identical to Map for any worker
// count provided fn only depends on its own window.
//
// fn runs concurrently with itself. With WithInPlace, other windows of
// source may be rewritten while fn runs, so fn must not read them.
//
// Errors:
//   - ErrInvalidStride / ErrInvalidOffset as for Map.
//   - ctx.Err() (wrapped) if ctx is done before every window has been
//     mapped. Workers check ctx every cancelCheckWindows windows, so a
//     cancel takes effect within that many windows per worker. The result
//     is not returned, but with WithInPlace the source buffer is the
//     result and may be left partly rewritten.
func MapConcurrent[T Float](ctx context.Context, source []T, fn MapFunc[T], opts ...Option) ([]T, error) {
	o := gatherOptions(opts...)
	if err := o.validate("MapConcurrent", minMapStride); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, vecErrorf("MapConcurrent", err)
	}

	result := source
	if o.clone {
		result = make([]T, len(source))
		copy(result, source)
	}

	n := len(source)
	windows := 0
	if o.offset < n {
		windows = (n - o.offset + o.stride - 1) / o.stride
	}
	if windows == 0 {
		return result, nil
	}

	workers := min(o.Workers(), windows)
	per := (windows + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		firstWindow := w * per
		if firstWindow >= windows {
			break
		}
		lastWindow := min(firstWindow+per, windows)
		from := o.offset + firstWindow*o.stride
		to := min(o.offset+lastWindow*o.stride, n)

		g.Go(func() error {
			it := &Iterator[T]{opts: o}
			step := cancelCheckWindows * o.stride
			for lo := from; lo < to; lo += step {
				if err := gctx.Err(); err != nil {
					return err
				}
				it.mapRange(source, result, fn, lo, min(lo+step, to))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, vecErrorf("MapConcurrent", err)
	}
	return result, nil
}
