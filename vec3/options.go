// SPDX-License-Identifier: MIT

// Package vec3: functional configuration for buffer traversal.
// This file defines:
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Validation split:
//   - Stride and offset are range-checked by Each/Map at call time and
//     reported as ErrInvalidStride / ErrInvalidOffset, because a bad value
//     there is ordinary caller input.
//   - WithWorkers panics on n < 1, which can only be a programmer error.

package vec3

import "runtime"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultStride is the distance between consecutive window starts.
	// 3 means tightly packed x,y,z triples.
	DefaultStride = Size

	// DefaultOffset is the index of the first window.
	DefaultOffset = 0

	// DefaultClone makes Map write into a fresh copy of the source.
	// false ⇒ Map mutates the source in place.
	DefaultClone = true
)

// Minimum strides accepted by the traversal entry points.
const (
	minEachStride = 1
	minMapStride  = Size
)

const panicWorkersInvalid = "vec3: WithWorkers: n must be >= 1"

// ---------- Public option type (functional) ----------

// Option mutates traversal options. Safe to apply repeatedly.
type Option func(*Options)

// Options holds the effective traversal configuration after applying
// Option setters. Fields are unexported; public entry points accept
// ...Option and resolve them via gatherOptions.
type Options struct {
	stride  int  // DefaultStride
	offset  int  // DefaultOffset
	clone   bool // DefaultClone
	workers int  // 0 ⇒ runtime.GOMAXPROCS(0) at call time
}

// WithStride sets the step between window starts. Interleaved layouts such
// as position+normal (6 floats per vertex) use a stride larger than 3.
func WithStride(n int) Option {
	return func(o *Options) { o.stride = n }
}

// WithOffset sets the index of the first window, e.g. 3 to visit the
// normal half of a position+normal layout.
func WithOffset(n int) Option {
	return func(o *Options) { o.offset = n }
}

// WithClone selects whether Map writes into a copy (true) or into the
// source buffer itself (false).
func WithClone(clone bool) Option {
	return func(o *Options) { o.clone = clone }
}

// WithInPlace is shorthand for WithClone(false).
func WithInPlace() Option {
	return WithClone(false)
}

// WithWorkers bounds the number of goroutines used by MapConcurrent.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}
	return func(o *Options) { o.workers = n }
}

// Stride returns the configured stride.
func (o Options) Stride() int { return o.stride }

// Offset returns the configured offset.
func (o Options) Offset() int { return o.offset }

// Clone reports whether Map writes into a copy of the source.
func (o Options) Clone() bool { return o.clone }

// Workers returns the effective worker count for MapConcurrent.
func (o Options) Workers() int {
	if o.workers > 0 {
		return o.workers
	}
	return runtime.GOMAXPROCS(0)
}

func defaultOptions() Options {
	return Options{
		stride: DefaultStride,
		offset: DefaultOffset,
		clone:  DefaultClone,
	}
}

// gatherOptions applies opts over the defaults in order; nil entries are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// NewOptions resolves opts over the defaults. Useful to inspect the
// configuration an Iterator or a traversal call will run with.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

func (o Options) validate(tag string, minStride int) error {
	if o.stride < minStride {
		return vecErrorf(tag, ErrInvalidStride)
	}
	if o.offset < 0 {
		return vecErrorf(tag, ErrInvalidOffset)
	}
	return nil
}
