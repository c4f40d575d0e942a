// SPDX-License-Identifier: MIT
// Package vec3: windowed traversal of flat numeric buffers.
//
// A flat buffer stores vectors interleaved: [x0,y0,z0, x1,y1,z1, ...].
// Traversal starts at offset and advances by stride; at each position i
// the window source[i], source[i+1], source[i+2] is loaded into a scratch
// vector and handed to a callback.
//
// Scratch lifetime:
//   - A scratch vector is valid only for the duration of one callback.
//     It is overwritten by the next step; do not retain the pointer.
//
// Malformed buffers:
//   - A trailing window that runs past len(source) loads the missing
//     components as NaN, and Map drops writes that fall past the end.
//     Keeping len(source) consistent with the layout is the caller's job.

package vec3

// VisitFunc inspects one window. v is scratch storage; index is the
// buffer position of v's x component.
type VisitFunc[T Float] func(v *Vec[T], source []T, index int)

// MapFunc transforms one window. in holds the loaded window and out is
// scratch for the result. The returned vector is written back to
// result[index:index+3]; conventionally it is out. A nil return is
// treated as out.
type MapFunc[T Float] func(in, out *Vec[T], source []T, index int) *Vec[T]

// Iterator owns the scratch vectors and options for repeated traversals.
// Reusing one Iterator across calls keeps traversal allocation-free.
//
// An Iterator is neither safe for concurrent use nor reentrant: calling
// Each or Map on the same Iterator from inside one of its callbacks
// overwrites the scratch the outer traversal is using. Distinct Iterators
// share nothing.
type Iterator[T Float] struct {
	in   Vec[T]
	out  Vec[T]
	opts Options
}

// NewIterator returns an Iterator configured by opts.
func NewIterator[T Float](opts ...Option) *Iterator[T] {
	return &Iterator[T]{opts: gatherOptions(opts...)}
}

// Options returns the Iterator's resolved configuration.
func (it *Iterator[T]) Options() Options { return it.opts }

// Each visits every window of source. See the package-level Each.
func (it *Iterator[T]) Each(source []T, visit VisitFunc[T]) error {
	if err := it.opts.validate("Each", minEachStride); err != nil {
		return err
	}
	it.each(source, visit, it.opts.offset, len(source))
	return nil
}

// Map transforms every window of source. See the package-level Map.
func (it *Iterator[T]) Map(source []T, fn MapFunc[T]) ([]T, error) {
	if err := it.opts.validate("Map", minMapStride); err != nil {
		return nil, err
	}
	result := source
	if it.opts.clone {
		result = make([]T, len(source))
		copy(result, source)
	}
	it.mapRange(source, result, fn, it.opts.offset, len(source))
	return result, nil
}

// each walks window starts in [from, to) stepping by the configured stride.
func (it *Iterator[T]) each(source []T, visit VisitFunc[T], from, to int) {
	stride := it.opts.stride
	for i := from; i < to; i += stride {
		visit(load(&it.in, source, i), source, i)
	}
}

// mapRange is the Map kernel over window starts in [from, to).
// It only ever writes result[i:i+3] for the windows it visits.
func (it *Iterator[T]) mapRange(source, result []T, fn MapFunc[T], from, to int) {
	stride := it.opts.stride
	for i := from; i < to; i += stride {
		load(&it.in, source, i)
		v := fn(&it.in, &it.out, source, i)
		if v == nil {
			v = &it.out
		}
		store(result, i, v)
	}
}

// load fills v from source[i:i+3]; missing trailing components become NaN.
func load[T Float](v *Vec[T], source []T, i int) *Vec[T] {
	if i+Size <= len(source) {
		return Set(v, source[i], source[i+1], source[i+2])
	}
	v[X], v[Y], v[Z] = nan[T](), nan[T](), nan[T]()
	for k := 0; i+k < len(source); k++ {
		v[k] = source[i+k]
	}
	return v
}

// store writes v into dst[i:i+3], dropping components past len(dst).
func store[T Float](dst []T, i int, v *Vec[T]) {
	x, y, z := v[X], v[Y], v[Z]
	if i+Size <= len(dst) {
		dst[i], dst[i+1], dst[i+2] = x, y, z
		return
	}
	tail := [Size]T{x, y, z}
	for k := 0; i+k < len(dst); k++ {
		dst[i+k] = tail[k]
	}
}

// Each walks source from the configured offset (default 0) in steps of the
// configured stride (default 3), loading each window into a scratch vector
// and calling visit(scratch, source, i). source is not copied and visit is
// not expected to modify it.
//
// Errors: ErrInvalidStride if stride < 1, ErrInvalidOffset if offset < 0.
//
// Each uses scratch private to the call, so it may be nested inside
// another traversal's callback and called concurrently on any buffers.
func Each[T Float](source []T, visit VisitFunc[T], opts ...Option) error {
	return NewIterator[T](opts...).Each(source, visit)
}

// Map returns source with fn applied to every window.
//
// Stage 1 (Validate): stride must be >= 3 (ErrInvalidStride) and offset
// >= 0 (ErrInvalidOffset). On failure nothing is copied or written.
// Stage 2 (Prepare): result is a copy of source when clone is set (the
// default), otherwise source itself.
// Stage 3 (Execute): for each window at i, load it into scratch in, call
// fn(in, out, source, i) and write the returned triple into result[i:i+3].
//
// Example:
//
//	doubled, err := vec3.Map(buf, func(in, out *vec3.Vec3, _ []float64, _ int) *vec3.Vec3 {
//	    return vec3.Scale(out, in, 2)
//	})
func Map[T Float](source []T, fn MapFunc[T], opts ...Option) ([]T, error) {
	return NewIterator[T](opts...).Map(source, fn)
}
