// SPDX-License-Identifier: MIT

package vec3

// Create returns a new zero vector (0, 0, 0).
func Create[T Float]() *Vec[T] {
	return &Vec[T]{}
}

// Of returns a new vector (x, y, z).
func Of[T Float](x, y, z T) *Vec[T] {
	return &Vec[T]{x, y, z}
}

// From returns a new vector copied from the first three elements of src.
// src must hold at least three elements; a shorter slice panics with the
// usual index-out-of-range runtime error.
func From[T Float](src []T) *Vec[T] {
	_ = src[2] // single bounds check
	return Of(src[0], src[1], src[2])
}

// Set writes (x, y, z) into out and returns out.
func Set[T Float](out *Vec[T], x, y, z T) *Vec[T] {
	out[X] = x
	out[Y] = y
	out[Z] = z
	return out
}

// Copy writes the components of src into out and returns out.
func Copy[T Float](out, src *Vec[T]) *Vec[T] {
	return Set(out, src[X], src[Y], src[Z])
}
