// SPDX-License-Identifier: MIT
// Package vec3: component-wise arithmetic.
//
// Aliasing contract (applies to every function in this file):
//   - out may be the same vector as a and/or b.
//   - All six input components are loaded into locals first, then out is
//     written, so in-place chains such as Add(&a, &a, &b) are exact.
//
// Numeric policy:
//   - No guards. Div by a zero component yields ±Inf or NaN per IEEE-754.

package vec3

// Add computes out = a + b.
func Add[T Float](out, a, b *Vec[T]) *Vec[T] {
	ax, ay, az := a[X], a[Y], a[Z]
	bx, by, bz := b[X], b[Y], b[Z]
	return Set(out, ax+bx, ay+by, az+bz)
}

// Sub computes out = a - b.
func Sub[T Float](out, a, b *Vec[T]) *Vec[T] {
	ax, ay, az := a[X], a[Y], a[Z]
	bx, by, bz := b[X], b[Y], b[Z]
	return Set(out, ax-bx, ay-by, az-bz)
}

// Mul computes the component-wise (Hadamard) product out = a ∘ b.
func Mul[T Float](out, a, b *Vec[T]) *Vec[T] {
	ax, ay, az := a[X], a[Y], a[Z]
	bx, by, bz := b[X], b[Y], b[Z]
	return Set(out, ax*bx, ay*by, az*bz)
}

// Div computes the component-wise quotient out = a / b.
// A zero component in b is not checked.
func Div[T Float](out, a, b *Vec[T]) *Vec[T] {
	ax, ay, az := a[X], a[Y], a[Z]
	bx, by, bz := b[X], b[Y], b[Z]
	return Set(out, ax/bx, ay/by, az/bz)
}

// Scale computes out = v * s.
func Scale[T Float](out, v *Vec[T], s T) *Vec[T] {
	x, y, z := v[X], v[Y], v[Z]
	return Set(out, x*s, y*s, z*s)
}

// Negate computes out = -v.
func Negate[T Float](out, v *Vec[T]) *Vec[T] {
	x, y, z := v[X], v[Y], v[Z]
	return Set(out, -x, -y, -z)
}
