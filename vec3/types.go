// SPDX-License-Identifier: MIT

package vec3

import "golang.org/x/exp/constraints"

// Float is the element constraint: float32, float64 and named types over them.
type Float interface {
	constraints.Float
}

// Vec is an ordered triple (x, y, z). It always has exactly three
// components; no operation in this package resizes or reallocates it.
//
// Value equality is component-wise and is what == on two Vec values does.
type Vec[T Float] [3]T

// Vec3 is the float64 vector.
type Vec3 = Vec[float64]

// Vec3f is the float32 vector, matching packed float32 vertex buffers.
type Vec3f = Vec[float32]

// Component indices.
const (
	X = 0
	Y = 1
	Z = 2
)

// Size is the number of components in a Vec.
const Size = 3

// X returns the first component.
func (v Vec[T]) X() T { return v[X] }

// Y returns the second component.
func (v Vec[T]) Y() T { return v[Y] }

// Z returns the third component.
func (v Vec[T]) Z() T { return v[Z] }

// String formats v as "(x, y, z)" with two decimals per component.
func (v Vec[T]) String() string { return String(&v) }
