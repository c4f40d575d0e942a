// SPDX-License-Identifier: MIT

// Package vec3 is a small 3-component vector algebra kit: construction,
// arithmetic, geometric scalars (dot, length, angle), normalization,
// interpolation, and windowed traversal of flat numeric buffers that store
// vectors interleaved (x0,y0,z0, x1,y1,z1, ...).
//
// 🚀 Output-parameter convention
//
//	Every mutating operation writes into a caller-supplied out vector and
//	returns that same pointer, so calls chain without allocating:
//
//	  var tmp vec3.Vec3
//	  vec3.Normalize(&tmp, vec3.Sub(&tmp, &b, &a))
//
//	out MAY alias any input. All input components are read before the first
//	component of out is written, so in-place calls are always correct.
//
// ✨ Element types
//
//	Vec[T] is a [3]T for any floating-point T. Two aliases are provided:
//	  • Vec3  = Vec[float64] — the general-purpose form
//	  • Vec3f = Vec[float32] — matches packed float32 vertex buffers
//	float32 square roots and trigonometry stay in float32 (chewxy/math32).
//
// ⚠️ Numeric edge cases are passed through, never reported:
//   - Div by a zero component yields ±Inf or NaN.
//   - Normalize of the zero vector yields (NaN, NaN, NaN): 1/sqrt(0)=+Inf
//     and 0·Inf=NaN.
//   - Angle against a zero vector reports π/2.
//
// Only argument-shape problems are errors: see ErrInvalidStride and
// ErrInvalidOffset returned by Each and Map.
//
// ⚙️ Buffer traversal
//
//	src := []float64{1, 2, 3, 4, 5, 6}
//	doubled, err := vec3.Map(src, func(in, out *vec3.Vec3, _ []float64, _ int) *vec3.Vec3 {
//	    return vec3.Scale(out, in, 2)
//	})
//
// Scratch vectors handed to callbacks are valid only for the duration of
// that callback. Package-level Each/Map own fresh scratch per call; an
// Iterator lets hot loops reuse one pair of scratch vectors across calls.
package vec3
