// SPDX-License-Identifier: MIT

package vec3

// Clamp bounds each component of v to [lo, hi] independently and writes
// the result into out, preserving component order:
//
//	Clamp(out, (5, -5, 0), -1, 1) == (1, -1, 0)
//
// NaN components stay NaN. The caller is expected to pass lo <= hi; with
// lo > hi every component becomes hi.
func Clamp[T Float](out, v *Vec[T], lo, hi T) *Vec[T] {
	x, y, z := v[X], v[Y], v[Z]
	return Set(out,
		clampScalar(x, lo, hi),
		clampScalar(y, lo, hi),
		clampScalar(z, lo, hi),
	)
}
