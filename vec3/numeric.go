// SPDX-License-Identifier: MIT
// Package vec3: scalar kernels shared by the vector operations.
//
// float32 inputs stay in float32 through chewxy/math32 so that results match
// what a float32 pipeline would compute; every other Float widens to
// float64 and uses the standard math package.

package vec3

import (
	"math"

	"github.com/chewxy/math32"
)

func sqrt[T Float](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Sqrt(f))
	}
	return T(math.Sqrt(float64(x)))
}

// hypot3 returns sqrt(x²+y²+z²) without overflowing on large components.
func hypot3[T Float](x, y, z T) T {
	if _, ok := any(x).(float32); ok {
		fx, fy, fz := float32(x), float32(y), float32(z)
		return T(math32.Hypot(math32.Hypot(fx, fy), fz))
	}
	return T(math.Hypot(math.Hypot(float64(x), float64(y)), float64(z)))
}

func acos[T Float](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Acos(f))
	}
	return T(math.Acos(float64(x)))
}

// clampScalar bounds x to [lo, hi]. NaN stays NaN.
func clampScalar[T Float](x, lo, hi T) T {
	return min(hi, max(lo, x))
}

// nan returns a quiet NaN of type T.
func nan[T Float]() T {
	return T(math.NaN())
}
