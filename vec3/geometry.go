// SPDX-License-Identifier: MIT
// Package vec3: geometric scalars, normalization and cross product.
//
// Numeric policy:
//   - Length uses a hypotenuse kernel, so components near the float limit
//     do not overflow the intermediate sum of squares.
//   - Angle treats a zero-magnitude operand as orthogonal (π/2) instead of
//     dividing by zero, and clamps the cosine into [-1, 1] before acos.
//   - Normalize does NOT special-case the zero vector (see Normalize).

package vec3

// Dot returns ax*bx + ay*by + az*bz.
func Dot[T Float](a, b *Vec[T]) T {
	return a[X]*b[X] + a[Y]*b[Y] + a[Z]*b[Z]
}

// Length returns the Euclidean norm of v.
func Length[T Float](v *Vec[T]) T {
	return hypot3(v[X], v[Y], v[Z])
}

// LengthSq returns x²+y²+z². Prefer it over Length when only comparing.
func LengthSq[T Float](v *Vec[T]) T {
	return v[X]*v[X] + v[Y]*v[Y] + v[Z]*v[Z]
}

// Distance returns the Euclidean distance between a and b.
func Distance[T Float](a, b *Vec[T]) T {
	return hypot3(b[X]-a[X], b[Y]-a[Y], b[Z]-a[Z])
}

// DistanceSq returns the squared Euclidean distance between a and b.
func DistanceSq[T Float](a, b *Vec[T]) T {
	dx, dy, dz := b[X]-a[X], b[Y]-a[Y], b[Z]-a[Z]
	return dx*dx + dy*dy + dz*dz
}

// Angle returns the angle between a and b in radians, in [0, π].
//
// If either operand has zero length the cosine is taken as 0 and the
// result is π/2. Otherwise cos = Dot(a,b)/(|a|·|b|) is clamped into
// [-1, 1] to absorb rounding drift before acos.
func Angle[T Float](a, b *Vec[T]) T {
	mag := Length(a) * Length(b)
	var cosine T
	if mag != 0 {
		cosine = Dot(a, b) / mag
	}
	return acos(clampScalar(cosine, -1, 1))
}

// Normalize writes v scaled to unit length into out and returns out.
//
// The scale factor is 1/sqrt(LengthSq(v)) when the squared length is
// non-negative and 0 otherwise (a NaN squared length also selects 0).
// The zero vector is not special-cased: 1/sqrt(0) is +Inf and 0·Inf is
// NaN, so Normalize of (0,0,0) is (NaN, NaN, NaN).
func Normalize[T Float](out, v *Vec[T]) *Vec[T] {
	r := LengthSq(v)
	var k T
	if r >= 0 {
		k = 1 / sqrt(r)
	}
	return Scale(out, v, k)
}

// Cross writes the cross product a × b into out and returns out.
// out may alias a or b.
func Cross[T Float](out, a, b *Vec[T]) *Vec[T] {
	ax, ay, az := a[X], a[Y], a[Z]
	bx, by, bz := b[X], b[Y], b[Z]
	return Set(out,
		ay*bz-by*az,
		az*bx-bz*ax,
		ax*by-bx*ay,
	)
}

// Equal reports whether every component of a and b differs by at most eps.
// NaN components are never equal.
func Equal[T Float](a, b *Vec[T], eps T) bool {
	for i := 0; i < Size; i++ {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		if !(d <= eps) {
			return false
		}
	}
	return true
}
