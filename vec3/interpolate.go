// SPDX-License-Identifier: MIT

package vec3

// Linear writes a + (b-a)*t into out and returns out.
// t is not restricted to [0, 1]; values outside extrapolate.
func Linear[T Float](out, a, b *Vec[T], t T) *Vec[T] {
	ax, ay, az := a[X], a[Y], a[Z]
	bx, by, bz := b[X], b[Y], b[Z]
	return Set(out,
		ax+(bx-ax)*t,
		ay+(by-ay)*t,
		az+(bz-az)*t,
	)
}

// Quadratic evaluates the quadratic Bézier curve from a to c with control
// point b at parameter t and writes the point into out.
//
//	P(t) = (1-t)²·a + 2(1-t)t·b + t²·c
//
// out may alias any input.
func Quadratic[T Float](out, a, b, c *Vec[T], t T) *Vec[T] {
	u := 1 - t
	wa, wb, wc := u*u, 2*u*t, t*t
	ax, ay, az := a[X], a[Y], a[Z]
	bx, by, bz := b[X], b[Y], b[Z]
	cx, cy, cz := c[X], c[Y], c[Z]
	return Set(out,
		wa*ax+wb*bx+wc*cx,
		wa*ay+wb*by+wc*cy,
		wa*az+wb*bz+wc*cz,
	)
}

// Cubic evaluates the cubic Bézier curve from a to d with control points
// b and c at parameter t and writes the point into out.
//
//	P(t) = (1-t)³·a + 3(1-t)²t·b + 3(1-t)t²·c + t³·d
//
// out may alias any input.
func Cubic[T Float](out, a, b, c, d *Vec[T], t T) *Vec[T] {
	u := 1 - t
	wa, wb, wc, wd := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
	ax, ay, az := a[X], a[Y], a[Z]
	bx, by, bz := b[X], b[Y], b[Z]
	cx, cy, cz := c[X], c[Y], c[Z]
	dx, dy, dz := d[X], d[Y], d[Z]
	return Set(out,
		wa*ax+wb*bx+wc*cx+wd*dx,
		wa*ay+wb*by+wc*cy+wd*dy,
		wa*az+wb*bz+wc*cz+wd*dz,
	)
}
