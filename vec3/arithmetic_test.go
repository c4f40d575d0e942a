// SPDX-License-Identifier: MIT

package vec3_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvvec/vec3"
)

func TestArithmetic_Basic(t *testing.T) {
	a := vec3.Vec3{1, 2, 3}
	b := vec3.Vec3{4, -5, 0.5}

	cases := []struct {
		name string
		op   func(out, a, b *vec3.Vec3) *vec3.Vec3
		want vec3.Vec3
	}{
		{"Add", vec3.Add[float64], vec3.Vec3{5, -3, 3.5}},
		{"Sub", vec3.Sub[float64], vec3.Vec3{-3, 7, 2.5}},
		{"Mul", vec3.Mul[float64], vec3.Vec3{4, -10, 1.5}},
		{"Div", vec3.Div[float64], vec3.Vec3{0.25, -0.4, 6}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out vec3.Vec3
			got := tc.op(&out, &a, &b)
			require.Same(t, &out, got)
			assertVecNear(t, tc.want, out, tol)
			// Inputs are untouched.
			assert.Equal(t, vec3.Vec3{1, 2, 3}, a)
			assert.Equal(t, vec3.Vec3{4, -5, 0.5}, b)
		})
	}
}

// TestArithmetic_AliasBoth covers out == a == b, the worst aliasing case.
func TestArithmetic_AliasBoth(t *testing.T) {
	v := vec3.Vec3{1, 2, 3}
	vec3.Add(&v, &v, &v)
	assert.Equal(t, vec3.Vec3{2, 4, 6}, v)

	vec3.Mul(&v, &v, &v)
	assert.Equal(t, vec3.Vec3{4, 16, 36}, v)

	vec3.Sub(&v, &v, &v)
	assert.Equal(t, vec3.Vec3{0, 0, 0}, v)
}

// TestAddSub_RoundTrip checks add(out,a,b) then sub(out,out,b) == a, both
// with a separate out and with out aliasing a.
func TestAddSub_RoundTrip(t *testing.T) {
	vs := randVecs(64)
	for i := 0; i+1 < len(vs); i++ {
		a, b := vs[i], vs[i+1]

		var out vec3.Vec3
		vec3.Sub(&out, vec3.Add(&out, &a, &b), &b)
		assertVecNear(t, a, out, 1e-9)

		aliased := a
		vec3.Sub(&aliased, vec3.Add(&aliased, &aliased, &b), &b)
		assertVecNear(t, a, aliased, 1e-9)
	}
}

// TestDiv_ByZero_PassesThrough: no guard, IEEE-754 results come back.
func TestDiv_ByZero_PassesThrough(t *testing.T) {
	a := vec3.Vec3{1, -1, 0}
	var zero, out vec3.Vec3
	vec3.Div(&out, &a, &zero)

	assert.True(t, math.IsInf(out[vec3.X], 1), "1/0 must be +Inf")
	assert.True(t, math.IsInf(out[vec3.Y], -1), "-1/0 must be -Inf")
	assert.True(t, math.IsNaN(out[vec3.Z]), "0/0 must be NaN")
}

func TestScale_AndNegate(t *testing.T) {
	v := vec3.Vec3{1, -2, 3}
	var out vec3.Vec3
	vec3.Scale(&out, &v, -0.5)
	assert.Equal(t, vec3.Vec3{-0.5, 1, -1.5}, out)

	vec3.Scale(&v, &v, 3)
	assert.Equal(t, vec3.Vec3{3, -6, 9}, v)

	vec3.Negate(&v, &v)
	assert.Equal(t, vec3.Vec3{-3, 6, -9}, v)
}

func TestArithmetic_Float32(t *testing.T) {
	a := vec3.Vec3f{1, 2, 3}
	b := vec3.Vec3f{0.5, 0.5, 0.5}
	var out vec3.Vec3f
	vec3.Add(&out, &a, &b)
	assert.Equal(t, vec3.Vec3f{1.5, 2.5, 3.5}, out)
	vec3.Div(&out, &out, &b)
	assert.Equal(t, vec3.Vec3f{3, 5, 7}, out)
}
