// SPDX-License-Identifier: MIT
// Package vec3_test contains shared fixtures.
//
// Purpose:
//   • Small deterministic vectors and buffers reused across tests.
//   • Tolerance-aware assertions for vectors.

package vec3_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvvec/vec3"
)

// tol is the absolute tolerance for float64 comparisons.
const tol = 1e-12

// tol32 is the absolute tolerance for float32 comparisons.
const tol32 = 1e-6

// assertVecNear fails the test if any component of got differs from want
// by more than eps.
func assertVecNear[T vec3.Float](t *testing.T, want, got vec3.Vec[T], eps float64) {
	t.Helper()
	for i := 0; i < vec3.Size; i++ {
		if d := math.Abs(float64(want[i]) - float64(got[i])); !(d <= eps) {
			t.Fatalf("component %d: want %v, got %v (|Δ|=%g > %g)", i, want, got, d, eps)
		}
	}
}

// randVecs returns n pseudo-random vectors with components in [-100, 100).
// The seed is fixed so failures reproduce.
func randVecs(n int) []vec3.Vec3 {
	r := rand.New(rand.NewSource(42))
	out := make([]vec3.Vec3, n)
	for i := range out {
		out[i] = vec3.Vec3{
			r.Float64()*200 - 100,
			r.Float64()*200 - 100,
			r.Float64()*200 - 100,
		}
	}
	return out
}

// flatBuffer returns n packed triples counting up from 1: [1,2,3, 4,5,6, ...].
func flatBuffer(n int) []float64 {
	buf := make([]float64, n*vec3.Size)
	for i := range buf {
		buf[i] = float64(i + 1)
	}
	return buf
}

// double is a MapFunc that scales each window by 2.
func double(in, out *vec3.Vec3, _ []float64, _ int) *vec3.Vec3 {
	return vec3.Scale(out, in, 2)
}
