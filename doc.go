// Package lvvec is a compact toolbox of low-level vector primitives for
// geometry and graphics code, the layer you build meshes, cameras and
// physics on top of.
//
// 🚀 What is in lvvec?
//
//	• vec3 — 3-component vectors over float32 or float64:
//		construction, arithmetic, dot/cross, length, angle, normalize,
//		linear and Bézier interpolation, clamp, and windowed traversal of
//		flat interleaved vertex buffers (Each, Map, MapConcurrent).
//
// ✨ Why lvvec?
//
//   - Zero-allocation hot paths – every mutator writes into a caller-owned
//     out vector and returns it for chaining
//   - Alias-safe – out may be any of the inputs
//   - Honest numerics – IEEE-754 results (Inf, NaN) are passed through,
//     only malformed arguments are errors
//   - No hidden global state – scratch storage is owned per call or per
//     Iterator
//
// Layout:
//
//	vec3/     — Vec, Vec3, Vec3f and all operations on them
//	examples/ — runnable programs
//
//	go get github.com/katalvlaran/lvvec/vec3
package lvvec
