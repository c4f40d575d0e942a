// SPDX-License-Identifier: MIT

package vec3

import "fmt"

// String renders v as "(x, y, z)" with each component fixed to two
// decimals. The output is for humans; it is not meant to be parsed back.
//
// Components go through fmt's %.2f verb, so:
//   - negative zero and tiny negatives print as "-0.00",
//   - exact ties round half to even (0.125 prints as "0.12"),
//   - infinities print as "+Inf" / "-Inf" and NaN as "NaN".
func String[T Float](v *Vec[T]) string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", float64(v[X]), float64(v[Y]), float64(v[Z]))
}
