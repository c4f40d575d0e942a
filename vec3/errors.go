// SPDX-License-Identifier: MIT
// Package vec3: sentinel errors.
//
// Only argument-shape violations are reported as errors. Numeric edge
// cases (division by zero, zero-length normalize) pass IEEE-754 results
// through and are never errors.

package vec3

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidStride is returned when a traversal stride is too small:
	// below 3 for Map (windows would overlap their own write-back) and
	// below 1 for Each (the walk would never advance).
	ErrInvalidStride = errors.New("vec3: stride is too small")

	// ErrInvalidOffset is returned when a traversal offset is negative.
	ErrInvalidOffset = errors.New("vec3: offset can not be lower than 0")
)

// vecErrorf tags err with the operation name; errors.Is still matches the sentinel.
func vecErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
