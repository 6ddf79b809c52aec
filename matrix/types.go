// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense container and validators.
package matrix

// Shape is the read-only dimension surface validators need.
// Every *Dense[T] satisfies it regardless of T, which keeps validators non-generic.
type Shape interface {
	// Rows returns the number of rows. Complexity: O(1).
	Rows() int
	// Cols returns the number of columns. Complexity: O(1).
	Cols() int
}
