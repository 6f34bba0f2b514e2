// SPDX-License-Identifier: MIT
// Package: densemat
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep operator kernels minimal by delegating nil/shape checks here.
//   - Return wrapped sentinel errors so call sites can re-wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing on success.

package densemat

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateNotNil ensures the matrix reference is non-nil.
// Returns ErrInvalidOperation for nil (there is no nil-matrix concept on this
// surface; passing one is a structural misuse). Complexity: O(1).
func validateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("validateNotNil", ErrInvalidOperation)
	}

	return nil
}

// validateSameShape ensures a and b have equal dimensions.
// Assumes both are non-nil (caller must ensure). Complexity: O(1).
func validateSameShape(a, b *Matrix) error {
	if a.rows != b.rows {
		return validatorErrorf("validateSameShape: rows", ErrDimensionMismatch)
	}
	if a.cols != b.cols {
		return validatorErrorf("validateSameShape: columns", ErrDimensionMismatch)
	}

	return nil
}

// validateMulCompatible ensures the inner dimensions line up for a matrix
// product (a.cols == b.rows). Assumes both are non-nil. Complexity: O(1).
func validateMulCompatible(a, b *Matrix) error {
	if a.cols != b.rows {
		return validatorErrorf("validateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// validateSquare ensures rows == cols before determinant evaluation.
// Complexity: O(1).
func validateSquare(m *Matrix) error {
	if m.rows != m.cols {
		return validatorErrorf("validateSquare", ErrInvalidOperation)
	}

	return nil
}
