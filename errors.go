// SPDX-License-Identifier: MIT
// Package densemat: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions;
// panics are reserved for programmer errors in option constructors.

package densemat

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "densemat: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the detection site — callers still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// empty-axis / degeneracy (ErrInvalidOperation) -> index bounds
// (ErrOutOfRange) -> shape mismatch (ErrDimensionMismatch) -> cell type
// (ErrNonNumericCell).

var (
	// ErrInvalidDimensions indicates a constructor shape contract violation:
	// negative rows/cols, len(cells) != rows*cols, ragged nested rows, or a
	// random range with lo > hi.
	ErrInvalidDimensions = errors.New("densemat: invalid dimensions")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (Index/At/Set) and structural operations MUST
	// return this, not panic.
	ErrOutOfRange = errors.New("densemat: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g.
	// Add/Sub/Hadamard on different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("densemat: dimension mismatch")

	// ErrNonNumericCell signals that a text cell reached an operation with
	// numeric semantics (Add/Sub/Mul/Scale/Hadamard/Determinant). Arithmetic
	// never coerces text; it fails at the offending cell.
	ErrNonNumericCell = errors.New("densemat: non-numeric cell in arithmetic")

	// ErrInvalidOperation marks a structurally nonsensical request:
	// determinant of a non-square matrix, row/column removal from an empty
	// axis, a submatrix of a degenerate (single-row/column) matrix, or a
	// Multiply operand of an unsupported type.
	ErrInvalidOperation = errors.New("densemat: invalid operation")
)
