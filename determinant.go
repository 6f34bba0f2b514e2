// SPDX-License-Identifier: MIT

// Package densemat - determinant via recursive cofactor expansion.
//
// The expansion runs along the first row with the sign pattern (-1)^j and the
// column index ascending from 0. This is the correctness-first algorithm:
// exponential O(n!) time, explicitly NOT replaced by an LU or QR path, so
// the floating-point accumulation order (and therefore rounding) is
// reproducible call after call. Nothing is cached; each call recomputes.
//
// WARNING: the cost explodes combinatorially and the recursion is not
// interruptible. A 10×10 determinant already costs millions of cell
// multiplications; keep inputs small.

package densemat

import "fmt"

// Determinant evaluates the determinant of a square matrix.
//
// Base cases are explicit:
//   - n == 0: integer 0 (the expansion loop has no terms; the zero
//     accumulator is returned).
//   - n == 1: the single cell, verbatim.
//   - n == 2: a*d - b*c.
//   - n >  2: sum over j of (-1)^j * m[0,j] * Determinant(Submatrix(0, j)).
//
// The result kind follows cell arithmetic: an all-integer matrix yields an
// integer determinant, any float cell promotes the result to float.
//
// Errors: ErrInvalidOperation when rows != cols; ErrNonNumericCell when the
// expansion touches a text cell (a 1×1 text matrix returns its cell verbatim;
// no arithmetic ever runs for it).
// Complexity: O(n!) time, O(n³) transient space for minors.
func (m *Matrix) Determinant() (Cell, error) {
	if err := validateSquare(m); err != nil {
		return Cell{}, opErrorf(opDet, err)
	}

	return m.det()
}

// det is the unchecked recursive kernel; callers guarantee squareness.
func (m *Matrix) det() (Cell, error) {
	switch m.rows {
	case 0:
		return Int(0), nil // empty expansion: the zero accumulator
	case 1:
		return m.cells[0], nil
	case 2:
		// Flat layout of a 2×2: [a b c d] -> a*d - b*c.
		ad, err := cellMul(m.cells[0], m.cells[3])
		if err != nil {
			return Cell{}, opErrorf(opDet, err)
		}
		bc, err := cellMul(m.cells[1], m.cells[2])
		if err != nil {
			return Cell{}, opErrorf(opDet, err)
		}
		d, err := cellSub(ad, bc)
		if err != nil {
			return Cell{}, opErrorf(opDet, err)
		}

		return d, nil
	}

	// Cofactor expansion along row 0, columns ascending.
	sum := Int(0)
	sign := int64(1) // (-1)^col, flipped at the end of each iteration
	var (
		minor *Matrix
		md    Cell
		term  Cell
		err   error
	)
	for col := 0; col < m.cols; col++ {
		if minor, err = m.Submatrix(0, col); err != nil {
			// Unreachable for a validated square n>2 matrix; keep the wrap
			// so a future refactor cannot silently panic here.
			return Cell{}, opErrorf(opDet, err)
		}
		if md, err = minor.det(); err != nil {
			return Cell{}, err
		}
		// term = m[0,col] * minor * sign, evaluated left to right.
		if term, err = cellMul(m.cells[col], md); err != nil {
			return Cell{}, opErrorf(opDet, fmt.Errorf("cell (0,%d): %w", col, err))
		}
		if term, err = cellMul(term, Int(sign)); err != nil {
			return Cell{}, opErrorf(opDet, err)
		}
		if sum, err = cellAdd(sum, term); err != nil {
			return Cell{}, opErrorf(opDet, err)
		}
		sign = -sign
	}

	return sum, nil
}
