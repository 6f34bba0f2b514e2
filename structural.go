// SPDX-License-Identifier: MIT

// Package densemat - structural edits: row/column removal and submatrix
// extraction.
//
// All three operations copy-and-return: the receiver is never altered, so a
// failed call leaves no partial mutation behind and the discipline matches
// the arithmetic operators' immutability model.
//
// Error priority: empty-axis / degeneracy (ErrInvalidOperation) is checked
// before index bounds (ErrOutOfRange).

package densemat

import "fmt"

// RemoveRow returns a new matrix with row index dropped; all later rows shift
// up by one position in row-major order and the column count is unchanged.
// Stage 1 (Validate): rows > 0, then 0 <= index < rows.
// Stage 2 (Execute): splice the flat buffer around the removed row's span.
//
// Errors: ErrInvalidOperation when rows == 0; ErrOutOfRange on a bad index.
// Complexity: O(rows*cols).
func (m *Matrix) RemoveRow(index int) (*Matrix, error) {
	if m.rows == 0 {
		return nil, fmt.Errorf("Matrix.RemoveRow(%d): no rows to remove: %w", index, ErrInvalidOperation)
	}
	if index < 0 || index >= m.rows {
		return nil, fmt.Errorf("Matrix.RemoveRow(%d): %w", index, ErrOutOfRange)
	}

	// A row occupies the contiguous span [index*cols, (index+1)*cols).
	buf := make([]Cell, 0, (m.rows-1)*m.cols)
	buf = append(buf, m.cells[:index*m.cols]...)
	buf = append(buf, m.cells[(index+1)*m.cols:]...)

	return &Matrix{rows: m.rows - 1, cols: m.cols, cells: buf}, nil
}

// RemoveColumn returns a new matrix with column index dropped, rebuilding the
// flat buffer by skipping that column slot in every row.
// Stage 1 (Validate): cols > 0, then 0 <= index < cols.
// Stage 2 (Execute): deterministic i→j copy skipping j == index.
//
// Errors: ErrInvalidOperation when cols == 0; ErrOutOfRange on a bad index.
// Complexity: O(rows*cols).
func (m *Matrix) RemoveColumn(index int) (*Matrix, error) {
	if m.cols == 0 {
		return nil, fmt.Errorf("Matrix.RemoveColumn(%d): no columns to remove: %w", index, ErrInvalidOperation)
	}
	if index < 0 || index >= m.cols {
		return nil, fmt.Errorf("Matrix.RemoveColumn(%d): %w", index, ErrOutOfRange)
	}

	buf := make([]Cell, 0, m.rows*(m.cols-1))
	var i, j, base int
	for i = 0; i < m.rows; i++ { // iterate rows deterministically
		base = i * m.cols
		for j = 0; j < m.cols; j++ { // iterate columns, skipping the removed slot
			if j == index {
				continue
			}
			buf = append(buf, m.cells[base+j])
		}
	}

	return &Matrix{rows: m.rows, cols: m.cols - 1, cells: buf}, nil
}

// Submatrix returns the (rows-1)×(cols-1) matrix formed by deleting one row
// and one column. This is the minor extraction used by the determinant's
// cofactor expansion.
// Stage 1 (Validate): rows > 1 and cols > 1, then both indices in bounds.
// Stage 2 (Execute): single i→j copy pass skipping the excluded row/column.
//
// Errors: ErrInvalidOperation when the result would be degenerate
// (rows <= 1 or cols <= 1); ErrOutOfRange on bad indices.
// Complexity: O(rows*cols).
func (m *Matrix) Submatrix(excludedRow, excludedCol int) (*Matrix, error) {
	if m.rows <= 1 || m.cols <= 1 {
		return nil, fmt.Errorf("Matrix.Submatrix(%d,%d): shape %dx%d too small: %w",
			excludedRow, excludedCol, m.rows, m.cols, ErrInvalidOperation)
	}
	if excludedRow < 0 || excludedRow >= m.rows || excludedCol < 0 || excludedCol >= m.cols {
		return nil, fmt.Errorf("Matrix.Submatrix(%d,%d): %w", excludedRow, excludedCol, ErrOutOfRange)
	}

	buf := make([]Cell, 0, (m.rows-1)*(m.cols-1))
	var i, j, base int
	for i = 0; i < m.rows; i++ {
		if i == excludedRow {
			continue
		}
		base = i * m.cols
		for j = 0; j < m.cols; j++ {
			if j == excludedCol {
				continue
			}
			buf = append(buf, m.cells[base+j])
		}
	}

	return &Matrix{rows: m.rows - 1, cols: m.cols - 1, cells: buf}, nil
}
