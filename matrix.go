// SPDX-License-Identifier: MIT

// Package densemat - Matrix storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index
//     formula offset = row*cols + col.
//   - Guarantee safety at the public surface: Index/At/Set return errors
//     instead of panicking.
//   - Keep ownership single: constructors copy caller slices, operators
//     allocate fresh backing storage, so no two Matrix values ever alias.

package densemat

import "fmt"

// ---------- error context tags ----------

const (
	ctxIndex = "Index" // method tag used in error wrappers
	ctxAt    = "At"    // method tag used in error wrappers
	ctxSet   = "Set"   // method tag used in error wrappers
)

// matrixErrorf wraps a sentinel with a uniform method context and callsite
// coordinates, preserving errors.Is matching via %w.
// Complexity: O(1).
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a dense 2D matrix of Cell values.
//   - rows, cols hold the shape (both >= 0; either may be zero).
//   - cells is a flat buffer of length rows*cols in row-major order.
//
// The invariant len(cells) == rows*cols holds for every reachable Matrix:
// constructors validate it and every operation that changes the shape
// allocates a matching buffer before returning.
type Matrix struct {
	rows, cols int    // shape (>= 0; zero on either axis means an empty matrix)
	cells      []Cell // contiguous row-major storage, len == rows*cols
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// New builds a rows×cols matrix from a flat row-major initializer.
// Stage 1 (Validate): rows >= 0, cols >= 0, len(cells) == rows*cols.
// Stage 2 (Prepare): copy the initializer into owned storage.
// Stage 3 (Finalize): return the new Matrix.
//
// The input slice is copied, never retained: single ownership of the backing
// store is part of the data-model contract.
//
// Errors: ErrInvalidDimensions on any shape contract violation.
// Complexity: O(rows*cols) time and memory.
func New(rows, cols int, cells []Cell) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	if len(cells) != rows*cols {
		return nil, fmt.Errorf("New(%d,%d): len(cells)=%d: %w", rows, cols, len(cells), ErrInvalidDimensions)
	}
	buf := make([]Cell, len(cells))
	copy(buf, cells)

	return &Matrix{rows: rows, cols: cols, cells: buf}, nil
}

// FromRows builds a matrix from nested rows, validating rectangularity.
// An empty outer slice yields the legal 0×0 matrix.
//
// Errors: ErrInvalidDimensions when rows have differing lengths.
// Complexity: O(rows*cols).
func FromRows(rows [][]Cell) (*Matrix, error) {
	if len(rows) == 0 {
		return &Matrix{rows: 0, cols: 0, cells: make([]Cell, 0)}, nil
	}
	cols := len(rows[0])
	buf := make([]Cell, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("FromRows: row %d has %d cells, want %d: %w",
				i, len(row), cols, ErrInvalidDimensions)
		}
		buf = append(buf, row...)
	}

	return &Matrix{rows: len(rows), cols: cols, cells: buf}, nil
}

// FromInts builds a rows×cols matrix of integer cells from a flat initializer.
// Complexity: O(rows*cols).
func FromInts(rows, cols int, vals []int64) (*Matrix, error) {
	if rows < 0 || cols < 0 || len(vals) != rows*cols {
		return nil, fmt.Errorf("FromInts(%d,%d): len(vals)=%d: %w", rows, cols, len(vals), ErrInvalidDimensions)
	}
	buf := make([]Cell, len(vals))
	for idx, v := range vals { // deterministic 0..n-1
		buf[idx] = Int(v)
	}

	return &Matrix{rows: rows, cols: cols, cells: buf}, nil
}

// FromFloats builds a rows×cols matrix of float cells from a flat initializer.
// Complexity: O(rows*cols).
func FromFloats(rows, cols int, vals []float64) (*Matrix, error) {
	if rows < 0 || cols < 0 || len(vals) != rows*cols {
		return nil, fmt.Errorf("FromFloats(%d,%d): len(vals)=%d: %w", rows, cols, len(vals), ErrInvalidDimensions)
	}
	buf := make([]Cell, len(vals))
	for idx, v := range vals { // deterministic 0..n-1
		buf[idx] = Float(v)
	}

	return &Matrix{rows: rows, cols: cols, cells: buf}, nil
}

// Zeros builds a rows×cols matrix filled with integer zero cells.
// Complexity: O(rows*cols).
func Zeros(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("Zeros(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	// The zero Cell is Int(0), so make() fills the buffer correctly.
	return &Matrix{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}, nil
}

// Identity builds the n×n identity matrix with integer 1 on the diagonal and
// integer 0 elsewhere. Identity(0) is the legal 0×0 matrix.
// Complexity: O(n²).
func Identity(n int) (*Matrix, error) {
	m, err := Zeros(n, n)
	if err != nil {
		return nil, fmt.Errorf("Identity(%d): %w", n, ErrInvalidDimensions)
	}
	for d := 0; d < n; d++ {
		m.cells[d*n+d] = Int(1) // diagonal offset d*cols + d
	}

	return m, nil
}

// Rows returns the row count. No side effects. Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the column count. No side effects. Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// Dimensions packs Rows() and Cols() into a single call. Complexity: O(1).
func (m *Matrix) Dimensions() (rows, cols int) { return m.rows, m.cols }

// IsSquare reports whether rows == cols. Complexity: O(1).
func (m *Matrix) IsSquare() bool { return m.rows == m.cols }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Stage 1 (Validate): 0 <= row < rows and 0 <= col < cols.
// Stage 2 (Execute): offset = row*cols + col.
//
// Returns the bare sentinel; public methods wrap with method context and
// coordinates so both bound semantics stay identical everywhere.
// Complexity: O(1).
func (m *Matrix) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.rows {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.cols {
		return 0, ErrOutOfRange
	}

	// Row-major offset: row*cols + col.
	return row*m.cols + col, nil
}

// Index exposes the flat row-major offset row*cols + col with the same bounds
// contract as At/Set.
//
// Errors: ErrOutOfRange when either index is invalid.
// Complexity: O(1).
func (m *Matrix) Index(row, col int) (int, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, matrixErrorf(ctxIndex, row, col, err)
	}

	return off, nil
}

// At returns the cell at (row, col).
//
// Errors: ErrOutOfRange when either index is invalid.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (Cell, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return Cell{}, matrixErrorf(ctxAt, row, col, err)
	}

	return m.cells[off], nil
}

// Set stores v at (row, col). This is the only value mutation on the surface;
// no type coercion happens — the caller supplies whatever Cell kind it wants
// and later arithmetic enforces the numeric discipline.
//
// Errors: ErrOutOfRange when either index is invalid.
// Complexity: O(1).
func (m *Matrix) Set(row, col int, v Cell) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return matrixErrorf(ctxSet, row, col, err)
	}
	m.cells[off] = v // direct flat write

	return nil
}

// Clone returns a deep copy with its own backing store.
// Complexity: O(rows*cols).
func (m *Matrix) Clone() *Matrix {
	cp := make([]Cell, len(m.cells))
	copy(cp, m.cells)

	return &Matrix{rows: m.rows, cols: m.cols, cells: cp}
}
