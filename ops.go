// SPDX-License-Identifier: MIT
// Package densemat - binary operators over matrices: equality, element-wise
// addition/subtraction/multiplication, scalar scaling, and the standard
// matrix product. All functions perform strict fail-fast validation, allocate
// a fresh result, and never mutate their operands.

package densemat

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd      = "Add"
	opSub      = "Sub"
	opMul      = "Mul"
	opScale    = "Scale"
	opHadamard = "Hadamard"
	opMultiply = "Multiply"
	opDet      = "Determinant"
)

// opErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Call only with err != nil. Complexity: O(1).
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Equal reports whether a and b have identical shape and all cells compare
// equal pairwise in row-major order (Cell.Equal discipline: numeric kinds
// compare by value, text by content). Two nil matrices are equal; nil never
// equals non-nil. Complexity: O(rows*cols).
func Equal(a, b *Matrix) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	for idx := range a.cells { // flat walk 0..n-1
		if !a.cells[idx].Equal(b.cells[idx]) {
			return false
		}
	}

	return true
}

// NotEqual is the logical negation of Equal. Complexity: O(rows*cols).
func NotEqual(a, b *Matrix) bool { return !Equal(a, b) }

// elementwise computes out[i] = op(a.cells[i], b.cells[i]) for equal-shape
// operands. Internal kernel shared by Add/Sub/Hadamard so validation,
// allocation, and the flat loop live in one place.
// Stage 1 (Validate): non-nil operands, identical shapes.
// Stage 2 (Execute): single flat loop 0..n-1; abort on the first cell error.
//
// Errors: ErrInvalidOperation (nil operand), ErrDimensionMismatch,
// ErrNonNumericCell — all wrapped with opTag and, for cell failures, the
// (row,col) coordinates of the offending element.
// Complexity: O(rows*cols) time and memory.
func elementwise(a, b *Matrix, op func(Cell, Cell) (Cell, error), opTag string) (*Matrix, error) {
	if err := validateNotNil(a); err != nil {
		return nil, opErrorf(opTag, err)
	}
	if err := validateNotNil(b); err != nil {
		return nil, opErrorf(opTag, err)
	}
	if err := validateSameShape(a, b); err != nil {
		return nil, opErrorf(opTag, err)
	}

	buf := make([]Cell, len(a.cells))
	var err error
	for idx := range a.cells { // deterministic 0..n-1
		if buf[idx], err = op(a.cells[idx], b.cells[idx]); err != nil {
			return nil, opErrorf(opTag, fmt.Errorf("cell (%d,%d): %w", idx/a.cols, idx%a.cols, err))
		}
	}

	return &Matrix{rows: a.rows, cols: a.cols, cells: buf}, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh result.
// Integer cells stay integral; any float operand promotes the cell to float.
//
// Errors: ErrDimensionMismatch (shape), ErrNonNumericCell (text cell).
// Complexity: O(rows*cols).
func Add(a, b *Matrix) (*Matrix, error) { return elementwise(a, b, cellAdd, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh result.
//
// Errors: ErrDimensionMismatch (shape), ErrNonNumericCell (text cell).
// Complexity: O(rows*cols).
func Sub(a, b *Matrix) (*Matrix, error) { return elementwise(a, b, cellSub, opSub) }

// Hadamard computes the element-wise product C[i] = A[i] * B[i] with a fresh
// result.
//
// Errors: ErrDimensionMismatch (shape), ErrNonNumericCell (text cell).
// Complexity: O(rows*cols).
func Hadamard(a, b *Matrix) (*Matrix, error) { return elementwise(a, b, cellMul, opHadamard) }

// Scale returns a new matrix whose elements are factor * m[i]. The factor is
// a Cell so an integer factor over an integer matrix stays integral.
//
// Errors: ErrNonNumericCell when the factor or any cell is text.
// Complexity: O(rows*cols).
func Scale(m *Matrix, factor Cell) (*Matrix, error) {
	if err := validateNotNil(m); err != nil {
		return nil, opErrorf(opScale, err)
	}
	if !factor.IsNumeric() {
		return nil, opErrorf(opScale, fmt.Errorf("factor: %w", ErrNonNumericCell))
	}

	buf := make([]Cell, len(m.cells))
	var err error
	for idx := range m.cells { // deterministic 0..n-1
		if buf[idx], err = cellMul(m.cells[idx], factor); err != nil {
			return nil, opErrorf(opScale, fmt.Errorf("cell (%d,%d): %w", idx/m.cols, idx%m.cols, err))
		}
	}

	return &Matrix{rows: m.rows, cols: m.cols, cells: buf}, nil
}

// Mul performs the standard matrix product C = A × B (no aliasing).
// Stage 1 (Validate): non-nil operands, a.Cols == b.Rows.
// Stage 2 (Execute): fixed i→j→k triple loop; each C(i,j) accumulates
// sum over k ascending of A[i,k]*B[k,j] starting from integer zero, so an
// all-integer product stays integral and float rounding follows the natural
// accumulation order.
//
// Errors: ErrInvalidOperation (nil operand), ErrDimensionMismatch (inner
// mismatch), ErrNonNumericCell (text cell).
// Complexity: O(rows*inner*cols) time, O(rows*cols) space.
func Mul(a, b *Matrix) (*Matrix, error) {
	if err := validateNotNil(a); err != nil {
		return nil, opErrorf(opMul, err)
	}
	if err := validateNotNil(b); err != nil {
		return nil, opErrorf(opMul, err)
	}
	if err := validateMulCompatible(a, b); err != nil {
		return nil, opErrorf(opMul, err)
	}

	buf := make([]Cell, a.rows*b.cols)
	var (
		i, j, k   int
		sum, term Cell
		err       error
		baseA     int // row offset in a: i*a.cols
		baseR     int // row offset in the result: i*b.cols
	)
	for i = 0; i < a.rows; i++ {
		baseA = i * a.cols
		baseR = i * b.cols
		for j = 0; j < b.cols; j++ {
			sum = Int(0) // zero accumulator; promotes on the first float term
			for k = 0; k < a.cols; k++ {
				// a.cells layout: i*a.cols + k; b.cells layout: k*b.cols + j.
				if term, err = cellMul(a.cells[baseA+k], b.cells[k*b.cols+j]); err != nil {
					return nil, opErrorf(opMul, fmt.Errorf("cells (%d,%d)x(%d,%d): %w", i, k, k, j, err))
				}
				if sum, err = cellAdd(sum, term); err != nil {
					return nil, opErrorf(opMul, fmt.Errorf("cell (%d,%d): %w", i, j, err))
				}
			}
			buf[baseR+j] = sum
		}
	}

	return &Matrix{rows: a.rows, cols: b.cols, cells: buf}, nil
}

// Multiply mirrors an overloaded `*` operator: it inspects
// the right-hand operand's type and routes to the matrix product (for a
// *Matrix) or scalar scaling (for a numeric Cell, int, int64, or float64).
//
// Errors: ErrInvalidOperation for unsupported operand types, plus whatever
// Mul/Scale return.
// Complexity: that of the routed operation.
func Multiply(a *Matrix, operand any) (*Matrix, error) {
	switch rhs := operand.(type) {
	case *Matrix:
		return Mul(a, rhs)
	case Cell:
		return Scale(a, rhs)
	case int:
		return Scale(a, Int(int64(rhs)))
	case int64:
		return Scale(a, Int(rhs))
	case float64:
		return Scale(a, Float(rhs))
	default:
		return nil, opErrorf(opMultiply, fmt.Errorf("operand type %T: %w", operand, ErrInvalidOperation))
	}
}
