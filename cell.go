// SPDX-License-Identifier: MIT

// Package densemat - Cell: the tagged scalar stored in a Matrix.
//
// Purpose:
//   - Carry one of three kinds (integer, floating-point, text) in a single
//     compact value without interface boxing per element.
//   - Centralize the arithmetic/comparison discipline: int∘int stays int,
//     any float operand promotes, text never participates in arithmetic.
//
// Integer cells carry machine int64 semantics: sums and products that exceed
// the int64 range wrap around silently, exactly like native Go arithmetic.
//
// Complexity quicksheet:
//   - All Cell helpers are O(1); String is O(len) for text cells.

package densemat

import "strconv"

// CellKind discriminates the three storable cell kinds.
type CellKind uint8

const (
	// KindInt tags an integer cell (int64 payload).
	KindInt CellKind = iota
	// KindFloat tags a floating-point cell (float64 payload).
	KindFloat
	// KindText tags a text cell (string payload). Text cells are valid
	// storage but illegal in arithmetic.
	KindText
)

// Cell is one stored matrix value: an integer, a float, or a text snippet.
// The zero Cell is the integer 0.
type Cell struct {
	kind CellKind
	i    int64   // payload when kind == KindInt
	f    float64 // payload when kind == KindFloat
	s    string  // payload when kind == KindText
}

// Int wraps v as an integer cell. Complexity: O(1).
func Int(v int64) Cell { return Cell{kind: KindInt, i: v} }

// Float wraps v as a floating-point cell. Complexity: O(1).
func Float(v float64) Cell { return Cell{kind: KindFloat, f: v} }

// Text wraps s as a text cell. Complexity: O(1).
func Text(s string) Cell { return Cell{kind: KindText, s: s} }

// Kind reports the cell's kind tag. Complexity: O(1).
func (c Cell) Kind() CellKind { return c.kind }

// IsNumeric reports whether the cell may participate in arithmetic.
// Complexity: O(1).
func (c Cell) IsNumeric() bool { return c.kind != KindText }

// Number returns the cell value as float64, or ErrNonNumericCell for text.
// Integer payloads are converted exactly within float64 precision.
// Complexity: O(1).
func (c Cell) Number() (float64, error) {
	switch c.kind {
	case KindInt:
		return float64(c.i), nil
	case KindFloat:
		return c.f, nil
	default:
		return 0, ErrNonNumericCell
	}
}

// String renders the cell the way the formatter prints it:
// integers via base-10, floats via the shortest %g form, text verbatim.
// Complexity: O(len) for text, O(digits) otherwise.
func (c Cell) String() string {
	switch c.kind {
	case KindInt:
		return strconv.FormatInt(c.i, 10)
	case KindFloat:
		return strconv.FormatFloat(c.f, 'g', -1, 64)
	default:
		return c.s
	}
}

// Equal compares two cells under the package's single comparison discipline:
// numeric cells compare by value across kinds (Int(1) equals Float(1)),
// text cells compare by content, and numeric never equals text.
// Complexity: O(1) numeric, O(len) text.
func (c Cell) Equal(o Cell) bool {
	if c.kind == KindText || o.kind == KindText {
		return c.kind == KindText && o.kind == KindText && c.s == o.s
	}
	// Same-kind integer compare avoids float rounding entirely.
	if c.kind == KindInt && o.kind == KindInt {
		return c.i == o.i
	}
	cv, _ := c.Number() // numeric by the guard above
	ov, _ := o.Number()

	return cv == ov
}

// asFloat converts a known-numeric cell to float64 without error plumbing.
// Callers must have checked IsNumeric.
func (c Cell) asFloat() float64 {
	if c.kind == KindInt {
		return float64(c.i)
	}

	return c.f
}

// cellAdd computes a+b under the numeric tower: int+int stays int, any float
// operand promotes, text fails with ErrNonNumericCell.
// Complexity: O(1).
func cellAdd(a, b Cell) (Cell, error) {
	if !a.IsNumeric() || !b.IsNumeric() {
		return Cell{}, ErrNonNumericCell
	}
	if a.kind == KindInt && b.kind == KindInt {
		return Int(a.i + b.i), nil
	}

	return Float(a.asFloat() + b.asFloat()), nil
}

// cellSub computes a-b with the same promotion rules as cellAdd.
// Complexity: O(1).
func cellSub(a, b Cell) (Cell, error) {
	if !a.IsNumeric() || !b.IsNumeric() {
		return Cell{}, ErrNonNumericCell
	}
	if a.kind == KindInt && b.kind == KindInt {
		return Int(a.i - b.i), nil
	}

	return Float(a.asFloat() - b.asFloat()), nil
}

// cellMul computes a*b with the same promotion rules as cellAdd.
// Complexity: O(1).
func cellMul(a, b Cell) (Cell, error) {
	if !a.IsNumeric() || !b.IsNumeric() {
		return Cell{}, ErrNonNumericCell
	}
	if a.kind == KindInt && b.kind == KindInt {
		return Int(a.i * b.i), nil
	}

	return Float(a.asFloat() * b.asFloat()), nil
}
