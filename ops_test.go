// Package densemat_test contains unit tests for the operator surface:
// equality, element-wise ops, scaling, matrix product, and dispatch.
package densemat_test

import (
	"testing"

	"github.com/katalvlaran/densemat"
	"github.com/stretchr/testify/require"
)

// TestEqualDiscipline covers reflexivity, shape sensitivity, and the
// cross-kind numeric comparison.
func TestEqualDiscipline(t *testing.T) {
	a := mustFromInts(t, 2, 2, 1, 2, 3, 4)
	require.True(t, densemat.Equal(a, a)) // reflexivity

	// Same cells, different shape: never equal.
	b := mustFromInts(t, 1, 4, 1, 2, 3, 4)
	require.False(t, densemat.Equal(a, b))
	require.True(t, densemat.NotEqual(a, b))

	// Int cells equal float cells of the same value.
	f, err := densemat.FromFloats(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	require.True(t, densemat.Equal(a, f))

	// One differing cell breaks equality.
	c := mustFromInts(t, 2, 2, 1, 2, 3, 5)
	require.False(t, densemat.Equal(a, c))

	// Nil handling: nil equals nil only.
	require.True(t, densemat.Equal(nil, nil))
	require.False(t, densemat.Equal(a, nil))
}

// TestAddSubScenario pins a hand-computed scenario and the inverse property
// add(sub(A,B), B) == A.
func TestAddSubScenario(t *testing.T) {
	a := mustFromInts(t, 2, 2, 1, 2, 3, 4)
	b := mustFromInts(t, 2, 2, 5, 6, 7, 8)

	sum, err := densemat.Add(a, b)
	require.NoError(t, err)
	require.True(t, densemat.Equal(sum, mustFromInts(t, 2, 2, 6, 8, 10, 12)))

	diff, err := densemat.Sub(a, b)
	require.NoError(t, err)
	back, err := densemat.Add(diff, b)
	require.NoError(t, err)
	require.True(t, densemat.Equal(back, a)) // mutual inverses

	// Operands are never mutated.
	require.True(t, densemat.Equal(a, mustFromInts(t, 2, 2, 1, 2, 3, 4)))
	require.True(t, densemat.Equal(b, mustFromInts(t, 2, 2, 5, 6, 7, 8)))
}

// TestElementwiseShapeMismatch ensures Add/Sub/Hadamard reject differing
// shapes with ErrDimensionMismatch.
func TestElementwiseShapeMismatch(t *testing.T) {
	a := mustFromInts(t, 2, 3, 1, 2, 3, 4, 5, 6)
	b := mustFromInts(t, 3, 2, 1, 2, 3, 4, 5, 6)

	_, err := densemat.Add(a, b)
	require.ErrorIs(t, err, densemat.ErrDimensionMismatch)
	_, err = densemat.Sub(a, b)
	require.ErrorIs(t, err, densemat.ErrDimensionMismatch)
	_, err = densemat.Hadamard(a, b)
	require.ErrorIs(t, err, densemat.ErrDimensionMismatch)
}

// TestArithmeticRejectsText ensures a text cell poisons every numeric op.
func TestArithmeticRejectsText(t *testing.T) {
	a := mustFromInts(t, 1, 2, 1, 2)
	withText, err := densemat.New(1, 2, []densemat.Cell{densemat.Int(1), densemat.Text("x")})
	require.NoError(t, err)

	_, err = densemat.Add(a, withText)
	require.ErrorIs(t, err, densemat.ErrNonNumericCell)
	_, err = densemat.Sub(withText, a)
	require.ErrorIs(t, err, densemat.ErrNonNumericCell)
	_, err = densemat.Hadamard(a, withText)
	require.ErrorIs(t, err, densemat.ErrNonNumericCell)

	col, err := densemat.New(2, 1, []densemat.Cell{densemat.Text("x"), densemat.Int(1)})
	require.NoError(t, err)
	_, err = densemat.Mul(a, col) // product touches the text cell
	require.ErrorIs(t, err, densemat.ErrNonNumericCell)

	_, err = densemat.Scale(withText, densemat.Int(2))
	require.ErrorIs(t, err, densemat.ErrNonNumericCell)
	_, err = densemat.Scale(a, densemat.Text("2")) // text factor
	require.ErrorIs(t, err, densemat.ErrNonNumericCell)
}

// TestHadamardScenario pins a hand-computed element-wise product.
func TestHadamardScenario(t *testing.T) {
	a := mustFromInts(t, 2, 2, 1, 2, 3, 4)
	b := mustFromInts(t, 2, 2, 5, 6, 7, 8)

	prod, err := densemat.Hadamard(a, b)
	require.NoError(t, err)
	require.True(t, densemat.Equal(prod, mustFromInts(t, 2, 2, 5, 12, 21, 32)))
}

// TestMulScenario pins a hand-computed matrix product and its shape rules.
func TestMulScenario(t *testing.T) {
	a := mustFromInts(t, 2, 2, 1, 2, 3, 4)
	b := mustFromInts(t, 2, 2, 5, 6, 7, 8)

	prod, err := densemat.Mul(a, b)
	require.NoError(t, err)
	require.True(t, densemat.Equal(prod, mustFromInts(t, 2, 2, 19, 22, 43, 50)))

	// Rectangular product: (2x3)x(3x2) -> 2x2.
	r1 := mustFromInts(t, 2, 3, 1, 2, 3, 4, 5, 6)
	r2 := mustFromInts(t, 3, 2, 7, 8, 9, 10, 11, 12)
	rect, err := densemat.Mul(r1, r2)
	require.NoError(t, err)
	require.True(t, densemat.Equal(rect, mustFromInts(t, 2, 2, 58, 64, 139, 154)))

	// Incompatible inner dimensions fail fast.
	_, err = densemat.Mul(r1, r1)
	require.ErrorIs(t, err, densemat.ErrDimensionMismatch)
}

// TestMulIdentity checks Mul(A, Identity(n)) == A for a rectangular A, for
// both integer and float matrices.
func TestMulIdentity(t *testing.T) {
	a := mustFromInts(t, 2, 3, 1, 2, 3, 4, 5, 6)
	id, err := densemat.Identity(3)
	require.NoError(t, err)

	prod, err := densemat.Mul(a, id)
	require.NoError(t, err)
	require.True(t, densemat.Equal(prod, a))

	f, err := densemat.FromFloats(2, 3, []float64{0.5, 1.5, -2, 3, 4.25, 6})
	require.NoError(t, err)
	fprod, err := densemat.Mul(f, id)
	require.NoError(t, err)
	require.True(t, densemat.Equal(fprod, f))
}

// TestScaleKinds checks scalar multiplication preserves the numeric tower.
func TestScaleKinds(t *testing.T) {
	a := mustFromInts(t, 2, 2, 1, 2, 3, 4)

	doubled, err := densemat.Scale(a, densemat.Int(2))
	require.NoError(t, err)
	require.True(t, densemat.Equal(doubled, mustFromInts(t, 2, 2, 2, 4, 6, 8)))
	v, err := doubled.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, densemat.KindInt, v.Kind()) // int factor keeps int cells

	halved, err := densemat.Scale(a, densemat.Float(0.5))
	require.NoError(t, err)
	v, err = halved.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, densemat.KindFloat, v.Kind()) // float factor promotes
	require.True(t, v.Equal(densemat.Float(1)))
}

// TestMultiplyDispatch verifies the scalar/matrix dispatch: matrix operand
// routes to the product, numeric operands route to scaling, anything else is
// an invalid operation.
func TestMultiplyDispatch(t *testing.T) {
	a := mustFromInts(t, 2, 2, 1, 2, 3, 4)
	b := mustFromInts(t, 2, 2, 5, 6, 7, 8)

	prod, err := densemat.Multiply(a, b)
	require.NoError(t, err)
	require.True(t, densemat.Equal(prod, mustFromInts(t, 2, 2, 19, 22, 43, 50)))

	byInt, err := densemat.Multiply(a, 3)
	require.NoError(t, err)
	require.True(t, densemat.Equal(byInt, mustFromInts(t, 2, 2, 3, 6, 9, 12)))

	byInt64, err := densemat.Multiply(a, int64(3))
	require.NoError(t, err)
	require.True(t, densemat.Equal(byInt64, byInt))

	byFloat, err := densemat.Multiply(a, 0.5)
	require.NoError(t, err)
	v, err := byFloat.At(1, 1)
	require.NoError(t, err)
	require.True(t, v.Equal(densemat.Float(2)))

	byCell, err := densemat.Multiply(a, densemat.Int(10))
	require.NoError(t, err)
	require.True(t, densemat.Equal(byCell, mustFromInts(t, 2, 2, 10, 20, 30, 40)))

	_, err = densemat.Multiply(a, "3") // unsupported operand type
	require.ErrorIs(t, err, densemat.ErrInvalidOperation)
}

// TestOpsOnEmptyMatrices ensures zero-dimension matrices flow through the
// operators without special-casing.
func TestOpsOnEmptyMatrices(t *testing.T) {
	e1, err := densemat.Zeros(0, 3)
	require.NoError(t, err)
	e2, err := densemat.Zeros(0, 3)
	require.NoError(t, err)

	sum, err := densemat.Add(e1, e2)
	require.NoError(t, err)
	rows, cols := sum.Dimensions()
	require.Equal(t, 0, rows)
	require.Equal(t, 3, cols)
	require.True(t, densemat.Equal(e1, e2))

	// (2x0)x(0x2) -> 2x2 of integer zeros (empty accumulation).
	l, err := densemat.Zeros(2, 0)
	require.NoError(t, err)
	r, err := densemat.Zeros(0, 2)
	require.NoError(t, err)
	prod, err := densemat.Mul(l, r)
	require.NoError(t, err)
	require.True(t, densemat.Equal(prod, mustFromInts(t, 2, 2, 0, 0, 0, 0)))
}
