// Package densemat implements a dense two-dimensional matrix of typed cells
// backed by a single flat row-major slice.
//
// What:
//
//   - Matrix wraps (rows, cols) plus one contiguous []Cell with the explicit
//     index formula offset = row*cols + col.
//   - Cell is a small tagged value: integer, floating-point, or text. Integer
//     arithmetic stays integral; any float operand promotes; text in a numeric
//     operation is an error, never a silent coercion.
//   - Operators (Equal, Add, Sub, Mul, Scale, Hadamard, Multiply) allocate
//     fresh results and never mutate operands.
//   - Structural edits (RemoveRow, RemoveColumn, Submatrix) copy-and-return;
//     the receiver is never altered, mirroring the operator discipline.
//   - Determinant uses recursive cofactor expansion along the first row.
//     Correctness-first and O(n!) — there is deliberately no LU path, so the
//     numeric accumulation order is reproducible.
//   - Formatting (Format, String, MaxElementWidth) renders an aligned grid;
//     column width accounts for East Asian wide runes in text cells.
//
// Why:
//
//   - Flat row-major storage gives memory locality and avoids per-row
//     allocations that nested slices would impose.
//   - A single comparison/arithmetic discipline over mixed int/float/text
//     cells keeps small tabular workloads honest: shape and type violations
//     surface as sentinel errors at the offending call.
//
// Complexity:
//
//   - Index/At/Set: O(1). Clone, Add/Sub/Hadamard/Scale: O(r×c).
//   - Mul: O(r×n×c). RemoveRow/RemoveColumn/Submatrix: O(r×c).
//   - Determinant: O(n!) — do not call it on anything large.
//
// Errors:
//
//   - ErrInvalidDimensions: constructor shape contract violated.
//   - ErrOutOfRange: row/column index outside bounds.
//   - ErrDimensionMismatch: operand shapes incompatible.
//   - ErrNonNumericCell: text cell in a numeric operation.
//   - ErrInvalidOperation: structurally nonsensical request
//     (determinant of a non-square matrix, removal from an empty axis, ...).
//
// Concurrency: operations are pure and allocate fresh results, so un-mutated
// matrices are safe for concurrent reads. Set and structural use of a shared
// *rand.Rand need external synchronization.
package densemat
