// SPDX-License-Identifier: MIT

// Package densemat - deterministic pseudo-random matrix generation.
//
// Goals:
//   - Determinism: same seed ⇒ identical matrix across platforms.
//   - Encapsulation: a single RNG construction point; no time-based sources
//     hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe; each Random call builds its own
//     generator, so concurrent Random calls are independent and safe.

package densemat

import (
	"fmt"
	"math/rand"
)

// defaultRandomSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRandomSeed int64 = 1

// Random builds a rows×cols matrix of integer cells drawn uniformly from the
// inclusive range [lo, hi]. Policy: seed==0 ⇒ defaultRandomSeed; otherwise
// the provided seed verbatim.
//
// Errors: ErrInvalidDimensions on negative dimensions or lo > hi.
// Complexity: O(rows*cols).
func Random(rows, cols int, lo, hi int64, seed int64) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("Random(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	if lo > hi {
		return nil, fmt.Errorf("Random: range [%d,%d]: %w", lo, hi, ErrInvalidDimensions)
	}

	s := seed
	if s == 0 {
		s = defaultRandomSeed
	}
	rng := rand.New(rand.NewSource(s))

	// uint64 subtraction is exact for hi >= lo even when hi-lo would
	// overflow int64 (e.g. the full [MinInt64, MaxInt64] range).
	width := uint64(hi) - uint64(lo)
	buf := make([]Cell, rows*cols)
	for idx := range buf { // deterministic 0..n-1 fill order
		buf[idx] = Int(lo + drawOffset(rng, width))
	}

	return &Matrix{rows: rows, cols: cols, cells: buf}, nil
}

// drawOffset returns a uniform value in [0, width] inclusive. Offsets of
// width >= 1<<63 exceed Int63n's reach, so those ranges rejection-sample the
// raw 64-bit stream instead. The int64 conversion may wrap, but adding the
// wrapped offset to lo lands back inside [lo, hi] under two's complement.
func drawOffset(rng *rand.Rand, width uint64) int64 {
	if width < 1<<63 {
		return rng.Int63n(int64(width) + 1)
	}
	for {
		if v := rng.Uint64(); v <= width {
			return int64(v)
		}
	}
}
