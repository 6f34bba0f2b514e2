// SPDX-License-Identifier: MIT

// Package densemat: functional configuration for the formatting surface.
// This file defines:
//   - FormatOption (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values,
//     which are programmer errors, not runtime conditions).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts output and is covered by tests.
//   - Reusability: option state is unexported; public APIs consume ...FormatOption.

package densemat

// DEFAULTS - single source of truth for zero-option behavior.
const (
	// DefaultSeparator is the delimiter repeated between columns. The
	// renderer pads with the separator itself, so the default
	// single space yields plain space-aligned columns.
	DefaultSeparator = " "

	// DefaultPadding is the number of extra separator repetitions appended
	// after each cell beyond what alignment requires.
	DefaultPadding = 1

	// DefaultLeftAlign pins the zero-option alignment: cells flush left,
	// padding trailing.
	DefaultLeftAlign = true
)

// formatConfig carries the resolved rendering options.
type formatConfig struct {
	separator string // column delimiter, repeated for alignment padding
	padding   int    // extra separator repetitions per cell (>= 0)
	leftAlign bool   // true: pad after the cell; false: pad before it
}

// FormatOption mutates the formatting configuration.
type FormatOption func(*formatConfig)

// defaultFormatConfig returns the documented default configuration.
func defaultFormatConfig() formatConfig {
	return formatConfig{
		separator: DefaultSeparator,
		padding:   DefaultPadding,
		leftAlign: DefaultLeftAlign,
	}
}

// WithSeparator overrides the column delimiter.
// Panics on an empty separator (alignment would collapse).
func WithSeparator(sep string) FormatOption {
	if sep == "" {
		panic("densemat: WithSeparator requires a non-empty separator")
	}

	return func(c *formatConfig) { c.separator = sep }
}

// WithPadding overrides the extra separator repetitions per cell.
// Panics on negative padding.
func WithPadding(n int) FormatOption {
	if n < 0 {
		panic("densemat: WithPadding requires padding >= 0")
	}

	return func(c *formatConfig) { c.padding = n }
}

// WithLeftAlign selects the cell alignment inside each column: true keeps
// cells flush left with trailing padding (the default), false flushes them
// right with leading padding. The inter-column gap is unaffected.
func WithLeftAlign(left bool) FormatOption {
	return func(c *formatConfig) { c.leftAlign = left }
}

// gatherFormatOptions folds opts over the defaults.
func gatherFormatOptions(opts []FormatOption) formatConfig {
	cfg := defaultFormatConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
