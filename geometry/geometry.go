// Package geometry defines the two neighbor-offset sets used to connect
// keyboard grids.
//
// The main block of a keyboard slants its rows, so a key touches 6
// neighbors (hexagonal adjacency). Numpads align their keys in a true
// grid, so a key touches 8. Style selects between the two.
//
// Both offset sets are closed under negation: for every offset d in a set,
// -d is also present. The connector relies on this: it never adds a
// reverse edge explicitly; visiting every cell discovers each adjacent
// pair once from each side. Any custom geometry must preserve the
// symmetry or the resulting graph is not mutually navigable. The property
// is asserted by this package's tests, not enforced at runtime.
package geometry

import "github.com/katalvlaran/keygraph/core"

// Style distinguishes physical key alignments.
type Style int

const (
	// Slanted keys have a row offset applied: 6 neighbors per key.
	Slanted Style = iota
	// Aligned keys sit in a clear grid: 8 neighbors per key.
	Aligned
)

// String returns the canonical name of the style.
func (s Style) String() string {
	if s == Aligned {
		return "aligned"
	}

	return "slanted"
}

// slantedOffsets lists the 6 relative positions of a key's neighbors on a
// row-staggered keyboard, in stable emission order.
var slantedOffsets = [...]core.Offset{
	{Horizontal: core.Previous, Vertical: core.Same},
	{Horizontal: core.Same, Vertical: core.Previous},
	{Horizontal: core.Next, Vertical: core.Previous},
	{Horizontal: core.Next, Vertical: core.Same},
	{Horizontal: core.Same, Vertical: core.Next},
	{Horizontal: core.Previous, Vertical: core.Next},
}

// alignedOffsets lists the 8 relative positions of a key's neighbors on a
// grid-aligned keyboard: every direction pair except {Same, Same}.
var alignedOffsets = [...]core.Offset{
	{Horizontal: core.Previous, Vertical: core.Same},
	{Horizontal: core.Previous, Vertical: core.Previous},
	{Horizontal: core.Same, Vertical: core.Previous},
	{Horizontal: core.Next, Vertical: core.Previous},
	{Horizontal: core.Next, Vertical: core.Same},
	{Horizontal: core.Next, Vertical: core.Next},
	{Horizontal: core.Same, Vertical: core.Next},
	{Horizontal: core.Previous, Vertical: core.Next},
}

// Offsets returns the style's neighbor offsets as a fresh slice, in stable
// order. Callers may not corrupt the underlying tables.
// Complexity: O(1) with tiny constants.
func (s Style) Offsets() []core.Offset {
	if s == Aligned {
		out := make([]core.Offset, len(alignedOffsets))
		copy(out, alignedOffsets[:])

		return out
	}

	out := make([]core.Offset, len(slantedOffsets))
	copy(out, slantedOffsets[:])

	return out
}
