// Package grid implements the row grammar for layout text blocks.
//
// A layout is described by a small text block: lines are keyboard rows
// top-to-bottom, characters within a line are keys left-to-right with
// single spaces between them, and core.Sentinel marks a deliberately
// absent column. Sentinel cells remain in the parsed grid — they occupy a
// column index, which is how row staggering and numpad offsets are
// encoded — but they never resolve to a real key.
//
// Rows may have different lengths; no padding is performed. At performs
// the column-bounds check, so ragged rows simply yield no neighbor past
// their last cell.
package grid

import "strings"

// Grid is an ordered sequence of rows, each an ordered sequence of key
// characters. Rebuilt fresh per layout generation; never shared mutable.
type Grid [][]rune

// Parse converts a layout text block into a Grid. Spaces are delimiters
// and are dropped; every other character (the sentinel included) occupies
// one cell. An empty block yields an empty grid.
// Complexity: O(len(text)).
func Parse(text string) Grid {
	if text == "" {
		return Grid{}
	}

	lines := strings.Split(text, "\n")
	g := make(Grid, 0, len(lines))
	for _, line := range lines {
		row := make([]rune, 0, len(line))
		for _, c := range line {
			if c == ' ' {
				continue
			}
			row = append(row, c)
		}
		g = append(g, row)
	}

	return g
}

// At returns the character at (row, col), or false when the row index is
// out of range, the column index is negative, or the row has no character
// at that column (ragged-row short-circuit).
// Complexity: O(1).
func (g Grid) At(row, col int) (rune, bool) {
	if row < 0 || row >= len(g) {
		return 0, false
	}
	if col < 0 || col >= len(g[row]) {
		return 0, false
	}

	return g[row][col], true
}

// Rows returns the number of rows in the grid.
func (g Grid) Rows() int { return len(g) }

// IsEmpty reports whether the grid holds no rows.
func (g Grid) IsEmpty() bool { return len(g) == 0 }
