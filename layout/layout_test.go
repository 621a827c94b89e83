package layout_test

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keygraph/connect"
	"github.com/katalvlaran/keygraph/core"
	"github.com/katalvlaran/keygraph/layout"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Alphabetic layouts carry all 26 letters as lowercase/uppercase pairs,
// and lookup succeeds by either character form.
func TestAlphabeticLayouts_LetterPairs(t *testing.T) {
	for name, g := range map[string]*core.Graph{
		"QWERTY": layout.QWERTY(),
		"Dvorak": layout.Dvorak(),
	} {
		t.Run(name, func(t *testing.T) {
			for _, c := range alphabet {
				k, ok := g.FindKey(c)
				require.True(t, ok, "letter %q missing", c)
				assert.Equal(t, c, k.Value)
				assert.Equal(t, unicode.ToUpper(c), k.Shifted)

				upper, ok := g.FindKey(unicode.ToUpper(c))
				require.True(t, ok, "uppercase %q lookup failed", c)
				assert.Equal(t, k, upper)
			}
		})
	}
}

// Digit-enabled layouts carry all 10 digits unshifted, and the sentinel
// itself never resolves to a key.
func TestStandardNumpad_Digits(t *testing.T) {
	g := layout.StandardNumpad()

	for _, c := range "0123456789" {
		k, ok := g.FindKey(c)
		require.True(t, ok, "digit %q missing", c)
		assert.Equal(t, c, k.Value)
		assert.False(t, k.HasShift())
	}

	_, ok := g.FindKey(core.Sentinel)
	assert.False(t, ok, "sentinel must never resolve to a key")
}

// QWERTY under the pre-registered policy: q reaches 1 and 2 on the row
// above, holds a single edge toward w, and no node exists for characters
// absent from the key tables.
func TestQWERTY_TopRowAdjacency(t *testing.T) {
	g := layout.QWERTY()

	off1, ok := g.EdgeOffset('q', '1')
	require.True(t, ok, "q→1 edge missing")
	assert.Equal(t, core.Offset{Horizontal: core.Same, Vertical: core.Previous}, off1)

	off2, ok := g.EdgeOffset('q', '2')
	require.True(t, ok, "q→2 edge missing")
	assert.Equal(t, core.Offset{Horizontal: core.Next, Vertical: core.Previous}, off2)

	offW, ok := g.EdgeOffset('q', 'w')
	require.True(t, ok)
	assert.Equal(t, core.Offset{Horizontal: core.Next, Vertical: core.Same}, offW)

	// 26 letters + 21 punctuation/digit pairs, nothing else.
	assert.Equal(t, 47, g.KeyCount())
}

func TestQWERTY_FullNeighborhoodOfQ(t *testing.T) {
	g := layout.QWERTY()

	nbs, err := g.Neighbors('q')
	require.NoError(t, err)

	got := make([]rune, 0, len(nbs))
	for _, nb := range nbs {
		got = append(got, nb.Key.Value)
	}
	// Sorted by value: '1' < '2' < 'a' < 'w'.
	assert.Equal(t, []rune{'1', '2', 'a', 'w'}, got)
}

// Dvorak moves the punctuation around: ' sits where q is on QWERTY.
func TestDvorak_HomeRowPlacement(t *testing.T) {
	g := layout.Dvorak()

	// '\'' is on the top letter row, left edge: its right neighbor is ','.
	off, ok := g.EdgeOffset('\'', ',')
	require.True(t, ok, "'→, edge missing")
	assert.Equal(t, core.Offset{Horizontal: core.Next, Vertical: core.Same}, off)

	// Shifted lookup still works for relocated punctuation.
	k, ok := g.FindKey('"')
	require.True(t, ok)
	assert.Equal(t, '\'', k.Value)
}

// Symmetry holds across every built-in layout.
func TestPresets_ReciprocalEdges(t *testing.T) {
	for name, g := range map[string]*core.Graph{
		"QWERTY":         layout.QWERTY(),
		"Dvorak":         layout.Dvorak(),
		"StandardNumpad": layout.StandardNumpad(),
		"MacNumpad":      layout.MacNumpad(),
	} {
		t.Run(name, func(t *testing.T) {
			for _, k := range g.Keys() {
				nbs, err := g.Neighbors(k.Value)
				require.NoError(t, err)
				for _, nb := range nbs {
					back, ok := g.EdgeOffset(nb.Key.Value, k.Value)
					require.True(t, ok, "missing reciprocal %s→%s", nb.Key, k)
					assert.Equal(t, nb.Offset.Negate(), back)
				}
			}
		})
	}
}

// The Mac numpad pre-populates nothing: every node is auto-created and
// shiftless, and the '=' key distinguishes it from the PC numpad.
func TestMacNumpad_AutoCreated(t *testing.T) {
	g := layout.MacNumpad()

	for _, k := range g.Keys() {
		assert.False(t, k.HasShift(), "key %s should be shiftless", k)
	}

	_, hasEq := g.FindKey('=')
	assert.True(t, hasEq)
	_, hasDot := g.FindKey('.')
	assert.True(t, hasDot)
}

// Spec.Build with strict mode surfaces a typo'd row-block character.
func TestSpecBuild_StrictCatchesTypo(t *testing.T) {
	s := layout.Spec{
		Name:        "typo",
		Alphabetics: true,
		Rows:        "q w §",
	}

	g, err := s.Build()
	require.NoError(t, err, "permissive build must not fail")
	assert.False(t, g.HasKey('§'), "typo must not become a node")

	_, err = s.Build(connect.WithStrict())
	require.ErrorIs(t, err, connect.ErrUnknownKey)
	assert.Contains(t, err.Error(), "typo", "error should name the layout")
}

func TestSpecBuild_RowsReferencingShifted(t *testing.T) {
	// A row block may reference keys by their shifted character; lookup is
	// shift-agnostic during connection.
	s := layout.Spec{
		Name: "shifted-rows",
		Keys: []core.Key{
			{Value: '1', Shifted: '!'},
			{Value: '2', Shifted: '@'},
		},
		Rows: "! @",
	}

	g, err := s.Build()
	require.NoError(t, err)
	assert.True(t, g.HasEdge('1', '2'))
	assert.Equal(t, 2, g.KeyCount())
}

func TestSpecBuild_DuplicateKeyTable(t *testing.T) {
	s := layout.Spec{
		Name:        "dup",
		Alphabetics: true,
		// 'a' collides with the alphabetic pre-population.
		Keys: []core.Key{{Value: 'a', Shifted: '@'}},
	}

	_, err := s.Build()
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrDuplicateKey)
	assert.True(t, strings.Contains(err.Error(), "dup"), "error should name the layout")
}
