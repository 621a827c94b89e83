package near_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keygraph/core"
	"github.com/katalvlaran/keygraph/layout"
	"github.com/katalvlaran/keygraph/near"
)

func values(keys []core.Key) []rune {
	out := make([]rune, 0, len(keys))
	for _, k := range keys {
		out = append(out, k.Value)
	}

	return out
}

func TestNearby_NilGraph(t *testing.T) {
	_, err := near.Nearby(nil, '5', 1)
	assert.ErrorIs(t, err, near.ErrGraphNil)
}

func TestNearby_BadDepth(t *testing.T) {
	_, err := near.Nearby(layout.StandardNumpad(), '5', 0)
	assert.ErrorIs(t, err, near.ErrBadDepth)

	_, err = near.Nearby(layout.StandardNumpad(), '5', -3)
	assert.ErrorIs(t, err, near.ErrBadDepth)
}

func TestNearby_UnknownKey(t *testing.T) {
	_, err := near.Nearby(layout.StandardNumpad(), 'q', 1)
	assert.ErrorIs(t, err, near.ErrKeyNotFound)
}

// Depth 1 on the numpad is exactly the 8-neighborhood of 5.
func TestNearby_NumpadDepthOne(t *testing.T) {
	keys, err := near.Nearby(layout.StandardNumpad(), '5', 1)
	require.NoError(t, err)
	assert.Equal(t, []rune{'1', '2', '3', '4', '6', '7', '8', '9'}, values(keys))
}

// The start key itself is never part of the result.
func TestNearby_ExcludesStart(t *testing.T) {
	keys, err := near.Nearby(layout.StandardNumpad(), '5', 3)
	require.NoError(t, err)
	for _, k := range keys {
		assert.NotEqual(t, '5', k.Value)
	}
}

// Probing by the shifted character resolves the same physical key.
func TestNearby_ShiftAgnosticProbe(t *testing.T) {
	byValue, err := near.Nearby(layout.QWERTY(), 'q', 1)
	require.NoError(t, err)
	byShift, err := near.Nearby(layout.QWERTY(), 'Q', 1)
	require.NoError(t, err)

	assert.Equal(t, byValue, byShift)
	assert.Equal(t, []rune{'1', '2', 'a', 'w'}, values(byValue))
}

// Results are ordered by distance first: all depth-1 keys precede any
// depth-2 key.
func TestNearby_OrderedByDepth(t *testing.T) {
	depth1, err := near.Nearby(layout.QWERTY(), 'q', 1)
	require.NoError(t, err)
	depth2, err := near.Nearby(layout.QWERTY(), 'q', 2)
	require.NoError(t, err)

	require.Greater(t, len(depth2), len(depth1))
	assert.Equal(t, values(depth1), values(depth2)[:len(depth1)],
		"depth-1 ring must prefix the depth-2 result")
}

// A large enough depth reaches the whole connected component.
func TestNearby_FullComponent(t *testing.T) {
	keys, err := near.Nearby(layout.StandardNumpad(), '5', 10)
	require.NoError(t, err)
	// Component: all 15 placed keys minus the start.
	assert.Len(t, keys, 14)
}
