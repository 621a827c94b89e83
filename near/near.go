// Package near provides breadth-first proximity queries over a keyboard
// adjacency graph.
//
// Nearby answers the question consumers of the layout graphs actually
// ask, "which keys sit within n steps of this one?", for typo
// simulation, password-strength heuristics, and swipe models. The start
// key is resolved shift-agnostically, so 'Q' and 'q' describe the same
// physical key.
package near

import (
	"errors"
	"sort"

	"github.com/katalvlaran/keygraph/core"
)

// Sentinel errors for proximity queries.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("near: graph is nil")

	// ErrKeyNotFound is returned when no key matches the probe character.
	ErrKeyNotFound = errors.New("near: no key matches character")

	// ErrBadDepth is returned for a non-positive depth limit.
	ErrBadDepth = errors.New("near: depth must be positive")
)

// queueItem pairs a key value with its distance from the start key.
type queueItem struct {
	value rune
	depth int
}

// walker encapsulates mutable traversal state.
type walker struct {
	graph    *core.Graph
	maxDepth int
	queue    []queueItem
	depth    map[rune]int
}

// Nearby returns every key within maxDepth edges of the key matching c,
// excluding that key itself, ordered by distance and then by key value.
// The probe may be either character form of the key (value or shifted).
// Returns ErrGraphNil, ErrKeyNotFound, or ErrBadDepth on invalid input.
// Complexity: O(V + E) for the visited region, plus the final sort.
func Nearby(g *core.Graph, c rune, maxDepth int) ([]core.Key, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if maxDepth < 1 {
		return nil, ErrBadDepth
	}
	start, ok := g.FindKey(c)
	if !ok {
		return nil, ErrKeyNotFound
	}

	w := &walker{
		graph:    g,
		maxDepth: maxDepth,
		queue:    []queueItem{{value: start.Value, depth: 0}},
		depth:    map[rune]int{start.Value: 0},
	}
	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.collect(start.Value), nil
}

// loop processes the queue until exhausted.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		if item.depth == w.maxDepth {
			continue // frontier reached, neighbors would overshoot
		}

		neighbors, err := w.graph.Neighbors(item.value)
		if err != nil {
			return err
		}
		for _, nb := range neighbors {
			if _, seen := w.depth[nb.Key.Value]; seen {
				continue
			}
			w.depth[nb.Key.Value] = item.depth + 1
			w.queue = append(w.queue, queueItem{value: nb.Key.Value, depth: item.depth + 1})
		}
	}

	return nil
}

// collect materializes the visited set, minus the start key, ordered by
// (depth, value) for deterministic output.
func (w *walker) collect(start rune) []core.Key {
	values := make([]rune, 0, len(w.depth))
	for v := range w.depth {
		if v == start {
			continue
		}
		values = append(values, v)
	}
	sort.Slice(values, func(i, j int) bool {
		di, dj := w.depth[values[i]], w.depth[values[j]]
		if di != dj {
			return di < dj
		}

		return values[i] < values[j]
	})

	out := make([]core.Key, 0, len(values))
	for _, v := range values {
		k, _ := w.graph.Key(v)
		out = append(out, k)
	}

	return out
}
