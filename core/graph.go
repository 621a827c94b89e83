// File: graph.go
// Role: directed Graph container and the Searcher lookup capability.
//
// Determinism:
//   - Keys() returns keys sorted by Value ascending.
//   - Neighbors() returns entries sorted by target Value ascending.
//   - FindKey resolves shifted-character probes through a first-wins index,
//     so repeated lookups always yield the same key.
package core

import "sort"

// Searcher finds a key given a single character from it. Useful when the
// caller does not know the keyboard locale: numbers and symbols move
// between layouts, so a probe by printed character must succeed whether
// that character is the base or the shifted form.
type Searcher interface {
	// FindKey returns the key whose Value or Shifted equals c,
	// or false when no such key exists or c is the sentinel.
	FindKey(c rune) (Key, bool)
}

// Graph is an in-memory directed graph of keys. Nodes are deduplicated by
// Key.Value; each directed edge carries the Offset of the target relative
// to the source. Not safe for concurrent mutation: build single-goroutine,
// then share read-only.
type Graph struct {
	keys    map[rune]Key             // Value → Key
	shifted map[rune]rune            // Shifted → Value (first registration wins)
	adj     map[rune]map[rune]Offset // from Value → to Value → offset
	edges   int
}

// compile-time capability check
var _ Searcher = (*Graph)(nil)

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		keys:    make(map[rune]Key),
		shifted: make(map[rune]rune),
		adj:     make(map[rune]map[rune]Offset),
	}
}

// AddKey inserts a key as a node. Re-adding an identical key is a no-op.
// Returns ErrSentinelKey when k.Value is the sentinel, ErrDuplicateKey when
// the value is already registered with a different shift mapping.
// Complexity: O(1).
func (g *Graph) AddKey(k Key) error {
	if k.Value == Sentinel {
		return ErrSentinelKey
	}
	if prev, exists := g.keys[k.Value]; exists {
		if prev == k {
			return nil // idempotent re-add
		}

		return ErrDuplicateKey
	}

	g.keys[k.Value] = k
	if k.HasShift() {
		// First registration wins; a later key with the same shifted
		// character keeps its own value mapping but not the index slot.
		if _, taken := g.shifted[k.Shifted]; !taken {
			g.shifted[k.Shifted] = k.Value
		}
	}

	return nil
}

// HasKey reports whether a key with the given unshifted value exists.
// Complexity: O(1).
func (g *Graph) HasKey(value rune) bool {
	_, ok := g.keys[value]

	return ok
}

// Key returns the key registered under the given unshifted value.
// Complexity: O(1).
func (g *Graph) Key(value rune) (Key, bool) {
	k, ok := g.keys[value]

	return k, ok
}

// FindKey implements Searcher: it returns the key whose Value or Shifted
// equals c. The sentinel is never found. Value matches take precedence
// over shifted matches.
// Complexity: O(1).
func (g *Graph) FindKey(c rune) (Key, bool) {
	if c == Sentinel {
		return Key{}, false
	}
	if k, ok := g.keys[c]; ok {
		return k, true
	}
	if v, ok := g.shifted[c]; ok {
		return g.keys[v], true
	}

	return Key{}, false
}

// AddEdge adds a directed edge from→to labeled with off. Both endpoints
// must already be nodes. Re-adding an existing pair overwrites the label.
// Returns ErrKeyNotFound, ErrSelfLoop, or ErrZeroOffset on invalid input.
// Complexity: O(1).
func (g *Graph) AddEdge(from, to rune, off Offset) error {
	if !g.HasKey(from) || !g.HasKey(to) {
		return ErrKeyNotFound
	}
	if from == to {
		return ErrSelfLoop
	}
	if off.IsZero() {
		return ErrZeroOffset
	}

	bucket, ok := g.adj[from]
	if !ok {
		bucket = make(map[rune]Offset)
		g.adj[from] = bucket
	}
	if _, exists := bucket[to]; !exists {
		g.edges++
	}
	bucket[to] = off

	return nil
}

// HasEdge reports whether a directed edge from→to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to rune) bool {
	_, ok := g.adj[from][to]

	return ok
}

// EdgeOffset returns the label of the directed edge from→to.
// Complexity: O(1).
func (g *Graph) EdgeOffset(from, to rune) (Offset, bool) {
	off, ok := g.adj[from][to]

	return off, ok
}

// Neighbor pairs an adjacent key with the offset of the edge leading to it.
type Neighbor struct {
	Key    Key
	Offset Offset
}

// Neighbors returns every key reachable by one directed edge from the key
// with the given value, sorted by target value ascending. Returns
// ErrKeyNotFound when the source key does not exist.
// Complexity: O(d log d) for out-degree d.
func (g *Graph) Neighbors(value rune) ([]Neighbor, error) {
	if !g.HasKey(value) {
		return nil, ErrKeyNotFound
	}

	bucket := g.adj[value]
	out := make([]Neighbor, 0, len(bucket))
	for to, off := range bucket {
		out = append(out, Neighbor{Key: g.keys[to], Offset: off})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key.Value < out[j].Key.Value })

	return out, nil
}

// Keys returns all keys sorted by unshifted value ascending.
// Complexity: O(V log V).
func (g *Graph) Keys() []Key {
	out := make([]Key, 0, len(g.keys))
	for _, k := range g.keys {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value < out[j].Value })

	return out
}

// KeyCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) KeyCount() int { return len(g.keys) }

// EdgeCount returns the number of directed edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return g.edges }
