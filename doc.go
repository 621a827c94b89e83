// Package keygraph compiles static keyboard-layout descriptions into
// directed adjacency graphs of physical keys.
//
// Each named layout (QWERTY, Dvorak, standard numpad, Mac numpad) is
// described by a small text block — one line per keyboard row, keys
// separated by spaces, a sentinel marking deliberate gaps — and compiled
// into a graph whose nodes are keys (unshifted/shifted character pair)
// and whose directed edges carry the relative spatial offset between
// grid-adjacent keys. Consumers use the graphs to reason about "keys
// near this key": typo simulation, password-strength heuristics, swipe
// and gesture input models.
//
// Everything is organized under small, single-concern subpackages:
//
//	core/     — Key, Direction, Offset and the directed Graph container
//	geometry/ — slanted (6-neighbor) and aligned (8-neighbor) offset sets
//	grid/     — row grammar: layout text block → ragged rune grid
//	connect/  — the connector: grid + geometry → labeled edges
//	layout/   — the four preset layouts, memoized registry, TOML manifests
//	near/     — breadth-first "keys within n steps" queries
//	export/   — DOT / SVG / JSON diagnostic dumps
//
// Quick start:
//
//	g := layout.QWERTY()
//	key, _ := g.FindKey('Q')       // shift-agnostic lookup → {q, Q}
//	nbs, _ := g.Neighbors(key.Value)
//	for _, nb := range nbs {
//	    fmt.Println(string(nb.Key.Value), nb.Offset)
//	}
//
// Layout graphs are built once on first access and are immutable and safe
// for concurrent readers thereafter.
//
//	go get github.com/katalvlaran/keygraph
package keygraph
