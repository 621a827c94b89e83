// Package layout ships the built-in keyboard layouts and compiles layout
// specifications into adjacency graphs.
//
// A Spec is static per-layout configuration: which geometry to use, the
// row-text block, whether to pre-populate the 26 letter pairs and the 10
// unshifted digits, an explicit table of remaining keys with their shifted
// counterparts, and the missing-key policy. Spec.Build pre-registers all
// known keys as nodes, then runs the connector over the parsed rows.
//
// Four layouts are built in, each exposed through a memoized accessor:
//
//	QWERTY()         — US QWERTY, slanted geometry
//	Dvorak()         — Dvorak, slanted geometry
//	StandardNumpad() — PC numpad, aligned geometry
//	MacNumpad()      — Apple numpad, aligned geometry
//
// Each accessor builds its graph exactly once, on first access, guarded by
// a one-time initialization; the result is immutable and safe for any
// number of concurrent readers. The preset tables are compiled-in
// constants, so a build failure there is a programmer error and panics
// with the layout name — user-supplied specs go through Spec.Build, which
// returns errors.
//
// Custom layouts can be described in a TOML manifest and decoded with
// LoadSpec / LoadSpecFile; the row grammar is the same informal DSL the
// presets use (lines = rows, space-separated keys, one sentinel token per
// deliberate gap).
package layout
