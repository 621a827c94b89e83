// Package connect turns a parsed layout grid into graph edges.
//
// For every non-sentinel grid cell, the connector resolves the cell's
// character to a key (per the missing-key policy), then probes each
// relative offset of the layout's geometry: in-bounds, non-sentinel
// targets that resolve to a key gain a directed edge from the source,
// labeled with the offset. Reciprocal edges are never added explicitly:
// the offset sets are closed under negation, so exhaustive iteration
// discovers each adjacent pair once from each side.
//
// This is a best-effort adjacency builder, not a layout validator: in the
// default permissive mode, out-of-range lookups and unresolvable
// characters are skipped (or synthesized, per policy) without error.
// WithStrict opts into surfacing unresolved characters for hand-authored
// layout tables.
package connect

import (
	"fmt"

	"github.com/katalvlaran/keygraph/core"
	"github.com/katalvlaran/keygraph/geometry"
	"github.com/katalvlaran/keygraph/grid"
)

// connector encapsulates one Connect run.
type connector struct {
	graph   *core.Graph
	rows    grid.Grid
	offsets []core.Offset
	opts    Options
}

// Connect wires directed, offset-labeled edges between the keys referenced
// by gr, using the offset set of style. The graph must already hold every
// referenced key under the Preregistered policy; under AutoCreate unknown
// characters become shiftless keys. Sentinel cells never become nodes.
//
// Returns ErrGraphNil or ErrOptionViolation on invalid input, and
// ErrUnknownKey (with grid coordinates) in strict mode. In permissive mode
// connection itself has no fatal outcomes.
// Complexity: O(cells × offsets).
func Connect(g *core.Graph, gr grid.Grid, style geometry.Style, opts ...Option) error {
	if g == nil {
		return ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}

	c := &connector{graph: g, rows: gr, offsets: style.Offsets(), opts: o}

	return c.run()
}

// run visits every cell and connects it to its resolvable neighbors.
func (c *connector) run() error {
	for i, row := range c.rows {
		for j, ch := range row {
			if ch == core.Sentinel {
				continue // gaps occupy a column but are never keys
			}

			src, ok, err := c.resolve(ch, i, j)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			c.opts.Logger.Debug("connecting key", "key", src.String(), "row", i, "col", j)

			if err = c.connectNeighbors(src, i, j); err != nil {
				return err
			}
		}
	}

	return nil
}

// connectNeighbors probes every geometry offset around (i, j) and adds an
// edge toward each resolvable target.
func (c *connector) connectNeighbors(src core.Key, i, j int) error {
	for _, off := range c.offsets {
		y := i + int(off.Vertical)
		x := j + int(off.Horizontal)

		target, inBounds := c.rows.At(y, x)
		if !inBounds || target == core.Sentinel {
			continue
		}

		dst, ok, err := c.resolve(target, y, x)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		// Duplicate characters in a grid would self-loop here; the builder
		// is best-effort, so the edge is dropped rather than fatal.
		if err = c.graph.AddEdge(src.Value, dst.Value, off); err != nil {
			c.opts.Logger.Debug("edge skipped",
				"from", src.String(), "to", dst.String(), "offset", off.String(), "reason", err)
		}
	}

	return nil
}

// resolve maps a grid character to a key per the missing-key policy.
// The bool result reports whether a key is available for connection.
func (c *connector) resolve(ch rune, row, col int) (core.Key, bool, error) {
	if k, found := c.graph.FindKey(ch); found {
		return k, true, nil
	}

	if c.opts.Policy == AutoCreate {
		k := core.Key{Value: ch, Shifted: core.Sentinel}
		if err := c.graph.AddKey(k); err != nil {
			// Only a sentinel value can fail here, and sentinels are
			// filtered before resolve; treat as unresolvable.
			c.opts.Logger.Debug("auto-create failed", "char", string(ch), "reason", err)

			return core.Key{}, false, nil
		}
		c.opts.Logger.Debug("auto-created key", "key", k.String(), "row", row, "col", col)

		return k, true, nil
	}

	if c.opts.Strict {
		return core.Key{}, false, fmt.Errorf("%w: %q at row %d col %d", ErrUnknownKey, ch, row, col)
	}
	c.opts.Logger.Debug("key not registered, skipping", "char", string(ch), "row", row, "col", col)

	return core.Key{}, false, nil
}
