// Package export renders keyboard adjacency graphs for diagnostics:
// Graphviz DOT text, SVG via Graphviz, and a JSON nodes/edges dump.
//
// These are inspection surfaces, not part of the compilation core: a
// misrendered dump never affects the graphs themselves.
package export

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/keygraph/core"
)

// Options configures DOT emission.
type Options struct {
	// OffsetLabels annotates every edge with its relative offset, e.g.
	// "(+1,-1)". When false edges are drawn bare.
	OffsetLabels bool
}

// ToDOT converts a keyboard graph to Graphviz DOT. Nodes are labeled with
// the key's character forms ("q/Q", "7"); emission follows the graph's
// sorted key order, so output is deterministic. The resulting string can
// be rendered with RenderSVG.
func ToDOT(g *core.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph keyboard {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	keys := g.Keys()
	for _, k := range keys {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", string(k.Value), k.String())
	}

	buf.WriteString("\n")
	for _, k := range keys {
		nbs, err := g.Neighbors(k.Value)
		if err != nil {
			continue
		}
		for _, nb := range nbs {
			if opts.OffsetLabels {
				fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n",
					string(k.Value), string(nb.Key.Value), nb.Offset.String())
				continue
			}
			fmt.Fprintf(&buf, "  %q -> %q;\n", string(k.Value), string(nb.Key.Value))
		}
	}

	buf.WriteString("}\n")

	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("export: init graphviz: %w", err)
	}
	defer gv.Close()

	parsed, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("export: parse DOT: %w", err)
	}
	defer parsed.Close()

	var buf bytes.Buffer
	if err = gv.Render(ctx, parsed, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("export: render: %w", err)
	}

	return buf.Bytes(), nil
}
