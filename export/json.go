// File: json.go
// Role: JSON nodes/edges dump of a keyboard graph.
package export

import (
	"github.com/goccy/go-json"

	"github.com/katalvlaran/keygraph/core"
)

// jsonKey is the wire form of one node. Shifted is omitted for keys
// without a shift variant.
type jsonKey struct {
	Value   string `json:"value"`
	Shifted string `json:"shifted,omitempty"`
}

// jsonEdge is the wire form of one directed edge with its offset label.
type jsonEdge struct {
	From       string `json:"from"`
	To         string `json:"to"`
	Horizontal int    `json:"horizontal"`
	Vertical   int    `json:"vertical"`
}

// jsonGraph is the top-level dump document.
type jsonGraph struct {
	Keys  []jsonKey  `json:"keys"`
	Edges []jsonEdge `json:"edges"`
}

// ToJSON dumps a keyboard graph as a JSON document with sorted keys and
// edges arrays. Deterministic for a fixed graph.
func ToJSON(g *core.Graph) ([]byte, error) {
	keys := g.Keys()
	doc := jsonGraph{
		Keys:  make([]jsonKey, 0, len(keys)),
		Edges: make([]jsonEdge, 0, g.EdgeCount()),
	}

	for _, k := range keys {
		jk := jsonKey{Value: string(k.Value)}
		if k.HasShift() {
			jk.Shifted = string(k.Shifted)
		}
		doc.Keys = append(doc.Keys, jk)
	}

	for _, k := range keys {
		nbs, err := g.Neighbors(k.Value)
		if err != nil {
			return nil, err
		}
		for _, nb := range nbs {
			doc.Edges = append(doc.Edges, jsonEdge{
				From:       string(k.Value),
				To:         string(nb.Key.Value),
				Horizontal: int(nb.Offset.Horizontal),
				Vertical:   int(nb.Offset.Vertical),
			})
		}
	}

	return json.Marshal(doc)
}
