// File: spec.go
// Role: layout specification and its compiler (pre-populate + connect).
package layout

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/katalvlaran/keygraph/connect"
	"github.com/katalvlaran/keygraph/core"
	"github.com/katalvlaran/keygraph/geometry"
	"github.com/katalvlaran/keygraph/grid"
)

// Convenience alphabets iterated by the pre-population helpers.
const (
	alphabet = "abcdefghijklmnopqrstuvwxyz"
	numbers  = "0123456789"
)

// ErrBadSpec indicates a layout specification that cannot be compiled.
var ErrBadSpec = errors.New("layout: invalid layout spec")

// Spec is the static configuration of one layout. Lifetime is constant
// for the process; Build never mutates it.
type Spec struct {
	// Name identifies the layout in errors and diagnostics.
	Name string

	// Style selects the geometry (slanted or aligned).
	Style geometry.Style

	// Rows is the layout text block: lines top-to-bottom, space-separated
	// keys left-to-right, core.Sentinel for deliberate gaps.
	Rows string

	// Alphabetics pre-populates the 26 lowercase/uppercase letter pairs.
	Alphabetics bool

	// Digits pre-populates the 10 digits as unshifted keys.
	Digits bool

	// Keys lists the remaining keys (punctuation with shift variants, …)
	// to pre-register before connection.
	Keys []core.Key

	// Policy is the connector's missing-key policy.
	Policy connect.Policy
}

// Build compiles the spec into a graph: all known keys are registered as
// nodes first, then the connector wires the edges. Extra connector options
// (strict mode, logging) are applied after the spec's policy; later
// options win, so a caller can also override the policy per build.
// Complexity: O(keys + cells × offsets).
func (s Spec) Build(opts ...connect.Option) (*core.Graph, error) {
	g := core.NewGraph()

	if s.Alphabetics {
		if err := addAlphabetics(g); err != nil {
			return nil, fmt.Errorf("layout %q: %w", s.Name, err)
		}
	}
	if s.Digits {
		if err := addUnshiftedDigits(g); err != nil {
			return nil, fmt.Errorf("layout %q: %w", s.Name, err)
		}
	}
	for _, k := range s.Keys {
		if err := g.AddKey(k); err != nil {
			return nil, fmt.Errorf("layout %q: key %s: %w", s.Name, k, err)
		}
	}

	connOpts := append([]connect.Option{connect.WithPolicy(s.Policy)}, opts...)
	if err := connect.Connect(g, grid.Parse(s.Rows), s.Style, connOpts...); err != nil {
		return nil, fmt.Errorf("layout %q: %w", s.Name, err)
	}

	return g, nil
}

// addAlphabetics registers the 26 letter keys. Unshifted is lowercase and
// shifted is uppercase on every supported alphabetic layout, so these keys
// are common to QWERTY and Dvorak.
func addAlphabetics(g *core.Graph) error {
	for _, c := range alphabet {
		k := core.Key{Value: c, Shifted: unicode.ToUpper(c)}
		if err := g.AddKey(k); err != nil {
			return err
		}
	}

	return nil
}

// addUnshiftedDigits registers the 10 digit keys without shift variants,
// the typical numpad arrangement.
func addUnshiftedDigits(g *core.Graph) error {
	for _, c := range numbers {
		if err := g.AddKey(core.Key{Value: c, Shifted: core.Sentinel}); err != nil {
			return err
		}
	}

	return nil
}
