// File: registry.go
// Role: process-wide lazily-initialized accessors for the built-in layouts.
//
// Each graph is built exactly once on first access, guarded by sync.Once,
// and treated as read-only thereafter, safe for concurrent readers with
// no further locking. Concurrent first access is safe: Once serializes the
// build and every caller observes the same completed graph, never a
// partial one.
package layout

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/keygraph/core"
)

var (
	qwertyOnce  sync.Once
	qwertyGraph *core.Graph

	dvorakOnce  sync.Once
	dvorakGraph *core.Graph

	stdNumpadOnce  sync.Once
	stdNumpadGraph *core.Graph

	macNumpadOnce  sync.Once
	macNumpadGraph *core.Graph
)

// QWERTY returns the US QWERTY adjacency graph.
func QWERTY() *core.Graph {
	qwertyOnce.Do(func() { qwertyGraph = mustBuild(qwertySpec) })

	return qwertyGraph
}

// Dvorak returns the Dvorak adjacency graph.
func Dvorak() *core.Graph {
	dvorakOnce.Do(func() { dvorakGraph = mustBuild(dvorakSpec) })

	return dvorakGraph
}

// StandardNumpad returns the PC numpad adjacency graph.
func StandardNumpad() *core.Graph {
	stdNumpadOnce.Do(func() { stdNumpadGraph = mustBuild(standardNumpadSpec) })

	return stdNumpadGraph
}

// MacNumpad returns the Apple numpad adjacency graph.
func MacNumpad() *core.Graph {
	macNumpadOnce.Do(func() { macNumpadGraph = mustBuild(macNumpadSpec) })

	return macNumpadGraph
}

// mustBuild compiles a built-in spec. The preset tables are compile-time
// constants validated by this package's tests, so a failure here is
// corrupted preset data: a programmer error, not a runtime condition.
func mustBuild(s Spec) *core.Graph {
	g, err := s.Build()
	if err != nil {
		panic(fmt.Sprintf("layout: building built-in layout %q: %v", s.Name, err))
	}

	return g
}
