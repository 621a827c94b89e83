package layout_test

import (
	"fmt"

	"github.com/katalvlaran/keygraph/layout"
	"github.com/katalvlaran/keygraph/near"
)

// ExampleQWERTY demonstrates shift-agnostic lookup on the built-in QWERTY
// graph: probing by the shifted character resolves the physical key.
func ExampleQWERTY() {
	g := layout.QWERTY()

	key, ok := g.FindKey('!')
	if !ok {
		fmt.Println("not found")
		return
	}
	fmt.Println(key)

	nbs, err := g.Neighbors(key.Value)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, nb := range nbs {
		fmt.Println(nb.Key, nb.Offset)
	}
	// Output:
	// 1/!
	// 2/@ (+1,+0)
	// `/~ (-1,+0)
	// q/Q (+0,+1)
}

// ExampleStandardNumpad shows the typo-simulation question the graphs
// exist to answer: which keys sit one slip away from 5?
func ExampleStandardNumpad() {
	keys, err := near.Nearby(layout.StandardNumpad(), '5', 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, k := range keys {
		fmt.Print(string(k.Value))
	}
	fmt.Println()
	// Output:
	// 12346789
}
