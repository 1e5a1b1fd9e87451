package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lvsteiner/builder"
)

// ExampleBuildGraph builds a 3×3 grid with unit weights.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(3, 3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.NodeCount(), g.EdgeCount())
	// Output: 9 12
}
