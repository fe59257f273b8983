package assign_test

import (
	"fmt"

	"github.com/routelab/roadflow/assign"
)

// ExampleSystemOptimum shows the weight computation an assignment loop runs
// before each shortest-path pass: scalar for a single edge, 8-wide for eight
// consecutive edges with contiguous flow values.
func ExampleSystemOptimum() {
	// cost(e, x) = a[e] + b[e]·x on nine edges.
	cost, _ := assign.NewLinearCost(
		[]float64{10, 1, 2, 3, 4, 5, 6, 7, 8},
		[]float64{2, 1, 1, 1, 1, 1, 1, 1, 1},
	)
	so, _ := assign.NewSystemOptimum(cost)

	// Marginal social cost of edge 0 at flow 5: 10 + 2·2·5.
	fmt.Println("edge 0:", so.EdgeWeight(0, 5))

	// Edges 1..8 in one batched call.
	weights := so.EdgeWeights8(1, assign.Flow8{1, 1, 1, 1, 1, 1, 1, 1})
	fmt.Println("edges 1-8:", weights)
	// Output:
	// edge 0: 30
	// edges 1-8: [3 4 5 6 7 8 9 10]
}

// ExampleUserEquilibrium shows substituting another member of the objective
// family over the same travel-cost function.
func ExampleUserEquilibrium() {
	cost, _ := assign.NewLinearCost([]float64{10}, []float64{2})
	ue, _ := assign.NewUserEquilibrium(cost)

	fmt.Println("edge 0:", ue.EdgeWeight(0, 5))
	// Output:
	// edge 0: 20
}
