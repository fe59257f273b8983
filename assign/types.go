// Package assign defines the capability contracts and sentinel errors shared
// by the objective and travel-cost functions.
package assign

import "errors"

// BatchSize is the width of every batched entry point: eight consecutive
// edges sharing contiguous flow values per call.
const BatchSize = 8

// Flow8 carries one value per lane of a batched call: the flows on eight
// consecutive edges on the way in, their costs, derivatives or weights on the
// way out. A fixed-size array rather than a slice, so width mismatches fail
// to compile.
type Flow8 [BatchSize]float64

// TravelCostFunction is the capability an objective function composes over:
// the travel cost of an edge as a function of the flow on it, and the first
// derivative of that cost with respect to flow, each in scalar and 8-wide
// batched form.
//
// Batched contract: lane i of Cost8(e, xs) equals Cost(e+i, xs[i]) exactly,
// and likewise for Derivative8. The batched forms exist for throughput only.
type TravelCostFunction interface {
	// Cost returns the travel cost on edge e carrying flow x.
	Cost(e int, x float64) float64

	// Derivative returns d(cost)/d(flow) on edge e at flow x.
	Derivative(e int, x float64) float64

	// Cost8 returns the travel costs on edges e..e+7 carrying flows xs.
	Cost8(e int, xs Flow8) Flow8

	// Derivative8 returns the cost derivatives on edges e..e+7 at flows xs.
	Derivative8(e int, xs Flow8) Flow8
}

// ObjectiveFunction converts per-edge flow into the search weight a
// shortest-path pass uses. All members of the objective family satisfy it, so
// the assignment outer loop is written against this interface alone.
type ObjectiveFunction interface {
	// EdgeWeight returns the weight of edge e, given the flow x on e.
	EdgeWeight(e int, x float64) float64

	// EdgeWeights8 returns the weights of edges e..e+7, given the flows xs on
	// them; lane-for-lane identical to eight EdgeWeight calls.
	EdgeWeights8(e int, xs Flow8) Flow8
}

// EdgeAttributes is the narrow view of the external graph's per-edge
// attribute storage that attribute-driven cost functions need: lookups by
// dense edge index, nothing more.
type EdgeAttributes interface {
	// FreeFlowTime returns the uncongested travel time of edge e.
	FreeFlowTime(e int) float64

	// Capacity returns the nominal capacity of edge e.
	Capacity(e int) float64
}

// Sentinel errors returned by constructors in this package.
var (
	// ErrNilCostFunction indicates an objective was constructed over a nil
	// travel-cost function.
	ErrNilCostFunction = errors.New("assign: travel-cost function is nil")

	// ErrNilAttributes indicates a cost function was constructed over a nil
	// edge-attribute view.
	ErrNilAttributes = errors.New("assign: edge attributes are nil")

	// ErrCoefficientMismatch indicates per-edge coefficient slices of
	// different lengths.
	ErrCoefficientMismatch = errors.New("assign: coefficient slices differ in length")
)
