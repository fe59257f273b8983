package assign

// SystemOptimum is the system-optimum objective function. The flow pattern
// that minimizes it (subject to flow conservation) minimizes the total travel
// cost over all travelers, and is obtained by iterative shortest-path
// computations under marginal-social-cost edge weights:
//
//	weight(e, x) = cost(e, x) + x · d(cost)/d(flow)(e, x)
type SystemOptimum struct {
	cost TravelCostFunction
}

var _ ObjectiveFunction = SystemOptimum{}

// NewSystemOptimum builds a system-optimum objective over the given
// travel-cost function. Returns ErrNilCostFunction if cost is nil.
func NewSystemOptimum(cost TravelCostFunction) (SystemOptimum, error) {
	if cost == nil {
		return SystemOptimum{}, ErrNilCostFunction
	}

	return SystemOptimum{cost: cost}, nil
}

// EdgeWeight returns the marginal social cost of edge e at flow x.
func (o SystemOptimum) EdgeWeight(e int, x float64) float64 {
	return o.cost.Cost(e, x) + x*o.cost.Derivative(e, x)
}

// EdgeWeights8 returns the marginal social costs of edges e..e+7 at flows xs.
// Lane i evaluates the same expression as EdgeWeight(e+i, xs[i]), so the
// batched result is bit-identical to eight scalar calls.
func (o SystemOptimum) EdgeWeights8(e int, xs Flow8) Flow8 {
	costs := o.cost.Cost8(e, xs)
	derivs := o.cost.Derivative8(e, xs)

	var weights Flow8
	for i := range weights {
		weights[i] = costs[i] + xs[i]*derivs[i]
	}

	return weights
}

// UserEquilibrium is the user-equilibrium objective function. Its minimizing
// flow pattern is the Wardrop equilibrium, where no traveler can lower their
// own travel time by switching paths; the edge weight is simply the travel
// cost at the current flow.
type UserEquilibrium struct {
	cost TravelCostFunction
}

var _ ObjectiveFunction = UserEquilibrium{}

// NewUserEquilibrium builds a user-equilibrium objective over the given
// travel-cost function. Returns ErrNilCostFunction if cost is nil.
func NewUserEquilibrium(cost TravelCostFunction) (UserEquilibrium, error) {
	if cost == nil {
		return UserEquilibrium{}, ErrNilCostFunction
	}

	return UserEquilibrium{cost: cost}, nil
}

// EdgeWeight returns the travel cost of edge e at flow x.
func (o UserEquilibrium) EdgeWeight(e int, x float64) float64 {
	return o.cost.Cost(e, x)
}

// EdgeWeights8 returns the travel costs of edges e..e+7 at flows xs.
func (o UserEquilibrium) EdgeWeights8(e int, xs Flow8) Flow8 {
	return o.cost.Cost8(e, xs)
}
