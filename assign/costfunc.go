package assign

// LinearCost is the affine travel-cost function cost(e, x) = a_e + b_e·x with
// derivative b_e, over per-edge coefficient slices. Cheap, exactly
// differentiable, and the reference function for validating objective
// compositions: under SystemOptimum it yields the closed form a_e + 2·b_e·x.
type LinearCost struct {
	a []float64 // constant term per edge
	b []float64 // slope per edge
}

var _ TravelCostFunction = LinearCost{}

// NewLinearCost builds a linear travel-cost function from per-edge constant
// terms a and slopes b. The slices are retained, not copied; edge e is valid
// for 0 <= e < len(a). Returns ErrCoefficientMismatch if the lengths differ.
func NewLinearCost(a, b []float64) (LinearCost, error) {
	if len(a) != len(b) {
		return LinearCost{}, ErrCoefficientMismatch
	}

	return LinearCost{a: a, b: b}, nil
}

// Cost returns a_e + b_e·x.
func (f LinearCost) Cost(e int, x float64) float64 { return f.a[e] + f.b[e]*x }

// Derivative returns b_e.
func (f LinearCost) Derivative(e int, x float64) float64 { return f.b[e] }

// Cost8 returns the costs of edges e..e+7 at flows xs.
func (f LinearCost) Cost8(e int, xs Flow8) Flow8 {
	var out Flow8
	for i := range out {
		out[i] = f.Cost(e+i, xs[i])
	}

	return out
}

// Derivative8 returns the cost derivatives of edges e..e+7 at flows xs.
func (f LinearCost) Derivative8(e int, xs Flow8) Flow8 {
	var out Flow8
	for i := range out {
		out[i] = f.Derivative(e+i, xs[i])
	}

	return out
}

// BPRCost is the Bureau of Public Roads travel-cost function
//
//	cost(e, x) = t0_e · (1 + 0.15 · (x / cap_e)^4)
//
// with derivative t0_e · 0.6 · x³ / cap_e⁴, the standard congestion curve for
// road links. Free-flow time t0 and capacity come from the external graph's
// per-edge attribute storage through the EdgeAttributes view.
type BPRCost struct {
	attrs EdgeAttributes
}

var _ TravelCostFunction = BPRCost{}

// NewBPRCost builds a BPR travel-cost function over the given attribute view.
// Returns ErrNilAttributes if attrs is nil.
func NewBPRCost(attrs EdgeAttributes) (BPRCost, error) {
	if attrs == nil {
		return BPRCost{}, ErrNilAttributes
	}

	return BPRCost{attrs: attrs}, nil
}

// Cost returns t0_e · (1 + 0.15·(x/cap_e)^4).
func (f BPRCost) Cost(e int, x float64) float64 {
	ratio := x / f.attrs.Capacity(e)
	pow4 := ratio * ratio * ratio * ratio

	return f.attrs.FreeFlowTime(e) * (1 + 0.15*pow4)
}

// Derivative returns t0_e · 0.6·x³ / cap_e⁴.
func (f BPRCost) Derivative(e int, x float64) float64 {
	capacity := f.attrs.Capacity(e)
	pow4 := capacity * capacity * capacity * capacity

	return f.attrs.FreeFlowTime(e) * 0.6 * (x * x * x) / pow4
}

// Cost8 returns the costs of edges e..e+7 at flows xs.
func (f BPRCost) Cost8(e int, xs Flow8) Flow8 {
	var out Flow8
	for i := range out {
		out[i] = f.Cost(e+i, xs[i])
	}

	return out
}

// Derivative8 returns the cost derivatives of edges e..e+7 at flows xs.
func (f BPRCost) Derivative8(e int, xs Flow8) Flow8 {
	var out Flow8
	for i := range out {
		out[i] = f.Derivative(e+i, xs[i])
	}

	return out
}
