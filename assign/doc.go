// Package assign provides the edge-weight objective functions that iterative
// traffic-assignment procedures feed their shortest-path passes with, together
// with the travel-cost functions they are composed from.
//
// Overview:
//
// Traffic assignment repeatedly alternates between computing shortest paths
// under the current edge weights and shifting flow onto them. What varies
// between assignment variants is only how a per-edge flow becomes a search
// weight:
//
//   - SystemOptimum weighs an edge by its marginal social cost
//     cost(e,x) + x·∂cost/∂x — the flow pattern minimizing it minimizes total
//     travel cost across all travelers.
//   - UserEquilibrium weighs an edge by its plain travel cost cost(e,x) — the
//     fixed point where no traveler can improve their own travel time.
//
// Both objectives are thin compositions over a pluggable TravelCostFunction,
// a capability exposing the cost and its first derivative with respect to
// flow. Any implementation of the capability slots into any objective without
// changing the weight-composition formula. Two concrete cost functions ship
// with the package:
//
//   - LinearCost — cost a_e + b_e·x over per-edge coefficient slices.
//   - BPRCost    — the Bureau of Public Roads congestion curve
//     t0_e·(1 + 0.15·(x/cap_e)^4) over index-based edge attributes.
//
// Batched evaluation:
//
// Every operation comes in a scalar form (one edge, one flow) and an 8-wide
// form (eight consecutive edges, eight flows, BatchSize apart), so the
// assignment outer loop can sweep contiguous flow arrays a cache line at a
// time. The batched forms are defined to be numerically identical, lane for
// lane, to eight independent scalar calls; the implementations evaluate the
// same scalar expression per lane, which makes the equivalence exact to the
// bit rather than merely within rounding.
//
// Error handling:
//
// Constructors validate their inputs (nil cost functions, mismatched
// coefficient slices) and return sentinel errors. Evaluation never returns
// errors: edge ids outside the constructed range are a caller contract
// violation, as in the labels package.
package assign
