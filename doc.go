// Package roadflow is the label-propagation kernel of a road-network routing
// and traffic-assignment engine: the data structures that let one graph sweep
// carry K simultaneous shortest-path searches, and the objective functions
// that turn per-edge flow into search weights between assignment iterations.
//
// 🚦 What is roadflow?
//
//	A small, hot-path-focused library that brings together:
//		• Packed distance labels: K tentative distances per vertex with
//		  lane-wise add, compare, minimum and priority-key operations
//		• Label masks: per-lane improvement flags keeping distance and
//		  parent updates mutually consistent
//		• Optional parent labels: per-lane parent vertex and parent edge
//		  bookkeeping, zero storage when disabled
//		• Stamped containers: per-vertex label stores reset in O(1) between
//		  searches via a clock/timestamp scheme
//		• Objective functions: system-optimum and user-equilibrium edge
//		  weights over pluggable travel-cost functions, scalar and 8-wide
//
// ✨ Why choose roadflow?
//
//   - One label API for sequential and parallel search — the atomic vs. plain
//     storage choice lives in the type, not behind a runtime flag
//   - No goroutines, no blocking, no error values in the relaxation path
//   - Pure Go — no cgo, a single test-only dependency
//   - The graph stays yours — the kernel sees only dense vertex/edge indices
//     and narrow attribute views
//
// Under the hood, everything is organized under two subpackages:
//
//	labels/ — distance labels, masks, parent labels, label sets & stamped containers
//	assign/ — traffic-assignment objective & travel-cost functions
//
// Quick sketch of the intended data flow:
//
//	assign.SystemOptimum over BPR costs → edge weights    (each assignment round)
//	your Dijkstra/A*/bidirectional driver                 (each shortest-path pass)
//	    holding a labels.LabelSet + labels.StampedContainer
//
// The outer search control loop and the assignment convergence procedure are
// deliberately not part of this module; the package examples show the
// consumer contract they are written against.
//
//	go get github.com/routelab/roadflow
package roadflow
