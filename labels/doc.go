// Package labels provides the packed distance-label machinery that shortest-path
// searches over static road networks are written against: multi-source distance
// labels, label masks, optional parent bookkeeping, and a lazily-reset
// per-vertex label container.
//
// Overview:
//
//   - A DistanceLabel packs K tentative distances per vertex, one for each of K
//     simultaneous single-source searches sharing one multi-source Dijkstra
//     sweep. All operations (add-scalar, less-than, minimum, key) act lane-wise,
//     so the same relaxation code serves K = 1 scalar Dijkstra and K = 16
//     batched point-to-point queries alike.
//   - A LabelMask is the result of a packed comparison: K booleans marking the
//     lanes where a candidate label improved on the incumbent. Distance and
//     parent updates driven by the same mask stay mutually consistent per lane.
//   - A ParentLabel optionally records, per lane, the parent vertex (and
//     optionally the parent edge) on the best-known path. Disabled capabilities
//     occupy zero storage.
//   - A LabelSet bundles one choice of (K, parent-tracking level) together with
//     a storage discipline; it is the single configuration point an outer
//     search algorithm needs.
//   - A StampedContainer stores one DistanceLabel per vertex and resets in O(1)
//     amortized time between searches using a clock/timestamp scheme, instead
//     of touching every vertex.
//
// Storage disciplines:
//
// Every label type is generic over a storage cell. Two instantiations exist:
//
//   - PlainCell  — ordinary loads and stores; for sequential searches.
//   - AtomicCell — atomic loads and stores; for parallel bidirectional searches
//     where forward and backward halves run on separate goroutines.
//
// The discipline is part of the type (Sequential vs Parallel label sets), so
// plain and atomic access can never alias the same storage, and code written
// for one discipline cannot silently be handed the other.
//
// Concurrency contract:
//
// The package starts no goroutines and never blocks. Under the Parallel
// instantiation it upholds exactly one cross-goroutine guarantee: a write to a
// vertex's distance lanes is visible to a concurrent reader no later than the
// write to that vertex's timestamp, so StampedContainer.Get can never observe
// a fresh timestamp paired with stale distances. Init marks an episode boundary
// and must not run concurrently with any other access. All higher-level
// coordination belongs to the driver.
//
// Error handling:
//
// Constructors validate their configuration and return sentinel errors.
// Hot-path methods (lane access, relaxation, container access) never return
// errors: out-of-range vertex ids and lane indices are caller contract
// violations and fail as panics, matching the package's role as an internal
// data-path structure rather than an input boundary.
//
// Quick example (two sources, parent vertices, sequential):
//
//	set, _ := labels.NewSequential(2, labels.ParentVertices)
//	store, _ := labels.NewStampedContainer(set, numVertices)
//	store.Init()                     // new search episode, O(1)
//	l := store.Label(source)         // lazily reset to infinity
//	l.Set(0, 0)                      // source of lane 0
//	...
//	cand := store.Label(u).Add(w)    // extend across an edge of weight w
//	mask := cand.Less(store.Label(v))
//	if mask.Any() {
//	    store.Label(v).Min(&cand)
//	    parent[v].SetVertex(u, mask) // same mask keeps parents consistent
//	}
//
// See the package examples for a complete multi-source relaxation loop.
package labels
