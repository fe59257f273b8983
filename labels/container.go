package labels

// StampedContainer stores one distance label per vertex together with a
// per-vertex timestamp and a container-wide clock. A label is logically part
// of the current search episode iff its timestamp equals the clock; any other
// stored bits are logically Infinity. Init therefore begins a new episode in
// O(1) by bumping the clock, instead of rewriting O(n) labels.
//
// Timestamps use the same cell discipline as the distance lanes, so under the
// Parallel instantiation the mutable accessor publishes a vertex's lazy reset
// with lanes-before-stamp ordering and Get reads stamp-before-lanes; a
// concurrent reader can never see a fresh stamp with stale lanes.
//
// The container is sized once, to the vertex count of the external graph, and
// is reused for all searches sharing it. Out-of-range vertex ids are a caller
// contract violation and panic via the slice bounds check.
type StampedContainer[C any, P Cell[C]] struct {
	set    LabelSet[C, P]
	lanes  []C                   // one flat slab of n*K cells
	labels []DistanceLabel[C, P] // per-vertex views into lanes
	stamps []C                   // episode stamp per vertex
	clock  int32                 // current episode; mutated only by Init
}

// NewStampedContainer builds a container for numVertices vertices backed by
// the given LabelSet. The lane storage is one contiguous slab, sliced into
// per-vertex labels.
//
// A fresh container is already in a valid first episode: every stamp is 0 and
// the clock is 1, so Get reports Infinity everywhere before the first Init.
//
// Returns ErrInvalidLabelSet if set was not built by NewSequential/NewParallel
// and ErrNegativeVertexCount if numVertices < 0.
func NewStampedContainer[C any, P Cell[C]](set LabelSet[C, P], numVertices int) (*StampedContainer[C, P], error) {
	if set.k < 1 {
		return nil, ErrInvalidLabelSet
	}
	if numVertices < 0 {
		return nil, ErrNegativeVertexCount
	}

	c := &StampedContainer[C, P]{
		set:    set,
		lanes:  make([]C, numVertices*set.k),
		labels: make([]DistanceLabel[C, P], numVertices),
		stamps: make([]C, numVertices),
		clock:  1,
	}
	for v := 0; v < numVertices; v++ {
		c.labels[v].lanes = c.lanes[v*set.k : (v+1)*set.k]
	}

	return c, nil
}

// NumVertices returns the number of vertex slots in the container.
func (c *StampedContainer[C, P]) NumVertices() int { return len(c.stamps) }

// LabelSet returns the label-set configuration backing this container.
func (c *StampedContainer[C, P]) LabelSet() LabelSet[C, P] { return c.set }

// Init begins a new search episode, logically resetting every distance label
// to Infinity in O(1) by advancing the clock. On signed overflow of the clock
// — astronomically rare, but the correctness backstop that keeps stale labels
// from leaking across the wrap — it falls back to a full O(n) stamp reset and
// restarts the clock at 1.
//
// Init marks an episode boundary: it must not run concurrently with any other
// access to the container.
func (c *StampedContainer[C, P]) Init() {
	c.clock++
	if c.clock < 0 {
		for v := range c.stamps {
			P(&c.stamps[v]).Store(0)
		}
		c.clock = 1
	}
}

// Label returns vertex v's distance label for in-place mutation. If v has not
// been touched this episode its lanes are first reset to Infinity and its
// stamp advanced to the clock; the lanes are written before the stamp, so a
// concurrent Get under the Parallel instantiation observes either the old
// episode (Infinity) or the fully reset label.
func (c *StampedContainer[C, P]) Label(v int) *DistanceLabel[C, P] {
	stamp := P(&c.stamps[v]).Load()
	if stamp != c.clock {
		if stamp > c.clock {
			panic(ErrStampAheadOfClock)
		}
		c.labels[v].Fill(Infinity)
		P(&c.stamps[v]).Store(c.clock)
	}

	return &c.labels[v]
}

// Get returns a copy of vertex v's distance label, or an all-Infinity label
// if v has not been touched this episode. Get never writes to the container,
// so it is safe to call from any number of concurrent readers and, under the
// Parallel instantiation, concurrently with Label and lane updates. Callers
// must not rely on Get performing the lazy reset that Label performs.
func (c *StampedContainer[C, P]) Get(v int) DistanceLabel[C, P] {
	if P(&c.stamps[v]).Load() != c.clock {
		return c.set.NewDistanceFilled(Infinity)
	}

	out := c.set.NewDistance()
	out.CopyFrom(&c.labels[v])

	return out
}
