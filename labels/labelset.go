package labels

// LabelSet is the single configuration point for one search setup: the lane
// count K and the parent-tracking level, fixed at construction, plus the
// storage discipline fixed by instantiation. An outer search algorithm holds
// one LabelSet and obtains all its distance and parent labels from it; it
// never hard-codes K or the parent policy.
type LabelSet[C any, P Cell[C]] struct {
	k          int
	parentInfo ParentInfo
}

// Sequential is a LabelSet whose labels use plain, non-atomic storage. The
// fast choice for searches confined to one goroutine.
type Sequential = LabelSet[PlainCell, *PlainCell]

// Parallel is a LabelSet whose labels use atomic storage, for searches whose
// halves run on separate goroutines against one shared container.
type Parallel = LabelSet[AtomicCell, *AtomicCell]

// NewSequential builds a non-atomic LabelSet with k simultaneous sources and
// the given parent-tracking level.
//
// Returns ErrNonPositiveLanes if k < 1 and ErrUnknownParentInfo if info is
// outside the NoParentInfo..FullParentInfo ladder.
func NewSequential(k int, info ParentInfo) (Sequential, error) {
	return newLabelSet[PlainCell, *PlainCell](k, info)
}

// NewParallel builds an atomic LabelSet with k simultaneous sources and the
// given parent-tracking level. Same validation as NewSequential.
func NewParallel(k int, info ParentInfo) (Parallel, error) {
	return newLabelSet[AtomicCell, *AtomicCell](k, info)
}

// newLabelSet validates and assembles a LabelSet for any cell discipline.
func newLabelSet[C any, P Cell[C]](k int, info ParentInfo) (LabelSet[C, P], error) {
	if k < 1 {
		return LabelSet[C, P]{}, ErrNonPositiveLanes
	}
	if info < NoParentInfo || info > FullParentInfo {
		return LabelSet[C, P]{}, ErrUnknownParentInfo
	}

	return LabelSet[C, P]{k: k, parentInfo: info}, nil
}

// K returns the number of simultaneous sources.
func (s LabelSet[C, P]) K() int { return s.k }

// KeepsParentVertices reports whether labels from this set record parent
// vertices (true at ParentVertices and FullParentInfo).
func (s LabelSet[C, P]) KeepsParentVertices() bool { return s.parentInfo != NoParentInfo }

// KeepsParentEdges reports whether labels from this set record parent edges
// (true only at FullParentInfo).
func (s LabelSet[C, P]) KeepsParentEdges() bool { return s.parentInfo == FullParentInfo }

// Shared reports whether this set's labels use the atomic storage discipline.
func (s LabelSet[C, P]) Shared() bool {
	var c C

	return P(&c).Shared()
}

// NewDistance returns an uninitialized K-lane distance label. Every lane must
// be assigned before it is read.
func (s LabelSet[C, P]) NewDistance() DistanceLabel[C, P] {
	return DistanceLabel[C, P]{lanes: make([]C, s.k)}
}

// NewDistanceFilled returns a K-lane distance label with every lane set to d.
func (s LabelSet[C, P]) NewDistanceFilled(d int32) DistanceLabel[C, P] {
	l := s.NewDistance()
	l.Fill(d)

	return l
}

// NewParent returns a parent label sized to this set's parent-tracking level:
// no storage at NoParentInfo, vertices at ParentVertices, vertices and edges
// at FullParentInfo. Enabled lanes start at InvalidVertex/InvalidEdge.
func (s LabelSet[C, P]) NewParent() ParentLabel {
	var p ParentLabel
	if s.parentInfo != NoParentInfo {
		p.vertices = make([]int32, s.k)
	}
	if s.parentInfo == FullParentInfo {
		p.edges = make([]int32, s.k)
	}
	p.Reset()

	return p
}

// MarkLane returns a mask over this set's K lanes marking only lane i.
func (s LabelSet[C, P]) MarkLane(i int) LabelMask { return MarkLane(s.k, i) }
