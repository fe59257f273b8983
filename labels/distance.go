package labels

// DistanceLabel packs K tentative distances for one vertex, one lane per
// simultaneous search source. All operations are lane-wise; K = 1 degenerates
// to plain scalar Dijkstra with every operation acting on a length-1 vector.
//
// The cell parameter fixes the storage discipline: DistanceLabel[PlainCell,
// *PlainCell] for sequential searches, DistanceLabel[AtomicCell, *AtomicCell]
// for parallel ones. Labels are created by a LabelSet or a StampedContainer;
// the zero value has no lanes and is unusable.
type DistanceLabel[C any, P Cell[C]] struct {
	lanes []C
}

// K returns the number of lanes in the label.
func (l *DistanceLabel[C, P]) K() int { return len(l.lanes) }

// At returns the distance in lane i.
func (l *DistanceLabel[C, P]) At(i int) int32 { return P(&l.lanes[i]).Load() }

// Set overwrites the distance in lane i.
func (l *DistanceLabel[C, P]) Set(i int, d int32) { P(&l.lanes[i]).Store(d) }

// Fill assigns d to every lane, e.g. Infinity at episode start or 0 for a
// label whose vertex is a source in every lane.
func (l *DistanceLabel[C, P]) Fill(d int32) {
	for i := range l.lanes {
		P(&l.lanes[i]).Store(d)
	}
}

// CopyFrom copies every lane of other into l. Lanes are copied independently;
// under the atomic discipline each lane transfer is one atomic load followed
// by one atomic store, with no cross-lane snapshot guarantee.
func (l *DistanceLabel[C, P]) CopyFrom(other *DistanceLabel[C, P]) {
	for i := range l.lanes {
		P(&l.lanes[i]).Store(P(&other.lanes[i]).Load())
	}
}

// Add returns a new label holding l with every lane incremented by w: the
// candidate distances obtained by extending l across an edge of weight w.
func (l *DistanceLabel[C, P]) Add(w int32) DistanceLabel[C, P] {
	sum := DistanceLabel[C, P]{lanes: make([]C, len(l.lanes))}
	for i := range l.lanes {
		P(&sum.lanes[i]).Store(P(&l.lanes[i]).Load() + w)
	}

	return sum
}

// Less compares l against rhs lane-wise and returns the mask of lanes i where
// l[i] < rhs[i] strictly. Both labels must have the same K.
func (l *DistanceLabel[C, P]) Less(rhs *DistanceLabel[C, P]) LabelMask {
	mask := LabelMask{marked: make([]bool, len(l.lanes))}
	for i := range l.lanes {
		mask.marked[i] = P(&l.lanes[i]).Load() < P(&rhs.lanes[i]).Load()
	}

	return mask
}

// Min lowers every lane of l to the minimum of l and rhs, merging a candidate
// into an incumbent without branching on provenance. Under the atomic
// discipline each lane's update is an independent load/compare/store sequence.
func (l *DistanceLabel[C, P]) Min(rhs *DistanceLabel[C, P]) {
	var d, r int32
	for i := range l.lanes {
		d = P(&l.lanes[i]).Load()
		r = P(&rhs.lanes[i]).Load()
		if r < d {
			P(&l.lanes[i]).Store(r)
		}
	}
}

// Key returns the minimum distance over all lanes: the single scalar a
// priority queue orders this label's vertex by.
func (l *DistanceLabel[C, P]) Key() int32 {
	min := P(&l.lanes[0]).Load()
	var d int32
	for i := 1; i < len(l.lanes); i++ {
		d = P(&l.lanes[i]).Load()
		if d < min {
			min = d
		}
	}

	return min
}
