package labels

// LabelMask marks a subset of lanes in a packed label. The result of a packed
// less-than between two distance labels a and b is a mask indicating for which
// lanes i it holds that a[i] < b[i]. Masks are produced by comparisons (or by
// MarkLane for exactly one lane) and consumed by the masked parent-label
// setters; consumers never assemble arbitrary mask contents.
type LabelMask struct {
	marked []bool
}

// MarkLane returns a k-lane mask that marks only lane i.
// Lane indices outside [0, k) are a caller contract violation.
func MarkLane(k, i int) LabelMask {
	m := LabelMask{marked: make([]bool, k)}
	m.marked[i] = true

	return m
}

// K returns the number of lanes covered by the mask.
func (m LabelMask) K() int { return len(m.marked) }

// Marks reports whether lane i is marked.
func (m LabelMask) Marks(i int) bool { return m.marked[i] }

// Any reports whether at least one lane is marked. A relaxation only needs to
// touch a vertex when the candidate improved some lane, so this is the branch
// condition of the inner loop.
func (m LabelMask) Any() bool {
	for _, marked := range m.marked {
		if marked {
			return true
		}
	}

	return false
}
