package labels

// ParentLabel records, per lane, the parent vertex (and, at the
// FullParentInfo level, the parent edge) on the best-known shortest path from
// that lane's source to the owning vertex. Parent storage is always plain:
// the outer algorithm only reads parents after its search has quiesced, so
// the atomic lane discipline of the distance labels does not extend here.
//
// Capability levels translate into storage: a NoParentInfo label holds no
// slices at all, a ParentVertices label holds only vertices, a FullParentInfo
// label holds both. Disabled setters degenerate to empty loops; disabled
// accessors are a caller contract violation and panic on lane access.
type ParentLabel struct {
	vertices []int32
	edges    []int32
}

// Vertex returns the parent vertex recorded for lane i, or InvalidVertex if
// none has been set since Reset.
func (p *ParentLabel) Vertex(i int) int32 { return p.vertices[i] }

// Edge returns the parent edge recorded for lane i, or InvalidEdge if none
// has been set since Reset. Only available at the FullParentInfo level.
func (p *ParentLabel) Edge(i int) int32 { return p.edges[i] }

// SetVertex records u as the parent vertex on every lane the mask marks,
// leaving unmarked lanes untouched. Call it with the same mask that decided
// the corresponding distance update, so parent and distance stay mutually
// consistent per lane.
func (p *ParentLabel) SetVertex(u int32, mask LabelMask) {
	for i := range p.vertices {
		if mask.marked[i] {
			p.vertices[i] = u
		}
	}
}

// SetEdge records e as the parent edge on every lane the mask marks, leaving
// unmarked lanes untouched. Same mask discipline as SetVertex. A no-op below
// the FullParentInfo level.
func (p *ParentLabel) SetEdge(e int32, mask LabelMask) {
	for i := range p.edges {
		if mask.marked[i] {
			p.edges[i] = e
		}
	}
}

// Reset restores every enabled lane to InvalidVertex/InvalidEdge. Parent
// labels carry no timestamps, so a driver that reuses them across episodes
// resets them alongside its source setup.
func (p *ParentLabel) Reset() {
	for i := range p.vertices {
		p.vertices[i] = InvalidVertex
	}
	for i := range p.edges {
		p.edges[i] = InvalidEdge
	}
}
