// Package labels defines core constants, configuration enums and sentinel
// errors for the packed distance-label machinery.
package labels

import (
	"errors"
	"math"
)

// Infinity is the reserved distance value representing "unreached". It sits at
// half the int32 range so that Infinity plus any realistic edge weight never
// wraps into the negative range.
const Infinity int32 = math.MaxInt32 / 2

// InvalidVertex is the parent-vertex value of a lane whose path is unknown.
const InvalidVertex int32 = -1

// InvalidEdge is the parent-edge value of a lane whose path is unknown.
const InvalidEdge int32 = -1

// ParentInfo selects how much parent bookkeeping a LabelSet carries per lane.
// The levels form a strictly increasing capability ladder: FullParentInfo
// implies everything ParentVertices guarantees, plus edge recording.
type ParentInfo int

const (
	// NoParentInfo records nothing; parent labels occupy zero storage.
	NoParentInfo ParentInfo = iota

	// ParentVertices records the parent vertex of each lane's best-known path.
	ParentVertices

	// FullParentInfo records both the parent vertex and the parent edge.
	FullParentInfo
)

// Sentinel errors returned by constructors in this package.
var (
	// ErrNonPositiveLanes indicates a LabelSet was requested with fewer than
	// one simultaneous source.
	ErrNonPositiveLanes = errors.New("labels: lane count K must be at least 1")

	// ErrUnknownParentInfo indicates a parent-tracking level outside the
	// NoParentInfo..FullParentInfo ladder.
	ErrUnknownParentInfo = errors.New("labels: unknown parent-tracking level")

	// ErrInvalidLabelSet indicates a zero-value or otherwise unconstructed
	// LabelSet was passed to NewStampedContainer.
	ErrInvalidLabelSet = errors.New("labels: label set was not built by a constructor")

	// ErrNegativeVertexCount indicates a container was requested for a
	// negative number of vertices.
	ErrNegativeVertexCount = errors.New("labels: vertex count must be non-negative")

	// ErrStampAheadOfClock is the panic value raised when a vertex timestamp
	// exceeds the container clock. The clock is monotonic and each slot is
	// stamped at most once per episode, so this state is unreachable without
	// memory corruption or a misuse such as sharing one container across
	// unsynchronized Init calls.
	ErrStampAheadOfClock = errors.New("labels: vertex timestamp ahead of container clock")
)
