package labels

import "sync/atomic"

// Cell is the storage discipline for one 32-bit slot of a packed label: either
// a plain in-memory cell or an atomic cell with acquire/release semantics.
// It is a pointer constraint so that label types can hold their cells inline
// in a contiguous slab and still call Load/Store through the pointer.
//
// A label type is instantiated with exactly one cell discipline for its whole
// lifetime. Mixing plain and atomic access to the same slot from multiple
// goroutines is undefined behavior, which is why the choice lives in the type
// rather than behind a runtime flag.
type Cell[C any] interface {
	*C

	// Load reads the slot. Atomic cells use an acquire (or stronger) load.
	Load() int32

	// Store writes the slot. Atomic cells use a release (or stronger) store.
	Store(v int32)

	// Shared reports whether the cell is safe for concurrent access.
	Shared() bool
}

// PlainCell is the non-atomic storage cell, for labels confined to one
// goroutine. Plain loads and stores compile to single moves with no fencing.
type PlainCell struct {
	v int32
}

// Load returns the stored value.
func (c *PlainCell) Load() int32 { return c.v }

// Store overwrites the stored value.
func (c *PlainCell) Store(v int32) { c.v = v }

// Shared reports false: PlainCell must not be accessed concurrently.
func (c *PlainCell) Shared() bool { return false }

// AtomicCell is the atomic storage cell, for labels shared between the two
// halves of a parallel bidirectional search. Go's sync/atomic operations are
// sequentially consistent, which satisfies the acquire/release contract Cell
// requires with room to spare.
type AtomicCell struct {
	v atomic.Int32
}

// Load atomically returns the stored value.
func (c *AtomicCell) Load() int32 { return c.v.Load() }

// Store atomically overwrites the stored value.
func (c *AtomicCell) Store(v int32) { c.v.Store(v) }

// Shared reports true: AtomicCell tolerates concurrent readers and writers.
func (c *AtomicCell) Shared() bool { return true }
