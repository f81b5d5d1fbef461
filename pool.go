package sway

import (
	"fmt"
	"os"
)

// defaultCapacity is the initial slot count for both slabs when Config.Capacity
// is unset.
const defaultCapacity = 64

// tweenSlab holds every tween record in a preallocated slice plus a LIFO free
// list of slot indices. LIFO reuse keeps recently touched records hot in cache.
// Slot generations make stale handles detectable: a release bumps the slot's
// generation so any handle minted before it stops matching.
type tweenSlab struct {
	slots []tweenRecord
	free  []int32
}

// seqSlab is the sequence counterpart of tweenSlab.
type seqSlab struct {
	slots []seqRecord
	free  []int32
}

// reserve grows the slab to at least n slots. Idempotent: shrinking is never
// performed and reserving an already-covered capacity is a no-op. Safe to call
// before any tweens exist.
func (s *tweenSlab) reserve(n int) {
	if n <= len(s.slots) {
		return
	}
	old := len(s.slots)
	grown := make([]tweenRecord, n)
	copy(grown, s.slots)
	s.slots = grown
	// Rebuild the free list with capacity for every slot so release never
	// reallocates. New slots are pushed high-to-low so acquisition walks
	// upward through fresh slots in index order.
	free := make([]int32, len(s.free), n)
	copy(free, s.free)
	for i := n - 1; i >= old; i-- {
		free = append(free, int32(i))
	}
	s.free = free
}

func (s *seqSlab) reserve(n int) {
	if n <= len(s.slots) {
		return
	}
	old := len(s.slots)
	grown := make([]seqRecord, n)
	copy(grown, s.slots)
	s.slots = grown
	free := make([]int32, len(s.free), n)
	copy(free, s.free)
	for i := n - 1; i >= old; i-- {
		free = append(free, int32(i))
	}
	s.free = free
}

// acquire pops the most recently freed slot, growing the slab by doubling
// when the free list is empty. Growth is a performance signal, not an error:
// it is logged so callers know to raise SetCapacity.
func (s *tweenSlab) acquire() int32 {
	if len(s.free) == 0 {
		old := len(s.slots)
		next := old * 2
		if next == 0 {
			next = defaultCapacity
		}
		poolGrowthWarning("tween", old, next)
		s.reserve(next)
	}
	i := s.free[len(s.free)-1]
	s.free = s.free[:len(s.free)-1]
	return i
}

func (s *seqSlab) acquire() int32 {
	if len(s.free) == 0 {
		old := len(s.slots)
		next := old * 2
		if next == 0 {
			next = defaultCapacity
		}
		poolGrowthWarning("sequence", old, next)
		s.reserve(next)
	}
	i := s.free[len(s.free)-1]
	s.free = s.free[:len(s.free)-1]
	return i
}

// poolGrowthWarning reports slab growth on stderr. Steady-state operation
// within reserved capacity never reaches this.
func poolGrowthWarning(kind string, old, next int) {
	_, _ = fmt.Fprintf(os.Stderr,
		"[sway] warning: %s pool grew from %d to %d slots; call SetCapacity to preallocate\n",
		kind, old, next)
}
