// Package storage implements the columnar containers that back an
// archetype: a generic TypedColumn[T] for code that knows its element type
// at compile time, and a type-erased ErasedColumn driven entirely by a
// component.TypeInfo, for code that does not.
//
// Both containers track only a capacity; the element count ("length") is
// owned by the caller (in practice, archetype.Archetype) so that many
// parallel columns in the same archetype can share one length without
// drifting apart.
package storage

// CacheLineBytes is the assumed CPU cache line size used to seed the growth
// policy's initial capacity step. It is a package constant rather than a
// build-time flag because this library targets one growth curve; retuning
// for a specific architecture means editing this constant, not passing a
// runtime parameter through every column.
const CacheLineBytes = 64

// GrowCapacity computes the next capacity to request for a column whose
// elements are elemSize bytes, currently sized at `current`, that needs to
// hold at least `minimum` elements.
//
// It seeds the growth with max(1, CacheLineBytes/elemSize) so that the first
// allocation for small elements fills roughly one cache line, then grows at
// ~1.5x (new = new + new/2 + seed) until the minimum is met. Growth
// saturates at the maximum int value instead of overflowing, so a
// pathologically large `minimum` still terminates the loop — the subsequent
// allocation then fails cleanly with alloc.ErrOutOfMemory rather than
// wrapping around to a tiny capacity.
func GrowCapacity(elemSize uintptr, current, minimum int) int {
	if minimum <= current {
		return current
	}

	seed := 1
	if elemSize > 0 {
		if s := int(CacheLineBytes / elemSize); s > 1 {
			seed = s
		}
	}

	newCap := current
	for newCap < minimum {
		grown := addSaturating(newCap, newCap/2)
		grown = addSaturating(grown, seed)
		if grown <= newCap {
			// Saturated: further growth is impossible, stop here so the
			// caller's allocation attempt fails instead of looping forever.
			return maxInt
		}
		newCap = grown
	}
	return newCap
}

const maxInt = int(^uint(0) >> 1)

func addSaturating(a, b int) int {
	sum := a + b
	if sum < a || sum < b {
		return maxInt
	}
	return sum
}
