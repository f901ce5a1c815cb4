// Package alloc defines the allocator abstraction through which every
// column in this library obtains its backing storage. Funneling allocation
// through an interface — rather than calling make/append directly in the
// column types — lets callers install a counting or arena-backed allocator
// without touching storage or archetype code.
package alloc

import "github.com/rotisserie/eris"

// ErrOutOfMemory is returned by any allocating operation that cannot obtain
// the requested memory. Columns and archetypes leave their pre-call state
// unchanged when this error is returned.
var ErrOutOfMemory = eris.New("out of memory")

// Allocator is the caller-supplied memory abstraction used by every column.
// align is currently advisory for the default Heap implementation (Go's
// runtime allocator does not expose alignment control below pointer size)
// but is still threaded through so a future arena-backed allocator can honor
// it.
type Allocator interface {
	// Alloc returns a freshly allocated, zeroed buffer of exactly size
	// bytes, or ErrOutOfMemory.
	Alloc(size, align uintptr) ([]byte, error)
	// Resize attempts a pure reslice of buf to newSize bytes, without
	// moving it or touching any other allocation. ok is false if newSize
	// exceeds buf's existing capacity; buf is returned unchanged in that
	// case.
	Resize(buf []byte, newSize uintptr) (grown []byte, ok bool)
	// Remap attempts to grow or shrink buf to newSize bytes in place,
	// possibly relocating it but without the caller having to manage a
	// separate fresh allocation. ok is false if the allocator cannot
	// satisfy the request at all; buf is returned unchanged in that case,
	// and the caller is responsible for allocating a fresh buffer and
	// copying live data into it.
	Remap(buf []byte, newSize uintptr) (moved []byte, ok bool)
	// Free releases buf. Safe to call with a nil or empty buf.
	Free(buf []byte)
}
