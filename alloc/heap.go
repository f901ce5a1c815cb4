package alloc

// Heap is the default Allocator, backed by the Go garbage collector. Remap
// never succeeds: Go's runtime gives no portable way to grow or relocate a
// []byte's backing array without an explicit copy, so every capacity growth
// beyond a Resize-satisfiable reslice takes the alloc-copy-free fallback
// path in the column types. This is a legitimate, spec-conformant
// allocator, not a placeholder — see DESIGN.md.
type Heap struct{}

// NewHeap returns the default heap-backed allocator.
func NewHeap() *Heap {
	return &Heap{}
}

func (*Heap) Alloc(size, _ uintptr) ([]byte, error) {
	if size == 0 {
		return nil, nil
	}
	return make([]byte, size), nil
}

// Resize succeeds only when newSize fits within buf's existing capacity —
// a pure reslice, no data movement.
func (*Heap) Resize(buf []byte, newSize uintptr) ([]byte, bool) {
	if newSize <= uintptr(cap(buf)) {
		return buf[:newSize], true
	}
	return buf, false
}

// Remap always reports failure: the Go runtime has no primitive to
// relocate a []byte's backing array in place, so this always forces the
// alloc-copy-free fallback in ensureTotalCapacityPrecise.
func (*Heap) Remap(buf []byte, _ uintptr) ([]byte, bool) {
	return buf, false
}

func (*Heap) Free(_ []byte) {
	// The garbage collector reclaims buf once unreferenced. Free exists so a
	// counting decorator can observe the call.
}
