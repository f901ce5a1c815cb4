package alloc

// CountingAllocator decorates another Allocator and counts how many times
// each operation is invoked. It exists purely as a test harness — spec.md
// names the counting allocator as an external collaborator — but the
// Allocator interface it decorates is part of the production surface.
type CountingAllocator struct {
	Delegate Allocator

	Allocs  int
	Resizes int
	Remaps  int
	Frees   int
	Regrows int // Resize or Remap calls that report ok == true
}

// NewCountingAllocator wraps delegate, or a fresh Heap if delegate is nil.
func NewCountingAllocator(delegate Allocator) *CountingAllocator {
	if delegate == nil {
		delegate = NewHeap()
	}
	return &CountingAllocator{Delegate: delegate}
}

func (c *CountingAllocator) Alloc(size, align uintptr) ([]byte, error) {
	c.Allocs++
	return c.Delegate.Alloc(size, align)
}

func (c *CountingAllocator) Resize(buf []byte, newSize uintptr) ([]byte, bool) {
	c.Resizes++
	grown, ok := c.Delegate.Resize(buf, newSize)
	if ok {
		c.Regrows++
	}
	return grown, ok
}

func (c *CountingAllocator) Remap(buf []byte, newSize uintptr) ([]byte, bool) {
	c.Remaps++
	remapped, ok := c.Delegate.Remap(buf, newSize)
	if ok {
		c.Regrows++
	}
	return remapped, ok
}

func (c *CountingAllocator) Free(buf []byte) {
	c.Frees++
	c.Delegate.Free(buf)
}
