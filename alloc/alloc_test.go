package alloc_test

import (
	"testing"

	"gotest.tools/v3/assert"

	"pkg.world.dev/world-engine/ecs/alloc"
)

func TestHeapAllocZeroSize(t *testing.T) {
	h := alloc.NewHeap()
	buf, err := h.Alloc(0, 8)
	assert.NilError(t, err)
	assert.Assert(t, buf == nil)
}

func TestHeapResizeWithinCapacitySucceeds(t *testing.T) {
	h := alloc.NewHeap()
	buf, err := h.Alloc(16, 8)
	assert.NilError(t, err)

	grown, ok := h.Resize(buf, 8)
	assert.Assert(t, ok)
	assert.Equal(t, len(grown), 8)
}

func TestHeapResizeBeyondCapacityFails(t *testing.T) {
	h := alloc.NewHeap()
	buf, err := h.Alloc(8, 8)
	assert.NilError(t, err)

	_, ok := h.Resize(buf, 64)
	assert.Assert(t, !ok)
}

func TestHeapRemapAlwaysFails(t *testing.T) {
	h := alloc.NewHeap()
	buf, err := h.Alloc(16, 8)
	assert.NilError(t, err)

	_, ok := h.Remap(buf, 8)
	assert.Assert(t, !ok)
}

func TestCountingAllocatorCountsDelegateCalls(t *testing.T) {
	counting := alloc.NewCountingAllocator(nil)

	buf, err := counting.Alloc(16, 8)
	assert.NilError(t, err)
	assert.Equal(t, counting.Allocs, 1)

	counting.Resize(buf, 8)
	assert.Equal(t, counting.Resizes, 1)
	assert.Equal(t, counting.Regrows, 1)

	counting.Remap(buf, 64)
	assert.Equal(t, counting.Remaps, 1)

	counting.Free(buf)
	assert.Equal(t, counting.Frees, 1)
}
