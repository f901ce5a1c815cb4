package archetype_test

import (
	"testing"
	"unsafe"

	"gotest.tools/v3/assert"

	"pkg.world.dev/world-engine/ecs/alloc"
	"pkg.world.dev/world-engine/ecs/archetype"
	"pkg.world.dev/world-engine/ecs/component"
	"pkg.world.dev/world-engine/ecs/storage"
)

type position struct{ X, Y float64 }
type velocity struct{ DX, DY float64 }
type frozen struct{} // zero-sized tag

func TestNewPartitionsColumnsAndTags(t *testing.T) {
	infos := []component.TypeInfo{
		component.TypeInfoOf[position](nil),
		component.TypeInfoOf[frozen](nil),
		component.TypeInfoOf[velocity](nil),
	}

	a, err := archetype.New(infos)
	assert.NilError(t, err)

	assert.Assert(t, a.Column(infos[0].Hash) != nil)
	assert.Assert(t, a.Column(infos[2].Hash) != nil)
	assert.Assert(t, a.Column(infos[1].Hash) == nil)
	assert.Assert(t, a.HasTag(infos[1].Hash))
	assert.Assert(t, !a.HasTag(infos[0].Hash))
}

func TestNewRejectsDuplicateComponents(t *testing.T) {
	info := component.TypeInfoOf[position](nil)
	_, err := archetype.New([]component.TypeInfo{info, info})
	assert.Assert(t, err != nil)
	assert.ErrorIs(t, err, archetype.ErrDuplicateComponent)
}

func TestAppendEntityGrowsColumnsWithRoster(t *testing.T) {
	infos := []component.TypeInfo{component.TypeInfoOf[position](nil)}
	a, err := archetype.New(infos)
	assert.NilError(t, err)

	heap := alloc.NewHeap()
	for id := uint64(0); id < 3; id++ {
		idx, err := a.AppendEntity(heap, id)
		assert.NilError(t, err)
		assert.Equal(t, idx, int(id))
	}

	assert.Equal(t, a.Len(), 3)
	col := a.Column(infos[0].Hash)
	assert.Assert(t, col.Capacity() >= 3)
}

func TestAppendEntityPopulatedThroughTypedCast(t *testing.T) {
	infos := []component.TypeInfo{component.TypeInfoOf[position](nil)}
	a, err := archetype.New(infos)
	assert.NilError(t, err)

	heap := alloc.NewHeap()
	idx, err := a.AppendEntity(heap, 42)
	assert.NilError(t, err)

	col := a.Column(infos[0].Hash)
	view := storage.Typed[position](col)
	view.Set(idx, position{X: 1, Y: 2})
	assert.Equal(t, view.Get(idx), position{X: 1, Y: 2})
}

func TestSwapRemove(t *testing.T) {
	infos := []component.TypeInfo{component.TypeInfoOf[position](nil)}
	a, err := archetype.New(infos)
	assert.NilError(t, err)

	heap := alloc.NewHeap()
	for id := uint64(0); id < 3; id++ {
		_, err := a.AppendEntity(heap, id)
		assert.NilError(t, err)
	}

	removed := a.SwapRemove(0)
	assert.Equal(t, removed, uint64(0))
	assert.Equal(t, a.Len(), 2)
	assert.DeepEqual(t, a.Entities(), []uint64{2, 1})
}

func TestSwapRemoveMovesColumnDataWithRoster(t *testing.T) {
	infos := []component.TypeInfo{component.TypeInfoOf[position](nil)}
	a, err := archetype.New(infos)
	assert.NilError(t, err)

	heap := alloc.NewHeap()
	col := a.Column(infos[0].Hash)
	view := storage.Typed[position](col)
	for id := uint64(0); id < 3; id++ {
		idx, err := a.AppendEntity(heap, id)
		assert.NilError(t, err)
		view.Set(idx, position{X: float64(id), Y: float64(id)})
	}

	a.SwapRemove(0)

	assert.DeepEqual(t, a.Entities(), []uint64{2, 1})
	assert.Equal(t, view.Get(0), position{X: 2, Y: 2})
	assert.Equal(t, view.Get(1), position{X: 1, Y: 1})
}

func TestDeinitRunsDtorPerEntity(t *testing.T) {
	calls := 0
	info := component.TypeInfoOf[position](nil)
	info.Hook = &component.Hook{
		Dtor: func(unsafe.Pointer) { calls++ },
		Copy: component.DefaultHook().Copy,
	}

	a, err := archetype.New([]component.TypeInfo{info})
	assert.NilError(t, err)

	heap := alloc.NewHeap()
	for id := uint64(0); id < 3; id++ {
		_, err := a.AppendEntity(heap, id)
		assert.NilError(t, err)
	}

	a.Deinit(heap)
	assert.Equal(t, calls, 3)
	assert.Equal(t, a.Len(), 0)
}
