package storage

import (
	"fmt"
	"unsafe"

	"github.com/rotisserie/eris"

	"pkg.world.dev/world-engine/ecs/alloc"
	"pkg.world.dev/world-engine/ecs/component"
	"pkg.world.dev/world-engine/ecs/layout"
)

// TypedColumn is a growable, contiguous buffer of T that does not track its
// own length: many parallel columns in the same archetype share one
// externally-owned length, passed in by pointer to every operation.
//
// The zero value is an empty column (capacity 0, no allocation).
type TypedColumn[T any] struct {
	buf    []byte
	stride uintptr
}

func stride[T any]() uintptr {
	return layout.Of[T]().PadToAlign().Size
}

// EmptyColumn returns a TypedColumn with capacity 0.
func EmptyColumn[T any]() TypedColumn[T] {
	return TypedColumn[T]{stride: stride[T]()}
}

// FromOwned adopts a caller-owned slice of items, taking its length as the
// column's capacity. The returned column does not share storage with items.
func FromOwned[T any](items []T) TypedColumn[T] {
	c := EmptyColumn[T]()
	if len(items) == 0 {
		return c
	}
	buf := make([]byte, uintptr(len(items))*c.stride)
	src := unsafe.Slice((*byte)(unsafe.Pointer(&items[0])), uintptr(len(items))*c.stride)
	copy(buf, src)
	c.buf = buf
	return c
}

// Capacity reports the number of elements this column can currently hold
// without reallocating. Zero-sized T always reports the maximum int value
// and never allocates.
func (c *TypedColumn[T]) Capacity() int {
	if c.stride == 0 {
		return maxInt
	}
	if len(c.buf) == 0 {
		return 0
	}
	return len(c.buf) / int(c.stride)
}

func (c *TypedColumn[T]) elemPtr(i int) *T {
	if c.stride == 0 {
		var zero T
		return &zero
	}
	return (*T)(unsafe.Pointer(&c.buf[uintptr(i)*c.stride]))
}

// Append ensures capacity for one more element, writes item at index
// *length, and increments *length.
func (c *TypedColumn[T]) Append(a alloc.Allocator, item T, length *int) error {
	if err := c.EnsureTotalCapacity(a, *length+1, *length); err != nil {
		return err
	}
	*c.elemPtr(*length) = item
	*length++
	return nil
}

// AddOne ensures capacity for one more element and returns a pointer to the
// uninitialized slot at index *length, incrementing *length. The caller must
// write through the pointer before any further call that might reallocate
// the column.
func (c *TypedColumn[T]) AddOne(a alloc.Allocator, length *int) (*T, error) {
	if err := c.EnsureTotalCapacity(a, *length+1, *length); err != nil {
		return nil, err
	}
	ptr := c.elemPtr(*length)
	*length++
	return ptr, nil
}

// Pop removes and returns the last element, or (zero, false) if *length is
// already 0.
func (c *TypedColumn[T]) Pop(length *int) (T, bool) {
	if *length == 0 {
		var zero T
		return zero, false
	}
	idx := *length - 1
	v := *c.elemPtr(idx)
	*length--
	return v, true
}

// SwapRemove removes the element at index i in O(1) by moving the last
// element into its place, and returns the removed value. It panics if i is
// out of bounds for *length.
func (c *TypedColumn[T]) SwapRemove(i int, length *int) T {
	if i < 0 || i >= *length {
		panic(fmt.Sprintf("storage: SwapRemove index %d out of range for length %d", i, *length))
	}
	last := *length - 1
	removed := *c.elemPtr(i)
	if i != last {
		*c.elemPtr(i) = *c.elemPtr(last)
	}
	*length--
	return removed
}

// EnsureTotalCapacity grows the column, if needed, so that Capacity() >=
// newCap. length is the column's current element count, used to know how
// many bytes must be preserved if a reallocation occurs.
func (c *TypedColumn[T]) EnsureTotalCapacity(a alloc.Allocator, newCap, length int) error {
	if c.stride == 0 {
		return nil
	}
	if newCap <= c.Capacity() {
		return nil
	}
	grown := GrowCapacity(c.stride, c.Capacity(), newCap)
	return c.ensureTotalCapacityPrecise(a, grown, length)
}

func (c *TypedColumn[T]) ensureTotalCapacityPrecise(a alloc.Allocator, newCap, length int) error {
	newSize := uintptr(newCap) * c.stride

	if resized, ok := a.Resize(c.buf, newSize); ok {
		c.buf = resized
		return nil
	}
	if remapped, ok := a.Remap(c.buf, newSize); ok {
		c.buf = remapped
		return nil
	}

	fresh, err := a.Alloc(newSize, alignOf[T]())
	if err != nil {
		return eris.Wrapf(alloc.ErrOutOfMemory, "growing typed column to %d elements", newCap)
	}
	if length > 0 {
		copy(fresh, c.buf[:uintptr(length)*c.stride])
	}
	a.Free(c.buf)
	c.buf = fresh
	return nil
}

func alignOf[T any]() uintptr {
	return layout.Of[T]().Align
}

// ToErased transfers ownership of this column's buffer to a new
// ErasedColumn described by info, and resets this column to empty. info
// should be obtained via component.TypeInfoOf[T] so its hash, layout, and
// hook match T exactly.
func (c *TypedColumn[T]) ToErased(info component.TypeInfo) ErasedColumn {
	erased := ErasedColumn{
		buf:  c.buf,
		Info: info,
	}
	c.buf = nil
	return erased
}
