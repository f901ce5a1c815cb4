package storage

import (
	"fmt"
	"unsafe"

	"github.com/rotisserie/eris"

	"pkg.world.dev/world-engine/ecs/alloc"
	"pkg.world.dev/world-engine/ecs/component"
	"pkg.world.dev/world-engine/ecs/hash"
)

// ErasedColumn is a growable, contiguous buffer described entirely at
// runtime by a component.TypeInfo: it knows its element's size, alignment,
// and destructor/copy hook, but not its Go type. This is what lets an
// archetype hold a heterogeneous slice of columns, one per component type.
//
// Like TypedColumn, it does not track its own length.
type ErasedColumn struct {
	buf  []byte
	Info component.TypeInfo
}

// NewErasedColumn returns an empty ErasedColumn for info.
func NewErasedColumn(info component.TypeInfo) ErasedColumn {
	return ErasedColumn{Info: info}
}

func (c *ErasedColumn) stride() uintptr {
	return c.Info.Layout.PadToAlign().Size
}

// Capacity reports the number of elements this column can currently hold.
// Zero-sized components always report the maximum int value and never
// allocate.
func (c *ErasedColumn) Capacity() int {
	s := c.stride()
	if s == 0 {
		return maxInt
	}
	if len(c.buf) == 0 {
		return 0
	}
	return len(c.buf) / int(s)
}

func (c *ErasedColumn) elemOffset(i int) uintptr {
	return uintptr(i) * c.stride()
}

// elemPtr returns a pointer to element i's bytes. Callers must have already
// ensured capacity > i.
func (c *ErasedColumn) elemPtr(i int) unsafe.Pointer {
	if c.stride() == 0 || len(c.buf) == 0 {
		return nil
	}
	return unsafe.Pointer(&c.buf[c.elemOffset(i)])
}

// EnsureTotalCapacity grows the column, if needed, so that Capacity() >=
// newCap. length is the column's current element count.
func (c *ErasedColumn) EnsureTotalCapacity(a alloc.Allocator, newCap, length int) error {
	s := c.stride()
	if s == 0 {
		return nil
	}
	if newCap <= c.Capacity() {
		return nil
	}
	grown := GrowCapacity(s, c.Capacity(), newCap)
	return c.ensureTotalCapacityPrecise(a, grown, length)
}

func (c *ErasedColumn) ensureTotalCapacityPrecise(a alloc.Allocator, newCap, length int) error {
	s := c.stride()
	newSizeBytes := c.Info.Layout.Repeat(newCap).Size

	if resized, ok := a.Resize(c.buf, newSizeBytes); ok {
		c.buf = resized
		return nil
	}
	if remapped, ok := a.Remap(c.buf, newSizeBytes); ok {
		c.buf = remapped
		return nil
	}

	fresh, err := a.Alloc(newSizeBytes, c.Info.Layout.Align)
	if err != nil {
		return eris.Wrapf(alloc.ErrOutOfMemory, "growing erased column (hash %d) to %d elements", c.Info.Hash, newCap)
	}
	if length > 0 {
		copy(fresh, c.buf[:uintptr(length)*s])
	}
	a.Free(c.buf)
	c.buf = fresh
	return nil
}

// Pop copies the last element's bytes into dst and reports true, or reports
// false if *length is already 0. The caller owns dst afterward and is
// responsible for eventually running its destructor if appropriate.
func (c *ErasedColumn) Pop(dst unsafe.Pointer, length *int) bool {
	if *length == 0 {
		return false
	}
	idx := *length - 1
	c.Info.Hook.Copy(dst, c.elemPtr(idx), c.Info.Layout.Size)
	*length--
	return true
}

// SwapRemove copies element i's bytes into dst, then overwrites slot i with
// the last element's bytes (an O(stride) move, not a full shift), and
// reports true. It panics if i is out of bounds for *length, including when
// *length is 0.
//
// The destructor hook is not invoked on the overwritten slot: its value was
// already moved into dst, and the caller owns it now.
func (c *ErasedColumn) SwapRemove(dst unsafe.Pointer, i int, length *int) bool {
	if i < 0 || i >= *length {
		panic(fmt.Sprintf("storage: SwapRemove index %d out of range for length %d", i, *length))
	}
	last := *length - 1
	c.Info.Hook.Copy(dst, c.elemPtr(i), c.Info.Layout.Size)
	if i != last {
		c.Info.Hook.Copy(c.elemPtr(i), c.elemPtr(last), c.Info.Layout.Size)
	}
	*length--
	return true
}

// Deinit runs the destructor hook over each of the first length elements,
// then frees the underlying allocation. It is a no-op on an empty column.
func (c *ErasedColumn) Deinit(a alloc.Allocator, length int) {
	for i := 0; i < length; i++ {
		c.Info.Hook.Dtor(c.elemPtr(i))
	}
	a.Free(c.buf)
	c.buf = nil
}

// FromOwnedBytes adopts a raw byte buffer whose length is an exact multiple of
// info's padded stride as the backing storage for a new ErasedColumn. It
// returns an error if the buffer length is not a multiple of the stride —
// it is never used to forge a column whose buffer doesn't actually match
// info's layout.
func FromOwnedBytes(info component.TypeInfo, buf []byte) (ErasedColumn, error) {
	stride := info.Layout.PadToAlign().Size
	if stride > 0 && len(buf)%int(stride) != 0 {
		return ErasedColumn{}, eris.Errorf(
			"storage: buffer length %d is not a multiple of stride %d for component hash %d",
			len(buf), stride, info.Hash,
		)
	}
	return ErasedColumn{buf: buf, Info: info}, nil
}

// TypedView is a compile-time-typed accessor onto an ErasedColumn's existing
// storage, obtained via Typed. It reads and writes elements within the
// column's current capacity but does not grow it — growth remains the
// archetype's responsibility so that every column in an archetype shares
// one externally-owned length.
type TypedView[T any] struct {
	col *ErasedColumn
}

// Typed returns a TypedView[T] onto c's storage. It panics if T's type hash
// does not match c.Info.Hash, which would indicate a cast to the wrong
// component type. Go does not allow a generic method on a non-generic
// receiver, so this is a free function rather than ErasedColumn.Typed.
func Typed[T any](c *ErasedColumn) TypedView[T] {
	want := hash.TypeHashOf[T]()
	if want != c.Info.Hash {
		panic(fmt.Sprintf("storage: cannot view erased column for hash %d as type hash %d", c.Info.Hash, want))
	}
	return TypedView[T]{col: c}
}

// Get returns the value at index i.
func (v TypedView[T]) Get(i int) T {
	return *(*T)(v.col.elemPtr(i))
}

// Set writes value at index i.
func (v TypedView[T]) Set(i int, value T) {
	*(*T)(v.col.elemPtr(i)) = value
}

// Ptr returns a pointer to the value at index i, invalid after any
// reallocating call on the underlying column.
func (v TypedView[T]) Ptr(i int) *T {
	return (*T)(v.col.elemPtr(i))
}
