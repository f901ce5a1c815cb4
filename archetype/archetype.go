// Package archetype implements the storage unit for all entities sharing
// the same set of component types: one erased column per non-zero-sized
// component, a tag set for zero-sized components, and the entity roster
// whose length every column's capacity tracks.
package archetype

import (
	"fmt"
	"unsafe"

	"github.com/rotisserie/eris"

	"pkg.world.dev/world-engine/ecs/alloc"
	"pkg.world.dev/world-engine/ecs/component"
	"pkg.world.dev/world-engine/ecs/hash"
	"pkg.world.dev/world-engine/ecs/storage"
)

// ErrDuplicateComponent is returned by New when the same component type
// appears twice in the supplied infos. Two values of the same component
// type on one entity cannot be represented by a single column, and
// silently collapsing them to one would discard data the caller supplied.
var ErrDuplicateComponent = eris.New("archetype: duplicate component type in bundle")

// Archetype is a fixed set of component types plus the parallel columnar
// storage and entity roster for every entity that has exactly that set.
type Archetype struct {
	Hash hash.TypeHash
	// Infos lists every component type in this archetype, in the order the
	// bundle supplied them, including zero-sized ones.
	Infos []component.TypeInfo
	// Tags holds the hash of every zero-sized component in this archetype.
	// Zero-sized components have no column; membership is tracked here
	// instead.
	Tags map[hash.TypeHash]struct{}

	columnIndex map[hash.TypeHash]int
	columns     []*storage.ErasedColumn
	entities    []uint64
}

// New partitions infos into columns (for non-zero-sized components) and
// tags (for zero-sized components), and returns the resulting empty
// Archetype. It returns ErrDuplicateComponent if infos contains the same
// component hash twice.
func New(infos []component.TypeInfo) (*Archetype, error) {
	seen := make(map[hash.TypeHash]struct{}, len(infos))
	for _, info := range infos {
		if _, dup := seen[info.Hash]; dup {
			return nil, eris.Wrapf(ErrDuplicateComponent, "hash %d", info.Hash)
		}
		seen[info.Hash] = struct{}{}
	}

	a := &Archetype{
		Hash:        hash.HashCompoundInfo(infos),
		Infos:       infos,
		Tags:        make(map[hash.TypeHash]struct{}),
		columnIndex: make(map[hash.TypeHash]int, len(infos)),
		columns:     make([]*storage.ErasedColumn, 0, len(infos)),
	}

	for _, info := range infos {
		if info.Layout.IsZeroSized() {
			a.Tags[info.Hash] = struct{}{}
			continue
		}
		col := storage.NewErasedColumn(info)
		a.columnIndex[info.Hash] = len(a.columns)
		a.columns = append(a.columns, &col)
	}

	return a, nil
}

// Len returns the number of entities currently in this archetype.
func (a *Archetype) Len() int {
	return len(a.entities)
}

// Entities returns the entity roster. Callers must not retain the returned
// slice across a mutating call to the archetype.
func (a *Archetype) Entities() []uint64 {
	return a.entities
}

// HasTag reports whether the archetype carries the given zero-sized
// component hash.
func (a *Archetype) HasTag(h hash.TypeHash) bool {
	_, ok := a.Tags[h]
	return ok
}

// Column returns the erased column for the given component hash, or nil if
// the archetype has no such column (either because the component isn't in
// this archetype, or because it is a zero-sized tag with no column).
func (a *Archetype) Column(h hash.TypeHash) *storage.ErasedColumn {
	idx, ok := a.columnIndex[h]
	if !ok {
		return nil
	}
	return a.columns[idx]
}

// AppendEntity appends id to the entity roster and grows every column's
// capacity to match the new roster length. It does not populate any
// component values — that remains the caller's responsibility, typically
// through storage.Typed cast onto the returned index's column slot.
func (a *Archetype) AppendEntity(alloc alloc.Allocator, id uint64) (index int, err error) {
	oldLen := len(a.entities)
	newLen := oldLen + 1

	for _, col := range a.columns {
		if err := col.EnsureTotalCapacity(alloc, newLen, oldLen); err != nil {
			// The failing column keeps its pre-call buffer; columns that
			// already grew earlier in this loop keep their larger
			// capacity, since EnsureTotalCapacity never shrinks, and the
			// entity is not appended to the roster on a failed grow.
			return 0, err
		}
	}

	a.entities = append(a.entities, id)
	return oldLen, nil
}

// SwapRemove removes the entity at roster index i, moving every column's
// last element into slot i exactly as the roster itself is compacted, and
// returns the removed entity ID. It panics if i is out of range.
func (a *Archetype) SwapRemove(i int) uint64 {
	length := len(a.entities)
	if i < 0 || i >= length {
		panic(fmt.Sprintf("archetype: SwapRemove index %d out of range for length %d", i, length))
	}
	removed := a.entities[i]

	discard := make([]byte, 0)
	for _, col := range a.columns {
		stride := col.Info.Layout.PadToAlign().Size
		if stride > uintptr(len(discard)) {
			discard = make([]byte, stride)
		}
		colLength := length
		col.SwapRemove(unsafe.Pointer(&discard[0]), i, &colLength)
	}

	last := length - 1
	a.entities[i] = a.entities[last]
	a.entities = a.entities[:last]
	return removed
}

// Deinit runs every column's destructor hooks and frees its buffer. The
// Infos slice and tag/column-index maps are left for the garbage collector;
// Deinit's job is releasing the allocator-managed column buffers.
func (a *Archetype) Deinit(alloc alloc.Allocator) {
	length := a.Len()
	for _, col := range a.columns {
		col.Deinit(alloc, length)
	}
	a.entities = nil
}
