package hash_test

import (
	"testing"

	"gotest.tools/v3/assert"

	"pkg.world.dev/world-engine/ecs/hash"
)

type componentA struct{ X int }
type componentB struct{ Y float64 }

func TestTypeHashDeterministic(t *testing.T) {
	a1 := hash.TypeHashOf[componentA]()
	a2 := hash.TypeHashOf[componentA]()
	assert.Equal(t, a1, a2)
}

func TestTypeHashDistinctForDistinctTypes(t *testing.T) {
	a := hash.TypeHashOf[componentA]()
	b := hash.TypeHashOf[componentB]()
	assert.Assert(t, a != b)
}

func TestHashCompoundMatchesManualFold(t *testing.T) {
	a := hash.TypeHashOf[componentA]()
	b := hash.TypeHashOf[componentB]()

	got := hash.HashCompound([]hash.TypeHash{a, b})
	want := hash.TypeHash(hash.Mix2(hash.Mix2(hash.CompoundSeed(), uint64(a)), uint64(b)))
	assert.Equal(t, got, want)
}

func TestHashCompoundEmptyIsZero(t *testing.T) {
	assert.Equal(t, hash.HashCompound(nil), hash.TypeHash(0))
	assert.Equal(t, hash.HashCompound([]hash.TypeHash{}), hash.TypeHash(0))
}

func TestHashCompoundNeverZeroForSingleNonZeroHash(t *testing.T) {
	a := hash.TypeHashOf[componentA]()
	got := hash.HashCompound([]hash.TypeHash{a})
	assert.Assert(t, got != 0)
}

func TestHashCompoundOrderSensitive(t *testing.T) {
	a := hash.TypeHashOf[componentA]()
	b := hash.TypeHashOf[componentB]()

	ab := hash.HashCompound([]hash.TypeHash{a, b})
	ba := hash.HashCompound([]hash.TypeHash{b, a})
	assert.Assert(t, ab != ba)
}

type fakeInfo struct {
	hash hash.TypeHash
}

func (f fakeInfo) TypeHash() hash.TypeHash { return f.hash }

func TestHashCompoundInfoMatchesHashCompound(t *testing.T) {
	a := hash.TypeHashOf[componentA]()
	b := hash.TypeHashOf[componentB]()

	infos := []fakeInfo{{a}, {b}}
	got := hash.HashCompoundInfo(infos)
	want := hash.HashCompound([]hash.TypeHash{a, b})
	assert.Equal(t, got, want)
}
