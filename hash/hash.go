// Package hash provides deterministic hashing of component types and of
// ordered compounds of component types, used to key archetypes.
//
// hash.TypeHash values are stable for a given build of this library; they
// are not guaranteed stable across library versions, so archetype hashes
// derived from them must never be persisted.
package hash

import (
	"math/bits"
	"reflect"
)

// TypeHash is a deterministic 64-bit hash of a component type's canonical
// name.
type TypeHash uint64

// seed is the fixed Wyhash seed used for every type-name hash computed by
// this package. Changing it changes every archetype hash in the library,
// which is a breaking ABI choice (see package doc).
const seed uint64 = 0

// TypeHashOf hashes the canonical name of T.
func TypeHashOf[T any]() TypeHash {
	var zero T
	return HashName(canonicalName(reflect.TypeOf(zero)))
}

// canonicalName returns a type's fully-qualified name (package path plus
// type name), which is stable for a given build and distinguishes types that
// share an unqualified name across packages.
func canonicalName(t reflect.Type) string {
	if t == nil {
		// T was an interface type instantiated with a nil zero value;
		// reflect.TypeOf(nil) returns nil. Fall back to a name that can
		// never collide with a named struct/interface.
		return "<nil>"
	}
	if pkg := t.PkgPath(); pkg != "" {
		return pkg + "." + t.Name()
	}
	return t.String()
}

// HashName hashes an arbitrary string with Wyhash, seeded with the package's
// fixed seed.
func HashName(name string) TypeHash {
	return TypeHash(wyhash([]byte(name), seed))
}

// Mix2 folds two 64-bit hashes into one using the high and low halves of
// their 128-bit product. Mix2 itself is commutative (Mix2(a, b) ==
// Mix2(b, a), since the underlying multiplication is) — the
// order-sensitivity HashCompound needs comes from the position each hash
// occupies in the sequential fold, not from this function.
func Mix2(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return lo ^ hi
}

// compoundSeed is the fixed, non-zero accumulator a non-empty HashCompound
// fold starts from. It must be non-zero: Mix2(0, x) is always 0 (multiplying
// by zero always yields a zero 128-bit product), so seeding from 0 would
// collapse the first fold step — and, for a two-element compound, the whole
// result — to 0 regardless of the actual hashes. A non-zero seed also keeps
// the fold order-sensitive for a two-element compound: Mix2 itself is
// commutative (it is built from a commutative multiplication), so
// HashCompound([A,B]) and HashCompound([B,A]) would otherwise reduce to the
// same single Mix2(A,B) call.
const compoundSeed uint64 = wyp0

// CompoundSeed returns the fixed seed HashCompound folds from, exported so
// tests can reconstruct the fold by hand without duplicating the constant.
func CompoundSeed() uint64 {
	return compoundSeed
}

// HashCompound folds Mix2 over an ordered slice of per-type hashes,
// producing a single hash for the compound. The result depends on the order
// of hashes: HashCompound([A,B]) != HashCompound([B,A]) in general. The
// empty compound (no hashes) always hashes to 0, matching the empty-bundle
// archetype's fixed key.
func HashCompound(hashes []TypeHash) TypeHash {
	if len(hashes) == 0 {
		return 0
	}
	acc := compoundSeed
	for _, h := range hashes {
		acc = Mix2(acc, uint64(h))
	}
	return TypeHash(acc)
}

// Hashable is implemented by anything that carries a precomputed TypeHash,
// letting HashCompoundInfo fold runtime metadata without recomputing the
// underlying type hash.
type Hashable interface {
	TypeHash() TypeHash
}

// HashCompoundInfo is the runtime variant of HashCompound: it folds the
// already-computed hash of each element (as reported by its TypeHash
// method) with the same Mix2 fold.
func HashCompoundInfo[T Hashable](infos []T) TypeHash {
	hashes := make([]TypeHash, len(infos))
	for i, info := range infos {
		hashes[i] = info.TypeHash()
	}
	return HashCompound(hashes)
}
