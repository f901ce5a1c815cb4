package component

import (
	"pkg.world.dev/world-engine/ecs/hash"
	"pkg.world.dev/world-engine/ecs/layout"
)

// HookResolver is implemented by anything that can look up a user-installed
// Hook override for a type hash — in practice, *ecsworld.World. It is an
// interface here, rather than a direct dependency on the world package, so
// that component has no import cycle with ecsworld.
type HookResolver interface {
	ResolveHook(hash.TypeHash) *Hook
}

// TypeInfo describes a component type at runtime: its stable hash, its
// memory layout, and the hook used to destruct/copy its values.
type TypeInfo struct {
	Hash   hash.TypeHash
	Layout layout.Layout
	Hook   *Hook
}

// TypeHash satisfies hash.Hashable so a slice of TypeInfo can be folded
// directly by hash.HashCompoundInfo.
func (t TypeInfo) TypeHash() hash.TypeHash {
	return t.Hash
}

// TypeInfoOf resolves the TypeInfo for T. If resolver is non-nil and has a
// registered hook for T's hash, that hook is used; otherwise the default
// hook is used. Passing a nil resolver is equivalent to never having
// installed any hooks.
func TypeInfoOf[T any](resolver HookResolver) TypeInfo {
	h := hash.TypeHashOf[T]()
	l := layout.Of[T]()

	hook := DefaultHook()
	if resolver != nil {
		if override := resolver.ResolveHook(h); override != nil {
			hook = override
		}
	}

	return TypeInfo{Hash: h, Layout: l, Hook: hook}
}
