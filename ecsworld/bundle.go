package ecsworld

import "pkg.world.dev/world-engine/ecs/component"

// Bundle is the set of component types a new entity will be created with.
// Go has no variadic type parameters, so a Bundle is built up by value
// (NewBundle + Add) or, more commonly, by calling one of the CreateEntityN
// helpers, which build the Bundle for the caller.
type Bundle struct {
	infos []component.TypeInfo
}

// NewBundle returns an empty Bundle.
func NewBundle() Bundle {
	return Bundle{}
}

// Infos returns the component types in this bundle, in the order they were
// added.
func (b Bundle) Infos() []component.TypeInfo {
	return b.infos
}

// Add appends T's TypeInfo, resolved against world's hook table, to the
// bundle and returns the extended bundle. World may be nil, in which case
// the default hook is used.
func Add[T any](b Bundle, world *World) Bundle {
	var resolver component.HookResolver
	if world != nil {
		resolver = world
	}
	b.infos = append(b.infos, component.TypeInfoOf[T](resolver))
	return b
}
