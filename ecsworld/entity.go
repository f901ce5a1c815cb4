package ecsworld

import "pkg.world.dev/world-engine/ecs/archetype"

// Entity is a handle to one entity within a World: its stable ID plus the
// archetype currently holding its component data. The roster index backing
// an Entity is not stored here because SwapRemove invalidates it on any
// other removal from the same archetype; callers look it up by ID through
// Archetype.Entities when they need the current slot.
type Entity struct {
	ID        uint64
	Archetype *archetype.Archetype
	World     *World
}
