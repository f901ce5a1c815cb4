package ecsworld

import (
	"pkg.world.dev/world-engine/ecs/alloc"
	"pkg.world.dev/world-engine/ecs/component"
	"pkg.world.dev/world-engine/ecs/hash"
)

// Option configures a World at construction time. See World.New.
type Option func(*World)

// WithAllocator sets the allocator a World uses for every column buffer it
// owns. World.New returns an error if no allocator is supplied.
func WithAllocator(a alloc.Allocator) Option {
	return func(w *World) {
		w.allocator = a
	}
}

// WithLogger overrides the default discard logger.
func WithLogger(logger *Logger) Option {
	return func(w *World) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithHook pre-registers hook for T while the World is being constructed,
// so that it is in effect for every archetype created afterward, starting
// with the first CreateEntity call.
func WithHook[T any](hook component.Hook) Option {
	return func(w *World) {
		w.hooks[hash.TypeHashOf[T]()] = &hook
	}
}
