// Package ecsworld is the top-level registry of an ECS instance: it owns
// every archetype, the per-type hook table, and the monotonic entity ID
// counter, and is the entry point through which entities are created.
package ecsworld

import (
	"github.com/google/uuid"
	"github.com/rotisserie/eris"

	"pkg.world.dev/world-engine/ecs/alloc"
	"pkg.world.dev/world-engine/ecs/archetype"
	"pkg.world.dev/world-engine/ecs/component"
	"pkg.world.dev/world-engine/ecs/hash"
)

// EmptyArchetypeHash is the hash of the archetype holding entities with no
// components. Every World contains this archetype from construction.
const EmptyArchetypeHash hash.TypeHash = 0

// World owns every archetype, the per-type hook overrides, and the
// monotonically increasing entity ID counter for one ECS instance.
//
// A World is single-threaded: the core provides no locking, and concurrent
// use from multiple goroutines is undefined (see SPEC_FULL.md §5).
type World struct {
	id uuid.UUID

	allocator    alloc.Allocator
	logger       *Logger
	nextEntityID uint64

	archetypes map[hash.TypeHash]*archetype.Archetype
	hooks      map[hash.TypeHash]*component.Hook
}

// New creates a World with a single archetype, the empty-bundle archetype
// at EmptyArchetypeHash, and applies opts in order. WithAllocator is
// required; New returns an error if no allocator was supplied.
func New(opts ...Option) (*World, error) {
	w := &World{
		id:         uuid.New(),
		logger:     NewDiscardLogger(),
		archetypes: make(map[hash.TypeHash]*archetype.Archetype),
		hooks:      make(map[hash.TypeHash]*component.Hook),
	}

	for _, opt := range opts {
		opt(w)
	}

	if w.allocator == nil {
		return nil, eris.New("ecsworld: World.New requires WithAllocator")
	}

	withID := w.logger.With().Str("world_id", w.id.String()).Logger()
	w.logger = &Logger{Logger: &withID}

	empty, err := archetype.New(nil)
	if err != nil {
		return nil, eris.Wrap(err, "ecsworld: failed to create empty archetype")
	}
	w.archetypes[EmptyArchetypeHash] = empty
	w.logger.archetypeCreated(empty)

	return w, nil
}

// ID returns this world's instance identifier, carried by every log line it
// emits so that logs from multiple worlds in one process can be told apart.
func (w *World) ID() uuid.UUID {
	return w.id
}

// Logger returns this world's structured logger: the one supplied through
// WithLogger (or the default discard logger) with this world's world_id
// field attached, so upper layers can enrich the same log stream with their
// own fields.
func (w *World) Logger() *Logger {
	return w.logger
}

// ResolveHook implements component.HookResolver so that component.TypeInfoOf
// can resolve a World's registered hooks without the component package
// importing this one.
func (w *World) ResolveHook(h hash.TypeHash) *component.Hook {
	return w.hooks[h]
}

// GetHook returns the registered hook for T, or component.DefaultHook if
// none was installed.
func GetHook[T any](w *World) *component.Hook {
	h := hash.TypeHashOf[T]()
	if hook := w.hooks[h]; hook != nil {
		return hook
	}
	return component.DefaultHook()
}

// SetHook installs hook as the destructor/copy pair for T. It must be
// called before any column of type T is erased (i.e. before the first
// entity carrying T is created); existing columns keep whichever hook was
// bound when they were created (early binding — see SPEC_FULL.md §9).
func SetHook[T any](w *World, hook component.Hook) error {
	h := hash.TypeHashOf[T]()
	alreadyInUse := w.hasColumnFor(h)
	w.hooks[h] = &hook
	w.logger.hookOverridden(uint64(h), alreadyInUse)
	if alreadyInUse {
		return eris.Errorf("ecsworld: hook for component hash %d installed after columns of that type already exist; existing columns keep the old hook", h)
	}
	return nil
}

func (w *World) hasColumnFor(h hash.TypeHash) bool {
	for _, a := range w.archetypes {
		if a.Column(h) != nil {
			return true
		}
	}
	return false
}

// archetypeFor returns the archetype for bundle's component set, creating
// it if this is the first time this exact combination has been requested.
func (w *World) archetypeFor(bundle Bundle) (*archetype.Archetype, error) {
	infos := bundle.Infos()
	h := hash.HashCompoundInfo(infos)

	if a, ok := w.archetypes[h]; ok {
		return a, nil
	}

	owned := make([]component.TypeInfo, len(infos))
	copy(owned, infos)

	a, err := archetype.New(owned)
	if err != nil {
		return nil, eris.Wrapf(err, "ecsworld: failed to create archetype for hash %d", h)
	}
	w.archetypes[h] = a
	w.logger.archetypeCreated(a)
	return a, nil
}

// CreateEntity resolves or creates the archetype for bundle, appends a new
// entity to its roster, and returns the Entity handle. Entity IDs are
// strictly increasing within a World, starting at 0, and are never reused.
func (w *World) CreateEntity(bundle Bundle) (Entity, error) {
	a, err := w.archetypeFor(bundle)
	if err != nil {
		return Entity{}, err
	}

	id := w.nextEntityID
	if _, err := a.AppendEntity(w.allocator, id); err != nil {
		return Entity{}, eris.Wrapf(err, "ecsworld: failed to append entity %d to archetype %d", id, a.Hash)
	}
	w.nextEntityID++
	w.logger.entityCreated(id, a)

	return Entity{ID: id, Archetype: a, World: w}, nil
}

// Close runs Deinit on every archetype, releasing their column buffers
// through this world's allocator, and clears the archetype and hook tables.
// Entities and archetype pointers obtained from this World are invalid
// after Close returns.
func (w *World) Close() {
	for _, a := range w.archetypes {
		a.Deinit(w.allocator)
	}
	w.archetypes = make(map[hash.TypeHash]*archetype.Archetype)
	w.hooks = make(map[hash.TypeHash]*component.Hook)
}
