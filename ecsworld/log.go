package ecsworld

import (
	"github.com/rs/zerolog"
	"pkg.world.dev/world-engine/ecs/archetype"
)

// Logger wraps a zerolog.Logger with helpers for emitting structured events
// about world and archetype state, matching the teacher's cardinal/ecs.Logger
// wrapper type.
type Logger struct {
	*zerolog.Logger
}

// NewDiscardLogger returns a Logger that writes nowhere, used as the
// default when WithLogger is not supplied to World.New.
func NewDiscardLogger() *Logger {
	l := zerolog.Nop()
	return &Logger{Logger: &l}
}

func (l *Logger) logArchetypeEvent(event *zerolog.Event, a *archetype.Archetype) *zerolog.Event {
	event.Uint64("archetype_hash", uint64(a.Hash))
	event.Int("component_count", len(a.Infos))
	event.Int("entity_count", a.Len())
	return event
}

func (l *Logger) archetypeCreated(a *archetype.Archetype) {
	l.logArchetypeEvent(l.Debug(), a).Msg("archetype created")
}

func (l *Logger) entityCreated(entityID uint64, a *archetype.Archetype) {
	l.logArchetypeEvent(l.Debug(), a).Uint64("entity_id", entityID).Msg("entity created")
}

func (l *Logger) hookOverridden(typeHash uint64, columnsAlreadyExist bool) {
	event := l.Warn()
	if !columnsAlreadyExist {
		event = l.Debug()
	}
	event.Uint64("component_hash", typeHash).
		Bool("existing_columns_retain_old_hook", columnsAlreadyExist).
		Msg("hook overridden for component type")
}
