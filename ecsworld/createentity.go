package ecsworld

// Go has no variadic type parameters, so a fixed-arity family stands in for
// CreateEntity<T1, ..., Tn>(world) the way edwinsyarief-lazyecs generates
// AddComponent2, AddComponent3, and so on for each arity it supports.
//
// Each CreateEntityN builds the Bundle for the caller and forwards to
// World.CreateEntity; none of them do anything CreateEntity(Bundle) plus
// manual Add calls couldn't, they just remove the boilerplate for the
// common small-arity case.

// CreateEntity1 creates an entity carrying a single component of type T1.
func CreateEntity1[T1 any](w *World) (Entity, error) {
	b := Add[T1](NewBundle(), w)
	return w.CreateEntity(b)
}

// CreateEntity2 creates an entity carrying components of type T1 and T2.
func CreateEntity2[T1, T2 any](w *World) (Entity, error) {
	b := Add[T2](Add[T1](NewBundle(), w), w)
	return w.CreateEntity(b)
}

// CreateEntity3 creates an entity carrying components of type T1, T2, T3.
func CreateEntity3[T1, T2, T3 any](w *World) (Entity, error) {
	b := Add[T3](Add[T2](Add[T1](NewBundle(), w), w), w)
	return w.CreateEntity(b)
}

// CreateEntity4 creates an entity carrying components of type T1..T4.
func CreateEntity4[T1, T2, T3, T4 any](w *World) (Entity, error) {
	b := Add[T4](Add[T3](Add[T2](Add[T1](NewBundle(), w), w), w), w)
	return w.CreateEntity(b)
}

// CreateEntity5 creates an entity carrying components of type T1..T5.
func CreateEntity5[T1, T2, T3, T4, T5 any](w *World) (Entity, error) {
	b := Add[T5](Add[T4](Add[T3](Add[T2](Add[T1](NewBundle(), w), w), w), w), w)
	return w.CreateEntity(b)
}

// CreateEntity6 creates an entity carrying components of type T1..T6.
func CreateEntity6[T1, T2, T3, T4, T5, T6 any](w *World) (Entity, error) {
	b := Add[T6](Add[T5](Add[T4](Add[T3](Add[T2](Add[T1](NewBundle(), w), w), w), w), w), w)
	return w.CreateEntity(b)
}
