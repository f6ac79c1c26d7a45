package ecs

import "github.com/brandon-schabel/td-engine/ecs/component"

// Add attaches a component to a live entity, replacing any existing one of
// the same kind.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value T) error {
	if w == nil || !IsAlive(w, e) {
		return component.ErrEntityNotAlive
	}
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	w.store(kind.ID()).Set(e.ID, value)
	return nil
}

// Remove detaches a component. Returns false if the entity didn't have one.
func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil || !IsAlive(w, e) {
		return false
	}
	s := w.lookup(kind.ID())
	return s.Remove(e.ID)
}

// Has reports whether a live entity carries a component of the given kind.
func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil || !IsAlive(w, e) {
		return false
	}
	return w.lookup(kind.ID()).Has(e.ID)
}

// Get returns the component of the given kind for a live entity.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (T, bool) {
	var zero T
	if w == nil || !IsAlive(w, e) {
		return zero, false
	}
	v := w.lookup(kind.ID()).Get(e.ID)
	if v == nil {
		return zero, false
	}
	cast, ok := v.(T)
	if !ok {
		return zero, false
	}
	return cast, true
}

// First returns any one live entity carrying the given kind. Used for
// world singletons (clock, level, target).
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	if w == nil {
		return Entity{}, false
	}
	s := w.lookup(kind.ID())
	for _, id := range s.Entities() {
		e := w.entities.entityFor(id)
		if w.entities.isAlive(e) {
			return e, true
		}
	}
	return Entity{}, false
}

// ForEach visits every live entity with the given component kind.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, T)) {
	if w == nil || fn == nil {
		return
	}
	s := w.lookup(kind.ID())
	ids := append([]int(nil), s.Entities()...)
	for _, id := range ids {
		e := w.entities.entityFor(id)
		if !w.entities.isAlive(e) {
			continue
		}
		if v, ok := s.Get(id).(T); ok {
			fn(e, v)
		}
	}
}

// ForEach2 visits every live entity carrying both component kinds.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, A, B)) {
	if w == nil || fn == nil {
		return
	}
	sa := w.lookup(ka.ID())
	sb := w.lookup(kb.ID())
	if sa.Len() == 0 || sb.Len() == 0 {
		return
	}
	ids := append([]int(nil), sa.Entities()...)
	for _, id := range ids {
		e := w.entities.entityFor(id)
		if !w.entities.isAlive(e) || !sb.Has(id) {
			continue
		}
		a, okA := sa.Get(id).(A)
		b, okB := sb.Get(id).(B)
		if okA && okB {
			fn(e, a, b)
		}
	}
}

// ForEach3 visits every live entity carrying all three component kinds.
func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, A, B, C)) {
	if w == nil || fn == nil {
		return
	}
	sa := w.lookup(ka.ID())
	sb := w.lookup(kb.ID())
	sc := w.lookup(kc.ID())
	if sa.Len() == 0 || sb.Len() == 0 || sc.Len() == 0 {
		return
	}
	ids := append([]int(nil), sa.Entities()...)
	for _, id := range ids {
		e := w.entities.entityFor(id)
		if !w.entities.isAlive(e) || !sb.Has(id) || !sc.Has(id) {
			continue
		}
		a, okA := sa.Get(id).(A)
		b, okB := sb.Get(id).(B)
		c, okC := sc.Get(id).(C)
		if okA && okB && okC {
			fn(e, a, b, c)
		}
	}
}
