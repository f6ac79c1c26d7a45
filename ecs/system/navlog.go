package system

import (
	"log"

	"github.com/brandon-schabel/td-engine/ecs"
)

// NavLogSystem drains navigation events at the end of the tick. Transitions
// are observational only; nothing in the simulation depends on them. An
// optional hook lets the UI/audio layer react.
type NavLogSystem struct {
	Verbose bool
	OnEvent func(ecs.NavEvent)
}

func NewNavLogSystem(verbose bool) *NavLogSystem {
	return &NavLogSystem{Verbose: verbose}
}

func (n *NavLogSystem) Update(w *ecs.World) {
	if n == nil || w == nil {
		return
	}
	for _, evt := range w.Events().Drain() {
		nav, ok := evt.Data.(ecs.NavEvent)
		if !ok {
			continue
		}
		if n.Verbose {
			log.Printf("nav: entity %s %s", nav.Entity, nav.Kind)
		}
		if n.OnEvent != nil {
			n.OnEvent(nav)
		}
	}
}
