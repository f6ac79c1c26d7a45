package system

import (
	"fmt"

	"github.com/jakecoffman/cp"

	"github.com/brandon-schabel/td-engine/ecs"
	"github.com/brandon-schabel/td-engine/ecs/component"
)

// SpawnFunc creates one enemy of the named prefab at a world position. The
// wave system stays decoupled from prefab loading through it.
type SpawnFunc func(w *ecs.World, prefab string, pos cp.Vector) (ecs.Entity, error)

// WaveSystem spawns the level's enemy waves on a dt-accumulated timer.
type WaveSystem struct {
	spawn SpawnFunc
}

func NewWaveSystem(spawn SpawnFunc) *WaveSystem {
	return &WaveSystem{spawn: spawn}
}

func (ws *WaveSystem) Update(w *ecs.World) {
	if ws == nil || w == nil || ws.spawn == nil {
		return
	}
	clock, ok := clockOf(w)
	if !ok {
		return
	}
	grid, ok := gridOf(w)
	if !ok {
		return
	}
	e, ok := ecs.First(w, component.WaveStateComponent.Kind())
	if !ok {
		return
	}
	state, ok := ecs.Get(w, e, component.WaveStateComponent.Kind())
	if !ok || state.Done {
		return
	}

	state.Timer += clock.Delta
	for state.Index < len(state.Waves) {
		wave := state.Waves[state.Index]
		if state.Spawned >= wave.Count {
			state.Index++
			state.Spawned = 0
			continue
		}
		if state.Timer < wave.Interval {
			return
		}
		state.Timer -= wave.Interval

		pos := grid.GridToWorld(wave.SpawnX, wave.SpawnY)
		if _, err := ws.spawn(w, wave.Enemy, pos); err != nil {
			fmt.Printf("wave: spawn %s: %v\n", wave.Enemy, err)
		}
		state.Spawned++
	}
	state.Done = true
}
