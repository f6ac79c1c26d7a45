package system

import (
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/brandon-schabel/td-engine/ecs"
	"github.com/brandon-schabel/td-engine/ecs/component"
)

func TestWaveSystemSpawnsOnSchedule(t *testing.T) {
	f := newNavFixture(t, [2]int{17, 17})

	we := ecs.CreateEntity(f.w)
	state := &component.WaveState{
		Waves: []component.Wave{
			{Enemy: "creep", Count: 3, Interval: 1.0, SpawnX: 2, SpawnY: 2},
			{Enemy: "wisp", Count: 1, Interval: 2.0, SpawnX: 3, SpawnY: 3},
		},
	}
	if err := ecs.Add(f.w, we, component.WaveStateComponent.Kind(), state); err != nil {
		t.Fatalf("add wave state: %v", err)
	}

	var spawned []string
	ws := NewWaveSystem(func(w *ecs.World, prefab string, pos cp.Vector) (ecs.Entity, error) {
		spawned = append(spawned, prefab)
		return ecs.CreateEntity(w), nil
	})

	f.clock.Delta = 0.5
	steps := []struct {
		name      string
		ticks     int
		wantTotal int
		wantDone  bool
	}{
		{"before_first_interval", 1, 0, false},   // 0.5s elapsed
		{"first_spawn", 1, 1, false},             // 1.0s
		{"second_and_third", 4, 3, false},        // 3.0s
		{"second_wave_pending", 3, 3, false},     // 4.5s
		{"second_wave_spawns_and_done", 1, 4, true}, // 5.0s
	}

	for _, step := range steps {
		for i := 0; i < step.ticks; i++ {
			ws.Update(f.w)
		}
		if len(spawned) != step.wantTotal {
			t.Fatalf("%s: spawned %d enemies, want %d", step.name, len(spawned), step.wantTotal)
		}
		if state.Done != step.wantDone {
			t.Fatalf("%s: done = %v, want %v", step.name, state.Done, step.wantDone)
		}
	}

	want := []string{"creep", "creep", "creep", "wisp"}
	for i, name := range want {
		if spawned[i] != name {
			t.Fatalf("spawn %d = %s, want %s", i, spawned[i], name)
		}
	}

	// Nothing more spawns once the list is exhausted.
	for i := 0; i < 10; i++ {
		ws.Update(f.w)
	}
	if len(spawned) != 4 {
		t.Fatalf("completed waves kept spawning, total %d", len(spawned))
	}
}
