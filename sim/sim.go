package sim

import (
	"fmt"

	"github.com/jakecoffman/cp"

	"github.com/brandon-schabel/td-engine/ecs"
	"github.com/brandon-schabel/td-engine/ecs/component"
	"github.com/brandon-schabel/td-engine/ecs/entity"
	"github.com/brandon-schabel/td-engine/ecs/system"
	"github.com/brandon-schabel/td-engine/levels"
	"github.com/brandon-schabel/td-engine/nav"
)

// Options configures a simulation.
type Options struct {
	Seed           int64
	Verbose        bool
	RecoveryScript []byte // tengo source; nil uses the built-in recovery policy
	OnNav          func(ecs.NavEvent)
}

// Sim assembles a world from a level and steps it on a fixed timestep. The
// game loop, the headless runner, and the integration tests all drive the
// same assembly.
type Sim struct {
	World     *ecs.World
	Scheduler *ecs.Scheduler
	Grid      *nav.Grid
	Target    ecs.Entity

	clock  *component.Clock
	ticks  int
	counts map[ecs.NavEventKind]int
}

func New(lvl *levels.Level, opts Options) (*Sim, error) {
	if lvl == nil {
		return nil, fmt.Errorf("sim: nil level")
	}
	grid, err := lvl.BuildGrid()
	if err != nil {
		return nil, fmt.Errorf("sim: build grid: %w", err)
	}

	w := ecs.NewWorld()

	clock := &component.Clock{}
	clockEntity := ecs.CreateEntity(w)
	if err := ecs.Add(w, clockEntity, component.ClockComponent.Kind(), clock); err != nil {
		return nil, fmt.Errorf("sim: add clock: %w", err)
	}

	levelEntity := ecs.CreateEntity(w)
	if err := ecs.Add(w, levelEntity, component.LevelComponent.Kind(), &component.Level{Grid: grid}); err != nil {
		return nil, fmt.Errorf("sim: add level: %w", err)
	}

	waves := make([]component.Wave, 0, len(lvl.Waves))
	for i := range lvl.Waves {
		spec := &lvl.Waves[i]
		sx, sy := spec.SpawnCell()
		waves = append(waves, component.Wave{
			Enemy:    spec.Enemy,
			Count:    spec.Count,
			Interval: spec.Interval,
			SpawnX:   sx,
			SpawnY:   sy,
		})
	}
	waveEntity := ecs.CreateEntity(w)
	if err := ecs.Add(w, waveEntity, component.WaveStateComponent.Kind(), &component.WaveState{Waves: waves}); err != nil {
		return nil, fmt.Errorf("sim: add wave state: %w", err)
	}

	tx, ty := lvl.TargetCell()
	target, err := entity.NewTarget(w, grid.GridToWorld(tx, ty))
	if err != nil {
		return nil, fmt.Errorf("sim: spawn target: %w", err)
	}

	var recovery system.RecoveryPolicy
	if len(opts.RecoveryScript) > 0 {
		scripted, err := system.NewScriptRecoveryPolicy(opts.RecoveryScript, opts.Seed)
		if err != nil {
			return nil, fmt.Errorf("sim: recovery script: %w", err)
		}
		recovery = scripted
	} else {
		recovery = system.NewDefaultRecoveryPolicy(opts.Seed)
	}

	s := &Sim{
		World:  w,
		Grid:   grid,
		Target: target,
		clock:  clock,
		counts: make(map[ecs.NavEventKind]int),
	}

	navLog := system.NewNavLogSystem(opts.Verbose)
	navLog.OnEvent = func(evt ecs.NavEvent) {
		s.counts[evt.Kind]++
		if opts.OnNav != nil {
			opts.OnNav(evt)
		}
	}

	s.Scheduler = ecs.NewScheduler(
		system.NewWaveSystem(entity.NewEnemy),
		system.NewSteeringSystem(recovery),
		system.NewMovementSystem(),
		navLog,
	)
	return s, nil
}

// Step advances the simulation by one fixed timestep.
func (s *Sim) Step(dt float64) {
	s.clock.Delta = dt
	s.clock.Elapsed += dt
	s.ticks++
	s.Scheduler.Update(s.World)
}

// SetTargetVelocity sets the chased entity's velocity for the next ticks.
func (s *Sim) SetTargetVelocity(v cp.Vector) {
	if vel, ok := ecs.Get(s.World, s.Target, component.VelocityComponent.Kind()); ok {
		vel.Vel = v
	}
}

// TargetPos returns the chased entity's current position.
func (s *Sim) TargetPos() (cp.Vector, bool) {
	tr, ok := ecs.Get(s.World, s.Target, component.TransformComponent.Kind())
	if !ok {
		return cp.Vector{}, false
	}
	return tr.Pos, true
}

// ToggleObstacle flips an interior cell between empty and obstacle. Border
// cells are immutable; the grid ignores those writes.
func (s *Sim) ToggleObstacle(x, y int) {
	switch s.Grid.CellTypeAt(x, y) {
	case nav.CellEmpty:
		s.Grid.SetCellType(x, y, nav.CellObstacle)
	case nav.CellObstacle:
		s.Grid.SetCellType(x, y, nav.CellEmpty)
	}
}

// Report summarizes a run for the headless runner and tests.
type Report struct {
	Ticks        int
	Enemies      int
	Recovering   int
	Stuck        int
	Recoveries   int
	RecoveryEnds int
	PathsLost    int
}

func (s *Sim) Report() Report {
	r := Report{
		Ticks:        s.ticks,
		Stuck:        s.counts[ecs.NavEventStuck],
		Recoveries:   s.counts[ecs.NavEventRecoveryStart],
		RecoveryEnds: s.counts[ecs.NavEventRecoveryEnd],
		PathsLost:    s.counts[ecs.NavEventPathLost],
	}
	ecs.ForEach(s.World, component.SteeringComponent.Kind(), func(e ecs.Entity, st *component.Steering) {
		r.Enemies++
		if st.Recovering {
			r.Recovering++
		}
	})
	return r
}

func (r Report) String() string {
	return fmt.Sprintf("ticks=%d enemies=%d recovering=%d stuck=%d recoveries=%d/%d paths_lost=%d",
		r.Ticks, r.Enemies, r.Recovering, r.Stuck, r.Recoveries, r.RecoveryEnds, r.PathsLost)
}
