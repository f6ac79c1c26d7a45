package system

import (
	"github.com/jakecoffman/cp"

	"github.com/brandon-schabel/td-engine/ecs"
	"github.com/brandon-schabel/td-engine/ecs/component"
	"github.com/brandon-schabel/td-engine/nav"
)

// SteeringSystem drives every enemy toward the target each tick: it requests
// and validates paths, performs smooth arrival motion, detects stagnation,
// and runs bounded recovery when an enemy is physically stuck. All outcomes
// are data (flags, counters, empty paths); the tick never unwinds.
type SteeringSystem struct {
	recovery RecoveryPolicy
}

func NewSteeringSystem(recovery RecoveryPolicy) *SteeringSystem {
	if recovery == nil {
		recovery = NewDefaultRecoveryPolicy(1)
	}
	return &SteeringSystem{recovery: recovery}
}

type targetInfo struct {
	pos   cp.Vector
	vel   cp.Vector
	valid bool
}

func (s *SteeringSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
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

	target := lookupTarget(w)

	ecs.ForEach3(w, component.EnemyComponent.Kind(), component.SteeringComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, enemy *component.Enemy, st *component.Steering, tr *component.Transform) {
			vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind())
			if !ok {
				return
			}
			s.updateEnemy(w, e, enemy, st, tr, vel, grid, clock.Delta, target)
		})
}

func (s *SteeringSystem) updateEnemy(w *ecs.World, e ecs.Entity, enemy *component.Enemy, st *component.Steering, tr *component.Transform, vel *component.Velocity, grid *nav.Grid, dt float64, target targetInfo) {
	if st.Recovering {
		s.performRecoveryMovement(w, e, st, tr, vel, grid, enemy, dt)
		return
	}

	if !target.valid {
		// No target: pause path-seeking, don't accrue stagnation.
		vel.Vel = cp.Vector{}
		return
	}

	s.checkPathValidity(w, e, enemy, st, tr, grid, dt, target)

	if !st.HasPath() {
		// Currently unreachable. Treat like "about to be stuck" so the enemy
		// proactively recovers instead of idling against a wall forever.
		vel.Vel = cp.Vector{}
		st.PosHistory.Push(tr.Pos)
		st.VelHistory.Push(cp.Vector{})
		st.StuckCounter += dt
		if st.StuckCounter >= st.Tuning.StuckThreshold {
			s.initiateRecovery(w, e, st, tr, vel, grid, enemy)
		}
		return
	}

	smoothMoveTo(st, tr.Pos, vel, enemy.MoveSpeed)
	advanceWaypoint(st, tr.Pos)

	if detectStuck(st, tr.Pos, vel.Vel, dt) {
		s.initiateRecovery(w, e, st, tr, vel, grid, enemy)
	}
}

// checkPathValidity re-requests a path when the repath timer elapses or the
// next waypoint's cell has become impassable. The check is throttled; it does
// not run the pathfinder every tick.
func (s *SteeringSystem) checkPathValidity(w *ecs.World, e ecs.Entity, enemy *component.Enemy, st *component.Steering, tr *component.Transform, grid *nav.Grid, dt float64, target targetInfo) {
	st.RepathTimer -= dt

	policy := nav.PolicyFor(enemy.Movement)
	stale := st.RepathTimer <= 0 || !st.HasPath()
	if !stale {
		if wp, ok := st.NextWaypoint(); ok {
			x, y := grid.WorldToGrid(wp)
			stale = !policy.Passable(grid, x, y)
		}
	}
	if !stale {
		return
	}

	goal := predictGoal(grid, policy, target, st.Tuning.PredictLookahead, st.Tuning.SpeedEpsilon)
	sx, sy := grid.WorldToGrid(tr.Pos)
	gx, gy := grid.WorldToGrid(goal)

	hadPath := st.HasPath()
	st.Path = nav.FindPath(grid, sx, sy, gx, gy, policy, st.Tuning.BorderMargin, st.Tuning.MaxSearchNodes)
	st.PathIndex = 0
	st.PathTarget = goal
	st.RepathTimer = st.Tuning.RepathInterval

	// Skip the start-cell waypoint so the commanded velocity is nonzero on the
	// tick the path arrives. The final waypoint is never skipped.
	if len(st.Path) > 1 {
		wx, wy := grid.WorldToGrid(st.Path[0])
		if wx == sx && wy == sy {
			st.PathIndex = 1
		}
	}

	if hadPath && !st.HasPath() {
		w.Events().Push(ecs.Event{Type: "nav", Data: ecs.NavEvent{Entity: e, Kind: ecs.NavEventPathLost}})
	}
}

// predictGoal extrapolates a moving target ahead along its velocity so paths
// converge on where the target will be, not where it was sampled. Falls back
// to the sampled position when the predicted cell is impassable.
func predictGoal(grid *nav.Grid, policy nav.MovementPolicy, target targetInfo, lookahead, speedEpsilon float64) cp.Vector {
	if lookahead <= 0 || target.vel.Length() <= speedEpsilon {
		return target.pos
	}
	predicted := target.pos.Add(target.vel.Mult(lookahead))
	px, py := grid.WorldToGrid(predicted)
	if !policy.Passable(grid, px, py) {
		return target.pos
	}
	return predicted
}

// smoothMoveTo sets the commanded velocity toward the next waypoint at the
// enemy's configured speed, scaling down inside the deceleration radius of
// the final target so the enemy settles instead of overshooting. Each
// velocity axis keeps the sign of the corresponding position delta.
func smoothMoveTo(st *component.Steering, pos cp.Vector, vel *component.Velocity, speed float64) {
	wp, ok := st.NextWaypoint()
	if !ok {
		vel.Vel = cp.Vector{}
		return
	}
	delta := wp.Sub(pos)
	dist := delta.Length()
	if dist < 1e-9 {
		vel.Vel = cp.Vector{}
		return
	}

	desired := speed
	if final, ok := st.FinalWaypoint(); ok {
		finalDist := final.Sub(pos).Length()
		if r := st.Tuning.DecelRadius; r > 0 && finalDist < r {
			desired *= finalDist / r
		}
	}
	vel.Vel = delta.Mult(desired / dist)
}

// advanceWaypoint consumes the next waypoint once the enemy is close enough.
// The final waypoint is never consumed; arrival slowdown settles on it.
func advanceWaypoint(st *component.Steering, pos cp.Vector) {
	wp, ok := st.NextWaypoint()
	if !ok {
		return
	}
	if pos.Sub(wp).Length() <= st.Tuning.WaypointRadius && st.PathIndex < len(st.Path)-1 {
		st.PathIndex++
	}
}

// detectStuck samples position and commanded velocity into the ring buffers
// and accumulates suspected-stagnation time: net displacement across the
// window below epsilon while commanded speed is above epsilon means the
// enemy is trying to move but isn't. Any real progress resets the counter,
// so steady path-following never misfires.
func detectStuck(st *component.Steering, pos, commanded cp.Vector, dt float64) bool {
	st.PosHistory.Push(pos)
	st.VelHistory.Push(commanded)

	oldest, ok := st.PosHistory.Oldest()
	if !ok {
		return false
	}
	displacement := pos.Sub(oldest).Length()
	if displacement < st.Tuning.StuckEpsilon && commanded.Length() > st.Tuning.SpeedEpsilon {
		st.StuckCounter += dt
	} else {
		st.StuckCounter = 0
	}
	return st.StuckCounter >= st.Tuning.StuckThreshold
}

// initiateRecovery abandons the current path and overrides normal steering
// with an escape velocity for a bounded duration.
func (s *SteeringSystem) initiateRecovery(w *ecs.World, e ecs.Entity, st *component.Steering, tr *component.Transform, vel *component.Velocity, grid *nav.Grid, enemy *component.Enemy) {
	st.ClearPath()
	st.Recovering = true
	st.RecoveryTimer = 0
	st.StuckCounter = 0
	st.Escape = s.recovery.EscapeVelocity(grid, tr.Pos, enemy.MoveSpeed, enemy.Movement, vel.Vel)
	vel.Vel = st.Escape

	w.Events().Push(ecs.Event{Type: "nav", Data: ecs.NavEvent{Entity: e, Kind: ecs.NavEventStuck}})
	w.Events().Push(ecs.Event{Type: "nav", Data: ecs.NavEvent{Entity: e, Kind: ecs.NavEventRecoveryStart}})
}

// performRecoveryMovement drives the enemy along the escape velocity,
// re-picking the direction if movement collided with an obstacle, and exits
// unconditionally after the fixed recovery duration regardless of success.
func (s *SteeringSystem) performRecoveryMovement(w *ecs.World, e ecs.Entity, st *component.Steering, tr *component.Transform, vel *component.Velocity, grid *nav.Grid, enemy *component.Enemy, dt float64) {
	st.RecoveryTimer += dt

	if col, ok := ecs.Get(w, e, component.CollisionComponent.Kind()); ok && col.Blocked {
		st.Escape = s.recovery.EscapeVelocity(grid, tr.Pos, enemy.MoveSpeed, enemy.Movement, st.Escape)
		col.Blocked = false
	}
	vel.Vel = st.Escape

	st.PosHistory.Push(tr.Pos)
	st.VelHistory.Push(vel.Vel)

	if st.RecoveryTimer >= st.Tuning.RecoveryDuration {
		st.Recovering = false
		st.RecoveryTimer = 0
		vel.Vel = cp.Vector{}
		// Force a fresh path request on the next tick.
		st.RepathTimer = 0
		w.Events().Push(ecs.Event{Type: "nav", Data: ecs.NavEvent{Entity: e, Kind: ecs.NavEventRecoveryEnd}})
	}
}

func clockOf(w *ecs.World) (*component.Clock, bool) {
	e, ok := ecs.First(w, component.ClockComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.ClockComponent.Kind())
}

func gridOf(w *ecs.World) (*nav.Grid, bool) {
	e, ok := ecs.First(w, component.LevelComponent.Kind())
	if !ok {
		return nil, false
	}
	lvl, ok := ecs.Get(w, e, component.LevelComponent.Kind())
	if !ok || lvl.Grid == nil {
		return nil, false
	}
	return lvl.Grid, true
}

func lookupTarget(w *ecs.World) targetInfo {
	e, ok := ecs.First(w, component.TargetComponent.Kind())
	if !ok {
		return targetInfo{}
	}
	tag, ok := ecs.Get(w, e, component.TargetComponent.Kind())
	if !ok || !tag.Alive {
		return targetInfo{}
	}
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return targetInfo{}
	}
	info := targetInfo{pos: tr.Pos, valid: true}
	if vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
		info.vel = vel.Vel
	}
	return info
}
