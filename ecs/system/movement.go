package system

import (
	"github.com/brandon-schabel/td-engine/ecs"
	"github.com/brandon-schabel/td-engine/ecs/component"
	"github.com/brandon-schabel/td-engine/nav"
)

// MovementSystem integrates commanded velocities into positions, but refuses
// to move an entity into a cell its movement policy cannot pass. The refusal
// is what makes "stuck against geometry" physically real, and the Collision
// flag it raises is what lets recovery pick a new direction.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (m *MovementSystem) Update(w *ecs.World) {
	if m == nil || w == nil {
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

	ecs.ForEach3(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), component.VelocityComponent.Kind(),
		func(e ecs.Entity, enemy *component.Enemy, tr *component.Transform, vel *component.Velocity) {
			next := tr.Pos.Add(vel.Vel.Mult(clock.Delta))
			x, y := grid.WorldToGrid(next)
			blocked := !nav.PolicyFor(enemy.Movement).Passable(grid, x, y)
			if !blocked {
				tr.Pos = next
			}
			if col, ok := ecs.Get(w, e, component.CollisionComponent.Kind()); ok {
				col.Blocked = blocked
			}
		})

	// The target moves freely on any non-border cell.
	ecs.ForEach3(w, component.TargetComponent.Kind(), component.TransformComponent.Kind(), component.VelocityComponent.Kind(),
		func(e ecs.Entity, _ *component.Target, tr *component.Transform, vel *component.Velocity) {
			next := tr.Pos.Add(vel.Vel.Mult(clock.Delta))
			x, y := grid.WorldToGrid(next)
			if grid.CellTypeAt(x, y) != nav.CellBorder {
				tr.Pos = next
			}
		})
}
