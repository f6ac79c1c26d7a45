package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"

	"github.com/brandon-schabel/td-engine/ecs"
	"github.com/brandon-schabel/td-engine/ecs/component"
)

// NewTarget spawns the entity enemies chase. One per world.
func NewTarget(w *ecs.World, pos cp.Vector) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)

	if err := ecs.Add(w, e, component.TargetComponent.Kind(), &component.Target{Alive: true}); err != nil {
		return ecs.Entity{}, fmt.Errorf("target: add target: %w", err)
	}

	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Pos: pos}); err != nil {
		return ecs.Entity{}, fmt.Errorf("target: add transform: %w", err)
	}

	if err := ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{}); err != nil {
		return ecs.Entity{}, fmt.Errorf("target: add velocity: %w", err)
	}

	return e, nil
}
