package entity

import (
	"fmt"
	"strings"

	"github.com/jakecoffman/cp"

	"github.com/brandon-schabel/td-engine/ecs"
	"github.com/brandon-schabel/td-engine/ecs/component"
	"github.com/brandon-schabel/td-engine/nav"
	"github.com/brandon-schabel/td-engine/prefabs"
)

// NewEnemy spawns an enemy from the named prefab at a world position. The
// prefab name maps to "<name>.yaml" under prefabs/.
func NewEnemy(w *ecs.World, name string, pos cp.Vector) (ecs.Entity, error) {
	filename := name
	if !strings.HasSuffix(filename, ".yaml") {
		filename += ".yaml"
	}
	spec, err := prefabs.LoadSpec[prefabs.EnemySpec](filename)
	if err != nil {
		return ecs.Entity{}, fmt.Errorf("enemy: load spec: %w", err)
	}

	movement, err := nav.ParseMovementType(spec.Movement)
	if err != nil {
		return ecs.Entity{}, fmt.Errorf("enemy: %s: %w", filename, err)
	}

	e := ecs.CreateEntity(w)

	if err := ecs.Add(w, e, component.EnemyComponent.Kind(), &component.Enemy{
		Name:      spec.Name,
		MoveSpeed: spec.MoveSpeed,
		Movement:  movement,
	}); err != nil {
		return ecs.Entity{}, fmt.Errorf("enemy: add enemy: %w", err)
	}

	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Pos: pos}); err != nil {
		return ecs.Entity{}, fmt.Errorf("enemy: add transform: %w", err)
	}

	if err := ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{}); err != nil {
		return ecs.Entity{}, fmt.Errorf("enemy: add velocity: %w", err)
	}

	if err := ecs.Add(w, e, component.CollisionComponent.Kind(), &component.Collision{}); err != nil {
		return ecs.Entity{}, fmt.Errorf("enemy: add collision: %w", err)
	}

	if err := ecs.Add(w, e, component.SteeringComponent.Kind(), component.NewSteering(tuningFromSpec(spec.Steering))); err != nil {
		return ecs.Entity{}, fmt.Errorf("enemy: add steering: %w", err)
	}

	return e, nil
}

// tuningFromSpec overlays prefab values on the defaults so a prefab only
// needs to list the thresholds it changes.
func tuningFromSpec(s prefabs.SteeringSpec) component.SteeringTuning {
	t := component.DefaultSteeringTuning()
	if s.RepathInterval > 0 {
		t.RepathInterval = s.RepathInterval
	}
	if s.StuckWindow > 0 {
		t.StuckWindow = s.StuckWindow
	}
	if s.StuckEpsilon > 0 {
		t.StuckEpsilon = s.StuckEpsilon
	}
	if s.SpeedEpsilon > 0 {
		t.SpeedEpsilon = s.SpeedEpsilon
	}
	if s.StuckThreshold > 0 {
		t.StuckThreshold = s.StuckThreshold
	}
	if s.RecoveryDuration > 0 {
		t.RecoveryDuration = s.RecoveryDuration
	}
	if s.DecelRadius > 0 {
		t.DecelRadius = s.DecelRadius
	}
	if s.WaypointRadius > 0 {
		t.WaypointRadius = s.WaypointRadius
	}
	if s.PredictLookahead > 0 {
		t.PredictLookahead = s.PredictLookahead
	}
	if s.BorderMargin > 0 {
		t.BorderMargin = s.BorderMargin
	}
	if s.MaxSearchNodes > 0 {
		t.MaxSearchNodes = s.MaxSearchNodes
	}
	return t
}
