package system

import (
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/brandon-schabel/td-engine/nav"
)

func TestDefaultRecoveryPolicy(t *testing.T) {
	t.Run("never_zero", func(t *testing.T) {
		g := nav.NewGrid(10, 10, 32)
		p := NewDefaultRecoveryPolicy(1)
		for i := 0; i < 50; i++ {
			v := p.EscapeVelocity(g, g.GridToWorld(5, 5), 60, nav.MovementGround, cp.Vector{X: 60})
			if v.Length() < 1e-9 {
				t.Fatal("escape velocity must never be zero")
			}
		}
	})

	t.Run("avoids_failed_direction", func(t *testing.T) {
		g := nav.NewGrid(10, 10, 32)
		p := NewDefaultRecoveryPolicy(7)
		for i := 0; i < 50; i++ {
			v := p.EscapeVelocity(g, g.GridToWorld(5, 5), 60, nav.MovementGround, cp.Vector{X: 60})
			if v.X > 1e-9 {
				t.Fatalf("escape should point away from the avoided +X direction, got %v", v)
			}
		}
	})

	t.Run("enclosed_still_pushes", func(t *testing.T) {
		g := nav.NewGrid(10, 10, 32)
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				g.SetCellType(5+dx, 5+dy, nav.CellObstacle)
			}
		}
		p := NewDefaultRecoveryPolicy(1)
		v := p.EscapeVelocity(g, g.GridToWorld(5, 5), 60, nav.MovementGround, cp.Vector{})
		if v.Length() < 1e-9 {
			t.Fatal("enclosed enemy still needs a nonzero escape velocity")
		}
	})

	t.Run("flying_ignores_obstacles", func(t *testing.T) {
		g := nav.NewGrid(10, 10, 32)
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				g.SetCellType(5+dx, 5+dy, nav.CellObstacle)
			}
		}
		p := NewDefaultRecoveryPolicy(1)
		// All neighbors are obstacles, but a flyer can cross them; the pick
		// should come from the open list, pointing away from +X.
		v := p.EscapeVelocity(g, g.GridToWorld(5, 5), 60, nav.MovementFlying, cp.Vector{X: 60})
		if v.Length() < 1e-9 || v.X > 1e-9 {
			t.Fatalf("unexpected flying escape %v", v)
		}
	})
}

func TestScriptRecoveryPolicy(t *testing.T) {
	g := nav.NewGrid(10, 10, 32)

	t.Run("uses_script_result", func(t *testing.T) {
		src := []byte(`
escape_x := __speed
escape_y := 0.0
`)
		p, err := NewScriptRecoveryPolicy(src, 1)
		if err != nil {
			t.Fatalf("compile: %v", err)
		}
		v := p.EscapeVelocity(g, g.GridToWorld(5, 5), 60, nav.MovementGround, cp.Vector{})
		if v.X != 60 || v.Y != 0 {
			t.Fatalf("expected script escape (60, 0), got %v", v)
		}
	})

	t.Run("engine_probe", func(t *testing.T) {
		src := []byte(`
escape_x := 0.0
escape_y := 0.0
if __engine.blocked(1, 0) {
    escape_x = -__speed
} else {
    escape_x = __speed
}
`)
		p, err := NewScriptRecoveryPolicy(src, 1)
		if err != nil {
			t.Fatalf("compile: %v", err)
		}
		g.SetCellType(6, 5, nav.CellObstacle)
		v := p.EscapeVelocity(g, g.GridToWorld(5, 5), 60, nav.MovementGround, cp.Vector{})
		if v.X != -60 {
			t.Fatalf("expected script to see the blocked cell, got %v", v)
		}
	})

	t.Run("compile_error", func(t *testing.T) {
		if _, err := NewScriptRecoveryPolicy([]byte(`escape_x := `), 1); err == nil {
			t.Fatal("expected a compile error")
		}
	})

	t.Run("zero_result_falls_back", func(t *testing.T) {
		src := []byte(`
escape_x := 0.0
escape_y := 0.0
`)
		p, err := NewScriptRecoveryPolicy(src, 1)
		if err != nil {
			t.Fatalf("compile: %v", err)
		}
		v := p.EscapeVelocity(g, g.GridToWorld(5, 5), 60, nav.MovementGround, cp.Vector{})
		if v.Length() < 1e-9 {
			t.Fatal("zero script result must fall back to a nonzero escape")
		}
	})

	t.Run("missing_assignment_falls_back", func(t *testing.T) {
		p, err := NewScriptRecoveryPolicy([]byte(`x := 1`), 1)
		if err != nil {
			t.Fatalf("compile: %v", err)
		}
		v := p.EscapeVelocity(g, g.GridToWorld(5, 5), 60, nav.MovementGround, cp.Vector{})
		if v.Length() < 1e-9 {
			t.Fatal("missing assignment must fall back to a nonzero escape")
		}
	})
}
