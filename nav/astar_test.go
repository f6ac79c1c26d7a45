package nav

import "testing"

// fillObstacleRect marks a rectangular block of cells as obstacles.
func fillObstacleRect(g *Grid, x0, y0, x1, y1 int) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			g.SetCellType(x, y, CellObstacle)
		}
	}
}

func TestFindPathAvoidsObstacles(t *testing.T) {
	g := NewGrid(20, 20, 20)
	fillObstacleRect(g, 8, 5, 11, 14)

	path := FindPath(g, 2, 10, 17, 10, GroundPolicy{}, 1, 0)
	if len(path) == 0 {
		t.Fatalf("expected a path around the obstacle block")
	}
	for i, wp := range path {
		x, y := g.WorldToGrid(wp)
		if g.CellTypeAt(x, y) != CellEmpty {
			t.Fatalf("waypoint %d at cell (%d,%d) is %v", i, x, y, g.CellTypeAt(x, y))
		}
	}

	first := path[0]
	fx, fy := g.WorldToGrid(first)
	if fx != 2 || fy != 10 {
		t.Fatalf("path must start at the start cell, got (%d,%d)", fx, fy)
	}
	last := path[len(path)-1]
	lx, ly := g.WorldToGrid(last)
	if lx != 17 || ly != 10 {
		t.Fatalf("path must end at the goal cell, got (%d,%d)", lx, ly)
	}
}

func TestFindPathMovementTypes(t *testing.T) {
	// Wall splits the grid top to bottom; only flyers cross it.
	g := NewGrid(20, 20, 20)
	for y := 1; y < 19; y++ {
		g.SetCellType(10, y, CellObstacle)
	}

	ground := FindPath(g, 3, 10, 16, 10, GroundPolicy{}, 1, 0)
	if len(ground) != 0 {
		t.Fatalf("ground path should be blocked by the wall, got %d waypoints", len(ground))
	}

	flying := FindPath(g, 3, 10, 16, 10, FlyingPolicy{}, 1, 0)
	if len(flying) == 0 {
		t.Fatalf("flying path should ignore ground obstacles")
	}
	// A straight flight is 14 steps; the wall must not have detoured it.
	if len(flying) != 14 {
		t.Fatalf("flying path took %d waypoints, want 14", len(flying))
	}
}

func TestFindPathUnreachableGoal(t *testing.T) {
	g := NewGrid(20, 20, 20)
	// Box the goal in completely.
	fillObstacleRect(g, 14, 9, 16, 11)
	g.SetCellType(15, 10, CellEmpty)

	path := FindPath(g, 2, 10, 15, 10, GroundPolicy{}, 1, 0)
	if path != nil {
		t.Fatalf("expected nil path for an enclosed goal, got %d waypoints", len(path))
	}
}

func TestFindPathEdgeCases(t *testing.T) {
	g := NewGrid(20, 20, 20)
	g.SetCellType(5, 5, CellObstacle)

	cases := []struct {
		name           string
		sx, sy, gx, gy int
		wantLen        int
	}{
		{"same_cell", 4, 4, 4, 4, 1},
		{"goal_is_obstacle", 2, 2, 5, 5, 0},
		{"start_is_obstacle", 5, 5, 2, 2, 0},
		{"goal_on_border", 2, 2, 0, 0, 0},
		{"goal_out_of_range", 2, 2, 40, 2, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := FindPath(g, c.sx, c.sy, c.gx, c.gy, GroundPolicy{}, 1, 0)
			if len(path) != c.wantLen {
				t.Fatalf("got %d waypoints, want %d", len(path), c.wantLen)
			}
		})
	}
}

func TestFindPathNodeCap(t *testing.T) {
	g := NewGrid(64, 64, 20)
	// A cap too small to reach the far corner returns no path instead of
	// burning the whole budget.
	path := FindPath(g, 1, 1, 62, 62, GroundPolicy{}, 1, 8)
	if path != nil {
		t.Fatalf("expected nil path under a tiny node cap")
	}
	path = FindPath(g, 1, 1, 62, 62, GroundPolicy{}, 1, 0)
	if len(path) == 0 {
		t.Fatalf("default cap should find the path")
	}
}

func TestFindPathPrefersInterior(t *testing.T) {
	// From (1,1) to (5,5) every monotone staircase costs 8 steps, so the
	// border tie-break decides. Hugging the edge passes five near-border
	// cells; cutting into the interior right away passes only two (the start
	// cell and one neighbor).
	g := NewGrid(9, 9, 20)
	path := FindPath(g, 1, 1, 5, 5, GroundPolicy{}, 1, 0)
	if len(path) != 9 {
		t.Fatalf("expected 9 waypoints on an optimal staircase, got %d", len(path))
	}
	nearBorder := 0
	for _, wp := range path {
		x, y := g.WorldToGrid(wp)
		if g.IsNearBorder(x, y, 1) {
			nearBorder++
		}
	}
	if nearBorder > 2 {
		t.Fatalf("path crosses %d near-border cells, want at most 2", nearBorder)
	}
}
