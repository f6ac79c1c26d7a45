package nav

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func TestGridBorderRing(t *testing.T) {
	g := NewGrid(10, 8, 20)
	for x := 0; x < g.Cols(); x++ {
		if g.CellTypeAt(x, 0) != CellBorder || g.CellTypeAt(x, g.Rows()-1) != CellBorder {
			t.Fatalf("expected border at column %d edge rows", x)
		}
	}
	for y := 0; y < g.Rows(); y++ {
		if g.CellTypeAt(0, y) != CellBorder || g.CellTypeAt(g.Cols()-1, y) != CellBorder {
			t.Fatalf("expected border at row %d edge columns", y)
		}
	}
	if g.CellTypeAt(4, 4) != CellEmpty {
		t.Fatalf("expected interior cell empty, got %v", g.CellTypeAt(4, 4))
	}
}

func TestGridCellTypeAtClampsOutOfRange(t *testing.T) {
	g := NewGrid(10, 10, 20)
	cases := []struct {
		name string
		x, y int
	}{
		{"negative_x", -1, 5},
		{"negative_y", 5, -3},
		{"past_cols", 10, 5},
		{"past_rows", 5, 100},
		{"both_negative", -7, -7},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := g.CellTypeAt(c.x, c.y); got != CellBorder {
				t.Fatalf("CellTypeAt(%d,%d) = %v, want border", c.x, c.y, got)
			}
		})
	}
}

func TestGridSetCellType(t *testing.T) {
	g := NewGrid(10, 10, 20)

	g.SetCellType(3, 4, CellObstacle)
	if g.CellTypeAt(3, 4) != CellObstacle {
		t.Fatalf("interior write did not stick")
	}

	g.SetCellType(3, 4, CellEmpty)
	if g.CellTypeAt(3, 4) != CellEmpty {
		t.Fatalf("interior clear did not stick")
	}

	// Border ring and out-of-range writes are ignored.
	g.SetCellType(0, 5, CellEmpty)
	if g.CellTypeAt(0, 5) != CellBorder {
		t.Fatalf("border ring write should be ignored")
	}
	g.SetCellType(-2, 5, CellObstacle)
	g.SetCellType(5, 99, CellObstacle)
	if g.CellTypeAt(-2, 5) != CellBorder || g.CellTypeAt(5, 99) != CellBorder {
		t.Fatalf("out-of-range cells must still read as border")
	}
}

func TestGridWorldRoundTrip(t *testing.T) {
	g := NewGrid(20, 20, 20)
	cases := []struct{ x, y int }{
		{1, 1}, {5, 10}, {18, 18}, {10, 3},
	}
	for _, c := range cases {
		world := g.GridToWorld(c.x, c.y)
		gx, gy := g.WorldToGrid(world)
		if gx != c.x || gy != c.y {
			t.Fatalf("round trip (%d,%d) -> %v -> (%d,%d)", c.x, c.y, world, gx, gy)
		}
	}

	// Cell center of (5,10) at cell size 20 is (110, 210).
	want := cp.Vector{X: 110, Y: 210}
	if got := g.GridToWorld(5, 10); got != want {
		t.Fatalf("GridToWorld(5,10) = %v, want %v", got, want)
	}
}

func TestGridIsNearBorder(t *testing.T) {
	g := NewGrid(10, 10, 20)
	cases := []struct {
		name   string
		x, y   int
		margin int
		want   bool
	}{
		{"center_margin_1", 5, 5, 1, false},
		{"adjacent_to_ring", 1, 5, 1, true},
		{"two_away_margin_1", 2, 5, 1, false},
		{"two_away_margin_2", 2, 5, 2, true},
		{"on_ring", 0, 5, 0, true},
		{"center_huge_margin", 5, 5, 5, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := g.IsNearBorder(c.x, c.y, c.margin); got != c.want {
				t.Fatalf("IsNearBorder(%d,%d,%d) = %v, want %v", c.x, c.y, c.margin, got, c.want)
			}
		})
	}
}
