package nav

import "github.com/jakecoffman/cp"

// CellType classifies a grid cell's passability.
type CellType uint8

const (
	CellEmpty CellType = iota
	CellObstacle
	CellBorder
)

func (c CellType) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellObstacle:
		return "obstacle"
	case CellBorder:
		return "border"
	default:
		return "unknown"
	}
}

// Grid is a tile-based spatial index over the playfield. The outer ring of
// cells is always CellBorder; SetCellType refuses to change it.
type Grid struct {
	cols, rows int
	cellSize   float64
	cells      []CellType
}

// NewGrid creates a grid of cols x rows cells with the given world-space cell
// size. All interior cells start empty and the outer ring is border.
func NewGrid(cols, rows int, cellSize float64) *Grid {
	if cols < 3 {
		cols = 3
	}
	if rows < 3 {
		rows = 3
	}
	if cellSize <= 0 {
		cellSize = 32
	}
	g := &Grid{
		cols:     cols,
		rows:     rows,
		cellSize: cellSize,
		cells:    make([]CellType, cols*rows),
	}
	for x := 0; x < cols; x++ {
		g.cells[x] = CellBorder
		g.cells[(rows-1)*cols+x] = CellBorder
	}
	for y := 0; y < rows; y++ {
		g.cells[y*cols] = CellBorder
		g.cells[y*cols+cols-1] = CellBorder
	}
	return g
}

func (g *Grid) Cols() int         { return g.cols }
func (g *Grid) Rows() int         { return g.rows }
func (g *Grid) CellSize() float64 { return g.cellSize }

// InBounds reports whether (x, y) addresses a real cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.cols && y < g.rows
}

// CellTypeAt returns the cell type at (x, y). Out-of-range coordinates read
// as border so every query is total.
func (g *Grid) CellTypeAt(x, y int) CellType {
	if !g.InBounds(x, y) {
		return CellBorder
	}
	return g.cells[y*g.cols+x]
}

// SetCellType mutates an interior cell. Writes to the border ring or outside
// the grid are ignored.
func (g *Grid) SetCellType(x, y int, t CellType) {
	if x <= 0 || y <= 0 || x >= g.cols-1 || y >= g.rows-1 {
		return
	}
	g.cells[y*g.cols+x] = t
}

// WorldToGrid converts a world position to the containing cell coordinates.
func (g *Grid) WorldToGrid(p cp.Vector) (int, int) {
	return int(p.X / g.cellSize), int(p.Y / g.cellSize)
}

// GridToWorld converts cell coordinates to the world-space cell center.
func (g *Grid) GridToWorld(x, y int) cp.Vector {
	return cp.Vector{
		X: float64(x)*g.cellSize + g.cellSize/2,
		Y: float64(y)*g.cellSize + g.cellSize/2,
	}
}

// IsNearBorder reports whether any cell within Chebyshev distance margin of
// (x, y) is a border cell.
func (g *Grid) IsNearBorder(x, y, margin int) bool {
	if margin < 0 {
		margin = 0
	}
	for dy := -margin; dy <= margin; dy++ {
		for dx := -margin; dx <= margin; dx++ {
			if g.CellTypeAt(x+dx, y+dy) == CellBorder {
				return true
			}
		}
	}
	return false
}
