package levels

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/brandon-schabel/td-engine/nav"
)

// CellRef addresses a grid cell in a level file.
type CellRef struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// WaveSpec describes one enemy wave: which prefab, how many, how often, and
// where on the grid they enter.
type WaveSpec struct {
	Enemy    string  `yaml:"enemy"`
	Count    int     `yaml:"count"`
	Interval float64 `yaml:"interval"`
	Spawn    CellRef `yaml:"spawn"`
}

// Level is a yaml arena definition. Grid rows use '.' for empty and '#' for
// obstacles; the border ring is added by the grid itself and is not part of
// the rows.
type Level struct {
	Name     string     `yaml:"name"`
	CellSize float64    `yaml:"cell_size"`
	Grid     []string   `yaml:"grid"`
	Target   CellRef    `yaml:"target"`
	Waves    []WaveSpec `yaml:"waves"`
}

// LoadLevel reads and parses a level file.
func LoadLevel(filename string) (*Level, error) {
	data, err := Load(filename)
	if err != nil {
		return nil, fmt.Errorf("levels: load %s: %w", filename, err)
	}

	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal %s: %w", filename, err)
	}
	if err := lvl.validate(); err != nil {
		return nil, fmt.Errorf("levels: %s: %w", filename, err)
	}
	return &lvl, nil
}

func (l *Level) validate() error {
	if len(l.Grid) == 0 {
		return fmt.Errorf("grid has no rows")
	}
	width := len(l.Grid[0])
	if width == 0 {
		return fmt.Errorf("grid row 0 is empty")
	}
	for i, row := range l.Grid {
		if len(row) != width {
			return fmt.Errorf("grid row %d has width %d, want %d", i, len(row), width)
		}
		for j, c := range row {
			if c != '.' && c != '#' {
				return fmt.Errorf("grid row %d col %d: unknown cell %q", i, j, string(c))
			}
		}
	}
	if l.CellSize <= 0 {
		return fmt.Errorf("cell_size must be positive, got %v", l.CellSize)
	}
	for i, wave := range l.Waves {
		if wave.Enemy == "" {
			return fmt.Errorf("wave %d has no enemy", i)
		}
		if wave.Count <= 0 {
			return fmt.Errorf("wave %d count must be positive, got %d", i, wave.Count)
		}
		if wave.Interval <= 0 {
			return fmt.Errorf("wave %d interval must be positive, got %v", i, wave.Interval)
		}
	}
	return nil
}

// BuildGrid constructs the navigation grid: the level rows surrounded by the
// border ring, so a level cell (x, y) lands at grid cell (x+1, y+1).
func (l *Level) BuildGrid() (*nav.Grid, error) {
	if err := l.validate(); err != nil {
		return nil, err
	}

	cols := len(l.Grid[0]) + 2
	rows := len(l.Grid) + 2
	g := nav.NewGrid(cols, rows, l.CellSize)
	for y, row := range l.Grid {
		for x, c := range row {
			if c == '#' {
				g.SetCellType(x+1, y+1, nav.CellObstacle)
			}
		}
	}
	return g, nil
}

// TargetCell returns the target's grid coordinates, offset past the border.
func (l *Level) TargetCell() (int, int) {
	return l.Target.X + 1, l.Target.Y + 1
}

// SpawnCell returns a wave's spawn grid coordinates, offset past the border.
func (w *WaveSpec) SpawnCell() (int, int) {
	return w.Spawn.X + 1, w.Spawn.Y + 1
}
