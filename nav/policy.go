package nav

import "fmt"

// MovementType classifies how an entity traverses the grid.
type MovementType uint8

const (
	MovementGround MovementType = iota
	MovementFlying
)

func (m MovementType) String() string {
	switch m {
	case MovementGround:
		return "ground"
	case MovementFlying:
		return "flying"
	default:
		return "unknown"
	}
}

// ParseMovementType maps a prefab string to a movement type.
func ParseMovementType(s string) (MovementType, error) {
	switch s {
	case "", "ground":
		return MovementGround, nil
	case "flying":
		return MovementFlying, nil
	default:
		return MovementGround, fmt.Errorf("nav: unknown movement type %q", s)
	}
}

// MovementPolicy decides which cells a mover may occupy. The search loop
// only ever asks Passable, so new movement types don't touch it.
type MovementPolicy interface {
	Passable(g *Grid, x, y int) bool
}

// GroundPolicy walks empty cells only; obstacles and the border block it.
type GroundPolicy struct{}

func (GroundPolicy) Passable(g *Grid, x, y int) bool {
	return g.CellTypeAt(x, y) == CellEmpty
}

// FlyingPolicy ignores ground obstacles; only the border blocks it.
type FlyingPolicy struct{}

func (FlyingPolicy) Passable(g *Grid, x, y int) bool {
	return g.CellTypeAt(x, y) != CellBorder
}

// PolicyFor returns the movement policy for a movement type.
func PolicyFor(m MovementType) MovementPolicy {
	if m == MovementFlying {
		return FlyingPolicy{}
	}
	return GroundPolicy{}
}
