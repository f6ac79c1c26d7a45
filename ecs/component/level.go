package component

import "github.com/brandon-schabel/td-engine/nav"

// Level is a world singleton holding the navigation grid. The grid may be
// mutated between ticks (obstacle placement) but never during one.
type Level struct {
	Grid *nav.Grid
}

var LevelComponent = NewComponent[*Level]()
