package component

import "github.com/brandon-schabel/td-engine/nav"

// Enemy marks an entity driven by the steering system.
type Enemy struct {
	Name      string
	MoveSpeed float64
	Movement  nav.MovementType
}

var EnemyComponent = NewComponent[*Enemy]()
