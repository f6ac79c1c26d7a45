package component

// Collision records whether the movement system refused the entity's last
// commanded move because the destination cell was impassable. Recovery uses
// it to pick a different escape direction instead of staying jammed.
type Collision struct {
	Blocked bool
}

var CollisionComponent = NewComponent[*Collision]()
