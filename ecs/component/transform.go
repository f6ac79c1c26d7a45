package component

import "github.com/jakecoffman/cp"

// Transform stores an entity's world-space position.
type Transform struct {
	Pos cp.Vector
}

var TransformComponent = NewComponent[*Transform]()
