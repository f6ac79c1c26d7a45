package component

import "github.com/jakecoffman/cp"

// Velocity is the commanded world-space velocity in units per second. The
// movement system integrates it; steering rewrites it every tick.
type Velocity struct {
	Vel cp.Vector
}

var VelocityComponent = NewComponent[*Velocity]()
