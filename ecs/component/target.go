package component

// Target marks the entity enemies pursue. An invalid (dead) target pauses
// path-seeking; it is not an error.
type Target struct {
	Alive bool
}

var TargetComponent = NewComponent[*Target]()
