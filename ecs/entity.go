package ecs

import "fmt"

// Entity is a generational handle. A handle whose generation no longer
// matches the store is dead and all component lookups through it miss.
type Entity struct {
	ID  int
	Gen int
}

func (e Entity) Valid() bool {
	return e.ID > 0
}

func (e Entity) String() string {
	return fmt.Sprintf("%d.%d", e.ID, e.Gen)
}
