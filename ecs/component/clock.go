package component

// Clock is a world singleton carrying the simulation timestep in seconds.
// All steering timers accumulate Delta, which keeps behavior frame-rate
// independent and lets tests drive exact fixed steps.
type Clock struct {
	Delta   float64
	Elapsed float64
}

var ClockComponent = NewComponent[*Clock]()
