package component

// Wave describes one timed batch of enemy spawns.
type Wave struct {
	Enemy    string  // prefab name
	Count    int     // enemies in this wave
	Interval float64 // seconds between spawns
	SpawnX   int     // spawn cell, grid coordinates
	SpawnY   int
}

// WaveState is a world singleton tracking spawn progress through the level's
// wave list.
type WaveState struct {
	Waves   []Wave
	Index   int
	Spawned int
	Timer   float64
	Done    bool
}

var WaveStateComponent = NewComponent[*WaveState]()
