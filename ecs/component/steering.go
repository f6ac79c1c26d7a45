package component

import "github.com/jakecoffman/cp"

// SteeringTuning holds the per-enemy navigation thresholds, loaded from the
// enemy's prefab so designers can tune them without a rebuild.
type SteeringTuning struct {
	RepathInterval   float64 // seconds between throttled path validity checks
	StuckWindow      int     // position/velocity samples in the detection window
	StuckEpsilon     float64 // world units of net displacement that still count as "not moving"
	SpeedEpsilon     float64 // commanded speed below this is "not trying to move"
	StuckThreshold   float64 // seconds of suspected stagnation before recovery
	RecoveryDuration float64 // seconds recovery runs before it unconditionally exits
	DecelRadius      float64 // world units from the final target where arrival slowdown starts
	WaypointRadius   float64 // world units within which a waypoint counts as reached
	PredictLookahead float64 // seconds of target velocity extrapolation for moving targets
	BorderMargin     int     // cells of border-avoidance bias passed to the pathfinder
	MaxSearchNodes   int     // A* expansion cap per query
}

// DefaultSteeringTuning mirrors the stock enemy prefab values.
func DefaultSteeringTuning() SteeringTuning {
	return SteeringTuning{
		RepathInterval:   0.5,
		StuckWindow:      90,
		StuckEpsilon:     2.0,
		SpeedEpsilon:     1.0,
		StuckThreshold:   1.5,
		RecoveryDuration: 1.0,
		DecelRadius:      40,
		WaypointRadius:   8,
		PredictLookahead: 0.5,
		BorderMargin:     1,
		MaxSearchNodes:   2048,
	}
}

// Steering is the per-enemy navigation state. The steering system owns it
// exclusively; it is created at spawn and dies with the entity.
type Steering struct {
	Path       []cp.Vector // waypoints of the current path, world space
	PathIndex  int         // next waypoint to reach
	PathTarget cp.Vector   // goal the current path was computed toward

	RepathTimer  float64 // counts down to the next validity check
	StuckCounter float64 // accumulated seconds of suspected stagnation

	Recovering    bool
	RecoveryTimer float64   // elapsed seconds within recovery
	Escape        cp.Vector // recovery escape velocity

	PosHistory *History
	VelHistory *History

	Tuning SteeringTuning
}

func NewSteering(t SteeringTuning) *Steering {
	if t.StuckWindow < 2 {
		t.StuckWindow = 2
	}
	return &Steering{
		PosHistory: NewHistory(t.StuckWindow),
		VelHistory: NewHistory(t.StuckWindow),
		Tuning:     t,
	}
}

// HasPath reports whether unconsumed waypoints remain.
func (s *Steering) HasPath() bool {
	return s.PathIndex < len(s.Path)
}

// NextWaypoint returns the waypoint currently steered toward.
func (s *Steering) NextWaypoint() (cp.Vector, bool) {
	if !s.HasPath() {
		return cp.Vector{}, false
	}
	return s.Path[s.PathIndex], true
}

// FinalWaypoint returns the last waypoint of the current path.
func (s *Steering) FinalWaypoint() (cp.Vector, bool) {
	if len(s.Path) == 0 {
		return cp.Vector{}, false
	}
	return s.Path[len(s.Path)-1], true
}

// ClearPath drops the current path. Replacing a path implicitly cancels
// following the old one; no other bookkeeping is needed.
func (s *Steering) ClearPath() {
	s.Path = nil
	s.PathIndex = 0
}

var SteeringComponent = NewComponent[*Steering]()
