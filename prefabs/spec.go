package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// EnemySpec is a yaml enemy prefab: movement class, speed, and the steering
// thresholds the navigation system runs on.
type EnemySpec struct {
	Name      string       `yaml:"name"`
	MoveSpeed float64      `yaml:"move_speed"`
	Movement  string       `yaml:"movement"` // ground | flying
	Steering  SteeringSpec `yaml:"steering"`
}

// SteeringSpec tunes the steering controller. Zero values fall back to the
// engine defaults so prefabs only list what they change.
type SteeringSpec struct {
	RepathInterval   float64 `yaml:"repath_interval"`
	StuckWindow      int     `yaml:"stuck_window"`
	StuckEpsilon     float64 `yaml:"stuck_epsilon"`
	SpeedEpsilon     float64 `yaml:"speed_epsilon"`
	StuckThreshold   float64 `yaml:"stuck_threshold"`
	RecoveryDuration float64 `yaml:"recovery_duration"`
	DecelRadius      float64 `yaml:"decel_radius"`
	WaypointRadius   float64 `yaml:"waypoint_radius"`
	PredictLookahead float64 `yaml:"predict_lookahead"`
	BorderMargin     int     `yaml:"border_margin"`
	MaxSearchNodes   int     `yaml:"max_search_nodes"`
}

// LoadSpec reads and unmarshals a yaml prefab.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}
