package prefabs

import (
	"testing"
)

func TestLoadEnemySpec(t *testing.T) {
	tests := []struct {
		name         string
		file         string
		wantName     string
		wantSpeed    float64
		wantMovement string
	}{
		{"ground_creep", "enemy.yaml", "creep", 60, "ground"},
		{"flying_wisp", "flying_enemy.yaml", "wisp", 80, "flying"},
		{"prefix_tolerated", "prefabs/enemy.yaml", "creep", 60, "ground"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			spec, err := LoadSpec[EnemySpec](tc.file)
			if err != nil {
				t.Fatalf("LoadSpec: %v", err)
			}
			if spec.Name != tc.wantName {
				t.Fatalf("name = %q, want %q", spec.Name, tc.wantName)
			}
			if spec.MoveSpeed != tc.wantSpeed {
				t.Fatalf("move_speed = %v, want %v", spec.MoveSpeed, tc.wantSpeed)
			}
			if spec.Movement != tc.wantMovement {
				t.Fatalf("movement = %q, want %q", spec.Movement, tc.wantMovement)
			}
		})
	}
}

func TestLoadEnemySpecSteering(t *testing.T) {
	spec, err := LoadSpec[EnemySpec]("enemy.yaml")
	if err != nil {
		t.Fatalf("LoadSpec: %v", err)
	}
	if spec.Steering.StuckThreshold != 1.5 {
		t.Fatalf("stuck_threshold = %v, want 1.5", spec.Steering.StuckThreshold)
	}
	if spec.Steering.StuckWindow != 90 {
		t.Fatalf("stuck_window = %d, want 90", spec.Steering.StuckWindow)
	}
	if spec.Steering.RecoveryDuration != 1.0 {
		t.Fatalf("recovery_duration = %v, want 1.0", spec.Steering.RecoveryDuration)
	}
}

func TestLoadSpecMissingFile(t *testing.T) {
	if _, err := LoadSpec[EnemySpec]("nope.yaml"); err == nil {
		t.Fatal("expected error for missing prefab")
	}
}

func TestLoadScript(t *testing.T) {
	for _, name := range []string{"recovery.tengo", "scripts/recovery.tengo"} {
		data, err := LoadScript(name)
		if err != nil {
			t.Fatalf("LoadScript(%q): %v", name, err)
		}
		if len(data) == 0 {
			t.Fatalf("LoadScript(%q) returned empty script", name)
		}
	}
}
