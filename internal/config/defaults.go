package config

import (
	_ "embed"
)

//go:embed defaults/crossing.yaml
var defaultCrossingYAML []byte

// DefaultCrossingConfig returns the default intersection game configuration.
func DefaultCrossingConfig() CrossingConfig {
	return CrossingConfig{
		Geometry: GeometryConfig{
			Spacing:             16,
			HorizontalHalfWidth: 4,
			VerticalHalfWidth:   4,
			SpawnDistance:       72,
			StopLineBuffer:      3,
			DespawnMargin:       10,
		},
		Vehicles: VehiclesConfig{
			Speed:           0.2,
			BodyLength:      4,
			BodyWidth:       2,
			LaneTolerance:   1,
			SafetyGap:       1,
			MaxActive:       60,
			SpawnIntervalMS: 800,
		},
		Session: SessionConfig{
			TimeLimit:       60,
			TargetScore:     2000,
			CollisionPoints: 100,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1500,
			},
			Scaling: ScalingConfig{
				SpawnSpeedupMS: 300,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "crossing", "crossing_endless":
		return defaultCrossingYAML
	default:
		return nil
	}
}
