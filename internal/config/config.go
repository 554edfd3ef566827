// Package config provides YAML-based game configuration loading and
// difficulty management for the platform.
package config

// CrossingConfig contains all tuning for the intersection game.
type CrossingConfig struct {
	Geometry   GeometryConfig   `yaml:"geometry"`
	Vehicles   VehiclesConfig   `yaml:"vehicles"`
	Session    SessionConfig    `yaml:"session"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GeometryConfig defines the road network layout. All roads are axis-aligned
// and symmetric about the origin; intersections sit at the four
// (±spacing, ±spacing) combinations.
type GeometryConfig struct {
	Spacing             float64 `yaml:"spacing"`               // Distance from origin to each road centerline
	HorizontalHalfWidth float64 `yaml:"horizontal_half_width"` // Half width of the two horizontal roads
	VerticalHalfWidth   float64 `yaml:"vertical_half_width"`   // Half width of the two vertical roads
	SpawnDistance       float64 `yaml:"spawn_distance"`        // Distance from origin to each entry point
	StopLineBuffer      float64 `yaml:"stop_line_buffer"`      // Gap between intersection edge and stop line
	DespawnMargin       float64 `yaml:"despawn_margin"`        // Extra travel past spawn distance before removal
}

// VehiclesConfig defines vehicle behavior parameters.
type VehiclesConfig struct {
	Speed           float64 `yaml:"speed"`             // Units per tick
	BodyLength      float64 `yaml:"body_length"`       // Footprint along the travel axis
	BodyWidth       float64 `yaml:"body_width"`        // Footprint across the travel axis
	LaneTolerance   float64 `yaml:"lane_tolerance"`    // Max lateral offset to count as same lane
	SafetyGap       float64 `yaml:"safety_gap"`        // Following distance beyond one body length
	MaxActive       int     `yaml:"max_active"`        // Concurrent vehicle cap
	SpawnIntervalMS int     `yaml:"spawn_interval_ms"` // Wall-clock spawn cadence
}

// SessionConfig defines scoring and the countdown.
type SessionConfig struct {
	TimeLimit       int `yaml:"time_limit"`       // Seconds per session
	TargetScore     int `yaml:"target_score"`     // Score needed to clear
	CollisionPoints int `yaml:"collision_points"` // Points per collision
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a session.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpawnSpeedupMS int `yaml:"spawn_speedup_ms"` // Spawn interval reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
