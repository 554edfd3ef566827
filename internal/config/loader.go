package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadCrossing loads the intersection game configuration.
// Search order: customPath -> ~/.gridlock/configs/crossing.yaml ->
// ./configs/crossing.yaml -> embedded default.
func LoadCrossing(customPath string) (CrossingConfig, error) {
	var cfg CrossingConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("crossing.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/crossing.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultCrossingYAML, &cfg); err != nil {
		return DefaultCrossingConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gridlock", "configs", filename)
}

// ApplyCrossingPreset modifies the config based on a difficulty preset.
// Presets adjust both the progression system and the session shape: easier
// presets give more time and a lower target, harder ones less time, a higher
// target and denser traffic.
func ApplyCrossingPreset(cfg *CrossingConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Session.TimeLimit = 90
		cfg.Session.TargetScore = 1500
	case DifficultyHard:
		cfg.Session.TimeLimit = 45
		cfg.Session.TargetScore = 2500
		cfg.Vehicles.SpawnIntervalMS = 650
	}
}
