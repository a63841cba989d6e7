// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

import (
	"errors"
	"fmt"
)

// StepsConfig contains all configuration for Mind Your Step.
type StepsConfig struct {
	Road       RoadConfig       `yaml:"road"`
	Player     PlayerConfig     `yaml:"player"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RoadConfig defines the generated track.
type RoadConfig struct {
	Length int `yaml:"length"`
}

// PlayerConfig defines jump timing and block geometry.
type PlayerConfig struct {
	JumpTicks       int `yaml:"jump_ticks"`
	InputDelayTicks int `yaml:"input_delay_ticks"`
	BlockWidth      int `yaml:"block_width"`
	BlockHeight     int `yaml:"block_height"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Jump speed-up at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// easyRoadLength caps the road on the easy preset.
const easyRoadLength = 100

// ParsePreset maps a CLI value to a preset. Empty means "use the config".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config for a difficulty preset.
func ApplyPreset(cfg *StepsConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	if preset == DifficultyEasy && cfg.Road.Length > easyRoadLength {
		cfg.Road.Length = easyRoadLength
	}
}

// Validate reports configuration values the game cannot run with.
func (c StepsConfig) Validate() error {
	var errs []error
	if c.Road.Length < 0 {
		errs = append(errs, fmt.Errorf("road.length must not be negative, got %d", c.Road.Length))
	}
	if c.Player.JumpTicks <= 0 {
		errs = append(errs, fmt.Errorf("player.jump_ticks must be positive, got %d", c.Player.JumpTicks))
	}
	if c.Player.InputDelayTicks < 0 {
		errs = append(errs, fmt.Errorf("player.input_delay_ticks must not be negative, got %d", c.Player.InputDelayTicks))
	}
	if c.Player.BlockWidth <= 0 || c.Player.BlockHeight <= 0 {
		errs = append(errs, fmt.Errorf("player block size must be positive, got %dx%d", c.Player.BlockWidth, c.Player.BlockHeight))
	}
	switch c.Difficulty.Progression.Type {
	case "", "score", "time", "none":
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type %q is not score, time or none", c.Difficulty.Progression.Type))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid steps config: %w", errors.Join(errs...))
	}
	return nil
}
