package config

import (
	_ "embed"
)

//go:embed defaults/steps.yaml
var defaultStepsYAML []byte

// DefaultStepsConfig returns the built-in configuration.
func DefaultStepsConfig() StepsConfig {
	return StepsConfig{
		Road: RoadConfig{
			Length: 500,
		},
		Player: PlayerConfig{
			JumpTicks:       12,
			InputDelayTicks: 6,
			BlockWidth:      4,
			BlockHeight:     2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 200,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultStepsYAML
}
