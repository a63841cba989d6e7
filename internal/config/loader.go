package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const stepsFile = "steps.yaml"

// LoadSteps loads the game configuration.
// Search order: customPath -> ~/.steps/configs/steps.yaml -> ./configs/steps.yaml -> embedded default.
// Keys missing from a file keep their default values.
func LoadSteps(customPath string) (StepsConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return StepsConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseSteps(data)
		if err != nil {
			return StepsConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(stepsFile), filepath.Join("configs", stepsFile)} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := parseSteps(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := parseSteps(defaultStepsYAML)
	if err != nil {
		return DefaultStepsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseSteps decodes YAML on top of the hardcoded defaults and validates the result.
func parseSteps(data []byte) (StepsConfig, error) {
	cfg := DefaultStepsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return StepsConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return StepsConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".steps", "configs", filename)
}
