package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.blitz/configs/blitz.yaml -> ./configs/blitz.yaml -> embedded default.
// A custom path that cannot be read or parsed is an error; the other
// locations are skipped silently when missing or broken.
func Load(customPath string) (BlitzConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("blitz.yaml"); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := loadFile(filepath.Join("configs", "blitz.yaml")); err == nil && cfg.Validate() == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultBlitzYAML)
	if err != nil {
		return DefaultBlitzConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults, so a partial
// document only overrides the keys it names.
func Parse(data []byte) (BlitzConfig, error) {
	cfg := DefaultBlitzConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func loadFile(path string) (BlitzConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultBlitzConfig(), fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blitz", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *BlitzConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = preset != DifficultyEasy
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		for i := range cfg.Levels {
			cfg.Levels[i].PaddleWidth += 20
		}
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		for i := range cfg.Levels {
			cfg.Levels[i].PaddleWidth = max(cfg.Levels[i].PaddleWidth-10, 30)
		}
	}
}
