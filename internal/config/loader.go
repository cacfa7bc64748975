package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded is reported when no config file was found.
const SourceEmbedded = "embedded"

// LocalConfigPath is checked relative to the working directory.
const LocalConfigPath = "configs/snake.yaml"

// LoadSnake loads the snake configuration and reports where it came from.
// Search order: customPath -> ~/.snake/config.yaml -> ./configs/snake.yaml -> embedded default
//
// Keys missing from a file keep their default values. A custom path is
// decoded strictly, so unknown keys are an error there.
func LoadSnake(customPath string) (SnakeConfig, string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SnakeConfig{}, "", fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := decode(data, true)
		if err != nil {
			return SnakeConfig{}, "", fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return validated(cfg, customPath)
	}

	// Unreadable or malformed files on the search path are skipped.
	for _, path := range []string{userConfigPath("config.yaml"), LocalConfigPath} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decode(data, false); err == nil {
			return validated(cfg, path)
		}
	}

	cfg, err := decode(defaultSnakeYAML, false)
	if err != nil {
		return DefaultSnakeConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return validated(cfg, SourceEmbedded)
}

func decode(data []byte, strict bool) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(strict)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return SnakeConfig{}, err
	}
	return cfg, nil
}

func validated(cfg SnakeConfig, source string) (SnakeConfig, string, error) {
	if err := cfg.Validate(); err != nil {
		return SnakeConfig{}, source, fmt.Errorf("config: %s: %w", source, err)
	}
	return cfg, source, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg SnakeConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", filename)
}
