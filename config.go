// config.go — analyzer configuration.
//
// Configuration comes from an optional YAML file (swiftcheck.yaml next to
// the analyzed files or named explicitly) merged under command-line flags;
// flags always win. All fields are optional and default to the zero
// behavior below.
package swift

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the config file looked up next to analyzed files.
const ConfigFileName = "swiftcheck.yaml"

// Config holds the tunable analyzer behavior.
type Config struct {
	// EditorMode emits missing cases as one insertable fix-it block instead
	// of per-case notes.
	EditorMode bool `yaml:"editor_mode"`
	// Color enables ANSI colors in CLI output.
	Color bool `yaml:"color"`
	// Limited restricts checking to non-emptiness (no coverage analysis).
	Limited bool `yaml:"limited"`
	// MaxMissingCases caps rendered example cases per switch; 0 = unlimited.
	MaxMissingCases int `yaml:"max_missing_cases"`
	// Verbose enables debug logging of the algebra.
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the defaults used when no file is present.
func DefaultConfig() Config {
	return Config{Color: true}
}

// LoadConfig reads and decodes a YAML config file.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadConfigIfPresent reads path if it exists, otherwise returns defaults.
func LoadConfigIfPresent(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return LoadConfig(path)
}

// Mode returns the CheckMode the config selects.
func (c Config) Mode() CheckMode {
	if c.Limited {
		return CheckLimited
	}
	return CheckFull
}
