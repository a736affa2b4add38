package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all csf2det configuration. Command-line flags take
// precedence over the values loaded here.
type Config struct {
	// Result rendering
	Output OutputConfig `yaml:"output"`

	// Expansion engine
	Engine EngineConfig `yaml:"engine"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig configures how expansions are rendered.
type OutputConfig struct {
	Format string `yaml:"format"` // text, json, yaml, table
	Color  bool   `yaml:"color"`  // colour signs in table output
	Check  bool   `yaml:"check"`  // report the sum of weights
}

// EngineConfig configures the determinant walk.
type EngineConfig struct {
	// Workers evaluating alpha subsets; 1 walks sequentially.
	Workers int `yaml:"workers"`

	// Subsets handed to a worker at once.
	BatchSize int `yaml:"batch_size"`

	// Cap on emitted determinants per expansion; 0 means no cap.
	MaxDeterminants int `yaml:"max_determinants"`
}

// Output formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTable = "table"
)

// ValidFormats lists all supported output formats.
var ValidFormats = []string{FormatText, FormatJSON, FormatYAML, FormatTable}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format: FormatText,
		},
		Engine: EngineConfig{
			Workers:   1,
			BatchSize: 256,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// DefaultConfigPath returns ~/.config/csf2det/config.yaml, or a relative
// path when the home directory is unknown.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".csf2det", "config.yaml")
	}
	return filepath.Join(dir, "csf2det", "config.yaml")
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults; environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
// Unparseable numbers are ignored and the file value is kept.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("CSF2DET_FORMAT"); v != "" {
		c.Output.Format = strings.ToLower(v)
	}
	if v := os.Getenv("CSF2DET_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Engine.Workers = n
		}
	}
	if v := os.Getenv("CSF2DET_MAX_DETERMINANTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Engine.MaxDeterminants = n
		}
	}
	if v := os.Getenv("CSF2DET_LOG_LEVEL"); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
}

// EffectiveWorkers resolves a non-positive worker count to the number of
// CPUs.
func (c *Config) EffectiveWorkers() int {
	if c.Engine.Workers <= 0 {
		return runtime.NumCPU()
	}
	return c.Engine.Workers
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	validFormat := false
	for _, f := range ValidFormats {
		if c.Output.Format == f {
			validFormat = true
			break
		}
	}
	if !validFormat {
		return fmt.Errorf("invalid output format: %s (valid: %v)", c.Output.Format, ValidFormats)
	}

	if c.Engine.BatchSize < 0 {
		return fmt.Errorf("invalid batch size: %d", c.Engine.BatchSize)
	}
	if c.Engine.MaxDeterminants < 0 {
		return fmt.Errorf("invalid determinant cap: %d", c.Engine.MaxDeterminants)
	}

	return c.Logging.Validate()
}
