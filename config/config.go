package config

import "fmt"

// Config represents the rrn CLI configuration
type Config struct {
	Output   OutputConfig   `mapstructure:"output" toml:"output" json:"output" yaml:"output"`
	Generate GenerateConfig `mapstructure:"generate" toml:"generate" json:"generate" yaml:"generate"`
}

// OutputConfig controls how command results are rendered
type OutputConfig struct {
	Format string `mapstructure:"format" toml:"format" json:"format" yaml:"format"` // Rendering: text, json
	Color  bool   `mapstructure:"color" toml:"color" json:"color" yaml:"color"`     // ANSI colors in text output (default: true)
}

// GenerateConfig seeds the generate command's defaults
type GenerateConfig struct {
	Count     int   `mapstructure:"count" toml:"count" json:"count" yaml:"count"`                 // Numbers per invocation (default: 1)
	Seed      int64 `mapstructure:"seed" toml:"seed" json:"seed" yaml:"seed"`                     // Generator seed: 0 = seed from current time
	Formatted bool  `mapstructure:"formatted" toml:"formatted" json:"formatted" yaml:"formatted"` // Emit dotted-dashed form instead of bare digits
}

// File system constants
const (
	DefaultDirPermissions  = 0755 // Standard directory permissions (rwxr-xr-x)
	DefaultFilePermissions = 0644 // Standard file permissions (rw-r--r--)
)

// GetOutputFormat returns the output format (default: text)
func (c *Config) GetOutputFormat() string {
	if c.Output.Format == "" {
		return "text"
	}
	return c.Output.Format
}

// GetGenerateCount returns how many numbers to generate per invocation
func (c *Config) GetGenerateCount() int {
	if c.Generate.Count == 0 {
		return 1
	}
	return c.Generate.Count
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf("Config{Output: {Format: %s, Color: %t}, Generate: {Count: %d, Seed: %d}}",
		c.Output.Format, c.Output.Color, c.Generate.Count, c.Generate.Seed)
}
