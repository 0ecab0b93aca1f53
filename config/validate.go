package config

import "github.com/rijkslab/rrn/errors"

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	// Output format: empty defaults to "text" per defaults.go
	switch c.Output.Format {
	case "", "text", "json":
	default:
		return errors.Newf("output.format must be \"text\" or \"json\", got %q", c.Output.Format)
	}

	// Generate count: 0 = use default (per struct docs), negative = invalid
	if c.Generate.Count < 0 {
		return errors.Newf("generate.count must be >= 0, got %d", c.Generate.Count)
	}

	// Seed: any value is valid, 0 means seed from current time

	return nil
}
