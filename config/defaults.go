package config

import "github.com/spf13/viper"

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Output defaults
	v.SetDefault("output.format", "text")
	v.SetDefault("output.color", true)

	// Generate defaults
	v.SetDefault("generate.count", 1)
	v.SetDefault("generate.seed", int64(0)) // 0 = seed from current time
	v.SetDefault("generate.formatted", false)
}
