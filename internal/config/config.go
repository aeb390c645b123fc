// Package config provides configuration management for the unitful
// CLI using Viper for flexible loading from files, environment
// variables, and command-line flags.
//
// Configuration precedence (highest to lowest): command-line flags,
// UNITFUL_* environment variables, the .unitful.yml file. Beyond CLI
// behavior, the config can point at YAML unit-system definition files
// that declare additional systems (dimension names, exponent range,
// prefix table) for the generator.
package config

import (
	"github.com/spf13/viper"
)

// Viper decodes through mapstructure, so every field carries both
// tags: mapstructure for viper.Unmarshal, yaml for the standalone
// definition files read with yaml.v3.
type Config struct {
	LogLevel    string             `mapstructure:"log_level" yaml:"log_level"`
	LogFormat   string             `mapstructure:"log_format" yaml:"log_format"`
	Output      OutputConfig       `mapstructure:"output" yaml:"output"`
	Systems     []SystemDefinition `mapstructure:"systems" yaml:"systems"`
	SystemFiles []string           `mapstructure:"system_files" yaml:"system_files"`
}

type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format"` // table, json or yaml
}

// Load builds a Config from viper's merged sources, applies defaults,
// pulls in any referenced system definition files, and validates the
// result.
func Load() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	applyDefaults(&config)

	for _, path := range config.SystemFiles {
		defs, err := LoadSystemFile(path)
		if err != nil {
			return nil, err
		}
		config.Systems = append(config.Systems, defs...)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func applyDefaults(config *Config) {
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.LogFormat == "" {
		config.LogFormat = "text"
	}
	if config.Output.Format == "" {
		config.Output.Format = "table"
	}
}
