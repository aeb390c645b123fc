// Package cmd provides the command-line interface for unitful with
// configuration management supporting multiple configuration sources.
//
// Configuration System:
//
//	The CLI supports flexible configuration through multiple sources with clear precedence:
//	1. Command-line flags (--config, --format, etc.) - highest priority
//	2. UNITFUL_CONFIG_FILE environment variable - custom config file path
//	3. Individual environment variables (UNITFUL_LOG_LEVEL, etc.)
//	4. Configuration files (.unitful.yml) - lowest priority
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/conneroisu/unitful/internal/config"
	"github.com/conneroisu/unitful/internal/logging"
	"github.com/conneroisu/unitful/internal/registry"
	"github.com/conneroisu/unitful/si"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "unitful",
	Short: "Dimensional analysis and power-of-ten unit conversion",
	Long: `Unitful works with physical quantities whose unit and decimal scale
are tracked as bounded dimension vectors, so incompatible operations
are rejected when they are constructed, not when values are computed.

Key Features:
  • SI catalog: base units, derived units, quecto..quetta prefixes
  • Exact power-of-ten conversion between same-dimension units
  • Generator for custom unit systems from YAML definitions
  • Table, JSON and YAML output

Quick Start:
  unitful convert 1500 --from W --to kW    Convert between named units
  unitful units                            List catalog units
  unitful systems                          List unit systems`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	addGlobalFlags(rootCmd.PersistentFlags())
	// Bound to the config-file key so flag > env > file merge on the
	// same setting.
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("output.format", rootCmd.PersistentFlags().Lookup("format"))
}

// initConfig initializes the configuration system.
//
// Configuration Loading Priority (highest to lowest):
//  1. --config flag: Explicitly specified config file path
//  2. UNITFUL_CONFIG_FILE environment variable: Custom config file path
//  3. Default: .unitful.yml in current directory
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("UNITFUL_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".unitful")
	}

	// Enable automatic environment variable binding with UNITFUL_ prefix
	// Examples: UNITFUL_LOG_LEVEL, UNITFUL_OUTPUT_FORMAT
	viper.SetEnvPrefix("UNITFUL")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Missing config files fall back to defaults without failing.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newLogger builds the CLI logger from the merged configuration.
func newLogger(cfg *config.Config) logging.Logger {
	return logging.NewLogger(&logging.LoggerConfig{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Format: cfg.LogFormat,
		Output: os.Stderr,
	})
}

// newRegistry builds the unit registry: the SI catalog plus the base
// units of any config-defined systems.
func newRegistry(cfg *config.Config) (*registry.UnitRegistry, error) {
	reg := registry.NewUnitRegistry()
	if err := si.Register(reg); err != nil {
		return nil, fmt.Errorf("registering SI catalog: %w", err)
	}

	for _, def := range cfg.Systems {
		sys, err := def.Build()
		if err != nil {
			return nil, fmt.Errorf("building system %q: %w", def.Name, err)
		}

		for _, dim := range sys.Dimensions() {
			tag, err := sys.Base(dim)
			if err != nil {
				return nil, err
			}
			err = reg.Register(&registry.UnitInfo{
				Name:   def.Name + "/" + dim,
				Symbol: dim,
				Tag:    tag,
				System: sys.Name(),
			})
			if err != nil {
				return nil, fmt.Errorf("registering system %q: %w", def.Name, err)
			}
		}

		for _, p := range def.Prefixes {
			reg.RegisterPrefix(registry.PrefixInfo{
				Name:     p.Name,
				Symbol:   p.Symbol,
				Exponent: p.Exponent,
			})
		}
	}

	return reg, nil
}
