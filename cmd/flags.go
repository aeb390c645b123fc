package cmd

import (
	"fmt"

	"github.com/spf13/pflag"
)

// addGlobalFlags registers the flags shared by every subcommand.
func addGlobalFlags(fs *pflag.FlagSet) {
	fs.StringVar(&cfgFile, "config", "", "config file (default is .unitful.yml, can also use UNITFUL_CONFIG_FILE env var)")
	fs.StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	fs.StringP("format", "f", "", "output format (table, json, yaml)")
}

// validateFormat rejects unknown output formats with the accepted set
// in the message.
func validateFormat(format string, supported []string) error {
	if format == "" {
		return nil
	}
	for _, s := range supported {
		if format == s {
			return nil
		}
	}

	return fmt.Errorf("unsupported format %q (supported: %v)", format, supported)
}
