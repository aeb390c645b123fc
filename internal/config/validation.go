package config

import (
	"fmt"
	"strings"
)

// ValidationErrors collects every invalid field so the user sees the
// whole picture in one run.
type ValidationErrors struct {
	Errors []string
}

func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 1 {
		return "config validation: " + v.Errors[0]
	}

	return fmt.Sprintf("config validation failed with %d errors: %s",
		len(v.Errors), strings.Join(v.Errors, "; "))
}

func (v *ValidationErrors) add(format string, args ...interface{}) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}

// Validate checks the merged configuration.
func (c *Config) Validate() error {
	v := &ValidationErrors{}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		v.add("log_level %q not one of debug, info, warn, error", c.LogLevel)
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		v.add("log_format %q not one of text, json", c.LogFormat)
	}

	switch c.Output.Format {
	case "table", "json", "yaml":
	default:
		v.add("output.format %q not one of table, json, yaml", c.Output.Format)
	}

	seen := make(map[string]struct{}, len(c.Systems))
	for i, def := range c.Systems {
		if def.Name == "" {
			v.add("systems[%d]: name must not be empty", i)
		}
		if _, dup := seen[def.Name]; dup {
			v.add("systems[%d]: duplicate system name %q", i, def.Name)
		}
		seen[def.Name] = struct{}{}

		if len(def.Dimensions) == 0 {
			v.add("systems[%d] %s: needs at least one dimension", i, def.Name)
		}
		if def.Range.Low > 0 || def.Range.High < 1 {
			v.add("systems[%d] %s: range [%d, %d] must contain 0 and 1",
				i, def.Name, def.Range.Low, def.Range.High)
		}
		for _, p := range def.Prefixes {
			if p.Symbol == "" {
				v.add("systems[%d] %s: prefix %q needs a symbol", i, def.Name, p.Name)
			}
			if p.Exponent < def.Range.Low || p.Exponent > def.Range.High {
				v.add("systems[%d] %s: prefix %q exponent %d outside range [%d, %d]",
					i, def.Name, p.Name, p.Exponent, def.Range.Low, def.Range.High)
			}
		}
	}

	if len(v.Errors) > 0 {
		return v
	}

	return nil
}
