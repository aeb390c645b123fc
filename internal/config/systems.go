package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/conneroisu/unitful/unit"
)

// SystemDefinition declares a unit system for the generator: ordered
// base dimension names, the admissible exponent range, and optionally
// a prefix table. Derived units are combinator expressions and belong
// in code, not config.
type SystemDefinition struct {
	Name       string             `mapstructure:"name" yaml:"name"`
	Dimensions []string           `mapstructure:"dimensions" yaml:"dimensions"`
	Range      RangeConfig        `mapstructure:"range" yaml:"range"`
	Prefixes   []PrefixDefinition `mapstructure:"prefixes" yaml:"prefixes"`
}

type RangeConfig struct {
	Low  int8 `mapstructure:"low" yaml:"low"`
	High int8 `mapstructure:"high" yaml:"high"`
}

type PrefixDefinition struct {
	Name     string `mapstructure:"name" yaml:"name"`
	Symbol   string `mapstructure:"symbol" yaml:"symbol"`
	Exponent int8   `mapstructure:"exponent" yaml:"exponent"`
}

// systemFile is the top-level document shape of a definition file.
type systemFile struct {
	Systems []SystemDefinition `yaml:"systems"`
}

// LoadSystemFile reads unit system definitions from a YAML file.
func LoadSystemFile(path string) ([]SystemDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading system file %s: %w", path, err)
	}

	var file systemFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing system file %s: %w", path, err)
	}

	return file.Systems, nil
}

// Build runs the generator for this definition.
func (d SystemDefinition) Build() (*unit.System, error) {
	return unit.NewSystem(d.Name, d.Dimensions, d.Range.Low, d.Range.High)
}
