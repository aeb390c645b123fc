package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "text",
		Output:    OutputConfig{Format: "table"},
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	cfg := validConfig()
	applyDefaults(cfg)

	assert.NoError(t, cfg.Validate())
}

func TestValidateRejectsBadFields(t *testing.T) {
	cfg := validConfig()
	cfg.LogLevel = "verbose"
	cfg.Output.Format = "xml"

	err := cfg.Validate()
	require.Error(t, err)

	var verr *ValidationErrors
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Errors, 2, "all invalid fields are reported together")
}

func TestValidateSystemDefinitions(t *testing.T) {
	cfg := validConfig()
	cfg.Systems = []SystemDefinition{
		{Name: "imperial", Dimensions: []string{"ft", "lb"}, Range: RangeConfig{Low: -10, High: 10}},
	}
	assert.NoError(t, cfg.Validate())

	cfg.Systems = append(cfg.Systems,
		SystemDefinition{Name: "imperial", Dimensions: []string{"ft"}, Range: RangeConfig{Low: -10, High: 10}},
		SystemDefinition{Name: "", Range: RangeConfig{Low: 5, High: 3}},
		SystemDefinition{
			Name:       "offkey",
			Dimensions: []string{"x"},
			Range:      RangeConfig{Low: -5, High: 5},
			Prefixes:   []PrefixDefinition{{Name: "big", Symbol: "B", Exponent: 9}},
		},
	)

	err := cfg.Validate()
	require.Error(t, err)

	var verr *ValidationErrors
	require.ErrorAs(t, err, &verr)
	assert.GreaterOrEqual(t, len(verr.Errors), 4)
}

func TestLoadReadsConfigFileKeys(t *testing.T) {
	dir := t.TempDir()

	sysPath := filepath.Join(dir, "systems.yml")
	sysContent := `systems:
  - name: imperial
    dimensions: [ft, lb]
    range:
      low: -10
      high: 10
`
	require.NoError(t, os.WriteFile(sysPath, []byte(sysContent), 0644))

	cfgPath := filepath.Join(dir, ".unitful.yml")
	cfgContent := fmt.Sprintf(`log_level: debug
log_format: json
output:
  format: json
systems:
  - name: typographic
    dimensions: [pt]
    range:
      low: -6
      high: 6
system_files:
  - %s
`, sysPath)
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgContent), 0644))

	viper.Reset()
	defer viper.Reset()
	viper.SetConfigFile(cfgPath)
	require.NoError(t, viper.ReadInConfig())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, []string{sysPath}, cfg.SystemFiles)

	require.Len(t, cfg.Systems, 2, "inline systems plus the referenced file")
	assert.Equal(t, "typographic", cfg.Systems[0].Name)
	assert.Equal(t, "imperial", cfg.Systems[1].Name)
	assert.Equal(t, []string{"ft", "lb"}, cfg.Systems[1].Dimensions)
	assert.Equal(t, int8(-6), cfg.Systems[0].Range.Low)
}

func TestLoadSystemFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "systems.yml")

	content := `systems:
  - name: imperial
    dimensions: [ft, lb, s]
    range:
      low: -10
      high: 10
    prefixes:
      - name: kilo
        symbol: k
        exponent: 3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	defs, err := LoadSystemFile(path)
	require.NoError(t, err)
	require.Len(t, defs, 1)

	def := defs[0]
	assert.Equal(t, "imperial", def.Name)
	assert.Equal(t, []string{"ft", "lb", "s"}, def.Dimensions)
	assert.Equal(t, int8(-10), def.Range.Low)
	assert.Equal(t, int8(10), def.Range.High)
	require.Len(t, def.Prefixes, 1)
	assert.Equal(t, int8(3), def.Prefixes[0].Exponent)
}

func TestLoadSystemFileErrors(t *testing.T) {
	_, err := LoadSystemFile(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.yml")
	require.NoError(t, os.WriteFile(path, []byte("systems: [unclosed"), 0644))

	_, err = LoadSystemFile(path)
	assert.Error(t, err)
}

func TestSystemDefinitionBuild(t *testing.T) {
	def := SystemDefinition{
		Name:       "imperial",
		Dimensions: []string{"ft", "lb"},
		Range:      RangeConfig{Low: -10, High: 10},
	}

	sys, err := def.Build()
	require.NoError(t, err)
	assert.Equal(t, "imperial", sys.Name())
	assert.Equal(t, []string{"ft", "lb"}, sys.Dimensions())

	def.Range = RangeConfig{Low: 5, High: 3}
	_, err = def.Build()
	assert.Error(t, err, "generator validates the range")
}
