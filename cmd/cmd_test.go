package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/unitful/internal/config"
	"github.com/conneroisu/unitful/unit"
)

func testConfig() *config.Config {
	return &config.Config{
		LogLevel:  "info",
		LogFormat: "text",
		Output:    config.OutputConfig{Format: "table"},
	}
}

func TestNewRegistryLoadsCatalog(t *testing.T) {
	reg, err := newRegistry(testConfig())
	require.NoError(t, err)

	watt, ok := reg.Get("watt")
	require.True(t, ok)
	assert.Equal(t, "SI", watt.System)

	kw, err := reg.Resolve("kW")
	require.NoError(t, err)

	out, err := unit.New(1500.0, watt.Tag).Convert(kw)
	require.NoError(t, err)
	assert.Equal(t, 1.5, out.Value())
}

func TestNewRegistryWithConfigSystem(t *testing.T) {
	cfg := testConfig()
	cfg.Systems = []config.SystemDefinition{
		{
			Name:       "typographic",
			Dimensions: []string{"pt"},
			Range:      config.RangeConfig{Low: -6, High: 6},
			Prefixes:   []config.PrefixDefinition{{Name: "kilopoint", Symbol: "kp", Exponent: 3}},
		},
	}

	reg, err := newRegistry(cfg)
	require.NoError(t, err)

	pt, ok := reg.Get("typographic/pt")
	require.True(t, ok)
	assert.Equal(t, "typographic", pt.System)

	kpt, err := reg.Resolve("kppt")
	require.NoError(t, err)
	assert.Equal(t, int8(3), kpt.Scale())
}

func TestNewRegistryRejectsCollidingSystems(t *testing.T) {
	cfg := testConfig()
	cfg.Systems = []config.SystemDefinition{
		{Name: "clash", Dimensions: []string{"m"}, Range: config.RangeConfig{Low: -6, High: 6}},
	}

	_, err := newRegistry(cfg)
	assert.Error(t, err, "symbol collides with the SI meter")
}

func TestValidateFormat(t *testing.T) {
	supported := []string{"table", "json"}

	assert.NoError(t, validateFormat("", supported))
	assert.NoError(t, validateFormat("json", supported))
	assert.Error(t, validateFormat("xml", supported))
}

func TestConvertAcceptsAdvertisedFormats(t *testing.T) {
	// The global --format help text lists table, json and yaml.
	for _, format := range []string{"table", "json", "yaml"} {
		assert.NoError(t, validateFormat(format, convertFormats))
	}
}

func TestWriteConversion(t *testing.T) {
	res := conversionResult{Value: 1500, From: "W", To: "kW", Result: 1.5, Dimension: "s^-3·m^2·kg"}

	var table bytes.Buffer
	require.NoError(t, writeConversion(&table, "table", res))
	assert.Equal(t, "1500 W = 1.5 kW\n", table.String())

	var jsonOut bytes.Buffer
	require.NoError(t, writeConversion(&jsonOut, "json", res))
	assert.Contains(t, jsonOut.String(), `"result": 1.5`)

	var yamlOut bytes.Buffer
	require.NoError(t, writeConversion(&yamlOut, "yaml", res))
	assert.Contains(t, yamlOut.String(), "result: 1.5")
	assert.Contains(t, yamlOut.String(), "from: W")
}
