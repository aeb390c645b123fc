package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelInfo, ParseLevel("info"))
	assert.Equal(t, LevelWarn, ParseLevel("warn"))
	assert.Equal(t, LevelError, ParseLevel("error"))
	assert.Equal(t, LevelInfo, ParseLevel("bogus"))
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LevelWarn, Format: "text", Output: &buf})

	logger.Info(context.Background(), "dropped")
	assert.Zero(t, buf.Len())

	logger.Warn(context.Background(), nil, "kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestJSONOutputCarriesFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LevelDebug, Format: "json", Output: &buf})

	logger.WithComponent("convert").
		With("from", "W", "to", "kW").
		Error(context.Background(), errors.New("boom"), "conversion rejected")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "conversion rejected", entry["msg"])
	assert.Equal(t, "convert", entry["component"])
	assert.Equal(t, "W", entry["from"])
	assert.Equal(t, "kW", entry["to"])
	assert.Equal(t, "boom", entry["error"])
}

func TestWithDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger(&LoggerConfig{Level: LevelDebug, Format: "json", Output: &buf})
	_ = parent.With("key", "value")

	parent.Info(context.Background(), "plain")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	_, present := entry["key"]
	assert.False(t, present)
}
