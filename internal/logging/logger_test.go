package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"csf2det/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitialize_CategoriesAreNamed(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Initialize(config.LoggingConfig{Level: "info", Format: "json"}, false, &buf))

	Get(CategoryExpand).Info("walk finished", zap.Int("determinants", 4))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "expand", entry["logger"])
	assert.Equal(t, "walk finished", entry["msg"])
	assert.EqualValues(t, 4, entry["determinants"])
}

func TestInitialize_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Initialize(config.LoggingConfig{Level: "warn", Format: "console"}, false, &buf))

	Get(CategoryParse).Info("hidden")
	Get(CategoryParse).Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "WARN")
}

func TestInitialize_VerboseEnablesDebug(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Initialize(config.LoggingConfig{Level: "error", Format: "console"}, true, &buf))

	Get(CategoryRender).Debug("debug line")
	assert.Contains(t, buf.String(), "debug line")
}

func TestGet_DisabledCategoryIsNoop(t *testing.T) {
	var buf bytes.Buffer
	c := config.LoggingConfig{
		Level:      "debug",
		Format:     "console",
		Categories: map[string]bool{"batch": false},
	}
	require.NoError(t, Initialize(c, false, &buf))
	buf.Reset()

	Get(CategoryBatch).Error("should not appear")
	Get(CategoryExpand).Info("should appear")

	out := buf.String()
	assert.False(t, strings.Contains(out, "should not appear"))
	assert.Contains(t, out, "should appear")
}

func TestGet_Cached(t *testing.T) {
	require.NoError(t, Initialize(config.LoggingConfig{Level: "info"}, false, &bytes.Buffer{}))
	assert.Same(t, Get(CategoryBoot), Get(CategoryBoot))
}

func TestNew_InvalidSettings(t *testing.T) {
	_, err := New(config.LoggingConfig{Level: "chatty"}, false, nil)
	assert.Error(t, err)

	_, err = New(config.LoggingConfig{Level: "info", Format: "xml"}, false, nil)
	assert.Error(t, err)
}
