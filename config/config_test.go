package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "agentdeck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "@", cfg.Trigger)
	assert.Equal(t, '@', cfg.TriggerRune())
	assert.Equal(t, 1.0, cfg.SpeedFactor)
	assert.Equal(t, 250, cfg.DebounceMS)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
trigger: "#"
speed_factor: 0.5
debounce_ms: 100
logger:
  level: debug
  format: text
agents:
  - id: writer
    name: Writer
    description: Long-form writing agent
    category: writing
    primary: [writing]
    keywords: [write, draft, article]
    patterns: ['(?i)\bblog post\b']
    context_types: [research]
    output_type: document
    output_formats: [markdown]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, '#', cfg.TriggerRune())
	assert.Equal(t, 0.5, cfg.SpeedFactor)
	assert.Equal(t, 100, cfg.DebounceMS)
	assert.Equal(t, "debug", cfg.Logger.Level)

	require.Len(t, cfg.Agents, 1)
	d, err := cfg.Agents[0].Descriptor()
	require.NoError(t, err)
	assert.Equal(t, "writer", d.ID)
	assert.Equal(t, "Writer", d.Name)
	assert.Equal(t, []string{"writing"}, d.Capabilities.Primary)
	require.Len(t, d.Triggers.Patterns, 1)
	assert.True(t, d.Triggers.Patterns[0].MatchString("a blog post please"))
	assert.Equal(t, "writing", d.Metadata.Category)
}

func TestLoad_PartialFallsBackToDefaults(t *testing.T) {
	path := writeConfig(t, "speed_factor: 2.0\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "@", cfg.Trigger)
	assert.Equal(t, 2.0, cfg.SpeedFactor)
	assert.Equal(t, 250, cfg.DebounceMS)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidate_Trigger(t *testing.T) {
	cfg := Default()
	cfg.Trigger = "@@"
	require.ErrorIs(t, cfg.Validate(), ErrInvalidTrigger)

	cfg.Trigger = ""
	require.ErrorIs(t, cfg.Validate(), ErrInvalidTrigger)
}

func TestValidate_SpeedFactor(t *testing.T) {
	cfg := Default()
	cfg.SpeedFactor = 0
	require.Error(t, cfg.Validate())
	cfg.SpeedFactor = -1
	require.Error(t, cfg.Validate())
}

func TestValidate_Agents(t *testing.T) {
	cfg := Default()
	cfg.Agents = []AgentConfig{{Name: "No ID"}}
	require.ErrorIs(t, cfg.Validate(), ErrInvalidAgent)

	cfg.Agents = []AgentConfig{{ID: "bad", Name: "Bad", Patterns: []string{"("}}}
	require.ErrorIs(t, cfg.Validate(), ErrInvalidAgent)
}
