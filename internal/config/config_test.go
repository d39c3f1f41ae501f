package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_NoWarnings(t *testing.T) {
	cfg := DefaultConfig()
	assert.Empty(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log level"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "log format"},
		{"negative threshold", func(c *Config) { c.Planner.WeakThreshold = -5 }, "weak_threshold"},
		{"threshold too high", func(c *Config) { c.Planner.WeakThreshold = 150 }, "weak_threshold"},
		{"empty root", func(c *Config) { c.Planner.RootTitle = "  " }, "root_title"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			warnings := cfg.Validate()
			require.Len(t, warnings, 1)
			assert.True(t, strings.Contains(warnings[0], tt.want), "warning %q should mention %q", warnings[0], tt.want)
		})
	}
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), *cfg)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studyplan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log:
  level: debug
  format: json
planner:
  root_title: CS Degree
  weak_threshold: 60
curriculum:
  path: /tmp/cs.yaml
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "CS Degree", cfg.Planner.RootTitle)
	assert.Equal(t, 60.0, cfg.Planner.WeakThreshold)
	assert.Equal(t, "/tmp/cs.yaml", cfg.Curriculum.Path)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studyplan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("planner:\n  weak_threshold: 60\n"), 0o644))
	t.Setenv("STUDYPLAN_PLANNER_WEAK_THRESHOLD", "40")
	t.Setenv("STUDYPLAN_CURRICULUM_PATH", "env.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 40.0, cfg.Planner.WeakThreshold)
	assert.Equal(t, "env.yaml", cfg.Curriculum.Path)
	assert.Equal(t, "Curriculum Root", cfg.Planner.RootTitle)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}
