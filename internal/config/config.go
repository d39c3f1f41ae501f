package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// STUDYPLAN_PLANNER_WEAK_THRESHOLD.
const EnvPrefix = "STUDYPLAN"

// Config holds all application configuration.
type Config struct {
	Log        LogConfig        `mapstructure:"log"`
	Planner    PlannerConfig    `mapstructure:"planner"`
	Curriculum CurriculumConfig `mapstructure:"curriculum"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // text or json
}

// PlannerConfig tunes the study planner.
type PlannerConfig struct {
	// RootTitle is the title of the synthesized syllabus root.
	RootTitle string `mapstructure:"root_title"`
	// WeakThreshold: subjects scoring strictly below it are queued as weak
	// automatically when added.
	WeakThreshold float64 `mapstructure:"weak_threshold"`
}

type CurriculumConfig struct {
	Path string `mapstructure:"path"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		Planner: PlannerConfig{
			RootTitle:     "Curriculum Root",
			WeakThreshold: 75,
		},
	}
}

// Validate checks configuration for issues and returns warnings.
func (c *Config) Validate() []string {
	var warnings []string

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		warnings = append(warnings, fmt.Sprintf("log level %q is unknown, falling back to info", c.Log.Level))
	}

	if c.Log.Format != "text" && c.Log.Format != "json" {
		warnings = append(warnings, fmt.Sprintf("log format %q is unknown, falling back to text", c.Log.Format))
	}

	if c.Planner.WeakThreshold < 0 || c.Planner.WeakThreshold > 100 {
		warnings = append(warnings, fmt.Sprintf("planner weak_threshold %.2f is outside [0, 100]", c.Planner.WeakThreshold))
	}

	if strings.TrimSpace(c.Planner.RootTitle) == "" {
		warnings = append(warnings, "planner root_title is empty")
	}

	return warnings
}

// Load resolves configuration from defaults, the optional file at path, and
// STUDYPLAN_* environment variables, in increasing priority.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return &cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override it.
func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("planner.root_title", d.Planner.RootTitle)
	v.SetDefault("planner.weak_threshold", d.Planner.WeakThreshold)
	v.SetDefault("curriculum.path", d.Curriculum.Path)
}
