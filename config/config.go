package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/studyflow/studyflow/core/metrics"
	"github.com/studyflow/studyflow/core/planner"
	"github.com/studyflow/studyflow/infra/canvas"
	"github.com/studyflow/studyflow/infra/gcal"
	"github.com/studyflow/studyflow/infra/sling"
)

// Config is the full application configuration.
type Config struct {
	Planner  planner.Constraints `json:"planner"`
	Canvas   canvas.Config       `json:"canvas"`
	Sling    sling.Config        `json:"sling"`
	Calendar gcal.Config         `json:"calendar"`
	Metrics  metrics.Config      `json:"metrics"`

	// Classes is the weekly class timetable, expanded into fixed blocks for
	// every planned day.
	Classes []Class `json:"classes"`
}

// Load reads the configuration file at path (yaml or json by extension) and
// applies environment overrides of the form SF_planner__days_ahead=14.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("SF_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "sf_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SetDefaults cascades defaults into every section.
func (c *Config) SetDefaults() {
	c.Planner.SetDefaults()
	c.Canvas.SetDefaults()
	c.Sling.SetDefaults()
	c.Calendar.SetDefaults()
	c.Metrics.SetDefaults()
}

// Validate checks every section. Disabled sections are not validated so the
// planner can run with only the sources that are configured.
func (c *Config) Validate() error {
	if err := c.Planner.Validate(); err != nil {
		return fmt.Errorf("planner: %w", err)
	}
	if err := c.Canvas.Validate(); err != nil {
		return fmt.Errorf("canvas: %w", err)
	}
	if c.Sling.Enabled {
		if err := c.Sling.Validate(); err != nil {
			return fmt.Errorf("sling: %w", err)
		}
	}
	if c.Calendar.Enabled && c.Calendar.CredentialsFile == "" {
		return fmt.Errorf("calendar: credentials_file is required when enabled")
	}
	for _, class := range c.Classes {
		if err := class.Validate(); err != nil {
			return fmt.Errorf("classes: %w", err)
		}
	}
	return nil
}
