// Package config loads the application configuration from YAML or JSON
// files with environment overrides.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/lmercadier/timetable/core/planner"
	"github.com/lmercadier/timetable/infra/forecast"
	"github.com/lmercadier/timetable/infra/notify"
)

type Config struct {
	Planner planner.Config `json:"planner"`
	Weather WeatherConfig  `json:"weather"`
	Metrics MetricsConfig  `json:"metrics"`
	Notify  notify.Config  `json:"notify"`
	Logging LoggingConfig  `json:"logging"`
}

// WeatherConfig maps dates ("2006-01-02") to forecast conditions.
type WeatherConfig struct {
	Conditions map[string]string `json:"conditions"`
}

// SetDefaults seeds the simulated three-day forecast when no table is
// configured.
func (c *WeatherConfig) SetDefaults() {
	if len(c.Conditions) == 0 {
		c.Conditions = forecast.DefaultTable(time.Now())
	}
}

// MetricsConfig enables the optional observability sinks.
type MetricsConfig struct {
	// PromAddr exposes a /metrics endpoint when non-empty, e.g. ":9090".
	PromAddr string `json:"prom_addr"`
	// Influx placement recording is enabled when InfluxURL is non-empty.
	InfluxURL    string `json:"influx_url"`
	InfluxToken  string `json:"influx_token"`
	InfluxOrg    string `json:"influx_org"`
	InfluxBucket string `json:"influx_bucket"`
}

// Validate checks that influx settings are complete when enabled.
func (c MetricsConfig) Validate() error {
	if c.InfluxURL != "" && (c.InfluxOrg == "" || c.InfluxBucket == "") {
		return fmt.Errorf("influx_org and influx_bucket are required with influx_url")
	}
	return nil
}

// Default returns a configuration with all defaults applied, used when
// no config file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.Planner.SetDefaults()
	cfg.Weather.SetDefaults()
	cfg.Notify.SetDefaults()
	cfg.Logging.SetDefaults()
	return cfg
}

// Load reads the configuration file and applies TT_ environment
// overrides (TT_PLANNER__START_HOUR maps to planner.start_hour).
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
	if err := k.Load(env.Provider("TT_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "tt_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Planner.SetDefaults()
	cfg.Weather.SetDefaults()
	cfg.Notify.SetDefaults()
	cfg.Logging.SetDefaults()
	if err := cfg.Planner.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Metrics.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Notify.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Logging.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
