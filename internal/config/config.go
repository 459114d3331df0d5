package config

import (
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// Config holds resolved file settings. Zero values mean "not set in the
// file"; the CLI falls back to its flag defaults for those.
type Config struct {
	URL           string
	Timeout       time.Duration
	Lenient       bool
	MinTeams      int
	Format        string
	Sort          string
	Conferences   []string
	Top           int
	Verbose       bool
	CacheDir      string
	CacheTTL      time.Duration
	CacheDisabled bool
}

// fileSchema is the on-disk YAML shape. Durations are strings in
// time.ParseDuration syntax ("45s", "2h").
type fileSchema struct {
	URL         string   `yaml:"url"`
	Timeout     string   `yaml:"timeout"`
	Lenient     bool     `yaml:"lenient"`
	MinTeams    int      `yaml:"minTeams"`
	Format      string   `yaml:"format"`
	Sort        string   `yaml:"sort"`
	Conferences []string `yaml:"conferences"`
	Top         int      `yaml:"top"`
	Verbose     bool     `yaml:"verbose"`

	Cache struct {
		Dir      string `yaml:"dir"`
		TTL      string `yaml:"ttl"`
		Disabled bool   `yaml:"disabled"`
	} `yaml:"cache"`
}

// Load reads and parses the config file at path. An empty path yields an
// empty Config; a missing or malformed file is an error, since the user
// asked for it explicitly.
func Load(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var schema fileSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg := &Config{
		URL:           schema.URL,
		Lenient:       schema.Lenient,
		MinTeams:      schema.MinTeams,
		Format:        schema.Format,
		Sort:          schema.Sort,
		Conferences:   schema.Conferences,
		Top:           schema.Top,
		Verbose:       schema.Verbose,
		CacheDir:      schema.Cache.Dir,
		CacheDisabled: schema.Cache.Disabled,
	}

	if cfg.Timeout, err = parseDuration("timeout", schema.Timeout); err != nil {
		return nil, err
	}
	if cfg.CacheTTL, err = parseDuration("cache.ttl", schema.Cache.TTL); err != nil {
		return nil, err
	}

	return cfg, nil
}

func parseDuration(field, value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", field, err)
	}
	return d, nil
}
