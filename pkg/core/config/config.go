package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/mdwtime/foundation/core/error"
	"github.com/msto63/mdwtime/foundation/utils/timex"
)

// EnvConfigPath names the environment variable holding the config file path
const EnvConfigPath = "MDWTIME_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Store   StoreConfig   `toml:"store" yaml:"store"`
	Watch   WatchConfig   `toml:"watch" yaml:"watch"`
	Slots   []SlotConfig  `toml:"slots" yaml:"slots"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name      string `toml:"name" yaml:"name"`
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`

	// Report rejected time values to the log
	Diagnostics bool `toml:"diagnostics" yaml:"diagnostics"`
}

// StoreConfig holds the slot database settings
type StoreConfig struct {
	Path string `toml:"path" yaml:"path"`

	// CacheTTL bounds how long the live clock reuses active-slot lookups
	CacheTTL Duration `toml:"cache_ttl" yaml:"cache_ttl"`
}

// WatchConfig holds settings for the live clock view
type WatchConfig struct {
	Target  timex.TimeOfDay `toml:"target" yaml:"target"`
	Refresh Duration        `toml:"refresh" yaml:"refresh"`
}

// SlotConfig describes a named time window seeded into the store
type SlotConfig struct {
	Name  string          `toml:"name" yaml:"name"`
	Start timex.TimeOfDay `toml:"start" yaml:"start"`
	End   timex.TimeOfDay `toml:"end" yaml:"end"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration scalar
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	return d.UnmarshalText([]byte(node.Value))
}

// MarshalYAML formats the duration as a string
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.Duration.String(), nil
}

// Default returns a configuration with all defaults applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file. The format follows the
// file extension; anything other than .yaml or .yml is read as TOML.
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, mdwerror.New(fmt.Sprintf("config file not found: %s", path)).
			WithCode(mdwerror.CodeMissingConfig).
			WithOperation("config.Load")
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to read config").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load")
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		_, err = toml.Decode(string(data), &cfg)
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads configuration from the MDWTIME_CONFIG environment
// variable or the first default location that exists
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		// Try default locations
		defaultPaths := []string{
			"./configs/mdwtime.toml",
			"./mdwtime.toml",
			"./mdwtime.yaml",
			filepath.Join(os.Getenv("HOME"), ".config/mdwtime/config.toml"),
		}
		for _, p := range defaultPaths {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return nil, mdwerror.New("no config file found, set " + EnvConfigPath + " or create configs/mdwtime.toml").
			WithCode(mdwerror.CodeMissingConfig).
			WithOperation("config.LoadFromEnv")
	}

	return Load(path)
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.Name == "" {
		c.General.Name = "todctl"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "info"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	if c.Store.Path == "" {
		c.Store.Path = "./data/slots.db"
	}

	if c.Store.CacheTTL.Duration == 0 {
		c.Store.CacheTTL.Duration = 30 * time.Second
	}
	if c.Watch.Refresh.Duration == 0 {
		c.Watch.Refresh.Duration = time.Second
	}
}

// expandEnvVars expands environment variables in configuration values
func (c *Config) expandEnvVars() {
	c.Store.Path = os.ExpandEnv(c.Store.Path)
}

// Validate checks values that cannot be defaulted
func (c *Config) Validate() error {
	if c.Watch.Refresh.Duration < 0 {
		return mdwerror.New("watch.refresh must not be negative").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Validate")
	}

	if c.Store.CacheTTL.Duration < 0 {
		return mdwerror.New("store.cache_ttl must not be negative").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Validate")
	}

	seen := make(map[string]bool, len(c.Slots))
	for i, s := range c.Slots {
		if s.Name == "" {
			return mdwerror.New(fmt.Sprintf("slot %d has no name", i)).
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.Validate")
		}
		if seen[s.Name] {
			return mdwerror.New(fmt.Sprintf("duplicate slot %q", s.Name)).
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.Validate")
		}
		seen[s.Name] = true
	}
	return nil
}
