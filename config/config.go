// Package config holds generation settings: where artifacts go and the
// database roles and UI texts baked into them.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// EnvDatePlaceholder overrides Config.DatePlaceholder when set.
const EnvDatePlaceholder = "SQL2FNC_DATE_PLACEHOLDER"

var ErrUnknownFormat = errors.New("unknown config format")

type Config struct {
	// OutputDir is the root of the generated tree.
	OutputDir string `yaml:"output" toml:"output"`
	// DefaultSchema applies to CREATE TABLE statements without a schema.
	DefaultSchema string `yaml:"defaultSchema" toml:"default_schema"`
	// Owner and Grantee end up in ALTER FUNCTION ... OWNER TO and GRANT EXECUTE.
	Owner   string `yaml:"owner" toml:"owner"`
	Grantee string `yaml:"grantee" toml:"grantee"`
	// DatePlaceholder is shown in generated date inputs.
	DatePlaceholder string `yaml:"datePlaceholder" toml:"date_placeholder"`
	GoClient        bool   `yaml:"goClient" toml:"go_client"`
}

func Default() *Config {
	return &Config{
		OutputDir:       "dist",
		DefaultSchema:   "public",
		Owner:           "postgres",
		Grantee:         "api",
		DatePlaceholder: "YYYY-MM-DD",
		GoClient:        true,
	}
}

// Load reads a YAML (.yaml, .yml) or TOML (.toml) file on top of the
// defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}

	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyEnv copies environment overrides into c.
func (c *Config) ApplyEnv() {
	if v, ok := os.LookupEnv(EnvDatePlaceholder); ok {
		c.DatePlaceholder = v
	}
}

func (c *Config) validate() error {
	if c.OutputDir == "" {
		return errors.New("output is required")
	}

	if c.DefaultSchema == "" {
		return errors.New("defaultSchema is required")
	}

	if c.Owner == "" {
		return errors.New("owner is required")
	}

	if c.Grantee == "" {
		return errors.New("grantee is required")
	}

	return nil
}
