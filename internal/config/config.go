// Package config loads fcrefs settings from a YAML file, a .env file and
// FCREFS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file looked up in the corpus directory when no
// explicit path is given.
const DefaultFile = ".fcrefs.yaml"

// Config holds settings that may come from a file or the environment.
// Zero values mean "not set" so later layers can tell them apart.
type Config struct {
	Match     string `yaml:"match"`
	Format    string `yaml:"format"`
	Extension string `yaml:"extension"`
	Workers   int    `yaml:"workers"`
	CacheSize int    `yaml:"cache_size"`
	LogLevel  string `yaml:"log_level"`
	LogFile   string `yaml:"log_file"`
}

// Load reads the config file at path and applies environment overrides.
// A missing file is not an error unless required is set.
func Load(path string, required bool) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config %s: %w", path, err)
			}
		case errors.Is(err, fs.ErrNotExist) && !required:
		default:
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	if err := cfg.applyEnv(os.Getenv); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	setString := func(key string, dst *string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}
	setInt := func(key string, dst *int) error {
		v := strings.TrimSpace(getenv(key))
		if v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %q", key, v)
		}
		*dst = n
		return nil
	}

	setString("FCREFS_MATCH", &c.Match)
	setString("FCREFS_FORMAT", &c.Format)
	setString("FCREFS_EXTENSION", &c.Extension)
	setString("FCREFS_LOG_LEVEL", &c.LogLevel)
	setString("FCREFS_LOG_FILE", &c.LogFile)
	if err := setInt("FCREFS_WORKERS", &c.Workers); err != nil {
		return err
	}
	return setInt("FCREFS_CACHE_SIZE", &c.CacheSize)
}

// FirstNonEmpty returns the first non-empty value.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
