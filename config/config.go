// Package config loads wordnet settings from a YAML or TOML file and
// WORDNET_* environment variables.
//
// Precedence, lowest first: Default, the file, the environment. Command
// line flags are applied by the caller on top of Read, before Validate.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wordnet/logging"
)

// EnvPrefix starts every environment override.
const EnvPrefix = "WORDNET_"

var (
	// ErrUnsupportedFormat is returned for a config file that is neither
	// YAML nor TOML.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")

	// ErrInvalid is returned by Validate.
	ErrInvalid = errors.New("config: invalid")
)

// Config holds everything the command needs to load a taxonomy.
type Config struct {
	Synsets   string         `yaml:"synsets" toml:"synsets"`
	Hypernyms string         `yaml:"hypernyms" toml:"hypernyms"`
	CacheDir  string         `yaml:"cache_dir" toml:"cache_dir"`
	Workers   int            `yaml:"workers" toml:"workers"`
	Log       logging.Config `yaml:"log" toml:"log"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Synsets:   "synsets.txt",
		Hypernyms: "hypernyms.txt",
		Log:       logging.Config{Level: "warn"},
	}
}

// Load is Read followed by Validate.
func Load(path string) (Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return Config{}, err
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Read returns Default overlaid with the file at path (skipped when path
// is empty) and then with the environment. Only syntax is checked; callers
// that overlay further settings call Validate on the final value.
func Read(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := decodeFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the settings are usable.
func (c Config) Validate() error {
	if c.Synsets == "" {
		return fmt.Errorf("%w: synsets path is empty", ErrInvalid)
	}
	if c.Hypernyms == "" {
		return fmt.Errorf("%w: hypernyms path is empty", ErrInvalid)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers = %d", ErrInvalid, c.Workers)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

func decodeFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		_, err = toml.Decode(string(data), cfg)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}

	return nil
}

func (c *Config) applyEnv() error {
	str := map[string]*string{
		"SYNSETS":   &c.Synsets,
		"HYPERNYMS": &c.Hypernyms,
		"CACHE_DIR": &c.CacheDir,
		"LOG_LEVEL": &c.Log.Level,
	}
	for key, dst := range str {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			*dst = v
		}
	}
	if v, ok := os.LookupEnv(EnvPrefix + "WORKERS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %sWORKERS: %w", ErrInvalid, EnvPrefix, err)
		}
		c.Workers = n
	}
	if v, ok := os.LookupEnv(EnvPrefix + "LOG_DEV"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %sLOG_DEV: %w", ErrInvalid, EnvPrefix, err)
		}
		c.Log.Development = b
	}

	return nil
}
