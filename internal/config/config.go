package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/GustavoCaso/billtrace/internal/logger"
)

type Backend string

const (
	BackendMemory Backend = "memory"
	BackendSQLite Backend = "sqlite"
)

type Config struct {
	Storage Backend       `toml:"storage"`
	NoColor bool          `toml:"no_color"`
	Logger  logger.Config `toml:"logger"`
}

const (
	DefaultFile      = "billtrace.toml"
	defaultStorage   = BackendMemory
	defaultLogLevel  = logger.LevelInfo
	defaultLogFormat = logger.FormatText
	defaultLogOutput = "discard"
)

// Parse reads the TOML file when it exists and applies BILLTRACE_* environment
// overrides on top of it. A missing file is not an error.
func Parse(file string) (*Config, error) {
	conf := &Config{}

	content, err := os.ReadFile(file)
	switch {
	case err == nil:
		if _, err = toml.Decode(string(content), conf); err != nil {
			return nil, fmt.Errorf("invalid configuration file %s: %w", file, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, err
	}

	if err = conf.parseEnv(); err != nil {
		return nil, err
	}

	conf.setDefaults()

	if err = conf.validate(); err != nil {
		return nil, err
	}

	return conf, nil
}

func (c *Config) parseEnv() error {
	if backend := os.Getenv("BILLTRACE_STORAGE"); backend != "" {
		c.Storage = Backend(backend)
	}

	if noColor := os.Getenv("BILLTRACE_NO_COLOR"); noColor != "" {
		value, err := strconv.ParseBool(noColor)
		if err != nil {
			return fmt.Errorf("invalid BILLTRACE_NO_COLOR value %q: %w", noColor, err)
		}
		c.NoColor = value
	}

	if level := os.Getenv("BILLTRACE_LOG_LEVEL"); level != "" {
		c.Logger.Level = logger.Level(level)
	}

	if format := os.Getenv("BILLTRACE_LOG_FORMAT"); format != "" {
		c.Logger.Format = logger.Format(format)
	}

	if output := os.Getenv("BILLTRACE_LOG_OUTPUT"); output != "" {
		c.Logger.Output = output
	}

	return nil
}

func (c *Config) setDefaults() {
	if c.Storage == "" {
		c.Storage = defaultStorage
	}

	if c.Logger.Level == "" {
		c.Logger.Level = defaultLogLevel
	}

	if c.Logger.Format == "" {
		c.Logger.Format = defaultLogFormat
	}

	if c.Logger.Output == "" {
		c.Logger.Output = defaultLogOutput
	}
}

func (c *Config) validate() error {
	switch c.Storage {
	case BackendMemory, BackendSQLite:
		return nil
	default:
		return fmt.Errorf("unsupported storage %q. Supported values are: %s, %s", c.Storage, BackendMemory, BackendSQLite)
	}
}
