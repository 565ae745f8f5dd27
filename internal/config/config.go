// Package config loads the resolver configuration from a YAML file with
// TVREMOTE_ environment overrides.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/appengine-ltd/tvremote/internal/channel"
	"github.com/appengine-ltd/tvremote/internal/inflect"
	"github.com/appengine-ltd/tvremote/internal/resolve"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "TVREMOTE_"

type Config struct {
	Log         LogConfig        `yaml:"log" envPrefix:"LOG_"`
	Channels    ChannelConfig    `yaml:"channels" envPrefix:"CHANNELS_"`
	Inflections InflectionConfig `yaml:"inflections" envPrefix:"INFLECTIONS_"`
	Priorities  map[string]int   `yaml:"priorities" env:"PRIORITIES"`
}

type LogConfig struct {
	Level  string `yaml:"level" env:"LEVEL"`
	Format string `yaml:"format" env:"FORMAT"`
}

// ChannelConfig extends or replaces the built-in channel directory.
type ChannelConfig struct {
	// File is a YAML list of channel entries.
	File    string          `yaml:"file" env:"FILE"`
	Replace bool            `yaml:"replace" env:"REPLACE"`
	Extra   []channel.Entry `yaml:"extra"`
}

type InflectionConfig struct {
	File  string          `yaml:"file" env:"FILE"`
	Extra []inflect.Entry `yaml:"extra"`
}

func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads path, falling back to defaults when the file does not exist,
// then applies environment overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format %q (want json or console)", c.Log.Format)
	}
	return nil
}

// Logger builds the zap logger described by the log section.
func (c *Config) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	zc := zap.NewDevelopmentConfig()
	if c.Log.Format == "json" {
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}

// Directory builds the channel directory.
func (c *Config) Directory() (*channel.Directory, error) {
	var entries []channel.Entry
	if !c.Channels.Replace {
		entries = channel.DefaultEntries()
	}
	if c.Channels.File != "" {
		var fromFile []channel.Entry
		if err := readYAML(c.Channels.File, &fromFile); err != nil {
			return nil, fmt.Errorf("channels file: %w", err)
		}
		entries = append(entries, fromFile...)
	}
	entries = append(entries, c.Channels.Extra...)
	return channel.NewDirectory(entries)
}

// Inflector builds the inflection table from the embedded forms plus any
// configured ones.
func (c *Config) Inflector() (*inflect.Table, error) {
	entries := inflect.DefaultEntries()
	if c.Inflections.File != "" {
		f, err := os.Open(c.Inflections.File)
		if err != nil {
			return nil, fmt.Errorf("inflections file: %w", err)
		}
		defer f.Close()
		fromFile, err := inflect.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("inflections file: %w", err)
		}
		entries = append(entries, fromFile...)
	}
	entries = append(entries, c.Inflections.Extra...)
	return inflect.NewTable(entries)
}

func (c *Config) PriorityTable() resolve.Priorities {
	return resolve.DefaultPriorities().With(c.Priorities)
}

// Assembler wires the configured tables into a resolve.Assembler.
func (c *Config) Assembler() (*resolve.Assembler, error) {
	dir, err := c.Directory()
	if err != nil {
		return nil, err
	}
	inf, err := c.Inflector()
	if err != nil {
		return nil, err
	}
	return resolve.NewAssembler(
		resolve.WithDirectory(dir),
		resolve.WithInflector(inf),
		resolve.WithPriorities(c.PriorityTable()),
	), nil
}

func readYAML(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, out)
}
