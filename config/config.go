package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for configuration files other than YAML or TOML
var ErrUnsupportedFormat = errors.New("unsupported config format")

type (
	// Config drives the command line tools
	Config struct {
		RootDir     string      `yaml:"rootDir" toml:"rootDir"`
		Extensions  []string    `yaml:"extensions" toml:"extensions"`
		Exclude     []string    `yaml:"exclude" toml:"exclude"`
		OutDir      string      `yaml:"outDir" toml:"outDir"`
		LogLevel    string      `yaml:"logLevel" toml:"logLevel"`
		Transform   Transform   `yaml:"transform" toml:"transform"`
		Diagnostics Diagnostics `yaml:"diagnostics" toml:"diagnostics"`
	}

	// Transform configures the rewrite of decorated declarations
	Transform struct {
		ParamPrefix string `yaml:"paramPrefix" toml:"paramPrefix"`
		DefaultType string `yaml:"defaultType" toml:"defaultType"`
	}

	// Diagnostics configures the diagnostic filter
	Diagnostics struct {
		// DecoratorScope is "span" or "file"
		DecoratorScope string `yaml:"decoratorScope" toml:"decoratorScope"`
		NoUnusedLocals bool   `yaml:"noUnusedLocals" toml:"noUnusedLocals"`
	}
)

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		RootDir:    ".",
		Extensions: []string{".ts", ".tsx"},
		Exclude:    []string{"node_modules", ".git", "dist", "build"},
		OutDir:     "dist",
		LogLevel:   "info",
		Transform: Transform{
			ParamPrefix: "arg",
			DefaultType: "any",
		},
		Diagnostics: Diagnostics{
			DecoratorScope: "span",
		},
	}
}

// Load reads a YAML or TOML file from any afs URL; unset fields keep their defaults
func Load(ctx context.Context, fs afs.Service, URL string) (*Config, error) {
	if fs == nil {
		fs = afs.New()
	}
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %v: %w", URL, err)
	}
	return Decode(path.Ext(URL), data)
}

// Decode parses data in the format named by ext (".yaml", ".yml" or ".toml")
func Decode(ext string, data []byte) (*Config, error) {
	ret := Default()
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, ret); err != nil {
			return nil, fmt.Errorf("failed to decode yaml config: %w", err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), ret); err != nil {
			return nil, fmt.Errorf("failed to decode toml config: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, ext)
	}
	if err := ret.Validate(); err != nil {
		return nil, err
	}
	return ret, nil
}

// Validate checks enumerated values
func (c *Config) Validate() error {
	switch c.Diagnostics.DecoratorScope {
	case "", "span", "file":
	default:
		return fmt.Errorf("invalid diagnostics.decoratorScope: %v", c.Diagnostics.DecoratorScope)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("invalid extension %q: expected a leading dot", ext)
		}
	}
	return nil
}

// Level converts LogLevel into a slog level
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid logLevel: %v", c.LogLevel)
	}
	return level, nil
}
