// Package config loads regextree settings from defaults, a YAML file,
// REGEXTREE_* environment variables and command-line flags.
package config

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Default configuration values.
const (
	DefaultFormat        = "svg"
	DefaultDotFile       = "graph.dot"
	DefaultDotBinary     = "dot"
	DefaultRenderTimeout = 30 * time.Second
	DefaultWorkers       = 4
	DefaultColor         = "auto"

	envPrefix = "REGEXTREE_"
)

// Formats lists every accepted value of the format key.
var Formats = []string{"svg", "png", "pdf", "dot", "tree", "json", "yaml"}

// ColorModes lists every accepted value of the color key.
var ColorModes = []string{"auto", "always", "never"}

// configNames are looked up in the working directory when --config is empty.
var configNames = []string{"regextree.yaml", "regextree.yml", ".regextree.yaml"}

// Config holds all CLI configuration options.
type Config struct {
	Format        string        `koanf:"format"`
	Output        string        `koanf:"output"` // empty: derived from format
	DotFile       string        `koanf:"dot_file"`
	DotBinary     string        `koanf:"dot_binary"`
	RenderTimeout time.Duration `koanf:"render_timeout"`
	Workers       int           `koanf:"workers"`
	Color         string        `koanf:"color"`
	HistoryFile   string        `koanf:"history_file"`
	Verbose       bool          `koanf:"verbose"`

	fileUsed string
}

// FileUsed returns the config file that was read, if any.
func (c *Config) FileUsed() string { return c.fileUsed }

// Validate checks enumerated and numeric settings.
func (c *Config) Validate() error {
	if !slices.Contains(Formats, c.Format) {
		return fmt.Errorf("invalid format %q (want one of %s)", c.Format, strings.Join(Formats, ", "))
	}
	if !slices.Contains(ColorModes, c.Color) {
		return fmt.Errorf("invalid color mode %q (want one of %s)", c.Color, strings.Join(ColorModes, ", "))
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.RenderTimeout <= 0 {
		return fmt.Errorf("render_timeout must be positive, got %s", c.RenderTimeout)
	}
	return nil
}

func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range configNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load reads configuration. Precedence (highest to lowest):
// flags > env vars > config file > defaults. Only flags that were set on the
// command line override lower layers.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"format":         DefaultFormat,
		"output":         "",
		"dot_file":       DefaultDotFile,
		"dot_binary":     DefaultDotBinary,
		"render_timeout": DefaultRenderTimeout.String(),
		"workers":        DefaultWorkers,
		"color":          DefaultColor,
		"history_file":   "",
		"verbose":        false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	fileUsed := findConfigFile(cfgFile)
	if fileUsed != "" {
		if err := k.Load(file.Provider(fileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", fileUsed, err)
		}
	}

	// REGEXTREE_DOT_BINARY -> dot_binary
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.fileUsed = fileUsed
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
