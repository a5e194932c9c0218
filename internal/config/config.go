package config

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/tooltip/internal/errors"
	"github.com/vango-dev/tooltip/pkg/tooltip"
)

const (
	// ConfigFileName is the JSON configuration file.
	ConfigFileName = "tooltip.json"

	// YAMLConfigFileName is the YAML configuration file. It is only read
	// when ConfigFileName is absent.
	YAMLConfigFileName = "tooltip.yaml"

	// DefaultLogLevel is the default log level.
	DefaultLogLevel = "info"

	// DefaultLogFormat is the default log handler.
	DefaultLogFormat = "text"
)

// Config is the tooltip configuration file.
type Config struct {
	// Layout holds the placement measurements in pixels.
	Layout LayoutConfig `json:"layout" yaml:"layout"`

	// ZIndexBase is the z-index of the first shown tooltip.
	ZIndexBase int `json:"zIndexBase" yaml:"zIndexBase"`

	// Placeholder is the body of tooltips without text or title.
	Placeholder string `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`

	// Defaults override the built-in options of every tooltip.
	Defaults tooltip.Options `json:"defaults,omitempty" yaml:"defaults,omitempty"`

	// Metrics configures the Prometheus collector.
	Metrics MetricsConfig `json:"metrics" yaml:"metrics"`

	// Log configures the CLI logger.
	Log LogConfig `json:"log" yaml:"log"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// LayoutConfig mirrors tooltip.Layout.
type LayoutConfig struct {
	ArrowSize float64 `json:"arrowSize" yaml:"arrowSize"`
	Clearance float64 `json:"clearance" yaml:"clearance"`
	MinWidth  float64 `json:"minWidth" yaml:"minWidth"`
}

// MetricsConfig contains metrics settings.
type MetricsConfig struct {
	// Namespace prefixes every metric name.
	Namespace string `json:"namespace,omitempty" yaml:"namespace,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty" yaml:"level,omitempty"`

	// Format is text or json.
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Layout: LayoutConfig{
			ArrowSize: tooltip.DefaultLayout.ArrowSize,
			Clearance: tooltip.DefaultLayout.Clearance,
			MinWidth:  tooltip.DefaultLayout.MinWidth,
		},
		ZIndexBase:  tooltip.DefaultZIndexBase,
		Placeholder: tooltip.DefaultPlaceholder,
		Metrics:     MetricsConfig{Namespace: "tooltip"},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Load reads the configuration from dir, preferring tooltip.json over
// tooltip.yaml. A directory with neither yields the defaults.
func Load(dir string) (*Config, error) {
	for _, name := range []string{ConfigFileName, YAMLConfigFileName} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return New(), nil
}

// LoadFile reads the configuration from path. Files ending in .yaml or
// .yml are YAML, anything else JSON. Missing fields keep their defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("T031").WithDetail("Could not read " + path).Wrap(err)
	}

	cfg := New()
	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, errors.New("T031").
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
			WithSuggestion("Run 'tooltip config init' to write a valid file")
	}

	cfg.configPath = path
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to path, as YAML or JSON by extension.
func (c *Config) SaveTo(path string) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return errors.New("T031").Wrap(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("T031").WithDetail("Could not write " + path).Wrap(err)
	}
	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	invalid := func(format string, args ...any) error {
		return errors.New("T030").WithDetail(fmt.Sprintf(format, args...))
	}

	switch {
	case c.Layout.ArrowSize < 0:
		return invalid("layout.arrowSize must not be negative, got %v", c.Layout.ArrowSize)
	case c.Layout.Clearance < 0:
		return invalid("layout.clearance must not be negative, got %v", c.Layout.Clearance)
	case c.Layout.MinWidth <= 0:
		return invalid("layout.minWidth must be positive, got %v", c.Layout.MinWidth)
	case c.ZIndexBase < 0:
		return invalid("zIndexBase must not be negative, got %d", c.ZIndexBase)
	}

	d := c.Defaults
	if d.Position != "" && !d.Position.Valid() {
		return invalid("defaults.position %q is not one of auto, relative, absolute, static, fixed", d.Position)
	}
	if d.Orientation != "" && !d.Orientation.Valid() {
		return invalid("defaults.orientation %q is not one of top, bottom, left, right", d.Orientation)
	}

	if _, err := parseLevel(c.Log.Level); err != nil {
		return invalid("log.level: %v", err)
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		return invalid("log.format %q is not text or json", c.Log.Format)
	}
	return nil
}

// TooltipLayout returns the placement measurements.
func (c *Config) TooltipLayout() tooltip.Layout {
	return tooltip.Layout{
		ArrowSize: c.Layout.ArrowSize,
		Clearance: c.Layout.Clearance,
		MinWidth:  c.Layout.MinWidth,
	}
}

// RegistryOptions translates the configuration into registry options.
// logger and metrics may be nil.
func (c *Config) RegistryOptions(logger *slog.Logger, metrics *tooltip.Collector) []tooltip.RegistryOption {
	opts := []tooltip.RegistryOption{
		tooltip.WithLayout(c.TooltipLayout()),
		tooltip.WithZIndexBase(c.ZIndexBase),
		tooltip.WithDefaults(&c.Defaults),
	}
	if c.Placeholder != "" {
		opts = append(opts, tooltip.WithPlaceholder(c.Placeholder))
	}
	if logger != nil {
		opts = append(opts, tooltip.WithLogger(logger))
	}
	if metrics != nil {
		opts = append(opts, tooltip.WithMetrics(metrics))
	}
	return opts
}

// MetricsOptions returns the collector options.
func (c *Config) MetricsOptions() []tooltip.MetricsOption {
	if c.Metrics.Namespace == "" {
		return nil
	}
	return []tooltip.MetricsOption{tooltip.WithNamespace(c.Metrics.Namespace)}
}

// NewLogger builds a slog logger writing to w with the configured level
// and format.
func (c *Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := parseLevel(c.Log.Level)
	if err != nil {
		return nil, errors.New("T030").WithDetail("log.level: " + err.Error())
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, err
	}
	return level, nil
}
