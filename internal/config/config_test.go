package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vango-dev/tooltip/internal/errors"
	"github.com/vango-dev/tooltip/pkg/tooltip"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.TooltipLayout() != tooltip.DefaultLayout {
		t.Errorf("layout = %+v, want %+v", cfg.TooltipLayout(), tooltip.DefaultLayout)
	}
	if cfg.ZIndexBase != tooltip.DefaultZIndexBase {
		t.Errorf("ZIndexBase = %d", cfg.ZIndexBase)
	}
	if cfg.Log.Level != DefaultLogLevel || cfg.Log.Format != DefaultLogFormat {
		t.Errorf("log = %+v", cfg.Log)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_Missing(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Path() != "" || cfg.ZIndexBase != tooltip.DefaultZIndexBase {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoad_JSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ConfigFileName, `{
  "layout": {"arrowSize": 8},
  "zIndexBase": 100,
  "defaults": {"orientation": "bottom", "showOn": "click", "closeIcon": false},
  "log": {"level": "debug", "format": "json"}
}`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Layout.ArrowSize != 8 || cfg.Layout.Clearance != 5 || cfg.Layout.MinWidth != 130 {
		t.Errorf("layout = %+v, missing fields should keep defaults", cfg.Layout)
	}
	if cfg.ZIndexBase != 100 {
		t.Errorf("ZIndexBase = %d, want 100", cfg.ZIndexBase)
	}
	if cfg.Defaults.Orientation != tooltip.OrientationBottom || cfg.Defaults.ShowOn != tooltip.ShowOnClick {
		t.Errorf("defaults = %+v", cfg.Defaults)
	}
	if cfg.Defaults.CloseIcon == nil || *cfg.Defaults.CloseIcon {
		t.Error("closeIcon should decode to false")
	}
	if cfg.Path() != filepath.Join(dir, ConfigFileName) {
		t.Errorf("Path() = %q", cfg.Path())
	}
}

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, YAMLConfigFileName, `
placeholder: No help
defaults:
  class: info
  persistent: true
metrics:
  namespace: forms
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Placeholder != "No help" || cfg.Defaults.Class != "info" || cfg.Metrics.Namespace != "forms" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Defaults.Persistent == nil || !*cfg.Defaults.Persistent {
		t.Error("persistent should decode to true")
	}
}

func TestLoad_PrefersJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ConfigFileName, `{"zIndexBase": 1}`)
	writeFile(t, dir, YAMLConfigFileName, "zIndexBase: 2\n")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ZIndexBase != 1 {
		t.Errorf("ZIndexBase = %d, want the JSON value", cfg.ZIndexBase)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
		code    string
	}{
		{"malformed json", "bad.json", `{"layout": `, "T031"},
		{"malformed yaml", "bad.yaml", "layout: [1, 2", "T031"},
		{"out of range", "range.json", `{"layout": {"minWidth": 0}}`, "T030"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, tt.file, tt.content)
			if _, err := LoadFile(path); errors.CodeOf(err) != tt.code {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.json")); errors.CodeOf(err) != "T031" {
		t.Errorf("missing file err = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"negative arrow", func(c *Config) { c.Layout.ArrowSize = -1 }, false},
		{"negative clearance", func(c *Config) { c.Layout.Clearance = -1 }, false},
		{"zero min width", func(c *Config) { c.Layout.MinWidth = 0 }, false},
		{"negative z-index", func(c *Config) { c.ZIndexBase = -1 }, false},
		{"bad position", func(c *Config) { c.Defaults.Position = "sticky" }, false},
		{"bad orientation", func(c *Config) { c.Defaults.Orientation = "up" }, false},
		{"custom event", func(c *Config) { c.Defaults.ShowOn = "dblclick" }, true},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, false},
		{"warn level", func(c *Config) { c.Log.Level = "WARN" }, true},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, ok = %v", err, tt.ok)
			}
			if err != nil && errors.CodeOf(err) != "T030" {
				t.Errorf("code = %q, want T030", errors.CodeOf(err))
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	for _, name := range []string{ConfigFileName, YAMLConfigFileName} {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			cfg := New()
			cfg.ZIndexBase = 42
			cfg.Defaults = tooltip.Options{Orientation: tooltip.OrientationLeft, CloseIcon: tooltip.Bool(false)}
			cfg.Log.Format = "json"

			path := filepath.Join(dir, name)
			if err := cfg.SaveTo(path); err != nil {
				t.Fatalf("SaveTo error: %v", err)
			}

			loaded, err := Load(dir)
			if err != nil {
				t.Fatalf("Load error: %v", err)
			}
			if loaded.ZIndexBase != 42 || loaded.Log.Format != "json" {
				t.Errorf("round trip lost fields: %+v", loaded)
			}
			if loaded.Defaults.Orientation != tooltip.OrientationLeft || *loaded.Defaults.CloseIcon {
				t.Errorf("defaults = %+v", loaded.Defaults)
			}

			loaded.Placeholder = "changed"
			if err := loaded.Save(); err != nil {
				t.Fatalf("Save error: %v", err)
			}
			again, _ := LoadFile(path)
			if again.Placeholder != "changed" {
				t.Errorf("Save did not write back to %s", path)
			}
		})
	}

	if err := New().Save(); err == nil {
		t.Error("Save without a path should fail")
	}
}

func TestRegistryOptions(t *testing.T) {
	cfg := New()
	cfg.ZIndexBase = 50
	cfg.Defaults.Class = "info"

	r := tooltip.NewRegistry(cfg.RegistryOptions(nil, nil)...)
	if z := r.NextZIndex(); z != 50 {
		t.Errorf("NextZIndex = %d, want 50", z)
	}
}

func TestNewLogger(t *testing.T) {
	cfg := New()
	cfg.Log = LogConfig{Level: "warn", Format: "json"}

	var buf bytes.Buffer
	logger, err := cfg.NewLogger(&buf)
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("dropped")
	logger.Warn("kept", "code", "T002")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Error("info should be filtered at warn level")
	}
	if !strings.Contains(out, `"msg":"kept"`) || !strings.Contains(out, `"code":"T002"`) {
		t.Errorf("unexpected output: %s", out)
	}
}
