package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTitle      = "Dostext"
	DefaultResolution = "1200x700"
	DefaultUndoLimit  = 200
	DefaultPath       = "data/config.json"

	// EnvPath overrides the configuration location.
	EnvPath = "DOSTEXT_CONFIG"
)

// FileType is one entry of the open/save picker filter.
type FileType struct {
	Name    string `json:"name" yaml:"name" toml:"name"`
	Pattern string `json:"pattern" yaml:"pattern" toml:"pattern"`
}

// Config holds application settings. It is not modified after Load returns.
type Config struct {
	App             string     `json:"app" yaml:"app" toml:"app"`
	Resolution      string     `json:"resolution" yaml:"resolution" toml:"resolution"`
	Wrap            *bool      `json:"wrap,omitempty" yaml:"wrap,omitempty" toml:"wrap,omitempty"`
	UndoLimit       int        `json:"undo_limit,omitempty" yaml:"undo_limit,omitempty" toml:"undo_limit,omitempty"`
	NativeDialogs   bool       `json:"native_dialogs,omitempty" yaml:"native_dialogs,omitempty" toml:"native_dialogs,omitempty"`
	SystemClipboard bool       `json:"system_clipboard,omitempty" yaml:"system_clipboard,omitempty" toml:"system_clipboard,omitempty"`
	Foreground      string     `json:"foreground,omitempty" yaml:"foreground,omitempty" toml:"foreground,omitempty"`
	Background      string     `json:"background,omitempty" yaml:"background,omitempty" toml:"background,omitempty"`
	FileTypes       []FileType `json:"file_types,omitempty" yaml:"file_types,omitempty" toml:"file_types,omitempty"`
	LogFile         string     `json:"log_file,omitempty" yaml:"log_file,omitempty" toml:"log_file,omitempty"`
}

// DefaultFileTypes mirrors the filter offered by the open and save pickers.
func DefaultFileTypes() []FileType {
	return []FileType{
		{Name: "Text Files", Pattern: "*.txt"},
		{Name: "Markdown Files", Pattern: "*.md"},
		{Name: "Python Files", Pattern: "*.py"},
		{Name: "All Files", Pattern: "*.*"},
	}
}

// Default returns the configuration used when no file can be read.
func Default() Config {
	wrap := true
	return Config{
		App:        DefaultTitle,
		Resolution: DefaultResolution,
		Wrap:       &wrap,
		UndoLimit:  DefaultUndoLimit,
		FileTypes:  DefaultFileTypes(),
	}
}

// Load reads the file at path. The decoder is picked by extension and JSON is
// used for anything unrecognised. On failure the defaults are returned along
// with the error so callers can log it and carry on.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data in the format named by ext and fills in defaults.
func Parse(data []byte, ext string) (Config, error) {
	var cfg Config
	var err error

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		_, err = toml.Decode(string(data), &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Default(), err
	}

	return cfg.withDefaults(), nil
}

// PathFromEnv returns the configuration path, honouring DOSTEXT_CONFIG.
func PathFromEnv() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return DefaultPath
}

func (c Config) withDefaults() Config {
	def := Default()
	if strings.TrimSpace(c.App) == "" {
		c.App = def.App
	}
	if _, _, err := ParseResolution(c.Resolution); err != nil {
		c.Resolution = def.Resolution
	}
	if c.Wrap == nil {
		c.Wrap = def.Wrap
	}
	if c.UndoLimit <= 0 {
		c.UndoLimit = def.UndoLimit
	}
	if len(c.FileTypes) == 0 {
		c.FileTypes = def.FileTypes
	}
	return c
}

// WordWrap reports whether the text area wraps long lines.
func (c Config) WordWrap() bool {
	return c.Wrap == nil || *c.Wrap
}

// Size returns the initial window geometry.
func (c Config) Size() (width, height float32) {
	w, h, err := ParseResolution(c.Resolution)
	if err != nil {
		w, h, _ = ParseResolution(DefaultResolution)
	}
	return float32(w), float32(h)
}

// ForegroundColor returns the configured whole-widget text color, if any.
func (c Config) ForegroundColor() (color.Color, bool) {
	return parseColor(c.Foreground)
}

// BackgroundColor returns the configured whole-widget background, if any.
func (c Config) BackgroundColor() (color.Color, bool) {
	return parseColor(c.Background)
}

// ParseResolution parses a "<width>x<height>" geometry string.
func ParseResolution(s string) (int, int, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("resolution %q: want <width>x<height>", s)
	}

	w, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("resolution %q: width: %w", s, err)
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("resolution %q: height: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, errors.New("resolution must be positive")
	}
	return w, h, nil
}

func parseColor(s string) (color.Color, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, false
	}
	return c, true
}
