// Package config defines regexlab's configuration: where history lives, how
// patterns are compiled and how the UI looks.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Pratham-0827/Regex-Tutorial/internal/log"
	"github.com/Pratham-0827/Regex-Tutorial/internal/ui/styles"
)

// Load-error policies for a malformed history file.
const (
	OnLoadErrorFail  = "fail"
	OnLoadErrorReset = "reset"
)

// Config is the root configuration.
type Config struct {
	History HistoryConfig `mapstructure:"history" yaml:"history"`
	Match   MatchConfig   `mapstructure:"match" yaml:"match"`
	Form    FormConfig    `mapstructure:"form" yaml:"form"`
	UI      UIConfig      `mapstructure:"ui" yaml:"ui"`
	Theme   ThemeConfig   `mapstructure:"theme" yaml:"theme"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
}

// HistoryConfig controls the history file.
type HistoryConfig struct {
	Path          string `mapstructure:"path" yaml:"path"`
	RecordInvalid bool   `mapstructure:"record_invalid" yaml:"record_invalid"`
	OnLoadError   string `mapstructure:"on_load_error" yaml:"on_load_error"`
}

// MatchConfig controls pattern compilation.
type MatchConfig struct {
	Timeout    time.Duration `mapstructure:"timeout" yaml:"timeout"`
	IgnoreCase bool          `mapstructure:"ignore_case" yaml:"ignore_case"`
	Multiline  bool          `mapstructure:"multiline" yaml:"multiline"`
	Singleline bool          `mapstructure:"singleline" yaml:"singleline"`
	ECMAScript bool          `mapstructure:"ecmascript" yaml:"ecmascript"`
}

// FormConfig holds the values the editor starts with.
type FormConfig struct {
	InitialPattern string `mapstructure:"initial_pattern" yaml:"initial_pattern"`
	InitialExample string `mapstructure:"initial_example" yaml:"initial_example"`
}

// UIConfig controls the terminal UI.
type UIConfig struct {
	NoColor bool `mapstructure:"no_color" yaml:"no_color"`
}

// ThemeConfig selects a color preset and optional per-token overrides.
// Colors may be nested ("text: {primary: ...}") or flat ("text.primary").
type ThemeConfig struct {
	Preset string         `mapstructure:"preset" yaml:"preset"`
	Colors map[string]any `mapstructure:"colors" yaml:"colors,omitempty"`
}

// FlattenedColors turns nested color maps into dotted token keys.
func (t ThemeConfig) FlattenedColors() map[string]string {
	out := make(map[string]string)
	flattenColors("", t.Colors, out)
	return out
}

func flattenColors(prefix string, in map[string]any, out map[string]string) {
	for k, v := range in {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flattenColors(key, val, out)
		case string:
			out[key] = val
		default:
			out[key] = fmt.Sprint(val)
		}
	}
}

// Styles converts the theme section into the styles package's form.
func (t ThemeConfig) Styles() styles.ThemeConfig {
	return styles.ThemeConfig{Preset: t.Preset, Colors: t.FlattenedColors()}
}

// LogConfig controls the debug log file.
type LogConfig struct {
	Path  string `mapstructure:"path" yaml:"path"`
	Level string `mapstructure:"level" yaml:"level"`
}

// Defaults returns the configuration used when no file is present.
func Defaults() Config {
	return Config{
		History: HistoryConfig{
			Path:          DefaultHistoryFile,
			RecordInvalid: true,
			OnLoadError:   OnLoadErrorFail,
		},
		Match: MatchConfig{
			Timeout: 2 * time.Second,
		},
		Form: FormConfig{
			InitialPattern: `\b\w+\b`,
			InitialExample: "This is an example string with several words.",
		},
		Theme: ThemeConfig{
			Preset: styles.DefaultPreset,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// SetDefaults registers every default with v so partial files inherit them.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("history.path", d.History.Path)
	v.SetDefault("history.record_invalid", d.History.RecordInvalid)
	v.SetDefault("history.on_load_error", d.History.OnLoadError)
	v.SetDefault("match.timeout", d.Match.Timeout)
	v.SetDefault("match.ignore_case", d.Match.IgnoreCase)
	v.SetDefault("match.multiline", d.Match.Multiline)
	v.SetDefault("match.singleline", d.Match.Singleline)
	v.SetDefault("match.ecmascript", d.Match.ECMAScript)
	v.SetDefault("form.initial_pattern", d.Form.InitialPattern)
	v.SetDefault("form.initial_example", d.Form.InitialExample)
	v.SetDefault("theme.preset", d.Theme.Preset)
	v.SetDefault("ui.no_color", d.UI.NoColor)
	v.SetDefault("log.path", d.Log.Path)
	v.SetDefault("log.level", d.Log.Level)
}

// Load reads the config file at path (or the first of SearchPaths when path
// is empty) into a Config with defaults applied. A missing file is not an
// error. The returned string is the file actually used, or "".
func Load(v *viper.Viper, path string) (Config, string, error) {
	SetDefaults(v)

	if path == "" {
		path = FindConfigFile()
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, "", fmt.Errorf("reading config %s: %w", path, err)
		}
		log.Debug(log.CatConfig, "Loaded config file", "path", path)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, "", fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, "", err
	}
	return cfg, path, nil
}

// Validate rejects values the rest of the program cannot act on.
func (c Config) Validate() error {
	var errs []error
	switch c.History.OnLoadError {
	case OnLoadErrorFail, OnLoadErrorReset:
	default:
		errs = append(errs, fmt.Errorf("history.on_load_error must be %q or %q, got %q",
			OnLoadErrorFail, OnLoadErrorReset, c.History.OnLoadError))
	}
	if c.History.Path == "" {
		errs = append(errs, errors.New("history.path must not be empty"))
	}
	if c.Match.Timeout < 0 {
		errs = append(errs, fmt.Errorf("match.timeout must not be negative, got %s", c.Match.Timeout))
	}
	if _, ok := styles.Presets[c.Theme.Preset]; !ok {
		errs = append(errs, fmt.Errorf("theme.preset: unknown preset %q", c.Theme.Preset))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	return errors.Join(errs...)
}

// SearchPaths lists the config locations checked when none is given, in order.
func SearchPaths() []string {
	paths := []string{ProjectConfigPath}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "regexlab", "config.yaml"))
	}
	return paths
}

// FindConfigFile returns the first existing entry of SearchPaths, or "".
func FindConfigFile() string {
	for _, p := range SearchPaths() {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// ProjectConfigPath is the project-local config created by `regexlab init`.
var ProjectConfigPath = filepath.Join(".regexlab", "config.yaml")

const configHeader = `# regexlab configuration
#
# history.on_load_error: "fail" refuses to start on a malformed history file,
#   "reset" moves the file aside and starts with an empty history.
# history.record_invalid: also record patterns that fail to compile.
`

// WriteDefaultConfig writes the default configuration as YAML to path,
// creating parent directories.
func WriteDefaultConfig(path string) error {
	data, err := yaml.Marshal(Defaults())
	if err != nil {
		return fmt.Errorf("encoding defaults: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return os.WriteFile(path, append([]byte(configHeader), data...), 0o600)
}
