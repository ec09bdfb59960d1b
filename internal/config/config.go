package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/willibrandon/tedit/internal/ui/styles"
)

// Config represents the root configuration structure
type Config struct {
	Editor  EditorConfig  `mapstructure:"editor" yaml:"editor"`
	Dialogs DialogsConfig `mapstructure:"dialogs" yaml:"dialogs"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
	Debug   bool          `mapstructure:"debug" yaml:"debug"`
}

// EditorConfig holds editing preferences
type EditorConfig struct {
	// DefaultFile is loaded at startup when no file is given on the command
	// line.
	DefaultFile    string `mapstructure:"default_file" yaml:"default_file"`
	Theme          string `mapstructure:"theme" yaml:"theme"`
	DefaultGrammar string `mapstructure:"default_grammar" yaml:"default_grammar"`
	TabWidth       int    `mapstructure:"tab_width" yaml:"tab_width"`
	LineNumbers    bool   `mapstructure:"line_numbers" yaml:"line_numbers"`
}

// DialogsConfig selects how files are chosen
type DialogsConfig struct {
	Native   bool   `mapstructure:"native" yaml:"native"`
	StartDir string `mapstructure:"start_dir" yaml:"start_dir"`
}

// LogConfig holds log file settings
type LogConfig struct {
	File  string `mapstructure:"file" yaml:"file"`
	Level string `mapstructure:"level" yaml:"level"`
}

// NewViper returns a viper instance set up with the config search paths,
// environment binding and defaults. Callers may bind flags to it before
// calling LoadConfig.
func NewViper() *viper.Viper {
	v := viper.New()

	// Set config file details
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.config/tedit")
	v.AddConfigPath(".")

	// Environment variable support
	v.AutomaticEnv()
	v.SetEnvPrefix("TEDIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	applyDefaults(v)
	return v
}

// LoadConfig loads configuration from the YAML file and environment
// variables. A non-empty configFile replaces the search paths; a missing
// file in the search paths is not an error.
func LoadConfig(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := ValidateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// ValidateConfig validates the configuration values
func ValidateConfig(cfg *Config) error {
	if _, err := styles.ParseTheme(cfg.Editor.Theme); err != nil {
		return fmt.Errorf("editor.theme: %w", err)
	}

	if cfg.Editor.TabWidth < 1 || cfg.Editor.TabWidth > 16 {
		return fmt.Errorf("editor.tab_width must be between 1 and 16, got %d", cfg.Editor.TabWidth)
	}

	if cfg.Editor.DefaultGrammar == "" {
		return fmt.Errorf("editor.default_grammar cannot be empty")
	}

	if _, err := ParseLevel(cfg.Log.Level); err != nil {
		return err
	}

	return nil
}

// ParseLevel converts a log.level value to a slog level.
func ParseLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return 0, fmt.Errorf("log.level must be one of: [debug info warn error], got %q", level)
	}
	return l, nil
}

// Theme returns the validated editor theme.
func (c *Config) Theme() styles.Theme {
	t, err := styles.ParseTheme(c.Editor.Theme)
	if err != nil {
		return styles.DefaultTheme
	}
	return t
}

// YAML renders the effective configuration.
func (c *Config) YAML() (string, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("error marshaling config: %w", err)
	}
	return string(out), nil
}

// applyDefaults sets default configuration values
func applyDefaults(v *viper.Viper) {
	// Editor defaults
	v.SetDefault("editor.default_file", "main.go")
	v.SetDefault("editor.theme", styles.DefaultTheme.String())
	v.SetDefault("editor.default_grammar", "go")
	v.SetDefault("editor.tab_width", 4)
	v.SetDefault("editor.line_numbers", true)

	// Dialog defaults
	v.SetDefault("dialogs.native", false)
	v.SetDefault("dialogs.start_dir", ".")

	// Log defaults; an empty file means the default location.
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")

	// Debug default
	v.SetDefault("debug", false)
}
