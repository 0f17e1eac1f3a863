// Package config loads checker settings from the project file, the
// environment and defaults, in increasing order of precedence from defaults
// up. Command-line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/abiiranathan/localize-usage/analyzer/validator"
)

// File names searched for when walking up from the working directory. In
// one directory the TOML file wins.
const (
	TOMLFileName = ".localize-usage.toml"
	YAMLFileName = ".localize-usage.yaml"
)

var (
	// ErrInvalidSeverity is returned for a rule severity that is not error, warn or off.
	ErrInvalidSeverity = errors.New("invalid severity")
	// ErrUnknownRule is returned for a rule id the checker does not define.
	ErrUnknownRule = errors.New("unknown rule")
	// ErrEmptyFunctions is returned when no localize function name is configured.
	ErrEmptyFunctions = errors.New("at least one function name is required")
	// ErrUnknownKey is returned for a project file key the checker does not read.
	ErrUnknownKey = errors.New("unknown key")
	// ErrUnsupportedFormat is returned for a config path that is neither TOML nor YAML.
	ErrUnsupportedFormat = errors.New("unsupported config format")
)

// Config is the merged checker configuration.
type Config struct {
	Functions       []string          `toml:"functions" yaml:"functions" env:"LOCALIZE_USAGE_FUNCTIONS" envSeparator:","`
	Component       string            `toml:"component" yaml:"component" env:"LOCALIZE_USAGE_COMPONENT"`
	TextAttribute   string            `toml:"text_attribute" yaml:"text_attribute"`
	ValuesAttribute string            `toml:"values_attribute" yaml:"values_attribute"`
	GoTextField     string            `toml:"go_text_field" yaml:"go_text_field"`
	GoValuesField   string            `toml:"go_values_field" yaml:"go_values_field"`
	ExtraProperties bool              `toml:"extra_properties" yaml:"extra_properties" env:"LOCALIZE_USAGE_EXTRA_PROPERTIES"`
	Locale          string            `toml:"locale" yaml:"locale" env:"LOCALIZE_USAGE_LOCALE"`
	Jobs            int               `toml:"jobs" yaml:"jobs" env:"LOCALIZE_USAGE_JOBS"`
	Rules           map[string]string `toml:"rules" yaml:"rules"`

	// Path is the project file the values came from; empty for defaults.
	Path string `toml:"-" yaml:"-"`
}

// Default returns the recommended configuration.
func Default() Config {
	d := validator.DefaultConfig
	return Config{
		Functions:       append([]string(nil), d.FunctionNames...),
		Component:       d.ComponentName,
		TextAttribute:   d.TextAttribute,
		ValuesAttribute: d.ValuesAttribute,
		GoTextField:     d.GoTextField,
		GoValuesField:   d.GoValuesField,
		Locale:          "en-US",
	}
}

// Load resolves the configuration for a run started in startDir. An
// explicit path skips discovery; otherwise the nearest project file found
// walking up is used, and defaults apply when there is none. Environment
// overrides are applied last and the result is validated.
func Load(startDir, explicitPath string) (Config, error) {
	path := explicitPath
	if path == "" {
		found, ok, err := Find(startDir)
		if err != nil {
			return Config{}, err
		}
		if ok {
			path = found
		}
	}

	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = LoadFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadFile decodes the project file at path over the defaults. The decoder
// is picked from the file extension.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = decodeTOML(path, &cfg)
	case ".yaml", ".yml":
		err = decodeYAML(path, &cfg)
	default:
		err = fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
	if err != nil {
		return Config{}, err
	}

	cfg.Path = path
	return cfg, nil
}

// Validate checks names, rule ids and severities.
func (c Config) Validate() error {
	if len(c.functionNames()) == 0 {
		return ErrEmptyFunctions
	}
	if c.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative, got %d", c.Jobs)
	}
	_, err := c.severities()
	return err
}

// AnalysisConfig converts c into the validator configuration.
func (c Config) AnalysisConfig() (validator.AnalysisConfig, error) {
	if err := c.Validate(); err != nil {
		return validator.AnalysisConfig{}, err
	}

	rules, _ := c.severities()
	return validator.AnalysisConfig{
		FunctionNames:   c.functionNames(),
		ComponentName:   c.Component,
		TextAttribute:   c.TextAttribute,
		ValuesAttribute: c.ValuesAttribute,
		GoTextField:     c.GoTextField,
		GoValuesField:   c.GoValuesField,
		ExtraProperties: c.ExtraProperties,
		Rules:           rules,
	}, nil
}

func (c Config) functionNames() []string {
	var names []string
	for _, fn := range c.Functions {
		if fn = strings.TrimSpace(fn); fn != "" {
			names = append(names, fn)
		}
	}
	return names
}

func (c Config) severities() (map[string]validator.Severity, error) {
	if len(c.Rules) == 0 {
		return nil, nil
	}

	out := make(map[string]validator.Severity, len(c.Rules))
	for id, raw := range c.Rules {
		if _, ok := validator.LookupRule(id); !ok {
			return nil, fmt.Errorf("rules: %w %q", ErrUnknownRule, id)
		}
		sev, err := validator.ParseSeverity(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("rules.%s: %w %q", id, ErrInvalidSeverity, raw)
		}
		out[id] = sev
	}
	return out, nil
}
