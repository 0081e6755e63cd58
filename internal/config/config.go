// Package config loads the filenamify CLI settings.
//
// Settings are resolved in this order, later sources winning:
//
//   - built-in defaults (replacement "!", max_length 100)
//   - a TOML file: the --config path, or ~/.config/filenamify/config.toml if it exists
//   - FILENAMIFY_* environment variables
//
// Command line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/tragoedia0722/filenamify/pkg/filenamify"
)

const (
	envPrefix         = "FILENAMIFY"
	defaultConfigPath = "~/.config/filenamify/config.toml"
)

// Config holds the CLI settings.
type Config struct {
	Replacement string `mapstructure:"replacement" toml:"replacement"`
	MaxLength   int    `mapstructure:"max_length" toml:"max_length" validate:"gte=0"`
	Verbose     bool   `mapstructure:"verbose" toml:"verbose"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Default returns the built-in settings.
func Default() Config {
	opts := filenamify.DefaultOptions()
	return Config{
		Replacement: opts.Replacement,
		MaxLength:   opts.MaxLength,
	}
}

// DefaultConfigPath returns the expanded location of the optional config file.
func DefaultConfigPath() (string, error) {
	return homedir.Expand(defaultConfigPath)
}

// Load reads the configuration. An explicit path must exist; when path is
// empty the default location is used only if a file is present there.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("replacement", def.Replacement)
	v.SetDefault("max_length", def.MaxLength)
	v.SetDefault("verbose", def.Verbose)

	file, err := resolvePath(path)
	if err != nil {
		return nil, err
	}
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, &Error{Field: "file", Value: file, Err: err}
		}
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func resolvePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path != "" {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return "", &Error{Field: "file", Value: path, Err: err}
		}
		return expanded, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		// No home directory: nothing to load.
		return "", nil
	}
	if _, err := os.Stat(defaultPath); err != nil {
		return "", nil
	}
	return defaultPath, nil
}

// Validate checks the settings.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return &Error{Field: fe.Field(), Value: fe.Value(), Err: fmt.Errorf("must satisfy %s=%s", fe.Tag(), fe.Param())}
		}
		return fmt.Errorf("validate config: %w", err)
	}

	if err := filenamify.ValidateReplacement(c.Replacement); err != nil {
		return &Error{Field: "replacement", Value: c.Replacement, Err: err}
	}

	return nil
}

// Options converts the settings into sanitizer options.
func (c *Config) Options() filenamify.Options {
	return filenamify.Options{
		Replacement: c.Replacement,
		MaxLength:   c.MaxLength,
	}
}

// Encode writes the settings as TOML.
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
