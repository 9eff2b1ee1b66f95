// Package config provides configuration loading and management using Viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/alexbrand/livingdoc/internal/testresults"
)

// Config represents the top-level configuration structure.
type Config struct {
	Version  int      `mapstructure:"version" json:"version" yaml:"version"`
	Title    string   `mapstructure:"title" json:"title" yaml:"title"`
	Features Features `mapstructure:"features" json:"features" yaml:"features"`
	Output   Output   `mapstructure:"output" json:"output" yaml:"output"`
	Results  Results  `mapstructure:"results" json:"results" yaml:"results"`
	Log      Log      `mapstructure:"log" json:"log" yaml:"log"`
}

// Features locates the .feature files to document.
type Features struct {
	Dir string `mapstructure:"dir" json:"dir" yaml:"dir"`
}

// Output controls where the document is written and how the run summary is
// printed.
type Output struct {
	Path   string `mapstructure:"path" json:"path" yaml:"path"`
	Format string `mapstructure:"format" json:"format" yaml:"format"`
}

// Results selects the test result provider and its input files.
type Results struct {
	Format string   `mapstructure:"format" json:"format" yaml:"format"`
	Files  []string `mapstructure:"files" json:"files,omitempty" yaml:"files,omitempty"`
}

// Log configures the slog handler.
type Log struct {
	Level  string `mapstructure:"level" json:"level" yaml:"level"`
	Format string `mapstructure:"format" json:"format" yaml:"format"`
}

// EnvPrefix prefixes environment overrides, e.g. LIVINGDOC_OUTPUT_PATH.
const EnvPrefix = "LIVINGDOC"

var (
	cfg *Config
	v   *viper.Viper
)

// configDir returns the configuration directory path.
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "livingdoc"), nil
}

// Init initializes the configuration system.
// Config files are searched in the following order:
// 1. Explicit path via cfgPath parameter (--config flag)
// 2. Project-local: .livingdoc/config.yaml (current directory)
// 3. User global: ~/.config/livingdoc/config.yaml
func Init(cfgPath string) error {
	v = viper.New()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(".livingdoc")
		configPath, err := configDir()
		if err != nil {
			return err
		}
		v.AddConfigPath(configPath)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetDefault("version", 1)
	v.SetDefault("title", "Living Documentation")
	v.SetDefault("features.dir", "features")
	v.SetDefault("output.path", "docs.html")
	v.SetDefault("output.format", "table")
	v.SetDefault("results.format", "none")
	v.SetDefault("results.files", []string{})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is OK - we'll use defaults
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return err
	}

	cfg = c
	return nil
}

// Get returns the current configuration.
// Returns nil if Init has not been called.
func Get() *Config {
	return cfg
}

// Validate checks that the configured results format is known.
func (c *Config) Validate() error {
	if !testresults.IsRegistered(c.Results.Format) {
		return fmt.Errorf("unknown results format %q (valid: %s)",
			c.Results.Format, strings.Join(testresults.List(), ", "))
	}
	return nil
}

// ConfigFilePath returns the path to the config file being used.
func ConfigFilePath() string {
	if v == nil {
		return ""
	}
	return v.ConfigFileUsed()
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}
