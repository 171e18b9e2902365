package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/mmcdole/showcraft/internal/domain"
)

// Backend selects where a finished series goes on submit
type Backend string

const (
	BackendEcho Backend = "echo" // Report the record back, store nothing
	BackendBolt Backend = "bolt" // Save into the local catalog
	BackendFile Backend = "file" // Export as a JSON file
)

// Config holds all application configuration
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	Submit  SubmitConfig  `mapstructure:"submit"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// CatalogConfig holds finalize backend configuration
type CatalogConfig struct {
	Backend   Backend `mapstructure:"backend"`
	Path      string  `mapstructure:"path"`       // Directory for the bolt catalog
	ExportDir string  `mapstructure:"export_dir"` // Directory for JSON exports
}

// SubmitConfig holds submission settings
type SubmitConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// UIConfig holds UI configuration
type UIConfig struct {
	Genres []string `mapstructure:"genres"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Backend:   BackendEcho,
			Path:      defaultDataPath("catalog"),
			ExportDir: defaultDataPath("exports"),
		},
		Submit: SubmitConfig{
			Timeout: 30 * time.Second,
		},
		UI: UIConfig{
			Genres: append([]string(nil), domain.DefaultGenres...),
		},
		Logging: LoggingConfig{
			File:  defaultDataPath("showcraft.log"),
			Level: "INFO",
		},
	}
}

// defaultDataPath returns a path under the per-user data directory
func defaultDataPath(name string) string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "showcraft", name)
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "showcraft", name)
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "showcraft")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "showcraft")
	}
}

// LoadConfig loads configuration from file and environment.
// An empty path searches the default config directory and the working directory.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultConfigPath())
		v.AddConfigPath(".")
	}

	// Environment variable overrides (SHOWCRAFT_CATALOG_BACKEND, ...)
	v.SetEnvPrefix("SHOWCRAFT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, DefaultConfig())

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override it
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("catalog.backend", string(cfg.Catalog.Backend))
	v.SetDefault("catalog.path", cfg.Catalog.Path)
	v.SetDefault("catalog.export_dir", cfg.Catalog.ExportDir)
	v.SetDefault("submit.timeout", cfg.Submit.Timeout)
	v.SetDefault("ui.genres", cfg.UI.Genres)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)
}

// Validate checks settings that would otherwise fail later at submit time
func (c *Config) Validate() error {
	switch c.Catalog.Backend {
	case BackendEcho, BackendBolt, BackendFile:
	default:
		return fmt.Errorf("unknown catalog backend %q (want echo, bolt or file)", c.Catalog.Backend)
	}
	if c.Submit.Timeout <= 0 {
		return fmt.Errorf("submit timeout must be positive, got %s", c.Submit.Timeout)
	}
	if len(c.UI.Genres) == 0 {
		return errors.New("ui.genres must list at least one genre")
	}
	return nil
}

// SaveConfig writes cfg to the default config location
func SaveConfig(cfg *Config) error {
	configPath := defaultConfigPath()

	// Ensure config directory exists
	if err := os.MkdirAll(configPath, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configFile := filepath.Join(configPath, "config.yaml")
	return writeConfig(cfg, configFile)
}

func writeConfig(cfg *Config, configFile string) error {
	v := viper.New()

	// Set fields individually to ensure correct key names (snake_case)
	v.Set("catalog.backend", string(cfg.Catalog.Backend))
	v.Set("catalog.path", cfg.Catalog.Path)
	v.Set("catalog.export_dir", cfg.Catalog.ExportDir)
	v.Set("submit.timeout", cfg.Submit.Timeout.String())
	v.Set("ui.genres", cfg.UI.Genres)
	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)

	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
