// ABOUTME: Configuration for the ordermart ETL pipeline.
// ABOUTME: Loaded from an optional YAML file via viper, overridden by CLI flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for an ordermart run. No path is ever
// hardcoded in component logic; everything flows from here.
type Config struct {
	// InputDir is where the source CSV files are expected.
	InputDir string `mapstructure:"input_dir"`

	// RawDir receives cleaned CSV copies and the raw-layer SQL artifacts.
	RawDir string `mapstructure:"raw_dir"`

	// SilverDir receives the transform-layer SQL artifacts.
	SilverDir string `mapstructure:"silver_dir"`

	// GoldDir receives the summary-layer SQL artifacts.
	GoldDir string `mapstructure:"gold_dir"`

	// OutputDir receives the exported result CSVs.
	OutputDir string `mapstructure:"output_dir"`

	// DBPath is the location of the embedded SQLite database file.
	DBPath string `mapstructure:"db_path"`

	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`
}

// DefaultConfig returns a Config with default values, mirroring the
// conventional input/raw/silver/gold/output layout.
func DefaultConfig() *Config {
	return &Config{
		InputDir:  "input",
		RawDir:    "raw",
		SilverDir: "silver",
		GoldDir:   "gold",
		OutputDir: "output",
		DBPath:    "etl_pipeline.db",
		LogLevel:  "info",
	}
}

// Load reads configuration from config files.
// Config file locations (in order of precedence):
// 1. Path specified by configFile parameter
// 2. ./ordermart.yaml
// 3. ~/.config/ordermart/config.yaml
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("ordermart")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "ordermart"))
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	// Missing config file is fine; defaults apply.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("input_dir is required")
	}
	if c.RawDir == "" {
		return fmt.Errorf("raw_dir is required")
	}
	if c.SilverDir == "" {
		return fmt.Errorf("silver_dir is required")
	}
	if c.GoldDir == "" {
		return fmt.Errorf("gold_dir is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if c.DBPath == "" {
		return fmt.Errorf("db_path is required")
	}
	return nil
}

// InputPath returns the source CSV path for a logical staging dataset.
func (c *Config) InputPath(name string) string {
	return filepath.Join(c.InputDir, name+".csv")
}

// CleanedPath returns the cleaned CSV copy path for a logical staging dataset.
func (c *Config) CleanedPath(name string) string {
	return filepath.Join(c.RawDir, name+"_cleaned.csv")
}

// OutputPath returns the exported CSV path for a logical result set.
func (c *Config) OutputPath(name string) string {
	return filepath.Join(c.OutputDir, name+".csv")
}

// RawSQLDir returns the directory for raw-layer SQL artifacts.
func (c *Config) RawSQLDir() string {
	return filepath.Join(c.RawDir, "sql")
}

// SilverSQLDir returns the directory for silver-layer SQL artifacts.
func (c *Config) SilverSQLDir() string {
	return filepath.Join(c.SilverDir, "sql")
}

// GoldSQLDir returns the directory for gold-layer SQL artifacts.
func (c *Config) GoldSQLDir() string {
	return filepath.Join(c.GoldDir, "sql")
}

// Dirs lists every directory the pipeline writes into.
func (c *Config) Dirs() []string {
	return []string{
		c.InputDir,
		c.RawDir,
		c.RawSQLDir(),
		c.SilverSQLDir(),
		c.GoldSQLDir(),
		c.OutputDir,
	}
}

// EnsureDirs creates the full directory layout.
func (c *Config) EnsureDirs() error {
	for _, dir := range c.Dirs() {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}
