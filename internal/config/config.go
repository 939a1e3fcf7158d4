package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/dotcommander/physioscore/internal/intake"
)

// Config represents the physioscore configuration
type Config struct {
	Root           string `mapstructure:"root" json:"root"`
	FollowSymlinks bool   `mapstructure:"follow_symlinks" json:"follow_symlinks"`
	Format         string `mapstructure:"format" json:"format"`
	Output         string `mapstructure:"output" json:"output,omitempty"`
	Quiet          bool   `mapstructure:"quiet" json:"quiet"`
	Verbose        bool   `mapstructure:"verbose" json:"verbose"`
	ShowScores     bool   `mapstructure:"show_scores" json:"show_scores"`
	Policy         string `mapstructure:"policy" json:"policy"`
	DBPath         string `mapstructure:"db_path" json:"db_path"`
	Author         string `mapstructure:"author" json:"author,omitempty"`

	LogConfig `mapstructure:",squash"`
}

// LogConfig controls the optional rotating log file.
type LogConfig struct {
	File       string `mapstructure:"log_file" json:"log_file,omitempty"`
	MaxSizeMB  int    `mapstructure:"log_max_size_mb" json:"log_max_size_mb"`
	MaxBackups int    `mapstructure:"log_max_backups" json:"log_max_backups"`
	MaxAgeDays int    `mapstructure:"log_max_age_days" json:"log_max_age_days"`
	Compress   bool   `mapstructure:"log_compress" json:"log_compress"`
}

// ConfigFileNames are searched, in order, in the root directory.
var ConfigFileNames = []string{".physioscorerc.json", ".physioscorerc.yaml", ".physioscorerc.yml"}

// LoadConfig loads configuration from defaults, an optional rc file in
// rootPath (or the working directory) and PHYSIOSCORE_* environment variables.
func LoadConfig(rootPath string) (*Config, error) {
	viper.SetDefault("root", ".")
	viper.SetDefault("follow_symlinks", false)
	viper.SetDefault("format", "console")
	viper.SetDefault("output", "")
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("show_scores", true)
	viper.SetDefault("policy", string(intake.PolicyReject))
	viper.SetDefault("db_path", "physioscore.db")
	viper.SetDefault("author", "")
	viper.SetDefault("log_file", "")
	viper.SetDefault("log_max_size_mb", 10)
	viper.SetDefault("log_max_backups", 3)
	viper.SetDefault("log_max_age_days", 28)
	viper.SetDefault("log_compress", false)

	dir := rootPath
	if dir == "" {
		dir = "."
	}
	for _, name := range ConfigFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading %s: %w", path, err)
		}
		break
	}

	viper.SetEnvPrefix("PHYSIOSCORE")
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if rootPath != "" {
		config.Root = rootPath
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	switch config.Format {
	case "console", "json", "markdown":
	default:
		return fmt.Errorf("invalid format: %s. Must be 'console', 'json', or 'markdown'", config.Format)
	}

	if _, err := intake.ParsePolicy(config.Policy); err != nil {
		return err
	}

	if config.DBPath == "" {
		return fmt.Errorf("db_path must not be empty")
	}

	if config.Quiet && config.Verbose {
		return fmt.Errorf("quiet and verbose are mutually exclusive")
	}

	if config.MaxSizeMB < 0 || config.MaxBackups < 0 || config.MaxAgeDays < 0 {
		return fmt.Errorf("log rotation limits must not be negative")
	}

	return nil
}

// SaveConfig saves the current configuration to a file
func SaveConfig(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	jsonData, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(path, jsonData, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}
