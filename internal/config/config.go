package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Paths   PathsConfig   `yaml:"paths" envconfig:"PATHS"`
	Export  ExportConfig  `yaml:"export" envconfig:"EXPORT"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL"`
	Output   string `yaml:"output" envconfig:"OUTPUT"` // console, file or both
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// PathsConfig contains file system paths configuration
type PathsConfig struct {
	InputDir   string `yaml:"input_dir" envconfig:"INPUT_DIR"`
	ReportsDir string `yaml:"reports_dir" envconfig:"REPORTS_DIR"`
	LogsDir    string `yaml:"logs_dir" envconfig:"LOGS_DIR"`
}

// ExportConfig contains export encoder configuration
type ExportConfig struct {
	WorkbookName string `yaml:"workbook_name" envconfig:"WORKBOOK_NAME"`
	WriteCSV     bool   `yaml:"write_csv" envconfig:"WRITE_CSV"`
}

// Default returns the built-in configuration values.
func Default() Config {
	return Config{
		Logging: LoggingConfig{
			Level:    "info",
			Output:   "console",
			FilePath: "logs/timegap.log",
		},
		Paths: PathsConfig{
			InputDir:   "data",
			ReportsDir: "reports",
			LogsDir:    "logs",
		},
		Export: ExportConfig{
			WorkbookName: "time_gap_summary.xlsx",
			WriteCSV:     false,
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file and
// TIMEGAP_* environment variables, in that order of precedence (env wins).
func Load() (*Config, error) {
	cfg := Default()

	if configFile := configFilePath(); configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			if err := loadFromFile(configFile, &cfg); err != nil {
				return nil, fmt.Errorf("failed to load config from file: %w", err)
			}
		}
	}

	if err := envconfig.Process("TIMEGAP", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration for values the pipeline cannot run with.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid logging level: %q", c.Logging.Level)
	}

	switch c.Logging.Output {
	case "console", "file", "both":
	default:
		return fmt.Errorf("invalid logging output: %q", c.Logging.Output)
	}

	if c.Export.WorkbookName == "" {
		return fmt.Errorf("export workbook name must not be empty")
	}
	if filepath.Ext(c.Export.WorkbookName) != ".xlsx" {
		return fmt.Errorf("export workbook name must end in .xlsx, got %q", c.Export.WorkbookName)
	}

	return nil
}

// WorkbookPath returns the full path of the exported summary workbook.
func (c *Config) WorkbookPath() string {
	return filepath.Join(c.Paths.ReportsDir, c.Export.WorkbookName)
}

// configFilePath returns the config file location, overridable via
// TIMEGAP_CONFIG_FILE.
func configFilePath() string {
	if p := os.Getenv("TIMEGAP_CONFIG_FILE"); p != "" {
		return p
	}
	return "config.yaml"
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}
