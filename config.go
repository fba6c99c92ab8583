package columnlens

import (
	"fmt"
	"os"
	"regexp"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// Config represents the columnlens configuration
type Config struct {
	Dialect DialectConfig `yaml:"dialect"`
	Catalog CatalogConfig `yaml:"catalog"`
	Report  ReportConfig  `yaml:"report"`
}

// DialectConfig extends the built-in SQL dialect used for expression
// extraction. Names are merged into the default sets, they do not replace them.
type DialectConfig struct {
	Functions []string `yaml:"functions"`
	Keywords  []string `yaml:"keywords"`
}

// CatalogConfig defines how partially qualified table names are completed
// when generating system catalog queries.
type CatalogConfig struct {
	DefaultCatalog string `yaml:"default_catalog"`
	DefaultSchema  string `yaml:"default_schema"`
}

// ReportConfig represents artifact generation settings
type ReportConfig struct {
	OutputDir string `yaml:"output_dir"`
	Format    string `yaml:"format"`
}

// DefaultConfig returns a configuration with all defaults applied
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			DefaultCatalog: "hive_metastore",
			DefaultSchema:  "default",
		},
		Report: ReportConfig{
			OutputDir: "./output",
			Format:    "sql",
		},
	}
}

// LoadConfig loads configuration from the given path. A missing file is not
// an error: defaults are returned so the tool works without any setup.
func LoadConfig(configPath string) (*Config, error) {
	if err := loadEnvFiles(); err != nil {
		return nil, err
	}

	config := DefaultConfig()

	if configPath == "" {
		configPath = "columnlens.yaml"
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}

		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	applyDefaults(config)
	expandConfigEnvVars(config)

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// applyDefaults fills in zero values left by partial configuration files
func applyDefaults(config *Config) {
	if config.Catalog.DefaultCatalog == "" {
		config.Catalog.DefaultCatalog = "hive_metastore"
	}

	if config.Catalog.DefaultSchema == "" {
		config.Catalog.DefaultSchema = "default"
	}

	if config.Report.OutputDir == "" {
		config.Report.OutputDir = "./output"
	}

	if config.Report.Format == "" {
		config.Report.Format = "sql"
	}
}

// validateConfig checks settings that would otherwise fail deep inside a run
func validateConfig(config *Config) error {
	switch config.Report.Format {
	case "sql", "python", "both":
	default:
		return fmt.Errorf("%w: report.format must be sql, python, or both (got %q)", ErrConfigValidation, config.Report.Format)
	}

	return nil
}

// loadEnvFiles loads .env files if they exist
func loadEnvFiles() error {
	if fileExists(".env") {
		err := godotenv.Load(".env")
		if err != nil {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	return nil
}

var (
	bracedVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)
	bareVarPattern   = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
)

// expandEnvVars expands environment variables in the format ${VAR} or $VAR
func expandEnvVars(s string) string {
	s = bracedVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[2 : len(match)-1])
	})

	s = bareVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[1:])
	})

	return s
}

// expandConfigEnvVars expands environment variables in config string values
func expandConfigEnvVars(config *Config) {
	config.Catalog.DefaultCatalog = expandEnvVars(config.Catalog.DefaultCatalog)
	config.Catalog.DefaultSchema = expandEnvVars(config.Catalog.DefaultSchema)
	config.Report.OutputDir = expandEnvVars(config.Report.OutputDir)
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
