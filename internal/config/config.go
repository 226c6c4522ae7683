// =============================================================================
// glue_sql to JSON Converter - Configuration Module
// =============================================================================
//
// This module loads the optional application configuration. The converter is
// fully argument-driven by default: with no config file every behavior is
// determined by the CLI arguments, and all config values below have defaults
// that reproduce that behavior exactly.
//
// CONFIGURATION FILE (YAML):
//   file_patterns:      glob patterns matched in directory mode
//   output_dir:         directory for derived output files ("" = alongside
//                       the input file)
//   archive_on_success: move converted inputs into archive_dir
//   archive_dir:        archive directory ("" = <input dir>/archive)
//   report_path:        XLSX batch report path ("" = no report)
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// MAIN CONFIGURATION STRUCTURE
// =============================================================================

// MainConfig holds the application configuration.
type MainConfig struct {
	// FilePatterns is the list of glob patterns used to discover query-map
	// files in directory mode.
	// Default: ["*.glue_sql", "*.xml"]
	FilePatterns []string `yaml:"file_patterns"`

	// OutputDir is the directory where derived output files are placed.
	// Empty means each output file is written alongside its input file,
	// which is the historical behavior.
	OutputDir string `yaml:"output_dir"`

	// ArchiveOnSuccess moves successfully converted input files to the
	// archive directory after a directory-mode run.
	// Default: false
	ArchiveOnSuccess bool `yaml:"archive_on_success"`

	// ArchiveDir is the directory for archived input files. Empty means an
	// "archive" subdirectory of the input directory.
	ArchiveDir string `yaml:"archive_dir"`

	// ReportPath is the path of the XLSX batch summary report. Empty
	// disables the report.
	ReportPath string `yaml:"report_path"`
}

// Default returns the configuration used when no config file is given.
// It reproduces the purely argument-driven behavior.
func Default() *MainConfig {
	cfg := &MainConfig{}
	applyDefaults(cfg)
	return cfg
}

// =============================================================================
// CONFIGURATION LOADING
// =============================================================================

// Load reads the configuration from a YAML file. An empty path yields the
// defaults without touching the filesystem.
func Load(path string) (*MainConfig, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg MainConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *MainConfig) {
	if len(cfg.FilePatterns) == 0 {
		cfg.FilePatterns = []string{"*.glue_sql", "*.xml"}
	}
}

// validate checks the loaded configuration. An explicitly configured output
// directory is created up front so a long batch cannot fail on its last
// step.
func validate(cfg *MainConfig) error {
	if cfg.OutputDir != "" {
		if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", cfg.OutputDir, err)
		}
	}
	return nil
}
