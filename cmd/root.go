// =============================================================================
// glue_sql to JSON Converter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands (like 'convert', 'version') are
// attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (glueconv)
//   ├── convertCmd (glueconv convert)
//   └── versionCmd (glueconv version)
//
// CONFIGURATION:
//   The root command is responsible for:
//   1. Setting up global flags (--config, --verbose)
//   2. Printing usage when invoked without a command (and failing, so that
//      an argument-less invocation exits non-zero)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the optional configuration file.
// Empty means fully argument-driven defaults.
var cfgFile string

// verbose enables verbose output when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "glueconv",

	Short: "glue_sql to JSON Converter - Transform XML query maps to normalized JSON",

	Long: `glue_sql to JSON Converter is a CLI tool that transforms XML-formatted
SQL query-map documents (*.glue_sql, *.xml) into a normalized JSON
representation keyed by module code and query identifier.

Key Features:
  - Single-file and directory (batch) conversion modes
  - Per-file error isolation: one malformed file never aborts a batch
  - Error payloads written as JSON artifacts, so every input yields an output
  - Optional XLSX batch summary report and input archival

Example Usage:
  glueconv convert B47SA508.glue_sql              # Output next to the input
  glueconv convert B47SA508.glue_sql out.json     # Explicit output path
  glueconv convert ./data                         # Convert a whole directory`,

	// Invoked without a subcommand there is nothing to do: print the help
	// text and report failure so the exit status is non-zero.
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.Help()
		return fmt.Errorf("no command specified")
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen
// once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the global flags.
func init() {
	// --config flag: path to an optional YAML configuration file. With no
	// config file all behavior is determined by the CLI arguments.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"Path to an optional configuration file",
	)

	// --verbose flag: enables verbose output.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output",
	)
}
