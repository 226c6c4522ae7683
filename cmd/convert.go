// =============================================================================
// glue_sql to JSON Converter - Convert Command
// =============================================================================
//
// This file defines the 'convert' command, the batch driver of the
// application. It resolves the positional arguments into one of three modes:
//
//   Directory mode   : the input path is an existing directory. Every
//                      *.glue_sql / *.xml file directly inside it is
//                      converted independently with a derived output path
//                      (a second argument is ignored in this mode).
//   Single-file mode : the input path is an existing regular file. An
//                      optional second argument names the output path.
//   Invalid path     : anything else is reported and the command fails.
//
// PROCESSING PIPELINE (directory mode):
//   1. Load the optional configuration
//   2. Discover query-map files in the input directory
//   3. For each file, sequentially:
//      a. Parse the XML query map
//      b. Write the JSON output (error payloads included)
//      c. Archive the input on success (opt-in)
//   4. Print a success/failure summary
//   5. Write the XLSX batch report (opt-in)
//
// Files are processed strictly sequentially; a failure on one file is
// counted, not propagated, and the final exit status reflects whether any
// file failed.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ginjaninja78/XML-to-JSON-conversion/internal/config"
	"github.com/ginjaninja78/XML-to-JSON-conversion/internal/converter"
	"github.com/ginjaninja78/XML-to-JSON-conversion/internal/report"
	"github.com/ginjaninja78/XML-to-JSON-conversion/pkg/utils"
	"github.com/spf13/cobra"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// reportPath is the destination of the XLSX batch summary report.
// Empty disables the report.
var reportPath string

// archiveInputs moves successfully converted inputs to the archive
// directory (directory mode only).
var archiveInputs bool

// =============================================================================
// CONVERT COMMAND DEFINITION
// =============================================================================

// convertCmd represents the 'convert' command.
var convertCmd = &cobra.Command{
	Use:   "convert <file|directory> [output.json]",
	Short: "Convert query-map XML files to JSON",
	Long: `The convert command transforms XML query-map documents into normalized
JSON keyed by module code and query identifier.

Given a file, it converts that one file; the optional second argument names
the output path, which otherwise defaults to the input path with a .json
extension.

Given a directory, it converts every *.glue_sql and *.xml file directly
inside it (non-recursive), always deriving the output paths. Each file is
processed independently: a malformed document produces a JSON error payload
as its output artifact and is counted as a failure, but the batch continues.
The exit status is non-zero if any file failed.`,

	Args: cobra.RangeArgs(1, 2),

	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(args)
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the convert command with the root command and sets up flags.
func init() {
	rootCmd.AddCommand(convertCmd)

	// --report flag: write an XLSX summary of a directory-mode batch.
	convertCmd.Flags().StringVar(
		&reportPath,
		"report",
		"",
		"Write an XLSX batch summary report to this path (directory mode)",
	)

	// --archive flag: move converted inputs to the archive directory.
	convertCmd.Flags().BoolVar(
		&archiveInputs,
		"archive",
		false,
		"Move successfully converted inputs to the archive directory (directory mode)",
	)
}

// =============================================================================
// MAIN DRIVER FUNCTION
// =============================================================================

// runConvert resolves the input path into a conversion mode and runs it.
func runConvert(args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	// Flags override the configuration file.
	if reportPath != "" {
		cfg.ReportPath = reportPath
	}
	if archiveInputs {
		cfg.ArchiveOnSuccess = true
	}

	input := args[0]

	switch {
	case utils.IsDir(input):
		return convertDirectory(input, cfg)

	case utils.IsRegularFile(input):
		output := ""
		if len(args) > 1 {
			output = args[1]
		}
		if !converter.ConvertFile(input, output, cfg) {
			return fmt.Errorf("conversion failed for %s", input)
		}
		return nil

	default:
		return fmt.Errorf("'%s' is not a valid file or directory", input)
	}
}

// =============================================================================
// DIRECTORY MODE
// =============================================================================

// convertDirectory converts every matching file in the directory, tallies
// successes and failures, prints a summary, and fails if any file failed.
func convertDirectory(dir string, cfg *config.MainConfig) error {
	files, err := utils.DiscoverFiles(dir, cfg.FilePatterns)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		return fmt.Errorf("no *.glue_sql or *.xml files found in directory '%s'", dir)
	}

	fmt.Printf("Found %d file(s) to process\n", len(files))

	var entries []report.Entry
	successCount, failCount := 0, 0

	for _, file := range files {
		if verbose {
			fmt.Printf("Processing: %s\n", file)
		}

		result := converter.New(file, "", cfg).Run()

		if result.Success {
			successCount++
			fmt.Printf("  ✓ %s -> %s\n", filepath.Base(result.FilePath), result.OutputFile)

			if cfg.ArchiveOnSuccess {
				archiveConvertedInput(file, dir, cfg)
			}
		} else {
			failCount++
			fmt.Printf("  ✗ %s: %v\n", filepath.Base(result.FilePath), result.Error)
		}

		entry := report.Entry{
			InputFile:  result.FilePath,
			OutputFile: result.OutputFile,
			Success:    result.Success,
			ModuleCode: result.Stats.ModuleCode,
			Queries:    result.Stats.QueriesConverted,
		}
		if result.Error != nil {
			entry.Error = result.Error.Error()
		}
		entries = append(entries, entry)
	}

	// =========================================================================
	// SUMMARY
	// =========================================================================

	fmt.Println("\n=== Processing Complete ===")
	fmt.Printf("Total files:     %d\n", len(files))
	fmt.Printf("Successful:      %d\n", successCount)
	fmt.Printf("Failed:          %d\n", failCount)

	if cfg.ReportPath != "" {
		if err := report.Write(cfg.ReportPath, entries); err != nil {
			// The report is a convenience artifact; a failed report does not
			// fail an otherwise successful batch.
			fmt.Fprintf(os.Stderr, "Warning: failed to write report: %v\n", err)
		} else {
			fmt.Printf("Report written:  %s\n", cfg.ReportPath)
		}
	}

	if failCount > 0 {
		return fmt.Errorf("%d of %d file(s) failed", failCount, len(files))
	}

	return nil
}

// archiveConvertedInput moves one converted input into the archive
// directory. Archival problems are warnings: the conversion itself already
// succeeded and the output artifact exists.
func archiveConvertedInput(file, dir string, cfg *config.MainConfig) {
	archiveDir := cfg.ArchiveDir
	if archiveDir == "" {
		archiveDir = filepath.Join(dir, "archive")
	}

	archived, err := utils.ArchiveInputFile(file, archiveDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to archive %s: %v\n", file, err)
		return
	}

	if verbose {
		fmt.Printf("Archived: %s -> %s\n", file, archived)
	}
}
