// =============================================================================
// glue_sql to JSON Converter - Converter Module
// =============================================================================
//
// This module contains the per-file conversion pipeline. It orchestrates the
// conversion of a single query-map document, from XML parsing to JSON output.
//
// CONVERSION PIPELINE:
//   1. Verify the input file exists
//   2. Parse the XML query map
//   3. Determine the output path
//   4. Write the JSON output file
//
// ERROR POLICY:
//   A malformed document does not abort the pipeline: the error-shaped
//   payload is still written to the output file so batch runs always produce
//   an artifact per input, but the conversion reports failure. A write error
//   is caught at this boundary and also reported as failure. Nothing panics
//   and nothing crosses the driver as a raised fault.
//
// =============================================================================

package converter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ginjaninja78/XML-to-JSON-conversion/internal/config"
	"github.com/ginjaninja78/XML-to-JSON-conversion/internal/jsonwriter"
	"github.com/ginjaninja78/XML-to-JSON-conversion/internal/queryparser"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of processing a single file.
type Result struct {
	// FilePath is the path to the input file that was processed.
	FilePath string

	// OutputFile is the path to the generated JSON file. It is set whenever
	// an output artifact was produced, including the error-payload case.
	OutputFile string

	// Success indicates whether the conversion was successful.
	Success bool

	// Error contains the failure if the conversion was not successful.
	Error error

	// Stats contains processing statistics.
	Stats ProcessingStats
}

// ProcessingStats contains statistics about the processing.
type ProcessingStats struct {
	// QueriesConverted is the number of query records in the output.
	QueriesConverted int

	// ModuleCode is the module key the file's queries were grouped under.
	// Empty when the document could not be parsed.
	ModuleCode string

	// ProcessingTime is the time taken to process the file.
	ProcessingTime time.Duration
}

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Converter handles the conversion of a single query-map file to JSON.
type Converter struct {
	// inputPath is the path to the input query-map file.
	inputPath string

	// outputPath is the explicit output path. Empty means the path is
	// derived from the input path.
	outputPath string

	// cfg is the application configuration.
	cfg *config.MainConfig
}

// New creates a new Converter instance. outputPath may be empty, in which
// case the output path is derived by swapping the input extension for
// ".json" (into the configured output directory when one is set).
func New(inputPath, outputPath string, cfg *config.MainConfig) *Converter {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Converter{
		inputPath:  inputPath,
		outputPath: outputPath,
		cfg:        cfg,
	}
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the conversion pipeline for the file.
func (c *Converter) Run() Result {
	startTime := time.Now()
	result := Result{
		FilePath: c.inputPath,
		Success:  false,
	}

	// =========================================================================
	// STEP 1: VERIFY INPUT
	// =========================================================================

	if _, err := os.Stat(c.inputPath); err != nil {
		result.Error = fmt.Errorf("input file not found: %s", c.inputPath)
		return result
	}

	// =========================================================================
	// STEP 2: PARSE QUERY MAP
	// =========================================================================
	// Parse never fails outright: malformed documents come back as an
	// error-shaped result that is still written below.

	parsed := queryparser.Parse(c.inputPath)

	result.Stats.QueriesConverted = parsed.QueryCount()
	for code := range parsed.Modules {
		result.Stats.ModuleCode = code
	}

	// =========================================================================
	// STEP 3: DETERMINE OUTPUT PATH
	// =========================================================================

	outputPath := c.outputPath
	if outputPath == "" {
		outputPath = c.deriveOutputPath()
	}

	// =========================================================================
	// STEP 4: WRITE OUTPUT FILE
	// =========================================================================

	if err := jsonwriter.WriteFile(outputPath, parsed.Payload()); err != nil {
		result.Error = fmt.Errorf("failed to write output: %w", err)
		return result
	}

	result.OutputFile = outputPath

	if parsed.IsError() {
		result.Error = errors.New(parsed.Err)
		return result
	}

	result.Success = true
	result.Stats.ProcessingTime = time.Since(startTime)

	return result
}

// deriveOutputPath builds the default output path: same base name with a
// ".json" extension, in the configured output directory or, when none is
// configured, alongside the input file.
func (c *Converter) deriveOutputPath() string {
	base := filepath.Base(c.inputPath)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + ".json"

	if c.cfg.OutputDir != "" {
		return filepath.Join(c.cfg.OutputDir, name)
	}
	return filepath.Join(filepath.Dir(c.inputPath), name)
}

// =============================================================================
// BOOLEAN BOUNDARY
// =============================================================================

// ConvertFile converts one file and reports success as a boolean. This is
// the boundary the batch driver works against: diagnostics are printed, a
// confirmation line names input and output on success, and no failure is
// ever raised past this function.
func ConvertFile(inputPath, outputPath string, cfg *config.MainConfig) bool {
	result := New(inputPath, outputPath, cfg).Run()

	if !result.Success {
		fmt.Fprintf(os.Stderr, "Conversion failed for %s: %v\n", inputPath, result.Error)
		return false
	}

	fmt.Printf("Converted: %s -> %s\n", result.FilePath, result.OutputFile)
	return true
}
