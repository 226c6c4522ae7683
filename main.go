// =============================================================================
// glue_sql to JSON Converter - Main Entry Point
// =============================================================================
//
// This is the main entry point for the glue_sql to JSON Converter CLI
// application. It initializes the Cobra CLI framework and delegates command
// execution to the cmd package.
//
// USAGE:
//   glueconv convert <file> [output.json]  - Convert a single query-map file
//   glueconv convert <directory>           - Convert every *.glue_sql / *.xml
//                                            file in the directory
//   glueconv version                       - Display the application version
//
// ARCHITECTURE:
//   This application follows a modular design where:
//   - cmd/           : Contains all CLI command definitions (Cobra)
//   - internal/      : Contains core business logic (not for external import)
//   - pkg/           : Contains shared utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/XML-to-JSON-conversion/cmd"
)

// main is the entry point of the application.
// It simply calls the Execute function from the cmd package, which
// initializes and runs the Cobra CLI.
func main() {
	cmd.Execute()
}
