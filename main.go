// =============================================================================
// Make Data - Main Entry Point
// =============================================================================
//
// Make Data is a CLI tool that generates CSV files full of fake data for
// testing.
//
// USAGE:
//   make-data [flags]      - Generate a CSV file
//   make-data version      - Display the application version
//
// ARCHITECTURE:
//   - cmd/       : CLI command definitions (Cobra)
//   - internal/  : Column types, generator, CSV writer, pipeline, config
//   - pkg/       : Shared file utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/make-data/cmd"
)

func main() {
	cmd.Execute()
}
