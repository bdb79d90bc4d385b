// =============================================================================
// Make Data - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. Running the binary
// without a subcommand generates a CSV file.
//
// COBRA CLI STRUCTURE:
//   rootCmd (make-data)      generate a CSV file
//   └── versionCmd (make-data version)
//
// The command tree is built by newRootCmd so every invocation, including each
// test, gets fresh flag state.
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/make-data/internal/config"
	"github.com/ginjaninja78/make-data/internal/ui"
)

// rootOptions holds the values bound to the root command flags.
type rootOptions struct {
	rows       int
	columns    string
	output     string
	myrange    int
	bighelp    bool
	seed       uint64
	configPath string
	template   string
	outDir     string
	verbose    bool
}

// newRootCmd builds the root command and registers its subcommands.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "make-data",
		Short: "Make Data - generate CSV files full of fake data for testing",
		Long: `Make Data generates CSV files populated with random and fake values.

Each column has a type:
  int    random integer in [0, myrange)
  float  random number in [0, myrange) with 3 decimals
  word   random lorem word
  name   random full name
  phone  random phone number

Unknown column types are generated as words. Files are written to the 0_out
directory and an existing file is never overwritten.

Example Usage:
  make-data --rows 1000 --columns int,float,word,name,phone --myrange 1000
  make-data --rows 10 --columns int,int,int --output ints.csv --myrange 10
  make-data --config profile.yaml --seed 42`,

		// Errors are printed once by Execute.
		SilenceErrors: true,
		SilenceUsage:  true,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	flags := rootCmd.Flags()
	flags.IntVarP(&opts.rows, "rows", "r", config.DefaultRows, "Number of rows to generate")
	flags.StringVarP(&opts.columns, "columns", "c", config.DefaultColumns, "Column types, comma-separated (e.g. int,float,word,name,phone)")
	flags.StringVarP(&opts.output, "output", "o", config.DefaultOutput, "Output CSV file name ({uuid}, {timestamp}, {date}, {time} are expanded)")
	flags.IntVarP(&opts.myrange, "myrange", "m", config.DefaultRange, "Range for random number generation (exclusive upper bound)")
	flags.BoolVarP(&opts.bighelp, "bighelp", "b", false, "Show extended help")
	flags.Uint64VarP(&opts.seed, "seed", "s", 0, "Random seed; 0 uses system entropy")
	flags.StringVar(&opts.configPath, "config", "", "Path to a YAML generation profile")
	flags.StringVarP(&opts.template, "template", "t", "", "XLSX template listing column types in column A")
	flags.StringVar(&opts.outDir, "out-dir", config.DefaultOutputDir, "Directory generated files are written to")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output for debugging")

	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// printError writes the final error line shown when a run fails.
func printError(w io.Writer, err error) {
	fmt.Fprintln(w, ui.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
}
