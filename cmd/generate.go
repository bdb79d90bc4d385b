// =============================================================================
// Make Data - Generate
// =============================================================================
//
// This file holds the root command's run function. It resolves the settings
// from flags, the optional profile and the optional XLSX template, then hands
// them to the generation pipeline.
//
// PROCESSING PIPELINE:
//   1. Print the banner
//   2. Print extended help and stop if --bighelp is set
//   3. Resolve settings (flags > profile > defaults)
//   4. Resolve the column list (flag, template or profile)
//   5. Run the pipeline: directory, path, header, rows
//   6. Print the summary
//
// =============================================================================

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/make-data/internal/config"
	"github.com/ginjaninja78/make-data/internal/datagen"
	"github.com/ginjaninja78/make-data/internal/generator"
	"github.com/ginjaninja78/make-data/internal/logging"
	"github.com/ginjaninja78/make-data/internal/types"
	"github.com/ginjaninja78/make-data/internal/ui"
	"github.com/ginjaninja78/make-data/internal/xlsxparser"
)

// runGenerate is the main function behind the root command.
func runGenerate(cmd *cobra.Command, opts *rootOptions) error {
	out := cmd.OutOrStdout()
	logger := logging.New(cmd.ErrOrStderr(), logLevel(opts.verbose))

	ui.PrintBanner(out)

	if opts.bighelp {
		ui.PrintBigHelp(out, cmd.Root().Name(), types.Known())
		return nil
	}

	// =========================================================================
	// STEP 1: RESOLVE SETTINGS
	// =========================================================================

	profile, err := resolveProfile(cmd, opts)
	if err != nil {
		return err
	}

	columnList, err := resolveColumns(cmd, profile)
	if err != nil {
		return err
	}

	if unknown := types.UnknownTokens(columnList); len(unknown) > 0 {
		logger.Debug("Unrecognised column types generated as words: %s", strings.Join(unknown, ", "))
	}

	fmt.Fprintf(out, "Range for random numbers: %d\n", profile.Range)
	if profile.Seed != 0 {
		logger.Debug("Using seed %d", profile.Seed)
	}

	// =========================================================================
	// STEP 2: GENERATE
	// =========================================================================

	result, err := datagen.Run(datagen.Options{
		Columns:    types.ParseColumnTypes(columnList),
		Rows:       profile.Rows,
		Range:      profile.Range,
		OutputDir:  profile.OutputDir,
		OutputName: profile.Output,
		Source:     generator.NewSource(profile.Seed),
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	// =========================================================================
	// STEP 3: SUMMARY
	// =========================================================================

	ui.PrintSummary(out, ui.Summary{
		Rows:       result.Rows,
		Columns:    result.Columns,
		Range:      profile.Range,
		OutputPath: result.OutputPath,
		Bytes:      result.Bytes,
		Elapsed:    result.Elapsed,
	})

	return nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// resolveProfile merges the optional profile with the command-line flags.
// Without a profile every flag value is used; with one, only flags the user
// set explicitly override it.
func resolveProfile(cmd *cobra.Command, opts *rootOptions) (*config.Profile, error) {
	profile := config.DefaultProfile()
	if opts.configPath != "" {
		loaded, err := config.LoadProfile(opts.configPath)
		if err != nil {
			return nil, err
		}
		profile = loaded
	}

	flags := cmd.Flags()
	use := func(name string) bool {
		return opts.configPath == "" || flags.Changed(name)
	}

	if use("rows") {
		profile.Rows = opts.rows
	}
	if use("columns") {
		profile.Columns = opts.columns
	}
	if use("output") {
		profile.Output = opts.output
	}
	if use("myrange") {
		profile.Range = opts.myrange
	}
	if use("seed") {
		profile.Seed = opts.seed
	}
	if use("out-dir") {
		profile.OutputDir = opts.outDir
	}
	if use("template") {
		profile.Template = opts.template
	}

	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return profile, nil
}

// resolveColumns returns the comma-separated column list for the run.
//
// PRECEDENCE:
//   1. --template
//   2. --columns
//   3. template from the profile
//   4. columns from the profile (or the default list)
func resolveColumns(cmd *cobra.Command, profile *config.Profile) (string, error) {
	flags := cmd.Flags()

	useTemplate := profile.Template != ""
	if flags.Changed("columns") && !flags.Changed("template") {
		useTemplate = false
	}

	if !useTemplate {
		return profile.Columns, nil
	}

	columns, err := xlsxparser.LoadColumnTypesFromSheet(profile.Template, profile.TemplateSheet)
	if err != nil {
		return "", fmt.Errorf("failed to load template %s: %w", profile.Template, err)
	}
	return columns, nil
}

func logLevel(verbose bool) logging.Level {
	if verbose {
		return logging.DEBUG
	}
	return logging.INFO
}
