// =============================================================================
// Make Data - Configuration Module
// =============================================================================
//
// This module loads the optional generation profile. A profile is a YAML file
// holding the same settings as the command-line flags so a dataset layout can
// be kept under version control and regenerated later.
//
// PRECEDENCE:
//   1. Flags given explicitly on the command line
//   2. Values from the profile (--config)
//   3. Built-in defaults
//
// EXAMPLE PROFILE:
//   rows: 1000
//   columns: int,float,word,name,phone
//   output: people_{date}.csv
//   range: 1000
//   seed: 42
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// DEFAULTS
// =============================================================================

const (
	DefaultRows      = 10
	DefaultColumns   = "int,float,word,name,phone"
	DefaultOutput    = "output.csv"
	DefaultRange     = 100
	DefaultOutputDir = "0_out"
)

// Validation errors.
var (
	ErrInvalidRows  = errors.New("rows must not be negative")
	ErrInvalidRange = errors.New("range must be greater than zero")
	ErrEmptyOutput  = errors.New("output file name must not be empty")
	ErrEmptyOutDir  = errors.New("output directory must not be empty")
)

// =============================================================================
// PROFILE STRUCTURE
// =============================================================================

// Profile holds the settings for one generation run.
type Profile struct {
	// Rows is the number of data rows to generate.
	// Default: 10
	Rows int `yaml:"rows"`

	// Columns is the comma-separated list of column types.
	// Default: "int,float,word,name,phone"
	Columns string `yaml:"columns"`

	// Output is the desired output file name. Placeholders such as {date}
	// are expanded before collision resolution.
	// Default: "output.csv"
	Output string `yaml:"output"`

	// Range is the exclusive upper bound for int and float columns.
	// Default: 100
	Range int `yaml:"range"`

	// Seed makes a run reproducible when non-zero.
	Seed uint64 `yaml:"seed"`

	// OutputDir is the directory generated files are written to.
	// Default: "0_out"
	OutputDir string `yaml:"out_dir"`

	// Template is an optional XLSX template listing column types.
	// When set it replaces Columns.
	Template string `yaml:"template"`

	// TemplateSheet selects the template sheet. Empty means the first sheet.
	TemplateSheet string `yaml:"template_sheet"`
}

// DefaultProfile returns a profile populated with the built-in defaults.
func DefaultProfile() *Profile {
	return &Profile{
		Rows:      DefaultRows,
		Columns:   DefaultColumns,
		Output:    DefaultOutput,
		Range:     DefaultRange,
		OutputDir: DefaultOutputDir,
	}
}

// =============================================================================
// LOADING FUNCTIONS
// =============================================================================

// LoadProfile loads a profile from a YAML file.
//
// PARAMETERS:
//   - path: The path to the profile file.
//
// RETURNS:
//   - A pointer to the Profile struct, with defaults applied.
//   - An error if the file cannot be read or parsed.
//
// The profile is not validated here; callers validate after merging
// command-line overrides.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	profile, err := ParseProfile(data)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}
	return profile, nil
}

// ParseProfile parses profile YAML on top of the defaults. Keys missing from
// the document keep their default values; "rows: 0" is a valid setting.
func ParseProfile(data []byte) (*Profile, error) {
	profile := DefaultProfile()
	if err := yaml.Unmarshal(data, profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}

	applyProfileDefaults(profile)
	return profile, nil
}

// applyProfileDefaults restores defaults for string options that were set to
// an empty value.
func applyProfileDefaults(p *Profile) {
	if p.Columns == "" && p.Template == "" {
		p.Columns = DefaultColumns
	}
	if p.Output == "" {
		p.Output = DefaultOutput
	}
	if p.OutputDir == "" {
		p.OutputDir = DefaultOutputDir
	}
}

// Validate checks that the profile can drive a generation run.
func (p *Profile) Validate() error {
	if p.Rows < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidRows, p.Rows)
	}
	if p.Range <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidRange, p.Range)
	}
	if p.Output == "" {
		return ErrEmptyOutput
	}
	if p.OutputDir == "" {
		return ErrEmptyOutDir
	}
	return nil
}
