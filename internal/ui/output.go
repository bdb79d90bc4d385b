// =============================================================================
// Make Data - Console Output
// =============================================================================
//
// This module writes everything the user sees on stdout: the banner, the
// extended help shown by --bighelp and the end-of-run summary. Counts and
// sizes are humanized ("12,345", "1.2 MB").
//
// =============================================================================

package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// banner is the ASCII-art title printed at startup.
const banner = `
    ███╗   ███╗       ███╗    ██╗  ██╗   ███████╗
    ████╗ ████║      ████╗    ██║ ██╔╝   ██╔════╝
    ██╔████╔██║     ██╔██╗    █████╔╝    █████╗
    ██║╚██╔╝██║    ██╔╝██╗    ██╔═██╗    ██╔══╝
    ██║ ╚═╝ ██║   ███████╗    ██║  ██╗   ███████╗
    ╚═╝     ╚═╝   ╚══════╝    ╚═╝  ╚═╝   ╚══════╝

    ██████╗        ███╗    ████████╗       ███╗
    ██╔══██╗      ████╗    ╚══██╔══╝      ████╗
    ██║  ██║     ██╔██╗       ██║        ██╔██╗
    ██║  ██║    ██╔╝██╗       ██║       ██╔╝██╗
    ██████╔╝   ███████╗       ██║      ███████╗
    ╚═════╝    ╚══════╝       ╚═╝      ╚══════╝
    Make data for testing, using fake data generator`

// PrintBanner writes the startup banner.
func PrintBanner(w io.Writer) {
	fmt.Fprintln(w, BannerStyle.Render(banner))
}

// PrintBigHelp writes the extended usage text. prog is the binary name.
func PrintBigHelp(w io.Writer, prog string, knownTypes []string) {
	fmt.Fprintf(w, "\tColumn types can be: %s\n", strings.Join(knownTypes, ", "))
	fmt.Fprintln(w, "\tUnknown column types are generated as words")
	fmt.Fprintln(w, "\tRange for random numbers is a single number (e.g., 1000)")
	fmt.Fprintln(w, CommandStyle.Render(fmt.Sprintf(
		"\t%s --rows <number> --columns <types> --output <file> --myrange <range>", prog)))
	fmt.Fprintln(w, "\tExamples:")
	fmt.Fprintln(w, CommandStyle.Render(fmt.Sprintf(
		"\t%s --rows 1000 --columns int,float,word,name,phone --output output.csv --myrange 1000", prog)))
	fmt.Fprintln(w, CommandStyle.Render(fmt.Sprintf(
		"\t%s --rows 10 --columns int,int,int --output output.csv --myrange 10", prog)))
	fmt.Fprintln(w, CommandStyle.Render(fmt.Sprintf(
		"\t%s --rows 50 --seed 42 --output people_{date}.csv", prog)))
	fmt.Fprintln(w, CommandStyle.Render(fmt.Sprintf(
		"\t%s --template layout.xlsx --rows 200", prog)))
	fmt.Fprintln(w, "\tOutput files are written to the 0_out directory and never overwritten;")
	fmt.Fprintln(w, "\ta numeric suffix is added instead (output_1.csv, output_2.csv, ...)")
}

// Summary describes a finished run.
type Summary struct {
	// Rows is the number of data rows written.
	Rows int

	// Columns is the number of columns per row.
	Columns int

	// Range is the exclusive upper bound used for numeric columns.
	Range int

	// OutputPath is the file that was written.
	OutputPath string

	// Bytes is the size of the written file.
	Bytes int64

	// Elapsed is the wall time of the run.
	Elapsed time.Duration
}

// PrintSummary writes the end-of-run summary.
func PrintSummary(w io.Writer, s Summary) {
	fmt.Fprintf(w, "\t%s %s rows x %s columns, using range %s\n",
		LabelStyle.Render("Generated"),
		ValueStyle.Render(humanize.Comma(int64(s.Rows))),
		ValueStyle.Render(humanize.Comma(int64(s.Columns))),
		ValueStyle.Render(humanize.Comma(int64(s.Range))))
	fmt.Fprintf(w, "\t%s %s (%s in %s)\n",
		LabelStyle.Render("Output written to:"),
		ValueStyle.Render(s.OutputPath),
		humanize.Bytes(uint64(s.Bytes)),
		s.Elapsed.Round(time.Millisecond))
}
