// =============================================================================
// Make Data - XLSX Template Parser
// =============================================================================
//
// This module reads the column layout for a dataset from an XLSX template.
// Teams that already describe test fixtures in a spreadsheet can point the
// generator at it instead of typing a --columns list.
//
// TEMPLATE STRUCTURE:
//   One column per row. Column A holds the column type token. Any further
//   cells (descriptions, notes) are ignored. A header cell reading "type" in
//   the first row is skipped.
//
//   | Column A | Column B               |
//   |----------|------------------------|
//   | type     | description            |
//   | int      | customer id            |
//   | name     | customer name          |
//   | phone    | contact number         |
//   | float    | balance                |
//
// The tokens are returned as a comma-separated list and go through the usual
// column parser, so unknown tokens still become word columns.
//
// =============================================================================

package xlsxparser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// TypeColumn is the 0-based template column holding type tokens (column A).
const TypeColumn = 0

// LoadColumnTypes reads type tokens from the first sheet of the template.
//
// PARAMETERS:
//   - templatePath: The path to the XLSX template file.
//
// RETURNS:
//   - The comma-separated type tokens, in row order.
//   - An error if the file cannot be read or lists no columns.
func LoadColumnTypes(templatePath string) (string, error) {
	return LoadColumnTypesFromSheet(templatePath, "")
}

// LoadColumnTypesFromSheet reads type tokens from a named sheet. An empty
// sheet name selects the first sheet.
func LoadColumnTypesFromSheet(templatePath, sheetName string) (string, error) {
	f, err := excelize.OpenFile(templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to open template file: %w", err)
	}
	defer f.Close()

	if sheetName == "" {
		sheetName = f.GetSheetName(0)
		if sheetName == "" {
			return "", fmt.Errorf("template file has no sheets")
		}
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return "", fmt.Errorf("failed to read rows from sheet %q: %w", sheetName, err)
	}

	tokens := columnTokens(rows)
	if len(tokens) == 0 {
		return "", fmt.Errorf("template %s lists no columns", templatePath)
	}

	return strings.Join(tokens, ","), nil
}

// columnTokens extracts the type cell of every non-empty row.
func columnTokens(rows [][]string) []string {
	var tokens []string
	for i, row := range rows {
		if len(row) <= TypeColumn {
			continue
		}
		cell := strings.TrimSpace(row[TypeColumn])
		if cell == "" {
			continue
		}
		if i == 0 && strings.EqualFold(cell, "type") {
			continue
		}
		// Commas inside a cell would split into extra columns.
		tokens = append(tokens, strings.ReplaceAll(cell, ",", " "))
	}
	return tokens
}
