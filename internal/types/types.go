// =============================================================================
// Make Data - Column Types
// =============================================================================
//
// This package contains the column type enumeration shared by the generator,
// the template loader and the CLI. Keeping it in its own package avoids import
// cycles between those modules.
//
// SUPPORTED TYPES:
//   int, float, word, name, phone
//
// PARSING POLICY:
//   Parsing is lenient. Any token that is not one of the supported types
//   becomes a word column. No error is raised for unknown tokens.
//
// =============================================================================

package types

import (
	"fmt"
	"strings"
)

// =============================================================================
// COLUMN TYPE
// =============================================================================

// ColumnType identifies how values in a column are generated.
type ColumnType int

const (
	// Int columns hold a random integer in [0, range).
	Int ColumnType = iota

	// Float columns hold a random real in [0, range) with 3 decimals.
	Float

	// Word columns hold a random lorem-style word.
	Word

	// Name columns hold a random full name.
	Name

	// Phone columns hold a random formatted phone number.
	Phone
)

// Fallback is the type assigned to unrecognised tokens.
const Fallback = Word

var columnTypeNames = [...]string{
	Int:   "int",
	Float: "float",
	Word:  "word",
	Name:  "name",
	Phone: "phone",
}

// String returns the token form of the type, as used in headers.
func (t ColumnType) String() string {
	if t >= 0 && int(t) < len(columnTypeNames) {
		return columnTypeNames[t]
	}
	return "unknown"
}

// Known returns the list of supported type tokens in declaration order.
func Known() []string {
	out := make([]string, len(columnTypeNames))
	copy(out, columnTypeNames[:])
	return out
}

// =============================================================================
// PARSING
// =============================================================================

// ParseColumnType maps a single token to a column type.
// The second return value reports whether the token was recognised; when it
// is false the returned type is Fallback.
func ParseColumnType(token string) (ColumnType, bool) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "int":
		return Int, true
	case "float":
		return Float, true
	case "word":
		return Word, true
	case "name":
		return Name, true
	case "phone":
		return Phone, true
	default:
		return Fallback, false
	}
}

// ParseColumnTypes splits a comma-separated list of tokens and maps each one
// to a column type, preserving order and duplicates.
//
// EXAMPLE:
//   "int, Float,bogus,int" -> [Int Float Word Int]
func ParseColumnTypes(columns string) []ColumnType {
	tokens := strings.Split(columns, ",")
	result := make([]ColumnType, 0, len(tokens))
	for _, token := range tokens {
		t, _ := ParseColumnType(token)
		result = append(result, t)
	}
	return result
}

// UnknownTokens returns the trimmed tokens of a column list that fell back to
// Word. It is used only for diagnostics.
func UnknownTokens(columns string) []string {
	var unknown []string
	for _, token := range strings.Split(columns, ",") {
		if _, ok := ParseColumnType(token); !ok {
			unknown = append(unknown, strings.TrimSpace(token))
		}
	}
	return unknown
}

// =============================================================================
// HEADER
// =============================================================================

// Header builds the CSV header row: col{N}_{type}, with N starting at 1.
func Header(cols []ColumnType) []string {
	header := make([]string, len(cols))
	for i, t := range cols {
		header[i] = fmt.Sprintf("col%d_%s", i+1, t)
	}
	return header
}
