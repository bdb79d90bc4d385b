// =============================================================================
// Make Data - Row Generator
// =============================================================================
//
// This module produces the cell values for each row. Every column type maps to
// one method of the Source capability interface, which is satisfied by
// *gofakeit.Faker. Tests can inject a deterministic Source.
//
// VALUE RULES:
//   int   : uniform integer in [0, range)
//   float : uniform real in [0, range), truncated to 3 decimals
//   word  : random lorem word
//   name  : random full name
//   phone : random formatted phone number
//
// ORDER OF CONSUMPTION:
//   Values are drawn cell by cell, row-major. A seeded Source therefore always
//   yields the same file for the same column list, row count and range.
//
// =============================================================================

package generator

import (
	"fmt"
	"math"
	"strconv"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/ginjaninja78/make-data/internal/types"
)

// =============================================================================
// SOURCE INTERFACE
// =============================================================================

// Source supplies random numbers and fake values.
type Source interface {
	// Number returns an integer in [min, max], both inclusive.
	Number(min, max int) int

	// Float64Range returns a float in [min, max).
	Float64Range(min, max float64) float64

	Word() string
	Name() string
	PhoneFormatted() string
}

// NewSource returns a gofakeit source. A zero seed draws from system entropy.
func NewSource(seed uint64) Source {
	return gofakeit.New(seed)
}

// =============================================================================
// GENERATOR
// =============================================================================

// Generator renders rows for a fixed column layout.
type Generator struct {
	src     Source
	columns []types.ColumnType
	rng     int
}

// New creates a Generator.
//
// PARAMETERS:
//   - src: The randomness source.
//   - columns: The parsed column types, in output order.
//   - rng: Exclusive upper bound for int and float columns. Must be positive.
func New(src Source, columns []types.ColumnType, rng int) (*Generator, error) {
	if src == nil {
		return nil, fmt.Errorf("generator: nil source")
	}
	if rng <= 0 {
		return nil, fmt.Errorf("generator: range must be positive, got %d", rng)
	}
	return &Generator{src: src, columns: columns, rng: rng}, nil
}

// Columns returns the column layout.
func (g *Generator) Columns() []types.ColumnType {
	return g.columns
}

// Header returns the header row for the column layout.
func (g *Generator) Header() []string {
	return types.Header(g.columns)
}

// Row renders one data row. The returned slice has one entry per column.
func (g *Generator) Row() []string {
	row := make([]string, len(g.columns))
	for i, t := range g.columns {
		row[i] = g.Value(t)
	}
	return row
}

// Value renders a single cell for the given column type.
func (g *Generator) Value(t types.ColumnType) string {
	switch t {
	case types.Int:
		return strconv.Itoa(g.src.Number(0, g.rng-1))
	case types.Float:
		return FormatFloat(g.src.Float64Range(0, float64(g.rng)))
	case types.Word:
		return g.src.Word()
	case types.Name:
		return g.src.Name()
	case types.Phone:
		return g.src.PhoneFormatted()
	default:
		return g.src.Word()
	}
}

// FormatFloat renders v with exactly 3 decimals. The value is truncated
// rather than rounded so a value below the range never renders at the range.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(math.Floor(v*1000)/1000, 'f', 3, 64)
}
