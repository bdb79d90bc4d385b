package generator

import (
	"reflect"
	"regexp"
	"strconv"
	"testing"

	"github.com/ginjaninja78/make-data/internal/types"
)

// fixedSource returns canned values so cell rendering can be checked exactly.
type fixedSource struct {
	number int
	float  float64
	calls  []string
}

func (s *fixedSource) Number(min, max int) int {
	s.calls = append(s.calls, "number")
	if s.number < min || s.number > max {
		return min
	}
	return s.number
}

func (s *fixedSource) Float64Range(min, max float64) float64 {
	s.calls = append(s.calls, "float")
	return s.float
}

func (s *fixedSource) Word() string {
	s.calls = append(s.calls, "word")
	return "lorem"
}

func (s *fixedSource) Name() string {
	s.calls = append(s.calls, "name")
	return "Ada Lovelace"
}

func (s *fixedSource) PhoneFormatted() string {
	s.calls = append(s.calls, "phone")
	return "555-010-2030"
}

func TestNewRejectsBadInput(t *testing.T) {
	if _, err := New(nil, []types.ColumnType{types.Int}, 10); err == nil {
		t.Error("New with nil source: expected error")
	}
	for _, rng := range []int{0, -5} {
		if _, err := New(&fixedSource{}, []types.ColumnType{types.Int}, rng); err == nil {
			t.Errorf("New with range %d: expected error", rng)
		}
	}
}

func TestRowWithFixedSource(t *testing.T) {
	src := &fixedSource{number: 7, float: 3.14159}
	cols := []types.ColumnType{types.Int, types.Float, types.Word, types.Name, types.Phone}

	g, err := New(src, cols, 10)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got := g.Row()
	want := []string{"7", "3.141", "lorem", "Ada Lovelace", "555-010-2030"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Row() = %v; want %v", got, want)
	}

	wantCalls := []string{"number", "float", "word", "name", "phone"}
	if !reflect.DeepEqual(src.calls, wantCalls) {
		t.Errorf("source calls = %v; want %v", src.calls, wantCalls)
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{"Zero", 0, "0.000"},
		{"Whole", 42, "42.000"},
		{"Truncates", 1.23456, "1.234"},
		{"Just below bound", 99.99999, "99.999"},
		{"Short fraction", 0.5, "0.500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatFloat(tt.input)
			if got != tt.expected {
				t.Errorf("FormatFloat(%f) = %s; want %s", tt.input, got, tt.expected)
			}
		})
	}
}

var threeDecimals = regexp.MustCompile(`^\d+\.\d{3}$`)

func TestSeededValuesStayInRange(t *testing.T) {
	ranges := []int{1, 2, 10, 100, 1000}
	cols := []types.ColumnType{types.Int, types.Float}

	for _, rng := range ranges {
		g, err := New(NewSource(7), cols, rng)
		if err != nil {
			t.Fatalf("New: %v", err)
		}

		for i := 0; i < 500; i++ {
			row := g.Row()

			n, err := strconv.Atoi(row[0])
			if err != nil {
				t.Fatalf("int cell %q: %v", row[0], err)
			}
			if n < 0 || n >= rng {
				t.Fatalf("int cell %d outside [0, %d)", n, rng)
			}

			if !threeDecimals.MatchString(row[1]) {
				t.Fatalf("float cell %q does not have 3 decimals", row[1])
			}
			f, err := strconv.ParseFloat(row[1], 64)
			if err != nil {
				t.Fatalf("float cell %q: %v", row[1], err)
			}
			if f < 0 || f >= float64(rng) {
				t.Fatalf("float cell %f outside [0, %d)", f, rng)
			}
		}
	}
}

func TestSeededFakeValuesAreNonEmpty(t *testing.T) {
	g, err := New(NewSource(99), []types.ColumnType{types.Word, types.Name, types.Phone}, 10)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for i := 0; i < 50; i++ {
		for j, v := range g.Row() {
			if v == "" {
				t.Fatalf("row %d column %d is empty", i, j)
			}
		}
	}
}

func TestSameSeedSameRows(t *testing.T) {
	cols := types.ParseColumnTypes("int,float,word,name,phone")

	a, _ := New(NewSource(1234), cols, 100)
	b, _ := New(NewSource(1234), cols, 100)

	for i := 0; i < 20; i++ {
		ra, rb := a.Row(), b.Row()
		if !reflect.DeepEqual(ra, rb) {
			t.Fatalf("row %d differs: %v vs %v", i, ra, rb)
		}
	}
}

func TestHeaderMatchesRowWidth(t *testing.T) {
	cols := types.ParseColumnTypes("int,word,word,phone,unknown")
	g, _ := New(NewSource(5), cols, 10)

	if len(g.Header()) != len(g.Row()) {
		t.Errorf("header width %d != row width %d", len(g.Header()), len(g.Row()))
	}
	if len(g.Columns()) != 5 {
		t.Errorf("Columns() length = %d; want 5", len(g.Columns()))
	}
}
