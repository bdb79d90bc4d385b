package types

import (
	"reflect"
	"testing"
)

func TestParseColumnTypes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []ColumnType
	}{
		{"Defaults", "int,float,word,name,phone", []ColumnType{Int, Float, Word, Name, Phone}},
		{"Whitespace and case", " INT , Float,NaMe ", []ColumnType{Int, Float, Name}},
		{"Duplicates kept", "int,int,int", []ColumnType{Int, Int, Int}},
		{"Unknown falls back", "int,date,phone", []ColumnType{Int, Word, Phone}},
		{"Empty token", "int,,float", []ColumnType{Int, Word, Float}},
		{"Empty string", "", []ColumnType{Word}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseColumnTypes(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ParseColumnTypes(%q) = %v; want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseColumnTypeFallbackIsStable(t *testing.T) {
	for _, token := range []string{"uuid", "date", "word", "  ", "Words"} {
		first, _ := ParseColumnType(token)
		again, _ := ParseColumnType(first.String())
		if first != again {
			t.Errorf("token %q: reparsing %q gave %v, want %v", token, first, again, first)
		}
	}

	got, ok := ParseColumnType("email")
	if ok || got != Word {
		t.Errorf("ParseColumnType(\"email\") = %v, %v; want word, false", got, ok)
	}
}

func TestUnknownTokens(t *testing.T) {
	got := UnknownTokens("int, date ,name,blob")
	want := []string{"date", "blob"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("UnknownTokens = %v; want %v", got, want)
	}

	if got := UnknownTokens("int,float"); got != nil {
		t.Errorf("UnknownTokens for known list = %v; want nil", got)
	}
}

func TestHeader(t *testing.T) {
	got := Header([]ColumnType{Int, Word, Word, Phone})
	want := []string{"col1_int", "col2_word", "col3_word", "col4_phone"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Header = %v; want %v", got, want)
	}
}

func TestColumnTypeString(t *testing.T) {
	if got := ColumnType(42).String(); got != "unknown" {
		t.Errorf("String() of out-of-range type = %q; want \"unknown\"", got)
	}
	if got := Known(); !reflect.DeepEqual(got, []string{"int", "float", "word", "name", "phone"}) {
		t.Errorf("Known() = %v", got)
	}
}
