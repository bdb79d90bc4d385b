package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, WARN)

	l.Debug("hidden %d", 1)
	l.Info("hidden %d", 2)
	l.Warn("could not create %s", "0_out")
	l.Error("boom")

	got := buf.String()
	want := "[WARN] could not create 0_out\n[ERROR] boom\n"
	if got != want {
		t.Errorf("output = %q; want %q", got, want)
	}
}

func TestDebugLevelPrintsEverything(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, DEBUG)
	l.Debug("d")
	l.Info("i")

	if lines := strings.Count(buf.String(), "\n"); lines != 2 {
		t.Errorf("got %d lines; want 2: %q", lines, buf.String())
	}
}

func TestLevelString(t *testing.T) {
	if DEBUG.String() != "DEBUG" || ERROR.String() != "ERROR" {
		t.Error("unexpected level names")
	}
	if Level(9).String() != "UNKNOWN" {
		t.Errorf("Level(9).String() = %q", Level(9).String())
	}
}
