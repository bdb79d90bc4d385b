package csvwriter

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteAndClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	w, err := Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	records := [][]string{
		{"col1_int", "col2_word"},
		{"3", "lorem"},
		{"9", "quoted, value"},
	}
	for _, r := range records {
		if err := w.Write(r); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "col1_int,col2_word\n3,lorem\n9,\"quoted, value\"\n"
	if string(data) != want {
		t.Errorf("file contents = %q; want %q", data, want)
	}
	if w.Records() != 3 {
		t.Errorf("Records() = %d; want 3", w.Records())
	}
	if w.BytesWritten() != int64(len(want)) {
		t.Errorf("BytesWritten() = %d; want %d", w.BytesWritten(), len(want))
	}
	if w.Path() != path {
		t.Errorf("Path() = %q; want %q", w.Path(), path)
	}
}

func TestCreateRefusesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taken.csv")
	if err := os.WriteFile(path, []byte("keep me"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Create(path)
	if !errors.Is(err, fs.ErrExist) {
		t.Fatalf("Create on existing file: err = %v; want fs.ErrExist", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "keep me" {
		t.Errorf("existing file was modified: %q", data)
	}
}

func TestCreateMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "out.csv")
	if _, err := Create(path); err == nil {
		t.Fatal("Create in missing directory: expected error")
	}
}
