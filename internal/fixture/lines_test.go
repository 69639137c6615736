package fixture

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestScanLines(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"no trailing newline", "a\nb", []string{"a", "b"}},
		{"blank line kept", "a\n\nb\n", []string{"a", "", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ScanLines(strings.NewReader(tc.in))
			if err != nil {
				t.Fatalf("ScanLines failed: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("ScanLines = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestReadLinesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.txt")

	_, err := ReadLines(path)
	if !errors.Is(err, ErrFileNotFound) {
		t.Fatalf("expected ErrFileNotFound, got %v", err)
	}
	var mf *MissingFileError
	if !errors.As(err, &mf) || mf.Path != path {
		t.Fatalf("expected *MissingFileError for %s, got %v", path, err)
	}
}

func TestFileWriterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	w, err := Create(path)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	for _, line := range []string{"ABCD000385", "ABCD00008A"} {
		if err := w.WriteLine(line); err != nil {
			t.Fatalf("WriteLine failed: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(raw) != "ABCD000385\nABCD00008A\n" {
		t.Fatalf("file content = %q", raw)
	}

	lines, err := ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines failed: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("ReadLines returned %d lines, want 2", len(lines))
	}
}

func TestNewWriterDoesNotCloseUnderlying(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.WriteLine("x"); err != nil {
		t.Fatalf("WriteLine failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if buf.String() != "x\n" {
		t.Fatalf("buffer = %q, want %q", buf.String(), "x\n")
	}
}
