// Package fixture reads and writes the newline-delimited hex-text files that
// connect the generate, process and compare stages.
package fixture

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Default file names, resolved against the working directory.
const (
	InputFile  = "test_input.txt"
	GoldenFile = "golden_result.txt"
	OutputFile = "test_output.txt"
)

// maxLineSize bounds a single line; fixture lines are 16 characters.
const maxLineSize = 1024 * 1024

var ErrFileNotFound = errors.New("fixture: file not found")

// MissingFileError reports an input path that does not exist.
type MissingFileError struct {
	Path string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("fixture: no such file: %s", e.Path)
}

func (e *MissingFileError) Unwrap() error {
	return ErrFileNotFound
}

// LineWriter is an append-only sink of text lines.
type LineWriter interface {
	WriteLine(line string) error
}

// Open opens path for reading, reporting a missing file as *MissingFileError.
func Open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &MissingFileError{Path: path}
	}
	if err != nil {
		return nil, fmt.Errorf("fixture: open %s: %w", path, err)
	}
	return f, nil
}

// ReadLines returns every line of path without its line terminator.
func ReadLines(path string) ([]string, error) {
	f, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lines, err := ScanLines(f)
	if err != nil {
		return nil, fmt.Errorf("fixture: read %s: %w", path, err)
	}
	return lines, nil
}

// ScanLines splits r into lines. A trailing newline does not produce an
// extra empty line.
func ScanLines(r io.Reader) ([]string, error) {
	var lines []string
	err := EachLine(r, func(line string) error {
		lines = append(lines, line)
		return nil
	})
	return lines, err
}

// EachLine calls fn for every line of r in order and stops at the first error.
func EachLine(r io.Reader, fn func(line string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
	for scanner.Scan() {
		if err := fn(scanner.Text()); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// FileWriter writes lines to a file through a buffer. Close flushes and
// closes the file.
type FileWriter struct {
	f *os.File
	w *bufio.Writer
}

var _ LineWriter = (*FileWriter)(nil)

// Create truncates or creates path for writing.
func Create(path string) (*FileWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: create %s: %w", path, err)
	}
	return &FileWriter{f: f, w: bufio.NewWriter(f)}, nil
}

// NewWriter wraps w as a LineWriter without owning it.
func NewWriter(w io.Writer) *FileWriter {
	return &FileWriter{w: bufio.NewWriter(w)}
}

func (fw *FileWriter) WriteLine(line string) error {
	if _, err := fw.w.WriteString(line); err != nil {
		return err
	}
	return fw.w.WriteByte('\n')
}

// Flush writes any buffered lines to the underlying writer.
func (fw *FileWriter) Flush() error {
	return fw.w.Flush()
}

func (fw *FileWriter) Close() error {
	err := fw.w.Flush()
	if fw.f == nil {
		return err
	}
	if cerr := fw.f.Close(); err == nil {
		err = cerr
	}
	return err
}
