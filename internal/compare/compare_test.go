package compare

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/1ureka/pktfixture/internal/fixture"
)

func TestLinesIdenticalIgnoresWhitespace(t *testing.T) {
	a := []string{"ABCD000385", "ABCD00008A", "ABCDFFFF88"}
	b := []string{"ABCD000385  ", "\tABCD00008A", " ABCDFFFF88\r"}

	r := Lines(a, b)
	if !r.Identical() {
		t.Fatalf("expected identical, got %+v", r)
	}
}

func TestLinesLengthMismatch(t *testing.T) {
	a := []string{"x", "y", "z"}
	b := []string{"x", "DIFF", "z", "w"}

	r := Lines(a, b)
	if r.Identical() {
		t.Fatal("expected a mismatch")
	}
	if r.Length == nil || r.Length.LenA != 3 || r.Length.LenB != 4 {
		t.Fatalf("Length = %+v, want {3 4}", r.Length)
	}
	if len(r.Diffs) != 0 {
		t.Fatalf("expected no line diffs on length mismatch, got %d", len(r.Diffs))
	}
}

// TestLinesRecordsEveryDifference verifies comparison does not stop at the
// first differing line.
func TestLinesRecordsEveryDifference(t *testing.T) {
	a := []string{"A", "B", "C", "D"}
	b := []string{"A", "b", "C", " d "}

	r := Lines(a, b)
	want := []LineDiff{{Line: 2, A: "B", B: "b"}, {Line: 4, A: "D", B: "d"}}
	if len(r.Diffs) != len(want) {
		t.Fatalf("got %d diffs, want %d: %+v", len(r.Diffs), len(want), r.Diffs)
	}
	for i := range want {
		if r.Diffs[i] != want[i] {
			t.Errorf("diff %d = %+v, want %+v", i, r.Diffs[i], want[i])
		}
	}
}

func TestLinesEmpty(t *testing.T) {
	if r := Lines(nil, nil); !r.Identical() {
		t.Fatalf("expected two empty inputs to be identical, got %+v", r)
	}
}

func TestFilesIdentical(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "golden_result.txt", "ABCD000385\nABCD00008A\n")
	b := writeFile(t, dir, "test_output.txt", "ABCD000385 \nABCD00008A")

	r, err := Files(a, b)
	if err != nil {
		t.Fatalf("Files failed: %v", err)
	}
	if !r.Identical() {
		t.Fatalf("expected identical, got %+v", r)
	}
}

// TestFilesReportsEachMissingPath verifies both missing paths are named.
func TestFilesReportsEachMissingPath(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "golden_result.txt")
	b := filepath.Join(dir, "test_output.txt")

	_, err := Files(a, b)
	if !errors.Is(err, fixture.ErrFileNotFound) {
		t.Fatalf("expected ErrFileNotFound, got %v", err)
	}

	var missing []string
	for _, e := range err.(interface{ Unwrap() []error }).Unwrap() {
		var mf *fixture.MissingFileError
		if errors.As(e, &mf) {
			missing = append(missing, mf.Path)
		}
	}
	if len(missing) != 2 || missing[0] != a || missing[1] != b {
		t.Fatalf("missing paths = %q, want [%s %s]", missing, a, b)
	}
}

func TestFilesOneMissing(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "golden_result.txt", "ABCD000385\n")

	_, err := Files(a, filepath.Join(dir, "test_output.txt"))
	var mf *fixture.MissingFileError
	if !errors.As(err, &mf) || filepath.Base(mf.Path) != "test_output.txt" {
		t.Fatalf("expected missing test_output.txt, got %v", err)
	}
}

func TestDescribe(t *testing.T) {
	testCases := []struct {
		name string
		diff LineDiff
		want string
	}{
		{"result differs", LineDiff{Line: 1, A: "ABCD000385", B: "ABCD000484"}, "result 0x0003 vs 0x0004"},
		{"checksum differs", LineDiff{Line: 1, A: "ABCD000385", B: "ABCD000386"}, "checksum 0x85 vs 0x86"},
		{"not a response", LineDiff{Line: 1, A: "ABCD000385", B: "garbage"}, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Describe(tc.diff); got != tc.want {
				t.Fatalf("Describe = %q, want %q", got, tc.want)
			}
		})
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}
