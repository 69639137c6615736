// Package compare checks a candidate result file against a golden one, line
// by line.
package compare

import (
	"errors"
	"fmt"
	"strings"

	"github.com/1ureka/pktfixture/internal/fixture"
	"github.com/1ureka/pktfixture/internal/protocol"
)

// LineDiff is one position whose trimmed values differ.
type LineDiff struct {
	Line int // 1-based
	A    string
	B    string
}

func (d LineDiff) String() string {
	return fmt.Sprintf("Difference found on line %d:\nFile1: %s\nFile2: %s", d.Line, d.A, d.B)
}

// LengthMismatch records files with different line counts.
type LengthMismatch struct {
	LenA int
	LenB int
}

func (m LengthMismatch) String() string {
	return fmt.Sprintf("The files have different numbers of lines.\nFile1 has %d lines, File2 has %d lines.", m.LenA, m.LenB)
}

// Report is the outcome of a comparison. When Length is set no line-level
// comparison was made and Diffs is empty.
type Report struct {
	Length *LengthMismatch
	Diffs  []LineDiff
}

// Identical reports whether the inputs matched at every position.
func (r Report) Identical() bool {
	return r.Length == nil && len(r.Diffs) == 0
}

// Lines compares a and b position by position, ignoring leading and trailing
// whitespace. Every differing position is recorded.
func Lines(a, b []string) Report {
	if len(a) != len(b) {
		return Report{Length: &LengthMismatch{LenA: len(a), LenB: len(b)}}
	}

	var r Report
	for i := range a {
		la, lb := strings.TrimSpace(a[i]), strings.TrimSpace(b[i])
		if la != lb {
			r.Diffs = append(r.Diffs, LineDiff{Line: i + 1, A: la, B: lb})
		}
	}
	return r
}

// Files reads both paths and compares them. Every missing path is reported;
// the returned error then matches fixture.ErrFileNotFound.
func Files(pathA, pathB string) (Report, error) {
	a, b, err := Load(pathA, pathB)
	if err != nil {
		return Report{}, err
	}
	return Lines(a, b), nil
}

// Load reads both files. Both paths are always tried so that each missing one
// is reported.
func Load(pathA, pathB string) (a, b []string, err error) {
	a, errA := fixture.ReadLines(pathA)
	b, errB := fixture.ReadLines(pathB)
	if err := errors.Join(errA, errB); err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

// Describe explains a difference in protocol terms when both sides are valid
// response lines, e.g. "result 0x0003 vs 0x0004". It returns "" otherwise.
func Describe(d LineDiff) string {
	ra, errA := protocol.DecodeResponseHex(d.A)
	rb, errB := protocol.DecodeResponseHex(d.B)
	if errA != nil || errB != nil {
		return ""
	}
	if ra.Result() != rb.Result() {
		return fmt.Sprintf("result 0x%04X vs 0x%04X", ra.Result(), rb.Result())
	}
	return fmt.Sprintf("checksum 0x%02X vs 0x%02X", ra.Checksum(), rb.Checksum())
}
