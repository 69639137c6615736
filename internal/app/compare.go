package app

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/1ureka/pktfixture/internal/compare"
	"github.com/1ureka/pktfixture/internal/util"
)

// RunCompare compares pathA (the golden file) with pathB (the candidate) and
// prints the outcome. A difference is not an error; check Report.Identical.
func RunCompare(pathA, pathB string) (compare.Report, error) {
	a, b, err := compare.Load(pathA, pathB)
	if err != nil {
		return compare.Report{}, err
	}

	report := compare.Lines(a, b)
	util.LogDebug("fingerprints: %s=%08x %s=%08x", pathA, util.Fingerprint(a), pathB, util.Fingerprint(b))

	switch {
	case report.Length != nil:
		pterm.Warning.Println(report.Length.String())
	case len(report.Diffs) > 0:
		printDiffs(report.Diffs)
		pterm.Warning.Printfln("%d of %d lines differ.", len(report.Diffs), len(a))
	default:
		pterm.Success.Printfln("The data in the files are the same. (%d lines, fingerprint %08x)", len(a), util.Fingerprint(a))
	}
	return report, nil
}

func printDiffs(diffs []compare.LineDiff) {
	data := pterm.TableData{{"Line", "File1", "File2", "Note"}}
	for _, d := range diffs {
		util.LogDebug("%s", d)
		data = append(data, []string{strconv.Itoa(d.Line), d.A, d.B, compare.Describe(d)})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		for _, d := range diffs {
			fmt.Println(d)
		}
	}
}
