package app

import (
	"fmt"

	"github.com/1ureka/pktfixture/internal/fixture"
	"github.com/1ureka/pktfixture/internal/handler"
	"github.com/1ureka/pktfixture/internal/util"
)

// RunProcess runs every request line of inPath through proc and writes the
// responses to outPath. On failure the lines processed so far stay in outPath.
func RunProcess(inPath, outPath string, proc *handler.Processor) (tally util.Tally, err error) {
	in, err := fixture.Open(inPath)
	if err != nil {
		return tally, err
	}
	defer in.Close()

	out, err := fixture.Create(outPath)
	if err != nil {
		return tally, err
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("fixture: close %s: %w", outPath, cerr)
		}
	}()

	tally, err = proc.Process(in, out)
	util.LogInfo("%s: %s", inPath, tally)
	if err != nil {
		return tally, fmt.Errorf("process %s: %w", inPath, err)
	}

	util.LogSuccess("Processing complete. Output written to %s", outPath)
	return tally, nil
}
