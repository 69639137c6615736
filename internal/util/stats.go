package util

import "fmt"

// Tally counts what happened to the lines of one generate/process run.
type Tally struct {
	Read     int // lines read from the source, blank ones included
	Written  int // lines written to the sink
	Blank    int // blank lines skipped without output
	Rejected int // lines dropped under the skip policy
}

func (t *Tally) AddRead()     { t.Read++ }
func (t *Tally) AddWritten()  { t.Written++ }
func (t *Tally) AddBlank()    { t.Blank++ }
func (t *Tally) AddRejected() { t.Rejected++ }

// String formats the tally as a single log line, for example:
// "Read:   50 | Written:   48 | Blank:  1 | Rejected:  1".
func (t Tally) String() string {
	return fmt.Sprintf("Read: %4d | Written: %4d | Blank: %2d | Rejected: %2d",
		t.Read,
		t.Written,
		t.Blank,
		t.Rejected,
	)
}
