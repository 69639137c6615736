package handler

import (
	"fmt"
	"io"
	"strings"

	"github.com/1ureka/pktfixture/internal/fixture"
	"github.com/1ureka/pktfixture/internal/protocol"
	"github.com/1ureka/pktfixture/internal/util"
)

// Policy decides what a batch run does with a line it cannot process.
type Policy int

const (
	PolicyAbort Policy = iota // stop the run at the first bad line
	PolicySkip                // log the bad line, count it, and continue
)

// ParsePolicy maps "abort" or "skip" to a Policy. An empty string is abort.
func ParsePolicy(raw string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "abort":
		return PolicyAbort, nil
	case "skip":
		return PolicySkip, nil
	default:
		return PolicyAbort, fmt.Errorf("handler: unknown error policy %q (want abort or skip)", raw)
	}
}

func (p Policy) String() string {
	if p == PolicySkip {
		return "skip"
	}
	return "abort"
}

// Processor turns a request file into a result file, one response line per
// non-blank request line, in input order.
type Processor struct {
	// VerifyChecksum rejects requests whose stored checksum does not match.
	// Off by default: the checksum is only written, never trusted on read.
	VerifyChecksum bool
	OnError        Policy
}

// Process reads request lines from src and writes response lines to sink.
// Blank lines are skipped without output. The returned tally is valid even
// when an error aborts the run.
func (p *Processor) Process(src io.Reader, sink fixture.LineWriter) (util.Tally, error) {
	var tally util.Tally
	lineNo := 0

	err := fixture.EachLine(src, func(raw string) error {
		lineNo++
		tally.AddRead()

		line := strings.TrimSpace(raw)
		if line == "" {
			tally.AddBlank()
			return nil
		}

		out, err := p.processLine(line)
		if err != nil {
			err = fmt.Errorf("line %d: %w", lineNo, err)
			if p.OnError == PolicySkip {
				util.LogWarning("skipping %v", err)
				tally.AddRejected()
				return nil
			}
			return err
		}

		if err := sink.WriteLine(out); err != nil {
			return fmt.Errorf("line %d: write result: %w", lineNo, err)
		}
		tally.AddWritten()
		return nil
	})
	return tally, err
}

func (p *Processor) processLine(line string) (string, error) {
	req, err := protocol.DecodeRequestHex(line)
	if err != nil {
		return "", err
	}

	util.LogDebug("Processing: Header = %04X, Num1 = %04X, Num2 = %04X, Opcode = %02X, Checksum = %02X",
		req.Header(), req.Num1(), req.Num2(), uint8(req.Opcode()), req.Checksum())

	if p.VerifyChecksum {
		if err := req.Verify(); err != nil {
			return "", err
		}
	}

	resp, err := Handle(req)
	if err != nil {
		return "", err
	}

	out := protocol.EncodeResponseHex(resp)
	util.LogDebug("New Packet: %s", out)
	return out, nil
}
