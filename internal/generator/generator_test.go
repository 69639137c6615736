package generator

import (
	"errors"
	"testing"

	"github.com/1ureka/pktfixture/internal/protocol"
)

// lineSink collects lines in memory.
type lineSink struct {
	lines []string
	fail  error
}

func (s *lineSink) WriteLine(line string) error {
	if s.fail != nil {
		return s.fail
	}
	s.lines = append(s.lines, line)
	return nil
}

// TestGenerateProducesValidPackets verifies every generated packet has a valid
// checksum and a defined opcode, and that both opcodes show up.
func TestGenerateProducesValidPackets(t *testing.T) {
	g := NewSeeded(1)
	seen := map[protocol.Opcode]int{}

	for i := 0; i < 1000; i++ {
		p := g.Generate()
		if err := p.Verify(); err != nil {
			t.Fatalf("packet %d: %v", i, err)
		}
		if !p.Opcode().Valid() {
			t.Fatalf("packet %d: invalid opcode %s", i, p.Opcode())
		}
		seen[p.Opcode()]++
	}

	if seen[protocol.OpAdd] == 0 || seen[protocol.OpSubtract] == 0 {
		t.Fatalf("opcode distribution skewed: %v", seen)
	}
}

func TestSameSeedSameSequence(t *testing.T) {
	a, b := NewSeeded(42), NewSeeded(42)
	for i := 0; i < 100; i++ {
		if pa, pb := a.Generate(), b.Generate(); pa != pb {
			t.Fatalf("packet %d differs: %s vs %s", i, pa, pb)
		}
	}
}

func TestWriteRequests(t *testing.T) {
	sink := &lineSink{}
	var got []protocol.RequestPacket

	err := NewSeeded(7).WriteRequests(50, sink, func(p protocol.RequestPacket) {
		got = append(got, p)
	})
	if err != nil {
		t.Fatalf("WriteRequests failed: %v", err)
	}
	if len(sink.lines) != 50 || len(got) != 50 {
		t.Fatalf("wrote %d lines and %d callbacks, want 50", len(sink.lines), len(got))
	}

	for i, line := range sink.lines {
		p, err := protocol.DecodeRequestHex(line)
		if err != nil {
			t.Fatalf("line %d: %v", i+1, err)
		}
		if p != got[i] {
			t.Fatalf("line %d out of order: got %s, want %s", i+1, p, got[i])
		}
	}
}

func TestWriteRequestsZero(t *testing.T) {
	sink := &lineSink{}
	if err := NewSeeded(1).WriteRequests(0, sink, nil); err != nil {
		t.Fatalf("WriteRequests failed: %v", err)
	}
	if len(sink.lines) != 0 {
		t.Fatalf("wrote %d lines, want 0", len(sink.lines))
	}
}

func TestWriteRequestsNegative(t *testing.T) {
	err := NewSeeded(1).WriteRequests(-1, &lineSink{}, nil)
	if !errors.Is(err, ErrNegativeCount) {
		t.Fatalf("expected ErrNegativeCount, got %v", err)
	}
}

func TestWriteRequestsSinkError(t *testing.T) {
	boom := errors.New("disk full")
	err := NewSeeded(1).WriteRequests(3, &lineSink{fail: boom}, nil)
	if !errors.Is(err, boom) {
		t.Fatalf("expected sink error, got %v", err)
	}
}
