// Package generator produces random, well-formed request packets for
// fixture files.
package generator

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/1ureka/pktfixture/internal/fixture"
	"github.com/1ureka/pktfixture/internal/protocol"
)

var ErrNegativeCount = errors.New("generator: negative packet count")

// Generator draws request fields from an explicit random source so runs can
// be reproduced from a seed.
type Generator struct {
	rng *rand.Rand
}

// New returns a Generator reading from src.
func New(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

// NewSeeded returns a Generator backed by a PCG source seeded with seed.
func NewSeeded(seed uint64) *Generator {
	return New(rand.NewPCG(seed, seed))
}

// Generate returns one request with num1 and num2 uniform over [0, 0xFFFF]
// and the opcode uniform over {add, subtract}.
func (g *Generator) Generate() protocol.RequestPacket {
	num1 := uint16(g.rng.UintN(1 << 16))
	num2 := uint16(g.rng.UintN(1 << 16))
	op := protocol.Opcode(g.rng.UintN(2))
	return protocol.NewRequest(num1, num2, op)
}

// WriteRequests writes count generated packets to sink as hex lines, in
// generation order. onPacket, if non-nil, is called after each line.
func (g *Generator) WriteRequests(count int, sink fixture.LineWriter, onPacket func(protocol.RequestPacket)) error {
	if count < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeCount, count)
	}
	for i := 0; i < count; i++ {
		pkt := g.Generate()
		if err := sink.WriteLine(protocol.EncodeRequestHex(pkt)); err != nil {
			return fmt.Errorf("generator: write packet %d: %w", i+1, err)
		}
		if onPacket != nil {
			onPacket(pkt)
		}
	}
	return nil
}
