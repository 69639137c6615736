// Package app contains the top-level orchestration for the generate, process
// and compare tools.
package app

import (
	"fmt"
	"math/rand/v2"

	"github.com/pterm/pterm"

	"github.com/1ureka/pktfixture/internal/config"
	"github.com/1ureka/pktfixture/internal/fixture"
	"github.com/1ureka/pktfixture/internal/generator"
	"github.com/1ureka/pktfixture/internal/handler"
	"github.com/1ureka/pktfixture/internal/protocol"
	"github.com/1ureka/pktfixture/internal/util"
)

// RunGenerate builds a fresh fixture:
//  1. Generate cfg.Count request packets into cfg.Input
//  2. Process cfg.Input into cfg.Golden (skipped when inputOnly is set)
//
// It returns the seed that was used so the run can be repeated.
func RunGenerate(cfg config.Config, inputOnly bool) (uint64, error) {
	if err := config.Validate(cfg); err != nil {
		return 0, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	util.LogDebug("generator seed: %d", seed)

	// ── 1. Generate requests ───────────────────────────────────────────
	if err := writeRequests(cfg.Input, cfg.Count, seed); err != nil {
		return seed, err
	}
	util.LogSuccess("%d packets have been written to %s", cfg.Count, cfg.Input)

	if inputOnly {
		return seed, nil
	}

	// ── 2. Derive the golden result ────────────────────────────────────
	proc := &handler.Processor{VerifyChecksum: cfg.VerifyChecksum, OnError: cfg.OnError}
	if _, err := RunProcess(cfg.Input, cfg.Golden, proc); err != nil {
		return seed, err
	}
	return seed, nil
}

func writeRequests(path string, count int, seed uint64) (err error) {
	w, err := fixture.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("fixture: close %s: %w", path, cerr)
		}
	}()

	var bar *pterm.ProgressbarPrinter
	if count > 0 {
		bar, _ = pterm.DefaultProgressbar.
			WithTotal(count).
			WithTitle("Generating packets").
			WithRemoveWhenDone(true).
			Start()
		defer bar.Stop()
	}

	gen := generator.NewSeeded(seed)
	return gen.WriteRequests(count, w, func(pkt protocol.RequestPacket) {
		util.LogDebug("Generated: %s (%s %d, %d)", pkt, pkt.Opcode(), pkt.Num1(), pkt.Num2())
		if bar != nil {
			bar.Increment()
		}
	})
}
