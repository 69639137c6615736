// pktproc: protocol handler entry point.
//
// Reads request packets (one hex line each) and writes one response line per
// non-blank request. Defaults to test_input.txt -> golden_result.txt.
package main

import (
	"flag"
	"os"

	"github.com/1ureka/pktfixture/internal/app"
	"github.com/1ureka/pktfixture/internal/config"
	"github.com/1ureka/pktfixture/internal/handler"
	"github.com/1ureka/pktfixture/internal/util"
)

func main() {
	configPath := flag.String("config", "", "Config file (default: ./"+config.DefaultFile+" if present)")
	in := flag.String("in", "", "Request file to read (default: config input)")
	out := flag.String("out", "", "Result file to write (default: config golden)")
	verify := flag.Bool("verify", false, "Reject requests with a bad checksum")
	skipBad := flag.Bool("skip-bad", false, "Skip malformed lines instead of aborting")
	debugMode := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	if *debugMode {
		util.EnableDebug()
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		util.LogError("%v", err)
		os.Exit(1)
	}

	inPath, outPath := cfg.Input, cfg.Golden
	if *in != "" {
		inPath = *in
	}
	if *out != "" {
		outPath = *out
	}

	proc := &handler.Processor{VerifyChecksum: cfg.VerifyChecksum || *verify, OnError: cfg.OnError}
	if *skipBad {
		proc.OnError = handler.PolicySkip
	}

	if _, err := app.RunProcess(inPath, outPath, proc); err != nil {
		util.LogError("%v", err)
		os.Exit(1)
	}
}
