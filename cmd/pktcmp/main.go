// pktcmp: result comparator entry point.
//
// Compares golden_result.txt with test_output.txt line by line, ignoring
// surrounding whitespace. Exits 1 when the files differ or cannot be read.
package main

import (
	"flag"
	"os"

	"github.com/1ureka/pktfixture/internal/app"
	"github.com/1ureka/pktfixture/internal/config"
	"github.com/1ureka/pktfixture/internal/util"
)

func main() {
	configPath := flag.String("config", "", "Config file (default: ./"+config.DefaultFile+" if present)")
	a := flag.String("a", "", "Golden file (default: config golden)")
	b := flag.String("b", "", "Candidate file (default: config output)")
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

	pathA, pathB := cfg.Golden, cfg.Output
	if *a != "" {
		pathA = *a
	}
	if *b != "" {
		pathB = *b
	}

	report, err := app.RunCompare(pathA, pathB)
	if err != nil {
		util.LogError("Error: %v", err)
		os.Exit(1)
	}
	if !report.Identical() {
		os.Exit(1)
	}
}
