// pktgen: fixture generator entry point.
//
// Writes random request packets to test_input.txt and their expected
// responses to golden_result.txt in the current directory. It runs with no
// flags; flags and an optional pktfixture.toml override the defaults.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/pterm/pterm"

	"github.com/1ureka/pktfixture/internal/app"
	"github.com/1ureka/pktfixture/internal/config"
	"github.com/1ureka/pktfixture/internal/handler"
	"github.com/1ureka/pktfixture/internal/util"
)

var version = "dev"

func main() {
	configPath := flag.String("config", "", "Config file (default: ./"+config.DefaultFile+" if present)")
	count := flag.Int("count", 0, "Number of packets to generate (default 50)")
	seed := flag.Uint64("seed", 0, "Random seed; 0 draws a fresh one")
	input := flag.String("input", "", "Request file to write")
	golden := flag.String("golden", "", "Golden result file to write")
	inputOnly := flag.Bool("input-only", false, "Only write the request file")
	verify := flag.Bool("verify", false, "Verify request checksums while processing")
	skipBad := flag.Bool("skip-bad", false, "Skip malformed lines instead of aborting")
	initConfig := flag.Bool("init", false, "Write a default "+config.DefaultFile+" and exit")
	debugMode := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	if *debugMode {
		util.EnableDebug()
	}

	pterm.Info.Println(fmt.Sprintf("pktgen v%s", version))
	pterm.Println()

	if *initConfig {
		if err := writeTemplate(config.DefaultFile); err != nil {
			util.LogError("%v", err)
			os.Exit(1)
		}
		util.LogSuccess("wrote %s", config.DefaultFile)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		util.LogError("%v", err)
		os.Exit(1)
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "count":
			cfg.Count = *count
		case "seed":
			cfg.Seed = *seed
		case "input":
			cfg.Input = *input
		case "golden":
			cfg.Golden = *golden
		case "verify":
			cfg.VerifyChecksum = *verify
		case "skip-bad":
			if *skipBad {
				cfg.OnError = handler.PolicySkip
			}
		}
	})

	used, err := app.RunGenerate(cfg, *inputOnly)
	if err != nil {
		util.LogError("%v", err)
		os.Exit(1)
	}
	util.LogInfo("re-run with -seed %d to reproduce this fixture", used)
}

// writeTemplate refuses to overwrite an existing file.
func writeTemplate(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists: %s", path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(config.Template), 0o644)
}
