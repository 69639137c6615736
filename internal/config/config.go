// Package config holds the settings shared by the fixture CLIs.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/1ureka/pktfixture/internal/fixture"
	"github.com/1ureka/pktfixture/internal/handler"
)

// DefaultFile is read from the working directory when present.
const DefaultFile = "pktfixture.toml"

// Config stores file locations and run options. Every field has a default, so
// the CLIs run without flags or a config file.
type Config struct {
	Input          string // request file (generator output, processor input)
	Golden         string // accepted result file
	Output         string // candidate result file compared against Golden
	Count          int    // packets to generate
	Seed           uint64 // 0 picks a random seed
	VerifyChecksum bool
	OnError        handler.Policy
}

type fileConfig struct {
	Input          string `toml:"input"`
	Golden         string `toml:"golden"`
	Output         string `toml:"output"`
	Count          int    `toml:"count"`
	Seed           uint64 `toml:"seed"`
	VerifyChecksum bool   `toml:"verify_checksum"`
	OnError        string `toml:"on_error"`
}

// Default returns the fixed filenames and a 50-packet run.
func Default() Config {
	return Config{
		Input:   fixture.InputFile,
		Golden:  fixture.GoldenFile,
		Output:  fixture.OutputFile,
		Count:   50,
		OnError: handler.PolicyAbort,
	}
}

// Load applies the TOML file at path on top of Default. An empty path reads
// DefaultFile if it exists and falls back to defaults if it does not; an
// explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) && !explicit {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config parse failed (%s): unknown key %q", path, undecoded[0].String())
	}

	if meta.IsDefined("input") {
		cfg.Input = strings.TrimSpace(raw.Input)
	}
	if meta.IsDefined("golden") {
		cfg.Golden = strings.TrimSpace(raw.Golden)
	}
	if meta.IsDefined("output") {
		cfg.Output = strings.TrimSpace(raw.Output)
	}
	if meta.IsDefined("count") {
		cfg.Count = raw.Count
	}
	if meta.IsDefined("seed") {
		cfg.Seed = raw.Seed
	}
	if meta.IsDefined("verify_checksum") {
		cfg.VerifyChecksum = raw.VerifyChecksum
	}
	if meta.IsDefined("on_error") {
		policy, err := handler.ParsePolicy(raw.OnError)
		if err != nil {
			return Config{}, fmt.Errorf("config parse failed (%s): %w", path, err)
		}
		cfg.OnError = policy
	}

	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("config invalid (%s): %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings no run could use.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.Input) == "" {
		return fmt.Errorf("input path is required")
	}
	if strings.TrimSpace(cfg.Golden) == "" {
		return fmt.Errorf("golden path is required")
	}
	if strings.TrimSpace(cfg.Output) == "" {
		return fmt.Errorf("output path is required")
	}
	if cfg.Count < 0 {
		return fmt.Errorf("count must not be negative: %d", cfg.Count)
	}
	return nil
}

// Template is a commented config file with the default values.
const Template = `# pktfixture settings; every key is optional.
input = "test_input.txt"
golden = "golden_result.txt"
output = "test_output.txt"
count = 50
# seed = 0 draws a fresh seed each run.
seed = 0
verify_checksum = false
# abort | skip
on_error = "abort"
`
