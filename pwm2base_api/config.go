package pwm2base_api

import (
	"fmt"
	"os"
	"strings"

	"github.com/carbocation/pfx"
	cli "github.com/urfave/cli/v2"
	"golang.org/x/text/cases"
	"gopkg.in/yaml.v2"
)

// The extensions of the files that are converted when a directory is given
var DefaultExtensions = []string{"txt", "pfm", "fasta", "fa", "fq"}

const DefaultOutputSuffix = "-bases"

// Read the optional configuration file and apply the command line flags on top of it
func ReadConfig(Cctx *cli.Context) (*Config, error) {
	var config Config

	if path := Cctx.String("config"); path != "" {
		configFile, err := os.ReadFile(path)
		if err != nil {
			return nil, pfx.Err(fmt.Errorf("failed to open the config file: %w", err))
		}
		if err := yaml.Unmarshal(configFile, &config); err != nil {
			return nil, pfx.Err(fmt.Errorf("failed to parse the config file: %w", err))
		}
	}

	// Flags take precedence over the config file
	if Cctx.Bool("rna") {
		config.Alphabet = "rna"
	} else if Cctx.Bool("dna") {
		config.Alphabet = "dna"
	}
	if Cctx.Bool("verbose") {
		config.Verbose = true
	}
	if Cctx.Bool("force") {
		config.Force = true
	}

	if err := config.defineMissing(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Define all missing fields and parse the alphabet
func (config *Config) defineMissing() error {
	if len(config.Extensions) == 0 {
		config.Extensions = DefaultExtensions
	}
	extensions := make([]string, len(config.Extensions))
	for i, extension := range config.Extensions {
		extensions[i] = strings.ToLower(strings.TrimPrefix(extension, "."))
	}
	config.Extensions = extensions
	if config.OutputSuffix == "" {
		config.OutputSuffix = DefaultOutputSuffix
	}

	alphabet, err := ParseAlphabet(config.Alphabet)
	if err != nil {
		return pfx.Err(err)
	}
	config.OutputAlphabet = alphabet
	return nil
}

// Parse an alphabet name, case insensitive. An empty name is DNA.
func ParseAlphabet(name string) (Alphabet, error) {
	switch cases.Fold().String(name) {
	case "", "dna":
		return DNA, nil
	case "rna":
		return RNA, nil
	default:
		return DNA, fmt.Errorf("unknown alphabet '%s', must be one of: dna, rna", name)
	}
}
