package cli

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mesh-intelligence/trifuzzy/pkg/fuzzy"
	"gopkg.in/yaml.v3"
)

// inputFile is the YAML document accepted by --file:
//
//	numbers:
//	  - "(1, 2, 3)"
//	  - "4"
type inputFile struct {
	Numbers []string `yaml:"numbers"`
}

// readNumbers parses the --file numbers followed by args.
func readNumbers(args []string) ([]fuzzy.TriFuzzyNum, error) {
	var raw []string
	if flags.inputFile != "" {
		fromFile, err := readInputFile(flags.inputFile)
		if err != nil {
			return nil, err
		}
		raw = append(raw, fromFile...)
	}
	raw = append(raw, args...)

	nums := make([]fuzzy.TriFuzzyNum, 0, len(raw))
	for _, s := range raw {
		n, err := fuzzy.Parse(s)
		if err != nil {
			return nil, err
		}
		nums = append(nums, n)
	}
	debugf("read %s fuzzy numbers", humanize.Comma(int64(len(nums))))
	return nums, nil
}

func readInputFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newSysError("read input file: %w", err)
	}

	var in inputFile
	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("parse input file %s: %w", path, err)
	}
	log.Tracef("loaded %d numbers from %s", len(in.Numbers), path)
	return in.Numbers, nil
}

// requireNumbers is readNumbers with a lower bound on the count.
func requireNumbers(args []string, atLeast int) ([]fuzzy.TriFuzzyNum, error) {
	nums, err := readNumbers(args)
	if err != nil {
		return nil, err
	}
	if len(nums) < atLeast {
		return nil, fmt.Errorf("need at least %d fuzzy numbers, got %d", atLeast, len(nums))
	}
	return nums, nil
}
