package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mesh-intelligence/trifuzzy/pkg/fuzzy"
)

// rankedNumber is the JSON shape of a number printed with its rank.
type rankedNumber struct {
	Number fuzzy.TriFuzzyNum `json:"number"`
	Rank   fuzzy.Rank        `json:"rank"`
	Crisp  bool              `json:"crisp"`
}

// comparison is the JSON shape of the compare command.
type comparison struct {
	Left     fuzzy.TriFuzzyNum `json:"left"`
	Right    fuzzy.TriFuzzyNum `json:"right"`
	Ordering string            `json:"ordering"`
}

// result is the JSON shape of a single computed number.
type result struct {
	Result fuzzy.TriFuzzyNum `json:"result"`
	Count  int               `json:"count,omitempty"`
}

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// writeNumbers prints one number per line, or a JSON array.
func writeNumbers(w io.Writer, nums []fuzzy.TriFuzzyNum) error {
	if flags.jsonMode {
		return writeJSON(w, nums)
	}
	for _, n := range nums {
		if _, err := fmt.Fprintln(w, n); err != nil {
			return err
		}
	}
	return nil
}

// writeResult prints a single computed number.
func writeResult(w io.Writer, r result) error {
	if flags.jsonMode {
		return writeJSON(w, r)
	}
	_, err := fmt.Fprintln(w, r.Result)
	return err
}
