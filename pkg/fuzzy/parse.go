// Parsing of the "(l, m, u)" text rendering.
package fuzzy

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads a fuzzy number from its rendering "(l, m, u)". The parentheses
// are optional and whitespace around components is ignored, so "1,2,3" is
// accepted. A single component "v" is read as Crisp(v). Components may come in
// any order, as with New.
func Parse(s string) (TriFuzzyNum, error) {
	body := strings.TrimSpace(s)
	if strings.HasPrefix(body, "(") != strings.HasSuffix(body, ")") {
		return TriFuzzyNum{}, fmt.Errorf("%w: unbalanced parentheses in %q", ErrInvalidFormat, s)
	}
	body = strings.TrimSuffix(strings.TrimPrefix(body, "("), ")")

	fields := strings.Split(body, ",")
	if len(fields) != 1 && len(fields) != 3 {
		return TriFuzzyNum{}, fmt.Errorf("%w: want 1 or 3 components in %q, got %d", ErrInvalidFormat, s, len(fields))
	}

	vals := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return TriFuzzyNum{}, fmt.Errorf("%w: %q in %q", ErrInvalidComponent, strings.TrimSpace(f), s)
		}
		vals[i] = v
	}

	if len(vals) == 1 {
		return Crisp(vals[0]), nil
	}
	return New(vals[0], vals[1], vals[2]), nil
}

// MustParse is like Parse but panics on error. Intended for literals in
// tests and examples.
func MustParse(s string) TriFuzzyNum {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

// MarshalText implements encoding.TextMarshaler using String.
func (n TriFuzzyNum) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (n *TriFuzzyNum) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*n = v
	return nil
}
