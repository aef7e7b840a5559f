package fuzzy

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TriFuzzyNum
		wantErr error
	}{
		{name: "rendering", input: "(1.5, 2, 2.5)", want: New(1.5, 2, 2.5)},
		{name: "bare triple", input: "1,2,3", want: New(1, 2, 3)},
		{name: "unsorted", input: "(3, 1, 2)", want: New(1, 2, 3)},
		{name: "whitespace", input: "  ( -1 ,0.5,  4 ) ", want: New(-1, 0.5, 4)},
		{name: "crisp", input: "7", want: Crisp(7)},
		{name: "crisp in parentheses", input: "(-2.5)", want: Crisp(-2.5)},
		{name: "exponent", input: "(1e-07, 1, 1e+21)", want: New(1e-7, 1, 1e21)},
		{name: "empty", input: "", wantErr: ErrInvalidComponent},
		{name: "two components", input: "(1, 2)", wantErr: ErrInvalidFormat},
		{name: "four components", input: "1,2,3,4", wantErr: ErrInvalidFormat},
		{name: "unbalanced", input: "(1, 2, 3", wantErr: ErrInvalidFormat},
		{name: "not a number", input: "(1, x, 3)", wantErr: ErrInvalidComponent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRendersBack(t *testing.T) {
	for _, s := range []string{"(1.5, 2, 2.5)", "(0, 0, 0)", "(-3, -0.125, 1e+21)"} {
		assert.Equal(t, s, MustParse(s).String())
	}
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("(1, 2)") })
}

func TestTextMarshalingJSON(t *testing.T) {
	in := struct {
		Value TriFuzzyNum   `json:"value"`
		List  []TriFuzzyNum `json:"list"`
	}{
		Value: New(1.5, 2, 2.5),
		List:  []TriFuzzyNum{Crisp(1), New(0, 1, 2)},
	}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":"(1.5, 2, 2.5)","list":["(1, 1, 1)","(0, 1, 2)"]}`, string(data))

	var out struct {
		Value TriFuzzyNum   `json:"value"`
		List  []TriFuzzyNum `json:"list"`
	}
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in.Value, out.Value)
	assert.Equal(t, in.List, out.List)
}

func TestUnmarshalTextError(t *testing.T) {
	var n TriFuzzyNum
	err := n.UnmarshalText([]byte("nope"))
	assert.ErrorIs(t, err, ErrInvalidComponent)
	assert.Equal(t, CrispZero, n, "value untouched on error")
}
