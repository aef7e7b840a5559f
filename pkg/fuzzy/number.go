// Triangular fuzzy number value type and its arithmetic.
package fuzzy

import (
	"strconv"
	"strings"
)

// TriFuzzyNum is a triangular fuzzy number (l, m, u) with l <= m <= u.
// The zero value is the crisp zero. Values are compared with Compare, which
// orders them by Rank; == compares the raw components.
type TriFuzzyNum struct {
	l float64
	m float64
	u float64
}

// CrispZero is the crisp number (0, 0, 0).
var CrispZero = Crisp(0)

// New returns the fuzzy number made of a, b and c. The arguments may come in
// any order; they are sorted so that lower <= modal <= upper.
func New(a, b, c float64) TriFuzzyNum {
	n := TriFuzzyNum{l: a, m: b, u: c}
	n.restoreOrder()
	return n
}

// Crisp returns the degenerate fuzzy number (v, v, v).
func Crisp(v float64) TriFuzzyNum {
	return TriFuzzyNum{l: v, m: v, u: v}
}

// restoreOrder sorts the three components in place.
func (n *TriFuzzyNum) restoreOrder() {
	if n.l > n.m {
		n.l, n.m = n.m, n.l
	}
	if n.l > n.u {
		n.l, n.u = n.u, n.l
	}
	if n.m > n.u {
		n.m, n.u = n.u, n.m
	}
}

// Lower returns the lower bound.
func (n TriFuzzyNum) Lower() float64 { return n.l }

// Modal returns the modal value.
func (n TriFuzzyNum) Modal() float64 { return n.m }

// Upper returns the upper bound.
func (n TriFuzzyNum) Upper() float64 { return n.u }

// IsCrisp reports whether all three components are equal.
func (n TriFuzzyNum) IsCrisp() bool {
	return n.l == n.m && n.m == n.u
}

// Add returns the component-wise sum n + o. Sums of ordered triples are
// already ordered.
func (n TriFuzzyNum) Add(o TriFuzzyNum) TriFuzzyNum {
	return TriFuzzyNum{
		l: n.l + o.l,
		m: n.m + o.m,
		u: n.u + o.u,
	}
}

// Sub returns n - o using interval bounds: the lower bound subtracts o's
// upper bound and the upper bound subtracts o's lower bound, so the result
// is at least as wide as n.
func (n TriFuzzyNum) Sub(o TriFuzzyNum) TriFuzzyNum {
	r := TriFuzzyNum{
		l: n.l - o.u,
		m: n.m - o.m,
		u: n.u - o.l,
	}
	r.restoreOrder()
	return r
}

// Mul returns the component-wise product n * o, reordered because negative
// factors can reverse the bounds.
func (n TriFuzzyNum) Mul(o TriFuzzyNum) TriFuzzyNum {
	r := TriFuzzyNum{
		l: n.l * o.l,
		m: n.m * o.m,
		u: n.u * o.u,
	}
	r.restoreOrder()
	return r
}

// Equal reports exact component-wise equality.
func (n TriFuzzyNum) Equal(o TriFuzzyNum) bool {
	return n.l == o.l && n.m == o.m && n.u == o.u
}

// Compare orders n against o by their ranks.
func (n TriFuzzyNum) Compare(o TriFuzzyNum) Ordering {
	return RankOf(n).Compare(RankOf(o))
}

// Less reports whether n ranks strictly below o.
func (n TriFuzzyNum) Less(o TriFuzzyNum) bool {
	return n.Compare(o) == Less
}

// String renders n as "(l, m, u)" with each component in its shortest exact
// decimal form.
func (n TriFuzzyNum) String() string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(formatComponent(n.l))
	b.WriteString(", ")
	b.WriteString(formatComponent(n.m))
	b.WriteString(", ")
	b.WriteString(formatComponent(n.u))
	b.WriteByte(')')
	return b.String()
}

func formatComponent(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
