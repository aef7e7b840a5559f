// Package fuzzy defines triangular fuzzy numbers, the ranking index that
// totally orders them, and a multiset that keeps them in ranked order.
//
// A TriFuzzyNum holds a lower bound, a modal (most likely) value and an upper
// bound with lower <= modal <= upper. Values are compared through their Rank,
// never through their raw components:
//
//	a := fuzzy.New(1, 2, 3)
//	b := fuzzy.Crisp(2)
//	if a.Compare(b) == fuzzy.Less { ... }
//
// NaN components are outside the supported domain. They are not rejected, but
// comparisons involving them report Unordered and a TriFuzzyNumSet holding them
// has no meaningful order.
package fuzzy

// Version is the release version of the trifuzzy module.
const Version = "0.1.0"
