// Ranking index for triangular fuzzy numbers.
package fuzzy

import (
	"fmt"
	"math"
)

// Ordering is the result of comparing two fuzzy numbers.
type Ordering int

// Comparison results. Unordered only arises from NaN components.
const (
	Less Ordering = iota - 1
	Equal
	Greater
	Unordered
)

// String returns "<", "=", ">" or "?".
func (o Ordering) String() string {
	switch o {
	case Less:
		return "<"
	case Equal:
		return "="
	case Greater:
		return ">"
	default:
		return "?"
	}
}

// Int returns -1, 0 or 1 for use with slices.SortFunc and friends.
// Unordered maps to 0.
func (o Ordering) Int() int {
	if o == Unordered {
		return 0
	}
	return int(o)
}

// Rank is the comparison key of a fuzzy number. Keys are compared
// lexicographically: Centroid first, then Precision, then Modal.
type Rank struct {
	// Centroid is the slope-weighted centre shifted down by half the spread
	// score.
	Centroid float64 `json:"centroid"`

	// Precision is 1 minus the spread score; narrower numbers score higher.
	Precision float64 `json:"precision"`

	// Modal is the modal value of the ranked number.
	Modal float64 `json:"modal"`
}

// RankOf computes the rank of n:
//
//	d_u = sqrt(1 + (u-m)^2)
//	d_l = sqrt(1 + (m-l)^2)
//	z   = (u-l) + d_u + d_l
//	x   = ((u-l)*m + d_u*l + d_l*u) / z
//	y   = (u-l) / z
//	rank = (x - y/2, 1 - y, m)
//
// A crisp number (v, v, v), see IsCrisp, ranks as (v, 1, v).
func RankOf(n TriFuzzyNum) Rank {
	l, m, u := n.l, n.m, n.u

	// Products are converted explicitly so they are rounded on their own and
	// never fused into a multiply-add.
	spread := u - l
	du := math.Sqrt(1 + float64((u-m)*(u-m)))
	dl := math.Sqrt(1 + float64((m-l)*(m-l)))

	z := spread + du + dl
	x := (float64(spread*m) + float64(du*l) + float64(dl*u)) / z
	y := spread / z

	return Rank{
		Centroid:  x - y/2,
		Precision: 1 - y,
		Modal:     m,
	}
}

// Compare compares r and o lexicographically.
func (r Rank) Compare(o Rank) Ordering {
	if c := compareFloat(r.Centroid, o.Centroid); c != Equal {
		return c
	}
	if c := compareFloat(r.Precision, o.Precision); c != Equal {
		return c
	}
	return compareFloat(r.Modal, o.Modal)
}

// String renders r as "(centroid, precision, modal)".
func (r Rank) String() string {
	return fmt.Sprintf("(%s, %s, %s)",
		formatComponent(r.Centroid), formatComponent(r.Precision), formatComponent(r.Modal))
}

func compareFloat(a, b float64) Ordering {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	case a == b:
		return Equal
	default:
		return Unordered
	}
}
