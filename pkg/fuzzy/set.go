// Ranked multiset of triangular fuzzy numbers.
package fuzzy

import (
	"fmt"
	"iter"
	"strings"

	"github.com/google/btree"
)

// btreeDegree is the branching factor of the backing B-tree.
const btreeDegree = 16

// TriFuzzyNumSet is a multiset of fuzzy numbers kept in rank order.
// Numbers with equivalent ranks are kept in insertion order. Insert and
// Remove take O(log n). The zero value is an empty set ready to use. A
// TriFuzzyNumSet is not safe for concurrent use.
//
// Numbers with NaN components have no rank order; inserting one breaks the
// ordering of the whole set and later lookups may miss stored numbers.
type TriFuzzyNumSet struct {
	tree *btree.BTreeG[setEntry]
	seq  uint64
}

// setEntry caches the rank of a stored number. seq records insertion order
// and tells apart entries of equivalent rank; stored entries start at 1.
type setEntry struct {
	num  TriFuzzyNum
	rank Rank
	seq  uint64
}

// entryLess orders entries by rank, then by insertion order.
func entryLess(a, b setEntry) bool {
	switch a.rank.Compare(b.rank) {
	case Less:
		return true
	case Greater:
		return false
	default:
		return a.seq < b.seq
	}
}

// NewSet returns a set holding nums.
func NewSet(nums ...TriFuzzyNum) *TriFuzzyNumSet {
	s := &TriFuzzyNumSet{}
	for _, n := range nums {
		s.Insert(n)
	}
	return s
}

// Len returns the number of stored numbers, counting duplicates.
func (s *TriFuzzyNumSet) Len() int {
	if s.tree == nil {
		return 0
	}
	return s.tree.Len()
}

// Insert adds n after any numbers of equivalent rank.
func (s *TriFuzzyNumSet) Insert(n TriFuzzyNum) {
	if s.tree == nil {
		s.tree = btree.NewG(btreeDegree, entryLess)
	}
	s.seq++
	s.tree.ReplaceOrInsert(setEntry{num: n, rank: RankOf(n), seq: s.seq})
}

// Remove deletes one number whose rank is equivalent to the rank of n. The
// removed number need not be component-wise equal to n. Removing a number
// that is not present does nothing.
func (s *TriFuzzyNumSet) Remove(n TriFuzzyNum) {
	if e, ok := s.find(RankOf(n)); ok {
		s.tree.Delete(e)
	}
}

// Contains reports whether a number of rank equivalent to n is stored.
func (s *TriFuzzyNumSet) Contains(n TriFuzzyNum) bool {
	_, ok := s.find(RankOf(n))
	return ok
}

// ArithmeticMean returns the component-wise mean of the stored numbers.
// Returns ErrEmptySet if the set holds no numbers.
func (s *TriFuzzyNumSet) ArithmeticMean() (TriFuzzyNum, error) {
	count := s.Len()
	if count == 0 {
		return TriFuzzyNum{}, fmt.Errorf("arithmetic mean: %w", ErrEmptySet)
	}

	var sumL, sumM, sumU float64
	for n := range s.All() {
		sumL += n.l
		sumM += n.m
		sumU += n.u
	}

	c := float64(count)
	return New(sumL/c, sumM/c, sumU/c), nil
}

// Values returns a copy of the stored numbers in rank order.
func (s *TriFuzzyNumSet) Values() []TriFuzzyNum {
	out := make([]TriFuzzyNum, 0, s.Len())
	for n := range s.All() {
		out = append(out, n)
	}
	return out
}

// All iterates over the stored numbers in rank order. The set must not be
// modified during iteration.
func (s *TriFuzzyNumSet) All() iter.Seq[TriFuzzyNum] {
	return func(yield func(TriFuzzyNum) bool) {
		if s.tree == nil {
			return
		}
		s.tree.Ascend(func(e setEntry) bool {
			return yield(e.num)
		})
	}
}

// String renders the set as "{(l, m, u), ...}" in rank order.
func (s *TriFuzzyNumSet) String() string {
	parts := make([]string, 0, s.Len())
	for n := range s.All() {
		parts = append(parts, n.String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// find returns the first entry in order whose rank is equivalent to r.
func (s *TriFuzzyNumSet) find(r Rank) (setEntry, bool) {
	if s.tree == nil {
		return setEntry{}, false
	}

	var found setEntry
	var ok bool
	s.tree.AscendGreaterOrEqual(setEntry{rank: r}, func(e setEntry) bool {
		found, ok = e, e.rank.Compare(r) == Equal
		return false
	})
	return found, ok
}
