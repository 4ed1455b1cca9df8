package lattice

import (
	"cmp"
	"slices"
	"sort"

	"github.com/benbjohnson/immutable"
	set "github.com/hashicorp/go-set/v3"
	xset "github.com/xtgo/set"
)

// HashSets backs the set lattice with hash sets.
type HashSets[E comparable] struct{}

var _ Sets[*set.Set[int], int] = HashSets[int]{}

func (HashSets[E]) Empty() *set.Set[E] { return set.New[E](0) }

func (HashSets[E]) Contains(s *set.Set[E], e E) bool { return s.Contains(e) }

func (h HashSets[E]) Equal(x, y *set.Set[E]) bool {
	return x.Size() == y.Size() && h.Subset(x, y)
}

func (HashSets[E]) Subset(x, y *set.Set[E]) bool {
	for _, e := range x.Slice() {
		if !y.Contains(e) {
			return false
		}
	}
	return true
}

func (HashSets[E]) Union(x, y *set.Set[E]) *set.Set[E] {
	u := set.New[E](x.Size() + y.Size())
	for _, e := range x.Slice() {
		u.Insert(e)
	}
	for _, e := range y.Slice() {
		u.Insert(e)
	}
	return u
}

// ImmutableSets backs the set lattice with persistent sets, the natural
// fit for elements shared across solver iterations.
type ImmutableSets[E any] struct {
	Hasher immutable.Hasher[E]
}

var _ Sets[immutable.Set[int], int] = ImmutableSets[int]{}

func NewImmutableSets[E any](hasher immutable.Hasher[E]) ImmutableSets[E] {
	return ImmutableSets[E]{Hasher: hasher}
}

func (f ImmutableSets[E]) Empty() immutable.Set[E] { return immutable.NewSet[E](f.Hasher) }

func (ImmutableSets[E]) Contains(s immutable.Set[E], e E) bool { return s.Has(e) }

func (f ImmutableSets[E]) Equal(x, y immutable.Set[E]) bool {
	return x.Len() == y.Len() && f.Subset(x, y)
}

func (ImmutableSets[E]) Subset(x, y immutable.Set[E]) bool {
	for itr := x.Iterator(); !itr.Done(); {
		e, _ := itr.Next()
		if !y.Has(e) {
			return false
		}
	}
	return true
}

func (ImmutableSets[E]) Union(x, y immutable.Set[E]) immutable.Set[E] {
	u := x
	for itr := y.Iterator(); !itr.Done(); {
		e, _ := itr.Next()
		u = u.Add(e)
	}
	return u
}

// SortedSets backs the set lattice with sorted duplicate-free slices.
type SortedSets[E cmp.Ordered] struct{}

var _ Sets[[]int, int] = SortedSets[int]{}

// NewSorted builds the canonical sorted duplicate-free slice holding
// elems.
func NewSorted[E cmp.Ordered](elems ...E) []E {
	s := slices.Clone(elems)
	slices.Sort(s)
	return s[:xset.Uniq(sorted[E](s))]
}

func (SortedSets[E]) Empty() []E { return nil }

func (SortedSets[E]) Contains(s []E, e E) bool {
	_, ok := slices.BinarySearch(s, e)
	return ok
}

func (SortedSets[E]) Equal(x, y []E) bool { return slices.Equal(x, y) }

func (SortedSets[E]) Subset(x, y []E) bool {
	return xset.IsSub(sorted[E](slices.Concat(x, y)), len(x))
}

func (SortedSets[E]) Union(x, y []E) []E {
	data := slices.Concat(x, y)
	return data[:xset.Union(sorted[E](data), len(x))]
}

// sorted adapts a slice to sort.Interface for the xtgo/set algebra.
type sorted[E cmp.Ordered] []E

var _ sort.Interface = sorted[int]{}

func (s sorted[E]) Len() int           { return len(s) }
func (s sorted[E]) Less(i, j int) bool { return s[i] < s[j] }
func (s sorted[E]) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
