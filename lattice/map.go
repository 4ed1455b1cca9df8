package lattice

import (
	"github.com/cottand/dataflow/ptree"
)

// Map is the lattice of sparse maps from positive keys to elements of a
// base lattice, where an absent key reads as the base's bottom.
//
// The representation is canonical: bottom values are never stored
// (writing one removes the key instead), so the empty tree is the bottom
// element and Beq can compare trees structurally. The join delegates to
// ptree.Combine, which shares structure with the operands wherever the
// pointwise join changes nothing; a solver re-joining a mostly-stable
// state therefore allocates in proportion to what actually changed.
type Map[T any, L Lattice[T]] struct {
	Base L
}

var _ Lattice[*ptree.Tree[bool]] = Map[bool, Bool]{}

// Get returns the value stored at k, or bottom when k is absent.
func (l Map[T, L]) Get(m *ptree.Tree[T], k ptree.Key) T {
	if v, ok := m.Get(k); ok {
		return v
	}
	return l.Base.Bot()
}

// Set stores v at k. Storing bottom and omitting the key are equivalent,
// so writing a bottom value removes the key.
func (l Map[T, L]) Set(m *ptree.Tree[T], k ptree.Key, v T) *ptree.Tree[T] {
	if l.Base.Beq(v, l.Base.Bot()) {
		return m.Remove(k)
	}
	return m.Set(k, v)
}

func (l Map[T, L]) Beq(x, y *ptree.Tree[T]) bool {
	return ptree.Equal(l.Base.Beq, x, y)
}

// Ge compares pointwise. Keys absent from y read as bottom and anything
// is above bottom, so only y's stored entries constrain x.
func (l Map[T, L]) Ge(x, y *ptree.Tree[T]) bool {
	for k, v := range y.All() {
		if !l.Base.Ge(l.Get(x, k), v) {
			return false
		}
	}
	return true
}

func (l Map[T, L]) Bot() *ptree.Tree[T] { return ptree.Empty[T]() }

// Lub joins pointwise. An absent key is bottom, the identity for the
// join, so a key present on one side only keeps that side's value. The
// result shares structure with the operands; when the join coincides
// with an operand entirely, that operand is returned unchanged (the
// first one when it coincides with both).
func (l Map[T, L]) Lub(x, y *ptree.Tree[T]) *ptree.Tree[T] {
	return ptree.Combine(l.Base.Beq, func(a, b *T) *T {
		switch {
		case a == nil:
			return b
		case b == nil:
			return a
		default:
			v := l.Base.Lub(*a, *b)
			return &v
		}
	}, x, y)
}

// Transform applies f to every stored entry, removing entries whose new
// value is bottom. Absent keys stay absent, so f must be meant as the
// identity on bottom. The result shares structure with m wherever f
// changes nothing.
func (l Map[T, L]) Transform(m *ptree.Tree[T], f func(T) T) *ptree.Tree[T] {
	return ptree.MapFilter(l.Base.Beq, func(v T) (T, bool) {
		nv := f(v)
		return nv, !l.Base.Beq(nv, l.Base.Bot())
	}, m)
}
